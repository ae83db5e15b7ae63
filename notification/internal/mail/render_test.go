package mail

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/koberec/eshop/order/pkg/pricing"
	"github.com/koberec/eshop/order/pkg/response"
)

func testOrder() response.Order {
	orderId := uuid.New()
	return response.Order{
		ID:             orderId,
		UserID:         uuid.New(),
		Status:         "new",
		Name:           "Jane Doe",
		Email:          "jane@example.com",
		Phone:          "+420123456789",
		Street:         "Main Street 1",
		City:           "Prague",
		Zip:            "11000",
		ShippingMethod: pricing.ShippingCourier,
		ShippingPrice:  decimal.NewFromInt(90),
		PaymentMethod:  pricing.PaymentBank,
		ItemsPrice:     decimal.NewFromInt(250),
		TotalPrice:     decimal.NewFromInt(340),
		OrderItems: []response.OrderItem{
			{
				ID:          uuid.New(),
				OrderID:     orderId,
				ProductID:   uuid.New(),
				ProductName: "Shirt",
				Color:       "red",
				Size:        0,
				Quantity:    2,
				UnitPrice:   decimal.NewFromInt(50),
				TotalPrice:  decimal.NewFromInt(100),
			},
			{
				ID:          uuid.New(),
				OrderID:     orderId,
				ProductID:   uuid.New(),
				ProductName: "Jeans",
				Color:       "blue",
				Size:        32,
				Quantity:    2,
				UnitPrice:   decimal.NewFromInt(75),
				TotalPrice:  decimal.NewFromInt(150),
			},
		},
	}
}

func TestRenderOrderCreated(t *testing.T) {
	order := testOrder()

	subject, body, err := RenderOrderCreated(order)
	assert.NoError(t, err)
	assert.Equal(t, "Order "+order.ID.String()+" received", subject)

	assert.True(t, strings.Contains(body, "Thank you for your order"))
	assert.True(t, strings.Contains(body, "Hello Jane Doe"))
	assert.True(t, strings.Contains(body, "Shirt"))
	assert.True(t, strings.Contains(body, "Jeans"))
	assert.True(t, strings.Contains(body, "Red"))
	assert.True(t, strings.Contains(body, "Blue"))
	assert.True(t, strings.Contains(body, "32 cm"))
	assert.True(t, strings.Contains(body, "250.00"))
	assert.True(t, strings.Contains(body, "90.00"))
	assert.True(t, strings.Contains(body, "340.00"))
	assert.True(t, strings.Contains(body, "Courier"))
	assert.True(t, strings.Contains(body, "Bank transfer"))
	assert.True(t, strings.Contains(body, "Main Street 1, Prague 11000"))
}

func TestRenderPaymentConfirmed(t *testing.T) {
	order := testOrder()

	subject, body, err := RenderPaymentConfirmed(order)
	assert.NoError(t, err)
	assert.Equal(t, "Payment for order "+order.ID.String()+" confirmed", subject)
	assert.True(t, strings.Contains(body, "Payment confirmed"))
	assert.True(t, strings.Contains(body, "340.00"))
}

func TestColorLabel(t *testing.T) {
	assert.Equal(t, "Red", ColorLabel("red"))
	assert.Equal(t, "Blue", ColorLabel("blue"))
	assert.Equal(t, "Green", ColorLabel("green"))
	assert.Equal(t, "purple", ColorLabel("purple"))
}

func TestSizeLabel(t *testing.T) {
	assert.Equal(t, "-", SizeLabel(0))
	assert.Equal(t, "32 cm", SizeLabel(32))
}
