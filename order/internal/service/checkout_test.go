package service

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/koberec/eshop/internal/repository"
	orderErrors "github.com/koberec/eshop/order/internal/errors"
	"github.com/koberec/eshop/order/pkg/pricing"
	"github.com/koberec/eshop/order/pkg/request"
	"github.com/koberec/eshop/order/pkg/status"
)

func testContext() context.Context {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339Nano}).
		WithContext(context.Background())
}

func checkoutRequest(userId uuid.UUID) request.CheckoutOrder {
	return request.CheckoutOrder{
		Name:           "Jane Doe",
		Email:          "jane@example.com",
		Phone:          "+420123456789",
		Street:         "Main Street 1",
		City:           "Prague",
		Zip:            "11000",
		ShippingMethod: pricing.ShippingCourier,
		PaymentMethod:  pricing.PaymentBank,
		UserId:         userId,
	}
}

func TestCheckout(t *testing.T) {
	c := testContext()
	env := setup(t, c)
	defer teardown(t, env)

	user := seedUser(t, c, env.queries)
	shirt := seedProduct(t, c, env.queries, "Shirt", 50)
	jeans := seedProduct(t, c, env.queries, "Jeans", 75)
	cart := seedCart(t, c, env.queries, user.ID,
		seedItem{product: shirt, color: "red", size: 0, quantity: 2},
		seedItem{product: jeans, color: "blue", size: 32, quantity: 2},
	)

	order, err := env.service.Checkout(c, checkoutRequest(user.ID))
	assert.NoError(t, err)

	assert.Equal(t, user.ID, order.UserID)
	assert.Equal(t, string(status.New), order.Status)
	assert.Equal(t, "Jane Doe", order.Name)
	assert.Equal(t, "jane@example.com", order.Email)
	assert.Equal(t, pricing.ShippingCourier, order.ShippingMethod)
	assert.Equal(t, pricing.PaymentBank, order.PaymentMethod)
	assert.True(t, decimal.NewFromInt(250).Equal(order.ItemsPrice), "itemsPrice=%s", order.ItemsPrice)
	assert.True(t, decimal.NewFromInt(90).Equal(order.ShippingPrice), "shippingPrice=%s", order.ShippingPrice)
	assert.True(t, decimal.NewFromInt(340).Equal(order.TotalPrice), "totalPrice=%s", order.TotalPrice)

	assert.Len(t, order.OrderItems, 2)
	byName := map[string]int{}
	for _, item := range order.OrderItems {
		byName[item.ProductName]++
		assert.Equal(t, order.ID, item.OrderID)
		assert.True(t, item.UnitPrice.Mul(decimal.NewFromInt32(item.Quantity)).Equal(item.TotalPrice))
	}
	assert.Equal(t, map[string]int{"Shirt": 1, "Jeans": 1}, byName)

	remaining, err := env.queries.FindCartItemsByCartId(c, cart.ID)
	assert.NoError(t, err)
	assert.Empty(t, remaining, "cart should be cleared after checkout")
}

func TestCheckoutSnapshotSurvivesProductChange(t *testing.T) {
	c := testContext()
	env := setup(t, c)
	defer teardown(t, env)

	user := seedUser(t, c, env.queries)
	shirt := seedProduct(t, c, env.queries, "Shirt", 50)
	seedCart(t, c, env.queries, user.ID,
		seedItem{product: shirt, color: "green", size: 0, quantity: 1},
	)

	order, err := env.service.Checkout(c, checkoutRequest(user.ID))
	assert.NoError(t, err)

	_, err = env.queries.UpdateProduct(c, repository.UpdateProductParams{
		ID:          shirt.ID,
		Name:        "Renamed Shirt",
		Url:         shirt.Url,
		Description: shirt.Description,
		Price:       numeric(decimal.NewFromInt(999)),
		Quantity:    shirt.Quantity,
	})
	assert.NoError(t, err)

	stored, err := env.queries.FindOrderById(c, order.ID)
	assert.NoError(t, err)
	res, err := stored.Response()
	assert.NoError(t, err)

	assert.Len(t, res.OrderItems, 1)
	assert.Equal(t, "Shirt", res.OrderItems[0].ProductName)
	assert.True(t, decimal.NewFromInt(50).Equal(res.OrderItems[0].UnitPrice))
	assert.True(t, decimal.NewFromInt(50).Equal(res.TotalPrice.Sub(res.ShippingPrice)))
}

func TestCheckoutSnapshotSurvivesProductDeletion(t *testing.T) {
	c := testContext()
	env := setup(t, c)
	defer teardown(t, env)

	user := seedUser(t, c, env.queries)
	shirt := seedProduct(t, c, env.queries, "Shirt", 50)
	seedCart(t, c, env.queries, user.ID,
		seedItem{product: shirt, color: "red", size: 0, quantity: 2},
	)

	order, err := env.service.Checkout(c, checkoutRequest(user.ID))
	assert.NoError(t, err)

	err = env.queries.DeleteProduct(c, shirt.ID)
	assert.NoError(t, err, "a sold product must still be deletable")

	stored, err := env.queries.FindOrderById(c, order.ID)
	assert.NoError(t, err)
	res, err := stored.Response()
	assert.NoError(t, err)

	assert.Len(t, res.OrderItems, 1)
	assert.Equal(t, "Shirt", res.OrderItems[0].ProductName)
	assert.Equal(t, shirt.ID, res.OrderItems[0].ProductID)
	assert.True(t, decimal.NewFromInt(50).Equal(res.OrderItems[0].UnitPrice))
	assert.True(t, decimal.NewFromInt(100).Equal(res.OrderItems[0].TotalPrice))
}

func TestCheckoutPickupHasNoShippingPrice(t *testing.T) {
	c := testContext()
	env := setup(t, c)
	defer teardown(t, env)

	user := seedUser(t, c, env.queries)
	shirt := seedProduct(t, c, env.queries, "Shirt", 50)
	seedCart(t, c, env.queries, user.ID,
		seedItem{product: shirt, color: "red", size: 0, quantity: 1},
	)

	param := checkoutRequest(user.ID)
	param.ShippingMethod = pricing.ShippingPickup

	order, err := env.service.Checkout(c, param)
	assert.NoError(t, err)
	assert.True(t, decimal.NewFromInt(0).Equal(order.ShippingPrice))
	assert.True(t, order.ItemsPrice.Equal(order.TotalPrice))
}

func TestCheckoutEmptyCart(t *testing.T) {
	c := testContext()
	env := setup(t, c)
	defer teardown(t, env)

	user := seedUser(t, c, env.queries)

	_, err := env.service.Checkout(c, checkoutRequest(user.ID))
	assert.ErrorIs(t, err, orderErrors.ErrEmptyCart, "user without a cart cannot check out")

	seedCart(t, c, env.queries, user.ID)
	_, err = env.service.Checkout(c, checkoutRequest(user.ID))
	assert.ErrorIs(t, err, orderErrors.ErrEmptyCart, "cart without items cannot be checked out")
}

func TestCheckoutInvalidMethods(t *testing.T) {
	c := testContext()
	env := setup(t, c)
	defer teardown(t, env)

	user := seedUser(t, c, env.queries)
	shirt := seedProduct(t, c, env.queries, "Shirt", 50)
	cart := seedCart(t, c, env.queries, user.ID,
		seedItem{product: shirt, color: "red", size: 0, quantity: 1},
	)

	param := checkoutRequest(user.ID)
	param.ShippingMethod = "drone"
	_, err := env.service.Checkout(c, param)
	assert.ErrorIs(t, err, orderErrors.ErrInvalidShippingMethod)

	param = checkoutRequest(user.ID)
	param.PaymentMethod = "card"
	_, err = env.service.Checkout(c, param)
	assert.ErrorIs(t, err, orderErrors.ErrInvalidPaymentMethod)

	items, err := env.queries.FindCartItemsByCartId(c, cart.ID)
	assert.NoError(t, err)
	assert.Len(t, items, 1, "failed checkout must leave the cart untouched")
}
