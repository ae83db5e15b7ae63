package request

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/koberec/eshop/internal/validate"
)

func validCheckout() CheckoutOrder {
	return CheckoutOrder{
		Name:           "Jane Doe",
		Email:          "jane@example.com",
		Phone:          "+420123456789",
		Street:         "Main Street 1",
		City:           "Prague",
		Zip:            "11000",
		ShippingMethod: "courier",
		PaymentMethod:  "bank",
		UserId:         uuid.New(),
	}
}

func TestCheckoutOrderValidation(t *testing.T) {
	v := validate.New()

	assert.NoError(t, v.Struct(validCheckout()))

	tests := []struct {
		name   string
		mutate func(*CheckoutOrder)
	}{
		{name: "missing name", mutate: func(p *CheckoutOrder) { p.Name = "" }},
		{name: "short name", mutate: func(p *CheckoutOrder) { p.Name = "Jo" }},
		{name: "invalid email", mutate: func(p *CheckoutOrder) { p.Email = "not-an-email" }},
		{name: "phone with letters", mutate: func(p *CheckoutOrder) { p.Phone = "phone123" }},
		{name: "phone too short", mutate: func(p *CheckoutOrder) { p.Phone = "+420123" }},
		{name: "missing street", mutate: func(p *CheckoutOrder) { p.Street = "" }},
		{name: "short zip", mutate: func(p *CheckoutOrder) { p.Zip = "110" }},
		{name: "missing shipping method", mutate: func(p *CheckoutOrder) { p.ShippingMethod = "" }},
		{name: "missing payment method", mutate: func(p *CheckoutOrder) { p.PaymentMethod = "" }},
		{name: "missing user", mutate: func(p *CheckoutOrder) { p.UserId = uuid.Nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			param := validCheckout()
			tt.mutate(&param)
			assert.Error(t, v.Struct(param))
		})
	}
}

func TestFindOrdersValidation(t *testing.T) {
	v := validate.New()

	assert.NoError(t, v.Struct(FindOrders{Offset: 0, Limit: 20}))
	assert.Error(t, v.Struct(FindOrders{Offset: -1, Limit: 20}))
	assert.Error(t, v.Struct(FindOrders{Offset: 0, Limit: 0}))
	assert.Error(t, v.Struct(FindOrders{Offset: 0, Limit: 101}))
}
