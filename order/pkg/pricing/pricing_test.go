package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestShippingPrice(t *testing.T) {
	tests := []struct {
		method   string
		expected decimal.Decimal
	}{
		{method: ShippingCourier, expected: decimal.NewFromInt(90)},
		{method: ShippingPickup, expected: decimal.NewFromInt(0)},
		{method: ShippingPost, expected: decimal.NewFromInt(60)},
	}
	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			price, ok := ShippingPrice(tt.method)
			assert.True(t, ok)
			assert.True(t, tt.expected.Equal(price))
		})
	}

	_, ok := ShippingPrice("drone")
	assert.False(t, ok)
}

func TestPaymentMethod(t *testing.T) {
	assert.True(t, IsPaymentMethod(PaymentBank))
	assert.True(t, IsPaymentMethod(PaymentCod))
	assert.False(t, IsPaymentMethod(""))
	assert.False(t, IsPaymentMethod("card"))
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Courier", ShippingLabel(ShippingCourier))
	assert.Equal(t, "Personal pickup", ShippingLabel(ShippingPickup))
	assert.Equal(t, "Post office", ShippingLabel(ShippingPost))
	assert.Equal(t, "drone", ShippingLabel("drone"))

	assert.Equal(t, "Bank transfer", PaymentLabel(PaymentBank))
	assert.Equal(t, "Cash on delivery", PaymentLabel(PaymentCod))
	assert.Equal(t, "card", PaymentLabel("card"))
}
