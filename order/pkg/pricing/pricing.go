package pricing

import "github.com/shopspring/decimal"

const (
	ShippingCourier = "courier"
	ShippingPickup  = "pickup"
	ShippingPost    = "post"
)

const (
	PaymentBank = "bank"
	PaymentCod  = "cod"
)

var shippingPrices = map[string]decimal.Decimal{
	ShippingCourier: decimal.NewFromInt(90),
	ShippingPickup:  decimal.NewFromInt(0),
	ShippingPost:    decimal.NewFromInt(60),
}

var shippingLabels = map[string]string{
	ShippingCourier: "Courier",
	ShippingPickup:  "Personal pickup",
	ShippingPost:    "Post office",
}

var paymentLabels = map[string]string{
	PaymentBank: "Bank transfer",
	PaymentCod:  "Cash on delivery",
}

// ShippingPrice returns the flat shipping price for the given method.
// The second return value is false when the method is unknown.
func ShippingPrice(method string) (decimal.Decimal, bool) {
	p, ok := shippingPrices[method]
	return p, ok
}

func IsPaymentMethod(method string) bool {
	_, ok := paymentLabels[method]
	return ok
}

func ShippingLabel(method string) string {
	if l, ok := shippingLabels[method]; ok {
		return l
	}
	return method
}

func PaymentLabel(method string) string {
	if l, ok := paymentLabels[method]; ok {
		return l
	}
	return method
}
