package mail

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/koberec/eshop/order/pkg/pricing"
	"github.com/koberec/eshop/order/pkg/response"
)

var colorLabels = map[string]string{
	"red":   "Red",
	"blue":  "Blue",
	"green": "Green",
}

const orderTemplate = `<h1>{{ .Heading }}</h1>
<p>Hello {{ .Order.Name }},</p>
<p>{{ .Intro }}</p>
<table border="1" cellpadding="4" cellspacing="0">
  <tr>
    <th>Product</th>
    <th>Color</th>
    <th>Size</th>
    <th>Quantity</th>
    <th>Unit price</th>
    <th>Total</th>
  </tr>
  {{ range .Order.OrderItems }}
  <tr>
    <td>{{ .ProductName }}</td>
    <td>{{ colorLabel .Color }}</td>
    <td>{{ sizeLabel .Size }}</td>
    <td>{{ .Quantity }}</td>
    <td>{{ money .UnitPrice }}</td>
    <td>{{ money .TotalPrice }}</td>
  </tr>
  {{ end }}
  <tr>
    <td colspan="5">Items</td>
    <td>{{ money .Order.ItemsPrice }}</td>
  </tr>
  <tr>
    <td colspan="5">Shipping ({{ shippingLabel .Order.ShippingMethod }})</td>
    <td>{{ money .Order.ShippingPrice }}</td>
  </tr>
  <tr>
    <td colspan="5"><strong>Total</strong></td>
    <td><strong>{{ money .Order.TotalPrice }}</strong></td>
  </tr>
</table>
<p>Payment method: {{ paymentLabel .Order.PaymentMethod }}</p>
<p>Shipping address: {{ .Order.Street }}, {{ .Order.City }} {{ .Order.Zip }}</p>
`

var orderTmpl = template.Must(
	template.New("order").
		Funcs(template.FuncMap{
			"colorLabel":    ColorLabel,
			"sizeLabel":     SizeLabel,
			"money":         money,
			"shippingLabel": pricing.ShippingLabel,
			"paymentLabel":  pricing.PaymentLabel,
		}).
		Parse(orderTemplate),
)

func ColorLabel(color string) string {
	if label, ok := colorLabels[color]; ok {
		return label
	}
	return color
}

func SizeLabel(size int32) string {
	if size == 0 {
		return "-"
	}
	return fmt.Sprintf("%d cm", size)
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

type orderMail struct {
	Heading string
	Intro   string
	Order   response.Order
}

// RenderOrderCreated renders the confirmation mail sent right after
// checkout.
func RenderOrderCreated(order response.Order) (subject string, body string, err error) {
	subject = fmt.Sprintf("Order %s received", order.ID)
	body, err = render(orderMail{
		Heading: "Thank you for your order",
		Intro:   "We have received your order. You will find its summary below.",
		Order:   order,
	})
	return subject, body, err
}

// RenderPaymentConfirmed renders the mail sent on the first transition
// of an order into the paid status.
func RenderPaymentConfirmed(order response.Order) (subject string, body string, err error) {
	subject = fmt.Sprintf("Payment for order %s confirmed", order.ID)
	body, err = render(orderMail{
		Heading: "Payment confirmed",
		Intro:   "We have received your payment. Your order is now being prepared.",
		Order:   order,
	})
	return subject, body, err
}

func render(data orderMail) (string, error) {
	var b strings.Builder
	err := orderTmpl.Execute(&b, data)
	if err != nil {
		return "", fmt.Errorf("failed rendering order mail with error=%w", err)
	}
	return b.String(), nil
}
