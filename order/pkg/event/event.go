package event

import (
	"github.com/koberec/eshop/order/pkg/response"
)

// OrderCreated is published after a checkout transaction commits.
type OrderCreated struct {
	Order response.Order `json:"order"`
}

// PaymentConfirmed is published exactly once per order, on the first
// transition into the paid status.
type PaymentConfirmed struct {
	Order response.Order `json:"order"`
}
