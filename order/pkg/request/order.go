package request

import (
	"github.com/google/uuid"
)

type CheckoutOrder struct {
	Name           string    `validate:"required,min=3"       json:"name"`
	Email          string    `validate:"required,email"       json:"email"`
	Phone          string    `validate:"required,phone"       json:"phone"`
	Street         string    `validate:"required"             json:"street"`
	City           string    `validate:"required"             json:"city"`
	Zip            string    `validate:"required,min=4,max=10" json:"zip"`
	ShippingMethod string    `validate:"required"             json:"shippingMethod"`
	PaymentMethod  string    `validate:"required"             json:"paymentMethod"`
	UserId         uuid.UUID `validate:"required"             json:"-"`
}

type ChangeOrderStatus struct {
	OrderId uuid.UUID `validate:"required" json:"-"`
	Status  string    `validate:"required" json:"status"`
}

type FindOrders struct {
	Status string        `validate:"omitempty" json:"status"`
	UserId uuid.NullUUID `                     json:"-"`
	Offset int32         `validate:"gte=0"     json:"offset"`
	Limit  int32         `validate:"gte=1,lte=100" json:"limit"`
}
