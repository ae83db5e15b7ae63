package request

import (
	"github.com/google/uuid"
)

type AddCartItem struct {
	ProductId uuid.UUID `validate:"required"                     json:"productId"`
	Color     string    `validate:"required,oneof=red blue green" json:"color"`
	Size      int32     `validate:"gte=0,lte=300"                json:"size"`
	Quantity  int32     `validate:"required,gte=1"               json:"quantity"`
	UserId    uuid.UUID `validate:"required"                     json:"-"`
}

type RemoveCartItem struct {
	CartItemId uuid.UUID `validate:"required" json:"-"`
	UserId     uuid.UUID `validate:"required" json:"-"`
}
