package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateProduct struct {
	Name        string          `validate:"required,min=3"  json:"name"`
	Description string          `                           json:"description"`
	Price       decimal.Decimal `validate:"required"        json:"price"`
	Quantity    int32           `validate:"gte=0"           json:"quantity"`
}

type UpdateProduct struct {
	ID          uuid.UUID       `validate:"required"        json:"-"`
	Name        string          `validate:"required,min=3"  json:"name"`
	Description string          `                           json:"description"`
	Price       decimal.Decimal `validate:"required"        json:"price"`
	Quantity    int32           `validate:"gte=0"           json:"quantity"`
}

type FindProducts struct {
	Offset int32 `validate:"gte=0"         json:"offset"`
	Limit  int32 `validate:"gte=1,lte=100" json:"limit"`
}
