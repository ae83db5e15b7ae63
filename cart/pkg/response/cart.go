package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Cart struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"userId"`
	CartItems []CartItem `json:"cartItems"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type CartItem struct {
	ID        uuid.UUID       `json:"id"`
	CartID    uuid.UUID       `json:"cartId"`
	ProductID uuid.UUID       `json:"productId"`
	Color     string          `json:"color"`
	Size      int32           `json:"size"`
	Quantity  int32           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}
