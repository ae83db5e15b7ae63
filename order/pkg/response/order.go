package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Order struct {
	ID             uuid.UUID       `json:"id"`
	UserID         uuid.UUID       `json:"userId"`
	Status         string          `json:"status"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	Street         string          `json:"street"`
	City           string          `json:"city"`
	Zip            string          `json:"zip"`
	ShippingMethod string          `json:"shippingMethod"`
	ShippingPrice  decimal.Decimal `json:"shippingPrice"`
	PaymentMethod  string          `json:"paymentMethod"`
	ItemsPrice     decimal.Decimal `json:"itemsPrice"`
	TotalPrice     decimal.Decimal `json:"totalPrice"`
	OrderItems     []OrderItem     `json:"orderItems"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

type OrderItem struct {
	ID          uuid.UUID       `json:"id"`
	OrderID     uuid.UUID       `json:"orderId"`
	ProductID   uuid.UUID       `json:"productId"`
	ProductName string          `json:"productName"`
	Color       string          `json:"color"`
	Size        int32           `json:"size"`
	Quantity    int32           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
}
