package repository

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	cartResponse "github.com/koberec/eshop/cart/pkg/response"
	catalogResponse "github.com/koberec/eshop/catalog/pkg/response"
	orderResponse "github.com/koberec/eshop/order/pkg/response"
	userResponse "github.com/koberec/eshop/user/pkg/response"
)

func (p Product) Response() catalogResponse.Product {
	return catalogResponse.Product{
		ID:          p.ID,
		Name:        p.Name,
		Url:         p.Url,
		Description: p.Description.String,
		Price:       decimal.NewFromBigInt(p.Price.Int, p.Price.Exp),
		Quantity:    p.Quantity,
		CreatedAt:   p.CreatedAt.Time,
		UpdatedAt:   p.UpdatedAt.Time,
	}
}

func (u User) Response() userResponse.User {
	return userResponse.User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt.Time,
		UpdatedAt: u.UpdatedAt.Time,
	}
}

func (ci CartItem) Response() cartResponse.CartItem {
	return cartResponse.CartItem{
		ID:        ci.ID,
		CartID:    ci.CartID,
		ProductID: ci.ProductID,
		Color:     ci.Color,
		Size:      ci.Size,
		Quantity:  ci.Quantity,
		Price:     decimal.NewFromBigInt(ci.Price.Int, ci.Price.Exp),
	}
}

func (f FindCartByUserIdRow) Response() (cartResponse.Cart, error) {
	cartItems := []cartResponse.CartItem{}
	err := json.Unmarshal(f.CartItems, &cartItems)
	if err != nil {
		return cartResponse.Cart{}, err
	}
	return cartResponse.Cart{
		ID:        f.ID,
		UserID:    f.UserID,
		CartItems: cartItems,
		CreatedAt: f.CreatedAt.Time,
		UpdatedAt: f.UpdatedAt.Time,
	}, nil
}

func (o Order) Response() orderResponse.Order {
	return orderResponse.Order{
		ID:             o.ID,
		UserID:         o.UserID,
		Status:         string(o.Status),
		Name:           o.Name,
		Email:          o.Email,
		Phone:          o.Phone,
		Street:         o.Street,
		City:           o.City,
		Zip:            o.Zip,
		ShippingMethod: o.ShippingMethod,
		ShippingPrice:  decimal.NewFromBigInt(o.ShippingPrice.Int, o.ShippingPrice.Exp),
		PaymentMethod:  o.PaymentMethod,
		ItemsPrice:     decimal.NewFromBigInt(o.ItemsPrice.Int, o.ItemsPrice.Exp),
		TotalPrice:     decimal.NewFromBigInt(o.TotalPrice.Int, o.TotalPrice.Exp),
		OrderItems:     []orderResponse.OrderItem{},
		CreatedAt:      o.CreatedAt.Time,
		UpdatedAt:      o.UpdatedAt.Time,
	}
}

func (oi OrderItem) Response() orderResponse.OrderItem {
	return orderResponse.OrderItem{
		ID:          oi.ID,
		OrderID:     oi.OrderID,
		ProductID:   oi.ProductID,
		ProductName: oi.ProductName,
		Color:       oi.Color,
		Size:        oi.Size,
		Quantity:    oi.Quantity,
		UnitPrice:   decimal.NewFromBigInt(oi.UnitPrice.Int, oi.UnitPrice.Exp),
		TotalPrice:  decimal.NewFromBigInt(oi.TotalPrice.Int, oi.TotalPrice.Exp),
	}
}

func (f FindOrderByIdRow) Response() (orderResponse.Order, error) {
	orderItems := []orderResponse.OrderItem{}
	err := json.Unmarshal(f.OrderItems, &orderItems)
	if err != nil {
		return orderResponse.Order{}, err
	}
	return orderResponse.Order{
		ID:             f.ID,
		UserID:         f.UserID,
		Status:         string(f.Status),
		Name:           f.Name,
		Email:          f.Email,
		Phone:          f.Phone,
		Street:         f.Street,
		City:           f.City,
		Zip:            f.Zip,
		ShippingMethod: f.ShippingMethod,
		ShippingPrice:  decimal.NewFromBigInt(f.ShippingPrice.Int, f.ShippingPrice.Exp),
		PaymentMethod:  f.PaymentMethod,
		ItemsPrice:     decimal.NewFromBigInt(f.ItemsPrice.Int, f.ItemsPrice.Exp),
		TotalPrice:     decimal.NewFromBigInt(f.TotalPrice.Int, f.TotalPrice.Exp),
		OrderItems:     orderItems,
		CreatedAt:      f.CreatedAt.Time,
		UpdatedAt:      f.UpdatedAt.Time,
	}, nil
}

func (f FindOrdersRow) Response() (orderResponse.Order, error) {
	orderItems := []orderResponse.OrderItem{}
	err := json.Unmarshal(f.OrderItems, &orderItems)
	if err != nil {
		return orderResponse.Order{}, err
	}
	return orderResponse.Order{
		ID:             f.ID,
		UserID:         f.UserID,
		Status:         string(f.Status),
		Name:           f.Name,
		Email:          f.Email,
		Phone:          f.Phone,
		Street:         f.Street,
		City:           f.City,
		Zip:            f.Zip,
		ShippingMethod: f.ShippingMethod,
		ShippingPrice:  decimal.NewFromBigInt(f.ShippingPrice.Int, f.ShippingPrice.Exp),
		PaymentMethod:  f.PaymentMethod,
		ItemsPrice:     decimal.NewFromBigInt(f.ItemsPrice.Int, f.ItemsPrice.Exp),
		TotalPrice:     decimal.NewFromBigInt(f.TotalPrice.Int, f.TotalPrice.Exp),
		OrderItems:     orderItems,
		CreatedAt:      f.CreatedAt.Time,
		UpdatedAt:      f.UpdatedAt.Time,
	}, nil
}
