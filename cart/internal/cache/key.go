package cache

const (
	KEY_CART = "cart-service:cart:%s"
)
