package cache

const (
	KEY_ORDER = "order-service:order:%s"
)
