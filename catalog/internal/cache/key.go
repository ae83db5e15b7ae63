package cache

const (
	KEY_PRODUCT = "catalog-service:product:%s"
)
