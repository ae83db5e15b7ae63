package constants

const (
	APP_CART_SERVICE         = "cart-service"
	APP_CATALOG_SERVICE      = "catalog-service"
	APP_MAIN_ESHOP           = "eshop"
	APP_NOTIFICATION_SERVICE = "notification-service"
	APP_ORDER_SERVICE        = "order-service"
	APP_USER_SERVICE         = "user-service"
	AUDIENCE_USER            = "audience-user"
	ROLE_ADMIN               = "admin"
)

const (
	CHANNEL_ORDER_CREATED     = "order.created"
	CHANNEL_PAYMENT_CONFIRMED = "payment.confirmed"
)

const (
	KEY_APP_NAME       = "app"
	KEY_BODY           = "body"
	KEY_CACHE_KEY      = "cacheKey"
	KEY_CART           = "cart"
	KEY_CART_ID        = "cartId"
	KEY_CART_ITEMS     = "cartItems"
	KEY_CHANNEL        = "channel"
	KEY_CONFIG         = "config"
	KEY_DB_URL         = "dbUrl"
	KEY_EMAIL          = "email"
	KEY_HEADER         = "header"
	KEY_ORDER          = "order"
	KEY_ORDERS         = "orders"
	KEY_ORDER_ID       = "orderId"
	KEY_ORDER_ITEMS    = "orderItems"
	KEY_ORDER_STATUS   = "orderStatus"
	KEY_PROCESS        = "process"
	KEY_PRODUCT        = "product"
	KEY_PRODUCTS       = "products"
	KEY_PRODUCT_ID     = "productId"
	KEY_REQUEST        = "request"
	KEY_REQUEST_HOST   = "host"
	KEY_REQUEST_ID     = "requestId"
	KEY_REQUEST_IP     = "requesterIP"
	KEY_REQUEST_METHOD = "requestMethod"
	KEY_REQUEST_URI    = "requestURI"
	KEY_REQUEST_URL    = "requestURL"
	KEY_SPAN_ID        = "spanId"
	KEY_TAG            = "tag"
	KEY_TOKEN          = "token"
	KEY_TRACE_ID       = "traceId"
	KEY_USER_ID        = "userId"
)
