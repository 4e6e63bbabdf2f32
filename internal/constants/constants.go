package constants

import "time"

const (
	// DefaultCartID 單一購物 session 固定使用的購物車識別
	DefaultCartID = "principal"
	// CachePrefix redis key 的共用前綴
	CachePrefix = "jamrock"
	// ServiceClientTimeout 對外部服務的請求逾時
	ServiceClientTimeout = 10 * time.Second
)

type ContextKey string

const (
	RequestIDKey ContextKey = "request_id"
)

type ENV string

const (
	Debug ENV = "debug"
	Dev   ENV = "development"
	Prod  ENV = "production"
)
