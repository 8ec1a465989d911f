package cache

import "time"

// BytesCache is a minimal cache API storing raw bytes with TTL. The news
// handler uses it to cache rendered /api/news responses.
type BytesCache interface {
	GetBytes(key string) (b []byte, ok bool, err error)
	SetBytes(key string, value []byte, ttl time.Duration) error
}
