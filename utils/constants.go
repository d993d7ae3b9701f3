// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis account status cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for account status cache entries.
const AuthCacheTTL = 5 * time.Minute

// Cached account status values.
const (
	AccountActive   = "active"
	AccountInactive = "inactive"
)
