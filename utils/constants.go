// File: utils/constants.go
package utils

import "time"

// LandingCacheKey is the Redis key holding the cached landing payload.
const LandingCacheKey = "content:landing"

// DefaultContentCacheTTL is used when no TTL is configured.
const DefaultContentCacheTTL = 10 * time.Second
