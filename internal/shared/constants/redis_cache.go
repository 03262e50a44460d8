package constants

import "time"

// Redis keys follow eventrental:{module}:{operation}

const (
	CACHE_PREFIX = "eventrental"
)

// ================== CALENDAR ==================

const (
	CACHE_KEY_CALENDAR = CACHE_PREFIX + ":calendar:all"

	// TTL_CALENDAR is the default; CALENDAR_CACHE_TTL overrides it.
	TTL_CALENDAR = 10 * time.Minute
)

// ================== INVALIDATION PATTERNS ==================

const (
	PATTERN_INVALIDATE_CALENDAR = CACHE_PREFIX + ":calendar:*"
)
