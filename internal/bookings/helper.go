package bookings

import (
	"context"
	"errors"
	"log"
	"time"

	"eventrental/internal/shared/constants"
	"eventrental/pkg/cache"
)

// getCachedCalendar returns the cached calendar, if any. A nil cache service
// always misses.
func getCachedCalendar(ctx context.Context, cacheService cache.Service) (*CalendarResponse, bool) {
	if cacheService == nil {
		return nil, false
	}

	var cached CalendarResponse
	if err := cacheService.Get(ctx, constants.CACHE_KEY_CALENDAR, &cached); err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Printf("Calendar cache read failed: %v", err)
		}
		return nil, false
	}
	return &cached, true
}

func setCachedCalendar(ctx context.Context, cacheService cache.Service, calendar *CalendarResponse, ttl time.Duration) {
	if cacheService == nil {
		return
	}
	if err := cacheService.Set(ctx, constants.CACHE_KEY_CALENDAR, calendar, ttl); err != nil {
		log.Printf("Calendar cache write failed: %v", err)
	}
}

func invalidateCalendarCache(ctx context.Context, cacheService cache.Service) {
	if cacheService == nil {
		return
	}
	if err := cacheService.DeletePattern(ctx, constants.PATTERN_INVALIDATE_CALENDAR); err != nil {
		log.Printf("Calendar cache invalidation failed: %v", err)
	}
}
