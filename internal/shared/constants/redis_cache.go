package constants

import (
	"fmt"
	"time"
)

// Redis cache keys and TTL values for the Retreatly application.
// Pattern: retreatly:{module}:{operation}:{identifier}:{params?}

// ================== CACHE TTL DURATIONS ==================

// Static data (rarely changes)
const (
	TTL_STATIC_LONG   = 24 * time.Hour
	TTL_STATIC_MEDIUM = 12 * time.Hour
	TTL_STATIC_SHORT  = 6 * time.Hour
)

// Semi-static data (changes occasionally)
const (
	TTL_SEMI_STATIC_LONG   = 4 * time.Hour
	TTL_SEMI_STATIC_MEDIUM = 2 * time.Hour
	TTL_SEMI_STATIC_SHORT  = 1 * time.Hour
	TTL_SEMI_STATIC_QUICK  = 15 * time.Minute
)

// Dynamic data (changes frequently)
const (
	TTL_DYNAMIC_MEDIUM = 10 * time.Minute
	TTL_DYNAMIC_SHORT  = 5 * time.Minute
	TTL_DYNAMIC_QUICK  = 2 * time.Minute
)

// ================== REDIS KEY PREFIXES ==================

const (
	CACHE_PREFIX = "retreatly"
)

// ================== PROPERTIES MODULE ==================

const (
	CACHE_KEY_PROPERTIES_LIST  = CACHE_PREFIX + ":properties:list"         // + :page:X:limit:Y
	CACHE_KEY_PROPERTY_DETAIL  = CACHE_PREFIX + ":properties:detail:uuid:" // + property-id
	CACHE_KEY_PROPERTY_NEARBY  = CACHE_PREFIX + ":properties:nearby"       // + :lat:X:lng:Y:radius:Z
	CACHE_KEY_PROPERTY_BY_HOST = CACHE_PREFIX + ":properties:host:uuid:"   // + host-id
	CACHE_KEY_AMENITIES        = CACHE_PREFIX + ":properties:amenities"
)

const (
	TTL_PROPERTY_LIST   = TTL_SEMI_STATIC_SHORT
	TTL_PROPERTY_DETAIL = TTL_SEMI_STATIC_MEDIUM
	TTL_PROPERTY_NEARBY = TTL_SEMI_STATIC_QUICK
	TTL_AMENITIES       = TTL_STATIC_LONG
)

// ================== RETREATS / PROGRAMS MODULE ==================

const (
	CACHE_KEY_RETREATS_LIST   = CACHE_PREFIX + ":retreats:list"         // + :page:X:limit:Y
	CACHE_KEY_RETREAT_DETAIL  = CACHE_PREFIX + ":retreats:detail:uuid:" // + retreat-id
	CACHE_KEY_PROGRAMS_LIST   = CACHE_PREFIX + ":programs:list"         // + :page:X:limit:Y
	CACHE_KEY_PROGRAM_DETAIL  = CACHE_PREFIX + ":programs:detail:uuid:" // + program-id
	CACHE_KEY_INSTANCE_DETAIL = CACHE_PREFIX + ":instances:detail:"     // + kind:instance-id
)

const (
	TTL_RETREAT_LIST    = TTL_SEMI_STATIC_SHORT
	TTL_RETREAT_DETAIL  = TTL_SEMI_STATIC_MEDIUM
	TTL_INSTANCE_DETAIL = TTL_DYNAMIC_MEDIUM
)

// ================== SEARCH MODULE ==================

const (
	CACHE_KEY_SEARCH_CONTINENT = CACHE_PREFIX + ":search:continent:" // + kind:continent
)

const (
	TTL_SEARCH_CONTINENT = TTL_SEMI_STATIC_QUICK
)

// ================== PRICE MODS MODULE ==================

const (
	CACHE_KEY_PRICE_MODS_INSTANCE = CACHE_PREFIX + ":pricemods:instance:" // + kind:instance-id
)

const (
	TTL_PRICE_MODS = TTL_DYNAMIC_MEDIUM
)

// ================== INVALIDATION PATTERNS ==================

const (
	PATTERN_INVALIDATE_PROPERTIES_ALL = CACHE_PREFIX + ":properties:*"
	PATTERN_INVALIDATE_RETREATS_ALL   = CACHE_PREFIX + ":retreats:*"
	PATTERN_INVALIDATE_PROGRAMS_ALL   = CACHE_PREFIX + ":programs:*"
	PATTERN_INVALIDATE_SEARCH_ALL     = CACHE_PREFIX + ":search:*"
	PATTERN_INVALIDATE_PRICE_MODS_ALL = CACHE_PREFIX + ":pricemods:*"
)

// ================== KEY BUILDERS ==================

// BuildPropertyDetailKey builds the cache key for a single property
func BuildPropertyDetailKey(propertyID string) string {
	return CACHE_KEY_PROPERTY_DETAIL + propertyID
}

// BuildContinentSearchKey builds the cache key for a continent-grouped search
func BuildContinentSearchKey(kind, continent string) string {
	return fmt.Sprintf("%s%s:%s", CACHE_KEY_SEARCH_CONTINENT, kind, continent)
}

// BuildPriceModsKey builds the cache key for resolved instance price mods
func BuildPriceModsKey(kind, instanceID string) string {
	return fmt.Sprintf("%s%s:%s", CACHE_KEY_PRICE_MODS_INSTANCE, kind, instanceID)
}
