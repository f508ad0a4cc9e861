package shared

import (
	"context"
	"math"
	"portfolio/shared/cache"
	"portfolio/shared/dto"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// FilterBy builds a single equality filter.
func FilterBy(field string, value any, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    field,
				Value:    value,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins the non-empty parts with a colon.
func BuildCacheKey(parts ...string) string {
	kept := make([]string, 0, len(parts))

	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			kept = append(kept, part)
		}
	}

	return strings.Join(kept, cacheKeySeparator)
}

// BuildCacheKeyWithQuery appends the pagination and sort of a listing so each
// page is cached separately.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, extra map[string]string) string {
	parts := []string{
		prefix,
		"page=" + strconv.Itoa(params.Page),
		"limit=" + strconv.Itoa(params.Limit),
		"sort=" + params.SortBy + "." + strings.ToLower(params.SortDir),
	}

	keys := make([]string, 0, len(extra))
	for key := range extra {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		parts = append(parts, key+"="+extra[key])
	}

	return BuildCacheKey(parts...)
}

// InvalidateCaches drops every key under each prefix. Failures are logged only,
// the entries expire on their own.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefixes ...string) {
	for _, prefix := range prefixes {
		if err := redisCache.Clear(ctx, prefix+"*"); err != nil {
			log.Warn().Err(err).Str("prefix", prefix).Msg("failed to invalidate cache")
		}
	}
}
