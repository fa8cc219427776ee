package utils

import (
	"math"
	"strconv"
	"strings"

	"vidtube.com/pkg/constants"
)

// Transfer turns a JWT identity claim into the requester id string.
func Transfer(value interface{}) string {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return ""
	}
}

// IsBlank reports whether s has no visible content.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// NormalizePage applies the listing defaults and the limit cap.
func NormalizePage(page, limit int64) (int64, int64) {
	if page <= 0 {
		page = constants.DefaultPage
	}
	if limit <= 0 {
		limit = constants.DefaultLimit
	}
	if limit > constants.MaxLimit {
		limit = constants.MaxLimit
	}
	return page, limit
}

// TotalPages is ceil(total/limit); zero when there is nothing to page.
func TotalPages(total, limit int64) int64 {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return int64(math.Ceil(float64(total) / float64(limit)))
}
