package pagination

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	// DefaultLimit is the standard page size when a limit is not provided.
	DefaultLimit = 25
	// MaxLimit caps how many items any listing can request.
	MaxLimit = 100
)

// Params holds offset pagination inputs from controllers or services.
type Params struct {
	Limit  int
	Offset int
}

// NormalizeLimit enforces the configured default and maximum limits.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// Normalize returns params with the limit clamped and negative offsets zeroed.
func (p Params) Normalize() Params {
	return Params{
		Limit:  NormalizeLimit(p.Limit),
		Offset: max(p.Offset, 0),
	}
}

// Window returns the [start, end) slice bounds for a collection of total items.
func (p Params) Window(total int) (int, int) {
	norm := p.Normalize()
	start := norm.Offset
	if start > total {
		start = total
	}
	end := start + norm.Limit
	if end > total {
		end = total
	}
	return start, end
}

// FromQuery parses limit and offset query parameters, tolerating absence.
func FromQuery(values url.Values) (Params, error) {
	params := Params{}

	if raw := strings.TrimSpace(values.Get("limit")); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return Params{}, fmt.Errorf("invalid limit %q", raw)
		}
		params.Limit = limit
	}
	if raw := strings.TrimSpace(values.Get("offset")); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			return Params{}, fmt.Errorf("invalid offset %q", raw)
		}
		if offset < 0 {
			return Params{}, fmt.Errorf("offset must not be negative")
		}
		params.Offset = offset
	}

	return params.Normalize(), nil
}
