package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/policyradar/policyradar-engine/pkg/apperrors"
	"github.com/policyradar/policyradar-engine/pkg/query"
)

// ParseID extracts a positive integer path parameter.
func ParseID(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: %s must be a positive integer, got %q", apperrors.ErrValidation, name, raw)
	}
	return id, nil
}

// ParsePage reads skip/limit query parameters. Absent parameters take the
// defaults; present ones must parse and sit within bounds. Malformed values
// are rejected rather than silently defaulted.
func ParsePage(r *http.Request) (query.Page, error) {
	page := query.DefaultPage()

	if raw := r.URL.Query().Get("skip"); raw != "" {
		skip, err := strconv.Atoi(raw)
		if err != nil {
			return query.Page{}, fmt.Errorf("%w: skip must be an integer, got %q", apperrors.ErrValidation, raw)
		}
		page.Skip = skip
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return query.Page{}, fmt.Errorf("%w: limit must be an integer, got %q", apperrors.ErrValidation, raw)
		}
		page.Limit = limit
	}

	return page, nil
}

// queryInt reads an optional integer query parameter, returning def when
// the parameter is absent.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", apperrors.ErrValidation, name, raw)
	}
	return value, nil
}

// queryInt64Ptr reads an optional integer query parameter as a pointer,
// nil when absent.
func queryInt64Ptr(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be an integer, got %q", apperrors.ErrValidation, name, raw)
	}
	return &value, nil
}

// queryTimePtr reads an optional timestamp query parameter. Both RFC 3339
// and bare dates are accepted.
func queryTimePtr(r *http.Request, name string) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%w: %s must be an RFC 3339 timestamp or YYYY-MM-DD date, got %q", apperrors.ErrValidation, name, raw)
}
