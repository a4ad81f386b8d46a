// Package utils holds small helpers shared by services: date coercion,
// JSON column normalization and profile completion scoring.
package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"02-01-2006",
	"02/01/2006",
	"02.01.2006",
	"Jan 2, 2006",
	"2 Jan 2006",
	"January 2, 2006",
}

// minUnixDigits keeps bare years and other short numbers from being read
// as unix timestamps. Nine digits reach back to March 1973.
const minUnixDigits = 9

// CoerceDate parses s using the accepted layouts (ISO dates and timestamps,
// day-first numeric dates, written month names) or a unix timestamp in
// seconds of at least minUnixDigits digits. Blank input yields nil.
func CoerceDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}

	if len(s) >= minUnixDigits && isDigits(s) {
		if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
			t := time.Unix(secs, 0).UTC()
			return &t, nil
		}
	}

	return nil, fmt.Errorf("unrecognized date %q", s)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// CoerceDatePtr is CoerceDate for optional input.
func CoerceDatePtr(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	return CoerceDate(*s)
}

// NormalizeJSON prepares a value for a JSONB column. It accepts a JSON
// value or a JSON string that itself holds JSON, and returns compact JSON.
// Empty input and null yield fallback.
func NormalizeJSON(raw json.RawMessage, fallback string) (json.RawMessage, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return json.RawMessage(fallback), nil
	}

	if raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return nil, fmt.Errorf("invalid JSON string: %w", err)
		}
		inner = strings.TrimSpace(inner)
		if inner == "" {
			return json.RawMessage(fallback), nil
		}
		raw = json.RawMessage(inner)
	}

	if !json.Valid(raw) {
		return nil, fmt.Errorf("invalid JSON value")
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return nil, err
	}
	return json.RawMessage(buf.Bytes()), nil
}

// CompletionPercentage returns the share of non-empty values, rounded down
// to a whole percent. Nil pointers, blank strings, zero times and empty
// JSON arrays or objects count as empty.
func CompletionPercentage(values ...any) int {
	if len(values) == 0 {
		return 0
	}

	filled := 0
	for _, v := range values {
		if !isEmpty(v) {
			filled++
		}
	}
	return filled * 100 / len(values)
}

func isEmpty(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	case *string:
		return val == nil || strings.TrimSpace(*val) == ""
	case json.RawMessage:
		return isEmptyJSON(val)
	case time.Time:
		return val.IsZero()
	case *time.Time:
		return val == nil || val.IsZero()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		return rv.IsNil()
	case reflect.Slice, reflect.Map:
		return rv.Len() == 0
	}
	return false
}

func isEmptyJSON(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	switch string(trimmed) {
	case "", "null", "[]", "{}", `""`:
		return true
	}
	return false
}

// Deref returns the value p points to, or the zero value.
func Deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
