package models

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidEpoch is returned when a value cannot be parsed as
// epoch milliseconds.
var ErrInvalidEpoch = errors.New("invalid epoch milliseconds value")

// EpochMillis is a timestamp received from clients as an integer number
// of milliseconds since the Unix epoch. Clients send it either as a JSON
// number or as a numeric string; anything else is rejected.
type EpochMillis int64

// UnmarshalJSON accepts both 1700000000000 and "1700000000000".
func (e *EpochMillis) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return ErrInvalidEpoch
	}
	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return ErrInvalidEpoch
	}
	*e = EpochMillis(ms)
	return nil
}

// MarshalJSON emits the raw millisecond value.
func (e EpochMillis) MarshalJSON() ([]byte, error) {
	return json.Marshal(int64(e))
}

// Time converts the value to a time.Time in UTC.
func (e EpochMillis) Time() time.Time {
	return time.UnixMilli(int64(e)).UTC()
}

// IsZero reports whether the value was never set.
func (e EpochMillis) IsZero() bool {
	return e == 0
}

// ParseEpochMillis parses a query-string value with the same rules as
// the JSON form.
func ParseEpochMillis(s string) (time.Time, error) {
	ms, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return time.Time{}, ErrInvalidEpoch
	}
	return time.UnixMilli(ms).UTC(), nil
}
