// Package jsontime provides time types decoded from JSON epoch values.
package jsontime

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

// Milli is a time.Time decoded from Unix milliseconds in JSON.
//
// The Kling API stamps tasks with created_at/updated_at in milliseconds.
// null and quoted numbers decode as well; null leaves the zero time.
type Milli time.Time

// Time returns the underlying time.Time value.
func (ep Milli) Time() time.Time {
	return time.Time(ep)
}

// IsZero reports whether ep represents the zero time instant.
func (ep Milli) IsZero() bool {
	return time.Time(ep).IsZero()
}

// String returns the time formatted as RFC 3339, or "-" for the zero time.
func (ep Milli) String() string {
	if ep.IsZero() {
		return "-"
	}
	return time.Time(ep).Format(time.RFC3339)
}

// UnmarshalJSON implements json.Unmarshaler.
func (ep *Milli) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*ep = Milli{}
		return nil
	}
	if len(b) > 1 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		b = []byte(s)
	}
	t, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return err
	}
	*ep = Milli(time.UnixMilli(t))
	return nil
}
