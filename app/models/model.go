package models

import (
	"strconv"
	"strings"
	"time"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// DateLayout is the wire format for date-only fields (startDate/endDate).
const DateLayout = "2006-01-02"

// ApiTime decodes the backend's createdAt values, which are not consistent
// across endpoints (RFC3339 with and without fractional seconds, plain
// datetime strings, epoch milliseconds). Unparseable or missing values decode
// to the zero time so that descending sorts push them to the end.
type ApiTime struct {
	time.Time
}

var apiTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func (t *ApiTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range apiTimeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		t.Time = time.UnixMilli(ms).UTC()
		return nil
	}
	// Unknown format: treat like a missing timestamp rather than failing the
	// whole list decode.
	t.Time = time.Time{}
	return nil
}

func (t ApiTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.UTC().Format(time.RFC3339Nano) + `"`), nil
}

// Display returns the timestamp formatted for table cells, empty when unset.
func (t ApiTime) Display() string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02 Jan 2006 15:04")
}
