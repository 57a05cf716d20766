// Package domain holds the normalized entity records exchanged with the
// gestion-loyer API. Records are decoded once at the API boundary into a
// single consistent shape; downstream engines never see raw wire payloads.
package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// The server parses amounts as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Date is a calendar date on the wire. The server is inconsistent about
// formats (plain dates, RFC3339 timestamps, "YYYY-MM" months), so decoding
// tries each known layout. Comparisons are at day granularity.
type Date struct {
	time.Time
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05.000Z",
	"2006-01-02 15:04:05",
	"2006-01",
}

// NewDate builds a Date truncated to day granularity in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to day granularity in UTC.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// UnmarshalJSON accepts any of the server's date layouts. Null and the
// empty string decode to the zero Date.
func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("domain: decoding date: %w", err)
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			*d = DateOf(t)
			return nil
		}
	}
	return fmt.Errorf("domain: unrecognized date %q", s)
}

// MarshalJSON emits the plain-date layout the server accepts everywhere.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(d.Format("2006-01-02"))
}

// Before reports whether d is strictly before other, day granularity.
func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}

// After reports whether d is strictly after other, day granularity.
func (d Date) After(other Date) bool {
	return d.Time.After(other.Time)
}

// SameMonth reports whether both dates fall in the same calendar month.
func (d Date) SameMonth(other Date) bool {
	return d.Year() == other.Year() && d.Month() == other.Month()
}

// MonthKey returns the "YYYY-MM" key used for mois_concerne grouping.
func (d Date) MonthKey() string {
	if d.IsZero() {
		return ""
	}
	return d.Format("2006-01")
}

// FlexBool decodes the server's archive flag, which arrives either as a
// JSON bool or as 0/1 depending on the endpoint.
type FlexBool bool

// UnmarshalJSON accepts true/false, 0/1 and null.
func (b *FlexBool) UnmarshalJSON(data []byte) error {
	switch {
	case bytes.Equal(data, []byte("null")):
		*b = false
	case bytes.Equal(data, []byte("true")):
		*b = true
	case bytes.Equal(data, []byte("false")):
		*b = false
	default:
		var n float64
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("domain: decoding flag: %w", err)
		}
		*b = n != 0
	}
	return nil
}

// MarshalJSON emits a plain JSON bool.
func (b FlexBool) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(b))
}

// Bool returns the flag as a plain bool.
func (b FlexBool) Bool() bool { return bool(b) }
