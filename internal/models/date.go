package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04",
	time.DateOnly,
}

// Date decodes the date formats browsers send from date and datetime-local
// inputs as well as full RFC 3339 timestamps. null and "" leave it unset.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}

	if s == "" {
		return nil
	}

	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			d.Time = t.UTC()
			return nil
		}
	}

	return fmt.Errorf("invalid date %q", s)
}

// Ptr returns nil for an unset date.
func (d Date) Ptr() *time.Time {
	if d.IsZero() {
		return nil
	}

	t := d.Time

	return &t
}
