package models

import (
	"encoding/json"
	"time"
)

const (
	// DateLayout is the canonical rendering of a calendar date
	DateLayout = "2006-01-02"
	// InvalidDateText is what an unparsable date renders as
	InvalidDateText = "invalid date"
)

// Date is a calendar date read from the spreadsheet. An unparsable cell keeps its
// raw text and reports Valid() == false instead of collapsing to a zero time.
type Date struct {
	Time  time.Time
	Raw   string
	valid bool
}

// NewDate returns a valid date truncated to the calendar day in UTC
func NewDate(year int, month time.Month, day int) Date {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Date{Time: t, Raw: t.Format(DateLayout), valid: true}
}

// InvalidDate marks raw text that could not be parsed
func InvalidDate(raw string) Date {
	return Date{Raw: raw}
}

func (d Date) Valid() bool {
	return d.valid
}

func (d Date) String() string {
	if !d.valid {
		return InvalidDateText
	}
	return d.Time.Format(DateLayout)
}

// MarshalJSON renders a valid date as "YYYY-MM-DD" and an invalid one as null
func (d Date) MarshalJSON() ([]byte, error) {
	if !d.valid {
		return []byte("null"), nil
	}
	return json.Marshal(d.Time.Format(DateLayout))
}

// UnmarshalJSON accepts the MarshalJSON rendering
func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = InvalidDate("")
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		*d = InvalidDate(s)
		return nil
	}
	*d = NewDate(t.Year(), t.Month(), t.Day())
	return nil
}
