package ingestion

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"client-directory/internal/models"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCurrency = errors.New("not a currency value")
	ErrInvalidInteger  = errors.New("not an integer")
	ErrInvalidDate     = errors.New("not a date")
)

// dateLayouts are tried in order. Day-first layouts come before month-first
// ones because the source spreadsheet is written in a day-first locale.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2006/01/02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"02/01/2006 15:04:05",
}

// ParseCurrency converts a currency-formatted cell into a decimal.
//
// A pipe is a legacy decimal point: when present it is the decimal separator and
// every '.' or ',' is a thousands separator. When both '.' and ',' appear the
// rightmost one is the decimal separator, so "R$ 1.234,56" and "1,234.56" read
// as 1234.56. A separator that repeats ("1.000.000") groups thousands. A single
// separator followed by exactly three digits, after a leading group of one to
// three digits not starting with 0, also groups thousands: "R$ 1.234" and
// "1,234" are 1234, while "1234.567" and "0,500" keep their decimals.
// Everything that is not a digit, '-' or '.' is then dropped. An empty or
// all-stripped cell is zero; leftovers that still do not parse are zero plus
// ErrInvalidCurrency.
func ParseCurrency(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, nil
	}

	lastComma := strings.LastIndex(s, ",")
	lastDot := strings.LastIndex(s, ".")

	switch {
	case strings.Contains(s, "|"):
		s = strings.NewReplacer(".", "", ",", "").Replace(s)
		s = strings.ReplaceAll(s, "|", ".")
	case lastComma >= 0 && lastDot >= 0:
		if lastComma > lastDot {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastComma >= 0:
		s = normalizeSingleSeparator(s, ",")
	case lastDot >= 0:
		s = normalizeSingleSeparator(s, ".")
	}

	s = stripExcept(s, "0123456789-.")
	if s == "" || s == "-" || s == "." || s == "-." {
		return decimal.Zero, nil
	}

	value, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidCurrency, raw)
	}
	return value, nil
}

// normalizeSingleSeparator handles a cell whose only separator is sep
func normalizeSingleSeparator(s, sep string) string {
	if strings.Count(s, sep) > 1 || groupsThousands(s, sep) {
		return strings.ReplaceAll(s, sep, "")
	}
	return strings.Replace(s, sep, ".", 1)
}

func groupsThousands(s, sep string) bool {
	digits := stripExcept(s, "0123456789"+sep)
	head, tail, _ := strings.Cut(digits, sep)
	return len(tail) == 3 && len(head) >= 1 && len(head) <= 3 && head[0] != '0'
}

// ParseInteger parses a decimal integer cell. Anything else is an error; it is
// never coerced to zero.
func ParseInteger(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	value, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInteger, raw)
	}
	return value, nil
}

// ParseTaxID keeps only the digits of a tax id, the canonical join key
func ParseTaxID(raw string) string {
	return stripExcept(raw, "0123456789")
}

// ParseDate parses a calendar date. An unparsable cell yields an invalid Date
// that keeps the raw text, along with ErrInvalidDate.
func ParseDate(raw string) (models.Date, error) {
	s := strings.TrimSpace(raw)
	if s != "" {
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return models.NewDate(t.Year(), t.Month(), t.Day()), nil
			}
		}
	}
	return models.InvalidDate(raw), fmt.Errorf("%w: %q", ErrInvalidDate, raw)
}

// OptionalText returns nil for an empty cell
func OptionalText(raw string) *string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	return &s
}

// ParseMaritalStatus passes the value through; values outside the closed set are kept verbatim
func ParseMaritalStatus(raw string) models.MaritalStatus {
	return models.MaritalStatus(strings.TrimSpace(raw))
}

// ParseAccountType passes the value through; values outside the closed set are kept verbatim
func ParseAccountType(raw string) models.AccountType {
	return models.AccountType(strings.TrimSpace(raw))
}

// NormalizeAddress renders the legacy '|' address separator as ", "
func NormalizeAddress(raw string) string {
	parts := strings.Split(raw, "|")
	kept := parts[:0]
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, ", ")
}

func stripExcept(s, keep string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if strings.ContainsRune(keep, r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
