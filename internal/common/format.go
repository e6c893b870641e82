package common

import (
	"time"

	"github.com/shopspring/decimal"
)

// ISOMillis is the timestamp layout used in every response body.
const ISOMillis = "2006-01-02T15:04:05.000Z"

// maxAmount is the first value NUMERIC(15,2) cannot hold.
var maxAmount = decimal.New(1, 13)

func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func FormatTime(t time.Time) string {
	return t.UTC().Format(ISOMillis)
}

// ParseAmount parses a decimal string rounded to cents. It reports failures
// against field so they can join the other validation errors.
func ParseAmount(field, s string) (decimal.Decimal, *FieldError) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &FieldError{Field: field, Rule: "decimal", Message: field + " must be a decimal number"}
	}
	d = d.Round(2)
	if d.Abs().GreaterThanOrEqual(maxAmount) {
		return decimal.Zero, &FieldError{Field: field, Rule: "decimal", Message: field + " is out of range"}
	}
	return d, nil
}

// ParseDate accepts an RFC 3339 timestamp or a bare YYYY-MM-DD date (UTC).
func ParseDate(field, s string) (time.Time, *FieldError) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	return time.Time{}, &FieldError{Field: field, Rule: "datetime", Message: field + " must be an ISO-8601 date"}
}
