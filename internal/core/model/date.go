package model

import (
	"time"

	"github.com/pkg/errors"
)

// DateLayout is the wire and storage representation of a calendar date.
const DateLayout = "2006-01-02"

// Date is a calendar day without time of day nor location.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the normalized date, e.g. June 31 becomes July 1.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Year: year, Month: month, Day: day}
}

// Today returns the current calendar day in the given location.
func Today(loc *time.Location) Date {
	return DateOf(time.Now().In(loc))
}

func ParseDate(raw string) (Date, error) {
	t, err := time.ParseInLocation(DateLayout, raw, time.UTC)
	if err != nil {
		return Date{}, errors.Wrapf(err, "could not parse date '%s'", raw)
	}

	return DateOf(t), nil
}

// In returns the midnight instant of the date in the given location.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// Local returns the midnight instant of the date in the local location.
func (d Date) Local() time.Time {
	return d.In(time.Local)
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) AddDays(days int) Date {
	return NewDate(d.Year, d.Month, d.Day+days)
}

func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return compareInt(d.Year, other.Year)
	case d.Month != other.Month:
		return compareInt(int(d.Month), int(other.Month))
	default:
		return compareInt(d.Day, other.Day)
	}
}

func (d Date) Before(other Date) bool {
	return d.Compare(other) < 0
}

func (d Date) After(other Date) bool {
	return d.Compare(other) > 0
}

// String implements [fmt.Stringer].
func (d Date) String() string {
	return d.In(time.UTC).Format(DateLayout)
}

// MarshalText implements [encoding.TextMarshaler].
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (d *Date) UnmarshalText(data []byte) error {
	parsed, err := ParseDate(string(data))
	if err != nil {
		return errors.WithStack(err)
	}

	*d = parsed

	return nil
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
