// Package date provides a day-granularity Date type and the tolerant,
// deterministic parsing needed to read accounting exports.
package date

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02"

// DefaultFormats is the ordered list of layouts tried by Parse, covering the
// date shapes commonly found in accounting exports. The order is the
// determinism contract: an ambiguous token such as "01/02/2024" always
// resolves with the first matching layout, i.e. day-first.
var DefaultFormats = []string{
	"2006-01-02",
	"02/01/2006",
	"02-01-2006",
	"02.01.2006",
	"2006/01/02",
	"02/01/06",
	"02-01-06",
	"20060102",
}

// Date represents a date with day-level granularity.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.time().Month() }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Compare compares two dates, returning -1, 0 or +1.
func (d Date) Compare(x Date) int { return d.time().Compare(x.time()) }

// Today returns the current date.
func Today() Date { return New(time.Now().Date()) }

// String formats the date in its standard ISO-8601 form.
func (d Date) String() string { return d.time().Format(DateFormat) }

// YearMonth returns the calendar month containing d.
func (d Date) YearMonth() Month { return Month{y: d.y, m: d.m} }

// Parse parses a Date trying each layout of DefaultFormats in order.
// The first layout that matches wins.
func Parse(str string) (Date, error) { return ParseIn(DefaultFormats, str) }

// ParseIn parses a Date trying each of the given layouts in order.
func ParseIn(layouts []string, str string) (Date, error) {
	cleaned := strings.TrimSpace(str)
	if cleaned == "" {
		return Date{}, fmt.Errorf("empty date")
	}
	for _, layout := range layouts {
		if on, err := time.Parse(layout, cleaned); err == nil {
			return New(on.Date()), nil
		}
	}
	return Date{}, fmt.Errorf("unknown date format %q", str)
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON implements the json specific way to unmarshal a date from a json string.
func (j *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	d, err := Parse(str)
	if err != nil {
		return err
	}
	*j = d
	return nil
}

func (j Date) MarshalJSON() ([]byte, error) {
	str := j.String()
	return json.Marshal(&str)
}

// Month identifies a calendar month, the grouping key of the monthly activity
// summary.
type Month struct {
	y int
	m time.Month
}

// NewMonth returns the Month for the given year and month.
func NewMonth(year int, month time.Month) Month {
	// normalize through a date so that month 13 carries into the next year
	d := New(year, month, 1)
	return Month{y: d.y, m: d.m}
}

// String formats the month as "YYYY-MM". The form sorts chronologically.
func (m Month) String() string { return fmt.Sprintf("%04d-%02d", m.y, int(m.m)) }

// Before reports whether m is strictly before x.
func (m Month) Before(x Month) bool {
	return m.y < x.y || (m.y == x.y && m.m < x.m)
}

// Compare compares two months, returning -1, 0 or +1.
func (m Month) Compare(x Month) int {
	return strings.Compare(m.String(), x.String())
}
