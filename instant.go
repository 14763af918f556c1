package intl

import (
	"fmt"
	"strings"
	"time"
)

// Instant is an absolute point in time stored as milliseconds since the Unix
// epoch. The location only affects the calendar field accessors and setters;
// two instants with the same millisecond value describe the same moment.
//
// The zero Instant is the epoch in UTC. Instants are immutable: every setter
// returns a new value.
type Instant struct {
	ms  int64
	loc *time.Location
}

// NewInstant builds an Instant from calendar fields. Month is zero based
// (0 = January). Out-of-range values carry into the adjacent field, so
// NewInstant(2025, 12, 1, ...) is January 1st 2026. A nil location means UTC.
func NewInstant(year, month, day, hour, minute, second, millisecond int, loc *time.Location) Instant {
	if loc == nil {
		loc = time.UTC
	}
	t := time.Date(year, time.Month(month+1), day, hour, minute, second, millisecond*int(time.Millisecond), loc)
	return Instant{ms: t.UnixMilli(), loc: loc}
}

// UnixMilli returns the Instant for the given epoch milliseconds in UTC.
func UnixMilli(ms int64) Instant {
	return Instant{ms: ms, loc: time.UTC}
}

// FromTime converts a time.Time, keeping its location. Sub-millisecond
// precision is truncated.
func FromTime(t time.Time) Instant {
	return Instant{ms: t.UnixMilli(), loc: t.Location()}
}

// Now returns the current Instant in UTC.
func Now() Instant {
	return FromTime(time.Now().UTC())
}

var dateOnlyLayouts = []string{
	"2006-01-02",
	"2006-01",
	"2006",
}

var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

var zonedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
	"2006-01-02 15:04:05Z07:00",
	time.RFC1123Z,
	time.RFC1123,
}

// ParseInstant parses an ISO 8601 style date-time string. Date-only forms
// are read as UTC midnight; date-time forms without an offset are read in UTC.
func ParseInstant(value string) (Instant, error) {
	return ParseInstantIn(value, time.UTC)
}

// ParseInstantIn parses like ParseInstant but reads date-time forms without
// an offset in loc. Date-only forms are always UTC.
func ParseInstantIn(value string, loc *time.Location) (Instant, error) {
	if loc == nil {
		loc = time.UTC
	}

	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Instant{}, fmt.Errorf("%w: empty string", ErrMalformedInput)
	}

	for _, layout := range dateOnlyLayouts {
		if t, err := time.ParseInLocation(layout, trimmed, time.UTC); err == nil {
			return Instant{ms: t.UnixMilli(), loc: loc}, nil
		}
	}

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return Instant{ms: t.UnixMilli(), loc: loc}, nil
		}
	}

	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, trimmed, loc); err == nil {
			return Instant{ms: t.UnixMilli(), loc: loc}, nil
		}
	}

	return Instant{}, fmt.Errorf("%w: %q", ErrMalformedInput, value)
}

// MustParseInstant is ParseInstant that panics on error. Intended for tests and
// package level variables.
func MustParseInstant(value string) Instant {
	i, err := ParseInstant(value)
	if err != nil {
		panic(err)
	}
	return i
}

func (i Instant) location() *time.Location {
	if i.loc == nil {
		return time.UTC
	}
	return i.loc
}

// ToTime returns the instant as a time.Time in the instant's location.
func (i Instant) ToTime() time.Time {
	return time.UnixMilli(i.ms).In(i.location())
}

// Location returns the location used by the field accessors.
func (i Instant) Location() *time.Location {
	return i.location()
}

// In returns the same moment projected onto loc.
func (i Instant) In(loc *time.Location) Instant {
	if loc == nil {
		loc = time.UTC
	}
	return Instant{ms: i.ms, loc: loc}
}

// UTC returns the same moment projected onto UTC.
func (i Instant) UTC() Instant {
	return i.In(time.UTC)
}

// Time returns the raw epoch milliseconds.
func (i Instant) Time() int64 {
	return i.ms
}

// UnixMilli is an alias of Time.
func (i Instant) UnixMilli() int64 {
	return i.ms
}

// Equal reports whether both instants describe the same moment.
func (i Instant) Equal(other Instant) bool {
	return i.ms == other.ms
}

func (i Instant) FullYear() int {
	return i.ToTime().Year()
}

// Month returns the zero based month, 0 (January) through 11 (December).
func (i Instant) Month() int {
	return int(i.ToTime().Month()) - 1
}

// Date returns the day of the month, 1 through 31.
func (i Instant) Date() int {
	return i.ToTime().Day()
}

// Day returns the weekday, 0 (Sunday) through 6 (Saturday).
func (i Instant) Day() int {
	return int(i.ToTime().Weekday())
}

func (i Instant) Hours() int {
	return i.ToTime().Hour()
}

func (i Instant) Minutes() int {
	return i.ToTime().Minute()
}

func (i Instant) Seconds() int {
	return i.ToTime().Second()
}

func (i Instant) Milliseconds() int {
	return i.ToTime().Nanosecond() / int(time.Millisecond)
}

type instantFields struct {
	year, month, day             int
	hour, minute, second, millis int
}

func (i Instant) fields() instantFields {
	t := i.ToTime()
	return instantFields{
		year:   t.Year(),
		month:  int(t.Month()) - 1,
		day:    t.Day(),
		hour:   t.Hour(),
		minute: t.Minute(),
		second: t.Second(),
		millis: t.Nanosecond() / int(time.Millisecond),
	}
}

func (i Instant) with(f instantFields) Instant {
	return NewInstant(f.year, f.month, f.day, f.hour, f.minute, f.second, f.millis, i.location())
}

// SetFullYear replaces the year and, when given, the month and day.
func (i Instant) SetFullYear(year int, monthDay ...int) Instant {
	f := i.fields()
	f.year = year
	if len(monthDay) > 0 {
		f.month = monthDay[0]
	}
	if len(monthDay) > 1 {
		f.day = monthDay[1]
	}
	return i.with(f)
}

// SetMonth replaces the zero based month and optionally the day. A day past
// the end of the target month rolls into the following month.
func (i Instant) SetMonth(month int, day ...int) Instant {
	f := i.fields()
	f.month = month
	if len(day) > 0 {
		f.day = day[0]
	}
	return i.with(f)
}

// SetDate replaces the day of the month. Zero is the last day of the
// previous month.
func (i Instant) SetDate(day int) Instant {
	f := i.fields()
	f.day = day
	return i.with(f)
}

// SetHours replaces the hour and optionally minutes, seconds and milliseconds.
func (i Instant) SetHours(hour int, rest ...int) Instant {
	f := i.fields()
	f.hour = hour
	if len(rest) > 0 {
		f.minute = rest[0]
	}
	if len(rest) > 1 {
		f.second = rest[1]
	}
	if len(rest) > 2 {
		f.millis = rest[2]
	}
	return i.with(f)
}

// SetMinutes replaces the minutes and optionally seconds and milliseconds.
func (i Instant) SetMinutes(minute int, rest ...int) Instant {
	f := i.fields()
	f.minute = minute
	if len(rest) > 0 {
		f.second = rest[0]
	}
	if len(rest) > 1 {
		f.millis = rest[1]
	}
	return i.with(f)
}

// SetSeconds replaces the seconds and optionally the milliseconds.
func (i Instant) SetSeconds(second int, millis ...int) Instant {
	f := i.fields()
	f.second = second
	if len(millis) > 0 {
		f.millis = millis[0]
	}
	return i.with(f)
}

func (i Instant) SetMilliseconds(millis int) Instant {
	f := i.fields()
	f.millis = millis
	return i.with(f)
}

// SetTime replaces the epoch milliseconds, keeping the location.
func (i Instant) SetTime(ms int64) Instant {
	return Instant{ms: ms, loc: i.location()}
}

const isoLayout = "2006-01-02T15:04:05.000Z"

// ToISOString renders the instant in UTC with millisecond precision,
// e.g. 2025-12-25T10:30:00.000Z.
func (i Instant) ToISOString() string {
	return time.UnixMilli(i.ms).UTC().Format(isoLayout)
}

// String renders the instant in its location, e.g.
// "Thu Dec 25 2025 10:30:00 GMT+0000 (UTC)".
func (i Instant) String() string {
	t := i.ToTime()
	name, _ := t.Zone()
	return t.Format("Mon Jan 02 2006 15:04:05 GMT-0700") + " (" + name + ")"
}

// MarshalText encodes the instant as an ISO string.
func (i Instant) MarshalText() ([]byte, error) {
	return []byte(i.ToISOString()), nil
}

// UnmarshalText accepts any form understood by ParseInstant.
func (i *Instant) UnmarshalText(data []byte) error {
	parsed, err := ParseInstant(string(data))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}
