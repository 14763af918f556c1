package intl

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// Style values shared by the field options. The empty string omits a field.
const (
	StyleLong    = "long"
	StyleShort   = "short"
	StyleNarrow  = "narrow"
	StyleNumeric = "numeric"
	Style2Digit  = "2-digit"
)

// Values accepted by DateStyle and TimeStyle.
const (
	StyleFull   = "full"
	StyleMedium = "medium"
)

// Hour cycles, as in the Unicode -u-hc- locale extension.
const (
	HourCycleH11 = "h11"
	HourCycleH12 = "h12"
	HourCycleH23 = "h23"
	HourCycleH24 = "h24"
)

// FormatOptions selects which calendar fields a DateTimeFormat renders and how.
// DateStyle/TimeStyle are shorthands and cannot be combined with the
// individual field options.
type FormatOptions struct {
	Weekday string `json:"weekday,omitempty" yaml:"weekday,omitempty" mapstructure:"weekday"`
	Year    string `json:"year,omitempty" yaml:"year,omitempty" mapstructure:"year"`
	Month   string `json:"month,omitempty" yaml:"month,omitempty" mapstructure:"month"`
	Day     string `json:"day,omitempty" yaml:"day,omitempty" mapstructure:"day"`
	Hour    string `json:"hour,omitempty" yaml:"hour,omitempty" mapstructure:"hour"`
	Minute  string `json:"minute,omitempty" yaml:"minute,omitempty" mapstructure:"minute"`
	Second  string `json:"second,omitempty" yaml:"second,omitempty" mapstructure:"second"`

	// FractionalSecondDigits renders 1 to 3 digits of the second fraction.
	FractionalSecondDigits int `json:"fractional_second_digits,omitempty" yaml:"fractional_second_digits,omitempty" mapstructure:"fractional_second_digits"`

	// Hour12 overrides HourCycle and the locale default when set.
	Hour12    *bool  `json:"hour12,omitempty" yaml:"hour12,omitempty" mapstructure:"hour12"`
	HourCycle string `json:"hour_cycle,omitempty" yaml:"hour_cycle,omitempty" mapstructure:"hour_cycle"`

	// TimeZone is an IANA name. Empty renders in the instant's own location.
	TimeZone     string `json:"time_zone,omitempty" yaml:"time_zone,omitempty" mapstructure:"time_zone"`
	TimeZoneName string `json:"time_zone_name,omitempty" yaml:"time_zone_name,omitempty" mapstructure:"time_zone_name"`

	DateStyle string `json:"date_style,omitempty" yaml:"date_style,omitempty" mapstructure:"date_style"`
	TimeStyle string `json:"time_style,omitempty" yaml:"time_style,omitempty" mapstructure:"time_style"`
}

// Bool returns a pointer to v, for FormatOptions.Hour12.
func Bool(v bool) *bool {
	return &v
}

var (
	weekdayValues   = []string{StyleLong, StyleShort, StyleNarrow}
	numericValues   = []string{StyleNumeric, Style2Digit}
	monthValues     = []string{StyleLong, StyleShort, StyleNarrow, StyleNumeric, Style2Digit}
	styleValues     = []string{StyleFull, StyleLong, StyleMedium, StyleShort}
	zoneNameValues  = []string{StyleLong, StyleShort}
	hourCycleValues = []string{HourCycleH11, HourCycleH12, HourCycleH23, HourCycleH24}
)

// Validate checks option values and rejects style shorthands mixed with
// field options.
func (o FormatOptions) Validate() error {
	checks := []struct {
		name    string
		value   string
		allowed []string
	}{
		{"weekday", o.Weekday, weekdayValues},
		{"year", o.Year, numericValues},
		{"month", o.Month, monthValues},
		{"day", o.Day, numericValues},
		{"hour", o.Hour, numericValues},
		{"minute", o.Minute, numericValues},
		{"second", o.Second, numericValues},
		{"hourCycle", o.HourCycle, hourCycleValues},
		{"timeZoneName", o.TimeZoneName, zoneNameValues},
		{"dateStyle", o.DateStyle, styleValues},
		{"timeStyle", o.TimeStyle, styleValues},
	}

	for _, check := range checks {
		if check.value == "" {
			continue
		}
		if !slices.Contains(check.allowed, check.value) {
			return fmt.Errorf("%w: %s %q (allowed: %s)", ErrInvalidOption, check.name, check.value, strings.Join(check.allowed, ", "))
		}
	}

	if o.FractionalSecondDigits < 0 || o.FractionalSecondDigits > 3 {
		return fmt.Errorf("%w: fractionalSecondDigits %d (allowed: 0-3)", ErrInvalidOption, o.FractionalSecondDigits)
	}

	if o.hasStyle() && (o.hasFields() || o.TimeZoneName != "") {
		return ErrConflictingOptions
	}

	return nil
}

func (o FormatOptions) hasStyle() bool {
	return o.DateStyle != "" || o.TimeStyle != ""
}

func (o FormatOptions) hasDateFields() bool {
	return o.Weekday != "" || o.Year != "" || o.Month != "" || o.Day != ""
}

func (o FormatOptions) hasTimeFields() bool {
	return o.Hour != "" || o.Minute != "" || o.Second != "" || o.FractionalSecondDigits > 0
}

func (o FormatOptions) hasFields() bool {
	return o.hasDateFields() || o.hasTimeFields()
}

// withDefaults fills year/month/day numeric when nothing is requested.
func (o FormatOptions) withDefaults() FormatOptions {
	if o.hasStyle() || o.hasFields() {
		return o
	}
	o.Year = StyleNumeric
	o.Month = StyleNumeric
	o.Day = StyleNumeric
	return o
}

// key identifies an option set for caching.
func (o FormatOptions) key() string {
	hour12 := "-"
	if o.Hour12 != nil {
		hour12 = strconv.FormatBool(*o.Hour12)
	}
	return strings.Join([]string{
		o.Weekday, o.Year, o.Month, o.Day, o.Hour, o.Minute, o.Second,
		strconv.Itoa(o.FractionalSecondDigits), hour12, o.HourCycle,
		o.TimeZone, o.TimeZoneName, o.DateStyle, o.TimeStyle,
	}, "|")
}

// ParseFormatOptions decodes loosely typed option values, as found in config
// files or template arguments. Keys match the mapstructure tags ignoring case
// and underscores, so "timeZone" and "time_zone" are equivalent.
func ParseFormatOptions(values map[string]any) (FormatOptions, error) {
	var opts FormatOptions
	if len(values) == 0 {
		return opts, nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &opts,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		MatchName: func(mapKey, fieldName string) bool {
			return optionKey(mapKey) == optionKey(fieldName)
		},
	})
	if err != nil {
		return FormatOptions{}, err
	}
	if err := decoder.Decode(values); err != nil {
		return FormatOptions{}, fmt.Errorf("%w: %v", ErrInvalidOption, err)
	}
	if err := opts.Validate(); err != nil {
		return FormatOptions{}, err
	}
	return opts, nil
}

func optionKey(name string) string {
	return strings.ToLower(strings.NewReplacer("_", "", "-", "").Replace(name))
}

// ParseFormatOptionPairs reads "key=value" strings into FormatOptions.
func ParseFormatOptionPairs(pairs ...string) (FormatOptions, error) {
	values := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return FormatOptions{}, fmt.Errorf("%w: expected key=value, got %q", ErrInvalidOption, pair)
		}
		values[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return ParseFormatOptions(values)
}
