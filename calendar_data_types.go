package intl

import "fmt"

// CalendarBundle holds the gregorian calendar data for one locale: names,
// style patterns and the skeleton table used for field options. Patterns use
// CLDR date pattern syntax.
type CalendarBundle struct {
	Locale string `json:"locale" yaml:"locale"`
	// Parent names a bundle that supplies every field left empty here.
	Parent string `json:"parent,omitempty" yaml:"parent,omitempty"`

	Months           NameSet    `json:"months" yaml:"months"`
	MonthsStandalone NameSet    `json:"months_standalone" yaml:"months_standalone"`
	Weekdays         NameSet    `json:"weekdays" yaml:"weekdays"`
	DayPeriods       DayPeriods `json:"day_periods" yaml:"day_periods"`

	DateFormats     StylePatterns `json:"date_formats" yaml:"date_formats"`
	TimeFormats     StylePatterns `json:"time_formats" yaml:"time_formats"`
	DateTimeFormats StylePatterns `json:"date_time_formats" yaml:"date_time_formats"`

	// AvailableFormats maps CLDR skeletons (yMMMEd, Hm, ...) to patterns.
	AvailableFormats map[string]string `json:"available_formats" yaml:"available_formats"`

	Conventions LocaleConventions `json:"conventions" yaml:"conventions"`
}

// NameSet lists names by width. Each slice is indexed from January (months)
// or Sunday (weekdays).
type NameSet struct {
	Wide        []string `json:"wide,omitempty" yaml:"wide,omitempty"`
	Abbreviated []string `json:"abbreviated,omitempty" yaml:"abbreviated,omitempty"`
	Short       []string `json:"short,omitempty" yaml:"short,omitempty"`
	Narrow      []string `json:"narrow,omitempty" yaml:"narrow,omitempty"`
}

type DayPeriods struct {
	AM string `json:"am" yaml:"am"`
	PM string `json:"pm" yaml:"pm"`
}

// StylePatterns holds one pattern per dateStyle/timeStyle length. For
// DateTimeFormats the pattern glues {1} (date) and {0} (time).
type StylePatterns struct {
	Full   string `json:"full" yaml:"full"`
	Long   string `json:"long" yaml:"long"`
	Medium string `json:"medium" yaml:"medium"`
	Short  string `json:"short" yaml:"short"`
}

// LocaleConventions carries locale data outside the CLDR calendar tree.
type LocaleConventions struct {
	NumberingSystem  string `json:"numbering_system" yaml:"numbering_system"`
	HourCycle        string `json:"hour_cycle" yaml:"hour_cycle"`
	HourCycle12      string `json:"hour_cycle_12" yaml:"hour_cycle_12"`
	DecimalSeparator string `json:"decimal_separator" yaml:"decimal_separator"`
	// GMTFormat wraps an offset, e.g. "GMT{0}". GMTZeroFormat is used at offset zero.
	GMTFormat     string `json:"gmt_format" yaml:"gmt_format"`
	GMTZeroFormat string `json:"gmt_zero_format" yaml:"gmt_zero_format"`
	UTCLongName   string `json:"utc_long_name" yaml:"utc_long_name"`
	// ZoneAbbreviations are the zone abbreviations (EST, BST) shown as short
	// zone names. Other zones render as a GMT offset.
	ZoneAbbreviations []string `json:"zone_abbreviations,omitempty" yaml:"zone_abbreviations,omitempty"`
}

// CalendarData is the root document read by CalendarDataLoader.
type CalendarData struct {
	Locales map[string]CalendarBundle `json:"locales" yaml:"locales"`
}

func (s StylePatterns) get(style string) string {
	switch style {
	case StyleFull:
		return s.Full
	case StyleLong:
		return s.Long
	case StyleMedium:
		return s.Medium
	default:
		return s.Short
	}
}

// CLDR name widths.
const (
	widthWide        = "wide"
	widthAbbreviated = "abbreviated"
	widthShort       = "short"
	widthNarrow      = "narrow"
)

func (n NameSet) pick(index int, width string) string {
	var names []string
	switch width {
	case widthShort:
		names = n.Short
		if len(names) == 0 {
			names = n.Abbreviated
		}
	case widthNarrow:
		names = n.Narrow
	case widthWide:
		names = n.Wide
	default:
		names = n.Abbreviated
	}

	if index < 0 || index >= len(names) {
		names = n.Wide
	}
	if index < 0 || index >= len(names) {
		return ""
	}
	return names[index]
}

func (n NameSet) isEmpty() bool {
	return len(n.Wide) == 0 && len(n.Abbreviated) == 0 && len(n.Short) == 0 && len(n.Narrow) == 0
}

func (b CalendarBundle) validate() error {
	if len(b.Months.Wide) != 12 {
		return fmt.Errorf("%w: %s needs 12 wide month names, got %d", ErrInvalidCalendarData, b.Locale, len(b.Months.Wide))
	}
	if len(b.Weekdays.Wide) != 7 {
		return fmt.Errorf("%w: %s needs 7 wide weekday names, got %d", ErrInvalidCalendarData, b.Locale, len(b.Weekdays.Wide))
	}
	for _, style := range styleValues {
		if b.DateFormats.get(style) == "" || b.TimeFormats.get(style) == "" || b.DateTimeFormats.get(style) == "" {
			return fmt.Errorf("%w: %s is missing %s style patterns", ErrInvalidCalendarData, b.Locale, style)
		}
	}
	return nil
}

// mergeCalendarBundle overlays every non-empty field of source onto dest.
func mergeCalendarBundle(dest *CalendarBundle, source CalendarBundle) {
	if source.Locale != "" {
		dest.Locale = source.Locale
	}
	dest.Months = mergeNameSet(dest.Months, source.Months)
	dest.MonthsStandalone = mergeNameSet(dest.MonthsStandalone, source.MonthsStandalone)
	dest.Weekdays = mergeNameSet(dest.Weekdays, source.Weekdays)

	if source.DayPeriods.AM != "" {
		dest.DayPeriods.AM = source.DayPeriods.AM
	}
	if source.DayPeriods.PM != "" {
		dest.DayPeriods.PM = source.DayPeriods.PM
	}

	dest.DateFormats = mergeStylePatterns(dest.DateFormats, source.DateFormats)
	dest.TimeFormats = mergeStylePatterns(dest.TimeFormats, source.TimeFormats)
	dest.DateTimeFormats = mergeStylePatterns(dest.DateTimeFormats, source.DateTimeFormats)

	if len(source.AvailableFormats) > 0 {
		merged := make(map[string]string, len(dest.AvailableFormats)+len(source.AvailableFormats))
		for k, v := range dest.AvailableFormats {
			merged[k] = v
		}
		for k, v := range source.AvailableFormats {
			merged[k] = v
		}
		dest.AvailableFormats = merged
	}

	dest.Conventions = mergeConventions(dest.Conventions, source.Conventions)
}

func mergeNameSet(dest, source NameSet) NameSet {
	if len(source.Wide) > 0 {
		dest.Wide = append([]string(nil), source.Wide...)
	}
	if len(source.Abbreviated) > 0 {
		dest.Abbreviated = append([]string(nil), source.Abbreviated...)
	}
	if len(source.Short) > 0 {
		dest.Short = append([]string(nil), source.Short...)
	}
	if len(source.Narrow) > 0 {
		dest.Narrow = append([]string(nil), source.Narrow...)
	}
	return dest
}

func mergeStylePatterns(dest, source StylePatterns) StylePatterns {
	if source.Full != "" {
		dest.Full = source.Full
	}
	if source.Long != "" {
		dest.Long = source.Long
	}
	if source.Medium != "" {
		dest.Medium = source.Medium
	}
	if source.Short != "" {
		dest.Short = source.Short
	}
	return dest
}

func mergeConventions(dest, source LocaleConventions) LocaleConventions {
	if source.NumberingSystem != "" {
		dest.NumberingSystem = source.NumberingSystem
	}
	if source.HourCycle != "" {
		dest.HourCycle = source.HourCycle
	}
	if source.HourCycle12 != "" {
		dest.HourCycle12 = source.HourCycle12
	}
	if source.DecimalSeparator != "" {
		dest.DecimalSeparator = source.DecimalSeparator
	}
	if source.GMTFormat != "" {
		dest.GMTFormat = source.GMTFormat
	}
	if source.GMTZeroFormat != "" {
		dest.GMTZeroFormat = source.GMTZeroFormat
	}
	if source.UTCLongName != "" {
		dest.UTCLongName = source.UTCLongName
	}
	if len(source.ZoneAbbreviations) > 0 {
		dest.ZoneAbbreviations = append([]string(nil), source.ZoneAbbreviations...)
	}
	return dest
}

func cloneCalendarBundle(b CalendarBundle) CalendarBundle {
	var out CalendarBundle
	out.Parent = b.Parent
	mergeCalendarBundle(&out, b)
	return out
}
