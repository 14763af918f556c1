package intl

// localeConventions holds the locale data intl-calendars does not extract
// from the CLDR calendar tree. It is merged over calendarBundles at load time.
var localeConventions = map[string]LocaleConventions{
	"ar": {
		NumberingSystem:  "arab",
		HourCycle:        HourCycleH12,
		HourCycle12:      HourCycleH12,
		DecimalSeparator: "٫",
		GMTFormat:        "غرينتش{0}",
		GMTZeroFormat:    "غرينتش",
		UTCLongName:      "التوقيت العالمي المنسق",
	},
	"ar-MA": {
		NumberingSystem:  "latn",
		DecimalSeparator: ",",
	},
	"de": {
		NumberingSystem:  "latn",
		HourCycle:        HourCycleH23,
		HourCycle12:      HourCycleH12,
		DecimalSeparator: ",",
		GMTFormat:        "GMT{0}",
		GMTZeroFormat:    "GMT",
		UTCLongName:      "Koordinierte Weltzeit",
	},
	"en": {
		NumberingSystem:   "latn",
		HourCycle:         HourCycleH12,
		HourCycle12:       HourCycleH12,
		DecimalSeparator:  ".",
		GMTFormat:         "GMT{0}",
		GMTZeroFormat:     "GMT",
		UTCLongName:       "Coordinated Universal Time",
		ZoneAbbreviations: []string{"EST", "EDT", "CST", "CDT", "MST", "MDT", "PST", "PDT", "AKST", "AKDT", "HST"},
	},
	"en-GB": {
		HourCycle:         HourCycleH23,
		ZoneAbbreviations: []string{"BST"},
	},
	"es": {
		NumberingSystem:  "latn",
		HourCycle:        HourCycleH23,
		HourCycle12:      HourCycleH12,
		DecimalSeparator: ",",
		GMTFormat:        "GMT{0}",
		GMTZeroFormat:    "GMT",
		UTCLongName:      "tiempo universal coordinado",
	},
	"fr": {
		NumberingSystem:  "latn",
		HourCycle:        HourCycleH23,
		HourCycle12:      HourCycleH12,
		DecimalSeparator: ",",
		GMTFormat:        "UTC{0}",
		GMTZeroFormat:    "UTC",
		UTCLongName:      "temps universel coordonné",
	},
	"ja": {
		NumberingSystem:  "latn",
		HourCycle:        HourCycleH23,
		HourCycle12:      HourCycleH11,
		DecimalSeparator: ".",
		GMTFormat:        "GMT{0}",
		GMTZeroFormat:    "GMT",
		UTCLongName:      "協定世界時",
	},
	"ru": {
		NumberingSystem:  "latn",
		HourCycle:        HourCycleH23,
		HourCycle12:      HourCycleH12,
		DecimalSeparator: ",",
		GMTFormat:        "GMT{0}",
		GMTZeroFormat:    "GMT",
		UTCLongName:      "Всемирное координированное время",
	},
	"zh": {
		NumberingSystem:  "latn",
		HourCycle:        HourCycleH23,
		HourCycle12:      HourCycleH12,
		DecimalSeparator: ".",
		GMTFormat:        "GMT{0}",
		GMTZeroFormat:    "GMT",
		UTCLongName:      "协调世界时",
	},
}

// decimalNumberingSystems lists the -u-nu- ids with one native digit per
// ASCII digit. Algorithmic systems such as hanidec or roman are ignored.
var decimalNumberingSystems = map[string]bool{
	"arab":     true,
	"arabext":  true,
	"beng":     true,
	"deva":     true,
	"fullwide": true,
	"gujr":     true,
	"guru":     true,
	"khmr":     true,
	"knda":     true,
	"laoo":     true,
	"latn":     true,
	"mlym":     true,
	"mymr":     true,
	"orya":     true,
	"tamldec":  true,
	"telu":     true,
	"thai":     true,
	"tibt":     true,
}

// builtinCalendarData merges the generated bundles with their conventions.
func builtinCalendarData() *CalendarData {
	locales := make(map[string]CalendarBundle, len(calendarBundles))
	for code, bundle := range calendarBundles {
		merged := cloneCalendarBundle(bundle)
		if conventions, ok := localeConventions[code]; ok {
			merged.Conventions = mergeConventions(merged.Conventions, conventions)
		}
		locales[code] = merged
	}
	return &CalendarData{Locales: locales}
}
