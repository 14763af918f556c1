package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	cldr "golang.org/x/text/unicode/cldr"
)

type generatorConfig struct {
	pkg      string
	out      string
	cldrPath string
	locales  []string
}

type nameSet struct {
	Wide        []string
	Abbreviated []string
	Short       []string
	Narrow      []string
}

type stylePatterns struct {
	Full   string
	Long   string
	Medium string
	Short  string
}

type bundlePayload struct {
	Locale           string
	Parent           string
	Months           nameSet
	MonthsStandalone nameSet
	Weekdays         nameSet
	AM               string
	PM               string
	DateFormats      stylePatterns
	TimeFormats      stylePatterns
	DateTimeFormats  stylePatterns
	Available        map[string]string
}

var weekdayKeys = []string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

type localeFlag struct {
	items []string
}

func (f *localeFlag) String() string {
	return strings.Join(f.items, ",")
}

func (f *localeFlag) Set(value string) error {
	parts := strings.Split(value, ",")
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f.items = append(f.items, part)
	}
	return nil
}

func main() {
	cfg, err := parseFlags()
	if err != nil {
		reportError(err)
	}

	if err := run(cfg); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "intl-calendars: %v\n", err)
	os.Exit(1)
}

func parseFlags() (generatorConfig, error) {
	var cfg generatorConfig
	var localeList localeFlag

	flag.StringVar(&cfg.pkg, "pkg", "intl", "package name for generated file")
	flag.StringVar(&cfg.out, "out", "calendar_data.go", "path to generated Go file")
	flag.StringVar(&cfg.cldrPath, "cldr", "", "path to CLDR core data directory (expects a main/ subdirectory)")
	flag.Var(&localeList, "locale", "locale to generate. Repeat flag or separate with commas to add more.")

	flag.Parse()

	if len(localeList.items) == 0 {
		return generatorConfig{}, errors.New("at least one -locale value is required")
	}

	for _, locale := range localeList.items {
		normalized, err := normalizeLocale(locale)
		if err != nil {
			return generatorConfig{}, err
		}
		cfg.locales = append(cfg.locales, normalized)
	}

	if cfg.cldrPath == "" {
		cfg.cldrPath = os.Getenv("CLDR_CORE_DIR")
	}

	if cfg.cldrPath == "" {
		return generatorConfig{}, errors.New("missing CLDR data directory (set -cldr or CLDR_CORE_DIR)")
	}

	return cfg, nil
}

func run(cfg generatorConfig) error {
	data, err := loadCLDR(cfg.cldrPath)
	if err != nil {
		return err
	}

	var bundles []bundlePayload
	for _, locale := range cfg.locales {
		payload, err := buildBundle(data, locale, cfg.locales)
		if err != nil {
			return fmt.Errorf("build bundle for %s: %w", locale, err)
		}
		bundles = append(bundles, payload)
	}

	sort.Slice(bundles, func(i, j int) bool {
		return bundles[i].Locale < bundles[j].Locale
	})

	source, err := renderSource(cfg.pkg, bundles)
	if err != nil {
		return err
	}

	if err := ensureDir(cfg.out); err != nil {
		return err
	}

	return os.WriteFile(cfg.out, source, 0o644)
}

func loadCLDR(path string) (*cldr.CLDR, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat CLDR directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("CLDR path %q is not a directory", path)
	}

	var decoder cldr.Decoder
	decoder.SetSectionFilter("main")

	data, err := decoder.DecodePath(path)
	if err != nil {
		return nil, fmt.Errorf("decode CLDR data: %w", err)
	}
	return data, nil
}

func normalizeLocale(input string) (string, error) {
	input = strings.ReplaceAll(strings.TrimSpace(input), "_", "-")
	if input == "" {
		return "", errors.New("empty locale identifier")
	}
	tag, err := language.Parse(input)
	if err != nil {
		return "", fmt.Errorf("invalid locale %q: %w", input, err)
	}
	return tag.String(), nil
}

// parentLocale returns the closest ancestor of locale that is also being
// generated, or "" for a root bundle.
func parentLocale(locale string, generated []string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return ""
	}
	for parent := tag.Parent(); parent != language.Und; parent = parent.Parent() {
		if containsString(generated, parent.String()) {
			return parent.String()
		}
	}
	if base, _ := tag.Base(); base.String() != locale && containsString(generated, base.String()) {
		return base.String()
	}
	return ""
}

func containsString(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

func buildBundle(data *cldr.CLDR, locale string, generated []string) (bundlePayload, error) {
	payload := bundlePayload{
		Locale: locale,
		Parent: parentLocale(locale, generated),
	}

	ldml := data.RawLDML(strings.ReplaceAll(locale, "-", "_"))
	if ldml == nil {
		return payload, errors.New("missing LDML data")
	}

	cal := findGregorian(ldml)
	if cal == nil {
		return payload, errors.New("missing gregorian calendar")
	}

	payload.Months = extractMonths(cal, "format")
	payload.MonthsStandalone = extractMonths(cal, "stand-alone")
	payload.Weekdays = extractWeekdays(cal, "format")
	payload.AM, payload.PM = extractDayPeriods(cal)
	payload.DateFormats = extractDateFormats(cal)
	payload.TimeFormats = extractTimeFormats(cal)
	payload.DateTimeFormats = extractDateTimeFormats(cal)
	payload.Available = extractAvailableFormats(cal)

	if payload.Parent == "" && len(payload.Months.Wide) != 12 {
		return payload, fmt.Errorf("root bundle has %d wide month names", len(payload.Months.Wide))
	}

	return payload, nil
}

func findGregorian(ldml *cldr.LDML) *cldr.Calendar {
	if ldml.Dates == nil || ldml.Dates.Calendars == nil {
		return nil
	}
	for _, cal := range ldml.Dates.Calendars.Calendar {
		if cal != nil && cal.Type == "gregorian" {
			return cal
		}
	}
	return nil
}

func (s *nameSet) assign(width string, names []string) {
	for _, name := range names {
		if name == "" {
			return
		}
	}
	switch width {
	case "wide":
		s.Wide = names
	case "abbreviated":
		s.Abbreviated = names
	case "short":
		s.Short = names
	case "narrow":
		s.Narrow = names
	}
}

func extractMonths(cal *cldr.Calendar, context string) nameSet {
	var set nameSet
	if cal.Months == nil {
		return set
	}

	for _, ctx := range cal.Months.MonthContext {
		if ctx == nil || ctx.Type != context {
			continue
		}
		for _, width := range ctx.MonthWidth {
			if width == nil {
				continue
			}
			names := make([]string, 12)
			for _, month := range width.Month {
				if month == nil || month.Alt != "" || month.Yeartype != "" {
					continue
				}
				index, err := strconv.Atoi(month.Type)
				if err != nil || index < 1 || index > 12 {
					continue
				}
				names[index-1] = month.Data()
			}
			set.assign(width.Type, names)
		}
	}
	return set
}

func extractWeekdays(cal *cldr.Calendar, context string) nameSet {
	var set nameSet
	if cal.Days == nil {
		return set
	}

	for _, ctx := range cal.Days.DayContext {
		if ctx == nil || ctx.Type != context {
			continue
		}
		for _, width := range ctx.DayWidth {
			if width == nil {
				continue
			}
			names := make([]string, len(weekdayKeys))
			for _, day := range width.Day {
				if day == nil || day.Alt != "" {
					continue
				}
				for i, key := range weekdayKeys {
					if day.Type == key {
						names[i] = day.Data()
					}
				}
			}
			set.assign(width.Type, names)
		}
	}
	return set
}

func extractDayPeriods(cal *cldr.Calendar) (string, string) {
	var am, pm string
	if cal.DayPeriods == nil {
		return am, pm
	}

	for _, ctx := range cal.DayPeriods.DayPeriodContext {
		if ctx == nil || ctx.Type != "format" {
			continue
		}
		for _, width := range ctx.DayPeriodWidth {
			if width == nil || width.Type != "abbreviated" {
				continue
			}
			for _, period := range width.DayPeriod {
				if period == nil || period.Alt != "" {
					continue
				}
				switch period.Type {
				case "am":
					am = period.Data()
				case "pm":
					pm = period.Data()
				}
			}
		}
	}
	return am, pm
}

func (s *stylePatterns) assign(length, pattern string) {
	if pattern == "" {
		return
	}
	switch length {
	case "full":
		s.Full = pattern
	case "long":
		s.Long = pattern
	case "medium":
		s.Medium = pattern
	case "short":
		s.Short = pattern
	}
}

func extractDateFormats(cal *cldr.Calendar) stylePatterns {
	var styles stylePatterns
	if cal.DateFormats == nil {
		return styles
	}
	for _, length := range cal.DateFormats.DateFormatLength {
		if length == nil {
			continue
		}
		for _, f := range length.DateFormat {
			if f == nil {
				continue
			}
			for _, pattern := range f.Pattern {
				if pattern != nil && pattern.Alt == "" {
					styles.assign(length.Type, pattern.Data())
					break
				}
			}
		}
	}
	return styles
}

func extractTimeFormats(cal *cldr.Calendar) stylePatterns {
	var styles stylePatterns
	if cal.TimeFormats == nil {
		return styles
	}
	for _, length := range cal.TimeFormats.TimeFormatLength {
		if length == nil {
			continue
		}
		for _, f := range length.TimeFormat {
			if f == nil {
				continue
			}
			for _, pattern := range f.Pattern {
				if pattern != nil && pattern.Alt == "" {
					styles.assign(length.Type, pattern.Data())
					break
				}
			}
		}
	}
	return styles
}

func extractDateTimeFormats(cal *cldr.Calendar) stylePatterns {
	var styles stylePatterns
	if cal.DateTimeFormats == nil {
		return styles
	}
	for _, length := range cal.DateTimeFormats.DateTimeFormatLength {
		if length == nil {
			continue
		}
		for _, f := range length.DateTimeFormat {
			// atTime variants only apply when a time is attached to a relative day.
			if f == nil || f.Type == "atTime" {
				continue
			}
			for _, pattern := range f.Pattern {
				if pattern != nil && pattern.Alt == "" {
					styles.assign(length.Type, pattern.Data())
					break
				}
			}
		}
	}
	return styles
}

func extractAvailableFormats(cal *cldr.Calendar) map[string]string {
	result := make(map[string]string)
	if cal.DateTimeFormats == nil {
		return result
	}
	for _, available := range cal.DateTimeFormats.AvailableFormats {
		if available == nil {
			continue
		}
		for _, item := range available.DateFormatItem {
			if item == nil || item.Alt != "" || item.Count != "" || item.Id == "" {
				continue
			}
			result[item.Id] = item.Data()
		}
	}
	return result
}

func renderSource(pkg string, bundles []bundlePayload) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by intl-calendars. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)

	buf.WriteString("var calendarBundles = map[string]CalendarBundle{\n")
	for _, bundle := range bundles {
		fmt.Fprintf(&buf, "\t%q: {\n", bundle.Locale)
		fmt.Fprintf(&buf, "\t\tLocale: %q,\n", bundle.Locale)
		if bundle.Parent != "" {
			fmt.Fprintf(&buf, "\t\tParent: %q,\n", bundle.Parent)
		}

		writeNameSet(&buf, "Months", bundle.Months)
		writeNameSet(&buf, "MonthsStandalone", bundle.MonthsStandalone)
		writeNameSet(&buf, "Weekdays", bundle.Weekdays)

		if bundle.AM != "" || bundle.PM != "" {
			fmt.Fprintf(&buf, "\t\tDayPeriods: DayPeriods{AM: %q, PM: %q},\n", bundle.AM, bundle.PM)
		}

		writeStylePatterns(&buf, "DateFormats", bundle.DateFormats)
		writeStylePatterns(&buf, "TimeFormats", bundle.TimeFormats)
		writeStylePatterns(&buf, "DateTimeFormats", bundle.DateTimeFormats)

		if len(bundle.Available) > 0 {
			keys := make([]string, 0, len(bundle.Available))
			for key := range bundle.Available {
				keys = append(keys, key)
			}
			sort.Strings(keys)

			buf.WriteString("\t\tAvailableFormats: map[string]string{\n")
			for _, key := range keys {
				fmt.Fprintf(&buf, "\t\t\t%q: %q,\n", key, bundle.Available[key])
			}
			buf.WriteString("\t\t},\n")
		}

		buf.WriteString("\t},\n")
	}
	buf.WriteString("}\n\n")

	buf.WriteString("var generatedCalendarLocales = []string{\n")
	for _, bundle := range bundles {
		fmt.Fprintf(&buf, "\t%q,\n", bundle.Locale)
	}
	buf.WriteString("}\n\n")

	buf.WriteString("// GeneratedCalendarLocales lists the locales with built-in calendar data.\n")
	buf.WriteString("func GeneratedCalendarLocales() []string {\n")
	buf.WriteString("\treturn append([]string{}, generatedCalendarLocales...)\n")
	buf.WriteString("}\n")

	return format.Source(buf.Bytes())
}

func writeNameSet(buf *bytes.Buffer, field string, set nameSet) {
	if len(set.Wide)+len(set.Abbreviated)+len(set.Short)+len(set.Narrow) == 0 {
		return
	}
	fmt.Fprintf(buf, "\t\t%s: NameSet{\n", field)
	writeNames(buf, "Wide", set.Wide)
	writeNames(buf, "Abbreviated", set.Abbreviated)
	writeNames(buf, "Short", set.Short)
	writeNames(buf, "Narrow", set.Narrow)
	buf.WriteString("\t\t},\n")
}

func writeNames(buf *bytes.Buffer, field string, names []string) {
	if len(names) == 0 {
		return
	}
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = strconv.Quote(name)
	}
	fmt.Fprintf(buf, "\t\t\t%s: []string{%s},\n", field, strings.Join(quoted, ", "))
}

func writeStylePatterns(buf *bytes.Buffer, field string, styles stylePatterns) {
	if styles == (stylePatterns{}) {
		return
	}
	fmt.Fprintf(buf, "\t\t%s: StylePatterns{\n", field)
	for _, entry := range []struct{ name, value string }{
		{"Full", styles.Full},
		{"Long", styles.Long},
		{"Medium", styles.Medium},
		{"Short", styles.Short},
	} {
		if entry.value != "" {
			fmt.Fprintf(buf, "\t\t\t%s: %q,\n", entry.name, entry.value)
		}
	}
	buf.WriteString("\t\t},\n")
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
