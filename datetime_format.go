package intl

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/language"
)

// DefaultLocale is used when a requested locale has no calendar data.
const DefaultLocale = "en-US"

// DateTimeFormat renders instants for one locale and option set. It is
// immutable once built and safe for concurrent use.
type DateTimeFormat struct {
	locale          string
	dataLocale      string
	usedFallback    bool
	opts            FormatOptions
	hourCycle       string
	numberingSystem string
	location        *time.Location
	tokens          []patternToken
	renderer        patternRenderer
}

// ResolvedOptions describes what a DateTimeFormat settled on.
type ResolvedOptions struct {
	Locale string `json:"locale" yaml:"locale"`
	// DataLocale is the calendar bundle that supplied names and patterns.
	DataLocale      string        `json:"data_locale" yaml:"data_locale"`
	Calendar        string        `json:"calendar" yaml:"calendar"`
	NumberingSystem string        `json:"numbering_system" yaml:"numbering_system"`
	TimeZone        string        `json:"time_zone,omitempty" yaml:"time_zone,omitempty"`
	HourCycle       string        `json:"hour_cycle,omitempty" yaml:"hour_cycle,omitempty"`
	Hour12          bool          `json:"hour12,omitempty" yaml:"hour12,omitempty"`
	Pattern         string        `json:"pattern" yaml:"pattern"`
	Options         FormatOptions `json:"options" yaml:"options"`
}

type formatSettings struct {
	provider        *CalendarProvider
	defaultLocale   string
	strict          bool
	defaultLocation *time.Location
}

// FormatOption adjusts how NewDateTimeFormat resolves locales and zones.
type FormatOption func(*formatSettings)

// WithFormatCalendars resolves locales against provider instead of the
// built-in calendar data.
func WithFormatCalendars(provider *CalendarProvider) FormatOption {
	return func(s *formatSettings) {
		if provider != nil {
			s.provider = provider
		}
	}
}

// WithFormatDefaultLocale replaces DefaultLocale as the fallback target.
func WithFormatDefaultLocale(locale string) FormatOption {
	return func(s *formatSettings) {
		if locale = normalizeLocale(locale); locale != "" {
			s.defaultLocale = locale
		}
	}
}

// WithFormatStrict makes unsupported locales an error instead of a fallback.
func WithFormatStrict() FormatOption {
	return func(s *formatSettings) {
		s.strict = true
	}
}

// WithFormatDefaultTimeZone renders in loc when FormatOptions.TimeZone is empty.
func WithFormatDefaultTimeZone(loc *time.Location) FormatOption {
	return func(s *formatSettings) {
		s.defaultLocation = loc
	}
}

var defaultCalendarProvider = sync.OnceValue(func() *CalendarProvider {
	provider, err := NewCalendarProvider(nil, nil)
	if err != nil {
		panic(fmt.Sprintf("intl: built-in calendar data: %v", err))
	}
	return provider
})

// NewDateTimeFormat resolves locale and validates opts. Locales without
// calendar data fall back to the default locale unless WithFormatStrict is set.
func NewDateTimeFormat(locale string, opts FormatOptions, options ...FormatOption) (*DateTimeFormat, error) {
	settings := formatSettings{defaultLocale: DefaultLocale}
	for _, option := range options {
		if option != nil {
			option(&settings)
		}
	}
	if settings.provider == nil {
		settings.provider = defaultCalendarProvider()
	}

	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	f := &DateTimeFormat{opts: opts}

	tag, bundle, err := f.resolveLocale(locale, settings)
	if err != nil {
		return nil, err
	}

	f.numberingSystem = bundle.Conventions.NumberingSystem
	if nu := tag.TypeForKey("nu"); nu != "" {
		if decimalNumberingSystems[nu] {
			f.numberingSystem = nu
		}
	}
	if f.numberingSystem == "" {
		f.numberingSystem = "latn"
	}

	f.hourCycle = resolveHourCycle(bundle.Conventions, tag.TypeForKey("hc"), opts)

	switch {
	case opts.TimeZone != "":
		loc, err := time.LoadLocation(opts.TimeZone)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidTimeZone, opts.TimeZone, err)
		}
		f.location = loc
	case settings.defaultLocation != nil:
		f.location = settings.defaultLocation
	}

	f.tokens = patternBuilder{bundle: bundle, opts: opts, hourCycle: f.hourCycle}.build()
	f.renderer = newPatternRenderer(bundle, tag, f.numberingSystem)

	return f, nil
}

func (f *DateTimeFormat) resolveLocale(locale string, settings formatSettings) (language.Tag, CalendarBundle, error) {
	requested := normalizeLocale(locale)
	if requested != "" {
		code, tag, err := canonicalLocale(requested)
		if err == nil {
			if dataLocale, bundle, ok := settings.provider.Resolve(code); ok {
				f.locale = code
				f.dataLocale = dataLocale
				return tag, bundle, nil
			}
		}
		if settings.strict {
			return language.Und, CalendarBundle{}, fmt.Errorf("%w: %q", ErrUnsupportedLocale, locale)
		}
		f.usedFallback = true
	}

	code, tag, err := canonicalLocale(settings.defaultLocale)
	if err != nil {
		return language.Und, CalendarBundle{}, fmt.Errorf("%w: default %q", ErrUnsupportedLocale, settings.defaultLocale)
	}
	dataLocale, bundle, ok := settings.provider.Resolve(code)
	if !ok {
		return language.Und, CalendarBundle{}, fmt.Errorf("%w: default %q", ErrUnsupportedLocale, settings.defaultLocale)
	}
	f.locale = code
	f.dataLocale = dataLocale
	return tag, bundle, nil
}

// resolveHourCycle applies, lowest first: the locale default, a -u-hc
// extension, FormatOptions.HourCycle and FormatOptions.Hour12.
func resolveHourCycle(conv LocaleConventions, extension string, opts FormatOptions) string {
	cycle := conv.HourCycle
	if cycle == "" {
		cycle = HourCycleH23
	}
	if slices.Contains(hourCycleValues, extension) {
		cycle = extension
	}
	if opts.HourCycle != "" {
		cycle = opts.HourCycle
	}
	if opts.Hour12 != nil {
		if *opts.Hour12 {
			cycle = conv.HourCycle12
			if cycle == "" {
				cycle = HourCycleH12
			}
		} else {
			cycle = HourCycleH23
		}
	}
	return cycle
}

// Format renders i. The result depends only on i and the format.
func (f *DateTimeFormat) Format(i Instant) string {
	var b strings.Builder
	for _, part := range f.FormatToParts(i) {
		b.WriteString(part.Value)
	}
	return b.String()
}

// FormatTime renders t truncated to milliseconds.
func (f *DateTimeFormat) FormatTime(t time.Time) string {
	return f.Format(FromTime(t))
}

// FormatToParts renders i as typed parts whose values concatenate to Format(i).
func (f *DateTimeFormat) FormatToParts(i Instant) []DatePart {
	t := i.ToTime()
	if f.location != nil {
		t = t.In(f.location)
	}
	return f.renderer.render(f.tokens, t)
}

// Locale returns the resolved BCP 47 tag without extensions.
func (f *DateTimeFormat) Locale() string {
	return f.locale
}

// UsedFallback reports whether the requested locale was replaced by the default.
func (f *DateTimeFormat) UsedFallback() bool {
	return f.usedFallback
}

func (f *DateTimeFormat) ResolvedOptions() ResolvedOptions {
	resolved := ResolvedOptions{
		Locale:          f.locale,
		DataLocale:      f.dataLocale,
		Calendar:        "gregory",
		NumberingSystem: f.numberingSystem,
		Pattern:         formatPattern(f.tokens),
		Options:         f.opts,
	}
	if f.location != nil {
		resolved.TimeZone = f.location.String()
	}
	if patternHourCycle(f.tokens) != "" {
		resolved.HourCycle = f.hourCycle
		resolved.Hour12 = is12HourCycle(f.hourCycle)
	}
	return resolved
}
