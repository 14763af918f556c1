package intl

import (
	"fmt"
	"time"
)

// Config captures formatter setup shared by every DateTimeFormat built from it.
type Config struct {
	DefaultLocale string
	Locales       []string
	Resolver      FallbackResolver
	Location      *time.Location
	Strict        bool

	calendarDataPath  string
	calendarOverrides map[string]string
	calendars         *CalendarProvider
	formatterRegistry *FormatterRegistry
	localeCatalog     *LocaleCatalog
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options. Calendar data files are
// read here, so a bad file fails construction.
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	cfg.normalizeLocales()

	if cfg.Resolver == nil {
		cfg.Resolver = NewStaticFallbackResolver()
	}

	if cfg.DefaultLocale == "" && len(cfg.Locales) > 0 {
		cfg.DefaultLocale = cfg.Locales[0]
	}
	if cfg.DefaultLocale == "" {
		cfg.DefaultLocale = DefaultLocale
	}

	if err := cfg.loadCalendars(); err != nil {
		return nil, err
	}

	for _, locale := range cfg.Locales {
		if _, _, ok := cfg.calendars.Resolve(locale); !ok {
			return nil, fmt.Errorf("%w: %q has no calendar data", ErrUnsupportedLocale, locale)
		}
	}
	if _, _, ok := cfg.calendars.Resolve(cfg.DefaultLocale); !ok {
		return nil, fmt.Errorf("%w: default locale %q has no calendar data", ErrUnsupportedLocale, cfg.DefaultLocale)
	}

	catalog, err := NewLocaleCatalog(cfg.calendars, cfg.DefaultLocale)
	if err != nil {
		return nil, err
	}
	cfg.localeCatalog = catalog

	return cfg, nil
}

// WithDefaultLocale sets the default locale in Config
func WithDefaultLocale(locale string) Option {
	return func(c *Config) error {
		c.DefaultLocale = locale
		return nil
	}
}

// WithLocales registers supported locales
func WithLocales(locales ...string) Option {
	return func(c *Config) error {
		c.Locales = append(c.Locales, locales...)
		return nil
	}
}

// WithStrictLocale rejects locales without calendar data instead of falling
// back to the default locale.
func WithStrictLocale() Option {
	return func(c *Config) error {
		c.Strict = true
		return nil
	}
}

func WithFallbackResolver(resolver FallbackResolver) Option {
	return func(c *Config) error {
		c.Resolver = resolver
		return nil
	}
}

func WithFallback(locale string, fallbacks ...string) Option {
	return func(c *Config) error {
		if locale == "" {
			return nil
		}
		resolver, ok := c.Resolver.(*StaticFallbackResolver)
		if !ok {
			if c.Resolver != nil {
				return nil
			}
			resolver = NewStaticFallbackResolver()
			c.Resolver = resolver
		}
		resolver.Set(locale, fallbacks...)
		return nil
	}
}

// WithTimeZone renders formatters in the named IANA zone unless their
// options set one.
func WithTimeZone(name string) Option {
	return func(c *Config) error {
		if name == "" {
			c.Location = nil
			return nil
		}
		loc, err := time.LoadLocation(name)
		if err != nil {
			return fmt.Errorf("%w: %q: %v", ErrInvalidTimeZone, name, err)
		}
		c.Location = loc
		return nil
	}
}

// WithCalendarData loads extra calendar bundles from a YAML or JSON file
func WithCalendarData(path string) Option {
	return func(c *Config) error {
		c.calendarDataPath = path
		c.calendars = nil
		c.formatterRegistry = nil
		return nil
	}
}

// WithCalendarOverride adds a locale-specific calendar bundle file
func WithCalendarOverride(locale, path string) Option {
	return func(c *Config) error {
		if c.calendarOverrides == nil {
			c.calendarOverrides = make(map[string]string)
		}
		c.calendarOverrides[locale] = path
		c.calendars = nil
		c.formatterRegistry = nil
		return nil
	}
}

func (cfg *Config) normalizeLocales() {
	cfg.Locales = normalizeLocales(cfg.Locales)
	cfg.DefaultLocale = normalizeLocale(cfg.DefaultLocale)
}

func (cfg *Config) loadCalendars() error {
	if cfg.calendars != nil {
		return nil
	}

	var data *CalendarData
	if cfg.calendarDataPath != "" || len(cfg.calendarOverrides) > 0 {
		loader := NewCalendarDataLoader(cfg.calendarDataPath)
		for locale, path := range cfg.calendarOverrides {
			loader.AddOverride(locale, path)
		}
		loaded, err := loader.Load()
		if err != nil {
			return err
		}
		data = loaded
	}

	provider, err := NewCalendarProvider(data, cfg.Resolver)
	if err != nil {
		return err
	}
	cfg.calendars = provider
	return nil
}

// NewDateTimeFormat builds a formatter with the config's calendars, default
// locale, strictness and time zone.
func (cfg *Config) NewDateTimeFormat(locale string, opts FormatOptions) (*DateTimeFormat, error) {
	if cfg == nil {
		return NewDateTimeFormat(locale, opts)
	}
	return NewDateTimeFormat(locale, opts, cfg.formatOptions()...)
}

func (cfg *Config) formatOptions() []FormatOption {
	options := []FormatOption{
		WithFormatCalendars(cfg.calendars),
		WithFormatDefaultLocale(cfg.DefaultLocale),
	}
	if cfg.Strict {
		options = append(options, WithFormatStrict())
	}
	if cfg.Location != nil {
		options = append(options, WithFormatDefaultTimeZone(cfg.Location))
	}
	return options
}

// Calendars returns the provider built from the built-in and configured data.
func (cfg *Config) Calendars() *CalendarProvider {
	if cfg == nil {
		return defaultCalendarProvider()
	}
	return cfg.calendars
}

// LocaleCatalog exposes the locale metadata snapshot for the configured calendars.
func (cfg *Config) LocaleCatalog() *LocaleCatalog {
	if cfg == nil {
		return nil
	}
	return cfg.localeCatalog
}

// SupportedLocales returns the configured locales, or every locale with
// calendar data when none were configured.
func (cfg *Config) SupportedLocales() []string {
	if cfg == nil {
		return nil
	}
	if len(cfg.Locales) > 0 {
		return append([]string(nil), cfg.Locales...)
	}
	return cfg.calendars.Locales()
}

func (cfg *Config) FormatterRegistry() *FormatterRegistry {
	if cfg == nil {
		return nil
	}
	cfg.ensureFormatterRegistry()
	return cfg.formatterRegistry
}

func (cfg *Config) TemplateHelpers(helperCfg HelperConfig) map[string]any {
	if cfg == nil {
		return TemplateHelpers(helperCfg)
	}
	if helperCfg.Registry == nil {
		helperCfg.Registry = cfg.FormatterRegistry()
	}
	return TemplateHelpers(helperCfg)
}

func (cfg *Config) ensureFormatterRegistry() {
	if cfg == nil || cfg.formatterRegistry != nil {
		return
	}

	options := []FormatterRegistryOption{
		WithFormatterRegistryResolver(cfg.Resolver),
		WithFormatterRegistryLocales(cfg.SupportedLocales()...),
		WithFormatterRegistryCalendars(cfg.calendars),
		WithFormatterRegistryDefaultLocale(cfg.DefaultLocale),
	}
	if cfg.Location != nil {
		options = append(options, WithFormatterRegistryTimeZone(cfg.Location))
	}

	cfg.formatterRegistry = NewFormatterRegistry(options...)
}
