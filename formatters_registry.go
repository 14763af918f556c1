package intl

import (
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"
)

// FormatterProvider returns locale specific helpers keyed by helper name.
type FormatterProvider func(locale string) map[string]any

// FormatterRegistry manages formatter functions and locale specific overrides.
// The default helpers are backed by cached DateTimeFormat values.
type FormatterRegistry struct {
	mu        sync.RWMutex
	defaults  map[string]any
	overrides map[string]map[string]any
	providers map[string]FormatterProvider
	globals   map[string]any
	funcCache map[string]map[string]any
	resolver  FallbackResolver
	locales   []string

	calendars   *CalendarProvider
	location    *time.Location
	defaultTag  string
	formatMu    sync.RWMutex
	formatCache map[string]*DateTimeFormat
}

var defaultFormatterLocales = []string{"en", "es"}

type formatterRegistryConfig struct {
	resolver      FallbackResolver
	locales       []string
	providers     map[string]FormatterProvider
	calendars     *CalendarProvider
	location      *time.Location
	defaultLocale string
}

type FormatterRegistryOption func(*formatterRegistryConfig)

func WithFormatterRegistryResolver(resolver FallbackResolver) FormatterRegistryOption {
	return func(frc *formatterRegistryConfig) {
		frc.resolver = resolver
	}
}

func WithFormatterRegistryLocales(locales ...string) FormatterRegistryOption {
	return func(frc *formatterRegistryConfig) {
		frc.locales = append(frc.locales, locales...)
	}
}

func WithFormatterRegistryProvider(locale string, provider FormatterProvider) FormatterRegistryOption {
	return func(frc *formatterRegistryConfig) {
		if locale == "" || provider == nil {
			return
		}
		if frc.providers == nil {
			frc.providers = make(map[string]FormatterProvider)
		}
		frc.providers[locale] = provider
	}
}

// WithFormatterRegistryCalendars backs the default helpers with provider.
func WithFormatterRegistryCalendars(provider *CalendarProvider) FormatterRegistryOption {
	return func(frc *formatterRegistryConfig) {
		frc.calendars = provider
	}
}

// WithFormatterRegistryTimeZone renders the default helpers in loc.
func WithFormatterRegistryTimeZone(loc *time.Location) FormatterRegistryOption {
	return func(frc *formatterRegistryConfig) {
		frc.location = loc
	}
}

// WithFormatterRegistryDefaultLocale sets the fallback locale of the
// default helpers.
func WithFormatterRegistryDefaultLocale(locale string) FormatterRegistryOption {
	return func(frc *formatterRegistryConfig) {
		frc.defaultLocale = locale
	}
}

// NewFormatterRegistry seeds a registry with default formatter implementations.
// It panics when a configured locale has no calendar data.
func NewFormatterRegistry(opts ...FormatterRegistryOption) *FormatterRegistry {
	cfg := formatterRegistryConfig{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	cfg.locales = normalizeLocales(cfg.locales)
	if cfg.calendars == nil {
		cfg.calendars = defaultCalendarProvider()
	}

	registry := &FormatterRegistry{
		overrides:   make(map[string]map[string]any),
		providers:   make(map[string]FormatterProvider),
		resolver:    cfg.resolver,
		locales:     cfg.locales,
		calendars:   cfg.calendars,
		location:    cfg.location,
		defaultTag:  normalizeLocale(cfg.defaultLocale),
		formatCache: make(map[string]*DateTimeFormat),
	}

	registry.defaults = registry.dateHelpers()
	registry.registerConfiguredProviders(cfg.providers)
	registry.seedFallbacks()
	registry.ensureCalendarLocales()

	return registry
}

// dateHelpers builds the default helper set. Every helper takes the locale
// as its first argument.
func (r *FormatterRegistry) dateHelpers() map[string]any {
	styled := func(opts FormatOptions) func(string, time.Time) string {
		return func(locale string, t time.Time) string {
			return r.FormatWith(locale, opts, t)
		}
	}

	return map[string]any{
		"format_date":     styled(FormatOptions{DateStyle: StyleMedium}),
		"format_time":     styled(FormatOptions{TimeStyle: StyleShort}),
		"format_datetime": styled(FormatOptions{DateStyle: StyleMedium, TimeStyle: StyleShort}),
		"format_weekday":  styled(FormatOptions{Weekday: StyleLong}),
		"format_month":    styled(FormatOptions{Month: StyleLong}),
		"format_date_style": func(locale, style string, t time.Time) string {
			return r.FormatWith(locale, FormatOptions{DateStyle: style}, t)
		},
	}
}

// FormatWith renders t for locale using a cached DateTimeFormat. Invalid
// options render t as RFC 3339 so templates never fail on formatting.
func (r *FormatterRegistry) FormatWith(locale string, opts FormatOptions, t time.Time) string {
	f, err := r.DateTimeFormat(locale, opts)
	if err != nil {
		return t.Format(time.RFC3339)
	}
	return f.FormatTime(t)
}

// DateTimeFormat returns the cached formatter for locale and opts, building
// it on first use.
func (r *FormatterRegistry) DateTimeFormat(locale string, opts FormatOptions) (*DateTimeFormat, error) {
	if locale == "" {
		locale = r.defaultLocale()
	}
	key := normalizeLocale(locale) + "#" + opts.key()

	r.formatMu.RLock()
	f, ok := r.formatCache[key]
	r.formatMu.RUnlock()
	if ok {
		return f, nil
	}

	options := []FormatOption{WithFormatCalendars(r.calendars)}
	if r.location != nil {
		options = append(options, WithFormatDefaultTimeZone(r.location))
	}
	if r.defaultTag != "" {
		options = append(options, WithFormatDefaultLocale(r.defaultTag))
	}

	f, err := NewDateTimeFormat(locale, opts, options...)
	if err != nil {
		return nil, err
	}

	r.formatMu.Lock()
	defer r.formatMu.Unlock()
	if cached, ok := r.formatCache[key]; ok {
		return cached, nil
	}
	if r.formatCache == nil {
		r.formatCache = make(map[string]*DateTimeFormat)
	}
	r.formatCache[key] = f
	return f, nil
}

func (r *FormatterRegistry) registerConfiguredProviders(providers map[string]FormatterProvider) {
	for locale, provider := range providers {
		if locale == "" || provider == nil {
			continue
		}
		r.RegisterProvider(locale, provider)
	}
}

// Register sets or replaces a default implementation for <name> helper
func (r *FormatterRegistry) Register(name string, fn any) {
	if name == "" || fn == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.defaults == nil {
		r.defaults = make(map[string]any)
	}

	r.defaults[name] = fn

	if r.globals == nil {
		r.globals = make(map[string]any)
	}
	r.globals[name] = fn
	r.invalidateFuncCacheLocked()
}

// RegisterLocale registers a locale specific override for the <name> helper
func (r *FormatterRegistry) RegisterLocale(locale, name string, fn any) {
	locale = normalizeLocale(locale)
	if locale == "" || name == "" || fn == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.overrides == nil {
		r.overrides = make(map[string]map[string]any)
	}

	helpers := r.overrides[locale]
	if helpers == nil {
		helpers = make(map[string]any)
		r.overrides[locale] = helpers
	}
	helpers[name] = fn
	r.invalidateFuncCacheLocked()
}

func (r *FormatterRegistry) RegisterProvider(locale string, provider FormatterProvider) {
	locale = normalizeLocale(locale)
	if locale == "" || provider == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.providers == nil {
		r.providers = make(map[string]FormatterProvider)
	}

	r.providers[locale] = provider
	r.invalidateFuncCacheLocked()
}

// Formatter returns the helper implementation for the given name and locale
func (r *FormatterRegistry) Formatter(name, locale string) (any, bool) {
	if name == "" {
		return nil, false
	}

	funcs := r.funcMapForLocale(locale)
	if fn, ok := funcs[name]; ok && fn != nil {
		return fn, true
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	if fn, ok := r.defaults[name]; ok {
		return fn, true
	}

	return nil, false
}

// FuncMap returns all helper functions applicable to the locale
func (r *FormatterRegistry) FuncMap(locale string) map[string]any {
	return cloneFuncMap(r.funcMapForLocale(locale))
}

func (r *FormatterRegistry) funcMapForLocale(locale string) map[string]any {
	key := normalizeLocale(locale)

	r.mu.RLock()
	if r.funcCache != nil {
		if cached, ok := r.funcCache[key]; ok {
			r.mu.RUnlock()
			return cached
		}
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.funcCache == nil {
		r.funcCache = make(map[string]map[string]any)
	} else if cached, ok := r.funcCache[key]; ok {
		return cached
	}

	effective := key
	if effective == "" {
		effective = r.defaultLocale()
	}

	result := make(map[string]any, len(r.defaults))
	maps.Copy(result, r.defaults)

	if effective != "" {
		candidates := r.candidateLocales(effective)

		// least specific first so the requested locale wins
		for i := len(candidates) - 1; i >= 0; i-- {
			candidate := candidates[i]

			if provider, ok := r.providers[candidate]; ok && provider != nil {
				if helpers := provider(candidate); helpers != nil {
					maps.Copy(result, helpers)
				}
			}

			if helpers, ok := r.overrides[candidate]; ok {
				maps.Copy(result, helpers)
			}
		}
	}

	if r.globals != nil {
		maps.Copy(result, r.globals)
	}

	r.funcCache[key] = result
	return result
}

func (r *FormatterRegistry) invalidateFuncCacheLocked() {
	if r == nil {
		return
	}
	r.funcCache = nil
}

func (r *FormatterRegistry) candidateLocales(locale string) []string {
	if locale == "" {
		return nil
	}

	chain := []string{locale}
	if r.resolver != nil {
		for _, parent := range r.resolver.Resolve(locale) {
			if parent == "" || slices.Contains(chain, parent) {
				continue
			}
			chain = append(chain, parent)
		}
	}

	for _, parent := range localeParentChain(locale) {
		if !slices.Contains(chain, parent) {
			chain = append(chain, parent)
		}
	}

	return chain
}

func (r *FormatterRegistry) seedFallbacks() {
	resolver, ok := r.resolver.(*StaticFallbackResolver)
	if !ok || resolver == nil {
		return
	}

	for _, locale := range r.locales {
		if locale == "" {
			continue
		}

		if existing := resolver.Resolve(locale); len(existing) > 0 {
			continue
		}

		if parents := localeParentChain(locale); len(parents) > 0 {
			resolver.Set(locale, parents...)
		}
	}
}

func (r *FormatterRegistry) ensureCalendarLocales() {
	for _, locale := range r.locales {
		if locale == "" {
			continue
		}
		if _, _, ok := r.calendars.Resolve(locale); !ok {
			panic(fmt.Sprintf("intl: calendar data missing for locale %q", locale))
		}
	}
}

// Locales returns the configured locales, or the defaults when none were set.
func (r *FormatterRegistry) Locales() []string {
	if r == nil {
		return nil
	}
	if len(r.locales) > 0 {
		return append([]string(nil), r.locales...)
	}
	return append([]string(nil), defaultFormatterLocales...)
}

func cloneFuncMap(source map[string]any) map[string]any {
	if len(source) == 0 {
		return map[string]any{}
	}

	target := make(map[string]any, len(source))
	maps.Copy(target, source)
	return target
}

func (r *FormatterRegistry) defaultLocale() string {
	if r == nil {
		return ""
	}

	if r.defaultTag != "" {
		return r.defaultTag
	}

	if len(r.locales) > 0 {
		return r.locales[0]
	}

	if len(defaultFormatterLocales) > 0 {
		return defaultFormatterLocales[0]
	}

	return ""
}
