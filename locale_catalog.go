package intl

import (
	"fmt"
	"sort"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// LocaleCatalog is an immutable snapshot of the locales a CalendarProvider
// can serve, with display names from the CLDR display tables.
type LocaleCatalog struct {
	defaultLocale string
	locales       map[string]localeEntry
	allCodes      []string
}

type localeEntry struct {
	displayName     string
	englishName     string
	numberingSystem string
	hourCycle       string
	fallbacks       []string
}

// LocaleMetadata exposes the immutable metadata for a single locale.
type LocaleMetadata struct {
	Code            string   `json:"code" yaml:"code"`
	DisplayName     string   `json:"display_name" yaml:"display_name"`
	EnglishName     string   `json:"english_name" yaml:"english_name"`
	NumberingSystem string   `json:"numbering_system" yaml:"numbering_system"`
	HourCycle       string   `json:"hour_cycle" yaml:"hour_cycle"`
	Fallbacks       []string `json:"fallbacks,omitempty" yaml:"fallbacks,omitempty"`
}

// NewLocaleCatalog snapshots provider. defaultLocale must resolve against it
// when set.
func NewLocaleCatalog(provider *CalendarProvider, defaultLocale string) (*LocaleCatalog, error) {
	if provider == nil {
		provider = defaultCalendarProvider()
	}

	normalizedDefault := normalizeLocale(defaultLocale)
	if normalizedDefault != "" {
		if _, _, ok := provider.Resolve(normalizedDefault); !ok {
			return nil, fmt.Errorf("locale catalog: default locale %q has no calendar data", normalizedDefault)
		}
	}

	englishNames := display.English.Tags()
	codes := provider.Locales()
	locales := make(map[string]localeEntry, len(codes))

	for _, code := range codes {
		bundle, _ := provider.Get(code)
		tag := language.Make(code)

		entry := localeEntry{
			displayName:     display.Self.Name(tag),
			englishName:     englishNames.Name(tag),
			numberingSystem: bundle.Conventions.NumberingSystem,
			hourCycle:       bundle.Conventions.HourCycle,
		}
		if entry.displayName == "" {
			entry.displayName = code
		}

		var chain []string
		if bundle.Parent != "" {
			chain = append(chain, bundle.Parent)
		}
		chain = append(chain, localeParentChain(code)...)
		entry.fallbacks = sanitizeFallbacks(code, chain)

		locales[code] = entry
	}

	allCodes := make([]string, 0, len(locales))
	for code := range locales {
		allCodes = append(allCodes, code)
	}
	sort.Strings(allCodes)

	return &LocaleCatalog{
		defaultLocale: normalizedDefault,
		locales:       locales,
		allCodes:      allCodes,
	}, nil
}

// DefaultLocale returns the configured default locale.
func (c *LocaleCatalog) DefaultLocale() string {
	if c == nil {
		return ""
	}
	return c.defaultLocale
}

// AllLocaleCodes returns every locale in the catalog, sorted alphabetically.
func (c *LocaleCatalog) AllLocaleCodes() []string {
	if c == nil || len(c.allCodes) == 0 {
		return nil
	}
	out := make([]string, len(c.allCodes))
	copy(out, c.allCodes)
	return out
}

// DisplayName returns the locale's name in its own language.
func (c *LocaleCatalog) DisplayName(locale string) string {
	if c == nil {
		return ""
	}
	entry, ok := c.locales[normalizeLocale(locale)]
	if !ok {
		return ""
	}
	return entry.displayName
}

// Fallbacks returns the parent chain for the locale.
func (c *LocaleCatalog) Fallbacks(locale string) []string {
	if c == nil {
		return nil
	}
	entry, ok := c.locales[normalizeLocale(locale)]
	if !ok || len(entry.fallbacks) == 0 {
		return nil
	}
	out := make([]string, len(entry.fallbacks))
	copy(out, entry.fallbacks)
	return out
}

// Has reports whether the locale exists in the catalog.
func (c *LocaleCatalog) Has(locale string) bool {
	if c == nil {
		return false
	}
	_, ok := c.locales[normalizeLocale(locale)]
	return ok
}

// Locale returns the full metadata payload for a locale.
func (c *LocaleCatalog) Locale(locale string) (LocaleMetadata, bool) {
	if c == nil {
		return LocaleMetadata{}, false
	}
	normalized := normalizeLocale(locale)
	entry, ok := c.locales[normalized]
	if !ok {
		return LocaleMetadata{}, false
	}
	meta := LocaleMetadata{
		Code:            normalized,
		DisplayName:     entry.displayName,
		EnglishName:     entry.englishName,
		NumberingSystem: entry.numberingSystem,
		HourCycle:       entry.hourCycle,
	}
	if len(entry.fallbacks) > 0 {
		meta.Fallbacks = append([]string(nil), entry.fallbacks...)
	}
	return meta, true
}

// Locales returns metadata for every locale, sorted by code.
func (c *LocaleCatalog) Locales() []LocaleMetadata {
	if c == nil {
		return nil
	}
	out := make([]LocaleMetadata, 0, len(c.allCodes))
	for _, code := range c.allCodes {
		meta, _ := c.Locale(code)
		out = append(out, meta)
	}
	return out
}

func sanitizeFallbacks(locale string, fallbacks []string) []string {
	if len(fallbacks) == 0 {
		return nil
	}

	seen := map[string]struct{}{
		normalizeLocale(locale): {},
	}

	result := make([]string, 0, len(fallbacks))
	for _, candidate := range fallbacks {
		normalized := normalizeLocale(candidate)
		if normalized == "" {
			continue
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		result = append(result, normalized)
	}
	if len(result) == 0 {
		return nil
	}
	return result
}
