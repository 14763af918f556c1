package intl

import (
	"fmt"
	"sort"
	"sync"

	"golang.org/x/text/language"
)

// CalendarProvider resolves locales to calendar bundles. Bundles are
// flattened at construction so every lookup returns a complete bundle.
type CalendarProvider struct {
	mu       sync.RWMutex
	bundles  map[string]CalendarBundle
	resolver FallbackResolver
	codes    []string
	matcher  language.Matcher
}

// NewCalendarProvider builds a provider from the built-in bundles with data
// overlaid on top. A nil data uses the built-in bundles only.
func NewCalendarProvider(data *CalendarData, resolver FallbackResolver) (*CalendarProvider, error) {
	raw := builtinCalendarData().Locales
	if data != nil {
		for code, bundle := range data.Locales {
			code = normalizeLocale(code)
			if code == "" {
				continue
			}
			existing, ok := raw[code]
			if !ok {
				existing = CalendarBundle{Parent: bundle.Parent}
			} else if bundle.Parent != "" {
				existing.Parent = bundle.Parent
			}
			mergeCalendarBundle(&existing, bundle)
			existing.Locale = code
			raw[code] = existing
		}
	}

	bundles, err := flattenCalendarBundles(raw)
	if err != nil {
		return nil, err
	}

	codes := make([]string, 0, len(bundles))
	for code := range bundles {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	tags := make([]language.Tag, 0, len(codes))
	for _, code := range codes {
		tags = append(tags, language.Make(code))
	}

	return &CalendarProvider{
		bundles:  bundles,
		resolver: resolver,
		codes:    codes,
		matcher:  language.NewMatcher(tags),
	}, nil
}

func flattenCalendarBundles(raw map[string]CalendarBundle) (map[string]CalendarBundle, error) {
	flat := make(map[string]CalendarBundle, len(raw))
	visiting := make(map[string]bool)

	var resolve func(code string) (CalendarBundle, error)
	resolve = func(code string) (CalendarBundle, error) {
		if bundle, ok := flat[code]; ok {
			return bundle, nil
		}
		if visiting[code] {
			return CalendarBundle{}, fmt.Errorf("%w: parent cycle at %s", ErrInvalidCalendarData, code)
		}
		visiting[code] = true
		defer delete(visiting, code)

		own := raw[code]
		parent := own.Parent
		if parent == "" {
			for _, candidate := range localeParentChain(code) {
				if _, ok := raw[candidate]; ok {
					parent = candidate
					break
				}
			}
		}

		var bundle CalendarBundle
		if parent != "" {
			if _, ok := raw[parent]; !ok {
				return CalendarBundle{}, fmt.Errorf("%w: %s has unknown parent %s", ErrInvalidCalendarData, code, parent)
			}
			base, err := resolve(parent)
			if err != nil {
				return CalendarBundle{}, err
			}
			bundle = cloneCalendarBundle(base)
		}
		mergeCalendarBundle(&bundle, own)
		bundle.Locale = code
		bundle.Parent = parent

		if err := bundle.validate(); err != nil {
			return CalendarBundle{}, err
		}
		flat[code] = bundle
		return bundle, nil
	}

	for code := range raw {
		if _, err := resolve(code); err != nil {
			return nil, err
		}
	}
	return flat, nil
}

// Get returns the bundle stored under the exact locale code.
func (p *CalendarProvider) Get(locale string) (CalendarBundle, bool) {
	if p == nil {
		return CalendarBundle{}, false
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	bundle, ok := p.bundles[normalizeLocale(locale)]
	return bundle, ok
}

// Locales lists the locale codes with calendar data, sorted.
func (p *CalendarProvider) Locales() []string {
	if p == nil {
		return nil
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]string(nil), p.codes...)
}

// Resolve finds the closest bundle for locale. It tries the exact tag, the
// resolver chain, the CLDR parent chain, the base language and finally the
// language matcher. ok is false when nothing matched.
func (p *CalendarProvider) Resolve(locale string) (string, CalendarBundle, bool) {
	if p == nil {
		return "", CalendarBundle{}, false
	}

	code, tag, err := canonicalLocale(locale)
	if err != nil {
		return "", CalendarBundle{}, false
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	if bundle, ok := p.bundles[code]; ok {
		return code, bundle, true
	}

	if p.resolver != nil {
		for _, candidate := range p.resolver.Resolve(code) {
			if bundle, ok := p.bundles[candidate]; ok {
				return candidate, bundle, true
			}
		}
	}

	for _, candidate := range localeParentChain(code) {
		if bundle, ok := p.bundles[candidate]; ok {
			return candidate, bundle, true
		}
	}

	base, _ := tag.Base()
	if bundle, ok := p.bundles[base.String()]; ok {
		return base.String(), bundle, true
	}

	if len(p.codes) > 0 {
		_, index, confidence := p.matcher.Match(tag)
		if confidence >= language.High && index >= 0 && index < len(p.codes) {
			matched := p.codes[index]
			return matched, p.bundles[matched], true
		}
	}

	return "", CalendarBundle{}, false
}
