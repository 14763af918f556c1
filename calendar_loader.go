package intl

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// CalendarDataLoader reads calendar bundles from YAML or JSON files. The
// result only holds what the files define; NewCalendarProvider overlays it on
// the built-in bundles.
type CalendarDataLoader struct {
	defaultPath string
	overrides   map[string]string
}

// NewCalendarDataLoader creates a loader. An empty path loads no base file.
func NewCalendarDataLoader(defaultPath string) *CalendarDataLoader {
	return &CalendarDataLoader{
		defaultPath: defaultPath,
		overrides:   make(map[string]string),
	}
}

// AddOverride registers a file holding a single bundle for locale. Overrides
// are applied after the base file, in locale order.
func (l *CalendarDataLoader) AddOverride(locale, path string) *CalendarDataLoader {
	if l.overrides == nil {
		l.overrides = make(map[string]string)
	}
	l.overrides[normalizeLocale(locale)] = path
	return l
}

// Load reads the base file and every override.
func (l *CalendarDataLoader) Load() (*CalendarData, error) {
	data := &CalendarData{Locales: make(map[string]CalendarBundle)}

	if l.defaultPath != "" {
		var base CalendarData
		if err := decodeCalendarFile(l.defaultPath, &base); err != nil {
			return nil, fmt.Errorf("load calendar data: %w", err)
		}
		for locale, bundle := range base.Locales {
			l.merge(data, normalizeLocale(locale), bundle)
		}
	}

	locales := make([]string, 0, len(l.overrides))
	for locale := range l.overrides {
		locales = append(locales, locale)
	}
	sort.Strings(locales)

	for _, locale := range locales {
		path := l.overrides[locale]
		var bundle CalendarBundle
		if err := decodeCalendarFile(path, &bundle); err != nil {
			return nil, fmt.Errorf("load calendar override for %q: %w", locale, err)
		}
		l.merge(data, locale, bundle)
	}

	return data, nil
}

func (l *CalendarDataLoader) merge(data *CalendarData, locale string, bundle CalendarBundle) {
	if locale == "" {
		return
	}
	existing, ok := data.Locales[locale]
	if !ok {
		existing = CalendarBundle{Parent: bundle.Parent}
	} else if bundle.Parent != "" {
		existing.Parent = bundle.Parent
	}
	mergeCalendarBundle(&existing, bundle)
	existing.Locale = locale
	data.Locales[locale] = existing
}

func decodeCalendarFile(path string, target any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, target)
	case ".json":
		err = json.Unmarshal(raw, target)
	default:
		return fmt.Errorf("%w: %s: unsupported extension %q", ErrInvalidCalendarData, path, ext)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidCalendarData, path, err)
	}
	return nil
}
