package intl

import (
	"fmt"
	"reflect"
	"time"
)

// HelperConfig configures template helper exports
type HelperConfig struct {
	// LocaleKey names the map key or struct field holding the locale in
	// template data. Defaults to "Locale".
	LocaleKey string
	Registry  *FormatterRegistry
}

var timeHelperNames = []string{
	"format_date",
	"format_time",
	"format_datetime",
	"format_weekday",
	"format_month",
}

// TemplateHelpers exposes the registry date helpers for text/template and
// html/template. Each helper takes the locale, or template data carrying
// it, followed by a time.Time, Instant, ISO string or epoch milliseconds.
func TemplateHelpers(cfg HelperConfig) map[string]any {
	registry := cfg.Registry
	if registry == nil {
		registry = defaultFormatterRegistry()
	}
	localeKey := cfg.LocaleKey

	helpers := map[string]any{
		"current_locale": func(data any) string {
			return extractLocale(data, localeKey)
		},
		"format_date_style": func(data any, style string, value any) (string, error) {
			t, err := helperTime(value)
			if err != nil {
				return "", err
			}
			locale := extractLocale(data, localeKey)
			fn, ok := registry.Formatter("format_date_style", locale)
			if !ok {
				return "", fmt.Errorf("intl: helper format_date_style not registered")
			}
			typed, ok := fn.(func(string, string, time.Time) string)
			if !ok {
				return "", fmt.Errorf("intl: helper format_date_style has type %T", fn)
			}
			return typed(locale, style, t), nil
		},
		"format_with": func(data any, value any, pairs ...string) (string, error) {
			t, err := helperTime(value)
			if err != nil {
				return "", err
			}
			opts, err := ParseFormatOptionPairs(pairs...)
			if err != nil {
				return "", err
			}
			f, err := registry.DateTimeFormat(extractLocale(data, localeKey), opts)
			if err != nil {
				return "", err
			}
			return f.FormatTime(t), nil
		},
	}

	for _, name := range timeHelperNames {
		helpers[name] = timeHelper(registry, name, localeKey)
	}

	return helpers
}

func timeHelper(registry *FormatterRegistry, name, localeKey string) func(any, any) (string, error) {
	return func(data any, value any) (string, error) {
		t, err := helperTime(value)
		if err != nil {
			return "", err
		}
		locale := extractLocale(data, localeKey)
		fn, ok := registry.Formatter(name, locale)
		if !ok {
			return "", fmt.Errorf("intl: helper %s not registered", name)
		}
		typed, ok := fn.(func(string, time.Time) string)
		if !ok {
			return "", fmt.Errorf("intl: helper %s has type %T", name, fn)
		}
		return typed(locale, t), nil
	}
}

func helperTime(value any) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case *time.Time:
		if v != nil {
			return *v, nil
		}
	case Instant:
		return v.ToTime(), nil
	case *Instant:
		if v != nil {
			return v.ToTime(), nil
		}
	case string:
		i, err := ParseInstant(v)
		if err != nil {
			return time.Time{}, err
		}
		return i.ToTime(), nil
	case int64:
		return UnixMilli(v).ToTime(), nil
	case int:
		return UnixMilli(int64(v)).ToTime(), nil
	}
	return time.Time{}, fmt.Errorf("%w: cannot format %T", ErrMalformedInput, value)
}

// extractLocale extracts the locale from template data using the configured key
// This function handles both map[string]any and struct types (like PageData)
func extractLocale(data any, localeKey string) string {
	if data == nil {
		return ""
	}

	if localeKey == "" {
		localeKey = "Locale"
	}

	if str, ok := data.(string); ok {
		return str
	}

	switch d := data.(type) {
	case map[string]any:
		if v, ok := d[localeKey]; ok {
			if str, ok := v.(string); ok {
				return str
			}
		}
	case map[string]string:
		if v, ok := d[localeKey]; ok {
			return v
		}
	}

	value := reflect.ValueOf(data)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return ""
		}
		value = value.Elem()
	}

	if value.Kind() == reflect.Struct {
		field := value.FieldByName(localeKey)
		if field.IsValid() && field.Kind() == reflect.String {
			return field.String()
		}
	}

	return ""
}
