package intl

import (
	"strings"
	"sync"
	"testing"
	"time"
)

var registryTime = time.Date(2025, 11, 10, 14, 5, 9, 0, time.UTC)

func TestFormatterRegistryDefaults(t *testing.T) {
	registry := NewFormatterRegistry()

	tests := []struct {
		name   string
		locale string
		want   string
	}{
		{"format_date", "en", "Nov 10, 2025"},
		{"format_date", "fr", "10 nov. 2025"},
		{"format_date", "de", "10.11.2025"},
		{"format_time", "en", "2:05 PM"},
		{"format_time", "ja", "14:05"},
		{"format_datetime", "en-GB", "10 Nov 2025, 14:05"},
		{"format_weekday", "es", "lunes"},
		{"format_month", "ru", "ноябрь"},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.locale, func(t *testing.T) {
			fnAny, ok := registry.Formatter(tt.name, tt.locale)
			if !ok {
				t.Fatalf("expected %s formatter", tt.name)
			}
			fn := fnAny.(func(string, time.Time) string)
			if got := fn(tt.locale, registryTime); got != tt.want {
				t.Fatalf("%s(%s) = %q, want %q", tt.name, tt.locale, got, tt.want)
			}
		})
	}

	style := registry.FuncMap("de")["format_date_style"].(func(string, string, time.Time) string)
	if got := style("de", StyleFull, registryTime); got != "Montag, 10. November 2025" {
		t.Fatalf("format_date_style = %q", got)
	}
	if got := style("de", "gigantic", registryTime); got != registryTime.Format(time.RFC3339) {
		t.Fatalf("invalid style should fall back to RFC 3339, got %q", got)
	}
}

func TestFormatterRegistryProvider(t *testing.T) {
	registry := NewFormatterRegistry()

	registry.RegisterProvider("fr", func(locale string) map[string]any {
		return map[string]any{
			"format_date": func(_ string, t time.Time) string {
				return "fr-" + FormatDate("fr", t)
			},
		}
	})

	fnAny, ok := registry.Formatter("format_date", "fr")
	if !ok {
		t.Fatalf("expected provider formatter")
	}

	fn := fnAny.(func(string, time.Time) string)
	if got := fn("fr", registryTime); got != "fr-10 nov. 2025" {
		t.Fatalf("provider formatter = %q", got)
	}

	funcs := registry.FuncMap("fr-CA")
	if funcs["format_date"].(func(string, time.Time) string)("fr", registryTime) != "fr-10 nov. 2025" {
		t.Fatalf("func map should reflect provider override for child locales")
	}

	en := registry.FuncMap("en")["format_date"].(func(string, time.Time) string)
	if got := en("en", registryTime); got != "Nov 10, 2025" {
		t.Fatalf("other locales keep defaults, got %q", got)
	}
}

func TestFormatterRegistryProviderOverrideOrder(t *testing.T) {
	registry := NewFormatterRegistry()

	registry.RegisterProvider("fr", func(locale string) map[string]any {
		return map[string]any{
			"format_month": func(string, time.Time) string {
				return "provider"
			},
		}
	})

	registry.RegisterLocale("fr", "format_month", func(string, time.Time) string {
		return "override"
	})

	fnAny, ok := registry.Formatter("format_month", "fr")
	if !ok {
		t.Fatal("expected formatter")
	}

	fn := fnAny.(func(string, time.Time) string)
	if got := fn("fr", registryTime); got != "override" {
		t.Fatalf("override should win, got %q", got)
	}
}

func TestFormatterRegistryGlobalRegister(t *testing.T) {
	registry := NewFormatterRegistry()
	registry.RegisterLocale("fr", "format_time", func(string, time.Time) string { return "locale" })
	registry.Register("format_time", func(string, time.Time) string { return "global" })

	fn := registry.FuncMap("fr")["format_time"].(func(string, time.Time) string)
	if got := fn("fr", registryTime); got != "global" {
		t.Fatalf("Register should replace every locale, got %q", got)
	}
}

func TestFormatterRegistryFallbackChain(t *testing.T) {
	resolver := NewStaticFallbackResolver()
	resolver.Set("ca", "es")

	registry := NewFormatterRegistry(
		WithFormatterRegistryResolver(resolver),
		WithFormatterRegistryLocales("ca", "es"),
		WithFormatterRegistryCalendars(mustProviderWithResolver(t, resolver)),
		WithFormatterRegistryProvider("es", func(string) map[string]any {
			return map[string]any{
				"format_weekday": func(string, time.Time) string { return "es-weekday" },
			}
		}),
	)

	fn := registry.FuncMap("ca")["format_weekday"].(func(string, time.Time) string)
	if got := fn("ca", registryTime); got != "es-weekday" {
		t.Fatalf("fallback provider = %q", got)
	}

	date := registry.FuncMap("ca")["format_date"].(func(string, time.Time) string)
	if got := date("ca", registryTime); got != "10 nov 2025" {
		t.Fatalf("ca format_date = %q", got)
	}
}

func mustProviderWithResolver(t *testing.T, resolver FallbackResolver) *CalendarProvider {
	t.Helper()
	provider, err := NewCalendarProvider(nil, resolver)
	if err != nil {
		t.Fatalf("NewCalendarProvider: %v", err)
	}
	return provider
}

func TestFormatterRegistrySeedsParentFallbacks(t *testing.T) {
	resolver := NewStaticFallbackResolver()
	NewFormatterRegistry(
		WithFormatterRegistryResolver(resolver),
		WithFormatterRegistryLocales("fr-CA", "en-GB"),
	)

	if got := resolver.Resolve("fr-CA"); len(got) != 1 || got[0] != "fr" {
		t.Fatalf("fr-CA fallbacks = %v", got)
	}
	if got := resolver.Resolve("en-GB"); len(got) != 2 || got[1] != "en" {
		t.Fatalf("en-GB fallbacks = %v", got)
	}
}

func TestFormatterRegistryPanicsWithoutCalendarData(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "pt-BR") {
			t.Fatalf("panic = %v", r)
		}
	}()
	NewFormatterRegistry(WithFormatterRegistryLocales("pt-BR"))
}

func TestFormatterRegistryLocales(t *testing.T) {
	if got := NewFormatterRegistry().Locales(); len(got) != 2 || got[0] != "en" || got[1] != "es" {
		t.Fatalf("default Locales = %v", got)
	}
	if got := NewFormatterRegistry(WithFormatterRegistryLocales("ja", "de", "ja")).Locales(); len(got) != 2 || got[0] != "de" {
		t.Fatalf("configured Locales = %v", got)
	}
}

func TestFormatterRegistryCachesFormats(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}
	registry := NewFormatterRegistry(
		WithFormatterRegistryTimeZone(tokyo),
		WithFormatterRegistryDefaultLocale("ja"),
	)

	opts := FormatOptions{Hour: StyleNumeric, Minute: StyleNumeric}
	first, err := registry.DateTimeFormat("", opts)
	if err != nil {
		t.Fatalf("DateTimeFormat: %v", err)
	}
	if first.Locale() != "ja" {
		t.Fatalf("default locale = %q", first.Locale())
	}

	var wg sync.WaitGroup
	for n := 0; n < 8; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := registry.DateTimeFormat("ja", opts); err != nil {
				t.Errorf("DateTimeFormat: %v", err)
			}
		}()
	}
	wg.Wait()

	again, _ := registry.DateTimeFormat("ja", opts)
	if again != first {
		t.Fatal("formatter should be cached per locale and options")
	}
	if got := again.FormatTime(registryTime); got != "23:05" {
		t.Fatalf("registry zone Format = %q", got)
	}

	if _, err := registry.DateTimeFormat("ja", FormatOptions{Month: "huge"}); err == nil {
		t.Fatal("expected invalid option error")
	}
}

func TestPackageFormatters(t *testing.T) {
	if got := FormatDate("de-DE", registryTime); got != "10.11.2025" {
		t.Fatalf("FormatDate = %q", got)
	}
	if got := FormatTime("en-US", registryTime); got != "2:05 PM" {
		t.Fatalf("FormatTime = %q", got)
	}
	if got := FormatDateTime("fr-FR", registryTime); got != "10 nov. 2025, 14:05" {
		t.Fatalf("FormatDateTime = %q", got)
	}
	if got := FormatDate("", registryTime); got != "Nov 10, 2025" {
		t.Fatalf("FormatDate default = %q", got)
	}
}
