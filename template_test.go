package intl

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"text/template"
	"time"
)

type pageData struct {
	Locale string
	When   time.Time
}

func renderTemplate(t *testing.T, helpers map[string]any, text string, data any) (string, error) {
	t.Helper()
	tmpl, err := template.New("page").Funcs(helpers).Parse(text)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	var buf bytes.Buffer
	err = tmpl.Execute(&buf, data)
	return buf.String(), err
}

func TestTemplateHelpersInferLocaleFromData(t *testing.T) {
	helpers := TemplateHelpers(HelperConfig{})

	data := pageData{Locale: "fr-FR", When: registryTime}
	got, err := renderTemplate(t, helpers, `{{current_locale .}}: {{format_date . .When}} {{format_time . .When}}`, data)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got != "fr-FR: 10 nov. 2025 14:05" {
		t.Fatalf("rendered %q", got)
	}

	got, err = renderTemplate(t, helpers, `{{format_weekday . .When}} {{format_month . .When}}`, &data)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got != "lundi novembre" {
		t.Fatalf("pointer data rendered %q", got)
	}
}

func TestTemplateHelpersCustomLocaleKey(t *testing.T) {
	helpers := TemplateHelpers(HelperConfig{LocaleKey: "lang"})

	data := map[string]any{"lang": "de-DE", "when": "2025-11-10T14:05:09Z"}
	got, err := renderTemplate(t, helpers, `{{format_datetime . .when}}`, data)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got != "10.11.2025, 14:05" {
		t.Fatalf("rendered %q", got)
	}

	if got := extractLocale(map[string]string{"lang": "ja"}, "lang"); got != "ja" {
		t.Fatalf("string map locale = %q", got)
	}
	if got := extractLocale(map[string]any{"lang": 42}, "lang"); got != "" {
		t.Fatalf("non string locale = %q", got)
	}
	if got := extractLocale((*pageData)(nil), ""); got != "" {
		t.Fatalf("nil pointer locale = %q", got)
	}
}

func TestTemplateHelpersExplicitLocaleAndValues(t *testing.T) {
	helpers := TemplateHelpers(HelperConfig{})
	formatDate := helpers["format_date"].(func(any, any) (string, error))

	instant := FromTime(registryTime)
	values := []any{
		registryTime,
		&registryTime,
		instant,
		&instant,
		"2025-11-10T14:05:09Z",
		registryTime.UnixMilli(),
		int(registryTime.UnixMilli()),
	}

	for _, value := range values {
		got, err := formatDate("en", value)
		if err != nil {
			t.Fatalf("format_date(%T): %v", value, err)
		}
		if got != "Nov 10, 2025" {
			t.Fatalf("format_date(%T) = %q", value, got)
		}
	}

	for _, value := range []any{3.14, "someday", (*time.Time)(nil), nil} {
		if _, err := formatDate("en", value); !errors.Is(err, ErrMalformedInput) {
			t.Fatalf("format_date(%v) error = %v", value, err)
		}
	}
}

func TestTemplateHelpersFormatWith(t *testing.T) {
	helpers := TemplateHelpers(HelperConfig{})

	got, err := renderTemplate(t, helpers,
		`{{format_with "en-US" .When "weekday=long" "month=long" "day=numeric"}}`,
		pageData{When: registryTime})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got != "Monday, November 10" {
		t.Fatalf("rendered %q", got)
	}

	_, err = renderTemplate(t, helpers, `{{format_with "en" .When "dateStyle=long" "hour=numeric"}}`, pageData{When: registryTime})
	if err == nil || !strings.Contains(err.Error(), ErrConflictingOptions.Error()) {
		t.Fatalf("conflicting options error = %v", err)
	}
}

func TestTemplateHelpersDateStyle(t *testing.T) {
	helpers := TemplateHelpers(HelperConfig{})

	got, err := renderTemplate(t, helpers, `{{format_date_style . "full" .When}}`, pageData{Locale: "es-ES", When: registryTime})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got != "lunes, 10 de noviembre de 2025" {
		t.Fatalf("rendered %q", got)
	}
}

func TestTemplateHelpersUseRegistryOverrides(t *testing.T) {
	registry := NewFormatterRegistry()
	registry.RegisterLocale("ja", "format_date", func(_ string, t time.Time) string {
		return t.Format("2006年1月2日")
	})

	helpers := TemplateHelpers(HelperConfig{Registry: registry})
	got, err := renderTemplate(t, helpers, `{{format_date "ja" .When}}`, pageData{When: registryTime})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got != "2025年11月10日" {
		t.Fatalf("rendered %q", got)
	}

	registry.RegisterLocale("ja", "format_time", "not a function")
	formatTime := helpers["format_time"].(func(any, any) (string, error))
	if _, err := formatTime("ja", registryTime); err == nil {
		t.Fatal("mistyped override should error")
	}
}
