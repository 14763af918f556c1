package main

import (
	"strings"
	"testing"
)

func TestParentLocale(t *testing.T) {
	generated := []string{"ar", "ar-MA", "en", "en-GB", "fr"}

	tests := []struct {
		locale string
		want   string
	}{
		{"ar-MA", "ar"},
		{"en-GB", "en"},
		{"fr", ""},
		{"en-AU", "en"},
	}

	for _, tt := range tests {
		if got := parentLocale(tt.locale, generated); got != tt.want {
			t.Fatalf("parentLocale(%q) = %q, want %q", tt.locale, got, tt.want)
		}
	}
}

func TestNormalizeLocale(t *testing.T) {
	got, err := normalizeLocale(" en_gb ")
	if err != nil || got != "en-GB" {
		t.Fatalf("normalizeLocale = %q, %v", got, err)
	}
	if _, err := normalizeLocale(""); err == nil {
		t.Fatal("expected error for empty locale")
	}
}

func TestLocaleFlag(t *testing.T) {
	var f localeFlag
	if err := f.Set("en, fr,,de"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := f.Set("ja"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if f.String() != "en,fr,de,ja" {
		t.Fatalf("String = %q", f.String())
	}
}

func TestRenderSource(t *testing.T) {
	months := []string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"}
	bundles := []bundlePayload{
		{
			Locale: "en",
			Months: nameSet{Wide: months},
			AM:     "AM",
			PM:     "PM",
			DateFormats: stylePatterns{
				Full: "EEEE, MMMM d, y", Long: "MMMM d, y", Medium: "MMM d, y", Short: "M/d/yy",
			},
			Available: map[string]string{"yMd": "M/d/y", "Hm": "HH:mm"},
		},
		{Locale: "en-GB", Parent: "en"},
	}

	source, err := renderSource("intl", bundles)
	if err != nil {
		t.Fatalf("renderSource: %v", err)
	}

	text := string(source)
	for _, want := range []string{
		"// Code generated by intl-calendars. DO NOT EDIT.",
		"package intl",
		`Parent: "en",`,
		`DayPeriods: DayPeriods{AM: "AM", PM: "PM"},`,
		`"Hm":  "HH:mm",`,
		`Medium: "MMM d, y",`,
		"func GeneratedCalendarLocales() []string",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("generated source missing %q:\n%s", want, text)
		}
	}

	if strings.Index(text, `"Hm"`) > strings.Index(text, `"yMd"`) {
		t.Fatal("available formats should be sorted")
	}
}
