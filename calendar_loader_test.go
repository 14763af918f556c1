package intl

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"
)

func TestCalendarDataLoaderLoadsYAMLAndOverrides(t *testing.T) {
	data, err := NewCalendarDataLoader(filepath.Join("testdata", "calendars.yaml")).
		AddOverride("fr", filepath.Join("testdata", "fr_override.json")).
		Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	pt, ok := data.Locales["pt"]
	if !ok {
		t.Fatal("pt bundle missing")
	}
	if pt.Locale != "pt" || len(pt.Months.Wide) != 12 || pt.Months.Wide[10] != "novembro" {
		t.Fatalf("pt months = %v", pt.Months.Wide)
	}
	if pt.Conventions.DecimalSeparator != "," {
		t.Fatalf("pt decimal separator = %q", pt.Conventions.DecimalSeparator)
	}

	gb := data.Locales["en-GB"]
	if gb.DayPeriods.AM != "a.m." || gb.DayPeriods.PM != "p.m." {
		t.Fatalf("en-GB day periods = %+v", gb.DayPeriods)
	}

	fr := data.Locales["fr"]
	if fr.DateFormats.Medium != "d MMMM y" || fr.DateFormats.Short != "" {
		t.Fatalf("fr override = %+v", fr.DateFormats)
	}
}

func TestCalendarDataLoaderFeedsProvider(t *testing.T) {
	data, err := NewCalendarDataLoader(filepath.Join("testdata", "calendars.yaml")).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	provider, err := NewCalendarProvider(data, nil)
	if err != nil {
		t.Fatalf("NewCalendarProvider: %v", err)
	}

	f := mustFormat(t, "pt-BR", fullDate, WithFormatCalendars(provider))
	if got := f.Format(sampleInstant()); got != "segunda-feira, 10 de novembro de 2025" {
		t.Fatalf("pt Format = %q", got)
	}
	if f.ResolvedOptions().DataLocale != "pt" {
		t.Fatalf("DataLocale = %q", f.ResolvedOptions().DataLocale)
	}

	gb := mustFormat(t, "en-GB", FormatOptions{Hour: StyleNumeric, Minute: StyleNumeric, Hour12: Bool(true)}, WithFormatCalendars(provider))
	if got := gb.Format(sampleInstant()); got != "2:05 p.m." {
		t.Fatalf("en-GB Format = %q", got)
	}
}

func TestCalendarDataLoaderEmpty(t *testing.T) {
	data, err := NewCalendarDataLoader("").Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(data.Locales) != 0 {
		t.Fatalf("expected no locales, got %d", len(data.Locales))
	}
}

func TestCalendarDataLoaderZeroValueAcceptsOverrides(t *testing.T) {
	var loader CalendarDataLoader
	data, err := loader.AddOverride("fr", filepath.Join("testdata", "fr_override.json")).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(data.Locales) != 1 || data.Locales["fr"].DateFormats.Medium != "d MMMM y" {
		t.Fatalf("zero value loader = %+v", data.Locales)
	}
}

func TestCalendarDataLoaderErrors(t *testing.T) {
	tests := []struct {
		name   string
		loader *CalendarDataLoader
		want   error
	}{
		{"missing file", NewCalendarDataLoader(filepath.Join("testdata", "missing.yaml")), fs.ErrNotExist},
		{"broken yaml", NewCalendarDataLoader(filepath.Join("testdata", "broken.yaml")), ErrInvalidCalendarData},
		{"unsupported extension", NewCalendarDataLoader(filepath.Join("testdata", "calendars.xml")), ErrInvalidCalendarData},
		{"missing override", NewCalendarDataLoader("").AddOverride("fr", filepath.Join("testdata", "nope.json")), fs.ErrNotExist},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.loader.Load(); !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCalendarDataLoaderInvalidBundlesFailProvider(t *testing.T) {
	for _, file := range []string{"cycle.yaml", "incomplete.yaml"} {
		t.Run(file, func(t *testing.T) {
			data, err := NewCalendarDataLoader(filepath.Join("testdata", file)).Load()
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if _, err := NewCalendarProvider(data, nil); !errors.Is(err, ErrInvalidCalendarData) {
				t.Fatalf("NewCalendarProvider error = %v", err)
			}
		})
	}
}
