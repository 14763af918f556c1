package intl

import (
	"reflect"
	"testing"
	"time"

	"golang.org/x/text/language"
)

func TestParsePattern(t *testing.T) {
	tests := []struct {
		pattern string
		want    []patternToken
	}{
		{
			pattern: "EEEE, MMMM d, y",
			want: []patternToken{
				{field: 'E', count: 4},
				{literal: ", "},
				{field: 'M', count: 4},
				{literal: " "},
				{field: 'd', count: 1},
				{literal: ", "},
				{field: 'y', count: 1},
			},
		},
		{
			pattern: "d 'de' MMMM 'de' y",
			want: []patternToken{
				{field: 'd', count: 1},
				{literal: " de "},
				{field: 'M', count: 4},
				{literal: " de "},
				{field: 'y', count: 1},
			},
		},
		{
			pattern: "h 'o''clock' a",
			want: []patternToken{
				{field: 'h', count: 1},
				{literal: " o'clock "},
				{field: 'a', count: 1},
			},
		},
		{
			pattern: "HH''mm",
			want: []patternToken{
				{field: 'H', count: 2},
				{literal: "'"},
				{field: 'm', count: 2},
			},
		},
		{
			pattern: "y年M月d日",
			want: []patternToken{
				{field: 'y', count: 1},
				{literal: "年"},
				{field: 'M', count: 1},
				{literal: "月"},
				{field: 'd', count: 1},
				{literal: "日"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got := parsePattern(tt.pattern)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("parsePattern(%q) = %#v", tt.pattern, got)
			}
		})
	}
}

func TestFormatPatternRoundTrip(t *testing.T) {
	for _, pattern := range []string{
		"EEEE, MMMM d, y",
		"d 'de' MMMM 'de' y",
		"h:mm a",
		"HH 'Uhr'",
		"y年M月d日EEEE",
		"h 'o''clock' a",
	} {
		tokens := parsePattern(pattern)
		if got := parsePattern(formatPattern(tokens)); !reflect.DeepEqual(got, tokens) {
			t.Fatalf("round trip of %q = %#v", pattern, got)
		}
	}

	if got := formatPattern(parsePattern("d 'de' MMMM")); got != "d' de 'MMMM" {
		t.Fatalf("formatPattern quoted literal = %q", got)
	}
	if got := formatPattern(parsePattern("h:mm a")); got != "h:mm a" {
		t.Fatalf("formatPattern plain = %q", got)
	}
}

func TestGlue(t *testing.T) {
	date := parsePattern("MMM d, y")
	clock := parsePattern("h:mm a")

	got := glue("{1} 'at' {0}", date, clock)
	want := parsePattern("MMM d, y 'at' h:mm a")
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("glue = %q", formatPattern(got))
	}

	got = glue("{0} {1}", date, clock)
	want = parsePattern("h:mm a MMM d, y")
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("glue reversed = %q", formatPattern(got))
	}
}

func TestRendererNumberingSystems(t *testing.T) {
	en, _ := defaultCalendarProvider().Get("en")

	tests := []struct {
		system string
		padded string
		year   string
	}{
		{"latn", "03", "2025"},
		{"arab", "٠٣", "٢٠٢٥"},
		{"arabext", "۰۳", "۲۰۲۵"},
		{"deva", "०३", "२०२५"},
		{"thai", "๐๓", "๒๐๒๕"},
		{"fullwide", "０３", "２０２５"},
		{"", "03", "2025"},
	}

	for _, tt := range tests {
		t.Run(tt.system, func(t *testing.T) {
			r := newPatternRenderer(en, language.MustParse("en-US"), tt.system)
			if got := r.number(3, 2); got != tt.padded {
				t.Fatalf("number(3, 2) = %q, want %q", got, tt.padded)
			}
			if got := r.number(2025, 1); got != tt.year {
				t.Fatalf("number(2025, 1) = %q, want %q", got, tt.year)
			}
		})
	}

	r := newPatternRenderer(en, language.MustParse("en-US"), "latn")
	if got := r.number(123456, 0); got != "123456" {
		t.Fatalf("numbers must not be grouped, got %q", got)
	}

	when := time.Date(2025, 11, 10, 14, 5, 9, 5*int(time.Millisecond), time.UTC)
	if got := r.fraction(when, 3); got != "005" {
		t.Fatalf("fraction(3) = %q", got)
	}
	when = when.Add(118 * time.Millisecond)
	if got := r.fraction(when, 2); got != "12" {
		t.Fatalf("fraction(2) = %q", got)
	}
}

func TestClockHour(t *testing.T) {
	tests := []struct {
		field rune
		hour  int
		want  int
	}{
		{'h', 0, 12},
		{'h', 12, 12},
		{'h', 13, 1},
		{'K', 0, 0},
		{'K', 12, 0},
		{'K', 23, 11},
		{'H', 0, 0},
		{'H', 23, 23},
		{'k', 0, 24},
		{'k', 13, 13},
	}

	for _, tt := range tests {
		if got := clockHour(tt.field, tt.hour); got != tt.want {
			t.Fatalf("clockHour(%c, %d) = %d, want %d", tt.field, tt.hour, got, tt.want)
		}
	}
}

func TestRendererZoneNames(t *testing.T) {
	en, ok := defaultCalendarProvider().Get("en")
	if !ok {
		t.Fatal("missing en bundle")
	}
	r := newPatternRenderer(en, language.MustParse("en-US"), "latn")

	newYork, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}

	base := time.Date(2025, 11, 10, 14, 5, 0, 0, time.UTC)
	summer := time.Date(2025, 7, 10, 14, 5, 0, 0, time.UTC)

	tests := []struct {
		name string
		when time.Time
		zone *time.Location
		long bool
		want string
	}{
		{"utc short", base, time.UTC, false, "UTC"},
		{"utc long", base, time.UTC, true, "Coordinated Universal Time"},
		{"whole hours", base, time.FixedZone("X", 9*3600), false, "GMT+9"},
		{"whole hours long", base, time.FixedZone("X", 9*3600), true, "GMT+09:00"},
		{"half hours", base, time.FixedZone("X", 5*3600+1800), false, "GMT+5:30"},
		{"negative", base, time.FixedZone("X", -5*3600), false, "GMT-5"},
		{"zero offset", base, time.FixedZone("GMT", 0), false, "GMT"},
		{"abbreviation winter", base, newYork, false, "EST"},
		{"abbreviation summer", summer, newYork, false, "EDT"},
		{"abbreviation long", base, newYork, true, "GMT-05:00"},
		{"unlisted abbreviation", base, time.FixedZone("XST", -5*3600), false, "GMT-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.zone(tt.when.In(tt.zone), tt.long); got != tt.want {
				t.Fatalf("zone = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRendererMergesLiterals(t *testing.T) {
	en, _ := defaultCalendarProvider().Get("en")
	r := newPatternRenderer(en, language.MustParse("en"), "latn")

	parts := r.render([]patternToken{
		{field: 'y', count: 1},
		{literal: "-"},
		{literal: "-"},
		{field: 'd', count: 2},
	}, time.Date(2025, 11, 5, 0, 0, 0, 0, time.UTC))

	want := []DatePart{
		{Type: PartYear, Value: "2025"},
		{Type: PartLiteral, Value: "--"},
		{Type: PartDay, Value: "05"},
	}
	if !reflect.DeepEqual(parts, want) {
		t.Fatalf("render = %#v", parts)
	}
}
