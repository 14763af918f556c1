package intl

import (
	"encoding/json"
	"errors"
	"math/rand/v2"
	"testing"
	"time"
)

func TestNewInstantRoundTrip(t *testing.T) {
	i := NewInstant(2025, 11, 25, 10, 30, 0, 0, time.UTC)

	checks := []struct {
		name string
		got  int
		want int
	}{
		{"FullYear", i.FullYear(), 2025},
		{"Month", i.Month(), 11},
		{"Date", i.Date(), 25},
		{"Hours", i.Hours(), 10},
		{"Minutes", i.Minutes(), 30},
		{"Seconds", i.Seconds(), 0},
		{"Milliseconds", i.Milliseconds(), 0},
		{"Day", i.Day(), 4},
	}
	for _, check := range checks {
		if check.got != check.want {
			t.Fatalf("%s = %d, want %d", check.name, check.got, check.want)
		}
	}

	if got := i.ToISOString(); got != "2025-12-25T10:30:00.000Z" {
		t.Fatalf("ToISOString = %q", got)
	}
	if i.Time() != 1766658600000 {
		t.Fatalf("Time = %d", i.Time())
	}
	if i.UnixMilli() != i.Time() {
		t.Fatal("UnixMilli should equal Time")
	}
}

func TestNewInstantNormalizesFields(t *testing.T) {
	tests := []struct {
		name string
		got  Instant
		want string
	}{
		{"month overflow", NewInstant(2025, 12, 1, 0, 0, 0, 0, nil), "2026-01-01T00:00:00.000Z"},
		{"negative month", NewInstant(2025, -1, 15, 0, 0, 0, 0, nil), "2024-12-15T00:00:00.000Z"},
		{"day zero", NewInstant(2025, 2, 0, 0, 0, 0, 0, nil), "2025-02-28T00:00:00.000Z"},
		{"hour overflow", NewInstant(2025, 0, 31, 24, 0, 0, 0, nil), "2025-02-01T00:00:00.000Z"},
		{"millisecond overflow", NewInstant(2025, 0, 1, 0, 0, 59, 1500, nil), "2025-01-01T00:01:00.500Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.got.ToISOString(); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInstantSettersCarryAndBorrow(t *testing.T) {
	jan31 := NewInstant(2025, 0, 31, 9, 15, 0, 0, time.UTC)

	tests := []struct {
		name string
		got  Instant
		want string
	}{
		{"SetMonth into 30 day month", jan31.SetMonth(3), "2025-05-01T09:15:00.000Z"},
		{"SetMonth into February", jan31.SetMonth(1), "2025-03-03T09:15:00.000Z"},
		{"SetMonth with day", jan31.SetMonth(5, 10), "2025-06-10T09:15:00.000Z"},
		{"SetMonth negative", jan31.SetMonth(-2), "2024-12-01T09:15:00.000Z"},
		{"SetDate zero", jan31.SetDate(0), "2024-12-31T09:15:00.000Z"},
		{"SetDate overflow", jan31.SetDate(32), "2025-02-01T09:15:00.000Z"},
		{"SetFullYear leap day", NewInstant(2024, 1, 29, 0, 0, 0, 0, nil).SetFullYear(2023), "2023-03-01T00:00:00.000Z"},
		{"SetFullYear with month and day", jan31.SetFullYear(2030, 6, 4), "2030-07-04T09:15:00.000Z"},
		{"SetHours overflow", jan31.SetHours(25), "2025-02-01T01:15:00.000Z"},
		{"SetHours with rest", jan31.SetHours(23, 59, 59, 999), "2025-01-31T23:59:59.999Z"},
		{"SetMinutes negative", jan31.SetMinutes(-1), "2025-01-31T08:59:00.000Z"},
		{"SetMinutes with seconds", jan31.SetMinutes(0, 90), "2025-01-31T09:01:30.000Z"},
		{"SetSeconds overflow", jan31.SetSeconds(3600), "2025-01-31T10:15:00.000Z"},
		{"SetSeconds with millis", jan31.SetSeconds(1, 250), "2025-01-31T09:15:01.250Z"},
		{"SetMilliseconds negative", jan31.SetMilliseconds(-1), "2025-01-31T09:14:59.999Z"},
		{"SetTime", jan31.SetTime(0), "1970-01-01T00:00:00.000Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.got.ToISOString(); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}

	if got := jan31.ToISOString(); got != "2025-01-31T09:15:00.000Z" {
		t.Fatalf("setters must not mutate the receiver, got %q", got)
	}
}

func TestInstantSettersUseLocation(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}

	i := MustParseInstant("2025-11-10T20:00:00Z").In(tokyo)
	if i.Date() != 11 || i.Hours() != 5 {
		t.Fatalf("Tokyo fields = %d %d", i.Date(), i.Hours())
	}

	moved := i.SetHours(0)
	if got := moved.ToISOString(); got != "2025-11-10T15:00:00.000Z" {
		t.Fatalf("SetHours in Tokyo = %q", got)
	}
	if moved.Location() != tokyo {
		t.Fatal("setters should keep the location")
	}
	if !i.UTC().Equal(i) {
		t.Fatal("UTC projection should describe the same moment")
	}
}

// zellerWeekday returns 0 for Sunday through 6 for Saturday.
func zellerWeekday(year, month, day int) int {
	if month < 3 {
		month += 12
		year--
	}
	k := year % 100
	j := year / 100
	h := (day + 13*(month+1)/5 + k + k/4 + j/4 + 5*j) % 7
	return (h + 6) % 7
}

func TestInstantWeekdayMatchesZeller(t *testing.T) {
	r := rand.New(rand.NewPCG(20251110, 7))

	const (
		lower = int64(-2208988800000) // 1900-01-01
		upper = int64(4102444800000)  // 2100-01-01
	)

	for n := 0; n < 1000; n++ {
		i := UnixMilli(lower + r.Int64N(upper-lower))

		day := i.Day()
		if day < 0 || day > 6 {
			t.Fatalf("%s: Day() = %d out of range", i.ToISOString(), day)
		}

		want := zellerWeekday(i.FullYear(), i.Month()+1, i.Date())
		if day != want {
			t.Fatalf("%s: Day() = %d, Zeller = %d", i.ToISOString(), day, want)
		}

		if m := i.Month(); m < 0 || m > 11 {
			t.Fatalf("%s: Month() = %d out of range", i.ToISOString(), m)
		}
		if h := i.Hours(); h < 0 || h > 23 {
			t.Fatalf("%s: Hours() = %d out of range", i.ToISOString(), h)
		}
		if ms := i.Milliseconds(); ms < 0 || ms > 999 {
			t.Fatalf("%s: Milliseconds() = %d out of range", i.ToISOString(), ms)
		}
	}
}

func TestParseInstant(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2025-11-10", "2025-11-10T00:00:00.000Z"},
		{"2025-11", "2025-11-01T00:00:00.000Z"},
		{"2025", "2025-01-01T00:00:00.000Z"},
		{"2025-11-10T14:05:09.123Z", "2025-11-10T14:05:09.123Z"},
		{"2025-11-10T14:05:09+09:00", "2025-11-10T05:05:09.000Z"},
		{"2025-11-10T14:05", "2025-11-10T14:05:00.000Z"},
		{"2025-11-10 14:05:09", "2025-11-10T14:05:09.000Z"},
		{"  2025-11-10T14:05:09Z ", "2025-11-10T14:05:09.000Z"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseInstant(tt.input)
			if err != nil {
				t.Fatalf("ParseInstant: %v", err)
			}
			if iso := got.ToISOString(); iso != tt.want {
				t.Fatalf("got %q, want %q", iso, tt.want)
			}
		})
	}
}

func TestParseInstantInReadsLocalTimes(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}

	local, err := ParseInstantIn("2025-11-10T14:05:00", paris)
	if err != nil {
		t.Fatalf("ParseInstantIn: %v", err)
	}
	if got := local.ToISOString(); got != "2025-11-10T13:05:00.000Z" {
		t.Fatalf("local time = %q", got)
	}

	dateOnly, err := ParseInstantIn("2025-11-10", paris)
	if err != nil {
		t.Fatalf("ParseInstantIn: %v", err)
	}
	if got := dateOnly.ToISOString(); got != "2025-11-10T00:00:00.000Z" {
		t.Fatalf("date only = %q", got)
	}
}

func TestParseInstantMalformed(t *testing.T) {
	for _, input := range []string{"", "   ", "tomorrow", "2025-13-45", "10/11/2025"} {
		got, err := ParseInstant(input)
		if !errors.Is(err, ErrMalformedInput) {
			t.Fatalf("ParseInstant(%q) error = %v, want ErrMalformedInput", input, err)
		}
		if got != (Instant{}) {
			t.Fatalf("ParseInstant(%q) should return the zero Instant", input)
		}
	}
}

func TestMustParseInstantPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic")
		}
	}()
	MustParseInstant("not a date")
}

func TestInstantString(t *testing.T) {
	i := MustParseInstant("2025-11-10T14:05:09.123Z")
	if got := i.String(); got != "Mon Nov 10 2025 14:05:09 GMT+0000 (UTC)" {
		t.Fatalf("String = %q", got)
	}

	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}
	if got := i.In(tokyo).String(); got != "Mon Nov 10 2025 23:05:09 GMT+0900 (JST)" {
		t.Fatalf("String in Tokyo = %q", got)
	}
}

func TestInstantJSON(t *testing.T) {
	type event struct {
		At Instant `json:"at"`
	}

	raw, err := json.Marshal(event{At: MustParseInstant("2025-11-10T14:05:09.123Z")})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(raw) != `{"at":"2025-11-10T14:05:09.123Z"}` {
		t.Fatalf("Marshal = %s", raw)
	}

	var decoded event
	if err := json.Unmarshal([]byte(`{"at":"2025-12-25"}`), &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.At.Month() != 11 || decoded.At.Date() != 25 {
		t.Fatalf("decoded = %s", decoded.At.ToISOString())
	}

	if err := json.Unmarshal([]byte(`{"at":"soon"}`), &decoded); !errors.Is(err, ErrMalformedInput) {
		t.Fatalf("Unmarshal error = %v", err)
	}
}

func TestZeroInstantIsEpoch(t *testing.T) {
	var i Instant
	if i.FullYear() != 1970 || i.Location() != time.UTC {
		t.Fatalf("zero instant = %s", i)
	}
	if !FromTime(time.Unix(0, 0)).Equal(i) {
		t.Fatal("FromTime(epoch) should equal the zero Instant")
	}
}
