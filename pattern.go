package intl

import (
	"slices"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Part types returned by FormatToParts.
const (
	PartWeekday          = "weekday"
	PartYear             = "year"
	PartMonth            = "month"
	PartDay              = "day"
	PartHour             = "hour"
	PartMinute           = "minute"
	PartSecond           = "second"
	PartFractionalSecond = "fractionalSecond"
	PartDayPeriod        = "dayPeriod"
	PartTimeZoneName     = "timeZoneName"
	PartLiteral          = "literal"
)

// DatePart is one rendered piece of a formatted date.
type DatePart struct {
	Type  string `json:"type" yaml:"type"`
	Value string `json:"value" yaml:"value"`
}

// patternToken is a run of one field letter, or literal text when field is 0.
type patternToken struct {
	field   rune
	count   int
	literal string
}

func isPatternLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// parsePattern splits a CLDR date pattern into field runs and literals.
// Text inside single quotes is literal and '' is an escaped quote.
func parsePattern(pattern string) []patternToken {
	var (
		tokens  []patternToken
		literal strings.Builder
		quoted  bool
	)

	flush := func() {
		if literal.Len() == 0 {
			return
		}
		tokens = append(tokens, patternToken{literal: literal.String()})
		literal.Reset()
	}

	runes := []rune(pattern)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\'' {
			if i+1 < len(runes) && runes[i+1] == '\'' {
				literal.WriteRune('\'')
				i++
				continue
			}
			quoted = !quoted
			continue
		}
		if quoted || !isPatternLetter(r) {
			literal.WriteRune(r)
			continue
		}

		flush()
		count := 1
		for i+1 < len(runes) && runes[i+1] == r {
			count++
			i++
		}
		tokens = append(tokens, patternToken{field: r, count: count})
	}
	flush()

	return tokens
}

// formatPattern is the inverse of parsePattern.
func formatPattern(tokens []patternToken) string {
	var b strings.Builder
	for _, tok := range tokens {
		if tok.field != 0 {
			b.WriteString(strings.Repeat(string(tok.field), tok.count))
			continue
		}
		needsQuote := false
		for _, r := range tok.literal {
			if isPatternLetter(r) || r == '\'' {
				needsQuote = true
				break
			}
		}
		if !needsQuote {
			b.WriteString(tok.literal)
			continue
		}
		b.WriteByte('\'')
		b.WriteString(strings.ReplaceAll(tok.literal, "'", "''"))
		b.WriteByte('\'')
	}
	return b.String()
}

// glue substitutes date ({1}) and time ({0}) token runs into a CLDR
// dateTimeFormat pattern.
func glue(pattern string, date, clock []patternToken) []patternToken {
	var out []patternToken
	for pattern != "" {
		idx0 := strings.Index(pattern, "{0}")
		idx1 := strings.Index(pattern, "{1}")

		next, part := -1, []patternToken(nil)
		switch {
		case idx0 >= 0 && (idx1 < 0 || idx0 < idx1):
			next, part = idx0, clock
		case idx1 >= 0:
			next, part = idx1, date
		}

		if next < 0 {
			out = append(out, parsePattern(pattern)...)
			break
		}
		out = append(out, parsePattern(pattern[:next])...)
		out = append(out, part...)
		pattern = pattern[next+3:]
	}
	return out
}

func isHourField(r rune) bool {
	return r == 'h' || r == 'H' || r == 'K' || r == 'k'
}

func is12HourCycle(cycle string) bool {
	return cycle == HourCycleH11 || cycle == HourCycleH12
}

func hourLetter(cycle string) rune {
	switch cycle {
	case HourCycleH11:
		return 'K'
	case HourCycleH12:
		return 'h'
	case HourCycleH24:
		return 'k'
	default:
		return 'H'
	}
}

// patternHourCycle reports the cycle implied by the first hour field, or "".
func patternHourCycle(tokens []patternToken) string {
	for _, tok := range tokens {
		switch tok.field {
		case 'h':
			return HourCycleH12
		case 'K':
			return HourCycleH11
		case 'H':
			return HourCycleH23
		case 'k':
			return HourCycleH24
		}
	}
	return ""
}

// patternBuilder turns FormatOptions into a token list for one bundle.
type patternBuilder struct {
	bundle    CalendarBundle
	opts      FormatOptions
	hourCycle string
}

func (b patternBuilder) build() []patternToken {
	if b.opts.hasStyle() {
		return b.buildStyle()
	}
	return b.buildFields()
}

func (b patternBuilder) buildStyle() []patternToken {
	var date, clock []patternToken
	if b.opts.DateStyle != "" {
		date = parsePattern(b.bundle.DateFormats.get(b.opts.DateStyle))
	}
	if b.opts.TimeStyle != "" {
		clock = b.timeStyleTokens(b.opts.TimeStyle)
	}

	switch {
	case date != nil && clock != nil:
		return glue(b.bundle.DateTimeFormats.get(b.opts.DateStyle), date, clock)
	case date != nil:
		return date
	default:
		return clock
	}
}

// timeStyleTokens returns the locale time pattern for style, rebuilt from
// skeletons when the pattern's clock disagrees with the requested cycle.
func (b patternBuilder) timeStyleTokens(style string) []patternToken {
	tokens := parsePattern(b.bundle.TimeFormats.get(style))
	if is12HourCycle(patternHourCycle(tokens)) == is12HourCycle(b.hourCycle) {
		return b.normalizeHours(tokens)
	}

	skeleton := "Hm"
	if is12HourCycle(b.hourCycle) {
		skeleton = "hm"
	}
	if style != StyleShort {
		skeleton += "s"
	}

	tokens = b.lookupTime(skeleton)
	switch style {
	case StyleLong:
		tokens = append(tokens, patternToken{literal: " "}, patternToken{field: 'z', count: 1})
	case StyleFull:
		tokens = append(tokens, patternToken{literal: " "}, patternToken{field: 'z', count: 4})
	}
	return b.normalizeHours(tokens)
}

func (b patternBuilder) buildFields() []patternToken {
	date := b.dateFieldTokens()
	clock := b.timeFieldTokens()

	if b.opts.TimeZoneName != "" {
		zone := patternToken{field: 'z', count: 1}
		if b.opts.TimeZoneName == StyleLong {
			zone.count = 4
		}
		if clock != nil {
			clock = append(clock, patternToken{literal: " "}, zone)
		} else {
			clock = []patternToken{zone}
		}
	}

	switch {
	case date != nil && clock != nil:
		return glue(b.bundle.DateTimeFormats.get(b.glueStyle()), date, clock)
	case date != nil:
		return date
	default:
		return clock
	}
}

func (b patternBuilder) glueStyle() string {
	switch {
	case b.opts.Month == StyleLong && b.opts.Weekday != "":
		return StyleFull
	case b.opts.Month == StyleLong:
		return StyleLong
	case b.opts.Month == StyleShort || b.opts.Month == StyleNarrow:
		return StyleMedium
	default:
		return StyleShort
	}
}

func monthCount(style string) int {
	switch style {
	case Style2Digit:
		return 2
	case StyleShort:
		return 3
	case StyleLong:
		return 4
	case StyleNarrow:
		return 5
	default:
		return 1
	}
}

func weekdayCount(style string) int {
	switch style {
	case StyleLong:
		return 4
	case StyleNarrow:
		return 5
	default:
		return 3
	}
}

func (b patternBuilder) dateFieldTokens() []patternToken {
	o := b.opts
	if !o.hasDateFields() {
		return nil
	}

	var exact, canonical strings.Builder
	if o.Year != "" {
		exact.WriteString("y")
		canonical.WriteString("y")
	}
	if o.Month != "" {
		count := monthCount(o.Month)
		exact.WriteString(strings.Repeat("M", count))
		if count >= 3 {
			canonical.WriteString("MMM")
		} else {
			canonical.WriteString("M")
		}
	}
	if o.Weekday != "" {
		exact.WriteString(strings.Repeat("E", weekdayCount(o.Weekday)))
		canonical.WriteString("E")
	}
	if o.Day != "" {
		exact.WriteString("d")
		canonical.WriteString("d")
	}

	var tokens []patternToken
	for _, key := range []string{exact.String(), canonical.String()} {
		if pattern, ok := b.bundle.AvailableFormats[key]; ok {
			tokens = parsePattern(pattern)
			break
		}
	}
	if tokens == nil {
		tokens = b.fallbackDateTokens()
	}
	return b.adjustDateWidths(tokens)
}

// fallbackDateTokens orders the requested fields like the medium date
// pattern when no skeleton matches.
func (b patternBuilder) fallbackDateTokens() []patternToken {
	o := b.opts
	var order []rune
	if o.Weekday != "" {
		order = append(order, 'E')
	}
	for _, tok := range parsePattern(b.bundle.DateFormats.Medium) {
		switch {
		case tok.field == 'y' && o.Year != "",
			(tok.field == 'M' || tok.field == 'L') && o.Month != "",
			tok.field == 'd' && o.Day != "":
			if !containsRune(order, tok.field) {
				order = append(order, tok.field)
			}
		}
	}

	var tokens []patternToken
	for i, field := range order {
		if i > 0 {
			tokens = append(tokens, patternToken{literal: " "})
		}
		count := 1
		switch field {
		case 'M', 'L':
			count = monthCount(o.Month)
		case 'E':
			count = weekdayCount(o.Weekday)
		}
		tokens = append(tokens, patternToken{field: field, count: count})
	}
	return tokens
}

func containsRune(values []rune, r rune) bool {
	for _, v := range values {
		if v == r {
			return true
		}
	}
	return false
}

func (b patternBuilder) adjustDateWidths(tokens []patternToken) []patternToken {
	o := b.opts
	out := make([]patternToken, len(tokens))
	copy(out, tokens)

	for i, tok := range out {
		switch tok.field {
		case 'y':
			if o.Year == Style2Digit {
				out[i].count = 2
			}
		case 'M', 'L':
			want := monthCount(o.Month)
			if (want >= 3) == (tok.count >= 3) && (want >= 3 || want == 2) {
				out[i].count = want
			}
		case 'E', 'c':
			out[i].count = weekdayCount(o.Weekday)
		case 'd':
			if o.Day == Style2Digit {
				out[i].count = 2
			}
		}
	}
	return out
}

func (b patternBuilder) timeFieldTokens() []patternToken {
	o := b.opts
	if !o.hasTimeFields() {
		return nil
	}

	var skeleton strings.Builder
	if o.Hour != "" {
		if is12HourCycle(b.hourCycle) {
			skeleton.WriteString("h")
		} else {
			skeleton.WriteString("H")
		}
	}
	// Hour and second without minute would read as hour:minute.
	if o.Minute != "" || (o.Hour != "" && o.Second != "") {
		skeleton.WriteString("m")
	}
	if o.Second != "" {
		skeleton.WriteString("s")
	}

	var tokens []patternToken
	if skeleton.Len() > 0 {
		tokens = b.lookupTime(skeleton.String())
	}
	tokens = b.normalizeHours(tokens)

	for i, tok := range tokens {
		switch {
		case isHourField(tok.field) && o.Hour == Style2Digit:
			tokens[i].count = 2
		case tok.field == 'm' && (o.Minute == Style2Digit || o.Hour != ""):
			tokens[i].count = 2
		case tok.field == 's' && (o.Second == Style2Digit || o.Minute != ""):
			tokens[i].count = 2
		}
	}

	if o.FractionalSecondDigits > 0 {
		tokens = b.insertFraction(tokens)
	}
	return tokens
}

// lookupTime resolves a time skeleton such as "Hms" or "hm". Missing
// skeletons are assembled from colon separated fields; skeletons always hold
// adjacent fields, so the colons never skip one.
func (b patternBuilder) lookupTime(skeleton string) []patternToken {
	if pattern, ok := b.bundle.AvailableFormats[skeleton]; ok {
		return parsePattern(pattern)
	}

	var tokens []patternToken
	twelve := false
	single := len(skeleton) == 1
	for i, r := range skeleton {
		if i > 0 {
			tokens = append(tokens, patternToken{literal: ":"})
		}
		count := 2
		if single {
			count = 1
		}
		if r == 'h' {
			count = 1
			twelve = true
		}
		tokens = append(tokens, patternToken{field: r, count: count})
	}
	if twelve {
		tokens = append(tokens, patternToken{literal: " "}, patternToken{field: 'a', count: 1})
	}
	return tokens
}

// normalizeHours rewrites hour letters to the resolved cycle. Callers make
// sure the pattern's 12/24 hour family already matches.
func (b patternBuilder) normalizeHours(tokens []patternToken) []patternToken {
	letter := hourLetter(b.hourCycle)
	out := make([]patternToken, len(tokens))
	copy(out, tokens)
	for i, tok := range out {
		if isHourField(tok.field) {
			out[i].field = letter
		}
	}
	return out
}

func (b patternBuilder) insertFraction(tokens []patternToken) []patternToken {
	fraction := []patternToken{
		{literal: b.bundle.Conventions.DecimalSeparator},
		{field: 'S', count: b.opts.FractionalSecondDigits},
	}
	if fraction[0].literal == "" {
		fraction[0].literal = "."
	}

	for i, tok := range tokens {
		if tok.field != 's' {
			continue
		}
		out := make([]patternToken, 0, len(tokens)+2)
		out = append(out, tokens[:i+1]...)
		out = append(out, fraction...)
		return append(out, tokens[i+1:]...)
	}

	if len(tokens) == 0 {
		return fraction[1:]
	}
	return append(tokens, fraction...)
}

// patternRenderer renders tokens for one resolved locale. Numbers go through
// printer, whose tag carries the -u-nu- numbering system.
type patternRenderer struct {
	bundle  CalendarBundle
	printer *message.Printer
}

func newPatternRenderer(bundle CalendarBundle, tag language.Tag, numberingSystem string) patternRenderer {
	if numberingSystem == "" {
		numberingSystem = "latn"
	}
	if withSystem, err := tag.SetTypeForKey("nu", numberingSystem); err == nil {
		tag = withSystem
	}
	return patternRenderer{bundle: bundle, printer: message.NewPrinter(tag)}
}

func (r patternRenderer) render(tokens []patternToken, t time.Time) []DatePart {
	parts := make([]DatePart, 0, len(tokens))
	for _, tok := range tokens {
		part := r.renderToken(tok, t)
		if part.Value == "" {
			continue
		}
		if part.Type == PartLiteral && len(parts) > 0 && parts[len(parts)-1].Type == PartLiteral {
			parts[len(parts)-1].Value += part.Value
			continue
		}
		parts = append(parts, part)
	}
	return parts
}

func (r patternRenderer) renderToken(tok patternToken, t time.Time) DatePart {
	switch tok.field {
	case 0:
		return DatePart{Type: PartLiteral, Value: tok.literal}
	case 'y':
		year := t.Year()
		if tok.count == 2 {
			return DatePart{Type: PartYear, Value: r.number(((year%100)+100)%100, 2)}
		}
		return DatePart{Type: PartYear, Value: r.number(year, tok.count)}
	case 'M', 'L':
		return DatePart{Type: PartMonth, Value: r.month(tok, int(t.Month())-1)}
	case 'd':
		return DatePart{Type: PartDay, Value: r.number(t.Day(), tok.count)}
	case 'E', 'c', 'e':
		return DatePart{Type: PartWeekday, Value: r.bundle.Weekdays.pick(int(t.Weekday()), nameWidth(tok.count))}
	case 'a', 'b', 'B':
		if t.Hour() < 12 {
			return DatePart{Type: PartDayPeriod, Value: r.bundle.DayPeriods.AM}
		}
		return DatePart{Type: PartDayPeriod, Value: r.bundle.DayPeriods.PM}
	case 'h', 'H', 'K', 'k':
		return DatePart{Type: PartHour, Value: r.number(clockHour(tok.field, t.Hour()), tok.count)}
	case 'm':
		return DatePart{Type: PartMinute, Value: r.number(t.Minute(), tok.count)}
	case 's':
		return DatePart{Type: PartSecond, Value: r.number(t.Second(), tok.count)}
	case 'S':
		return DatePart{Type: PartFractionalSecond, Value: r.fraction(t, tok.count)}
	case 'z', 'v', 'V', 'O', 'Z', 'x', 'X':
		return DatePart{Type: PartTimeZoneName, Value: r.zone(t, tok.field == 'z' && tok.count >= 4)}
	default:
		return DatePart{Type: PartLiteral, Value: strings.Repeat(string(tok.field), tok.count)}
	}
}

// nameWidth maps a text field letter count to a CLDR name width.
func nameWidth(count int) string {
	switch {
	case count == 4:
		return widthWide
	case count == 5:
		return widthNarrow
	case count >= 6:
		return widthShort
	default:
		return widthAbbreviated
	}
}

func (r patternRenderer) month(tok patternToken, index int) string {
	if tok.count <= 2 {
		return r.number(index+1, tok.count)
	}
	names := r.bundle.Months
	if tok.field == 'L' && !r.bundle.MonthsStandalone.isEmpty() {
		names = r.bundle.MonthsStandalone
	}
	return names.pick(index, nameWidth(tok.count))
}

func clockHour(field rune, hour int) int {
	switch field {
	case 'h':
		if h := hour % 12; h != 0 {
			return h
		}
		return 12
	case 'K':
		return hour % 12
	case 'k':
		if hour == 0 {
			return 24
		}
		return hour
	default:
		return hour
	}
}

func (r patternRenderer) number(value, width int) string {
	if width < 1 {
		width = 1
	}
	return r.printer.Sprint(number.Decimal(value, number.MinIntegerDigits(width), number.NoSeparator()))
}

func (r patternRenderer) fraction(t time.Time, digits int) string {
	if digits > 3 {
		digits = 3
	}
	millis := t.Nanosecond() / int(time.Millisecond)
	for n := 3; n > digits; n-- {
		millis /= 10
	}
	return r.number(millis, digits)
}

func (r patternRenderer) zone(t time.Time, long bool) string {
	conv := r.bundle.Conventions
	name, offset := t.Zone()

	if offset == 0 && (name == "UTC" || t.Location() == time.UTC) {
		if long && conv.UTCLongName != "" {
			return conv.UTCLongName
		}
		return "UTC"
	}

	if !long && slices.Contains(conv.ZoneAbbreviations, name) {
		return name
	}

	if offset == 0 {
		if conv.GMTZeroFormat != "" {
			return conv.GMTZeroFormat
		}
		return "GMT"
	}

	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	hours, minutes := offset/3600, (offset%3600)/60

	var value string
	switch {
	case long:
		value = sign + r.number(hours, 2) + ":" + r.number(minutes, 2)
	case minutes != 0:
		value = sign + r.number(hours, 1) + ":" + r.number(minutes, 2)
	default:
		value = sign + r.number(hours, 1)
	}

	format := conv.GMTFormat
	if format == "" {
		format = "GMT{0}"
	}
	return strings.Replace(format, "{0}", value, 1)
}
