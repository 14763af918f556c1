package intl

import "errors"

// ErrMalformedInput indicates a date-time string that could not be parsed.
var ErrMalformedInput = errors.New("intl: malformed date-time input")

// ErrUnsupportedLocale is returned in strict mode when no calendar data matches a locale.
var ErrUnsupportedLocale = errors.New("intl: unsupported locale")

// ErrConflictingOptions marks dateStyle/timeStyle combined with individual field options.
var ErrConflictingOptions = errors.New("intl: dateStyle and timeStyle cannot be combined with field options")

// ErrInvalidOption reports an option value outside its allowed set.
var ErrInvalidOption = errors.New("intl: invalid format option")

// ErrInvalidTimeZone reports a time zone name that could not be loaded.
var ErrInvalidTimeZone = errors.New("intl: invalid time zone")

// ErrInvalidCalendarData reports calendar bundles missing required names or patterns.
var ErrInvalidCalendarData = errors.New("intl: invalid calendar data")
