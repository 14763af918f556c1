package intl

import (
	"sync"
	"time"
)

var defaultFormatterRegistry = sync.OnceValue(func() *FormatterRegistry {
	return NewFormatterRegistry()
})

// FormatDate renders t with the medium date style of locale.
func FormatDate(locale string, t time.Time) string {
	return defaultFormatterRegistry().FormatWith(locale, FormatOptions{DateStyle: StyleMedium}, t)
}

// FormatDateTime renders t with the medium date and short time styles of locale.
func FormatDateTime(locale string, t time.Time) string {
	return defaultFormatterRegistry().FormatWith(locale, FormatOptions{DateStyle: StyleMedium, TimeStyle: StyleShort}, t)
}

// FormatTime renders t with the short time style of locale.
func FormatTime(locale string, t time.Time) string {
	return defaultFormatterRegistry().FormatWith(locale, FormatOptions{TimeStyle: StyleShort}, t)
}
