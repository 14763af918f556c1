package intl

import (
	"os"
	"strings"
)

// localeEnvKeys are consulted in POSIX precedence order.
var localeEnvKeys = []string{"LC_ALL", "LC_TIME", "LANG"}

// DetectLocale derives a BCP 47 tag from POSIX locale variables read through
// env, e.g. LANG=fr_FR.UTF-8 gives "fr-FR". It returns DefaultLocale when no
// variable holds a usable value. A nil env reads the process environment.
func DetectLocale(env func(string) string) string {
	if env == nil {
		env = os.Getenv
	}

	for _, key := range localeEnvKeys {
		if locale := posixToBCP47(env(key)); locale != "" {
			return locale
		}
	}
	return DefaultLocale
}

func posixToBCP47(value string) string {
	value = strings.TrimSpace(value)
	if idx := strings.IndexAny(value, ".@"); idx >= 0 {
		value = value[:idx]
	}
	if value == "" || value == "C" || value == "POSIX" {
		return ""
	}

	code, _, err := canonicalLocale(value)
	if err != nil {
		return ""
	}
	return code
}
