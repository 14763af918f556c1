package intl

import (
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// normalizeLocale trims locale and swaps underscores for hyphens.
func normalizeLocale(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
}

// normalizeLocales returns the distinct non-empty locales, sorted.
func normalizeLocales(locales []string) []string {
	var out []string
	for _, locale := range locales {
		if code := normalizeLocale(locale); code != "" {
			out = append(out, code)
		}
	}
	if len(out) == 0 {
		return nil
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// withoutExtensions keeps the language, script and region of tag.
func withoutExtensions(tag language.Tag) (language.Tag, error) {
	base, script, region := tag.Raw()
	return language.Compose(base, script, region)
}

// canonicalLocale returns the BCP 47 form of locale with every extension
// removed, e.g. "ar_eg-u-nu-latn" becomes "ar-EG". The parsed tag keeps its
// extensions.
func canonicalLocale(locale string) (string, language.Tag, error) {
	tag, err := language.Parse(normalizeLocale(locale))
	if err != nil {
		return "", language.Und, err
	}
	stripped, err := withoutExtensions(tag)
	if err != nil {
		return "", language.Und, err
	}
	return stripped.String(), tag, nil
}

// localeParentChain lists the bundles to try after locale, nearest first.
// CLDR parents come first ("en-GB" gives en-001 before en), then whatever
// trimming subtags adds ("zh-Hant-TW" still reaches zh). Extensions never
// take part, and the root locale is left out.
func localeParentChain(locale string) []string {
	code := normalizeLocale(locale)
	if code == "" {
		return nil
	}

	var chain []string
	add := func(parent string) bool {
		if parent == "" || parent == "und" || slices.Contains(chain, parent) {
			return false
		}
		chain = append(chain, parent)
		return true
	}

	if tag, err := language.Parse(code); err == nil {
		if stripped, err := withoutExtensions(tag); err == nil {
			tag = stripped
			code = stripped.String()
		}
		for parent := tag.Parent(); parent != language.Und; parent = parent.Parent() {
			if !add(parent.String()) {
				break
			}
		}
	}

	for idx := strings.LastIndex(code, "-"); idx > 0; idx = strings.LastIndex(code, "-") {
		code = code[:idx]
		add(code)
	}
	return chain
}
