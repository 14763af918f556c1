package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	intl "github.com/goliatone/go-intl"
)

// Configuration keys. Environment variables use the INTL_ prefix with dots
// replaced by underscores, e.g. INTL_LOG_LEVEL.
const (
	keyLocales       = "locales"
	keyDefaultLocale = "default_locale"
	keyTimeZone      = "time_zone"
	keyCalendarData  = "calendar_data"
	keyStrict        = "strict"
	keyOutput        = "output"
	keyOptions       = "options"
	keyLogLevel      = "log.level"
	keyLogFormat     = "log.format"
)

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("INTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(keyLocales, []string{intl.DetectLocale(os.Getenv)})
	v.SetDefault(keyDefaultLocale, "")
	v.SetDefault(keyTimeZone, "")
	v.SetDefault(keyCalendarData, "")
	v.SetDefault(keyStrict, false)
	v.SetDefault(keyOutput, "text")
	v.SetDefault(keyLogLevel, "warn")
	v.SetDefault(keyLogFormat, "text")

	return v
}

func readConfigFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return nil
}

// splitLocales accepts repeated values as well as comma separated lists, so
// INTL_LOCALES=fr-FR,de works like --locale fr-FR --locale de.
func splitLocales(values []string) []string {
	var out []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func buildConfig(v *viper.Viper) (*intl.Config, error) {
	opts := []intl.Option{
		intl.WithTimeZone(v.GetString(keyTimeZone)),
	}
	if locale := v.GetString(keyDefaultLocale); locale != "" {
		opts = append(opts, intl.WithDefaultLocale(locale))
	}
	if path := v.GetString(keyCalendarData); path != "" {
		opts = append(opts, intl.WithCalendarData(path))
	}
	if v.GetBool(keyStrict) {
		opts = append(opts, intl.WithStrictLocale())
	}
	return intl.NewConfig(opts...)
}

func normalizeOptionKey(key string) string {
	return strings.ToLower(strings.NewReplacer("_", "", "-", "").Replace(strings.TrimSpace(key)))
}

func writeOutput(w io.Writer, format string, value any, text func(io.Writer) error) error {
	switch strings.ToLower(format) {
	case "", "text":
		return text(w)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(value)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(value); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
}
