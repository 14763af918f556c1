package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	intl "github.com/goliatone/go-intl"
)

// optionFlags maps format flags to FormatOptions keys.
var optionFlags = []struct {
	flag  string
	key   string
	usage string
}{
	{"weekday", "weekday", "Weekday width (long, short, narrow)"},
	{"year", "year", "Year style (numeric, 2-digit)"},
	{"month", "month", "Month style (long, short, narrow, numeric, 2-digit)"},
	{"day", "day", "Day style (numeric, 2-digit)"},
	{"hour", "hour", "Hour style (numeric, 2-digit)"},
	{"minute", "minute", "Minute style (numeric, 2-digit)"},
	{"second", "second", "Second style (numeric, 2-digit)"},
	{"fractional-digits", "fractional_second_digits", "Fractional second digits (1-3)"},
	{"hour-cycle", "hour_cycle", "Hour cycle (h11, h12, h23, h24)"},
	{"zone-name", "time_zone_name", "Time zone name (short, long)"},
	{"date-style", "date_style", "Date style (full, long, medium, short)"},
	{"time-style", "time_style", "Time style (full, long, medium, short)"},
}

type formatResult struct {
	Locale   string               `json:"locale" yaml:"locale"`
	Text     string               `json:"text" yaml:"text"`
	Resolved intl.ResolvedOptions `json:"resolved" yaml:"resolved"`
	Parts    []intl.DatePart      `json:"parts" yaml:"parts"`
}

type formatCommand struct {
	app   *app
	pairs []string
}

func newFormatCommand(a *app) *cobra.Command {
	c := &formatCommand{app: a}

	cmd := &cobra.Command{
		Use:   "format [date]",
		Short: "Format a date for one or more locales",
		Long: `Format a date for each requested locale, one line per locale.

The date is an ISO 8601 string, "now" (the default) or epoch milliseconds.
Without field or style flags the date renders as numeric year, month and day.`,
		Example: `  intl format --locale en-US --locale fr-FR --weekday long --month long --day numeric 2025-12-25
  intl format --locale ja --date-style full --time-style short --time-zone Asia/Tokyo now`,
		Args: cobra.MaximumNArgs(1),
		RunE: c.run,
	}

	flags := cmd.Flags()
	flags.StringSliceP("locale", "l", nil, "Locale to format for (repeatable, comma separated)")
	for _, opt := range optionFlags {
		flags.String(opt.flag, "", opt.usage)
	}
	flags.Bool("hour12", false, "Force a 12 hour clock (--hour12=false forces 24 hours)")
	flags.StringArrayVar(&c.pairs, "option", nil, "Extra key=value format option (repeatable)")

	_ = c.app.v.BindPFlag(keyLocales, flags.Lookup("locale"))

	return cmd
}

// options merges config file options, dedicated flags and --option pairs,
// later sources winning.
func (c *formatCommand) options(cmd *cobra.Command) (intl.FormatOptions, error) {
	values := make(map[string]any)
	for key, value := range c.app.v.GetStringMap(keyOptions) {
		values[normalizeOptionKey(key)] = value
	}

	for _, opt := range optionFlags {
		if cmd.Flags().Changed(opt.flag) {
			values[normalizeOptionKey(opt.key)] = cmd.Flags().Lookup(opt.flag).Value.String()
		}
	}
	if cmd.Flags().Changed("hour12") {
		values[normalizeOptionKey("hour12")] = cmd.Flags().Lookup("hour12").Value.String()
	}

	for _, pair := range c.pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return intl.FormatOptions{}, fmt.Errorf("%w: expected key=value, got %q", intl.ErrInvalidOption, pair)
		}
		values[normalizeOptionKey(key)] = strings.TrimSpace(value)
	}

	return intl.ParseFormatOptions(values)
}

func (c *formatCommand) run(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(c.app.v)
	if err != nil {
		return err
	}

	opts, err := c.options(cmd)
	if err != nil {
		return err
	}

	instant, err := parseInstantArg(args, cfg.Location)
	if err != nil {
		return err
	}

	locales := splitLocales(c.app.v.GetStringSlice(keyLocales))
	if len(locales) == 0 {
		locales = []string{cfg.DefaultLocale}
	}

	results := make([]formatResult, 0, len(locales))
	for _, locale := range locales {
		f, err := cfg.NewDateTimeFormat(locale, opts)
		if err != nil {
			return fmt.Errorf("format %s: %w", locale, err)
		}
		if f.UsedFallback() {
			c.app.logger.Warn("locale has no calendar data, using default", "locale", locale, "default", f.Locale())
		}

		resolved := f.ResolvedOptions()
		c.app.logger.Debug("formatter resolved",
			"locale", resolved.Locale,
			"data_locale", resolved.DataLocale,
			"pattern", resolved.Pattern,
			"numbering", resolved.NumberingSystem,
		)

		results = append(results, formatResult{
			Locale:   locale,
			Text:     f.Format(instant),
			Resolved: resolved,
			Parts:    f.FormatToParts(instant),
		})
	}

	return writeOutput(cmd.OutOrStdout(), c.app.v.GetString(keyOutput), results, func(w io.Writer) error {
		if len(results) == 1 {
			_, err := fmt.Fprintln(w, results[0].Text)
			return err
		}
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, r := range results {
			fmt.Fprintf(tw, "%s\t%s\n", r.Locale, r.Text)
		}
		return tw.Flush()
	})
}

// parseInstantArg reads "now", epoch milliseconds or an ISO 8601 string.
// Digit strings of four characters or fewer are years, not epochs.
func parseInstantArg(args []string, loc *time.Location) (intl.Instant, error) {
	if len(args) == 0 || strings.EqualFold(strings.TrimSpace(args[0]), "now") {
		return intl.Now().In(loc), nil
	}

	value := strings.TrimSpace(args[0])
	if len(strings.TrimPrefix(value, "-")) > 4 {
		if ms, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intl.UnixMilli(ms).In(loc), nil
		}
	}
	return intl.ParseInstantIn(value, loc)
}
