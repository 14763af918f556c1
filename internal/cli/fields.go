package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	intl "github.com/goliatone/go-intl"
)

type instantFields struct {
	Year         int    `json:"year" yaml:"year"`
	Month        int    `json:"month" yaml:"month"`
	Date         int    `json:"date" yaml:"date"`
	Day          int    `json:"day" yaml:"day"`
	Hours        int    `json:"hours" yaml:"hours"`
	Minutes      int    `json:"minutes" yaml:"minutes"`
	Seconds      int    `json:"seconds" yaml:"seconds"`
	Milliseconds int    `json:"milliseconds" yaml:"milliseconds"`
	Time         int64  `json:"time" yaml:"time"`
	ISO          string `json:"iso" yaml:"iso"`
	String       string `json:"string" yaml:"string"`
}

func fieldsOf(i intl.Instant) instantFields {
	return instantFields{
		Year:         i.FullYear(),
		Month:        i.Month(),
		Date:         i.Date(),
		Day:          i.Day(),
		Hours:        i.Hours(),
		Minutes:      i.Minutes(),
		Seconds:      i.Seconds(),
		Milliseconds: i.Milliseconds(),
		Time:         i.Time(),
		ISO:          i.ToISOString(),
		String:       i.String(),
	}
}

func newFieldsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fields [date]",
		Short: "Print the calendar fields of a date",
		Long: `Print the calendar fields of a date in the configured time zone.
Month is zero based and day counts from Sunday (0).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(a.v)
			if err != nil {
				return err
			}

			instant, err := parseInstantArg(args, cfg.Location)
			if err != nil {
				return err
			}

			fields := fieldsOf(instant)
			a.logger.Debug("instant parsed", "time", fields.Time, "location", instant.Location().String())

			return writeOutput(cmd.OutOrStdout(), a.v.GetString(keyOutput), fields, func(w io.Writer) error {
				tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
				fmt.Fprintf(tw, "year\t%d\n", fields.Year)
				fmt.Fprintf(tw, "month\t%d\n", fields.Month)
				fmt.Fprintf(tw, "date\t%d\n", fields.Date)
				fmt.Fprintf(tw, "day\t%d\n", fields.Day)
				fmt.Fprintf(tw, "hours\t%d\n", fields.Hours)
				fmt.Fprintf(tw, "minutes\t%d\n", fields.Minutes)
				fmt.Fprintf(tw, "seconds\t%d\n", fields.Seconds)
				fmt.Fprintf(tw, "milliseconds\t%d\n", fields.Milliseconds)
				fmt.Fprintf(tw, "time\t%d\n", fields.Time)
				fmt.Fprintf(tw, "iso\t%s\n", fields.ISO)
				fmt.Fprintf(tw, "string\t%s\n", fields.String)
				return tw.Flush()
			})
		},
	}
}
