package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newLocalesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "locales",
		Short: "List locales with calendar data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := buildConfig(a.v)
			if err != nil {
				return err
			}

			catalog := cfg.LocaleCatalog()
			locales := catalog.Locales()
			a.logger.Debug("locale catalog loaded", "count", len(locales), "default", catalog.DefaultLocale())

			return writeOutput(cmd.OutOrStdout(), a.v.GetString(keyOutput), locales, func(w io.Writer) error {
				tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "CODE\tNAME\tENGLISH\tDIGITS\tCLOCK")
				for _, meta := range locales {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", meta.Code, meta.DisplayName, meta.EnglishName, meta.NumberingSystem, meta.HourCycle)
				}
				return tw.Flush()
			})
		},
	}
}
