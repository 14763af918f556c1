package cli

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type app struct {
	v          *viper.Viper
	configPath string
	logger     *slog.Logger
}

// NewRootCommand builds the intl command tree.
func NewRootCommand() *cobra.Command {
	a := &app{v: newViper()}

	rootCmd := &cobra.Command{
		Use:   "intl",
		Short: "Locale-aware date formatting",
		Long: `intl formats dates with CLDR calendar data: localized month and weekday
names, locale field order, numbering systems and hour cycles.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := readConfigFile(a.v, a.configPath); err != nil {
				return err
			}
			a.logger = newLogger(cmd.ErrOrStderr(), a.v.GetString(keyLogLevel), a.v.GetString(keyLogFormat))
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "Path to a YAML config file")
	flags.String("time-zone", "", "IANA time zone used to read and render dates (default: the date's own offset, UTC)")
	flags.String("default-locale", "", "Locale used when a requested locale has no calendar data")
	flags.String("data", "", "YAML or JSON file with extra calendar bundles")
	flags.Bool("strict", false, "Fail on unsupported locales instead of falling back")
	flags.StringP("output", "o", "text", "Output format (text, json, yaml)")
	flags.String("log-level", "warn", "Log level (debug, info, warn, error)")
	flags.String("log-format", "text", "Log format (text, json)")

	_ = a.v.BindPFlag(keyTimeZone, flags.Lookup("time-zone"))
	_ = a.v.BindPFlag(keyDefaultLocale, flags.Lookup("default-locale"))
	_ = a.v.BindPFlag(keyCalendarData, flags.Lookup("data"))
	_ = a.v.BindPFlag(keyStrict, flags.Lookup("strict"))
	_ = a.v.BindPFlag(keyOutput, flags.Lookup("output"))
	_ = a.v.BindPFlag(keyLogLevel, flags.Lookup("log-level"))
	_ = a.v.BindPFlag(keyLogFormat, flags.Lookup("log-format"))

	rootCmd.AddCommand(
		newFormatCommand(a),
		newFieldsCommand(a),
		newLocalesCommand(a),
	)

	return rootCmd
}
