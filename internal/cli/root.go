package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"household/internal/config"
	"household/internal/core"
	"household/internal/log"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose  bool
	Format   string // "json" | "text"
	Currency string

	currency  core.Currency
	logConfig log.Config
}

// NewRootCommand creates the root command. Flag defaults come from cfg;
// a nil cfg means the built-in defaults.
func NewRootCommand(cfg *config.Config) *cobra.Command {
	if cfg == nil {
		cfg = &config.Config{
			LogLevel:       "info",
			LogFormat:      config.FormatText,
			ReportCurrency: string(core.USD),
			Output:         config.FormatText,
		}
	}
	opts := &RootOptions{logConfig: cfg.LoggerConfig()}

	cmd := &cobra.Command{
		Use:   "household",
		Short: "Household income and currency calculator",
		Long: `Compute a family's yearly income from a household file and convert
amounts between USD, GBP, EUR and CAN.

Household files are YAML (.yaml, .yml) or JSON (.json).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.prepare(cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging on stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", cfg.Output, "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Currency, "currency", string(cfg.Currency()), "report currency (USD|GBP|EUR|CAN)")

	cmd.AddCommand(NewIncomeCommand(opts))
	cmd.AddCommand(NewDescribeCommand(opts))
	cmd.AddCommand(NewMoneyCommand(opts))

	return cmd
}

func (o *RootOptions) prepare(cmd *cobra.Command) error {
	if !isValidFormat(o.Format) {
		return fmt.Errorf("invalid format %q: must be one of %v", o.Format, config.Formats())
	}
	cur, err := core.ParseCurrency(o.Currency)
	if err != nil {
		return fmt.Errorf("invalid --currency: %w", err)
	}
	o.currency = cur

	if o.Verbose {
		lc := o.logConfig
		lc.Level = slog.LevelDebug
		lc.Writer = cmd.ErrOrStderr()
		cmd.SetContext(log.NewContext(cmd.Context(), log.New(lc)))
	}
	return nil
}

func isValidFormat(format string) bool {
	for _, f := range config.Formats() {
		if f == format {
			return true
		}
	}
	return false
}
