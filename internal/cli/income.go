package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"household/internal/household"
	"household/internal/log"
	"household/internal/report"
)

// NewIncomeCommand creates the income command.
func NewIncomeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "income <file>",
		Short: "Print the yearly income of a household",
		Long: `Load a household file and itemize each family member's yearly income.

Only adults with a job count toward the total. The total is reported in USD
and, when --currency is set to something else, converted into it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIncome(rootOpts, args[0], cmd)
		},
	}
}

func runIncome(opts *RootOptions, path string, cmd *cobra.Command) error {
	h, err := loadHousehold(cmd.Context(), path)
	if err != nil {
		return err
	}

	logger := log.FromContext(cmd.Context()).WithComponent(log.ComponentReport)
	r := report.Build(h, opts.currency)
	logger.Debug("report built",
		log.FieldOperation, log.OpBuild,
		log.FieldIncome, r.Total,
		log.FieldCurrency, string(r.Currency))

	if err := report.Render(cmd.OutOrStdout(), r, opts.Format); err != nil {
		return err
	}
	logger.Debug("report rendered",
		log.FieldOperation, log.OpRender,
		log.FieldFormat, opts.Format)
	return nil
}

// loadHousehold reads and builds the household file at path.
func loadHousehold(ctx context.Context, path string) (*household.Household, error) {
	logger := log.FromContext(ctx)
	logger.WithComponent(log.ComponentCLI).Debug("loading household",
		log.FieldOperation, log.OpLoad,
		log.FieldPath, path)

	doc, err := household.LoadFile(path)
	if err != nil {
		return nil, err
	}
	h, err := doc.Build(logger)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return h, nil
}
