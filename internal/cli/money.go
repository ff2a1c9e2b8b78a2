package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"household/internal/core"
	"household/internal/log"
)

type moneyResult struct {
	Amount   int64         `json:"amount"`
	Currency core.Currency `json:"currency"`
}

// NewMoneyCommand creates the money command and its subcommands.
func NewMoneyCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "money",
		Short: "Convert and combine amounts of money",
		Long: `Convert and combine whole amounts in USD, GBP, EUR and CAN.

Conversions go through USD and truncate toward zero. Add and subtract work on
the USD equivalents and label the result with the second amount's currency.
Results saturate at the 64-bit integer bounds. Put negative amounts after "--".`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "convert <amount> <from> <to>",
		Short: "Convert an amount into another currency",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parseMoney(args[0], args[1])
			if err != nil {
				return err
			}
			target, err := core.ParseCurrency(args[2])
			if err != nil {
				return err
			}
			return printMoney(rootOpts, cmd, log.OpConvert, m.Convert(target))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <amount> <currency> <amount> <currency>",
		Short: "Add two amounts",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := parseMoneyPair(args)
			if err != nil {
				return err
			}
			return printMoney(rootOpts, cmd, log.OpAdd, a.Add(b))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "subtract <amount> <currency> <amount> <currency>",
		Short: "Subtract the second amount from the first",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := parseMoneyPair(args)
			if err != nil {
				return err
			}
			return printMoney(rootOpts, cmd, log.OpSubtract, a.Subtract(b))
		},
	})

	return cmd
}

func parseMoney(amount, currency string) (core.Money, error) {
	n, err := core.ParseAmount(amount)
	if err != nil {
		return core.Money{}, err
	}
	cur, err := core.ParseCurrency(currency)
	if err != nil {
		return core.Money{}, err
	}
	return core.NewMoney(n, cur), nil
}

func parseMoneyPair(args []string) (core.Money, core.Money, error) {
	a, err := parseMoney(args[0], args[1])
	if err != nil {
		return core.Money{}, core.Money{}, fmt.Errorf("first amount: %w", err)
	}
	b, err := parseMoney(args[2], args[3])
	if err != nil {
		return core.Money{}, core.Money{}, fmt.Errorf("second amount: %w", err)
	}
	return a, b, nil
}

func printMoney(opts *RootOptions, cmd *cobra.Command, op string, m core.Money) error {
	fields := log.NewFields().
		WithOperation(op).
		WithMoney(m.Amount(), string(m.Currency()))
	log.FromContext(cmd.Context()).WithComponent(log.ComponentMoney).Debug("money computed", fields.ToSlice()...)

	return writeResult(cmd.OutOrStdout(), opts.Format, m.String(),
		moneyResult{Amount: m.Amount(), Currency: m.Currency()})
}
