package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

type memberDescription struct {
	ID     string `json:"id"`
	Person string `json:"person"`
}

// NewDescribeCommand creates the describe command.
func NewDescribeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <file>",
		Short: "Describe every family member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDescribe(rootOpts, args[0], cmd)
		},
	}
}

func runDescribe(opts *RootOptions, path string, cmd *cobra.Command) error {
	h, err := loadHousehold(cmd.Context(), path)
	if err != nil {
		return err
	}

	members := h.Family.Members()
	lines := make([]string, 0, len(members))
	out := make([]memberDescription, 0, len(members))
	for _, p := range members {
		desc := p.String()
		lines = append(lines, desc)
		out = append(out, memberDescription{ID: h.ID(p), Person: desc})
	}

	return writeResult(cmd.OutOrStdout(), opts.Format, strings.Join(lines, "\n"), out)
}
