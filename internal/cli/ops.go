package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/tally/internal/calc"
)

// NewOpsCommand creates the ops command.
func NewOpsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ops",
		Short: "List supported operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := &OutputFormatter{
				Format:  rootOpts.Format,
				Writer:  cmd.OutOrStdout(),
				Verbose: rootOpts.Verbose,
				TraceID: NewTraceID(),
			}

			names := make([]string, len(calc.Operations()))
			for i, op := range calc.Operations() {
				names[i] = string(op)
			}

			var sb strings.Builder
			for _, name := range names {
				fmt.Fprintf(&sb, "%s\n", name)
			}
			return out.SuccessText(sb.String(), names)
		},
	}

	return cmd
}
