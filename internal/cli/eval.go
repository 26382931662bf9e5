package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/tally/internal/calc"
	"github.com/roach88/tally/internal/number"
)

// EvalOptions holds flags for the eval command.
type EvalOptions struct {
	*RootOptions

	// Precision overrides the configured rounding precision when >= 0.
	Precision int
}

// EvalResult is the JSON payload for a successful evaluation.
type EvalResult struct {
	Operation string `json:"operation"`
	A         string `json:"a"`
	B         string `json:"b"`
	Result    string `json:"result"`
	Precision int    `json:"precision"`
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EvalOptions{RootOptions: rootOpts, Precision: -1}

	cmd := &cobra.Command{
		Use:   "eval <operation> <a> <b>",
		Short: "Evaluate a single computation",
		Long: `Evaluate one computation and print the rounded result.

The operation is one of add, subtract, multiply, divide (case-insensitive).
Operands keep their integer-vs-float form: "10" is an integer, "10.0" a
float, and the result is rendered accordingly.

A division by zero prints "no result" and exits with code 1; the
diagnostic for it goes to the log stream on stderr.

Example:
  tally eval add 10 5
  tally eval divide 10 3 --precision 4
  tally eval divide 10 0; echo $?`,
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return evalOnce(opts, args, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Precision, "precision", -1, "override configured rounding precision")

	return cmd
}

func evalOnce(opts *EvalOptions, args []string, cmd *cobra.Command) error {
	cfg, err := loadConfig(opts.RootOptions)
	if err != nil {
		return err
	}

	out := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
		TraceID:   NewTraceID(),
	}

	op, err := calc.ParseOperation(args[0])
	if err != nil {
		_ = out.Error(ErrCodeBadOperation, err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid operation", err)
	}

	a, err := number.Parse(args[1])
	if err != nil {
		_ = out.Error(ErrCodeBadNumber, fmt.Sprintf("operand a: %v", err), nil)
		return WrapExitError(ExitCommandError, "invalid operand", err)
	}
	b, err := number.Parse(args[2])
	if err != nil {
		_ = out.Error(ErrCodeBadNumber, fmt.Sprintf("operand b: %v", err), nil)
		return WrapExitError(ExitCommandError, "invalid operand", err)
	}

	precision := cfg.Precision
	if opts.Precision >= 0 {
		precision = opts.Precision
	}

	calculator := calc.NewWithPrecision(precision)
	calculator.SetLogger(newLogger(opts.RootOptions, cfg, cmd.ErrOrStderr()))

	result, err := calculator.Calculate(op, a, b)
	if err != nil {
		_ = out.Error(ErrCodeBadOperation, err.Error(), nil)
		return WrapExitError(ExitCommandError, "calculation failed", err)
	}
	if result == nil {
		_ = out.Error(ErrCodeNoResult, fmt.Sprintf("no result: cannot divide %s by zero", a), nil)
		return NewExitError(ExitFailure, "no result")
	}

	return out.SuccessText(result.String()+"\n", EvalResult{
		Operation: string(op),
		A:         a.String(),
		B:         b.String(),
		Result:    result.String(),
		Precision: precision,
	})
}
