package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/tally/internal/calc"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
}

// StepResult records the outcome of one script step.
// Result is nil when the step produced no value (division by zero).
type StepResult struct {
	Operation string  `json:"operation"`
	A         string  `json:"a"`
	B         string  `json:"b"`
	Result    *string `json:"result"`
}

// RunResult is the JSON payload for a completed session.
type RunResult struct {
	Precision int          `json:"precision"`
	Steps     []StepResult `json:"steps"`
	History   []string     `json:"history"`
	NoResult  int          `json:"no_result_steps"`
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run <script.yaml>",
		Short: "Run a session script",
		Long: `Run an ordered list of computations on one calculator.

The script is a YAML document:

  precision: 2
  steps:
    - {op: add, a: 10, b: 5}
    - {op: divide, a: 10, b: 3}

All steps share the calculator, so the final history reflects the whole
session in order. Steps that divide by zero are absorbed as "no result"
and the session continues; if any step was absorbed the command exits
with code 1.

Example:
  tally run session.yaml
  tally run session.yaml --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(opts, args[0], cmd)
		},
	}

	return cmd
}

func runSession(opts *RunOptions, scriptPath string, cmd *cobra.Command) error {
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

	script, err := LoadScript(scriptPath)
	if err != nil {
		_ = out.Error(ErrCodeScriptError, err.Error(), nil)
		return WrapExitError(ExitCommandError, "failed to load script", err)
	}

	precision := cfg.Precision
	if script.Precision != nil {
		precision = *script.Precision
	}

	calculator := calc.NewWithPrecision(precision)
	calculator.SetLogger(newLogger(opts.RootOptions, cfg, cmd.ErrOrStderr()))

	result := RunResult{Precision: precision, Steps: make([]StepResult, 0, len(script.Steps))}
	for i, step := range script.Steps {
		op, err := calc.ParseOperation(step.Op)
		if err != nil {
			_ = out.Error(ErrCodeBadOperation, fmt.Sprintf("step %d: %v", i+1, err), nil)
			return WrapExitError(ExitCommandError, "invalid script step", err)
		}

		value, err := calculator.Calculate(op, step.A.Value, step.B.Value)
		if err != nil {
			_ = out.Error(ErrCodeBadOperation, fmt.Sprintf("step %d: %v", i+1, err), nil)
			return WrapExitError(ExitCommandError, "script step failed", err)
		}

		sr := StepResult{Operation: string(op), A: step.A.Value.String(), B: step.B.Value.String()}
		if value != nil {
			s := value.String()
			sr.Result = &s
		} else {
			result.NoResult++
		}
		result.Steps = append(result.Steps, sr)
	}
	result.History = calculator.History()

	if err := out.SuccessText(formatSession(result), result); err != nil {
		return err
	}

	if result.NoResult > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d step(s) produced no result", result.NoResult))
	}
	return nil
}

// formatSession renders the deterministic text transcript for a session.
func formatSession(r RunResult) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "session: %d steps, precision %d\n\n", len(r.Steps), r.Precision)
	for i, step := range r.Steps {
		expr := fmt.Sprintf("%s %s %s", step.Operation, step.A, step.B)
		if step.Result != nil {
			fmt.Fprintf(&sb, "  %d. %-20s -> %s\n", i+1, expr, *step.Result)
		} else {
			fmt.Fprintf(&sb, "  %d. %-20s -> no result\n", i+1, expr)
		}
	}

	sb.WriteString("\nhistory:\n")
	if len(r.History) == 0 {
		sb.WriteString("  (empty)\n")
	}
	for _, entry := range r.History {
		fmt.Fprintf(&sb, "  %s\n", entry)
	}

	return sb.String()
}
