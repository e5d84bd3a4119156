package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vellum-lang/vellum/internal/diag"
	"github.com/vellum-lang/vellum/internal/parse"
	"github.com/vellum-lang/vellum/internal/store"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	Types    string // directory of CUE type declarations
	Database string // optional SQLite path for recording results
}

// CheckReport is the outcome of evaluating one condition line.
type CheckReport struct {
	Condition string `json:"condition"`
	Relation  string `json:"relation,omitempty"`
	Result    bool   `json:"result"`
	Error     string `json:"error,omitempty"`
}

// CheckSummary is the overall check output.
type CheckSummary struct {
	RunToken string        `json:"run_token"`
	Checks   []CheckReport `json:"checks"`
	Failed   int           `json:"failed"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check <condition> [condition ...]",
		Short: "Evaluate comparison conditions",
		Long: `Evaluate one or more comparison condition lines.

Each argument is parsed as a comparison ("5 is greater than 3",
"7 is between 5 and 10") and evaluated. With --db, every evaluation is
recorded under a fresh run token for later tracing.

Exit codes:
  0 - All conditions held
  1 - One or more conditions did not hold, or failed to resolve
  2 - Command error (bad type declarations, database errors)

Examples:
  vellum check "5 is greater than 3"
  vellum check --types ./types "rank is at least knight" "5 < 10"
  vellum check --db ./vellum.db --format json "1, 2 and 3 are less than 5"`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Types, "types", "", "directory of CUE type declarations")
	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database for recording results")

	return cmd
}

func runCheck(opts *CheckOptions, args []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	if opts.Types != "" {
		if files, err := FindCUEFiles(opts.Types); err == nil {
			formatter.VerboseLog("Found %d CUE file(s) in %s", len(files), opts.Types)
		}
		names, err := LoadTypes(opts.Types)
		if err != nil {
			outErr := formatter.Error(ErrCodeTypes, err.Error())
			if outErr != nil {
				return outErr
			}
			return WrapExitError(ExitCommandError, "failed to load types", err)
		}
		formatter.VerboseLog("Declared types: %v", names)
	}

	var st *store.Store
	if opts.Database != "" {
		var err error
		st, err = store.Open(opts.Database)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to open database", err)
		}
		defer st.Close()
	}

	var sink diag.Sink
	if opts.Verbose {
		sink = diag.LogSink{Logger: slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))}
	}

	ctx := context.Background()
	summary := CheckSummary{RunToken: uuid.NewString()}

	for _, line := range args {
		report := CheckReport{Condition: line}

		c, err := parse.Parse(line, sink)
		if err != nil {
			if errors.Is(err, parse.ErrNoMatch) {
				report.Error = "not a comparison"
			} else {
				report.Error = err.Error()
			}
			summary.Failed++
			summary.Checks = append(summary.Checks, report)
			continue
		}

		report.Relation = c.Relation().String()
		report.Result = c.Check(nil)
		if !report.Result {
			summary.Failed++
		}
		summary.Checks = append(summary.Checks, report)

		if st != nil {
			if _, err := st.RecordCheck(ctx, summary.RunToken, line, report.Relation, report.Result); err != nil {
				return WrapExitError(ExitCommandError, "failed to record check", err)
			}
		}
	}

	if err := outputCheckSummary(formatter, summary, st != nil); err != nil {
		return err
	}
	if summary.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d condition(s) did not hold", summary.Failed, len(summary.Checks)))
	}
	return nil
}

func outputCheckSummary(f *OutputFormatter, summary CheckSummary, recorded bool) error {
	if f.Format == "json" {
		return f.Success(summary)
	}
	for _, c := range summary.Checks {
		switch {
		case c.Error != "":
			fmt.Fprintf(f.Writer, "ERROR %s (%s)\n", c.Condition, c.Error)
		case c.Result:
			fmt.Fprintf(f.Writer, "TRUE  %s\n", c.Condition)
		default:
			fmt.Fprintf(f.Writer, "FALSE %s\n", c.Condition)
		}
	}
	if recorded {
		fmt.Fprintf(f.Writer, "Recorded under run %s\n", summary.RunToken)
	}
	return nil
}
