package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vellum-lang/vellum/internal/store"
)

// TraceOptions holds flags for the trace command.
type TraceOptions struct {
	*RootOptions
	Database string
	Run      string // optional - filter to one run token
}

// TraceResult holds the recorded checks for a trace query.
type TraceResult struct {
	RunToken string        `json:"run_token,omitempty"`
	Checks   []store.Check `json:"checks"`
	Total    int           `json:"total"`
	Held     int           `json:"held"`
}

// NewTraceCommand creates the trace command.
func NewTraceCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TraceOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "trace",
		Short: "List recorded check evaluations",
		Long: `List check evaluations recorded by "vellum check --db".

Without --run, lists every recorded evaluation in sequence order;
with --run, only those recorded under that run token.

Examples:
  vellum trace --db ./vellum.db
  vellum trace --db ./vellum.db --run 4f7c2f0a-...
  vellum trace --db ./vellum.db --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")
	cmd.Flags().StringVar(&opts.Run, "run", "", "run token to filter by")

	return cmd
}

func runTrace(opts *TraceOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	checks, err := st.ListChecks(context.Background(), opts.Run)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to list checks", err)
	}

	result := TraceResult{RunToken: opts.Run, Checks: checks, Total: len(checks)}
	for _, c := range checks {
		if c.Result {
			result.Held++
		}
	}

	if opts.Format == "json" {
		if result.Checks == nil {
			result.Checks = []store.Check{}
		}
		return formatter.Success(result)
	}

	if len(checks) == 0 {
		if opts.Run != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "No checks recorded for run: %s\n", opts.Run)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "No checks recorded.")
		}
		return nil
	}

	w := cmd.OutOrStdout()
	for _, c := range checks {
		held := "FALSE"
		if c.Result {
			held = "TRUE"
		}
		fmt.Fprintf(w, "%6d  %-5s  %s\n", c.Seq, held, c.Expression)
		if opts.Verbose {
			fmt.Fprintf(w, "        run=%s relation=%q\n", c.RunToken, c.Relation)
		}
	}
	fmt.Fprintf(w, "%d check(s), %d held\n", result.Total, result.Held)
	return nil
}
