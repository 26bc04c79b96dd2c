package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "horizon",
		Short: "Deterministic years-to-retirement calculator",
		Long: `horizon projects salary growth, savings contributions, and compound
investment returns year by year until accumulated wealth reaches a
target, and reports the first year retirement becomes possible.`,
		SilenceUsage: true,
	}
	cmd.AddCommand(newCalculateCmd())
	cmd.AddCommand(newSweepCmd())
	return cmd
}

// verboseLogger writes engine log lines to stderr, keeping stdout
// clean for the formatted report.
type verboseLogger struct{}

func (verboseLogger) Debugf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "DEBUG "+format+"\n", args...)
}

func (verboseLogger) Infof(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "INFO  "+format+"\n", args...)
}

func (verboseLogger) Warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "WARN  "+format+"\n", args...)
}

func (verboseLogger) Errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "ERROR "+format+"\n", args...)
}
