package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/aabizri/wgram/internal/logging"
	"github.com/spf13/cobra"
)

type options struct {
	workers int
	seed    uint64
	strict  bool
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := options{}

	cmd := &cobra.Command{
		Use:   "wgram",
		Short: "wgram expands weighted grammars",
		Long: `wgram reads a stream of WGIF documents on its standard input, expands each
grammar from its start symbol and writes one generated line per document, in order.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.workers < 1 {
				return fmt.Errorf("--workers must be at least 1, got %d", opts.workers)
			}

			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			logger := logging.New(cmd.ErrOrStderr(), level)

			return listen(cmd.OutOrStdout(), cmd.InOrStdin(), logger, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.workers, "workers", "w", runtime.NumCPU(), "Number of concurrent expansions")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "Seed overriding every document's own, 0 keeps them")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Fail documents left with non-terminals by the size bound")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log every document")

	return cmd
}

// Execute runs the root command, exiting on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
