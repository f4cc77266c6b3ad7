package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/example/snippet-lab/go/pkg/kata"
)

// NewRunCommand runs one kata by name, or all of them with --all.
func NewRunCommand(opts *RootOptions) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "run [name]",
		Short: "Run a kata and print its result",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if all == (len(args) == 1) {
				return &ExitError{Code: ExitCommandError, Message: "give exactly one kata name or --all"}
			}

			ds, err := opts.datasets()
			if err != nil {
				return &ExitError{Code: ExitCommandError, Message: "load datasets", Err: err}
			}

			var katas []kata.Kata
			if all {
				katas = kata.Catalog()
			} else {
				k, err := kata.Lookup(args[0])
				if err != nil {
					return &ExitError{Code: ExitCommandError, Message: "lookup", Err: err}
				}
				katas = []kata.Kata{k}
			}

			out := cmd.OutOrStdout()
			var failed []error
			for _, k := range katas {
				opts.logger.Debug("running kata", zap.String("kata", k.Name))
				result, err := k.Run(ds)
				if err != nil {
					opts.logger.Warn("kata failed", zap.String("kata", k.Name), zap.Error(err))
					failed = append(failed, fmt.Errorf("%s: %w", k.Name, err))
					continue
				}
				if all && opts.Format == "text" {
					fmt.Fprintf(out, "%s: ", k.Name)
				}
				if err := kata.Render(out, opts.Format, result); err != nil {
					return &ExitError{Code: ExitCommandError, Message: "render", Err: err}
				}
			}
			if len(failed) > 0 {
				return &ExitError{Code: ExitFailure, Message: "kata failed", Err: errors.Join(failed...)}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "run every kata")
	return cmd
}
