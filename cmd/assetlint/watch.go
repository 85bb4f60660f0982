package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/assetlint"
	"github.com/aretw0/assetlint/pkg/core"
)

func newWatchCmd(a *app) *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:       "watch [kinds...]",
		Short:     "Re-validate whenever an asset changes",
		Long:      "Validate the given kinds (all of them by default), then again after every change, until interrupted.",
		ValidArgs: assetlint.Kinds(),
		Args:      cobra.OnlyValidArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			opts := append(a.options(), assetlint.WithDebounce(debounce))

			a.logger.Info("watching for changes", "root", a.root, "kinds", args)
			err := assetlint.Watch(ctx, a.root, args, func(results []core.Result, err error) {
				if err != nil {
					a.logger.Error("validation failed", "error", err)
					return
				}
				// Violations are reported; the watch keeps going.
				_ = a.report(cmd, results)
			}, opts...)
			if err != nil {
				return err
			}

			a.logger.Info("watch stopped")
			return nil
		},
	}

	cmd.Flags().DurationVar(&debounce, "debounce", 100*time.Millisecond, "Quiet period before re-validating")
	return cmd
}
