package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aretw0/assetlint"
	"github.com/aretw0/assetlint/pkg/core"
)

// newKindCmd builds the command validating a single asset kind.
func newKindCmd(a *app, kind, short string) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   kind,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := a.options()
			if dir != "" {
				abs, err := filepath.Abs(dir)
				if err != nil {
					return fmt.Errorf("invalid --dir: %w", err)
				}
				opts = append(opts, assetlint.WithDir(kind, abs))
			}

			res, err := assetlint.Validate(cmd.Context(), a.root, kind, opts...)
			if err != nil {
				return err
			}
			return a.report(cmd, []core.Result{res})
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", fmt.Sprintf("Directory to validate (default: <root>/%s)", kind))
	return cmd
}
