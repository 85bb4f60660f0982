package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/assetlint"
)

func newAllCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Validate workflows, skills and rules in that order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := assetlint.ValidateAll(cmd.Context(), a.root, nil, a.options()...)
			if err != nil {
				return err
			}
			return a.report(cmd, results)
		},
	}
}
