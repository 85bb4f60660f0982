package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aretw0/assetlint"
	"github.com/aretw0/assetlint/pkg/core"
	"github.com/aretw0/assetlint/pkg/engine"
)

// errViolations marks a run that completed but found invalid assets.
var errViolations = errors.New("validation failed")

// app holds the persistent flags shared by every command.
type app struct {
	verbose    bool
	root       string
	configPath string
	json       bool

	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "assetlint",
		Short: "Validate workflow, skill and rule files of an agent-assistant project",
		Long: `assetlint checks the Markdown assets an agent-assistant project ships:
workflows need frontmatter with a description, skills need a non-empty SKILL.md,
and rules must not be blank. Problems are printed one per line and the exit
status is non-zero when any were found.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if a.verbose {
				level = slog.LevelDebug
			}

			opts := &slog.HandlerOptions{
				Level: level,
			}
			a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
			slog.SetDefault(a.logger)

			return a.resolveRoot()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&a.root, "root", "", "Project root (default: discovered from the working directory)")
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Configuration file (default: <root>/assetlint.yaml)")
	rootCmd.PersistentFlags().BoolVar(&a.json, "json", false, "Output results in JSON format")

	rootCmd.AddCommand(
		newKindCmd(a, assetlint.KindWorkflows, "Validate workflow files (frontmatter with a description)"),
		newKindCmd(a, assetlint.KindSkills, "Validate skill directories (non-empty SKILL.md)"),
		newKindCmd(a, assetlint.KindRules, "Validate rule files (non-empty Markdown)"),
		newAllCmd(a),
		newWatchCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// resolveRoot fills in the project root when --root was not given.
func (a *app) resolveRoot() error {
	if a.root != "" {
		abs, err := filepath.Abs(a.root)
		if err != nil {
			return fmt.Errorf("invalid --root: %w", err)
		}
		a.root = abs
		return nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	root, err := assetlint.FindProjectRoot(wd)
	if err != nil {
		a.logger.Debug("no project root marker found, using working directory", "dir", wd)
		root = wd
	}
	a.root = root
	return nil
}

func (a *app) options() []assetlint.Option {
	opts := []assetlint.Option{assetlint.WithLogger(a.logger)}
	if a.configPath != "" {
		opts = append(opts, assetlint.WithConfigFile(a.configPath))
	}
	return opts
}

// report prints results and returns errViolations when any of them failed.
func (a *app) report(cmd *cobra.Command, results []core.Result) error {
	if a.json {
		if err := engine.ReportJSON(cmd.OutOrStdout(), results); err != nil {
			return fmt.Errorf("failed to encode results: %w", err)
		}
	} else {
		for _, res := range results {
			if err := engine.Report(cmd.OutOrStdout(), cmd.ErrOrStderr(), res); err != nil {
				return err
			}
		}
	}

	if engine.ExitCode(results...) != 0 {
		return errViolations
	}
	return nil
}
