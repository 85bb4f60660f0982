// Package assetlint validates the agent-assistant assets of a project:
// workflow files, skill directories and rule files.
//
// Each asset kind pairs a directory walker with a content policy. Workflows
// are the Markdown files directly under workflows/ and must open with a
// frontmatter block carrying a non-blank description. Skills are the
// subdirectories of skills/, each holding a non-empty SKILL.md. Rules are the
// Markdown files anywhere under rules/ and must not be blank.
//
// Per-file problems never abort a run: they become diagnostics, and a run is
// valid only when none were produced. A kind whose directory is missing
// validates zero files and succeeds.
//
// Usage:
//
//	res, err := assetlint.Validate(ctx, ".", assetlint.KindWorkflows,
//		assetlint.WithLogger(logger),
//	)
//	if err != nil {
//		return err
//	}
//	for _, d := range res.Diagnostics {
//		fmt.Fprintln(os.Stderr, d)
//	}
//
// Defaults can be overridden per project with an assetlint.yaml file at the
// project root, or per call with WithDir and WithConfigFile.
package assetlint
