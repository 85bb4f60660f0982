package engine

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/aretw0/assetlint/pkg/core"
)

// Report writes the text report of res: one line per diagnostic to errW,
// or the summary line to w when there are none.
func Report(w, errW io.Writer, res core.Result) error {
	if !res.OK() {
		for _, d := range res.Diagnostics {
			if _, err := fmt.Fprintln(errW, d.String()); err != nil {
				return err
			}
		}
		return nil
	}
	_, err := fmt.Fprintln(w, res.Summary())
	return err
}

// ReportJSON writes results as an indented JSON array.
func ReportJSON(w io.Writer, results []core.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(results)
}

// ExitCode is 1 when any result holds diagnostics.
func ExitCode(results ...core.Result) int {
	for _, res := range results {
		if code := res.ExitCode(); code != 0 {
			return code
		}
	}
	return 0
}
