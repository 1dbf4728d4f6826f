// Package render serializes engine results for humans and machines. The
// JSON forms are schema-stable; the text forms are the human-facing
// rendering of the exact same data, never a different data set.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dixonmyles/ubuntu-advantage-client/internal/report"
)

// Format selects the output serialization.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat validates a --format flag value.
func ParseFormat(value string) (Format, error) {
	switch Format(value) {
	case FormatText, FormatJSON:
		return Format(value), nil
	default:
		return "", fmt.Errorf("unknown format '%s' (expected text or json)", value)
	}
}

// writeJSON emits one JSON object followed by a newline.
func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	return enc.Encode(v)
}

// Operation renders an operation report. In JSON mode the whole report
// goes to out as a single object. In text mode per-service progress goes
// to out while warnings and error paragraphs go to errOut, so shell
// pipelines see only the operational output on stdout.
func Operation(out, errOut io.Writer, format Format, action string, rep report.Report) error {
	if format == FormatJSON {
		return writeJSON(out, rep)
	}

	for _, name := range rep.ProcessedServices {
		fmt.Fprintf(out, "✓ %s %sd\n", name, action)
	}
	for _, warning := range rep.Warnings {
		fmt.Fprintf(errOut, "⚠ %s\n", warning.Message)
	}
	for i, entry := range rep.Errors {
		if i > 0 {
			fmt.Fprintln(errOut)
		}
		fmt.Fprintln(errOut, entry.Message)
	}
	if rep.NeedsReboot {
		fmt.Fprintln(out, "A reboot is required to complete this operation")
	}
	return nil
}
