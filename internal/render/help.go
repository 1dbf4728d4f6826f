package render

import (
	"fmt"
	"io"

	"github.com/dixonmyles/ubuntu-advantage-client/internal/engine"
)

// Help renders a help query answer as a labeled block or as the help
// JSON schema.
func Help(out io.Writer, format Format, info engine.HelpInfo) error {
	if format == FormatJSON {
		return writeJSON(out, info)
	}

	fmt.Fprintf(out, "Name:\n%s\n\n", info.Name)
	fmt.Fprintf(out, "Available:\n%s\n\n", info.Available)
	fmt.Fprintf(out, "Help:\n%s\n", info.Help)
	return nil
}
