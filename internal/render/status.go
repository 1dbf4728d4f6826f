package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/dixonmyles/ubuntu-advantage-client/internal/engine"
	"github.com/dixonmyles/ubuntu-advantage-client/internal/report"
)

// StatusOverview is the full answer of "pro status".
type StatusOverview struct {
	SchemaVersion string                 `json:"_schema_version"`
	Attached      bool                   `json:"attached"`
	AccountName   string                 `json:"account_name,omitempty"`
	Services      []engine.ServiceStatus `json:"services"`
}

// NewStatusOverview tags the rows with the schema version.
func NewStatusOverview(attached bool, account string, services []engine.ServiceStatus) StatusOverview {
	if services == nil {
		services = []engine.ServiceStatus{}
	}
	return StatusOverview{
		SchemaVersion: report.SchemaVersion,
		Attached:      attached,
		AccountName:   account,
		Services:      services,
	}
}

// Status renders the status overview as a table or as JSON.
func Status(out io.Writer, format Format, overview StatusOverview) error {
	if format == FormatJSON {
		return writeJSON(out, overview)
	}

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"SERVICE", "AVAILABLE", "ENTITLED", "STATUS", "DESCRIPTION"})
	for _, svc := range overview.Services {
		t.AppendRow(table.Row{svc.Name, svc.Available, svc.Entitled, svc.Status, svc.Description})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()

	if overview.Attached {
		fmt.Fprintf(out, "\nThis machine is attached to '%s'\n", overview.AccountName)
	} else {
		fmt.Fprintln(out, "\nThis machine is NOT attached to an Ubuntu Pro subscription.")
		fmt.Fprintln(out, "See https://ubuntu.com/pro")
	}
	return nil
}
