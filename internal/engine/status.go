package engine

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/dixonmyles/ubuntu-advantage-client/internal/catalog"
	"github.com/dixonmyles/ubuntu-advantage-client/internal/state"
)

// ServiceStatus is one row of the status overview.
type ServiceStatus struct {
	Name        string `json:"name"`
	Available   string `json:"available"`
	Entitled    string `json:"entitled"`
	Status      string `json:"status"`
	Description string `json:"description"`
}

// StatusOverview reports availability, entitlement and enablement for
// every catalog service. Rows are probed concurrently and merged back in
// stable catalog order; the executed lifecycle path stays sequential,
// this is a read-only scan.
func StatusOverview(ctx context.Context, cat *catalog.Catalog, st state.AttachmentState, series string, includeBeta bool) ([]ServiceStatus, error) {
	names := cat.Names(includeBeta)
	rows := make([]ServiceStatus, len(names))

	g, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			svc, _ := cat.Find(name)
			rows[i] = statusRow(svc, st, series)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

func statusRow(svc catalog.Service, st state.AttachmentState, series string) ServiceStatus {
	row := ServiceStatus{
		Name:        svc.Name,
		Available:   yesNo(svc.AvailableOn(series)),
		Description: svc.Title,
	}
	if !st.Attached {
		row.Entitled = "-"
		row.Status = "-"
		return row
	}
	row.Entitled = yesNo(st.HasEntitlement(svc.Name))
	if st.IsEnabled(svc.Name) {
		row.Status = "enabled"
	} else {
		row.Status = "disabled"
	}
	return row
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
