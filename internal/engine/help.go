package engine

import (
	"fmt"

	"github.com/dixonmyles/ubuntu-advantage-client/internal/catalog"
)

// HelpInfo is the answer to a help query for one service.
type HelpInfo struct {
	Name      string `json:"name"`
	Available string `json:"available"`
	Help      string `json:"help"`
}

// HelpNotFoundError reports a help query for a name the catalog does not
// know.
type HelpNotFoundError struct {
	Name string
}

// Error implements the error interface.
func (e *HelpNotFoundError) Error() string {
	return fmt.Sprintf("No help available for '%s'", e.Name)
}

// Help answers a help query. Availability reflects the catalog and the
// machine's release series only; it is independent of attachment, and the
// help text is identical whether or not the service is available here.
func Help(cat *catalog.Catalog, series, name string) (HelpInfo, error) {
	svc, ok := cat.Find(name)
	if !ok {
		return HelpInfo{}, &HelpNotFoundError{Name: name}
	}

	available := "no"
	if svc.AvailableOn(series) {
		available = "yes"
	}
	return HelpInfo{
		Name:      svc.Name,
		Available: available,
		Help:      svc.Help,
	}, nil
}
