package engine

import "github.com/dixonmyles/ubuntu-advantage-client/internal/catalog"

// dedupe removes duplicate names preserving first-occurrence order.
func dedupe(names []string) []string {
	seen := make(map[string]bool, len(names))
	var out []string
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

// partition splits names into known and unknown against the catalog,
// preserving order. Unknown names are not rejected here: they still
// contribute to the aggregated message downstream.
func partition(cat *catalog.Catalog, names []string) (known, unknown []string) {
	for _, name := range names {
		if cat.Has(name) {
			known = append(known, name)
		} else {
			unknown = append(unknown, name)
		}
	}
	return known, unknown
}
