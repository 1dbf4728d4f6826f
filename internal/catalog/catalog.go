package catalog

import "sort"

// Service describes one catalog entry. Immutable after construction.
type Service struct {
	// Name is the unique presentation name used on the CLI.
	Name string
	// Aliases are alternate names accepted wherever Name is (e.g. "usg"
	// for "cis").
	Aliases []string
	// Title is the human-readable display title.
	Title string
	// Help is the long-form help text shown by "pro help <service>".
	Help string
	// Beta marks services hidden from default listings.
	Beta bool
	// Availability maps a release series to whether the service can be
	// installed there. A series absent from the map means unavailable.
	Availability map[string]bool
	// Requires lists services that must be enabled before this one.
	Requires []string
	// Incompatible lists services that cannot be enabled together with
	// this one.
	Incompatible []string
	// AffectsKernel marks services whose enable or disable replaces the
	// running kernel and therefore requires a reboot.
	AffectsKernel bool
}

// AvailableOn reports whether the service can be used on the given
// release series.
func (s Service) AvailableOn(series string) bool {
	return s.Availability[series]
}

// Catalog is an immutable, keyed view over the service list.
type Catalog struct {
	services []Service
	byName   map[string]*Service
}

// New builds a catalog from a service list. Lookup is exact and
// case-sensitive on names and aliases.
func New(services []Service) *Catalog {
	c := &Catalog{
		services: services,
		byName:   make(map[string]*Service, len(services)),
	}
	for i := range c.services {
		svc := &c.services[i]
		c.byName[svc.Name] = svc
		for _, alias := range svc.Aliases {
			c.byName[alias] = svc
		}
	}
	return c
}

// Find returns the service registered under the given name or alias.
func (c *Catalog) Find(name string) (Service, bool) {
	svc, ok := c.byName[name]
	if !ok {
		return Service{}, false
	}
	return *svc, true
}

// Has reports whether the name or alias is known to the catalog.
func (c *Catalog) Has(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// Names returns the presentation names of all services, sorted. Beta
// services are excluded unless includeBeta is set.
func (c *Catalog) Names(includeBeta bool) []string {
	var names []string
	for _, svc := range c.services {
		if svc.Beta && !includeBeta {
			continue
		}
		names = append(names, svc.Name)
	}
	sort.Strings(names)
	return names
}

// Services returns all catalog entries in declaration order. The returned
// slice is a copy; callers cannot modify the catalog through it.
func (c *Catalog) Services() []Service {
	out := make([]Service, len(c.services))
	copy(out, c.services)
	return out
}

// dependents returns the names of services that list name in Requires.
func (c *Catalog) dependents(name string) []string {
	var out []string
	for _, svc := range c.services {
		for _, req := range svc.Requires {
			if req == name {
				out = append(out, svc.Name)
			}
		}
	}
	return out
}

// Dependents returns the services that require the named service to stay
// enabled. Disabling the named service while any of these is enabled
// would break them.
func (c *Catalog) Dependents(name string) []string {
	return c.dependents(name)
}

// EnableOrder returns all service names ordered so that every service
// appears after the services it requires.
func (c *Catalog) EnableOrder() []string {
	return c.sortServices(func(svc Service) []string { return svc.Requires })
}

// DisableOrder returns all service names ordered so that every service
// appears after the services that depend on it.
func (c *Catalog) DisableOrder() []string {
	return c.sortServices(func(svc Service) []string { return c.dependents(svc.Name) })
}

func (c *Catalog) sortServices(edges func(Service) []string) []string {
	visited := make(map[string]bool, len(c.services))
	var order []string

	var visit func(name string)
	visit = func(name string) {
		if visited[name] {
			return
		}
		visited[name] = true
		svc := c.byName[name]
		if svc == nil {
			return
		}
		for _, dep := range edges(*svc) {
			visit(dep)
		}
		order = append(order, svc.Name)
	}

	for _, svc := range c.services {
		visit(svc.Name)
	}
	return order
}
