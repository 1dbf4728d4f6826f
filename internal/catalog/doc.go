// Package catalog holds the static service catalog of the pro client.
//
// The catalog is the fixed, compiled-in list of optional services a
// subscription can entitle a machine to: extended security maintenance
// channels, hardening profiles, certified kernels. It is loaded once into
// an immutable keyed structure and shared read-only; nothing mutates it
// after construction, so no locking is required.
//
// Each service carries a display title, help text, per-release
// availability, optional alias names, and its relationships to other
// services (required, dependent, incompatible). EnableOrder and
// DisableOrder derive topological orderings from those relationships.
package catalog
