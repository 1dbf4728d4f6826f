// Package engine implements entitlement resolution and multi-service
// action aggregation: the pipeline behind "pro enable" and "pro disable".
//
// The pipeline has four stages. The validator de-duplicates the requested
// names and partitions them into known and unknown against the catalog.
// The gate checks the machine-level attachment precondition and, when it
// blocks, synthesizes a single batch-level error covering the whole
// request. The executor applies the action to each eligible service
// strictly sequentially in request order, isolating failures so one bad
// service never stops the rest. The aggregator merges everything into one
// versioned report.
//
// Resolve is deterministic: identical inputs produce a structurally
// identical report.
package engine
