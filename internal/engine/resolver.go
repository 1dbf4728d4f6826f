package engine

import (
	"context"

	"github.com/google/uuid"

	"github.com/dixonmyles/ubuntu-advantage-client/internal/backend"
	"github.com/dixonmyles/ubuntu-advantage-client/internal/catalog"
	"github.com/dixonmyles/ubuntu-advantage-client/internal/messages"
	"github.com/dixonmyles/ubuntu-advantage-client/internal/report"
	"github.com/dixonmyles/ubuntu-advantage-client/internal/state"
	"github.com/dixonmyles/ubuntu-advantage-client/pkg/logging"
)

// Resolver runs batched lifecycle actions against the catalog and an
// injected attachment state.
type Resolver struct {
	catalog *catalog.Catalog
	applier backend.Applier
}

// New creates a resolver over the given catalog and apply backend.
func New(cat *catalog.Catalog, applier backend.Applier) *Resolver {
	return &Resolver{catalog: cat, applier: applier}
}

// Resolve runs a batched action end to end: validate, gate, execute,
// aggregate. It never mutates st; the updated state is returned alongside
// the report, with changed reporting whether anything was applied. The
// caller persists the returned state only when changed is true and the
// invocation is allowed to commit.
//
// Resolve only accepts batched actions (enable, disable); the single-shot
// actions have their own preconditions and no batching.
func (r *Resolver) Resolve(ctx context.Context, req Request, st state.AttachmentState) (report.Report, state.AttachmentState, bool) {
	if !req.Action.Batched() {
		panic("engine: Resolve called with non-batched action " + string(req.Action))
	}

	opID := uuid.New().String()
	logging.Debug("Engine", "operation %s: %s %v", opID, req.Action, req.Services)

	names := dedupe(req.Services)
	if len(names) == 0 {
		entry := report.SystemEntry(messages.Render(messages.CodeEmptyRequest, messages.Data{
			Action: string(req.Action),
		}), messages.CodeEmptyRequest)
		return report.Failure(entry), st, false
	}

	known, unknown := partition(r.catalog, names)

	if entry, proceed := gate(req.Action, st.Attached, known, unknown); !proceed {
		logging.Info("Engine", "operation %s blocked: %s", opID, entry.MessageCode)
		return report.Failure(entry), st, false
	}

	var errs []report.Entry
	if len(unknown) > 0 {
		// Unknown names never execute; on the attached path they surface
		// as one batch-level error alongside whatever the known services
		// produce.
		clauses := make([]string, 0, len(unknown))
		for _, name := range unknown {
			clauses = append(clauses, messages.Render(messages.CodeInvalidService, messages.Data{
				Action:  string(req.Action),
				Service: name,
			}))
		}
		errs = append(errs, report.SystemEntry(messages.JoinClauses(clauses), messages.CodeInvalidService))
	}

	work := st.Clone()
	out := execute(ctx, req.Action, known, &work, r.catalog, r.applier)
	errs = append(errs, out.errors...)

	rep := report.New(out.processed, out.failed, errs, out.warnings, out.needsReboot)
	logging.Info("Engine", "operation %s: %s (%d processed, %d failed)",
		opID, rep.Result, len(rep.ProcessedServices), len(rep.FailedServices))

	return rep, work, len(out.processed) > 0
}
