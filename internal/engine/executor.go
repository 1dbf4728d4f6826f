package engine

import (
	"context"

	"github.com/dixonmyles/ubuntu-advantage-client/internal/backend"
	"github.com/dixonmyles/ubuntu-advantage-client/internal/catalog"
	"github.com/dixonmyles/ubuntu-advantage-client/internal/messages"
	"github.com/dixonmyles/ubuntu-advantage-client/internal/report"
	"github.com/dixonmyles/ubuntu-advantage-client/internal/state"
	"github.com/dixonmyles/ubuntu-advantage-client/pkg/logging"
)

// outcome collects what the executed phase produced.
type outcome struct {
	processed   []string
	failed      []string
	errors      []report.Entry
	warnings    []report.Entry
	needsReboot bool
}

// execute applies the action to every known service sequentially in
// request order. Failures are isolated per service: a failure on one
// never prevents attempting the next. The working state is mutated as
// services are applied so that later services in the same batch see the
// effects of earlier ones (ros after esm-infra, for example).
func execute(ctx context.Context, action Action, known []string, work *state.AttachmentState, cat *catalog.Catalog, applier backend.Applier) outcome {
	var out outcome
	for _, name := range known {
		svc, _ := cat.Find(name)
		var (
			entry   *report.Entry
			warning *report.Entry
			result  backend.ApplyResult
		)
		switch action {
		case ActionEnable:
			entry, warning, result = enableOne(ctx, name, svc, work, applier)
		case ActionDisable:
			entry, warning, result = disableOne(ctx, name, svc, work, cat, applier)
		}

		if warning != nil {
			out.warnings = append(out.warnings, *warning)
		}
		if entry != nil {
			out.failed = append(out.failed, name)
			out.errors = append(out.errors, *entry)
			logging.Warn("Engine", "%s %s failed: %s", action, name, entry.MessageCode)
			continue
		}

		out.processed = append(out.processed, name)
		out.needsReboot = out.needsReboot || result.NeedsReboot
		for _, text := range result.Warnings {
			w := report.ServiceEntry(name, text, messages.CodeServiceWarning)
			out.warnings = append(out.warnings, w)
		}
	}
	return out
}

// enableOne enables a single service against the working state. A nil
// entry means success; a non-nil warning may accompany success.
func enableOne(ctx context.Context, name string, svc catalog.Service, work *state.AttachmentState, applier backend.Applier) (*report.Entry, *report.Entry, backend.ApplyResult) {
	if !work.HasEntitlement(svc.Name) {
		entry := report.ServiceEntry(name, messages.Render(messages.CodeNotEntitled, messages.Data{
			Title: svc.Title,
		}), messages.CodeNotEntitled)
		return &entry, nil, backend.ApplyResult{}
	}

	if work.IsEnabled(svc.Name) {
		warning := report.ServiceEntry(name, messages.Render(messages.CodeAlreadyEnabled, messages.Data{
			Title: svc.Title,
		}), messages.CodeAlreadyEnabled)
		return nil, &warning, backend.ApplyResult{}
	}

	for _, inc := range svc.Incompatible {
		if work.IsEnabled(inc) {
			entry := report.ServiceEntry(name, messages.Render(messages.CodeIncompatible, messages.Data{
				Title:        svc.Title,
				Incompatible: inc,
			}), messages.CodeIncompatible)
			return &entry, nil, backend.ApplyResult{}
		}
	}

	var missing []string
	for _, req := range svc.Requires {
		if !work.IsEnabled(req) {
			missing = append(missing, req)
		}
	}
	if len(missing) > 0 {
		entry := report.ServiceEntry(name, messages.Render(messages.CodeRequiredNotEnabled, messages.Data{
			Title:    svc.Title,
			Required: missing,
		}), messages.CodeRequiredNotEnabled)
		return &entry, nil, backend.ApplyResult{}
	}

	result, err := applier.Enable(ctx, svc)
	if err != nil {
		entry := report.ServiceEntry(name, messages.Render(messages.CodeOperationFailure, messages.Data{
			Action: string(ActionEnable),
			Title:  svc.Title,
			Reason: err.Error(),
		}), messages.CodeOperationFailure)
		return &entry, nil, backend.ApplyResult{}
	}

	work.MarkEnabled(svc.Name)
	return nil, nil, result
}

// disableOne disables a single service against the working state.
func disableOne(ctx context.Context, name string, svc catalog.Service, work *state.AttachmentState, cat *catalog.Catalog, applier backend.Applier) (*report.Entry, *report.Entry, backend.ApplyResult) {
	if !work.IsEnabled(svc.Name) {
		warning := report.ServiceEntry(name, messages.Render(messages.CodeAlreadyDisabled, messages.Data{
			Title: svc.Title,
		}), messages.CodeAlreadyDisabled)
		return nil, &warning, backend.ApplyResult{}
	}

	var blocking []string
	for _, dep := range cat.Dependents(svc.Name) {
		if work.IsEnabled(dep) {
			blocking = append(blocking, dep)
		}
	}
	if len(blocking) > 0 {
		entry := report.ServiceEntry(name, messages.Render(messages.CodeDependentEnabled, messages.Data{
			Title:      svc.Title,
			Dependents: blocking,
		}), messages.CodeDependentEnabled)
		return &entry, nil, backend.ApplyResult{}
	}

	result, err := applier.Disable(ctx, svc)
	if err != nil {
		entry := report.ServiceEntry(name, messages.Render(messages.CodeOperationFailure, messages.Data{
			Action: string(ActionDisable),
			Title:  svc.Title,
			Reason: err.Error(),
		}), messages.CodeOperationFailure)
		return &entry, nil, backend.ApplyResult{}
	}

	work.MarkDisabled(svc.Name)
	return nil, nil, result
}
