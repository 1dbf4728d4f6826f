package engine

import (
	"github.com/dixonmyles/ubuntu-advantage-client/internal/messages"
	"github.com/dixonmyles/ubuntu-advantage-client/internal/report"
)

// gate enforces the batch-level preconditions ahead of any per-service
// work. When it blocks, it returns the single synthesized system entry
// that stands for the whole request; the batch never reaches execution,
// so no per-service outcome exists on this path.
//
// Classification is exhaustive: a request is all-unknown, all-known on an
// unattached machine, mixed on an unattached machine, or it proceeds.
func gate(action Action, attached bool, known, unknown []string) (report.Entry, bool) {
	unknownClauses := make([]string, 0, len(unknown))
	for _, name := range unknown {
		unknownClauses = append(unknownClauses, messages.Render(messages.CodeInvalidService, messages.Data{
			Action:  string(action),
			Service: name,
		}))
	}

	// All-unknown requests are blocked no matter the attachment state:
	// there is nothing to execute.
	if len(known) == 0 && len(unknown) > 0 {
		msg := messages.JoinClauses(unknownClauses)
		return report.SystemEntry(msg, messages.CodeInvalidService), false
	}

	if attached || !action.RequiresAttachment() {
		return report.Entry{}, true
	}

	knownClauses := make([]string, 0, len(known))
	for _, name := range known {
		knownClauses = append(knownClauses, messages.Render(messages.CodeValidUnattached, messages.Data{
			Service: name,
		}))
	}

	if len(unknown) == 0 {
		msg := messages.JoinClauses(knownClauses)
		return report.SystemEntry(msg, messages.CodeValidUnattached), false
	}

	// Mixed: unknown-service clauses first, then the unattached clauses.
	msg := messages.JoinClauses(append(unknownClauses, knownClauses...))
	return report.SystemEntry(msg, messages.CodeMixedUnattached), false
}
