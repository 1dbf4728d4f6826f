// Package report defines the versioned operation result produced by every
// pro invocation. The structure is schema-stable: humans and machines
// consume the same object, rendered as text or JSON.
package report

// SchemaVersion tags the structured result format so consumers can evolve
// with it.
const SchemaVersion = "0.1"

// Result is the overall outcome of an operation.
type Result string

const (
	ResultSuccess Result = "success"
	ResultFailure Result = "failure"
)

// EntryType distinguishes batch-level conditions from per-service ones.
type EntryType string

const (
	// TypeSystem marks a condition that applies to the whole request and
	// is never attributed to a single service.
	TypeSystem EntryType = "system"
	// TypeService marks a condition scoped to one service.
	TypeService EntryType = "service"
)

// Entry is one structured error or warning.
type Entry struct {
	Message     string    `json:"message"`
	MessageCode string    `json:"message_code"`
	Service     *string   `json:"service"`
	Type        EntryType `json:"type"`
}

// SystemEntry builds a batch-level entry with a null service.
func SystemEntry(message, code string) Entry {
	return Entry{Message: message, MessageCode: code, Type: TypeSystem}
}

// ServiceEntry builds an entry scoped to the named service.
func ServiceEntry(service, message, code string) Entry {
	svc := service
	return Entry{Message: message, MessageCode: code, Service: &svc, Type: TypeService}
}

// Report is the single aggregated result of an operation.
type Report struct {
	SchemaVersion     string  `json:"_schema_version"`
	Result            Result  `json:"result"`
	ProcessedServices []string `json:"processed_services"`
	FailedServices    []string `json:"failed_services"`
	Errors            []Entry  `json:"errors"`
	Warnings          []Entry  `json:"warnings"`
	NeedsReboot       bool     `json:"needs_reboot"`
}

// New assembles a report. The overall result is derived, never passed in:
// failure iff any error entry or any failed service exists. Nil slices are
// normalised so the JSON form always carries arrays, not null.
func New(processed, failed []string, errs, warnings []Entry, needsReboot bool) Report {
	result := ResultSuccess
	if len(errs) > 0 || len(failed) > 0 {
		result = ResultFailure
	}
	return Report{
		SchemaVersion:     SchemaVersion,
		Result:            result,
		ProcessedServices: orEmptyStrings(processed),
		FailedServices:    orEmptyStrings(failed),
		Errors:            orEmptyEntries(errs),
		Warnings:          orEmptyEntries(warnings),
		NeedsReboot:       needsReboot,
	}
}

// Failure builds a report carrying only the given batch-level errors. Used
// when a precondition blocks the batch before any per-service work.
func Failure(errs ...Entry) Report {
	return New(nil, nil, errs, nil, false)
}

func orEmptyStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func orEmptyEntries(e []Entry) []Entry {
	if e == nil {
		return []Entry{}
	}
	return e
}
