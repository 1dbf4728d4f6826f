// Package messages centralizes the user-facing message templates of the
// pro client, keyed by message code. Control flow branches on codes;
// product copy lives only here, so wording changes never ripple into the
// engine.
package messages

import (
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// Message codes. Each code identifies one template below and is stable
// across releases: structured-output consumers branch on the code, never
// on the wording.
const (
	CodeInvalidService     = "invalid-service-or-failure"
	CodeValidUnattached    = "valid-service-failure-unattached"
	CodeMixedUnattached    = "mixed-services-failure-unattached"
	CodeEmptyRequest       = "invalid-request-empty-services"
	CodeUnattached         = "unattached"
	CodeAlreadyAttached    = "already-attached"
	CodeNotEntitled        = "service-not-entitled"
	CodeAlreadyEnabled     = "service-already-enabled"
	CodeAlreadyDisabled    = "service-already-disabled"
	CodeOperationFailure   = "service-operation-failure"
	CodeRequiredNotEnabled = "required-service-not-enabled"
	CodeIncompatible       = "incompatible-service"
	CodeDependentEnabled   = "dependent-service-enabled"
	CodeAttachFailure      = "attach-failure"
	CodeDetachFailure      = "detach-failure"
	CodeRefreshFailure     = "refresh-failure"

	// CodeServiceWarning tags free-form advisories surfaced by the apply
	// backend. It has no template; the backend supplies the text.
	CodeServiceWarning = "service-warning"
)

// Data carries the parameters a template may reference. Unused fields are
// simply ignored by the template being rendered.
type Data struct {
	Action       string
	Service      string
	Title        string
	Account      string
	Reason       string
	Incompatible string
	Required     []string
	Dependents   []string
}

// templateSources maps message codes to their template text. The
// mixed-services code has no entry on purpose: its message is the join of
// rendered CodeInvalidService and CodeValidUnattached clauses.
var templateSources = map[string]string{
	CodeInvalidService: "Cannot {{ .Action }} unknown service '{{ .Service }}'.\n" +
		"See https://ubuntu.com/pro",
	CodeValidUnattached: "To use '{{ .Service }}' you need an Ubuntu Pro subscription\n" +
		"Personal and community subscriptions are available at no charge\n" +
		"See https://ubuntu.com/pro",
	CodeEmptyRequest: "No services provided to {{ .Action }}. Specify one or more services.",
	CodeUnattached: "This machine is not attached to an Ubuntu Pro subscription\n" +
		"See https://ubuntu.com/pro",
	CodeAlreadyAttached: "This machine is already attached to '{{ .Account }}'",
	CodeNotEntitled:     "This subscription is not entitled to {{ .Title }}",
	CodeAlreadyEnabled: "{{ .Title }} is already enabled.\n" +
		"See: sudo pro status",
	CodeAlreadyDisabled: "{{ .Title }} is not currently enabled\n" +
		"See: sudo pro status",
	CodeOperationFailure:   "Could not {{ .Action }} {{ .Title }}{{ with .Reason }}: {{ . }}{{ end }}",
	CodeRequiredNotEnabled: "Cannot enable {{ .Title }} until the required services are enabled: {{ .Required | join \", \" }}",
	CodeIncompatible:       "Cannot enable {{ .Title }} while {{ .Incompatible }} is enabled",
	CodeDependentEnabled:   "Cannot disable {{ .Title }} while these services depend on it: {{ .Dependents | join \", \" }}",
	CodeAttachFailure:      "Failed to attach this machine{{ with .Reason }}: {{ . }}{{ end }}",
	CodeDetachFailure:      "Failed to detach this machine{{ with .Reason }}: {{ . }}{{ end }}",
	CodeRefreshFailure:     "Failed to refresh the subscription on this machine{{ with .Reason }}: {{ . }}{{ end }}",
}

var templates = func() map[string]*template.Template {
	parsed := make(map[string]*template.Template, len(templateSources))
	funcs := sprig.TxtFuncMap()
	for code, src := range templateSources {
		parsed[code] = template.Must(template.New(code).Funcs(funcs).Parse(src))
	}
	return parsed
}()

// Render produces the message for the given code. Unknown codes and
// execution failures are programmer errors and panic.
func Render(code string, data Data) string {
	tmpl, ok := templates[code]
	if !ok {
		panic("messages: no template registered for code " + code)
	}
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		panic("messages: rendering " + code + ": " + err.Error())
	}
	return sb.String()
}

// JoinClauses combines multiple message clauses into one message with
// exactly one blank line between clauses and no trailing blank line.
// Clauses may contain embedded newlines of their own.
func JoinClauses(clauses []string) string {
	return strings.Join(clauses, "\n\n")
}
