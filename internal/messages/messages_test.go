package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnknownServiceClause(t *testing.T) {
	got := Render(CodeInvalidService, Data{Action: "enable", Service: "unknown"})
	want := "Cannot enable unknown service 'unknown'.\nSee https://ubuntu.com/pro"
	assert.Equal(t, want, got)
}

func TestUnattachedClause(t *testing.T) {
	got := Render(CodeValidUnattached, Data{Service: "esm-infra"})
	want := "To use 'esm-infra' you need an Ubuntu Pro subscription\n" +
		"Personal and community subscriptions are available at no charge\n" +
		"See https://ubuntu.com/pro"
	assert.Equal(t, want, got)
}

func TestJoinClauses(t *testing.T) {
	joined := JoinClauses([]string{"first\nclause", "second"})
	assert.Equal(t, "first\nclause\n\nsecond", joined)

	single := JoinClauses([]string{"only"})
	assert.Equal(t, "only", single)
	assert.NotContains(t, single, "\n\n")
}

func TestMixedMessageComposition(t *testing.T) {
	unknown := Render(CodeInvalidService, Data{Action: "enable", Service: "unknown"})
	unattached := Render(CodeValidUnattached, Data{Service: "esm-infra"})

	got := JoinClauses([]string{unknown, unattached})
	want := "Cannot enable unknown service 'unknown'.\n" +
		"See https://ubuntu.com/pro\n" +
		"\n" +
		"To use 'esm-infra' you need an Ubuntu Pro subscription\n" +
		"Personal and community subscriptions are available at no charge\n" +
		"See https://ubuntu.com/pro"
	assert.Equal(t, want, got)
}

func TestListParameters(t *testing.T) {
	got := Render(CodeRequiredNotEnabled, Data{
		Title:    "Security Updates for the Robot Operating System",
		Required: []string{"esm-infra", "esm-apps"},
	})
	assert.Contains(t, got, "esm-infra, esm-apps")

	got = Render(CodeDependentEnabled, Data{
		Title:      "UA Infra: Extended Security Maintenance (ESM)",
		Dependents: []string{"ros"},
	})
	assert.Contains(t, got, "depend on it: ros")
}

func TestReasonSuffixOptional(t *testing.T) {
	plain := Render(CodeAttachFailure, Data{})
	assert.Equal(t, "Failed to attach this machine", plain)

	detailed := Render(CodeAttachFailure, Data{Reason: "invalid token"})
	assert.Equal(t, "Failed to attach this machine: invalid token", detailed)
}

func TestRenderUnknownCodePanics(t *testing.T) {
	assert.Panics(t, func() {
		Render("no-such-code", Data{})
	})
}

func TestEveryRegisteredTemplateRenders(t *testing.T) {
	data := Data{
		Action:       "enable",
		Service:      "esm-infra",
		Title:        "UA Infra: Extended Security Maintenance (ESM)",
		Account:      "example",
		Reason:       "because",
		Incompatible: "livepatch",
		Required:     []string{"esm-infra"},
		Dependents:   []string{"ros"},
	}
	for code := range templateSources {
		assert.NotPanics(t, func() { Render(code, data) }, "code %s", code)
		assert.NotEmpty(t, Render(code, data), "code %s", code)
	}
}
