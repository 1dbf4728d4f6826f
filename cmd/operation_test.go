package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dixonmyles/ubuntu-advantage-client/internal/report"
	"github.com/dixonmyles/ubuntu-advantage-client/internal/state"
)

func decodeReport(t *testing.T, out string) report.Report {
	t.Helper()
	var rep report.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	return rep
}

func TestEnableUnattachedKnownService(t *testing.T) {
	setupTestMachine(t)

	out, _, err := runCLI(t, "enable", "esm-infra", "--assume-yes", "--format", "json")

	var exitErr *exitStatusError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, ExitCodeError, exitErr.code)

	rep := decodeReport(t, out)
	assert.Equal(t, report.ResultFailure, rep.Result)
	assert.Empty(t, rep.ProcessedServices)
	assert.Empty(t, rep.FailedServices)
	require.Len(t, rep.Errors, 1)
	assert.Equal(t, "To use 'esm-infra' you need an Ubuntu Pro subscription\n"+
		"Personal and community subscriptions are available at no charge\n"+
		"See https://ubuntu.com/pro", rep.Errors[0].Message)
	assert.Equal(t, "valid-service-failure-unattached", rep.Errors[0].MessageCode)
	assert.Nil(t, rep.Errors[0].Service)
	assert.Equal(t, report.TypeSystem, rep.Errors[0].Type)
}

func TestEnableUnknownService(t *testing.T) {
	setupTestMachine(t)

	out, _, err := runCLI(t, "enable", "unknown", "--assume-yes", "--format", "json")
	require.Error(t, err)

	rep := decodeReport(t, out)
	require.Len(t, rep.Errors, 1)
	assert.Equal(t, "invalid-service-or-failure", rep.Errors[0].MessageCode)
	assert.Equal(t, "Cannot enable unknown service 'unknown'.\nSee https://ubuntu.com/pro", rep.Errors[0].Message)
}

func TestEnableMixedServicesUnattached(t *testing.T) {
	setupTestMachine(t)

	out, _, err := runCLI(t, "enable", "esm-infra", "unknown", "--assume-yes", "--format", "json")
	require.Error(t, err)

	rep := decodeReport(t, out)
	require.Len(t, rep.Errors, 1)
	assert.Equal(t, "mixed-services-failure-unattached", rep.Errors[0].MessageCode)
	assert.Equal(t, "Cannot enable unknown service 'unknown'.\n"+
		"See https://ubuntu.com/pro\n"+
		"\n"+
		"To use 'esm-infra' you need an Ubuntu Pro subscription\n"+
		"Personal and community subscriptions are available at no charge\n"+
		"See https://ubuntu.com/pro", rep.Errors[0].Message)
	assert.Empty(t, rep.ProcessedServices)
	assert.Empty(t, rep.FailedServices)
}

func TestEnableSuccessPersistsState(t *testing.T) {
	store := setupTestMachine(t)
	require.NoError(t, store.Save(state.AttachmentState{
		Attached:     true,
		AccountName:  "example-account",
		Entitlements: []string{"esm-infra"},
	}))

	out, _, err := runCLI(t, "enable", "esm-infra", "--assume-yes", "--format", "json")
	require.NoError(t, err)

	rep := decodeReport(t, out)
	assert.Equal(t, report.ResultSuccess, rep.Result)
	assert.Equal(t, []string{"esm-infra"}, rep.ProcessedServices)

	st, err := store.Load()
	require.NoError(t, err)
	assert.True(t, st.IsEnabled("esm-infra"))
}

func TestEnablePartialFailureDoesNotPersist(t *testing.T) {
	store := setupTestMachine(t)
	require.NoError(t, store.Save(state.AttachmentState{
		Attached:     true,
		Entitlements: []string{"esm-infra"},
	}))

	// fips is not entitled: batch result is failure, so nothing commits.
	out, _, err := runCLI(t, "enable", "esm-infra", "fips", "--assume-yes", "--format", "json")
	require.Error(t, err)

	rep := decodeReport(t, out)
	assert.Equal(t, []string{"esm-infra"}, rep.ProcessedServices)
	assert.Equal(t, []string{"fips"}, rep.FailedServices)

	st, err := store.Load()
	require.NoError(t, err)
	assert.False(t, st.IsEnabled("esm-infra"))
}

func TestEnableTextOutput(t *testing.T) {
	store := setupTestMachine(t)
	require.NoError(t, store.Save(state.AttachmentState{
		Attached:     true,
		Entitlements: []string{"esm-infra"},
	}))

	out, _, err := runCLI(t, "enable", "esm-infra", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ esm-infra enabled")
}

func TestJSONRequiresAssumeYes(t *testing.T) {
	setupTestMachine(t)

	_, _, err := runCLI(t, "enable", "esm-infra", "--format", "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--format json requires --assume-yes")
}

func TestDisableDeclinedConfirmationAborts(t *testing.T) {
	store := setupTestMachine(t)
	require.NoError(t, store.Save(state.AttachmentState{
		Attached:     true,
		Entitlements: []string{"esm-infra"},
		Enabled:      []string{"esm-infra"},
	}))
	confirm = func(prompt string) (bool, error) { return false, nil }

	_, errOut, err := runCLI(t, "disable", "esm-infra", "--format", "text")

	var exitErr *exitStatusError
	require.ErrorAs(t, err, &exitErr)
	assert.Contains(t, errOut, "Aborted.")

	st, loadErr := store.Load()
	require.NoError(t, loadErr)
	assert.True(t, st.IsEnabled("esm-infra"))
}

func TestDisableEnabledService(t *testing.T) {
	store := setupTestMachine(t)
	require.NoError(t, store.Save(state.AttachmentState{
		Attached:     true,
		Entitlements: []string{"esm-infra"},
		Enabled:      []string{"esm-infra"},
	}))

	out, _, err := runCLI(t, "disable", "esm-infra", "--assume-yes", "--format", "json")
	require.NoError(t, err)

	rep := decodeReport(t, out)
	assert.Equal(t, report.ResultSuccess, rep.Result)
	assert.Equal(t, []string{"esm-infra"}, rep.ProcessedServices)
	require.Len(t, rep.Warnings, 1)
	assert.Equal(t, "service-warning", rep.Warnings[0].MessageCode)

	st, err := store.Load()
	require.NoError(t, err)
	assert.False(t, st.IsEnabled("esm-infra"))
}

func TestEmptyServiceListIsValidationError(t *testing.T) {
	setupTestMachine(t)

	out, _, err := runCLI(t, "enable", "--assume-yes", "--format", "json")
	require.Error(t, err)

	rep := decodeReport(t, out)
	require.Len(t, rep.Errors, 1)
	assert.Equal(t, "invalid-request-empty-services", rep.Errors[0].MessageCode)
}
