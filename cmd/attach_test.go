package cmd

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dixonmyles/ubuntu-advantage-client/internal/contract"
	"github.com/dixonmyles/ubuntu-advantage-client/internal/report"
	"github.com/dixonmyles/ubuntu-advantage-client/internal/state"
)

// useContractServer points the commands at an httptest contract backend
// for the duration of the test.
func useContractServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	orig := newContractClient
	newContractClient = func() *contract.Client {
		return contract.NewClientWithURL(server.URL)
	}
	t.Cleanup(func() { newContractClient = orig })
	return server
}

func contractBackend(t *testing.T, sub contract.Subscription) http.Handler {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/context/machines/token", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "Bearer bad-token" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "unknown token"})
			return
		}
		json.NewEncoder(w).Encode(sub)
	})
	mux.HandleFunc("/v1/context/machines/refresh", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(sub)
	})
	mux.HandleFunc("/v1/context/machines/detach", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

func TestAttachStoresSubscription(t *testing.T) {
	store := setupTestMachine(t)
	useContractServer(t, contractBackend(t, contract.Subscription{
		AccountName:  "example-account",
		MachineToken: "machine-token-1",
		Entitlements: []string{"esm-infra", "livepatch"},
		Expires:      time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
	}))

	out, _, err := runCLI(t, "attach", "good-token")
	require.NoError(t, err)
	assert.Contains(t, out, "This machine is now attached to 'example-account'")

	st, err := store.Load()
	require.NoError(t, err)
	assert.True(t, st.Attached)
	assert.Equal(t, "example-account", st.AccountName)
	assert.Equal(t, "machine-token-1", st.MachineToken)
	assert.Equal(t, []string{"esm-infra", "livepatch"}, st.Entitlements)
}

func TestAttachInvalidToken(t *testing.T) {
	store := setupTestMachine(t)
	useContractServer(t, contractBackend(t, contract.Subscription{}))

	out, _, err := runCLI(t, "attach", "bad-token", "--format", "json")
	var exitErr *exitStatusError
	require.ErrorAs(t, err, &exitErr)

	rep := decodeReport(t, out)
	require.Len(t, rep.Errors, 1)
	assert.Equal(t, "attach-failure", rep.Errors[0].MessageCode)
	assert.Contains(t, rep.Errors[0].Message, "invalid token")

	st, err := store.Load()
	require.NoError(t, err)
	assert.False(t, st.Attached)
}

func TestAttachWhenAlreadyAttached(t *testing.T) {
	store := setupTestMachine(t)
	require.NoError(t, store.Save(state.AttachmentState{
		Attached:    true,
		AccountName: "example-account",
	}))

	out, _, err := runCLI(t, "attach", "another-token", "--format", "json")
	require.Error(t, err)

	rep := decodeReport(t, out)
	require.Len(t, rep.Errors, 1)
	assert.Equal(t, "already-attached", rep.Errors[0].MessageCode)
	assert.Contains(t, rep.Errors[0].Message, "example-account")
}

func TestDetachClearsState(t *testing.T) {
	store := setupTestMachine(t)
	useContractServer(t, contractBackend(t, contract.Subscription{}))
	require.NoError(t, store.Save(state.AttachmentState{
		Attached:     true,
		AccountName:  "example-account",
		MachineToken: "machine-token-1",
		Entitlements: []string{"esm-infra"},
		Enabled:      []string{"esm-infra"},
	}))

	out, _, err := runCLI(t, "detach", "--assume-yes")
	require.NoError(t, err)
	assert.Contains(t, out, "This machine is now detached.")

	st, err := store.Load()
	require.NoError(t, err)
	assert.False(t, st.Attached)
	assert.Empty(t, st.Enabled)
}

func TestDetachUnattached(t *testing.T) {
	setupTestMachine(t)

	out, _, err := runCLI(t, "detach", "--assume-yes", "--format", "json")
	require.Error(t, err)

	rep := decodeReport(t, out)
	assert.Equal(t, report.ResultFailure, rep.Result)
	require.Len(t, rep.Errors, 1)
	assert.Equal(t, "unattached", rep.Errors[0].MessageCode)
}

func TestRefreshUpdatesEntitlements(t *testing.T) {
	store := setupTestMachine(t)
	useContractServer(t, contractBackend(t, contract.Subscription{
		AccountName:  "example-account",
		Entitlements: []string{"esm-infra", "fips"},
	}))
	require.NoError(t, store.Save(state.AttachmentState{
		Attached:     true,
		AccountName:  "example-account",
		MachineToken: "machine-token-1",
		Entitlements: []string{"esm-infra"},
	}))

	out, _, err := runCLI(t, "refresh")
	require.NoError(t, err)
	assert.Contains(t, out, "Successfully refreshed your subscription.")

	st, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"esm-infra", "fips"}, st.Entitlements)
}

func TestRefreshUnattached(t *testing.T) {
	setupTestMachine(t)

	out, _, err := runCLI(t, "refresh", "--format", "json")
	require.Error(t, err)

	rep := decodeReport(t, out)
	require.Len(t, rep.Errors, 1)
	assert.Equal(t, "unattached", rep.Errors[0].MessageCode)
}
