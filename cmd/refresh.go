package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dixonmyles/ubuntu-advantage-client/internal/messages"
	"github.com/dixonmyles/ubuntu-advantage-client/internal/render"
	"github.com/dixonmyles/ubuntu-advantage-client/internal/report"
	"github.com/dixonmyles/ubuntu-advantage-client/internal/state"
)

var refreshFormat string

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Refresh the subscription state of this machine",
	Long: `Refresh the entitlement set of this machine from the contract
backend. Run after a subscription change to pick up newly granted
services without re-attaching.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRefresh(cmd)
	},
}

func runRefresh(cmd *cobra.Command) error {
	if err := requireRoot(); err != nil {
		return err
	}
	format, err := render.ParseFormat(refreshFormat)
	if err != nil {
		return err
	}

	store := state.NewStoreWithDir(dataDir)
	st, err := store.Load()
	if err != nil {
		return err
	}
	if !st.Attached {
		entry := report.SystemEntry(messages.Render(messages.CodeUnattached, messages.Data{}), messages.CodeUnattached)
		return renderSingleShot(cmd, format, "refresh", report.Failure(entry), "")
	}

	sub, err := newContractClient().Refresh(cmd.Context(), st.MachineToken)
	if err != nil {
		entry := report.SystemEntry(messages.Render(messages.CodeRefreshFailure, messages.Data{
			Reason: err.Error(),
		}), messages.CodeRefreshFailure)
		return renderSingleShot(cmd, format, "refresh", report.Failure(entry), "")
	}

	st.Entitlements = sub.Entitlements
	st.ExpiresAt = sub.Expires
	if sub.AccountName != "" {
		st.AccountName = sub.AccountName
	}
	if err := store.Save(st); err != nil {
		return err
	}

	success := report.New(nil, nil, nil, nil, false)
	return renderSingleShot(cmd, format, "refresh", success, "Successfully refreshed your subscription.")
}

func init() {
	rootCmd.AddCommand(refreshCmd)

	refreshCmd.Flags().StringVar(&refreshFormat, "format", "text", "Output format (text, json)")
}
