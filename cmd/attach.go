package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dixonmyles/ubuntu-advantage-client/internal/contract"
	"github.com/dixonmyles/ubuntu-advantage-client/internal/messages"
	"github.com/dixonmyles/ubuntu-advantage-client/internal/render"
	"github.com/dixonmyles/ubuntu-advantage-client/internal/report"
	"github.com/dixonmyles/ubuntu-advantage-client/internal/state"
)

var attachFormat string

// newContractClient is a variable so command tests can point at a test
// server.
var newContractClient = func() *contract.Client {
	return contract.NewClient()
}

var attachCmd = &cobra.Command{
	Use:   "attach <token>",
	Short: "Attach this machine to an Ubuntu Pro subscription",
	Long: `Attach this machine to an Ubuntu Pro subscription using an attach
token from https://ubuntu.com/pro. Attaching records the entitlement
set the subscription grants; individual services are then enabled
with "pro enable".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAttach(cmd, args[0])
	},
}

func runAttach(cmd *cobra.Command, token string) error {
	if err := requireRoot(); err != nil {
		return err
	}
	format, err := render.ParseFormat(attachFormat)
	if err != nil {
		return err
	}

	store := state.NewStoreWithDir(dataDir)
	st, err := store.Load()
	if err != nil {
		return err
	}
	if st.Attached {
		entry := report.SystemEntry(messages.Render(messages.CodeAlreadyAttached, messages.Data{
			Account: st.AccountName,
		}), messages.CodeAlreadyAttached)
		return renderSingleShot(cmd, format, "attach", report.Failure(entry), "")
	}

	sub, err := newContractClient().Attach(cmd.Context(), token)
	if err != nil {
		reason := err.Error()
		var apiErr *contract.APIError
		if errors.As(err, &apiErr) && apiErr.InvalidToken() {
			reason = "invalid token"
		}
		entry := report.SystemEntry(messages.Render(messages.CodeAttachFailure, messages.Data{
			Reason: reason,
		}), messages.CodeAttachFailure)
		return renderSingleShot(cmd, format, "attach", report.Failure(entry), "")
	}

	if err := store.Save(state.AttachmentState{
		Attached:     true,
		AccountName:  sub.AccountName,
		MachineToken: sub.MachineToken,
		Entitlements: sub.Entitlements,
		ExpiresAt:    sub.Expires,
	}); err != nil {
		return err
	}

	success := report.New(nil, nil, nil, nil, false)
	note := fmt.Sprintf("This machine is now attached to '%s'", sub.AccountName)
	return renderSingleShot(cmd, format, "attach", success, note)
}

// renderSingleShot renders the result of a machine-level action. The
// JSON form is the standard operation report; the text form is a single
// sentence plus any error paragraphs.
func renderSingleShot(cmd *cobra.Command, format render.Format, action string, rep report.Report, note string) error {
	if format == render.FormatText && note != "" && rep.Result == report.ResultSuccess {
		fmt.Fprintln(cmd.OutOrStdout(), note)
	}
	if err := render.Operation(cmd.OutOrStdout(), cmd.ErrOrStderr(), format, action, rep); err != nil {
		return err
	}
	if rep.Result == report.ResultFailure {
		return &exitStatusError{code: ExitCodeError}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(attachCmd)

	attachCmd.Flags().StringVar(&attachFormat, "format", "text", "Output format (text, json)")
}
