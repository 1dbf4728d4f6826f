package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dixonmyles/ubuntu-advantage-client/internal/messages"
	"github.com/dixonmyles/ubuntu-advantage-client/internal/render"
	"github.com/dixonmyles/ubuntu-advantage-client/internal/report"
	"github.com/dixonmyles/ubuntu-advantage-client/internal/state"
)

var (
	detachFormat    string
	detachAssumeYes bool
)

var detachCmd = &cobra.Command{
	Use:   "detach",
	Short: "Detach this machine from its Ubuntu Pro subscription",
	Long: `Detach this machine from its Ubuntu Pro subscription. The machine
keeps any packages already installed, but loses access to the
subscription's package streams.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDetach(cmd)
	},
}

func runDetach(cmd *cobra.Command) error {
	if err := requireRoot(); err != nil {
		return err
	}
	format, err := render.ParseFormat(detachFormat)
	if err != nil {
		return err
	}
	if format == render.FormatJSON && !detachAssumeYes {
		return fmt.Errorf("--format json requires --assume-yes")
	}

	store := state.NewStoreWithDir(dataDir)
	st, err := store.Load()
	if err != nil {
		return err
	}
	if !st.Attached {
		entry := report.SystemEntry(messages.Render(messages.CodeUnattached, messages.Data{}), messages.CodeUnattached)
		return renderSingleShot(cmd, format, "detach", report.Failure(entry), "")
	}

	if !detachAssumeYes {
		ok, err := confirm("Detach this machine from its subscription? (y/N) ")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.ErrOrStderr(), "Aborted.")
			return &exitStatusError{code: ExitCodeError}
		}
	}

	if err := newContractClient().Detach(cmd.Context(), st.MachineToken); err != nil {
		entry := report.SystemEntry(messages.Render(messages.CodeDetachFailure, messages.Data{
			Reason: err.Error(),
		}), messages.CodeDetachFailure)
		return renderSingleShot(cmd, format, "detach", report.Failure(entry), "")
	}

	if err := store.Save(state.AttachmentState{}); err != nil {
		return err
	}

	success := report.New(nil, nil, nil, nil, false)
	return renderSingleShot(cmd, format, "detach", success, "This machine is now detached.")
}

func init() {
	rootCmd.AddCommand(detachCmd)

	detachCmd.Flags().StringVar(&detachFormat, "format", "text", "Output format (text, json)")
	detachCmd.Flags().BoolVar(&detachAssumeYes, "assume-yes", false, "Answer yes to any prompts")
}
