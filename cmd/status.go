package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dixonmyles/ubuntu-advantage-client/internal/catalog"
	"github.com/dixonmyles/ubuntu-advantage-client/internal/engine"
	"github.com/dixonmyles/ubuntu-advantage-client/internal/render"
	"github.com/dixonmyles/ubuntu-advantage-client/internal/state"
	"github.com/dixonmyles/ubuntu-advantage-client/internal/system"
)

var (
	statusFormat string
	statusAll    bool
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the Ubuntu Pro service status of this machine",
	Long: `Show availability, entitlement and enablement for every Ubuntu Pro
service on this machine. This is a read path: it needs no root and
changes nothing.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStatus(cmd)
	},
}

func runStatus(cmd *cobra.Command) error {
	format, err := render.ParseFormat(statusFormat)
	if err != nil {
		return err
	}

	st, err := state.NewStoreWithDir(dataDir).Load()
	if err != nil {
		return err
	}

	rows, err := engine.StatusOverview(cmd.Context(), catalog.Default(), st, system.Series(), statusAll)
	if err != nil {
		return err
	}

	overview := render.NewStatusOverview(st.Attached, st.AccountName, rows)
	return render.Status(cmd.OutOrStdout(), format, overview)
}

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().StringVar(&statusFormat, "format", "text", "Output format (text, json)")
	statusCmd.Flags().BoolVar(&statusAll, "all", false, "Include beta services")
}
