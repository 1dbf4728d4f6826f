package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dixonmyles/ubuntu-advantage-client/internal/catalog"
	"github.com/dixonmyles/ubuntu-advantage-client/internal/engine"
)

var (
	disableFormat    string
	disableAssumeYes bool
)

var disableCmd = &cobra.Command{
	Use:   "disable <service>...",
	Short: "Disable an Ubuntu Pro service",
	Long: `Disable one or more Ubuntu Pro services on this machine.

Without --assume-yes a confirmation prompt is shown first. Services
are processed in the order given; a failure on one service does not
stop the others.

Examples:
  pro disable livepatch
  pro disable esm-infra esm-apps --assume-yes`,
	Args: cobra.ArbitraryArgs,
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return catalog.Default().Names(true), cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOperation(cmd, engine.ActionDisable, args, disableFormat, disableAssumeYes)
	},
}

func init() {
	rootCmd.AddCommand(disableCmd)

	disableCmd.Flags().StringVar(&disableFormat, "format", "text", "Output format (text, json)")
	disableCmd.Flags().BoolVar(&disableAssumeYes, "assume-yes", false, "Answer yes to any prompts")
}
