package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dixonmyles/ubuntu-advantage-client/internal/catalog"
	"github.com/dixonmyles/ubuntu-advantage-client/internal/engine"
)

var (
	enableFormat    string
	enableAssumeYes bool
)

var enableCmd = &cobra.Command{
	Use:   "enable <service>...",
	Short: "Enable an Ubuntu Pro service",
	Long: `Enable one or more Ubuntu Pro services on this machine.

The machine must be attached (see "pro attach") and the subscription
must entitle it to each requested service. Services are processed in
the order given; a failure on one service does not stop the others.

Examples:
  pro enable esm-infra
  pro enable esm-infra livepatch --assume-yes --format json`,
	Args: cobra.ArbitraryArgs,
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return catalog.Default().Names(true), cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOperation(cmd, engine.ActionEnable, args, enableFormat, enableAssumeYes)
	},
}

func init() {
	rootCmd.AddCommand(enableCmd)

	enableCmd.Flags().StringVar(&enableFormat, "format", "text", "Output format (text, json)")
	enableCmd.Flags().BoolVar(&enableAssumeYes, "assume-yes", false, "Answer yes to any prompts")
}
