package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dixonmyles/ubuntu-advantage-client/internal/catalog"
	"github.com/dixonmyles/ubuntu-advantage-client/internal/engine"
	"github.com/dixonmyles/ubuntu-advantage-client/internal/render"
	"github.com/dixonmyles/ubuntu-advantage-client/internal/system"
)

var helpFormat string

// helpCmd replaces cobra's built-in help command: "pro help <service>"
// answers a service help query, while a bare "pro help" still prints the
// usual command overview. The query is stateless and needs no root.
var helpCmd = &cobra.Command{
	Use:   "help [service]",
	Short: "Show help for an Ubuntu Pro service",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Root().Help()
		}
		return runServiceHelp(cmd, args[0])
	},
}

func runServiceHelp(cmd *cobra.Command, name string) error {
	format, err := render.ParseFormat(helpFormat)
	if err != nil {
		return err
	}

	info, err := engine.Help(catalog.Default(), system.Series(), name)
	if err != nil {
		// The help path fails plainly: one stderr line, exit 1, no
		// structured error list.
		fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
		return &exitStatusError{code: ExitCodeError}
	}

	return render.Help(cmd.OutOrStdout(), format, info)
}

func init() {
	rootCmd.SetHelpCommand(helpCmd)

	helpCmd.Flags().StringVar(&helpFormat, "format", "text", "Output format (text, json)")
}
