package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dixonmyles/ubuntu-advantage-client/internal/state"
	"github.com/dixonmyles/ubuntu-advantage-client/internal/system"
	"github.com/dixonmyles/ubuntu-advantage-client/pkg/logging"
)

// Exit codes for CLI commands. Automation relies on them: anything but
// success is 1, matching the documented contract of the pro CLI.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates any failure: privilege, validation, or an
	// aggregated operation failure.
	ExitCodeError = 1
)

var (
	// dataDir holds the attachment state; overridable for test machines
	// and containers.
	dataDir string
	// debugLogs raises log verbosity.
	debugLogs bool
)

// isRoot is a variable so command tests can simulate root and non-root
// invocations.
var isRoot = system.IsRoot

// PrivilegeError reports a state-touching command invoked without root.
// It is checked before the catalog or the attachment state is consulted.
type PrivilegeError struct{}

// Error implements the error interface. The text is part of the CLI
// contract and goes to stderr verbatim.
func (e *PrivilegeError) Error() string {
	return "This command must be run as root (try using sudo)."
}

// exitStatusError carries an exit code for failures that were already
// rendered to the user; Execute must not print them again.
type exitStatusError struct {
	code int
}

func (e *exitStatusError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func requireRoot() error {
	if !isRoot() {
		return &PrivilegeError{}
	}
	return nil
}

// rootCmd is the base command of the pro client.
var rootCmd = &cobra.Command{
	Use:   "pro",
	Short: "Manage Ubuntu Pro services on this machine",
	Long: `pro attaches this machine to an Ubuntu Pro subscription and manages
the optional security and maintenance services the subscription
entitles it to, such as Extended Security Maintenance and Livepatch.`,
	// Errors are rendered by Execute with the right exit codes; cobra
	// must not print usage or duplicate messages on handled failures.
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := logging.LevelWarn
		if debugLogs {
			level = logging.LevelDebug
		}
		logging.Init(level, os.Stderr)
	},
}

// SetVersion sets the version for the root command; called from main
// with the build-time version.
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute runs the CLI and exits the process with the appropriate code.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "pro version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err == nil {
		return
	}

	var exitErr *exitStatusError
	if errors.As(err, &exitErr) {
		// Already rendered; just carry the code.
		os.Exit(exitErr.code)
	}

	var privErr *PrivilegeError
	if errors.As(err, &privErr) {
		fmt.Fprintln(os.Stderr, privErr.Error())
		os.Exit(ExitCodeError)
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(ExitCodeError)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", state.DefaultDataDir, "Directory holding the attachment state")
	rootCmd.PersistentFlags().BoolVar(&debugLogs, "debug", false, "Enable debug logging")
}
