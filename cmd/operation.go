package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dixonmyles/ubuntu-advantage-client/internal/backend"
	"github.com/dixonmyles/ubuntu-advantage-client/internal/catalog"
	"github.com/dixonmyles/ubuntu-advantage-client/internal/engine"
	"github.com/dixonmyles/ubuntu-advantage-client/internal/render"
	"github.com/dixonmyles/ubuntu-advantage-client/internal/report"
	"github.com/dixonmyles/ubuntu-advantage-client/internal/state"
)

// newApplier builds the apply backend; a variable so command tests can
// substitute a scripted one.
var newApplier = func() backend.Applier {
	return backend.NewRepoApplier()
}

// confirm asks an interactive yes/no question. A variable so command
// tests can script the answer.
var confirm = func(prompt string) (bool, error) {
	rl, err := readline.New(prompt)
	if err != nil {
		return false, err
	}
	defer rl.Close()

	line, err := rl.Readline()
	if err != nil {
		// EOF or interrupt reads as "no".
		return false, nil
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// runOperation is the shared driver of the batched lifecycle commands.
func runOperation(cmd *cobra.Command, action engine.Action, services []string, formatValue string, assumeYes bool) error {
	if err := requireRoot(); err != nil {
		return err
	}

	format, err := render.ParseFormat(formatValue)
	if err != nil {
		return err
	}
	if format == render.FormatJSON && !assumeYes {
		return fmt.Errorf("--format json requires --assume-yes")
	}

	if action == engine.ActionDisable && !assumeYes && len(services) > 0 {
		ok, err := confirm(fmt.Sprintf("Disable %s on this machine? (y/N) ", strings.Join(services, ", ")))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.ErrOrStderr(), "Aborted.")
			return &exitStatusError{code: ExitCodeError}
		}
	}

	store := state.NewStoreWithDir(dataDir)
	st, err := store.Load()
	if err != nil {
		return err
	}

	resolver := engine.New(catalog.Default(), newApplier())

	var spin *spinner.Spinner
	if format == render.FormatText && term.IsTerminal(int(os.Stderr.Fd())) {
		spin = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
		spin.Suffix = fmt.Sprintf(" Applying %s...", action)
		spin.Start()
	}
	rep, updated, changed := resolver.Resolve(cmd.Context(), engine.Request{
		Action:    action,
		Services:  services,
		AssumeYes: assumeYes,
	}, st)
	if spin != nil {
		spin.Stop()
	}

	// Attachment state is written once, at the end, on success only.
	if changed && rep.Result == report.ResultSuccess {
		if err := store.Save(updated); err != nil {
			return err
		}
	}

	if err := render.Operation(cmd.OutOrStdout(), cmd.ErrOrStderr(), format, string(action), rep); err != nil {
		return err
	}
	if rep.Result == report.ResultFailure {
		return &exitStatusError{code: ExitCodeError}
	}
	return nil
}
