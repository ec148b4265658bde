package cmdutil

import (
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// ErrConfirmationRequired is returned by Confirm when no terminal is
// available to ask and the caller did not pass --yes.
var ErrConfirmationRequired = errors.New("confirmation required: re-run with --yes to proceed non-interactively")

// Confirm asks a yes/no question on the terminal. assumeYes skips the
// prompt. A declined or aborted prompt reports false.
func Confirm(cmd *cobra.Command, title, affirmative string, assumeYes bool) (bool, error) {
	if assumeYes {
		return true, nil
	}
	if !isTerminal(os.Stdin) || !isTerminal(cmd.ErrOrStderr()) {
		return false, ErrConfirmationRequired
	}

	confirmed := false
	field := huh.NewConfirm().
		Title(title).
		Affirmative(affirmative).
		Negative("Cancel").
		Value(&confirmed)

	err := huh.NewForm(huh.NewGroup(field)).
		WithAccessible(accessible()).
		WithOutput(cmd.ErrOrStderr()).
		Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return confirmed, nil
}
