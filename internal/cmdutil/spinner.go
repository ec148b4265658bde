package cmdutil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"nathanbeddoewebdev/polar/internal/clierr"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// ExitInterrupted is returned when the user aborts a spinner or prompt.
const ExitInterrupted = 130

// isTerminal reports whether w is an interactive terminal.
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func accessible() bool {
	return os.Getenv("ACCESSIBLE") != ""
}

// Spin runs fn behind a spinner on the error stream. When that stream is
// not a terminal fn runs directly with the command context.
func Spin[T any](cmd *cobra.Command, title string, fn func(ctx context.Context) (T, error)) (T, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	out := cmd.ErrOrStderr()
	if !isTerminal(out) {
		return fn(ctx)
	}

	var result T
	spinErr := spinner.New().
		Title(title).
		Accessible(accessible()).
		Output(out).
		ActionWithErr(func(spinCtx context.Context) error {
			var err error
			result, err = fn(spinCtx)
			return err
		}).
		Run()
	if spinErr != nil {
		if errors.Is(spinErr, huh.ErrUserAborted) || errors.Is(spinErr, context.Canceled) {
			fmt.Fprintln(out, "Aborted.")
			return result, clierr.Exit(ExitInterrupted)
		}
		return result, spinErr
	}
	return result, nil
}
