// Package controller renders anonymization results for the terminal.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "veil.dev/pkg/veil/internal/model"
)

// UI defines how the workflow reports results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// DisplayAnonymized writes the anonymized text of a single source.
	DisplayAnonymized(ctx context.Context, output m.Output) error
	// DisplaySaved confirms that outputs were written to target (a directory or the clipboard).
	DisplaySaved(ctx context.Context, outputs []m.Output, target string)
	// DisplaySummary shows the per-file counts of a dry run.
	DisplaySummary(ctx context.Context, outputs []m.Output) error
	// DisplayLanguages lists the language profiles.
	DisplayLanguages(ctx context.Context, profiles []m.Profile, fallback m.Profile) error
	// DisplayView shows one anonymized file, or its diff against the original.
	DisplayView(ctx context.Context, view m.View) error
}

// NewUI picks the interactive TUI for terminals and SimpleUI otherwise.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
