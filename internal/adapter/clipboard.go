package adapter

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrClipboardUnavailable is returned when the platform has no clipboard utility.
var ErrClipboardUnavailable = errors.New("clipboard is not available on this system")

// ClipboardAdapter copies anonymized text to the system clipboard.
type ClipboardAdapter interface {
	WriteAll(text string) error
}

// SystemClipboardAdapter uses the platform clipboard (pbcopy, xclip, xsel, wl-copy or the Windows API).
type SystemClipboardAdapter struct{}

// NewSystemClipboardAdapter constructs a SystemClipboardAdapter.
func NewSystemClipboardAdapter() *SystemClipboardAdapter {
	return &SystemClipboardAdapter{}
}

// WriteAll replaces the clipboard contents with text.
func (c *SystemClipboardAdapter) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnavailable
	}

	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}

	return nil
}
