// Package screen holds the contract between the app shell and the screens
// it stacks.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/keizoku/internal/ui/layout"
)

// Screen is one page of the TUI. The app shell draws the header and footer;
// a screen only fills the body.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the body into width x height cells.
	View(width, height int) string

	// Title is shown in the header breadcrumb.
	Title() string
}

// KeyHintProvider replaces the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider adds a right-aligned status to the header, such as the
// model in use or the question counter.
type StatusProvider interface {
	Status() string
}

// EscapeHandler lets a screen claim Esc. While HandlesEscape reports true
// the shell delivers Esc to the screen rather than navigating back.
type EscapeHandler interface {
	HandlesEscape() bool
}
