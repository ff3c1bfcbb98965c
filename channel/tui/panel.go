// Package tui provides a terminal user interface for the chat panel.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alphaui/alphachat/chat"
)

// Panel is a composable TUI region with its own state, update logic, and view.
// The root App model orchestrates panels without knowing their internals.
type Panel interface {
	Update(tea.Msg) (Panel, tea.Cmd)
	View() string
	SetSize(width, height int)
	SetTheme(Theme)
}

// InputSubmitMsg is emitted when the user presses Enter in the input panel.
type InputSubmitMsg struct{ Text string }

// PromptSelectMsg is emitted when a quick reply is chosen.
type PromptSelectMsg struct{ Index int }

// ReplyMsg carries the outcome of one answer request back into the loop.
type ReplyMsg struct {
	Pending chat.Pending
	Answer  string
	Err     error
}
