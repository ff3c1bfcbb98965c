package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap holds the App level bindings. Enter is handled by the focused panel.
type KeyMap struct {
	Quit        key.Binding
	Send        key.Binding
	ToggleTheme key.Binding
	Reset       key.Binding
	NextFocus   key.Binding
	PrevFocus   key.Binding
	ScrollUp    key.Binding
	ScrollDown  key.Binding
	Prompts     []key.Binding
}

// DefaultKeyMap returns the bindings with one alt+N shortcut per prompt.
func DefaultKeyMap(prompts int) KeyMap {
	km := KeyMap{
		Quit:        key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
		Send:        key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("enter", "send")),
		ToggleTheme: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "theme")),
		Reset:       key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset")),
		NextFocus:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "quick replies")),
		PrevFocus:   key.NewBinding(key.WithKeys("shift+tab")),
		ScrollUp:    key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup/pgdn", "scroll")),
		ScrollDown:  key.NewBinding(key.WithKeys("pgdown")),
	}
	for i := 0; i < prompts && i < 9; i++ {
		k := "alt+" + string(rune('1'+i))
		km.Prompts = append(km.Prompts, key.NewBinding(key.WithKeys(k)))
	}
	if len(km.Prompts) > 0 {
		km.Prompts[0].SetHelp("alt+1…", "ask")
	}
	return km
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	b := []key.Binding{k.Send, k.NextFocus}
	if len(k.Prompts) > 0 {
		b = append(b, k.Prompts[0])
	}
	return append(b, k.ToggleTheme, k.Reset, k.ScrollUp, k.Quit)
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// promptIndex returns the prompt bound to the key, or -1.
func (k KeyMap) promptIndex(msg tea.KeyMsg) int {
	for i, b := range k.Prompts {
		if key.Matches(msg, b) {
			return i
		}
	}
	return -1
}
