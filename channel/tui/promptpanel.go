package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PromptPanel lists the quick replies. While focused, arrows move the
// selection and Enter picks it.
type PromptPanel struct {
	prompts  []string
	selected int
	focused  bool
	theme    Theme
	width    int
}

// NewPromptPanel creates a prompt panel for the given quick replies.
func NewPromptPanel(prompts []string, theme Theme) *PromptPanel {
	return &PromptPanel{prompts: prompts, theme: theme}
}

func (p *PromptPanel) Update(msg tea.Msg) (Panel, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok || !p.focused || len(p.prompts) == 0 {
		return p, nil
	}
	switch km.String() {
	case "up", "left", "k", "h":
		p.selected = (p.selected - 1 + len(p.prompts)) % len(p.prompts)
	case "down", "right", "j", "l":
		p.selected = (p.selected + 1) % len(p.prompts)
	case "enter", " ":
		idx := p.selected
		return p, func() tea.Msg { return PromptSelectMsg{Index: idx} }
	}
	return p, nil
}

func (p *PromptPanel) View() string {
	lines := make([]string, len(p.prompts))
	for i, q := range p.prompts {
		label := fmt.Sprintf(" ? %s ", q)
		style := p.theme.Prompt
		if p.focused && i == p.selected {
			style = p.theme.PromptSelected
		}
		hint := ""
		if i < 9 {
			hint = p.theme.Muted.Render(fmt.Sprintf("alt+%d", i+1))
		}
		line := style.Render(label)
		if gap := p.width - lipgloss.Width(line) - lipgloss.Width(hint); gap > 0 {
			line += strings.Repeat(" ", gap) + hint
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func (p *PromptPanel) SetSize(width, _ int) { p.width = width }

func (p *PromptPanel) SetTheme(t Theme) { p.theme = t }

// Height is the number of rows the panel needs.
func (p *PromptPanel) Height() int { return len(p.prompts) }

// SetFocused toggles keyboard focus.
func (p *PromptPanel) SetFocused(f bool) { p.focused = f }

// Selected returns the highlighted prompt index.
func (p *PromptPanel) Selected() int { return p.selected }
