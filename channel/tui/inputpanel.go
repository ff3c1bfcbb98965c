package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const inputPlaceholder = "Type your question..."

// InputPanel provides the single-line draft input.
type InputPanel struct {
	input         textinput.Model
	width, height int
}

// NewInputPanel creates a focused input panel with the given prompt.
func NewInputPanel(prompt string, theme Theme) *InputPanel {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.Placeholder = inputPlaceholder
	ti.Focus()
	p := &InputPanel{input: ti}
	p.SetTheme(theme)
	return p
}

// Update emits InputSubmitMsg on Enter. The text is not cleared here: the
// App resets the field once the draft has actually been dispatched.
func (p *InputPanel) Update(msg tea.Msg) (Panel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEnter {
			text := p.input.Value()
			return p, func() tea.Msg { return InputSubmitMsg{Text: text} }
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p *InputPanel) View() string {
	return p.input.View()
}

func (p *InputPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.input.Width = max(width-len([]rune(p.input.Prompt))-1, 1)
}

func (p *InputPanel) SetTheme(t Theme) {
	p.input.PromptStyle = t.User
	p.input.PlaceholderStyle = t.Muted
	p.input.TextStyle = t.Prompt
}

// Value returns the text currently in the field.
func (p *InputPanel) Value() string { return p.input.Value() }

// SetValue replaces the text in the field.
func (p *InputPanel) SetValue(s string) { p.input.SetValue(s) }

// Reset clears the field.
func (p *InputPanel) Reset() { p.input.Reset() }

// Focus gives the field keyboard focus.
func (p *InputPanel) Focus() tea.Cmd { return p.input.Focus() }

// Blur removes keyboard focus.
func (p *InputPanel) Blur() { p.input.Blur() }
