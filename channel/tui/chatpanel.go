package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/alphaui/alphachat/chat"
	"github.com/alphaui/alphachat/logger"
)

const typingLabel = "typing…"

// ChatPanel displays the conversation log in a scrollable viewport with a
// typing indicator on its last row.
type ChatPanel struct {
	viewport viewport.Model
	spinner  spinner.Model
	messages []chat.Message
	waiting  bool

	theme    Theme
	markdown bool
	renderer *glamour.TermRenderer
	width    int
}

// NewChatPanel creates a chat panel. With markdown set, bot replies are
// rendered through glamour.
func NewChatPanel(theme Theme, markdown bool) *ChatPanel {
	vp := viewport.New(0, 0)
	vp.SetContent("")
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return &ChatPanel{
		viewport: vp,
		spinner:  sp,
		theme:    theme,
		markdown: markdown,
	}
}

// Sync brings the panel in line with the conversation. The viewport jumps to
// the latest message whenever the log length changes.
func (p *ChatPanel) Sync(log []chat.Message, waiting bool) tea.Cmd {
	startSpin := waiting && !p.waiting
	p.waiting = waiting
	if len(log) != len(p.messages) {
		p.messages = log
		p.refresh()
		p.viewport.GotoBottom()
	}
	if startSpin {
		return p.spinner.Tick
	}
	return nil
}

func (p *ChatPanel) Update(msg tea.Msg) (Panel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !p.waiting {
			return p, nil
		}
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd
	}
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

func (p *ChatPanel) View() string {
	typing := ""
	if p.waiting {
		typing = p.spinner.View() + p.theme.Typing.Render(typingLabel)
	}
	return lipgloss.JoinVertical(lipgloss.Left, p.viewport.View(), typing)
}

func (p *ChatPanel) SetSize(width, height int) {
	if width != p.width {
		p.renderer = nil
	}
	p.width = width
	p.viewport.Width = width
	p.viewport.Height = max(height-1, 1)
	p.refresh()
}

func (p *ChatPanel) SetTheme(t Theme) {
	p.theme = t
	p.spinner.Style = t.Typing
	p.renderer = nil
	p.refresh()
}

// refresh re-renders every message into the viewport content.
func (p *ChatPanel) refresh() {
	blocks := make([]string, 0, len(p.messages))
	for _, m := range p.messages {
		blocks = append(blocks, p.renderMessage(m))
	}
	p.viewport.SetContent(strings.Join(blocks, "\n"))
}

func (p *ChatPanel) renderMessage(m chat.Message) string {
	wrap := lipgloss.NewStyle()
	if p.width > 4 {
		wrap = wrap.Width(p.width - 2)
	}
	if m.IsUser() {
		return wrap.Render(p.theme.User.Render("you › ") + m.Text)
	}
	body := m.Text
	if p.markdown {
		body = p.renderMarkdown(body)
	}
	return wrap.Render(p.theme.Bot.Render("bot › ") + body)
}

// renderMarkdown renders with glamour, falling back to plain text on error.
func (p *ChatPanel) renderMarkdown(text string) string {
	if p.renderer == nil {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(p.theme.Name),
			glamour.WithWordWrap(max(p.width-8, 20)),
		)
		if err != nil {
			logger.Warn("markdown renderer unavailable", "err", err)
			p.markdown = false
			return text
		}
		p.renderer = r
	}
	out, err := p.renderer.Render(text)
	if err != nil {
		return text
	}
	return strings.Trim(out, "\n")
}
