package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alphaui/alphachat/chat"
	"github.com/alphaui/alphachat/logger"
)

const inputPrompt = "› "

type focusArea int

const (
	focusInput focusArea = iota
	focusPrompts
)

// Options configures the App presentation.
type Options struct {
	Title    string
	Markdown bool
	Robot    bool
}

// App is the root bubbletea model that orchestrates panels and layout.
// It owns the chat.Panel state; every mutation happens inside Update.
type App struct {
	ctx   context.Context
	core  *chat.Panel
	asker chat.Asker
	title string

	chatPanel   *ChatPanel
	promptPanel *PromptPanel
	inputPanel  *InputPanel
	robotPanel  *RobotPanel

	keys  KeyMap
	help  help.Model
	theme Theme
	focus focusArea

	width, height int
	quitting      bool
}

// NewApp creates the root TUI model around a mounted chat panel.
func NewApp(ctx context.Context, core *chat.Panel, asker chat.Asker, opts Options) *App {
	theme := ThemeFor(core.Dark())
	prompts := core.Prompts()
	return &App{
		ctx:         ctx,
		core:        core,
		asker:       asker,
		title:       opts.Title,
		chatPanel:   NewChatPanel(theme, opts.Markdown),
		promptPanel: NewPromptPanel(prompts, theme),
		inputPanel:  NewInputPanel(inputPrompt, theme),
		robotPanel:  NewRobotPanel(opts.Robot, theme),
		keys:        DefaultKeyMap(len(prompts)),
		help:        help.New(),
		theme:       theme,
	}
}

func (m *App) Init() tea.Cmd {
	return tea.Batch(m.inputPanel.Focus(), m.robotPanel.Init())
}

func (m *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.recalcLayout()
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case InputSubmitMsg:
		return m, m.submitDraft(msg.Text)

	case PromptSelectMsg:
		return m, m.dispatch(m.core.SubmitPrompt(msg.Index))

	case ReplyMsg:
		if m.quitting {
			return m, nil
		}
		if !m.core.Settle(msg.Pending, msg.Answer, msg.Err) {
			logger.Debug("dropping reply from a previous session", "question", msg.Pending.Question)
			return m, nil
		}
		return m, m.sync()

	case robotTickMsg:
		_, cmd := m.robotPanel.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		_, cmd := m.chatPanel.Update(msg)
		return m, cmd
	}

	// Spinner ticks go to the conversation, cursor blinks to the input.
	_, chatCmd := m.chatPanel.Update(msg)
	_, inputCmd := m.inputPanel.Update(msg)
	return m, tea.Batch(chatCmd, inputCmd)
}

func (m *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit
	case key.Matches(msg, m.keys.ToggleTheme):
		m.core.ToggleTheme()
		m.applyTheme()
		return nil
	case key.Matches(msg, m.keys.Reset):
		m.core.Reset()
		m.inputPanel.Reset()
		m.applyTheme()
		return m.sync()
	case key.Matches(msg, m.keys.Send):
		return m.submitDraft(m.inputPanel.Value())
	case key.Matches(msg, m.keys.NextFocus), key.Matches(msg, m.keys.PrevFocus):
		return m.toggleFocus()
	case key.Matches(msg, m.keys.ScrollUp), key.Matches(msg, m.keys.ScrollDown):
		_, cmd := m.chatPanel.Update(msg)
		return cmd
	}
	if idx := m.keys.promptIndex(msg); idx >= 0 {
		return m.dispatch(m.core.SubmitPrompt(idx))
	}

	if m.focus == focusPrompts {
		_, cmd := m.promptPanel.Update(msg)
		return cmd
	}
	_, cmd := m.inputPanel.Update(msg)
	m.core.SetDraft(m.inputPanel.Value())
	return cmd
}

// submitDraft sends the draft text. The field is cleared as soon as the
// request is dispatched, not when the reply arrives.
func (m *App) submitDraft(text string) tea.Cmd {
	m.core.SetDraft(text)
	pending, ok := m.core.SubmitDraft()
	if ok && m.inputPanel.Value() == text {
		m.inputPanel.Reset()
	}
	return m.dispatch(pending, ok)
}

func (m *App) dispatch(pending chat.Pending, ok bool) tea.Cmd {
	if !ok {
		return nil
	}
	return tea.Batch(m.ask(pending), m.sync())
}

// ask runs one request off the event loop. Requests are never cancelled and
// may overlap; each settles in arrival order.
func (m *App) ask(pending chat.Pending) tea.Cmd {
	ctx, asker := m.ctx, m.asker
	return func() tea.Msg {
		answer, err := asker.Ask(ctx, pending.Question)
		return ReplyMsg{Pending: pending, Answer: answer, Err: err}
	}
}

func (m *App) sync() tea.Cmd {
	return m.chatPanel.Sync(m.core.Log(), m.core.Waiting())
}

func (m *App) toggleFocus() tea.Cmd {
	if m.focus == focusInput {
		m.focus = focusPrompts
		m.inputPanel.Blur()
		m.promptPanel.SetFocused(true)
		return nil
	}
	m.focus = focusInput
	m.promptPanel.SetFocused(false)
	return m.inputPanel.Focus()
}

func (m *App) applyTheme() {
	m.theme = ThemeFor(m.core.Dark())
	for _, p := range []Panel{m.chatPanel, m.promptPanel, m.inputPanel, m.robotPanel} {
		p.SetTheme(m.theme)
	}
	m.help.Styles.ShortKey = m.theme.User
	m.help.Styles.ShortDesc = m.theme.Muted
	m.help.Styles.ShortSeparator = m.theme.Muted
}

func (m *App) View() string {
	if m.width == 0 || m.height == 0 {
		return "initializing..."
	}

	mainW := m.mainWidth()
	sep := m.theme.Separator.Render(strings.Repeat("─", mainW))
	header := m.theme.Header.Width(mainW).Render(m.title + " " + m.theme.Glyph)

	body := lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.chatPanel.View(),
		sep,
		m.promptPanel.View(),
		sep,
		m.inputPanel.View(),
		m.help.View(m.keys),
	)
	if m.robotPanel.Visible(m.width) {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, " ", m.robotPanel.View())
	}
	return m.theme.Root.Width(m.width).Height(m.height).Render(body)
}

func (m *App) mainWidth() int {
	if m.robotPanel.Visible(m.width) {
		return m.width - robotWidth - 1
	}
	return m.width
}

func (m *App) recalcLayout() {
	const inputH = 1
	const helpH = 1
	const headerH = 1
	const sepLines = 2

	mainW := m.mainWidth()
	promptH := m.promptPanel.Height()
	chatH := max(m.height-headerH-sepLines-promptH-inputH-helpH, 2)

	m.chatPanel.SetSize(mainW, chatH)
	m.promptPanel.SetSize(mainW, promptH)
	m.inputPanel.SetSize(mainW, inputH)
	m.robotPanel.SetSize(robotWidth, m.height)
	m.help.Width = mainW
	m.applyTheme()
}

// Core exposes the chat state, mainly for tests and front-ends.
func (m *App) Core() *chat.Panel { return m.core }
