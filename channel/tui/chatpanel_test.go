package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/alphaui/alphachat/chat"
)

// visibleText returns the conversation as a user would read it: no escape
// codes, whitespace runs collapsed.
func visibleText(p *ChatPanel) string {
	return strings.Join(strings.Fields(ansi.Strip(p.View())), " ")
}

func TestRepliesShownVerbatimByDefault(t *testing.T) {
	replies := []string{
		"Tag <b>bold</b> here",
		"# 1 priority",
		"Use **reset** link",
		"_under_ `code` [x](y)",
	}
	for _, reply := range replies {
		app := newTestApp(echoAsker(reply))
		app.inputPanel.SetValue("q")
		drive(app, enter())

		if got := visibleText(app.chatPanel); !strings.Contains(got, "bot › "+reply) {
			t.Errorf("reply %q rendered as %q", reply, got)
		}
	}
}

func TestMarkdownRepliesAcrossThemesAndResize(t *testing.T) {
	const reply = "Open weekdays nine to five"
	tests := []struct {
		name string
		dark bool
	}{
		{"light", false},
		{"dark", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core := chat.NewPanel(chat.Options{Dark: tt.dark})
			app := NewApp(context.Background(), core, echoAsker(reply), Options{Title: "Alpha Chatbox", Markdown: true})
			app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
			app.inputPanel.SetValue("hours?")
			drive(app, enter())

			p := app.chatPanel
			if p.theme.Name != tt.name {
				t.Fatalf("theme = %s, want %s", p.theme.Name, tt.name)
			}
			check := func(stage string) {
				t.Helper()
				if !p.markdown || p.renderer == nil {
					t.Fatalf("%s: markdown renderer not in use (markdown=%v)", stage, p.markdown)
				}
				if got := visibleText(p); !strings.Contains(got, reply) {
					t.Fatalf("%s: reply missing from %q", stage, got)
				}
			}
			check("initial")

			before := p.renderer
			drive(app, tea.KeyMsg{Type: tea.KeyCtrlT})
			check("after theme toggle")
			if p.renderer == before {
				t.Fatal("renderer not rebuilt after theme toggle")
			}

			before = p.renderer
			app.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
			check("after resize")
			if p.renderer == before {
				t.Fatal("renderer not rebuilt after resize")
			}
		})
	}
}

func TestMarkdownFallsBackToPlainText(t *testing.T) {
	theme := ThemeFor(false)
	theme.Name = "no-such-style"
	p := NewChatPanel(theme, true)
	p.SetSize(60, 10)
	p.Sync([]chat.Message{chat.BotMessage("**kept** as typed")}, false)

	if p.markdown {
		t.Fatal("markdown still enabled after renderer failure")
	}
	if got := visibleText(p); !strings.Contains(got, "**kept** as typed") {
		t.Fatalf("plain fallback missing, got %q", got)
	}
}
