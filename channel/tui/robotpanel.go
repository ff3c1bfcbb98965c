package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	robotWidth    = 16
	robotMinWidth = 72
	robotInterval = 600 * time.Millisecond
)

var robotFrames = [][]string{
	{
		"   ┌──────┐   ",
		"   │ ◉  ◉ │   ",
		"   │  ──  │   ",
		"   └─┬──┬─┘   ",
		"  ┌──┴──┴──┐  ",
		" ─┤  ALPHA ├─ ",
		"  └─┬────┬─┘  ",
		"    ┘    └    ",
	},
	{
		"   ┌──────┐   ",
		"   │ ─  ─ │   ",
		"   │  ──  │   ",
		"   └─┬──┬─┘   ",
		"  ┌──┴──┴──┐  ",
		" \\┤  ALPHA ├/ ",
		"  └─┬────┬─┘  ",
		"    ┘    └    ",
	},
	{
		"   ┌──────┐   ",
		"   │ ◉  ◉ │   ",
		"   │  ◡◡  │   ",
		"   └─┬──┬─┘   ",
		"  ┌──┴──┴──┐  ",
		" ─┤  ALPHA ├─ ",
		"  └─┬────┬─┘  ",
		"    ┘    └    ",
	},
}

type robotTickMsg struct{}

// RobotPanel is a looping decorative animation beside the conversation.
type RobotPanel struct {
	enabled bool
	frame   int
	theme   Theme
	height  int
}

// NewRobotPanel creates the robot panel. A disabled panel never ticks.
func NewRobotPanel(enabled bool, theme Theme) *RobotPanel {
	return &RobotPanel{enabled: enabled, theme: theme}
}

// Init starts the animation loop.
func (p *RobotPanel) Init() tea.Cmd {
	if !p.enabled {
		return nil
	}
	return robotTick()
}

func robotTick() tea.Cmd {
	return tea.Tick(robotInterval, func(time.Time) tea.Msg { return robotTickMsg{} })
}

func (p *RobotPanel) Update(msg tea.Msg) (Panel, tea.Cmd) {
	if _, ok := msg.(robotTickMsg); ok && p.enabled {
		p.frame = (p.frame + 1) % len(robotFrames)
		return p, robotTick()
	}
	return p, nil
}

func (p *RobotPanel) View() string {
	lines := robotFrames[p.frame]
	if p.height > 0 && p.height < len(lines) {
		lines = lines[:p.height]
	}
	return p.theme.Robot.Render(strings.Join(lines, "\n"))
}

func (p *RobotPanel) SetSize(_, height int) { p.height = height }

func (p *RobotPanel) SetTheme(t Theme) { p.theme = t }

// Visible reports whether the robot fits next to a panel of the given width.
func (p *RobotPanel) Visible(totalWidth int) bool {
	return p.enabled && totalWidth >= robotMinWidth
}
