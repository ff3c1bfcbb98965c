package channel

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alphaui/alphachat/channel/tui"
	"github.com/alphaui/alphachat/chat"
	"github.com/alphaui/alphachat/logger"
)

// tuiFrontend runs the chat panel as a bubbletea program.
type tuiFrontend struct {
	opts Options
}

func newTUIFrontend(opts Options) *tuiFrontend {
	return &tuiFrontend{opts: opts}
}

func (f *tuiFrontend) Name() string { return "tui" }

func (f *tuiFrontend) Run(ctx context.Context) error {
	app := tui.NewApp(ctx, chat.NewPanel(f.opts.Panel), f.opts.Asker, tui.Options{
		Title:    f.opts.Title,
		Markdown: f.opts.Markdown,
		Robot:    f.opts.Robot,
	})
	program := tea.NewProgram(app,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
		tea.WithInput(f.opts.In),
		tea.WithOutput(f.opts.Out),
	)

	// Keep log lines off the alternate screen; the log file still gets them.
	logger.Intercept(io.Discard)
	defer logger.Restore()

	logger.Info("chat panel started", "frontend", f.Name())
	_, err := program.Run()
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("tui: %w", err)
	}
	logger.Info("chat panel closed", "messages", app.Core().Len())
	return nil
}
