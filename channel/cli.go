package channel

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alphaui/alphachat/chat"
	"github.com/alphaui/alphachat/logger"
)

const plainPrompt = "you> "

// plainFrontend drives the panel line by line, for pipes and dumb terminals.
// Each question is answered before the next line is read.
type plainFrontend struct {
	opts  Options
	panel *chat.Panel
}

func newPlainFrontend(opts Options) *plainFrontend {
	return &plainFrontend{
		opts:  opts,
		panel: chat.NewPanel(opts.Panel),
	}
}

func (f *plainFrontend) Name() string { return "plain" }

func (f *plainFrontend) Run(ctx context.Context) error {
	logger.Info("chat panel started", "frontend", f.Name())
	f.printf("%s\n", f.opts.Title)
	for i, p := range f.panel.Prompts() {
		f.printf("  /%d  %s\n", i+1, p)
	}

	scanner := bufio.NewScanner(f.opts.In)
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		f.printf("%s", plainPrompt)
		if !scanner.Scan() {
			f.printf("\n")
			break
		}
		if quit := f.handleLine(ctx, scanner.Text()); quit {
			f.printf("Goodbye!\n")
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	logger.Info("chat panel closed", "messages", f.panel.Len())
	return nil
}

// handleLine applies one input line and reports whether the user asked to
// leave.
func (f *plainFrontend) handleLine(ctx context.Context, line string) bool {
	switch cmd := strings.TrimSpace(line); cmd {
	case "/quit", "/exit":
		return true
	case "/theme":
		f.panel.ToggleTheme()
		f.printf("theme: %s\n", themeName(f.panel.Dark()))
		return false
	case "/reset":
		f.panel.Reset()
		f.printf("conversation cleared\n")
		return false
	default:
		if idx, ok := promptCommand(cmd); ok {
			pending, ok := f.panel.SubmitPrompt(idx)
			if !ok {
				f.printf("no such prompt: %s (choose 1-%d)\n", cmd, len(f.panel.Prompts()))
				return false
			}
			f.settle(ctx, pending, ok)
			return false
		}
	}

	f.panel.SetDraft(line)
	pending, ok := f.panel.SubmitDraft()
	f.settle(ctx, pending, ok)
	return false
}

func (f *plainFrontend) settle(ctx context.Context, pending chat.Pending, ok bool) {
	if !ok {
		return
	}
	f.printf("bot is typing...\n")
	answer, err := f.opts.Asker.Ask(ctx, pending.Question)
	if !f.panel.Settle(pending, answer, err) {
		return
	}
	log := f.panel.Log()
	f.printf("bot> %s\n", log[len(log)-1].Text)
}

func (f *plainFrontend) printf(format string, args ...any) {
	fmt.Fprintf(f.opts.Out, format, args...)
}

// promptCommand parses "/N" into a zero-based prompt index. Any integer is
// accepted; range checking is left to the panel.
func promptCommand(s string) (int, bool) {
	if !strings.HasPrefix(s, "/") {
		return 0, false
	}
	n, err := strconv.Atoi(s[1:])
	if err != nil {
		return 0, false
	}
	return n - 1, true
}

func themeName(dark bool) string {
	if dark {
		return "dark"
	}
	return "light"
}
