package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSubmitAppendsUserMessageVerbatim(t *testing.T) {
	p := NewPanel(Options{})
	inputs := []string{"hi", "  padded  ", "order status", "ünïcode ✓"}
	for _, in := range inputs {
		if _, ok := p.Submit(in); !ok {
			t.Fatalf("Submit(%q) reported false", in)
		}
	}
	want := []Message{
		UserMessage("hi"),
		UserMessage("  padded  "),
		UserMessage("order status"),
		UserMessage("ünïcode ✓"),
	}
	if diff := cmp.Diff(want, p.Log()); diff != "" {
		t.Fatalf("Log() mismatch (-want +got):\n%s", diff)
	}
	if !p.Waiting() {
		t.Fatal("Waiting() = false after submit, want true")
	}
}

func TestSubmitBlankIsNoop(t *testing.T) {
	for _, in := range []string{"", "   ", "\t\n"} {
		p := NewPanel(Options{})
		if _, ok := p.Submit(in); ok {
			t.Fatalf("Submit(%q) reported true", in)
		}
		if p.Len() != 0 {
			t.Fatalf("Submit(%q) grew the log to %d", in, p.Len())
		}
		if p.Waiting() {
			t.Fatalf("Submit(%q) set the waiting flag", in)
		}
	}
}

func TestSettleWithAnswer(t *testing.T) {
	p := NewPanel(Options{})
	pending, _ := p.Submit("hi")
	if !p.Settle(pending, "X", nil) {
		t.Fatal("Settle() = false, want true")
	}
	want := []Message{UserMessage("hi"), BotMessage("X")}
	if diff := cmp.Diff(want, p.Log()); diff != "" {
		t.Fatalf("Log() mismatch (-want +got):\n%s", diff)
	}
	if p.Waiting() {
		t.Fatal("Waiting() = true after settle")
	}
}

func TestSettleWithErrorUsesFallback(t *testing.T) {
	p := NewPanel(Options{})
	pending, _ := p.Submit("hi")
	p.Settle(pending, "ignored", errors.New("connection refused"))
	want := []Message{UserMessage("hi"), BotMessage(FallbackReply)}
	if diff := cmp.Diff(want, p.Log()); diff != "" {
		t.Fatalf("Log() mismatch (-want +got):\n%s", diff)
	}
	if FallbackReply != "Sorry, I couldn't reach the server." {
		t.Fatalf("FallbackReply = %q", FallbackReply)
	}
}

func TestOverlappingRepliesAppendInArrivalOrder(t *testing.T) {
	p := NewPanel(Options{})
	first, _ := p.Submit("one")
	second, _ := p.Submit("two")
	p.Settle(second, "answer two", nil)
	p.Settle(first, "answer one", nil)
	want := []Message{
		UserMessage("one"),
		UserMessage("two"),
		BotMessage("answer two"),
		BotMessage("answer one"),
	}
	if diff := cmp.Diff(want, p.Log()); diff != "" {
		t.Fatalf("Log() mismatch (-want +got):\n%s", diff)
	}
}

func TestSubmitPromptLeavesDraft(t *testing.T) {
	for i, prompt := range DefaultPrompts {
		p := NewPanel(Options{})
		p.SetDraft("half typed")
		pending, ok := p.SubmitPrompt(i)
		if !ok {
			t.Fatalf("SubmitPrompt(%d) = false", i)
		}
		if pending.Question != prompt {
			t.Fatalf("SubmitPrompt(%d) question = %q, want %q", i, pending.Question, prompt)
		}
		if got := p.Log(); len(got) != 1 || got[0] != UserMessage(prompt) {
			t.Fatalf("SubmitPrompt(%d) log = %+v", i, got)
		}
		if p.Draft() != "half typed" {
			t.Fatalf("SubmitPrompt(%d) draft = %q, want untouched", i, p.Draft())
		}
	}
}

func TestSubmitPromptOutOfRange(t *testing.T) {
	p := NewPanel(Options{})
	for _, i := range []int{-1, len(DefaultPrompts)} {
		if _, ok := p.SubmitPrompt(i); ok {
			t.Fatalf("SubmitPrompt(%d) = true, want false", i)
		}
	}
	if p.Len() != 0 {
		t.Fatalf("log length = %d, want 0", p.Len())
	}
}

func TestCustomPrompts(t *testing.T) {
	p := NewPanel(Options{Prompts: []string{"ping"}})
	if diff := cmp.Diff([]string{"ping"}, p.Prompts()); diff != "" {
		t.Fatalf("Prompts() mismatch (-want +got):\n%s", diff)
	}
	pending, ok := p.SubmitPrompt(0)
	if !ok || pending.Question != "ping" {
		t.Fatalf("SubmitPrompt(0) = %+v, %v", pending, ok)
	}
}

func TestSubmitDraftClearsDraftBeforeReply(t *testing.T) {
	p := NewPanel(Options{})
	p.SetDraft("order status")
	pending, ok := p.SubmitDraft()
	if !ok {
		t.Fatal("SubmitDraft() = false")
	}
	if p.Draft() != "" {
		t.Fatalf("Draft() = %q right after dispatch, want empty", p.Draft())
	}
	if pending.Question != "order status" {
		t.Fatalf("pending question = %q", pending.Question)
	}
}

func TestSubmitDraftBlankKeepsDraft(t *testing.T) {
	p := NewPanel(Options{})
	p.SetDraft("   ")
	if _, ok := p.SubmitDraft(); ok {
		t.Fatal("SubmitDraft() = true for blank draft")
	}
	if p.Draft() != "   " {
		t.Fatalf("Draft() = %q, want unchanged", p.Draft())
	}
}

func TestSubmitDraftMatchesSubmit(t *testing.T) {
	viaDraft := NewPanel(Options{})
	viaDraft.SetDraft("order status")
	pd, _ := viaDraft.SubmitDraft()
	viaDraft.Settle(pd, "shipped", nil)

	direct := NewPanel(Options{})
	ps, _ := direct.Submit("order status")
	direct.Settle(ps, "shipped", nil)

	if diff := cmp.Diff(direct.Log(), viaDraft.Log()); diff != "" {
		t.Fatalf("logs differ (-submit +draft):\n%s", diff)
	}
}

func TestToggleThemeIsInvolution(t *testing.T) {
	for _, start := range []bool{false, true} {
		p := NewPanel(Options{Dark: start})
		p.ToggleTheme()
		if p.Dark() == start {
			t.Fatalf("ToggleTheme() from %v did not flip", start)
		}
		p.ToggleTheme()
		if p.Dark() != start {
			t.Fatalf("two toggles from %v ended at %v", start, p.Dark())
		}
	}
}

func TestResetDropsStaleReplies(t *testing.T) {
	p := NewPanel(Options{Dark: true})
	pending, _ := p.Submit("hi")
	p.SetDraft("draft")
	p.ToggleTheme()

	p.Reset()
	if p.Len() != 0 || p.Draft() != "" || p.Waiting() || !p.Dark() {
		t.Fatalf("Reset() left state: len=%d draft=%q waiting=%v dark=%v", p.Len(), p.Draft(), p.Waiting(), p.Dark())
	}
	if p.Settle(pending, "late", nil) {
		t.Fatal("Settle() accepted a reply from before Reset")
	}
	if p.Len() != 0 {
		t.Fatalf("stale reply appended, log = %+v", p.Log())
	}
}

func TestLogReturnsCopy(t *testing.T) {
	p := NewPanel(Options{})
	p.Submit("hi")
	log := p.Log()
	log[0].Text = "mutated"
	if p.Log()[0].Text != "hi" {
		t.Fatal("Log() exposed internal storage")
	}
}

func TestReply(t *testing.T) {
	ok := AskerFunc(func(_ context.Context, q string) (string, error) { return "echo " + q, nil })
	if got := Reply(context.Background(), ok, "hi"); got != "echo hi" {
		t.Fatalf("Reply() = %q", got)
	}
	failing := AskerFunc(func(context.Context, string) (string, error) { return "", errors.New("boom") })
	if got := Reply(context.Background(), failing, "hi"); got != FallbackReply {
		t.Fatalf("Reply() = %q, want fallback", got)
	}
}
