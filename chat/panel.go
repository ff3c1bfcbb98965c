package chat

// Options configures a new Panel.
type Options struct {
	Prompts []string // quick replies; DefaultPrompts when empty
	Dark    bool     // initial theme, restored on Reset
}

// Pending describes a question that has been appended to the log and is
// waiting for its reply. It is handed back to Settle once the answer
// service has responded.
type Pending struct {
	Question   string
	Generation uint64
}

// Panel is the state of one mounted chat panel.
//
// Panel is not safe for concurrent use. Front-ends mutate it from a single
// event loop; replies re-enter that loop before they are settled.
type Panel struct {
	log        []Message
	draft      string
	waiting    bool
	dark       bool
	initDark   bool
	prompts    []string
	generation uint64
}

// NewPanel creates a mounted panel with an empty log.
func NewPanel(opts Options) *Panel {
	prompts := opts.Prompts
	if len(prompts) == 0 {
		prompts = DefaultPrompts
	}
	return &Panel{
		dark:     opts.Dark,
		initDark: opts.Dark,
		prompts:  append([]string(nil), prompts...),
	}
}

// Submit appends the question as a user message and marks the panel as
// waiting. Blank questions are ignored and report false.
// The question is kept verbatim; only the blank check trims it.
func (p *Panel) Submit(question string) (Pending, bool) {
	if isBlank(question) {
		return Pending{}, false
	}
	p.log = append(p.log, UserMessage(question))
	p.waiting = true
	return Pending{Question: question, Generation: p.generation}, true
}

// SubmitPrompt submits the quick reply at index. The draft is left untouched.
func (p *Panel) SubmitPrompt(index int) (Pending, bool) {
	if index < 0 || index >= len(p.prompts) {
		return Pending{}, false
	}
	return p.Submit(p.prompts[index])
}

// SubmitDraft submits the draft text and clears it once the question is
// dispatched. A blank draft is a no-op and is left as it is.
func (p *Panel) SubmitDraft() (Pending, bool) {
	pending, ok := p.Submit(p.draft)
	if ok {
		p.draft = ""
	}
	return pending, ok
}

// Settle records the outcome of a pending question: the waiting flag is
// cleared and one bot message is appended, carrying either the answer or
// FallbackReply when err is non-nil.
//
// Replies that belong to an earlier mount (see Reset) are dropped and
// Settle reports false.
func (p *Panel) Settle(pending Pending, answer string, err error) bool {
	if pending.Generation != p.generation {
		return false
	}
	p.waiting = false
	p.log = append(p.log, BotMessage(replyText(answer, err)))
	return true
}

// SetDraft replaces the draft text.
func (p *Panel) SetDraft(text string) { p.draft = text }

// Draft returns the current draft text.
func (p *Panel) Draft() string { return p.draft }

// ToggleTheme flips between the light and dark theme.
func (p *Panel) ToggleTheme() { p.dark = !p.dark }

// Dark reports whether the dark theme is active.
func (p *Panel) Dark() bool { return p.dark }

// Waiting reports whether a reply is pending.
func (p *Panel) Waiting() bool { return p.waiting }

// Prompts returns a copy of the quick replies.
func (p *Panel) Prompts() []string {
	return append([]string(nil), p.prompts...)
}

// Log returns a copy of the conversation in display order.
func (p *Panel) Log() []Message {
	return append([]Message(nil), p.log...)
}

// Len returns the number of messages in the log.
func (p *Panel) Len() int { return len(p.log) }

// Generation identifies the current mount.
func (p *Panel) Generation() uint64 { return p.generation }

// Reset remounts the panel: the log, draft and waiting flag are cleared and
// the theme returns to its initial value. Replies still in flight for the
// previous mount will be dropped by Settle.
func (p *Panel) Reset() {
	p.log = nil
	p.draft = ""
	p.waiting = false
	p.dark = p.initDark
	p.generation++
}
