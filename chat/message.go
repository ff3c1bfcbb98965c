// Package chat holds the front-end independent state of the chat panel:
// the conversation log, the draft text and the waiting and theme flags.
package chat

import (
	"context"
	"strings"
)

// FallbackReply is shown in place of an answer whenever the answer service
// could not produce one, whatever the cause.
const FallbackReply = "Sorry, I couldn't reach the server."

// Sender identifies who authored a message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message is a single entry of the conversation log.
type Message struct {
	Sender Sender
	Text   string
}

// UserMessage creates a message authored by the user.
func UserMessage(text string) Message {
	return Message{Sender: SenderUser, Text: text}
}

// BotMessage creates a message authored by the bot.
func BotMessage(text string) Message {
	return Message{Sender: SenderBot, Text: text}
}

// IsUser reports whether the message was written by the user.
func (m Message) IsUser() bool { return m.Sender == SenderUser }

// DefaultPrompts are the quick replies offered below the conversation.
var DefaultPrompts = []string{
	"What are your support hours?",
	"How can I reset my password?",
	"Where is my order?",
	"Can I speak to a human agent?",
}

// Asker forwards a question to the answer service.
type Asker interface {
	Ask(ctx context.Context, question string) (string, error)
}

// AskerFunc adapts a plain function to the Asker interface.
type AskerFunc func(ctx context.Context, question string) (string, error)

// Ask calls f.
func (f AskerFunc) Ask(ctx context.Context, question string) (string, error) {
	return f(ctx, question)
}

// Reply asks the question and returns the text a bot message should carry.
// Every failure collapses into FallbackReply.
func Reply(ctx context.Context, a Asker, question string) string {
	answer, err := a.Ask(ctx, question)
	return replyText(answer, err)
}

func replyText(answer string, err error) string {
	if err != nil {
		return FallbackReply
	}
	return answer
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
