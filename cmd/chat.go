package cmd

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/alphaui/alphachat/answer"
	"github.com/alphaui/alphachat/channel"
	"github.com/alphaui/alphachat/chat"
	"github.com/alphaui/alphachat/config"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Open the chat panel",
	Long: `Open the chat panel. On a terminal this is a full-screen UI; when stdin
is a pipe, questions are read line by line.

Keys (TUI):
  enter        send the draft
  tab          move between input and quick replies
  alt+1..4     ask a quick reply directly
  ctrl+t       toggle light/dark theme
  ctrl+r       clear the conversation
  esc, ctrl+c  quit

Examples:
  alphachat chat
  alphachat chat --endpoint http://localhost:5000/chat --dark
  echo "Where is my order?" | alphachat chat`,
	RunE: runChat,
}

var (
	endpointFlag string
	darkFlag     bool
	plainFlag    bool
)

func init() {
	addChatFlags(chatCmd)
	rootCmd.AddCommand(chatCmd)
}

func addChatFlags(c *cobra.Command) {
	c.Flags().StringVar(&endpointFlag, "endpoint", "", "Override answer service URL")
	c.Flags().BoolVar(&darkFlag, "dark", false, "Start with the dark theme")
	c.Flags().BoolVar(&plainFlag, "plain", false, "Line mode even on a terminal")
}

func runChat(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyChatOverrides(cmd, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fe := channel.New(channel.Options{
		Panel: chat.Options{
			Prompts: cfg.Panel.Prompts,
			Dark:    cfg.Panel.Dark,
		},
		Asker:    newAnswerClient(cfg),
		Title:    cfg.Panel.Title,
		Markdown: cfg.MarkdownEnabled(),
		Robot:    cfg.RobotEnabled(),
		Plain:    plainFlag,
	})
	return fe.Run(ctx)
}

func applyChatOverrides(cmd *cobra.Command, cfg *config.Config) {
	if ep := strings.TrimSpace(endpointFlag); ep != "" {
		cfg.Answer.Endpoint = ep
	}
	if cmd.Flags().Changed("dark") {
		cfg.Panel.Dark = darkFlag
	}
}

func newAnswerClient(cfg *config.Config) *answer.Client {
	return answer.NewClient(answer.Config{
		Endpoint: cfg.Answer.Endpoint,
		Timeout:  time.Duration(cfg.Answer.Timeout) * time.Second,
	})
}
