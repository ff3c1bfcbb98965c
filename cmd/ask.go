package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alphaui/alphachat/chat"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a single question and print the reply",
	Long: `Post one question to the answer service and print the reply.
Failures print the same apology the chat panel shows.

Examples:
  alphachat ask "How can I reset my password?"
  alphachat ask -p 3`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAsk,
}

var askPromptFlag int

func init() {
	askCmd.Flags().IntVarP(&askPromptFlag, "prompt", "p", 0, "Ask quick reply N (1-based) instead of a question")
	askCmd.Flags().StringVar(&endpointFlag, "endpoint", "", "Override answer service URL")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyChatOverrides(cmd, cfg)

	panel := chat.NewPanel(chat.Options{Prompts: cfg.Panel.Prompts})
	var (
		pending chat.Pending
		ok      bool
	)
	switch {
	case askPromptFlag > 0:
		pending, ok = panel.SubmitPrompt(askPromptFlag - 1)
		if !ok {
			return fmt.Errorf("--prompt must be between 1 and %d", len(panel.Prompts()))
		}
	case len(args) == 1:
		pending, ok = panel.Submit(args[0])
	}
	if !ok {
		return fmt.Errorf("a non-blank question or --prompt is required")
	}

	reply := chat.Reply(context.Background(), newAnswerClient(cfg), pending.Question)
	fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(reply, "\n"))
	return nil
}
