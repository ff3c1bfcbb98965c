package cmd

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/alphaui/alphachat/config"
)

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Create the alphachat configuration",
	Long:  `Create the alphachat configuration directory and config.yaml interactively.`,
	RunE:  runOnboard,
}

func init() {
	rootCmd.AddCommand(onboardCmd)
}

func runOnboard(_ *cobra.Command, _ []string) error {
	configPath, err := config.ConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(configPath); err == nil {
		fmt.Println("Config already exists at:", configPath)
		fmt.Println("To reconfigure, edit the file directly or delete it first.")
		return nil
	}

	cfg := config.DefaultConfig()
	var (
		endpoint = cfg.Answer.Endpoint
		title    = cfg.Panel.Title
		dark     = cfg.Panel.Dark
		markdown = false
	)

	err = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Answer service URL").
				Description("Questions are posted here as {\"question\": ...}.").
				Validate(validateEndpoint).
				Value(&endpoint),
			huh.NewInput().
				Title("Panel title").
				Value(&title),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Start in dark theme?").
				Description("Toggle any time with ctrl+t.").
				Value(&dark),
			huh.NewConfirm().
				Title("Render replies as markdown?").
				Description("Off shows replies exactly as the service returns them.").
				Value(&markdown),
		),
	).Run()
	if err != nil {
		return err
	}

	cfg.Answer.Endpoint = strings.TrimSpace(endpoint)
	if t := strings.TrimSpace(title); t != "" {
		cfg.Panel.Title = t
	}
	cfg.Panel.Dark = dark
	cfg.Panel.Markdown = &markdown

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println()
	fmt.Println("alphachat configured.")
	fmt.Println()
	fmt.Println("  Config:", configPath)
	fmt.Println("  Endpoint:", cfg.Answer.Endpoint)
	fmt.Println()
	fmt.Println("Run 'alphachat' to start.")
	return nil
}

func validateEndpoint(s string) error {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("URL must start with http:// or https://")
	}
	if u.Host == "" {
		return fmt.Errorf("URL needs a host")
	}
	return nil
}
