package config

import (
	"strings"

	"github.com/alphaui/alphachat/answer"
	"github.com/alphaui/alphachat/chat"
)

const (
	defaultTitle    = "Alpha Chatbox"
	defaultLogLevel = "info"
	defaultLogFile  = "logs/alphachat.log"
)

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Answer: AnswerConfig{
			Endpoint: answer.DefaultEndpoint,
		},
		Panel: PanelConfig{
			Title:   defaultTitle,
			Prompts: append([]string(nil), chat.DefaultPrompts...),
		},
		Logging: defaultLoggingConfig(),
	}
}

func defaultLoggingConfig() LoggingConfig {
	enabled := true
	return LoggingConfig{
		Enabled: &enabled,
		Level:   defaultLogLevel,
		File:    defaultLogFile,
	}
}

func (c *Config) applyDefaults() {
	c.Answer.Endpoint = strings.TrimSpace(c.Answer.Endpoint)
	if c.Answer.Endpoint == "" {
		c.Answer.Endpoint = answer.DefaultEndpoint
	}
	if c.Answer.Timeout < 0 {
		c.Answer.Timeout = 0
	}

	if strings.TrimSpace(c.Panel.Title) == "" {
		c.Panel.Title = defaultTitle
	}
	prompts := c.Panel.Prompts[:0]
	for _, p := range c.Panel.Prompts {
		if strings.TrimSpace(p) != "" {
			prompts = append(prompts, p)
		}
	}
	c.Panel.Prompts = prompts
	if len(c.Panel.Prompts) == 0 {
		c.Panel.Prompts = append([]string(nil), chat.DefaultPrompts...)
	}

	def := defaultLoggingConfig()
	if c.Logging == (LoggingConfig{}) {
		c.Logging = def
		return
	}
	if c.Logging.Level == "" {
		c.Logging.Level = def.Level
	}
	if c.Logging.File == "" && !c.Logging.Stdout {
		c.Logging.File = def.File
	}
	if c.Logging.Enabled == nil {
		c.Logging.Enabled = def.Enabled
	}
}
