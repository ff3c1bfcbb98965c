// Package config handles configuration loading and saving.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alphaui/alphachat/logger"
)

const (
	configFileName = "config.yaml"
	configDirName  = ".alphachat"
)

var configDirOverride string

// SetConfigDir overrides the config directory for the current process.
// Empty value clears the override.
func SetConfigDir(dir string) {
	configDirOverride = strings.TrimSpace(dir)
}

// Config is the root configuration structure.
type Config struct {
	Answer  AnswerConfig  `json:"answer" yaml:"answer"`
	Panel   PanelConfig   `json:"panel" yaml:"panel"`
	Logging LoggingConfig `json:"logging,omitempty" yaml:"logging,omitempty"`
}

// AnswerConfig points at the remote answer service.
type AnswerConfig struct {
	Endpoint string `json:"endpoint" yaml:"endpoint"`                     // defaults to http://127.0.0.1:5000/chat
	Timeout  int    `json:"timeout,omitempty" yaml:"timeout,omitempty"` // seconds, 0 = none
}

// PanelConfig controls the chat panel presentation.
type PanelConfig struct {
	Title    string   `json:"title,omitempty" yaml:"title,omitempty"`
	Prompts  []string `json:"prompts,omitempty" yaml:"prompts,omitempty"`   // quick replies
	Dark     bool     `json:"dark,omitempty" yaml:"dark,omitempty"`         // start in dark theme
	Markdown *bool    `json:"markdown,omitempty" yaml:"markdown,omitempty"` // render bot replies as markdown, off unless set
	Robot    *bool    `json:"robot,omitempty" yaml:"robot,omitempty"`       // show the animated robot
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Enabled *bool  `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	Level   string `json:"level,omitempty" yaml:"level,omitempty"`   // debug, info, warn, error
	Stdout  bool   `json:"stdout,omitempty" yaml:"stdout,omitempty"` // log to stdout
	File    string `json:"file,omitempty" yaml:"file,omitempty"`     // log file path
}

// ConfigDir returns the directory holding config.yaml and logs.
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, configDirName), nil
}

// ConfigPath returns the path of config.yaml.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// Load reads config.yaml. A missing file yields DefaultConfig.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// Save writes the config to config.yaml, creating the directory if needed.
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	logger.Info("config saved", "path", path)
	return nil
}

// BuildLoggerConfig converts the logging section for logger.Init.
func (c *Config) BuildLoggerConfig() logger.Config {
	enabled := true
	if c.Logging.Enabled != nil {
		enabled = *c.Logging.Enabled
	}
	return logger.Config{
		Enabled: enabled,
		Level:   c.Logging.Level,
		Stdout:  c.Logging.Stdout,
		File:    c.Logging.File,
	}
}

// MarkdownEnabled reports whether bot replies are rendered as markdown.
// Replies are shown verbatim unless markdown is switched on explicitly.
func (c *Config) MarkdownEnabled() bool {
	return c.Panel.Markdown != nil && *c.Panel.Markdown
}

// RobotEnabled reports whether the decorative robot is shown.
func (c *Config) RobotEnabled() bool {
	return c.Panel.Robot == nil || *c.Panel.Robot
}
