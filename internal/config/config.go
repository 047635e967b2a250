package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"zerohunger/internal/domain"
	"zerohunger/internal/matcher"
)

// Environment overrides applied after the YAML file is read.
const (
	EnvLogLevel      = "ZEROHUNGER_LOG_LEVEL"
	EnvKnowledgePath = "ZEROHUNGER_KNOWLEDGE_PATH"
)

// VectorizerConfig selects and configures the text vectorizer.
type VectorizerConfig struct {
	Type      string `yaml:"type"`
	Stopwords bool   `yaml:"stopwords"`
}

// MatcherConfig controls when a stored answer is accepted.
type MatcherConfig struct {
	Threshold float64 `yaml:"threshold"`
	Fallback  string  `yaml:"fallback"`
}

// KnowledgeConfig points at an optional YAML knowledge file replacing the
// compiled question/answer tables.
type KnowledgeConfig struct {
	Path string `yaml:"path,omitempty"`
}

// ChatConfig configures the interactive conversation.
type ChatConfig struct {
	ThinkingDelayMillis int `yaml:"thinking_delay_ms"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Path   string `yaml:"path,omitempty"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Vectorizer VectorizerConfig `yaml:"vectorizer"`
	Matcher    MatcherConfig    `yaml:"matcher"`
	Knowledge  KnowledgeConfig  `yaml:"knowledge"`
	Chat       ChatConfig       `yaml:"chat"`
	Log        LogConfig        `yaml:"log"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := defaultConfig()
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, err
	}
	// Keys missing from the file keep their default values.
	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(cfg)
	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/zerohunger/config.yaml.
// If neither exists, it writes defaults to ~/.config/zerohunger/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	applyEnvOverrides(cfg)
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks values that defaults cannot repair.
func (c *AppConfig) Validate() error {
	if c.Matcher.Threshold < 0 || c.Matcher.Threshold >= 1 {
		return domain.WrapError(domain.ErrInvalidInput, "config", fmt.Errorf("matcher.threshold %v outside [0, 1)", c.Matcher.Threshold))
	}
	if c.Chat.ThinkingDelayMillis < 0 {
		return domain.WrapError(domain.ErrInvalidInput, "config", fmt.Errorf("chat.thinking_delay_ms %d is negative", c.Chat.ThinkingDelayMillis))
	}
	switch c.Vectorizer.Type {
	case "tfidf":
	default:
		return domain.WrapError(domain.ErrInvalidInput, "config", fmt.Errorf("unknown vectorizer %q", c.Vectorizer.Type))
	}
	switch c.Log.Format {
	case "json", "text":
	default:
		return domain.WrapError(domain.ErrInvalidInput, "config", fmt.Errorf("unknown log format %q", c.Log.Format))
	}
	return nil
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "zerohunger", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Vectorizer: VectorizerConfig{Type: "tfidf"},
		Matcher:    MatcherConfig{Threshold: matcher.DefaultThreshold, Fallback: matcher.DefaultFallback},
		Chat:       ChatConfig{ThinkingDelayMillis: 1000},
		Log:        LogConfig{Level: "info", Format: "json"},
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Vectorizer.Type == "" {
		cfg.Vectorizer.Type = "tfidf"
	}
	if cfg.Matcher.Threshold == 0 {
		cfg.Matcher.Threshold = matcher.DefaultThreshold
	}
	if cfg.Matcher.Fallback == "" {
		cfg.Matcher.Fallback = matcher.DefaultFallback
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	cfg.Log.Level = envOr(EnvLogLevel, cfg.Log.Level)
	cfg.Knowledge.Path = envOr(EnvKnowledgePath, cfg.Knowledge.Path)
}

func envOr(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}
