package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zerohunger/internal/domain"
	"zerohunger/internal/matcher"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvKnowledgePath, "")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "tfidf", cfg.Vectorizer.Type)
	assert.False(t, cfg.Vectorizer.Stopwords)
	assert.Equal(t, matcher.DefaultThreshold, cfg.Matcher.Threshold)
	assert.Equal(t, matcher.DefaultFallback, cfg.Matcher.Fallback)
	assert.Equal(t, 1000, cfg.Chat.ThinkingDelayMillis)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Empty(t, cfg.Knowledge.Path)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvKnowledgePath, "")

	path := writeConfig(t, "matcher:\n  threshold: 0.35\nlog:\n  format: text\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.35, cfg.Matcher.Threshold)
	assert.Equal(t, matcher.DefaultFallback, cfg.Matcher.Fallback)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 1000, cfg.Chat.ThinkingDelayMillis)
}

func TestLoadExplicitZeroDelay(t *testing.T) {
	path := writeConfig(t, "chat:\n  thinking_delay_ms: 0\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Chat.ThinkingDelayMillis)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvKnowledgePath, "/srv/kb.yaml")

	path := writeConfig(t, "log:\n  level: warn\nknowledge:\n  path: ./kb.yaml\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/srv/kb.yaml", cfg.Knowledge.Path)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := map[string]string{
		"threshold too high": "matcher:\n  threshold: 1.5\n",
		"negative threshold": "matcher:\n  threshold: -0.1\n",
		"negative delay":     "chat:\n  thinking_delay_ms: -5\n",
		"unknown vectorizer": "vectorizer:\n  type: bm25\n",
		"unknown log format": "log:\n  format: xml\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, content))
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "matcher: [unterminated\n"))
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvKnowledgePath, "")

	path := filepath.Join(t.TempDir(), "nested", "dir", "config.yaml")
	cfg := defaultConfig()
	cfg.Vectorizer.Stopwords = true
	cfg.Chat.ThinkingDelayMillis = 250
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadDefaultWritesUserConfig(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvKnowledgePath, "")
	home := t.TempDir()
	t.Setenv("HOME", home)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, path, err := LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "zerohunger", "config.yaml"), path)
	assert.Equal(t, defaultConfig(), cfg)
	assert.FileExists(t, path)
}
