package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yatrat/planner"
)

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, planner.PolicySlice, cfg.Policy())
	assert.Equal(t, 10, cfg.Search.MaxResults)
	assert.Equal(t, planner.MatchSubstring, cfg.IndexOptions().Match)
}

func TestLoadReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("port: \"9999\"\nresolvePolicy: accumulate\nsearch:\n  minQuery: 2\n  maxResults: 8\n  match: prefix\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))
	t.Setenv("YATRAT_CONFIG", path)
	t.Setenv("PORT", "")

	cfg := Load()
	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, planner.PolicyAccumulate, cfg.Policy())
	assert.Equal(t, 2, cfg.Search.MinQuery)
	assert.Equal(t, 8, cfg.Search.MaxResults)
	assert.Equal(t, planner.MatchPrefix, cfg.IndexOptions().Match)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: \"9999\"\n"), 0o644))
	t.Setenv("YATRAT_CONFIG", path)
	t.Setenv("PORT", "7777")
	t.Setenv("SEARCH_MAX_RESULTS", "8")

	cfg := Load()
	assert.Equal(t, "7777", cfg.Port)
	assert.Equal(t, 8, cfg.Search.MaxResults)
}

func TestFrontendOrigins(t *testing.T) {
	t.Setenv("YATRAT_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("FRONTEND_URL", "https://yatrat.example, https://staging.yatrat.example ,")

	cfg := Load()
	origins := cfg.AllowedOrigins()
	assert.Contains(t, origins, "http://localhost:5173")
	assert.Contains(t, origins, "https://yatrat.example")
	assert.Contains(t, origins, "https://staging.yatrat.example")
}

func TestUnknownPolicyFallsBack(t *testing.T) {
	cfg := Default()
	cfg.ResolvePolicy = "something-else"
	assert.Equal(t, planner.PolicySlice, cfg.Policy())
}
