package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "http://localhost:3000", cfg.CMSBaseURL)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL())
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blogfront.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"addr: \":9090\"\ncms_base_url: https://cms.example.com\ncontact_form_id: f123\nsession_hours: 48\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "https://cms.example.com", cfg.CMSBaseURL)
	assert.Equal(t, "f123", cfg.ContactFormID)
	assert.Equal(t, 48*time.Hour, cfg.SessionTTL())
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blogfront.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":9090\"\n"), 0644))

	t.Setenv("BLOGFRONT_ADDR", ":7070")
	t.Setenv("BLOGFRONT_SESSION_HOURS", "6")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Addr)
	assert.Equal(t, 6*time.Hour, cfg.SessionTTL())
}

func TestBadYAMLReported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blogfront.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: [unterminated"), 0644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestNonPositiveSessionHoursResets(t *testing.T) {
	t.Setenv("BLOGFRONT_SESSION_HOURS", "-3")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 24, cfg.SessionHours)
}
