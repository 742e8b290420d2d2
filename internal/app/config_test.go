package app

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-session-secret")
	t.Setenv("CSRF_SECRET", "test-csrf-secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.AppAddr)
	require.Equal(t, []string{"Zarkent Filiali", "Nabrejniy filiali"}, cfg.Branches)
	require.Equal(t, "Zarkent Filiali", cfg.DefaultBranch())
	require.True(t, cfg.ValidBranch("Nabrejniy filiali"))
	require.False(t, cfg.ValidBranch("Toshkent"))
	require.False(t, cfg.IsProduction())
}

func TestLoadConfigRejectsEmptySecrets(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")
	t.Setenv("CSRF_SECRET", "")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestLoadConfigCustomBranches(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-session-secret")
	t.Setenv("CSRF_SECRET", "test-csrf-secret")
	t.Setenv("BRANCHES", "Birinchi,Ikkinchi,Uchinchi")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, []string{"Birinchi", "Ikkinchi", "Uchinchi"}, cfg.Branches)
	require.Equal(t, "Birinchi", cfg.DefaultBranch())
}
