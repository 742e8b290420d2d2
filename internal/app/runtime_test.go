package app

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTestModeFollowsEnv(t *testing.T) {
	t.Setenv(testModeEnv, "1")
	RefreshTestMode()
	require.True(t, InTestMode())

	t.Setenv(testModeEnv, "")
	RefreshTestMode()
	require.False(t, InTestMode())
}
