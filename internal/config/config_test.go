package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gophi/domain/phi"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, phi.DefaultPrecision, cfg.Precision)
	assert.False(t, cfg.ReadableStrings)
	assert.False(t, cfg.SingleNodesWithSelfLoopsHavePhi)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GOPHI_PRECISION", "0.001")
	t.Setenv("GOPHI_READABLE_STRINGS", "true")
	t.Setenv("GOPHI_SINGLE_NODES_WITH_SELFLOOPS_HAVE_PHI", "1")
	t.Setenv("GOPHI_DATABASE_URL", "postgres://localhost/gophi_test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 0.001, cfg.Precision)
	assert.True(t, cfg.ReadableStrings)
	assert.True(t, cfg.SingleNodesWithSelfLoopsHavePhi)
	assert.Equal(t, "postgres://localhost/gophi_test", cfg.DatabaseURL)
}

func TestLoadRejectsBadPrecision(t *testing.T) {
	t.Setenv("GOPHI_PRECISION", "not-a-number")
	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed for GOPHI_PRECISION")

	t.Setenv("GOPHI_PRECISION", "-1")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoadIgnoresBadBool(t *testing.T) {
	t.Setenv("GOPHI_READABLE_STRINGS", "maybe")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.ReadableStrings)
}

func TestApply(t *testing.T) {
	cfg := Default()
	cfg.Precision = 0.01
	cfg.ReadableStrings = true

	cfg.Apply()
	defer Default().Apply()

	assert.True(t, phi.PhiEq(0.5, 0.505))
	assert.True(t, phi.Readable())
}
