package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentic-research/faceplate/internal/bundle"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.Optimize)
	assert.True(t, cfg.Responsive)
	assert.Equal(t, "archive", cfg.Delivery)
	assert.Equal(t, 5*time.Second, cfg.PreviewGrace)

	opts, err := cfg.ExportOptions()
	require.NoError(t, err)
	assert.Equal(t, bundle.DeliveryArchive, opts.Delivery)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "faceplate.yaml")
	require.NoError(t, os.WriteFile(path, []byte("optimize: false\ndelivery: folder\npreview_grace: 2s\n"), 0o644))
	t.Setenv("FACEPLATE_MOCK_RELAY", "true")
	t.Setenv("FACEPLATE_INCLUDE_DEVELOPER_WINDOWS", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.Optimize)
	assert.True(t, cfg.MockRelay)
	assert.Equal(t, 2*time.Second, cfg.PreviewGrace)

	opts, err := cfg.ExportOptions()
	require.NoError(t, err)
	assert.Equal(t, bundle.DeliveryFolder, opts.Delivery)
	assert.True(t, opts.IncludeDeveloperWindows)
	assert.True(t, cfg.PreviewOptions().IncludeDeveloperWindows)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestExportOptions_BadDelivery(t *testing.T) {
	_, err := (&Config{Delivery: "ftp"}).ExportOptions()
	assert.Error(t, err)
}
