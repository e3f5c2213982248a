package cmd

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const project = `{
  "version": "3.0.0",
  "name": "Test Synth",
  "windows": [
    {"id": "w1", "name": "Main", "type": "release", "width": 400, "height": 300, "elementIds": ["k1", "k2"]},
    {"id": "w2", "name": "Debug", "type": "developer", "width": 200, "height": 100, "elementIds": ["l1"]}
  ],
  "elements": [
    {"type": "knob", "id": "k1", "name": "Gain", "visible": true, "width": 60, "height": 60},
    {"type": "knob", "id": "k2", "name": "Mix", "visible": true, "x": 80, "width": 60, "height": 60},
    {"type": "label", "id": "l1", "name": "Trace", "visible": true, "width": 100, "height": 20}
  ]
}`

const colliding = `{
  "version": "3.0.0",
  "name": "Broken",
  "windows": [{"id": "w1", "name": "Main", "type": "release", "width": 400, "height": 300, "elementIds": ["a", "b"]}],
  "elements": [
    {"type": "knob", "id": "a", "name": "Gain", "visible": true},
    {"type": "knob", "id": "b", "name": "gain", "visible": true}
  ]
}`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Cleanup(func() {
		resetFlags(rootCmd)
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestValidate_Clean(t *testing.T) {
	out, err := run(t, "validate", writeFile(t, "p.json", project))
	require.NoError(t, err)
	assert.Contains(t, out, "Test Synth")
	assert.Contains(t, out, "ready to export")
}

func TestValidate_CollisionFails(t *testing.T) {
	out, err := run(t, "validate", writeFile(t, "p.json", colliding))
	require.Error(t, err)
	assert.Contains(t, out, "Main/")
	assert.Contains(t, out, "1 error(s)")
}

func TestExport_ArchiveToOutDir(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "export", writeFile(t, "p.json", project), "--out", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported")
	assert.FileExists(t, filepath.Join(dir, "test-synth-faceplate.zip"))
}

func TestExport_FolderRecordsHistory(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(t.TempDir(), "history.db")
	_, err := run(t, "export", writeFile(t, "p.json", project), "--folder", "--out", dir, "--history", db, "--mock-relay")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "index.html"))
	assert.FileExists(t, filepath.Join(dir, "mock-relay.js"))

	out, err := run(t, "history", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Test Synth")
	assert.Contains(t, out, "Main")
}

func TestExport_BlockedByValidation(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "export", writeFile(t, "p.json", colliding), "--out", dir)
	require.Error(t, err)
	assert.Contains(t, out, "Main/")
	assert.NoFileExists(t, filepath.Join(dir, "broken-faceplate.zip"))
}

func TestHistory_RequiresDB(t *testing.T) {
	_, err := run(t, "history")
	assert.Error(t, err)
}

func TestInspect_Query(t *testing.T) {
	out, err := run(t, "inspect", writeFile(t, "p.json", project), "$.windows[*].name")
	require.NoError(t, err)
	assert.Contains(t, out, "Main")
	assert.Contains(t, out, "Debug")
}

func TestInspect_Types(t *testing.T) {
	out, err := run(t, "inspect", writeFile(t, "p.json", project))
	require.NoError(t, err)
	assert.Regexp(t, `knob\s+2`, out)
	assert.Regexp(t, `label\s+1`, out)
}

func TestOptimize_Write(t *testing.T) {
	svg := `<?xml version="1.0"?>
<!-- exported by an editor -->
<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">
  <circle id="knob-indicator-1" cx="50.000" cy="50.000" r="40.000"/>
</svg>`
	path := writeFile(t, "knob.svg", svg)
	out, err := run(t, "optimize", "--write", path)
	require.NoError(t, err)
	assert.Contains(t, out, "saved")

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Less(t, len(got), len(svg))
	assert.Contains(t, string(got), `id="knob-indicator-1"`)
}

func TestOptimize_ReportsFailures(t *testing.T) {
	_, err := run(t, "optimize", writeFile(t, "bad.svg", "<svg"))
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLevel("WARN"))
	assert.Equal(t, slog.LevelInfo, parseLevel("nonsense"))
}
