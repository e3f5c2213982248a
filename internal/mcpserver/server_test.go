package mcpserver

import (
	"archive/zip"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentic-research/faceplate/internal/bundle"
	"github.com/agentic-research/faceplate/internal/preview"
	"github.com/agentic-research/faceplate/internal/validate"
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
  "windows": [{"id": "w1", "name": "Main", "type": "release", "width": 400, "height": 300, "elementIds": ["a", "b"]}],
  "elements": [
    {"type": "knob", "id": "a", "name": "Gain", "visible": true},
    {"type": "knob", "id": "b", "name": "gain", "visible": true}
  ]
}`

func writeProject(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "project.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func call(t *testing.T, h func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) *mcp.CallToolResult {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	res, err := h(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

func text(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	switch c := res.Content[0].(type) {
	case mcp.TextContent:
		return c.Text
	case *mcp.TextContent:
		return c.Text
	}
	t.Fatalf("unexpected content %T", res.Content[0])
	return ""
}

func newServer(cfg Config) *Server {
	if cfg.Export == (bundle.Options{}) {
		cfg.Export = bundle.DefaultOptions()
	}
	return New("test", cfg)
}

func TestValidateProject_Valid(t *testing.T) {
	s := newServer(Config{})
	res := call(t, s.validateProject, map[string]any{"path": writeProject(t, project)})
	require.False(t, res.IsError)

	var got validate.Result
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &got))
	assert.True(t, got.Valid)
}

func TestValidateProject_Collision(t *testing.T) {
	s := newServer(Config{})
	res := call(t, s.validateProject, map[string]any{"path": writeProject(t, colliding)})

	var got validate.Result
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &got))
	assert.False(t, got.Valid)
	assert.NotEmpty(t, got.Errors)
}

func TestValidateProject_MissingPath(t *testing.T) {
	s := newServer(Config{})
	res := call(t, s.validateProject, map[string]any{})
	assert.True(t, res.IsError)
}

func TestExportProject_Archive(t *testing.T) {
	out := t.TempDir()
	s := newServer(Config{OutDir: out})
	res := call(t, s.exportProject, map[string]any{"path": writeProject(t, project)})
	require.False(t, res.IsError, text(t, res))

	zr, err := zip.OpenReader(filepath.Join(out, "test-synth-faceplate.zip"))
	require.NoError(t, err)
	defer func() { _ = zr.Close() }()
	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	assert.Contains(t, names, "index.html")
	assert.Contains(t, names, "INTEGRATION.md")
}

func TestExportProject_FolderWindow(t *testing.T) {
	out := t.TempDir()
	s := newServer(Config{})
	res := call(t, s.exportProject, map[string]any{
		"path":   writeProject(t, project),
		"window": "w2",
		"folder": true,
		"out":    out,
	})
	require.False(t, res.IsError, text(t, res))
	assert.FileExists(t, filepath.Join(out, "index.html"))
	assert.FileExists(t, filepath.Join(out, "bindings.js"))
}

func TestExportProject_ValidationFailureIsToolError(t *testing.T) {
	s := newServer(Config{OutDir: t.TempDir()})
	res := call(t, s.exportProject, map[string]any{"path": writeProject(t, colliding)})
	assert.True(t, res.IsError)
	assert.Contains(t, text(t, res), "Please fix these issues before exporting:")
}

func TestPreviewProject_ServesURL(t *testing.T) {
	blobs := preview.NewBlobServer(nil)
	t.Cleanup(func() { _ = blobs.Close(context.Background()) })
	s := newServer(Config{
		Preview:   preview.DefaultOptions(),
		Previewer: &preview.Previewer{Publisher: blobs, Opener: preview.NoOpener{}, Grace: -1},
	})

	res := call(t, s.previewProject, map[string]any{"path": writeProject(t, project)})
	require.False(t, res.IsError, text(t, res))
	url := text(t, res)
	assert.True(t, blobs.Published(url))

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `id="gain"`)
}

func TestPreviewProject_Unavailable(t *testing.T) {
	s := newServer(Config{})
	res := call(t, s.previewProject, map[string]any{"path": writeProject(t, project)})
	assert.True(t, res.IsError)
}

func TestOptimizeSVG(t *testing.T) {
	s := newServer(Config{})
	svg := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">
  <!-- comment -->
  <circle id="knob-indicator-1" cx="50.000" cy="50.000" r="40"/>
</svg>`
	res := call(t, s.optimizeSVG, map[string]any{"svg": svg})
	require.False(t, res.IsError, text(t, res))
	assert.Contains(t, text(t, res), "knob-indicator-1")

	res = call(t, s.optimizeSVG, map[string]any{"svg": "<svg"})
	assert.True(t, res.IsError)
}

func TestInspectProject(t *testing.T) {
	s := newServer(Config{})
	res := call(t, s.inspectProject, map[string]any{
		"path":  writeProject(t, project),
		"query": "$.elements[?(@.type == 'knob')].name",
	})
	require.False(t, res.IsError, text(t, res))
	assert.Contains(t, text(t, res), "Gain")
	assert.Contains(t, text(t, res), "Mix")
	assert.NotContains(t, text(t, res), "Trace")
}
