package inspect

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const project = `{
  "version": "3.0.0",
  "windows": [{"id": "w1", "name": "Main", "type": "release", "width": 400, "height": 300, "elementIds": ["a", "b", "c"]}],
  "elements": [
    {"type": "knob", "id": "a", "name": "Gain"},
    {"type": "knob", "id": "b", "name": "Mix"},
    {"type": "label", "id": "c", "name": "Title"}
  ]
}`

func TestQuery_Filter(t *testing.T) {
	doc, err := Parse([]byte(project))
	require.NoError(t, err)

	got, err := Query(doc, "$.elements[?(@.type == 'knob')].name")
	require.NoError(t, err)
	assert.Equal(t, []any{"Gain", "Mix"}, got)
}

func TestQuery_Invalid(t *testing.T) {
	doc, err := Parse([]byte(project))
	require.NoError(t, err)
	_, err = Query(doc, "$.elements[")
	assert.Error(t, err)
}

func TestTypes(t *testing.T) {
	doc, err := Parse([]byte(project))
	require.NoError(t, err)
	got, err := Types(doc)
	require.NoError(t, err)
	assert.Equal(t, []TypeCount{{"knob", 2}, {"label", 1}}, got)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.json")
	require.NoError(t, os.WriteFile(path, []byte(project), 0o644))
	doc, err := Load(path)
	require.NoError(t, err)
	got, err := Query(doc, "$.windows[0].name")
	require.NoError(t, err)
	assert.Equal(t, []any{"Main"}, got)
	assert.Contains(t, Format(got), `"Main"`)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
