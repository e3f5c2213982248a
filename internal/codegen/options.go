package codegen

import (
	"github.com/agentic-research/faceplate/internal/model"
)

// Bundle file names. The preview composer substitutes the tags that
// reference them, so both sides share these constants.
const (
	FileHTML        = "index.html"
	FileCSS         = "styles.css"
	FileComponents  = "components.js"
	FileBindings    = "bindings.js"
	FileResponsive  = "responsive.js"
	FileScrollbar   = "scrollbar.js"
	FileMockRelay   = "mock-relay.js"
	FileIntegration = "INTEGRATION.md"
	AssetDir        = "assets"
)

// StylesheetTag is the exact stylesheet reference written into index.html.
const StylesheetTag = `<link rel="stylesheet" href="` + FileCSS + `">`

// ScriptTag returns the exact script reference written into index.html.
func ScriptTag(file string) string {
	return `<script src="` + file + `"></script>`
}

// Scale limits for the responsive script.
const (
	MinScale        = 0.25
	ExportMaxScale  = 2.0
	PreviewMaxScale = 1.0
)

// Options is the per-window input of the generators besides the element
// list.
type Options struct {
	Title           string
	Width           float64
	Height          float64
	BackgroundColor string
	Layers          model.LayerOrder
	// Responsive references responsive.js from index.html.
	Responsive bool
	// MockRelay references mock-relay.js ahead of the other scripts.
	MockRelay bool
}

// WindowOptions derives generator options from a window.
func WindowOptions(w model.Window, layers []model.Layer) Options {
	return Options{
		Title:           w.Name,
		Width:           w.Width,
		Height:          w.Height,
		BackgroundColor: w.BackgroundColor,
		Layers:          model.NewLayerOrder(layers),
	}
}

// AssetPath is the bundle path of an svggraphic element's asset.
func AssetPath(el model.Element) string {
	return AssetDir + "/" + model.NormalizeName(el.Base().Name) + ".svg"
}

// NeedsScrollbar reports whether any element requests custom scrollbars.
func NeedsScrollbar(elements []model.Element) bool {
	for _, el := range elements {
		if c, ok := el.(model.Containing); ok && c.Container().Scrollbar != nil {
			return true
		}
	}
	return false
}
