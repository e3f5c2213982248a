package codegen

import (
	"sort"
	"strings"

	"github.com/agentic-research/faceplate/internal/model"
)

// FontDir is the bundle directory bundled font files are expected in.
const FontDir = "fonts"

// builtinFonts maps bundled families to their woff2 file. Families not
// listed are system fonts and get no @font-face.
var builtinFonts = map[string]string{
	"inter":       "Inter-Regular.woff2",
	"roboto":      "Roboto-Regular.woff2",
	"roboto mono": "RobotoMono-Regular.woff2",
}

var canonicalFamily = map[string]string{
	"inter":       "Inter",
	"roboto":      "Roboto",
	"roboto mono": "Roboto Mono",
}

// fontFamilyOf returns the family a text-bearing element renders with.
func fontFamilyOf(el model.Element) string {
	switch e := el.(type) {
	case *model.Label:
		return e.FontFamily
	case *model.DBDisplay:
		return e.FontFamily
	case *model.FrequencyDisplay:
		return e.FontFamily
	case *model.TextField:
		return e.FontFamily
	case *model.Button:
		return e.FontFamily
	}
	return ""
}

// fontFamiliesOf returns every family el draws text with: its own text
// font and, for controls showing a caption, the caption font.
func fontFamiliesOf(el model.Element) []string {
	var out []string
	if f := fontFamilyOf(el); f != "" {
		out = append(out, f)
	}
	if l, ok := el.(model.Labeled); ok {
		if d := l.Labels(); d.ShowLabel && d.LabelFontFamily != "" {
			out = append(out, d.LabelFontFamily)
		}
	}
	return out
}

// builtinKeys returns the bundled families the elements use.
func builtinKeys(elements []model.Element) map[string]bool {
	keys := map[string]bool{}
	for _, el := range elements {
		for _, f := range fontFamiliesOf(el) {
			key := strings.ToLower(strings.TrimSpace(f))
			if _, ok := builtinFonts[key]; ok {
				keys[key] = true
			}
		}
	}
	return keys
}

// BundledFonts returns the font files the elements reference, sorted.
func BundledFonts(elements []model.Element) []string {
	keys := builtinKeys(elements)
	out := make([]string, 0, len(keys))
	for k := range keys {
		out = append(out, FontDir+"/"+builtinFonts[k])
	}
	sort.Strings(out)
	return out
}

// fontFaces emits one @font-face per bundled family in use, sorted by
// family name.
func fontFaces(b *strings.Builder, elements []model.Element) {
	keys := builtinKeys(elements)
	sorted := make([]string, 0, len(keys))
	for k := range keys {
		sorted = append(sorted, k)
	}
	sort.Strings(sorted)
	for _, k := range sorted {
		b.WriteString("@font-face {\n")
		b.WriteString("  font-family: " + cssString(canonicalFamily[k]) + ";\n")
		b.WriteString("  src: url(" + cssString(FontDir+"/"+builtinFonts[k]) + ") format(\"woff2\");\n")
		b.WriteString("  font-weight: normal;\n  font-style: normal;\n  font-display: block;\n}\n")
	}
}

// fontStack quotes family and appends a generic fallback.
func fontStack(family string) string {
	family = strings.TrimSpace(family)
	if family == "" {
		return ""
	}
	generic := "sans-serif"
	if strings.Contains(strings.ToLower(family), "mono") {
		generic = "monospace"
	}
	return cssString(family) + ", " + generic
}
