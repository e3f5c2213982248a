package svgopt

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const editorSVG = `<?xml version="1.0" encoding="UTF-8" standalone="no"?>
<!-- Created with Inkscape (http://www.inkscape.org/) -->
<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN" "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd">
<svg
   xmlns="http://www.w3.org/2000/svg"
   xmlns:xlink="http://www.w3.org/1999/xlink"
   xmlns:inkscape="http://www.inkscape.org/namespaces/inkscape"
   xmlns:sodipodi="http://sodipodi.sourceforge.net/DTD/sodipodi-0.dtd"
   viewBox="0 0 100 100"
   width="100.000"
   height="100.000"
   inkscape:version="1.3">
  <title>Knob indicator</title>
  <metadata>
    <rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"><rdf:Description/></rdf:RDF>
  </metadata>
  <sodipodi:namedview id="namedview1" pagecolor="#ffffff"/>
  <g id="layer1" inkscape:label="Layer 1" inkscape:groupmode="layer" transform="translate(10.123456789,0.500000)">
    <!-- the pointer -->
    <rect id="knob-indicator-1" x="45.500" y="10.0" width="10.00" height="30" fill="#ffffff"/>
    <circle id="center" cx="50.0" cy="50.0" r="4.50"/>
    <text x="5" y="95">  Gain  </text>
  </g>
</svg>
`

type svgDoc struct {
	XMLName xml.Name `xml:"svg"`
	ViewBox string   `xml:"viewBox,attr"`
}

func TestOptimize_RoundTripKeepsIDAndViewBox(t *testing.T) {
	res, err := Optimize(editorSVG)
	require.NoError(t, err)

	var doc svgDoc
	require.NoError(t, xml.Unmarshal([]byte(res.SVG), &doc))
	assert.Equal(t, "0 0 100 100", doc.ViewBox)
	assert.Contains(t, res.SVG, `id="knob-indicator-1"`)
	assert.Contains(t, res.SVG, "<title>Knob indicator</title>")
	assert.Contains(t, res.SVG, "<rect ", "shapes are not converted")
	assert.Contains(t, res.SVG, "<circle ")
	assert.True(t, strings.HasPrefix(res.SVG, `<?xml version="1.0"`))
}

func TestOptimize_DropsEditorNoise(t *testing.T) {
	res, err := Optimize(editorSVG)
	require.NoError(t, err)

	for _, gone := range []string{"<!--", "DOCTYPE", "inkscape", "sodipodi", "metadata", "rdf:", "\n  <"} {
		assert.NotContains(t, res.SVG, gone)
	}
	assert.Contains(t, res.SVG, `xmlns:xlink="http://www.w3.org/1999/xlink"`)
	assert.Contains(t, res.SVG, "<text x=\"5\" y=\"95\">  Gain  </text>", "text whitespace is content")
	assert.Less(t, res.OptimizedBytes, res.OriginalBytes)
	assert.Equal(t, len(editorSVG), res.OriginalBytes)
	assert.Equal(t, len(res.SVG), res.OptimizedBytes)
	assert.InDelta(t, Savings(res.OriginalBytes, res.OptimizedBytes), res.SavingsPercent, 1e-9)
}

func TestOptimize_TrimsNumbers(t *testing.T) {
	res, err := Optimize(editorSVG)
	require.NoError(t, err)
	assert.Contains(t, res.SVG, `x="45.5" y="10" width="10"`)
	assert.Contains(t, res.SVG, `r="4.5"`)
	assert.Contains(t, res.SVG, `transform="translate(10.12346,0.5)"`)
}

func TestTrimZeros(t *testing.T) {
	cases := map[string]string{
		"1.500":         "1.5",
		"2.0":           "2",
		"M5.0.5 L10 20": "M5.0.5 L10 20",
		"M 1.50 .50":    "M 1.5 .5",
		"1.5.0":         "1.5.0",
		"100":           "100",
		"0.000":         "0",
	}
	for in, want := range cases {
		assert.Equal(t, want, trimZeros(in), in)
	}
}

func TestOptimize_SelfClosesEmptyElements(t *testing.T) {
	res, err := Optimize(`<svg xmlns="http://www.w3.org/2000/svg"><g></g><path d="M0 0"></path></svg>`)
	require.NoError(t, err)
	assert.Equal(t, `<svg xmlns="http://www.w3.org/2000/svg"><g/><path d="M0 0"/></svg>`, res.SVG)
}

func TestOptimize_Malformed(t *testing.T) {
	_, err := Optimize(`<svg><g></svg>`)
	require.Error(t, err)

	_, err = Optimize(`<html></html>`)
	require.ErrorIs(t, err, ErrNotSVG)
}

func TestOptimizeOrOriginal_FallsBack(t *testing.T) {
	bad := `<svg><rect></svg>`
	res, err := OptimizeOrOriginal(bad)
	require.Error(t, err)
	assert.Equal(t, bad, res.SVG)
	assert.Equal(t, len(bad), res.OriginalBytes)
	assert.Equal(t, len(bad), res.OptimizedBytes)
	assert.Zero(t, res.SavingsPercent)
}

func TestAggregate_UsesTotals(t *testing.T) {
	got := Aggregate([]Result{
		{SVG: "a", OriginalBytes: 1000, OptimizedBytes: 500, SavingsPercent: 50},
		{SVG: "b", OriginalBytes: 1000, OptimizedBytes: 1000},
	})
	assert.Equal(t, 2000, got.TotalOriginalBytes)
	assert.Equal(t, 1500, got.TotalOptimizedBytes)
	assert.InDelta(t, 25.0, got.SavingsPercent, 1e-9)
	assert.Equal(t, []string{"a", "b"}, got.SVGs)
}

func TestBatch(t *testing.T) {
	small := `<svg xmlns="http://www.w3.org/2000/svg"/>`
	got, failed := Batch([]string{editorSVG, small, "not xml <"})
	require.Len(t, failed, 1)
	assert.Contains(t, failed, 2)
	assert.Equal(t, small, got.SVGs[1])
	assert.Equal(t, "not xml <", got.SVGs[2])
	assert.Equal(t, len(editorSVG)+len(small)+len("not xml <"), got.TotalOriginalBytes)
	assert.InDelta(t, Savings(got.TotalOriginalBytes, got.TotalOptimizedBytes), got.SavingsPercent, 1e-9)
}

func TestAggregate_Empty(t *testing.T) {
	got := Aggregate(nil)
	assert.Zero(t, got.SavingsPercent)
	assert.Empty(t, got.SVGs)
}
