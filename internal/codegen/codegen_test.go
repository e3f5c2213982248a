package codegen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentic-research/faceplate/internal/model"
)

func named(k model.Kind, id, name string) model.Element {
	el := model.MustNew(k)
	el.Base().ID = id
	el.Base().Name = name
	return el
}

func window() Options {
	return Options{Title: "Main", Width: 400, Height: 300, BackgroundColor: "#101010"}
}

// before asserts that every needle occurs in s, in order.
func before(t *testing.T, s string, needles ...string) {
	t.Helper()
	at := -1
	for _, n := range needles {
		i := strings.Index(s, n)
		require.GreaterOrEqual(t, i, 0, "missing %q", n)
		assert.Greater(t, i, at, "%q out of order", n)
		at = i
	}
}

func TestGenerators_EveryKind(t *testing.T) {
	for _, k := range model.AllKinds() {
		t.Run(string(k), func(t *testing.T) {
			els := []model.Element{named(k, "e1", "Thing")}
			var html, css, js string
			require.NotPanics(t, func() {
				html = GenerateHTML(els, window())
				css = GenerateCSS(els, window())
				js = GenerateBindingsJS(els, window())
				_ = HostParams(els)
			})
			assert.Contains(t, html, `data-type="`+string(k)+`"`)
			assert.Contains(t, html, `class="element `+string(k)+`-element`)
			assert.Contains(t, css, "#plugin-container")
			assert.True(t, strings.HasSuffix(js, bindingsTail))
		})
	}
}

func TestGenerators_Deterministic(t *testing.T) {
	els := []model.Element{
		named(model.KindKnob, "k", "Gain"),
		named(model.KindLabel, "l", "Title"),
		named(model.KindSpectrumAnalyzer, "s", "Spectrum"),
		named(model.KindRangeSlider, "r", "Band"),
	}
	for _, fn := range []func([]model.Element, Options) string{GenerateHTML, GenerateCSS, GenerateBindingsJS} {
		assert.Equal(t, fn(els, window()), fn(els, window()))
	}
}

type rogue struct{ *model.Knob }

func TestGuard_RecoversGenerationError(t *testing.T) {
	k := named(model.KindKnob, "k1", "Gain").(*model.Knob)
	err := Guard(func() error {
		GenerateHTML([]model.Element{rogue{k}}, window())
		return nil
	})
	require.Error(t, err)

	var ge *GenerationError
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, "html", ge.Artifact)
	assert.Equal(t, "k1", ge.ElementID)
}

func TestGuard_WrapsOtherPanics(t *testing.T) {
	err := Guard(func() error { panic("boom") })
	var ge *GenerationError
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, "boom", ge.Reason)
}

func TestGenerateHTML_Document(t *testing.T) {
	k := named(model.KindKnob, "k1", "Gain")
	html := GenerateHTML([]model.Element{k}, window())

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "<title>Main</title>")
	assert.Contains(t, html, `id="gain"`)
	assert.Contains(t, html, `data-parameter-id="gain"`)
	assert.Contains(t, html, "left: 0px; top: 0px; width: 60px; height: 60px;")
	before(t, html, StylesheetTag, `<div id="plugin-wrapper">`, `<div id="plugin-container">`,
		ScriptTag(FileComponents), ScriptTag(FileBindings))
	assert.NotContains(t, html, FileResponsive)
	assert.NotContains(t, html, FileScrollbar)
	assert.NotContains(t, html, FileMockRelay)
}

func TestGenerateHTML_OptionalScripts(t *testing.T) {
	p := named(model.KindPanel, "p", "Scroller").(*model.Panel)
	p.Scrollbar = &model.ScrollbarConfig{Width: 10, ThumbColor: "#fff"}
	opts := window()
	opts.Responsive = true
	opts.MockRelay = true

	html := GenerateHTML([]model.Element{p}, opts)
	before(t, html, ScriptTag(FileMockRelay), ScriptTag(FileComponents), ScriptTag(FileBindings),
		ScriptTag(FileResponsive), ScriptTag(FileScrollbar))
	assert.Contains(t, html, "data-custom-scrollbar=")
}

func TestGenerateHTML_ExplicitParameterID(t *testing.T) {
	k := named(model.KindKnob, "k1", "Gain")
	k.Base().ParameterID = "outputGain"
	html := GenerateHTML([]model.Element{k}, window())
	assert.Contains(t, html, `data-parameter-id="outputGain"`)

	l := named(model.KindLabel, "l1", "Caption")
	html = GenerateHTML([]model.Element{l}, window())
	assert.NotContains(t, html, "data-parameter-id")
}

func TestGenerateHTML_ChildrenNested(t *testing.T) {
	p := named(model.KindPanel, "p", "Group")
	k := named(model.KindKnob, "k", "Gain")
	k.Base().ParentID = "p"
	k.Base().X = 10
	out := GenerateBody([]model.Element{k, p}, window())

	before(t, out, `<div id="group"`, `class="container-content"`, `<div id="gain"`)
	tail := out[strings.Index(out, `<div id="gain"`):]
	assert.Contains(t, tail, "</div>\n</div></div>\n", "the panel closes after its child")
	assert.Equal(t, 1, strings.Count(out, `<div id="gain"`))
	assert.Equal(t, 1, strings.Count(out, `data-parameter-id="gain"`))
}

func TestGenerateHTML_HiddenLayerAndInvisible(t *testing.T) {
	a := named(model.KindKnob, "a", "A")
	a.Base().LayerID = "bg"
	b := named(model.KindKnob, "b", "B")
	b.Base().Visible = false
	c := named(model.KindKnob, "c", "C")

	opts := window()
	opts.Layers = model.NewLayerOrder([]model.Layer{{ID: "bg", Order: 0, Visible: false}})
	out := GenerateBody([]model.Element{a, b, c}, opts)

	line := func(id string) string {
		i := strings.Index(out, `<div id="`+id+`"`)
		require.GreaterOrEqual(t, i, 0)
		return out[i : i+strings.Index(out[i:], ">")]
	}
	assert.Contains(t, line("a"), "display: none")
	assert.Contains(t, line("b"), "display: none")
	assert.NotContains(t, line("c"), "display: none")
}

func TestGenerateHTML_EscapesText(t *testing.T) {
	l := named(model.KindLabel, "l", "Caption").(*model.Label)
	l.Text = `<script>alert("x")</script>`
	html := GenerateHTML([]model.Element{l}, window())
	assert.NotContains(t, html, "<script>alert")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestGenerateHTML_SVGGraphicReferencesAsset(t *testing.T) {
	g := named(model.KindSVGGraphic, "g", "Logo Mark")
	html := GenerateHTML([]model.Element{g}, window())
	assert.Contains(t, html, `src="assets/logo-mark.svg"`)
	assert.Equal(t, "assets/logo-mark.svg", AssetPath(g))
}

func TestGenerateCSS_Order(t *testing.T) {
	l := named(model.KindLabel, "l", "Title")
	k := named(model.KindKnob, "k", "Gain")
	css := GenerateCSS([]model.Element{l, k}, window())

	before(t, css, "@font-face", "box-sizing: border-box", "#plugin-wrapper {", "#plugin-container {",
		".element {", "#title {")
	assert.Contains(t, css, "width: 400px")
	assert.Contains(t, css, "background: #101010")
	assert.Contains(t, css, "--fp-start-angle: -135")
	assert.Contains(t, css, "--fp-track-color: #374151")
}

func TestGenerateCSS_FontFaces(t *testing.T) {
	a := named(model.KindLabel, "a", "A").(*model.Label)
	a.FontFamily = "Roboto Mono"
	b := named(model.KindLabel, "b", "B").(*model.Label)
	b.FontFamily = "roboto mono"
	c := named(model.KindLabel, "c", "C").(*model.Label)
	c.FontFamily = "Arial"
	els := []model.Element{a, b, c}

	css := GenerateCSS(els, window())
	assert.Equal(t, 1, strings.Count(css, "@font-face"))
	assert.Contains(t, css, `url("fonts/RobotoMono-Regular.woff2")`)
	assert.Equal(t, []string{"fonts/RobotoMono-Regular.woff2"}, BundledFonts(els))

	// Knob labels without a custom font never pull in a font file.
	assert.NotContains(t, GenerateCSS([]model.Element{named(model.KindKnob, "k", "Gain")}, window()), "@font-face")
}

func TestGenerateCSS_ControlLabelFont(t *testing.T) {
	k := named(model.KindKnob, "k", "Gain").(*model.Knob)
	k.ShowLabel = true
	k.LabelFontFamily = "Roboto"
	s := named(model.KindSlider, "s", "Mix").(*model.Slider)
	s.ShowLabel = false
	s.LabelFontFamily = "Inter"
	els := []model.Element{k, s}

	css := GenerateCSS(els, window())
	assert.Equal(t, 1, strings.Count(css, "@font-face"))
	assert.Contains(t, css, `url("fonts/Roboto-Regular.woff2")`)
	assert.Contains(t, css, "--fp-label-font")
	assert.Equal(t, []string{"fonts/Roboto-Regular.woff2"}, BundledFonts(els))
}

func TestGenerateCSS_DefaultBackground(t *testing.T) {
	opts := window()
	opts.BackgroundColor = ""
	assert.Contains(t, GenerateCSS(nil, opts), "background: #1a1a1a")
}

func TestGenerateBindingsJS_SetupCalls(t *testing.T) {
	k := named(model.KindKnob, "k", "Gain").(*model.Knob)
	k.Value, k.Min, k.Max = 5, 0, 20
	s := named(model.KindSlider, "s", "Mix")
	s.Base().ParameterID = "dryWet"
	r := named(model.KindRangeSlider, "r", "Band")
	m := named(model.KindMeter, "m", "Level")
	bound := named(model.KindMeter, "m2", "Out Level")
	bound.Base().ParameterID = "outLevel"
	x := named(model.KindXYPad, "x", "Pad")
	link := named(model.KindWindowLink, "w", "Settings").(*model.WindowLink)
	link.TargetWindowID = "win-2"

	js := GenerateBindingsJS([]model.Element{k, s, r, m, bound, x, link}, window())

	assert.Contains(t, js, `setupRotary(byId("gain"), "gain", 0.25);`)
	assert.Contains(t, js, `setupLinear(byId("mix"), "dryWet", `)
	assert.Contains(t, js, `setupRange(byId("band"), "band", `)
	assert.Contains(t, js, `setupMeter(byId("out-level"), "outLevel");`)
	assert.NotContains(t, js, `byId("level")`)
	assert.Contains(t, js, `setupXY(byId("pad"), "pad", `)
	assert.Contains(t, js, `"pad_y"`)
	assert.Contains(t, js, `setupWindowLink(byId("settings"), "win-2");`)
	assert.Contains(t, js, "document.currentScript.dataset.scope")
	assert.Contains(t, js, "__FACEPLATE_RELAY__")
	assert.Contains(t, js, "__juce__invoke")
	assert.Equal(t, 6, BindingCount([]model.Element{k, s, r, m, bound, x, link}))
}

func TestHostParams_DerivedIDs(t *testing.T) {
	r := named(model.KindRangeSlider, "r", "Band")
	l := named(model.KindLabel, "l", "Caption")
	k := named(model.KindKnob, "k", "Gain")

	var ids []string
	for _, p := range HostParams([]model.Element{r, l, k}) {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"band_max", "band_min", "gain"}, ids)
}

func TestArcPath(t *testing.T) {
	assert.Equal(t, "M 0 50 A 50 50 0 0 1 50 0", arcPath(50, 50, 50, -90, 0))
	assert.Contains(t, arcPath(50, 50, 40, -135, 135), " 0 1 1 ")
	assert.Equal(t, arcPath(50, 50, 40, 0, 90), arcPath(50, 50, 40, 90, 0))
	assert.Empty(t, arcPath(50, 50, 40, 10, 10))
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "1.50 kHz", formatValue(1500, 0, "hz", 2, ""))
	assert.Equal(t, "440 Hz", formatValue(440, 0, "hz", 0, ""))
	assert.Equal(t, "75%", formatValue(0, 0.75, "percentage", 2, ""))
	assert.Equal(t, "-6.0 dB", formatValue(-6, 0, "db", 1, ""))
	assert.Equal(t, "3.00 ms", formatValue(3, 0, "custom", 2, " ms"))
	assert.Equal(t, "0.50", formatValue(0.5, 0, "numeric", 2, ""))
}

func TestNum(t *testing.T) {
	assert.Equal(t, "0", num(-0.00001))
	assert.Equal(t, "1.2346", num(1.23456))
	assert.Equal(t, "60", num(60))
}

func TestGenerateResponsiveJS(t *testing.T) {
	js := GenerateResponsiveJS(MinScale, ExportMaxScale)
	assert.Contains(t, js, "var MIN_SCALE = 0.25;")
	assert.Contains(t, js, "var MAX_SCALE = 2;")
	assert.Contains(t, GenerateResponsiveJS(PreviewMaxScale, MinScale), "var MAX_SCALE = 1;")
}

func TestGenerateIntegrationDoc(t *testing.T) {
	k := named(model.KindKnob, "k", "Gain")
	doc := GenerateIntegrationDoc("Synth", []IntegrationWindow{{
		Name:   "Main",
		Folder: "main",
		Files:  []string{FileHTML, FileCSS},
		Params: HostParams([]model.Element{k}),
	}})
	assert.Contains(t, doc, "# Synth integration")
	assert.Contains(t, doc, "### Main (main/)")
	assert.Contains(t, doc, "| gain | Gain | knob | both |")
	for _, title := range []string{"White flash on load", "Controls not responding", "Slow initial load",
		"Parameter values not syncing", "UI freezes during automation"} {
		assert.Contains(t, doc, title)
	}
}
