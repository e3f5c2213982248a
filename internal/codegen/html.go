package codegen

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"text/template"

	"github.com/agentic-research/faceplate/internal/model"
)

var documentTmpl = template.Must(template.New(FileHTML).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
{{.Stylesheet}}
</head>
<body>
{{.Body}}{{range .Scripts}}{{.}}
{{end}}</body>
</html>
`))

// GenerateHTML renders index.html for one window.
func GenerateHTML(elements []model.Element, opts Options) string {
	scripts := []string{}
	if opts.MockRelay {
		scripts = append(scripts, ScriptTag(FileMockRelay))
	}
	scripts = append(scripts, ScriptTag(FileComponents), ScriptTag(FileBindings))
	if opts.Responsive {
		scripts = append(scripts, ScriptTag(FileResponsive))
	}
	if NeedsScrollbar(elements) {
		scripts = append(scripts, ScriptTag(FileScrollbar))
	}
	var out strings.Builder
	err := documentTmpl.Execute(&out, map[string]any{
		"Title":      esc(opts.Title),
		"Stylesheet": StylesheetTag,
		"Body":       GenerateBody(elements, opts),
		"Scripts":    scripts,
	})
	if err != nil {
		panic(&GenerationError{Artifact: "html", Reason: err.Error()})
	}
	return out.String()
}

// GenerateBody renders the #plugin-wrapper tree without the document shell.
func GenerateBody(elements []model.Element, opts Options) string {
	g := &htmlGen{layers: opts.Layers}
	g.b.WriteString("<div id=\"plugin-wrapper\">\n<div id=\"plugin-container\">\n")
	forest := model.NewForest(elements, opts.Layers)
	forest.Walk(g.enter, g.leave)
	g.b.WriteString("</div>\n</div>\n")
	return g.b.String()
}

type htmlGen struct {
	b      strings.Builder
	layers model.LayerOrder
	tails  []string
}

type attr struct{ name, value string }

// markup is the kind-specific part of an element node.
type markup struct {
	classes []string
	attrs   []attr
	inner   string
	// tail closes wrappers opened by inner around the children.
	tail string
}

// ParamID returns the host parameter an element binds to: its parameterId,
// or the normalized name when unset.
func ParamID(el model.Element) string {
	if p := strings.TrimSpace(el.Base().ParameterID); p != "" {
		return p
	}
	return model.NormalizeName(el.Base().Name)
}

func boundParam(el model.Element) string {
	if el.Kind().Bindable() {
		return ParamID(el)
	}
	return strings.TrimSpace(el.Base().ParameterID)
}

func (g *htmlGen) enter(el, _ model.Element) {
	b := el.Base()
	m := elementMarkup(el)

	var style decls
	style.add("left", px(b.X))
	style.add("top", px(b.Y))
	style.add("width", px(b.Width))
	style.add("height", px(b.Height))
	if b.Rotation != 0 {
		style.add("transform", "rotate("+num(b.Rotation)+"deg)")
	}
	if !b.Visible || g.layers.Hidden(el) {
		style.add("display", "none")
	}

	kind := string(el.Kind())
	g.b.WriteString(`<div id="` + esc(model.NormalizeName(b.Name)) + `" class="element ` + kind + `-element`)
	for _, c := range m.classes {
		g.b.WriteString(" " + c)
	}
	g.b.WriteString(`" data-type="` + kind + `"`)
	if p := boundParam(el); p != "" {
		g.b.WriteString(` data-parameter-id="` + esc(p) + `"`)
	}
	for _, a := range m.attrs {
		g.b.WriteString(" " + a.name + `="` + esc(a.value) + `"`)
	}
	g.b.WriteString(` style="` + style.inline() + `">`)
	g.b.WriteString(m.inner)
	g.b.WriteString("\n")
	g.tails = append(g.tails, m.tail)
}

func (g *htmlGen) leave(_, _ model.Element) {
	tail := g.tails[len(g.tails)-1]
	g.tails = g.tails[:len(g.tails)-1]
	g.b.WriteString(tail)
	g.b.WriteString("</div>\n")
}

func dataNum(name string, v float64) attr { return attr{name, num(v)} }

func labelSpans(l *model.LabelDisplay, value, norm float64) string {
	var s strings.Builder
	if l.ShowLabel {
		s.WriteString(`<span class="control-label label-` + esc(l.LabelPosition) + `">` + esc(l.LabelText) + `</span>`)
	}
	if l.ShowValue {
		s.WriteString(`<span class="control-value value-` + esc(l.ValuePosition) + `" data-format="` + esc(l.ValueFormat) +
			`" data-decimals="` + strconv.Itoa(l.ValueDecimalPlaces) + `" data-suffix="` + esc(l.ValueSuffix) + `">` +
			esc(formatValue(value, norm, l.ValueFormat, l.ValueDecimalPlaces, l.ValueSuffix)) + `</span>`)
	}
	return s.String()
}

func rotaryMarkup(el model.Rotary, extra func(cx, cy, r float64) string) markup {
	c := el.Rotary()
	b := el.Base()
	size := math.Min(b.Width, b.Height)
	if size <= 0 {
		size = c.Diameter
	}
	cx, cy := size/2, size/2
	r := math.Max((size-c.TrackWidth)/2-1, 1)
	norm := c.Normalized()
	angle := c.StartAngle + norm*(c.EndAngle-c.StartAngle)
	fillFrom := c.StartAngle
	if _, ok := el.(*model.CenterDetentKnob); ok {
		fillFrom = (c.StartAngle + c.EndAngle) / 2
	}

	var s strings.Builder
	s.WriteString(`<svg class="knob-svg" viewBox="0 0 ` + num(size) + " " + num(size) + `" width="100%" height="100%">`)
	s.WriteString(`<path class="knob-arc-track" d="` + arcPath(cx, cy, r, c.StartAngle, c.EndAngle) +
		`" fill="none" stroke-width="` + num(c.TrackWidth) + `" stroke-linecap="round"/>`)
	s.WriteString(`<path class="knob-arc-fill" d="` + arcPath(cx, cy, r, fillFrom, angle) +
		`" fill="none" stroke-width="` + num(c.TrackWidth) + `" stroke-linecap="round"/>`)
	if extra != nil {
		s.WriteString(extra(cx, cy, r))
	}
	if c.Style == "dot" {
		p := polar(cx, cy, r*0.7, angle)
		s.WriteString(`<circle class="knob-indicator" cx="` + num(p.X) + `" cy="` + num(p.Y) + `" r="` + num(math.Max(c.TrackWidth/2, 2)) + `"/>`)
	} else {
		p1, p2 := polar(cx, cy, r*0.4, angle), polar(cx, cy, r*0.9, angle)
		s.WriteString(`<line class="knob-indicator" x1="` + num(p1.X) + `" y1="` + num(p1.Y) + `" x2="` + num(p2.X) +
			`" y2="` + num(p2.Y) + `" stroke-width="2" stroke-linecap="round"/>`)
	}
	s.WriteString(`</svg>`)
	s.WriteString(labelSpans(&c.LabelDisplay, c.Value, norm))

	return markup{
		classes: []string{"knob-style-" + esc(c.Style)},
		attrs: []attr{
			dataNum("data-value", norm), dataNum("data-min", c.Min), dataNum("data-max", c.Max),
			dataNum("data-raw-value", c.Value),
		},
		inner: s.String(),
	}
}

func linearMarkup(el model.Linear, extra string, attrs ...attr) markup {
	c := el.Linear()
	norm := c.Normalized()
	vertical := c.Orientation != "horizontal"
	var fill decls
	var thumb decls
	from := 0.0
	if _, ok := el.(*model.BipolarSlider); ok {
		from = 0.5
	}
	lo, hi := math.Min(from, norm), math.Max(from, norm)
	if vertical {
		fill.add("bottom", pct(lo))
		fill.add("height", pct(hi-lo))
		thumb.add("bottom", pct(norm))
	} else {
		fill.add("left", pct(lo))
		fill.add("width", pct(hi-lo))
		thumb.add("left", pct(norm))
	}
	orient := "horizontal"
	if vertical {
		orient = "vertical"
	}
	inner := `<div class="slider-track">` + extra + `<div class="slider-fill" style="` + fill.inline() + `"></div>` +
		`<div class="slider-thumb" style="` + thumb.inline() + `"></div></div>` +
		labelSpans(&c.LabelDisplay, c.Value, norm)
	base := []attr{dataNum("data-value", norm), dataNum("data-min", c.Min), dataNum("data-max", c.Max)}
	return markup{classes: []string{orient}, attrs: append(base, attrs...), inner: inner}
}

func buttonMarkup(c *model.ButtonConfig, icon string) markup {
	classes := []string{"mode-" + esc(c.Mode)}
	if c.Pressed {
		classes = append(classes, "pressed")
	}
	return markup{
		classes: classes,
		attrs:   []attr{{"data-mode", c.Mode}},
		inner:   `<button type="button" class="fp-button">` + icon + `<span class="button-label">` + esc(c.Label) + `</span></button>`,
	}
}

func switchMarkup(c *model.SwitchConfig, inner string) markup {
	m := markup{attrs: []attr{{"data-on", strconv.FormatBool(c.IsOn)}}, inner: inner}
	if c.IsOn {
		m.classes = []string{"on"}
	}
	return m
}

func choiceMarkup(el model.Element, c *model.ChoiceConfig, multiple bool, selected map[int]bool) markup {
	var s strings.Builder
	s.WriteString(`<select class="fp-select"`)
	if multiple {
		s.WriteString(` multiple`)
	}
	s.WriteString(`>`)
	if c.Placeholder != "" && !multiple {
		s.WriteString(`<option value="" disabled>` + esc(c.Placeholder) + `</option>`)
	}
	for i, o := range c.Options {
		s.WriteString(`<option value="` + strconv.Itoa(i) + `"`)
		if selected[i] {
			s.WriteString(` selected`)
		}
		s.WriteString(`>` + esc(o) + `</option>`)
	}
	s.WriteString(`</select>`)
	return markup{
		attrs: []attr{{"data-count", strconv.Itoa(len(c.Options))}, {"data-selected", strconv.Itoa(c.SelectedIndex)}},
		inner: s.String(),
	}
}

func itemList(class string, items []string, active int) string {
	var s strings.Builder
	for i, it := range items {
		cls := class
		if i == active {
			cls += " active"
		}
		s.WriteString(`<div class="` + cls + `" data-index="` + strconv.Itoa(i) + `">` + esc(it) + `</div>`)
	}
	return s.String()
}

func meterMarkup(c *model.MeterConfig, inverted bool) markup {
	norm := c.Normalized()
	var fill decls
	vertical := c.Orientation != "horizontal"
	switch {
	case vertical && inverted:
		fill.add("top", "0")
		fill.add("height", pct(norm))
	case vertical:
		fill.add("bottom", "0")
		fill.add("height", pct(norm))
	case inverted:
		fill.add("right", "0")
		fill.add("width", pct(norm))
	default:
		fill.add("left", "0")
		fill.add("width", pct(norm))
	}
	inner := `<div class="meter-fill" style="` + fill.inline() + `"></div>`
	if c.ShowPeakHold {
		inner += `<div class="meter-peak"></div>`
	}
	orient := "horizontal"
	if vertical {
		orient = "vertical"
	}
	classes := []string{orient}
	if inverted {
		classes = append(classes, "inverted")
	}
	return markup{
		classes: classes,
		attrs:   []attr{dataNum("data-value", norm), dataNum("data-min", c.Min), dataNum("data-max", c.Max)},
		inner:   inner,
	}
}

func readoutMarkup(c *model.ReadoutConfig, text string) markup {
	return markup{
		attrs: []attr{dataNum("data-value", c.Value), {"data-decimals", strconv.Itoa(c.DecimalPlaces)}},
		inner: `<span class="readout-value">` + esc(text) + `</span>`,
	}
}

func scopeMarkup(b *model.BaseConfig, c *model.ScopeConfig) markup {
	m := markup{
		inner: `<canvas class="scope-canvas" width="` + num(math.Max(b.Width, 1)) + `" height="` + num(math.Max(b.Height, 1)) + `"></canvas>`,
	}
	if c.ShowGrid {
		m.attrs = append(m.attrs, attr{"data-grid", "true"})
	}
	return m
}

func curveMarkup(el model.Curve) markup {
	b := el.Base()
	c := el.Curve()
	w, h := math.Max(b.Width, 1), math.Max(b.Height, 1)
	var s strings.Builder
	s.WriteString(`<svg class="curve-svg" viewBox="0 0 ` + num(w) + " " + num(h) + `" preserveAspectRatio="none" width="100%" height="100%">`)
	if c.ShowGrid {
		s.WriteString(`<path class="curve-grid" d="` + gridPath(w, h) + `" fill="none" stroke-width="1"/>`)
	}
	pts := curvePoints(el, w, h)
	if len(c.FillGradient) > 0 && len(pts) > 1 {
		area := append([]point{{pts[0].X, h}}, pts...)
		area = append(area, point{pts[len(pts)-1].X, h})
		s.WriteString(`<path class="curve-area" d="` + polyline(area) + ` Z" stroke="none"/>`)
	}
	s.WriteString(`<path class="curve-line" d="` + polyline(pts) + `" fill="none" stroke-width="` + num(c.LineWidth) + `"/>`)
	s.WriteString(`</svg>`)
	return markup{inner: s.String()}
}

func containerMarkup(c *model.ContainerConfig, head string, contentClass string) markup {
	content := `<div class="` + contentClass + `"`
	if c.Scrollbar != nil {
		cfg, _ := json.Marshal(c.Scrollbar)
		content += ` data-custom-scrollbar="` + esc(string(cfg)) + `"`
	}
	content += `>`
	return markup{inner: head + content, tail: "</div>"}
}

var blackKeyOffsets = map[int]bool{1: true, 3: true, 6: true, 8: true, 10: true}

func pianoMarkup(p *model.PianoKeyboard) markup {
	octaves := p.OctaveCount
	if octaves < 1 {
		octaves = 1
	}
	whites := octaves * 7
	var white, black strings.Builder
	w := 0
	for i := 0; i < octaves*12; i++ {
		note := p.StartNote + i
		if blackKeyOffsets[i%12] {
			left := (float64(w) - 0.3) / float64(whites)
			black.WriteString(`<div class="piano-key black" data-note="` + strconv.Itoa(note) + `" style="left: ` +
				pct(left) + `; width: ` + pct(0.6/float64(whites)) + `;"></div>`)
			continue
		}
		white.WriteString(`<div class="piano-key white" data-note="` + strconv.Itoa(note) + `" style="left: ` +
			pct(float64(w)/float64(whites)) + `; width: ` + pct(1/float64(whites)) + `;"></div>`)
		w++
	}
	return markup{inner: white.String() + black.String()}
}

// elementMarkup dispatches on the concrete element type. Every type in the
// element union must have a case.
func elementMarkup(el model.Element) markup {
	switch e := el.(type) {
	case *model.Knob, *model.CenterDetentKnob:
		return rotaryMarkup(el.(model.Rotary), nil)
	case *model.SteppedKnob:
		return rotaryMarkup(e, func(cx, cy, r float64) string {
			var s strings.Builder
			steps := e.Steps
			if steps < 2 {
				steps = 2
			}
			for i := 0; i < steps; i++ {
				a := e.StartAngle + ratio(i, steps)*(e.EndAngle-e.StartAngle)
				p1, p2 := polar(cx, cy, r+1, a), polar(cx, cy, r-e.TrackWidth-1, a)
				s.WriteString(`<line class="knob-step" x1="` + num(p1.X) + `" y1="` + num(p1.Y) + `" x2="` + num(p2.X) + `" y2="` + num(p2.Y) + `"/>`)
			}
			return s.String()
		})
	case *model.DotIndicatorKnob:
		m := rotaryMarkup(e, nil)
		m.attrs = append(m.attrs, dataNum("data-dot-radius", e.DotRadius))
		return m
	case *model.Slider, *model.CrossfadeSlider:
		m := linearMarkup(el.(model.Linear), "")
		if cf, ok := el.(*model.CrossfadeSlider); ok {
			m.inner += `<span class="crossfade-label crossfade-a">` + esc(cf.LabelA) + `</span>` +
				`<span class="crossfade-label crossfade-b">` + esc(cf.LabelB) + `</span>`
		}
		return m
	case *model.BipolarSlider:
		return linearMarkup(e, `<div class="slider-center"></div>`, dataNum("data-center", e.CenterValue))
	case *model.NotchedSlider:
		var notches strings.Builder
		prop := "bottom"
		if e.Orientation == "horizontal" {
			prop = "left"
		}
		for i := 0; i < e.NotchCount; i++ {
			notches.WriteString(`<span class="slider-notch" style="` + prop + `: ` + pct(ratio(i, e.NotchCount)) + `;"></span>`)
		}
		return linearMarkup(e, notches.String(), attr{"data-notches", strconv.Itoa(e.NotchCount)})
	case *model.ArcSlider:
		size := math.Min(e.Width, e.Height)
		cx, cy := size/2, size/2
		r := math.Max((size-e.TrackWidth)/2-4, 1)
		norm := e.Normalized()
		angle := e.StartAngle + norm*(e.EndAngle-e.StartAngle)
		t := polar(cx, cy, r, angle)
		inner := `<svg class="arc-svg" viewBox="0 0 ` + num(size) + " " + num(size) + `" width="100%" height="100%">` +
			`<path class="arc-track" d="` + arcPath(cx, cy, r, e.StartAngle, e.EndAngle) + `" fill="none" stroke-width="` + num(e.TrackWidth) + `" stroke-linecap="round"/>` +
			`<path class="arc-fill" d="` + arcPath(cx, cy, r, e.StartAngle, angle) + `" fill="none" stroke-width="` + num(e.TrackWidth) + `" stroke-linecap="round"/>` +
			`<circle class="arc-thumb" cx="` + num(t.X) + `" cy="` + num(t.Y) + `" r="` + num(math.Max(e.TrackWidth, 4)) + `"/></svg>` +
			labelSpans(&e.LabelDisplay, e.Value, norm)
		return markup{
			attrs: []attr{dataNum("data-value", norm), dataNum("data-min", e.Min), dataNum("data-max", e.Max)},
			inner: inner,
		}
	case *model.RangeSlider:
		lo, hi := e.Bounds()
		a, z := "left", "width"
		orient := "horizontal"
		if e.Orientation == "vertical" {
			a, z, orient = "bottom", "height", "vertical"
		}
		inner := `<div class="range-track"><div class="range-fill" style="` + a + ": " + pct(lo) + "; " + z + ": " + pct(hi-lo) + `;"></div>` +
			`<div class="range-thumb range-thumb-min" style="` + a + ": " + pct(lo) + `;"></div>` +
			`<div class="range-thumb range-thumb-max" style="` + a + ": " + pct(hi) + `;"></div></div>`
		return markup{
			classes: []string{orient},
			attrs:   []attr{dataNum("data-low", lo), dataNum("data-high", hi)},
			inner:   inner,
		}
	case *model.MultiSlider:
		var s strings.Builder
		n := e.BandCount
		if n < 1 {
			n = 1
		}
		for i := 0; i < n; i++ {
			v := 0.5
			if i < len(e.BandValues) {
				v = clamp01(e.BandValues[i])
			}
			s.WriteString(`<div class="multi-band" data-index="` + strconv.Itoa(i) + `"><div class="multi-band-fill" style="height: ` + pct(v) + `;"></div></div>`)
		}
		return markup{attrs: []attr{{"data-count", strconv.Itoa(n)}}, inner: s.String()}
	case *model.Button:
		return buttonMarkup(&e.ButtonConfig, "")
	case *model.IconButton:
		icon := ""
		if strings.TrimSpace(e.IconSVG) != "" {
			icon = `<img class="button-icon" alt="" src="data:image/svg+xml;base64,` +
				base64.StdEncoding.EncodeToString([]byte(e.IconSVG)) + `">`
		}
		return buttonMarkup(&e.ButtonConfig, icon)
	case *model.ToggleSwitch:
		return switchMarkup(&e.SwitchConfig, `<div class="switch-track"><div class="switch-thumb"></div></div>`)
	case *model.PowerButton:
		return switchMarkup(&e.SwitchConfig,
			`<div class="power-ring"><svg class="power-icon" viewBox="0 0 24 24" width="60%" height="60%">`+
				`<path d="M 12 3 L 12 12" fill="none" stroke-width="2" stroke-linecap="round"/>`+
				`<path d="M 6.3 6.3 A 8 8 0 1 0 17.7 6.3" fill="none" stroke-width="2" stroke-linecap="round"/></svg></div>`+
				`<span class="power-led"></span>`)
	case *model.RockerSwitch:
		positions := []string{"down", "center", "up"}
		pos := e.Position
		if pos < 0 || pos > 2 {
			pos = 0
		}
		return markup{
			attrs: []attr{{"data-position", positions[pos]}, {"data-mode", e.Mode}},
			inner: `<div class="rocker-body"><div class="rocker-paddle"></div></div>`,
		}
	case *model.RotarySwitch:
		n := e.PositionCount
		if n < 2 {
			n = 2
		}
		size := math.Min(e.Width, e.Height)
		var s strings.Builder
		s.WriteString(`<div class="rotary-body"><div class="rotary-pointer" style="transform: rotate(` +
			num(-e.RotationAngle/2+ratio(e.CurrentPosition, n)*e.RotationAngle) + `deg);"></div></div>`)
		for i := 0; i < n; i++ {
			label := strconv.Itoa(i + 1)
			if i < len(e.PositionLabels) {
				label = e.PositionLabels[i]
			}
			p := polar(size/2, size/2, size/2, -e.RotationAngle/2+ratio(i, n)*e.RotationAngle)
			s.WriteString(`<span class="rotary-label" style="left: ` + px(p.X) + `; top: ` + px(p.Y) + `;">` + esc(label) + `</span>`)
		}
		return markup{
			attrs: []attr{{"data-count", strconv.Itoa(n)}, {"data-selected", strconv.Itoa(e.CurrentPosition)}, dataNum("data-sweep", e.RotationAngle)},
			inner: s.String(),
		}
	case *model.SegmentButton:
		return markup{
			attrs: []attr{{"data-count", strconv.Itoa(len(e.Segments))}, {"data-selected", strconv.Itoa(e.SelectedIndex)}},
			inner: itemList("segment", e.Segments, e.SelectedIndex),
		}
	case *model.Dropdown:
		return choiceMarkup(el, &e.ChoiceConfig, false, map[int]bool{e.SelectedIndex: true})
	case *model.MultiSelectDropdown:
		sel := map[int]bool{}
		for _, i := range e.SelectedIndices {
			sel[i] = true
		}
		return choiceMarkup(el, &e.ChoiceConfig, true, sel)
	case *model.ComboBox:
		listID := model.NormalizeName(e.Name) + "-options"
		var s strings.Builder
		s.WriteString(`<input type="text" class="fp-combo-input" list="` + esc(listID) + `" value="` + esc(e.Text) +
			`" placeholder="` + esc(e.Placeholder) + `"><datalist id="` + esc(listID) + `">`)
		for _, o := range e.Options {
			s.WriteString(`<option value="` + esc(o) + `"></option>`)
		}
		s.WriteString(`</datalist>`)
		return markup{attrs: []attr{{"data-count", strconv.Itoa(len(e.Options))}}, inner: s.String()}
	case *model.Checkbox:
		checked := ""
		if e.Checked {
			checked = " checked"
		}
		return markup{
			classes: []string{"label-" + esc(e.LabelPosition)},
			inner: `<label class="fp-checkbox"><input type="checkbox"` + checked + `><span class="checkbox-box"></span>` +
				`<span class="checkbox-label">` + esc(e.Label) + `</span></label>`,
		}
	case *model.RadioGroup:
		var s strings.Builder
		group := model.NormalizeName(e.Name) + "-radio"
		for i, o := range e.Options {
			checked := ""
			if i == e.SelectedIndex {
				checked = " checked"
			}
			s.WriteString(`<label class="radio-option"><input type="radio" name="` + esc(group) + `" value="` + strconv.Itoa(i) + `"` + checked + `>` +
				`<span class="radio-dot"></span><span class="radio-label">` + esc(o) + `</span></label>`)
		}
		return markup{
			classes: []string{e.Orientation},
			attrs:   []attr{{"data-count", strconv.Itoa(len(e.Options))}},
			inner:   s.String(),
		}
	case *model.TextField:
		limit := ""
		if e.MaxLength > 0 {
			limit = ` maxlength="` + strconv.Itoa(e.MaxLength) + `"`
		}
		return markup{inner: `<input type="text" class="fp-text" value="` + esc(e.Value) + `" placeholder="` + esc(e.Placeholder) +
			`"` + limit + `>`}
	case *model.Stepper:
		return markup{
			attrs: []attr{dataNum("data-min", e.Min), dataNum("data-max", e.Max), dataNum("data-step", e.Step), {"data-decimals", strconv.Itoa(e.DecimalPlaces)}},
			inner: `<button type="button" class="stepper-dec">-</button><span class="stepper-value">` +
				strconv.FormatFloat(e.Value, 'f', max(e.DecimalPlaces, 0), 64) + `</span><button type="button" class="stepper-inc">+</button>`,
		}
	case *model.MenuButton:
		var s strings.Builder
		s.WriteString(`<button type="button" class="menu-trigger">` + esc(e.Label) + `</button><div class="menu-list">`)
		for i, it := range e.MenuItems {
			s.WriteString(`<div class="menu-item" data-index="` + strconv.Itoa(i) + `">` + esc(it) + `</div>`)
		}
		s.WriteString(`</div>`)
		return markup{inner: s.String()}
	case *model.Breadcrumb:
		var s strings.Builder
		for i, it := range e.Items {
			if i > 0 {
				s.WriteString(`<span class="crumb-sep">` + esc(e.Separator) + `</span>`)
			}
			cls := "crumb"
			if i == len(e.Items)-1 {
				cls += " active"
			}
			s.WriteString(`<span class="` + cls + `" data-index="` + strconv.Itoa(i) + `">` + esc(it) + `</span>`)
		}
		return markup{inner: s.String()}
	case *model.TabBar:
		return markup{
			attrs: []attr{{"data-count", strconv.Itoa(len(e.Tabs))}, {"data-selected", strconv.Itoa(e.ActiveTab)}},
			inner: itemList("tab", e.Tabs, e.ActiveTab),
		}
	case *model.TreeView:
		var s strings.Builder
		for i, it := range e.Items {
			s.WriteString(`<div class="tree-item" data-index="` + strconv.Itoa(i) + `" data-depth="` + strconv.Itoa(it.Depth) +
				`" style="padding-left: ` + px(float64(it.Depth)*e.Indent+4) + `;">` + esc(it.Label) + `</div>`)
		}
		return markup{inner: s.String()}
	case *model.WindowLink:
		return markup{
			attrs: []attr{{"data-target-window", e.TargetWindowID}},
			inner: `<button type="button" class="window-link-button">` + esc(e.Label) + `</button>`,
		}

	case *model.Label:
		return markup{inner: `<span class="label-text">` + esc(e.Text) + `</span>`}
	case *model.Meter:
		return meterMarkup(&e.MeterConfig, false)
	case *model.GainReductionMeter:
		return meterMarkup(&e.MeterConfig, true)
	case *model.DBDisplay:
		return readoutMarkup(&e.ReadoutConfig, formatValue(e.Value, 0, "custom", e.DecimalPlaces, " "+e.Unit))
	case *model.FrequencyDisplay:
		text := formatValue(e.Value, 0, "hz", e.DecimalPlaces, "")
		if e.Unit != "" && e.Unit != "Hz" {
			text = formatValue(e.Value, 0, "custom", e.DecimalPlaces, " "+e.Unit)
		}
		return readoutMarkup(&e.ReadoutConfig, text)
	case *model.PresetBrowser:
		return markup{
			attrs: []attr{{"data-selected", strconv.Itoa(e.SelectedIndex)}},
			inner: `<div class="preset-list">` + itemList("preset-item", e.Presets, e.SelectedIndex) + `</div>`,
		}
	case *model.Waveform, *model.Oscilloscope, *model.Goniometer:
		return scopeMarkup(el.Base(), el.(model.Scope).Scope())
	case *model.SpectrumAnalyzer:
		m := scopeMarkup(&e.BaseConfig, &e.ScopeConfig)
		m.attrs = append(m.attrs, attr{"data-bars", strconv.Itoa(e.BarCount)})
		return m
	case *model.ModulationMatrix:
		var s strings.Builder
		s.WriteString(`<table class="modmatrix"><thead><tr><th></th>`)
		for _, d := range e.Destinations {
			s.WriteString(`<th>` + esc(d) + `</th>`)
		}
		s.WriteString(`</tr></thead><tbody>`)
		for i, src := range e.Sources {
			s.WriteString(`<tr><th>` + esc(src) + `</th>`)
			for j := range e.Destinations {
				s.WriteString(fmt.Sprintf(`<td class="mod-cell" data-source="%d" data-destination="%d"></td>`, i, j))
			}
			s.WriteString(`</tr>`)
		}
		s.WriteString(`</tbody></table>`)
		return markup{inner: s.String()}

	case *model.EQCurve, *model.CompressorCurve, *model.EnvelopeDisplay, *model.LFODisplay, *model.FilterResponse:
		return curveMarkup(el.(model.Curve))

	case *model.PianoKeyboard:
		return pianoMarkup(e)
	case *model.DrumPad:
		return markup{
			attrs: []attr{{"data-note", strconv.Itoa(e.MidiNote)}},
			inner: `<div class="pad-surface"><span class="pad-label">` + esc(e.Label) + `</span></div>`,
		}
	case *model.XYPad:
		m := markup{
			attrs: []attr{dataNum("data-x", clamp01(e.XValue)), dataNum("data-y", clamp01(e.YValue))},
			inner: `<div class="xy-grid"></div><div class="xy-dot" style="left: ` + pct(clamp01(e.XValue)) +
				`; top: ` + pct(1-clamp01(e.YValue)) + `;"></div>`,
		}
		if e.YParameterID != "" {
			m.attrs = append(m.attrs, attr{"data-y-parameter-id", e.YParameterID})
		}
		return m
	case *model.StepSequencer:
		var s strings.Builder
		for i := 0; i < e.StepCount; i++ {
			cls := "seq-step"
			if i < len(e.Pattern) && e.Pattern[i] {
				cls += " active"
			}
			s.WriteString(`<div class="` + cls + `" data-index="` + strconv.Itoa(i) + `"></div>`)
		}
		return markup{attrs: []attr{{"data-count", strconv.Itoa(e.StepCount)}}, inner: s.String()}
	case *model.LoopPoints:
		lo, hi := clamp01(math.Min(e.Start, e.End)), clamp01(math.Max(e.Start, e.End))
		return markup{
			attrs: []attr{dataNum("data-start", lo), dataNum("data-end", hi)},
			inner: `<div class="loop-region" style="left: ` + pct(lo) + `; width: ` + pct(hi-lo) + `;"></div>` +
				`<div class="loop-marker loop-start" style="left: ` + pct(lo) + `;"></div>` +
				`<div class="loop-marker loop-end" style="left: ` + pct(hi) + `;"></div>`,
		}

	case *model.Panel:
		return containerMarkup(&e.ContainerConfig, "", "container-content")
	case *model.Frame:
		return containerMarkup(&e.ContainerConfig, "", "container-content")
	case *model.GroupBox:
		return containerMarkup(&e.ContainerConfig, `<div class="groupbox-header">`+esc(e.HeaderText)+`</div>`, "container-content")
	case *model.Collapsible:
		m := containerMarkup(&e.ContainerConfig,
			`<div class="collapsible-header"><span class="collapsible-arrow"></span><span class="collapsible-title">`+
				esc(e.HeaderText)+`</span></div>`, "collapsible-content")
		if e.Collapsed {
			m.classes = append(m.classes, "collapsed")
		}
		return m

	case *model.Image:
		return markup{inner: `<img class="image-content" src="` + esc(e.Src) + `" alt="` + esc(e.Name) + `" draggable="false">`}
	case *model.SVGGraphic:
		return markup{inner: `<img class="svg-graphic" src="` + esc(AssetPath(e)) + `" alt="` + esc(e.Name) + `" draggable="false">`}
	case *model.Rectangle:
		return markup{}
	case *model.Line:
		return markup{inner: `<div class="line-stroke"></div>`}
	default:
		unhandled("html", el)
	}
	return markup{}
}
