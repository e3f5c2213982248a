package codegen

import (
	"math"
	"sort"
	"strings"

	"github.com/agentic-research/faceplate/internal/model"
)

const cssReset = `*, *::before, *::after {
  box-sizing: border-box;
  margin: 0;
  padding: 0;
}
`

const cssBase = `.element {
  position: absolute;
  user-select: none;
  -webkit-user-select: none;
}
.element button, .element input, .element select {
  font: inherit;
  color: inherit;
}
.control-label, .control-value {
  position: absolute;
  left: 50%;
  transform: translateX(-50%);
  white-space: nowrap;
  pointer-events: none;
  font-family: var(--fp-label-font, "Inter", sans-serif);
}
.control-label {
  font-size: var(--fp-label-size, 12px);
  color: var(--fp-label-color, #ffffff);
}
.control-value {
  font-size: var(--fp-value-size, 12px);
  color: var(--fp-value-color, #a0a0a0);
}
.label-bottom, .value-bottom {
  top: 100%;
  margin-top: 4px;
}
.label-top, .value-top {
  bottom: 100%;
  margin-bottom: 4px;
}
.label-left, .value-left {
  right: 100%;
  left: auto;
  top: 50%;
  transform: translateY(-50%);
  margin-right: 6px;
}
.label-right, .value-right {
  left: 100%;
  top: 50%;
  transform: translateY(-50%);
  margin-left: 6px;
}
`

// sharedBlocks are emitted once per family in use.
var sharedBlocks = map[string]string{
	"rotary": `.knob-svg {
  display: block;
  overflow: visible;
}
.knob-arc-track {
  stroke: var(--fp-track-color);
}
.knob-arc-fill {
  stroke: var(--fp-fill-color);
}
.knob-indicator, .knob-step {
  stroke: var(--fp-indicator-color);
  fill: var(--fp-indicator-color);
}
.knob-step {
  stroke-width: 1;
  opacity: 0.6;
}
`,
	"linear": `.slider-track {
  position: absolute;
  inset: 0;
  border-radius: 4px;
  background: var(--fp-track-color);
  cursor: pointer;
}
.vertical > .slider-track {
  left: 50%;
  width: 6px;
  transform: translateX(-50%);
}
.horizontal > .slider-track {
  top: 50%;
  height: 6px;
  transform: translateY(-50%);
}
.slider-fill {
  position: absolute;
  border-radius: inherit;
  background: var(--fp-fill-color);
}
.vertical .slider-fill {
  left: 0;
  right: 0;
}
.horizontal .slider-fill {
  top: 0;
  bottom: 0;
}
.slider-thumb {
  position: absolute;
  width: var(--fp-thumb-width);
  height: var(--fp-thumb-height);
  border-radius: 4px;
  background: var(--fp-thumb-color);
}
.vertical .slider-thumb {
  left: 50%;
  transform: translate(-50%, 50%);
}
.horizontal .slider-thumb {
  top: 50%;
  transform: translate(-50%, -50%);
}
.slider-center {
  position: absolute;
  background: var(--fp-thumb-color);
  opacity: 0.5;
}
.vertical .slider-center {
  left: -4px;
  right: -4px;
  bottom: 50%;
  height: 1px;
}
.horizontal .slider-center {
  top: -4px;
  bottom: -4px;
  left: 50%;
  width: 1px;
}
.slider-notch {
  position: absolute;
  background: var(--fp-notch-color, #6b7280);
}
.vertical .slider-notch {
  left: -6px;
  right: -6px;
  height: 1px;
}
.horizontal .slider-notch {
  top: -6px;
  bottom: -6px;
  width: 1px;
}
.crossfade-label {
  position: absolute;
  top: 100%;
  font-size: 11px;
  color: var(--fp-thumb-color);
}
.crossfade-a {
  left: 0;
}
.crossfade-b {
  right: 0;
}
`,
	"arc": `.arc-svg {
  display: block;
  overflow: visible;
}
.arc-track {
  stroke: var(--fp-track-color);
}
.arc-fill {
  stroke: var(--fp-fill-color);
}
.arc-thumb {
  fill: var(--fp-thumb-color);
  cursor: pointer;
}
`,
	"range": `.range-track {
  position: absolute;
  background: var(--fp-track-color);
  border-radius: 3px;
}
.horizontal > .range-track {
  left: 0;
  right: 0;
  top: 50%;
  height: 6px;
  transform: translateY(-50%);
}
.vertical > .range-track {
  top: 0;
  bottom: 0;
  left: 50%;
  width: 6px;
  transform: translateX(-50%);
}
.range-fill {
  position: absolute;
  background: var(--fp-fill-color);
}
.horizontal .range-fill {
  top: 0;
  bottom: 0;
}
.vertical .range-fill {
  left: 0;
  right: 0;
}
.range-thumb {
  position: absolute;
  width: var(--fp-thumb-width);
  height: var(--fp-thumb-height);
  border-radius: 50%;
  background: var(--fp-thumb-color);
  cursor: grab;
}
.horizontal .range-thumb {
  top: 50%;
  transform: translate(-50%, -50%);
}
.vertical .range-thumb {
  left: 50%;
  transform: translate(-50%, 50%);
}
`,
	"multi": `.multislider-element {
  display: flex;
  align-items: stretch;
  gap: var(--fp-gap, 2px);
}
.multi-band {
  position: relative;
  flex: 1;
  background: var(--fp-track-color);
  cursor: ns-resize;
}
.multi-band-fill {
  position: absolute;
  left: 0;
  right: 0;
  bottom: 0;
  background: var(--fp-fill-color);
}
`,
	"button": `.fp-button {
  width: 100%;
  height: 100%;
  display: flex;
  align-items: center;
  justify-content: center;
  gap: 4px;
  cursor: pointer;
  border-style: solid;
  transition: filter 0.05s;
}
.pressed .fp-button {
  filter: brightness(0.8);
}
.button-icon {
  width: 60%;
  height: 60%;
  object-fit: contain;
}
`,
	"switch": `.switch-track {
  position: absolute;
  inset: 0;
  border-radius: 9999px;
  background: var(--fp-off-color);
  cursor: pointer;
  transition: background 0.15s;
}
.on .switch-track {
  background: var(--fp-on-color);
}
.switch-thumb {
  position: absolute;
  top: 3px;
  bottom: 3px;
  left: 3px;
  aspect-ratio: 1;
  border-radius: 50%;
  background: var(--fp-thumb-color);
  transition: transform 0.15s;
}
.on .switch-thumb {
  transform: translateX(100%);
}
.power-ring {
  position: absolute;
  inset: 0;
  border-radius: 50%;
  display: flex;
  align-items: center;
  justify-content: center;
  background: var(--fp-off-color);
  cursor: pointer;
}
.power-icon path {
  stroke: var(--fp-thumb-color);
}
.power-led {
  position: absolute;
  top: 2px;
  right: 2px;
  width: 6px;
  height: 6px;
  border-radius: 50%;
  background: #1f2937;
}
.on .power-led {
  background: var(--fp-led-color, var(--fp-on-color));
}
`,
	"rocker": `.rocker-body {
  position: absolute;
  inset: 0;
  border-radius: 4px;
  border: 1px solid var(--fp-border-color);
  background: var(--fp-background);
  cursor: pointer;
}
.rocker-paddle {
  position: absolute;
  left: 3px;
  right: 3px;
  height: 50%;
  border-radius: 3px;
  background: var(--fp-switch-color);
  transition: top 0.1s;
}
[data-position="up"] .rocker-paddle {
  top: 3px;
}
[data-position="center"] .rocker-paddle {
  top: 25%;
}
[data-position="down"] .rocker-paddle {
  top: calc(50% - 3px);
}
`,
	"rotaryswitch": `.rotary-body {
  position: absolute;
  inset: 20%;
  border-radius: 50%;
  background: var(--fp-body-color);
  cursor: pointer;
}
.rotary-pointer {
  position: absolute;
  left: 50%;
  top: 8%;
  width: 3px;
  height: 42%;
  margin-left: -1.5px;
  transform-origin: 50% 100%;
  background: var(--fp-pointer-color);
}
.rotary-label {
  position: absolute;
  transform: translate(-50%, -50%);
  font-size: 10px;
  color: var(--fp-label-color);
}
`,
	"segments": `.segmentbutton-element, .tabbar-element {
  display: flex;
  overflow: hidden;
}
.segment, .tab {
  flex: 1;
  display: flex;
  align-items: center;
  justify-content: center;
  cursor: pointer;
  font-size: 12px;
}
.segment.active {
  background: var(--fp-selected-color);
}
.tab.active {
  background: var(--fp-active-color);
  box-shadow: inset 0 -2px 0 var(--fp-indicator-color);
}
`,
	"choice": `.fp-select, .fp-combo-input, .fp-text {
  width: 100%;
  height: 100%;
  padding: 0 8px;
  border-style: solid;
  border-width: 1px;
  outline: none;
}
`,
	"checks": `.fp-checkbox, .radio-option {
  display: flex;
  align-items: center;
  gap: 6px;
  cursor: pointer;
}
.fp-checkbox input, .radio-option input {
  display: none;
}
.checkbox-box, .radio-dot {
  width: 14px;
  height: 14px;
  border: 1px solid var(--fp-border-color, #6b7280);
}
.radio-dot {
  border-radius: 50%;
}
.fp-checkbox input:checked + .checkbox-box, .radio-option input:checked + .radio-dot {
  background: var(--fp-check-color);
}
.label-left .fp-checkbox {
  flex-direction: row-reverse;
}
.radiogroup-element {
  display: flex;
  gap: var(--fp-spacing, 8px);
}
.radiogroup-element.vertical {
  flex-direction: column;
}
`,
	"stepper": `.stepper-element {
  display: flex;
  align-items: stretch;
}
.stepper-dec, .stepper-inc {
  width: 28px;
  border: none;
  cursor: pointer;
  background: var(--fp-button-color);
}
.stepper-value {
  flex: 1;
  display: flex;
  align-items: center;
  justify-content: center;
}
`,
	"lists": `.menu-trigger {
  width: 100%;
  height: 100%;
  cursor: pointer;
  border-style: solid;
  border-width: 1px;
}
.menu-list {
  display: none;
  position: absolute;
  top: 100%;
  left: 0;
  min-width: 100%;
  z-index: 1000;
  background: var(--fp-background);
}
.menubutton-element.open .menu-list {
  display: block;
}
.menu-item, .preset-item, .tree-item {
  padding: 4px 8px;
  cursor: pointer;
  white-space: nowrap;
}
.preset-list {
  height: 100%;
  overflow-y: auto;
}
.preset-item.active, .tree-item.active {
  background: var(--fp-selected-color);
}
.breadcrumb-element {
  display: flex;
  align-items: center;
  gap: 6px;
}
.crumb {
  cursor: pointer;
  color: var(--fp-link-color);
}
.crumb.active {
  color: var(--fp-active-color);
}
.window-link-button {
  width: 100%;
  height: 100%;
  border: none;
  cursor: pointer;
}
`,
	"meter": `.meter-fill {
  position: absolute;
  background: var(--fp-gradient);
}
.vertical > .meter-fill {
  left: 0;
  right: 0;
}
.horizontal > .meter-fill {
  top: 0;
  bottom: 0;
}
.meter-peak {
  position: absolute;
  left: 0;
  right: 0;
  height: 2px;
  background: #ffffff;
  opacity: 0.8;
}
`,
	"readout": `.readout-value {
  display: flex;
  width: 100%;
  height: 100%;
  align-items: center;
  justify-content: center;
  font-variant-numeric: tabular-nums;
}
`,
	"scope": `.scope-canvas {
  display: block;
  width: 100%;
  height: 100%;
}
.modmatrix {
  border-collapse: collapse;
  font-size: var(--fp-header-size, 11px);
}
.modmatrix th {
  background: var(--fp-header-background);
  color: var(--fp-header-color);
  padding: 2px 4px;
}
.mod-cell {
  width: var(--fp-cell-size);
  height: var(--fp-cell-size);
  border: 1px solid var(--fp-border-color);
  background: var(--fp-cell-color);
  cursor: pointer;
}
.mod-cell.active {
  background: var(--fp-active-color);
}
`,
	"curve": `.curve-svg {
  display: block;
}
.curve-grid {
  stroke: var(--fp-grid-color);
}
.curve-line {
  stroke: var(--fp-fill-color);
}
.curve-area {
  fill: var(--fp-gradient);
  opacity: 0.35;
}
`,
	"specialized": `.piano-key {
  position: absolute;
  top: 0;
  cursor: pointer;
}
.piano-key.white {
  height: 100%;
  background: var(--fp-white-key);
  border: 1px solid #9ca3af;
}
.piano-key.black {
  height: 60%;
  z-index: 1;
  background: var(--fp-black-key);
}
.piano-key.active {
  background: var(--fp-active-color);
}
.pad-surface {
  position: absolute;
  inset: 0;
  display: flex;
  align-items: center;
  justify-content: center;
  cursor: pointer;
}
.drumpad-element.active .pad-surface {
  background: var(--fp-active-color);
}
.xy-grid {
  position: absolute;
  inset: 0;
  background-image: linear-gradient(var(--fp-grid-color) 1px, transparent 1px), linear-gradient(90deg, var(--fp-grid-color) 1px, transparent 1px);
  background-size: 25% 25%;
}
.xy-dot {
  position: absolute;
  width: 12px;
  height: 12px;
  border-radius: 50%;
  transform: translate(-50%, -50%);
  background: var(--fp-dot-color);
}
.stepsequencer-element {
  display: flex;
  gap: 2px;
}
.seq-step {
  flex: 1;
  background: var(--fp-inactive-color);
  cursor: pointer;
}
.seq-step.active {
  background: var(--fp-active-color);
}
.loop-region {
  position: absolute;
  top: 0;
  bottom: 0;
  background: var(--fp-region-color);
}
.loop-marker {
  position: absolute;
  top: 0;
  bottom: 0;
  width: 2px;
  margin-left: -1px;
  background: var(--fp-marker-color);
  cursor: ew-resize;
}
`,
	"container": `.container-content, .collapsible-content {
  position: relative;
  width: 100%;
  overflow: auto;
}
.container-content {
  height: 100%;
}
.groupbox-header, .collapsible-header {
  display: flex;
  align-items: center;
  gap: 6px;
  padding: 0 8px;
  font-size: var(--fp-header-size, 12px);
  color: var(--fp-header-color);
  background: var(--fp-header-background);
}
.groupbox-element > .container-content {
  height: calc(100% - 1.6em);
}
.collapsible-header {
  height: var(--fp-header-height, 28px);
  cursor: pointer;
}
.collapsible-arrow {
  width: 0;
  height: 0;
  border-left: 4px solid transparent;
  border-right: 4px solid transparent;
  border-top: 5px solid currentColor;
  transition: transform 0.15s;
}
.collapsed .collapsible-arrow {
  transform: rotate(-90deg);
}
.collapsible-content {
  max-height: var(--fp-max-content-height, none);
  background: var(--fp-content-background);
}
.collapsed > .collapsible-content {
  display: none;
}
`,
	"decorative": `.image-content, .svg-graphic {
  display: block;
  width: 100%;
  height: 100%;
  object-fit: var(--fp-fit, contain);
  pointer-events: none;
}
.line-stroke {
  position: absolute;
  left: 0;
  right: 0;
  top: 50%;
}
`,
}

var blockOf = map[model.Family]string{
	model.FamilyCurve:      "curve",
	model.FamilyContainer:  "container",
	model.FamilyDecorative: "decorative",
}

func sharedBlock(el model.Element) string {
	switch el.(type) {
	case model.Rotary:
		return "rotary"
	case model.Linear:
		return "linear"
	case *model.ArcSlider:
		return "arc"
	case *model.RangeSlider:
		return "range"
	case *model.MultiSlider:
		return "multi"
	case model.Pushable:
		return "button"
	case model.Switchable:
		return "switch"
	case *model.RockerSwitch:
		return "rocker"
	case *model.RotarySwitch:
		return "rotaryswitch"
	case *model.SegmentButton, *model.TabBar:
		return "segments"
	case model.Chooser, *model.TextField:
		return "choice"
	case *model.Checkbox, *model.RadioGroup:
		return "checks"
	case *model.Stepper:
		return "stepper"
	case *model.MenuButton, *model.PresetBrowser, *model.TreeView, *model.Breadcrumb, *model.WindowLink:
		return "lists"
	case model.Metering:
		return "meter"
	case model.Readout:
		return "readout"
	case model.Scope, *model.ModulationMatrix:
		return "scope"
	case *model.PianoKeyboard, *model.DrumPad, *model.XYPad, *model.StepSequencer, *model.LoopPoints:
		return "specialized"
	}
	f, _ := el.Kind().Family()
	return blockOf[f]
}

// GenerateCSS renders styles.css for one window.
func GenerateCSS(elements []model.Element, opts Options) string {
	var b strings.Builder
	b.WriteString("/* Generated by faceplate. Do not edit. */\n")
	fontFaces(&b, elements)
	b.WriteString(cssReset)

	bg := cssValue(opts.BackgroundColor)
	if bg == "" {
		bg = "#1a1a1a"
	}
	var page decls
	page.add("width", "100%")
	page.add("height", "100%")
	page.add("overflow", "hidden")
	page.add("background", bg)
	page.rule(&b, "html, body")

	var wrapper decls
	wrapper.add("position", "relative")
	wrapper.add("width", "100%")
	wrapper.add("height", "100%")
	wrapper.add("overflow", "hidden")
	wrapper.rule(&b, "#plugin-wrapper")

	var container decls
	container.add("position", "relative")
	container.add("width", px(opts.Width))
	container.add("height", px(opts.Height))
	container.add("background", bg)
	container.add("transform-origin", "top left")
	container.add("overflow", "hidden")
	container.rule(&b, "#plugin-container")

	b.WriteString(cssBase)

	used := map[string]bool{}
	for _, el := range elements {
		if key := sharedBlock(el); key != "" {
			used[key] = true
		}
	}
	keys := make([]string, 0, len(used))
	for k := range used {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString(sharedBlocks[k])
	}

	for _, el := range opts.Layers.Sort(elements) {
		sel := "#" + model.NormalizeName(el.Base().Name)
		for _, r := range elementRules(el) {
			r.decls.rule(&b, sel+r.suffix)
		}
	}
	return b.String()
}

type cssRule struct {
	suffix string
	decls  decls
}

func gradient(angle float64, stops []model.ColorStop) string {
	if len(stops) == 0 {
		return ""
	}
	parts := []string{num(angle) + "deg"}
	for _, s := range stops {
		parts = append(parts, cssValue(s.Color)+" "+pct(clamp01(s.Position)))
	}
	return "linear-gradient(" + strings.Join(parts, ", ") + ")"
}

func labelDecls(d *decls, l *model.LabelDisplay) {
	if l.ShowLabel {
		d.add("--fp-label-size", px(l.LabelFontSize))
		d.color("--fp-label-color", l.LabelColor)
		if l.LabelFontFamily != "" {
			d.add("--fp-label-font", fontStack(l.LabelFontFamily))
		}
	}
	if l.ShowValue {
		d.add("--fp-value-size", px(l.ValueFontSize))
		d.color("--fp-value-color", l.ValueColor)
	}
}

func textDecls(d *decls, family string, size float64, color string) {
	d.add("font-family", fontStack(family))
	if size > 0 {
		d.add("font-size", px(size))
	}
	d.color("color", color)
}

func boxDecls(d *decls, bg, border string, width, radius float64) {
	d.color("background", bg)
	if border != "" && width > 0 {
		d.add("border", px(width)+" solid "+cssValue(border))
	}
	if radius > 0 {
		d.add("border-radius", px(radius))
	}
}

// elementRules dispatches on the concrete element type. Every type in the
// element union must have a case.
func elementRules(el model.Element) []cssRule {
	var d decls
	var extra []cssRule
	switch e := el.(type) {
	case *model.Knob, *model.SteppedKnob, *model.CenterDetentKnob, *model.DotIndicatorKnob:
		c := el.(model.Rotary).Rotary()
		d.color("--fp-track-color", c.TrackColor)
		d.color("--fp-fill-color", c.FillColor)
		d.color("--fp-indicator-color", c.IndicatorColor)
		d.add("--fp-start-angle", num(c.StartAngle))
		d.add("--fp-end-angle", num(c.EndAngle))
		d.add("--fp-track-width", num(c.TrackWidth))
		d.add("cursor", "ns-resize")
		labelDecls(&d, &c.LabelDisplay)
	case *model.Slider, *model.BipolarSlider, *model.NotchedSlider, *model.CrossfadeSlider:
		c := el.(model.Linear).Linear()
		d.color("--fp-track-color", c.TrackColor)
		d.color("--fp-fill-color", c.TrackFillColor)
		d.color("--fp-thumb-color", c.ThumbColor)
		d.add("--fp-thumb-width", px(c.ThumbWidth))
		d.add("--fp-thumb-height", px(c.ThumbHeight))
		if n, ok := el.(*model.NotchedSlider); ok {
			d.color("--fp-notch-color", n.NotchColor)
		}
		labelDecls(&d, &c.LabelDisplay)
	case *model.ArcSlider:
		d.color("--fp-track-color", e.TrackColor)
		d.color("--fp-fill-color", e.FillColor)
		d.color("--fp-thumb-color", e.ThumbColor)
		d.add("--fp-start-angle", num(e.StartAngle))
		d.add("--fp-end-angle", num(e.EndAngle))
		labelDecls(&d, &e.LabelDisplay)
	case *model.RangeSlider:
		d.color("--fp-track-color", e.TrackColor)
		d.color("--fp-fill-color", e.FillColor)
		d.color("--fp-thumb-color", e.ThumbColor)
		d.add("--fp-thumb-width", px(e.ThumbWidth))
		d.add("--fp-thumb-height", px(e.ThumbHeight))
	case *model.MultiSlider:
		d.color("--fp-track-color", e.TrackColor)
		d.color("--fp-fill-color", e.FillColor)
		d.add("--fp-gap", px(e.Gap))
	case *model.Button, *model.IconButton:
		c := el.(model.Pushable).Button()
		var btn decls
		boxDecls(&btn, c.BackgroundColor, c.BorderColor, c.BorderWidth, c.BorderRadius)
		textDecls(&btn, c.FontFamily, c.FontSize, c.TextColor)
		extra = append(extra, cssRule{" .fp-button", btn})
	case *model.ToggleSwitch:
		d.color("--fp-on-color", e.OnColor)
		d.color("--fp-off-color", e.OffColor)
		d.color("--fp-thumb-color", e.ThumbColor)
	case *model.PowerButton:
		d.color("--fp-on-color", e.OnColor)
		d.color("--fp-off-color", e.OffColor)
		d.color("--fp-thumb-color", e.ThumbColor)
		d.color("--fp-led-color", e.LEDColor)
	case *model.RockerSwitch:
		d.color("--fp-background", e.BackgroundColor)
		d.color("--fp-switch-color", e.SwitchColor)
		d.color("--fp-border-color", e.BorderColor)
	case *model.RotarySwitch:
		d.color("--fp-body-color", e.BodyColor)
		d.color("--fp-pointer-color", e.PointerColor)
		d.color("--fp-label-color", e.LabelColor)
	case *model.SegmentButton:
		boxDecls(&d, e.BackgroundColor, e.BorderColor, 1, 4)
		d.color("--fp-selected-color", e.SelectedColor)
		d.color("color", e.TextColor)
	case *model.Dropdown, *model.MultiSelectDropdown, *model.ComboBox:
		c := el.(model.Chooser).Choice()
		var in decls
		d.color("background", c.BackgroundColor)
		in.color("background", c.BackgroundColor)
		in.color("border-color", c.BorderColor)
		if c.BorderRadius > 0 {
			in.add("border-radius", px(c.BorderRadius))
		}
		textDecls(&in, c.FontFamily, c.FontSize, c.TextColor)
		sub := " .fp-select"
		if _, ok := el.(*model.ComboBox); ok {
			sub = " .fp-combo-input"
		}
		extra = append(extra, cssRule{sub, in})
	case *model.Checkbox:
		d.color("--fp-check-color", e.CheckColor)
		d.color("--fp-border-color", e.BorderColor)
		d.color("color", e.TextColor)
	case *model.RadioGroup:
		d.color("--fp-check-color", e.RadioColor)
		d.add("--fp-spacing", px(e.Spacing))
		d.color("color", e.TextColor)
	case *model.TextField:
		var in decls
		in.color("background", e.BackgroundColor)
		in.color("border-color", e.BorderColor)
		if e.BorderRadius > 0 {
			in.add("border-radius", px(e.BorderRadius))
		}
		textDecls(&in, e.FontFamily, e.FontSize, e.TextColor)
		extra = append(extra, cssRule{" .fp-text", in})
	case *model.Stepper:
		boxDecls(&d, e.BackgroundColor, "", 0, 4)
		d.color("--fp-button-color", e.ButtonColor)
		d.color("color", e.TextColor)
	case *model.MenuButton:
		d.color("--fp-background", e.BackgroundColor)
		d.color("color", e.TextColor)
		var trig decls
		boxDecls(&trig, e.BackgroundColor, e.BorderColor, 1, 4)
		extra = append(extra, cssRule{" .menu-trigger", trig})
	case *model.Breadcrumb:
		d.color("--fp-link-color", e.LinkColor)
		d.color("--fp-active-color", e.ActiveColor)
		if e.FontSize > 0 {
			d.add("font-size", px(e.FontSize))
		}
	case *model.TabBar:
		d.color("background", e.BackgroundColor)
		d.color("--fp-active-color", e.ActiveColor)
		d.color("--fp-indicator-color", e.IndicatorColor)
		d.color("color", e.TextColor)
	case *model.TreeView:
		boxDecls(&d, e.BackgroundColor, "", 0, 0)
		d.color("color", e.TextColor)
		d.color("--fp-selected-color", e.SelectedColor)
		d.add("overflow-y", "auto")
	case *model.WindowLink:
		var btn decls
		boxDecls(&btn, e.BackgroundColor, "", 0, e.BorderRadius)
		btn.color("color", e.TextColor)
		extra = append(extra, cssRule{" .window-link-button", btn})

	case *model.Label:
		d.add("display", "flex")
		d.add("align-items", "center")
		justify := map[string]string{"left": "flex-start", "right": "flex-end"}[e.TextAlign]
		if justify == "" {
			justify = "center"
		}
		d.add("justify-content", justify)
		textDecls(&d, e.FontFamily, e.FontSize, e.Color)
		if e.FontWeight > 0 {
			d.add("font-weight", num(float64(e.FontWeight)))
		}
		d.add("white-space", "nowrap")
	case *model.Meter, *model.GainReductionMeter:
		c := el.(model.Metering).Meter()
		d.color("background", c.BackgroundColor)
		angle := 0.0
		if c.Orientation == "horizontal" {
			angle = 90
		}
		if _, ok := el.(*model.GainReductionMeter); ok {
			angle += 180
		}
		d.add("--fp-gradient", gradient(angle, c.ColorStops))
	case *model.DBDisplay, *model.FrequencyDisplay:
		c := el.(model.Readout).Readout()
		boxDecls(&d, c.BackgroundColor, "", 0, 4)
		textDecls(&d, c.FontFamily, c.FontSize, c.TextColor)
	case *model.PresetBrowser:
		boxDecls(&d, e.BackgroundColor, "", 0, 4)
		d.color("color", e.TextColor)
		d.color("--fp-selected-color", e.SelectedColor)
	case *model.Waveform, *model.Oscilloscope, *model.SpectrumAnalyzer, *model.Goniometer:
		c := el.(model.Scope).Scope()
		d.color("background", c.BackgroundColor)
		d.color("--fp-trace-color", c.TraceColor)
		d.color("--fp-grid-color", c.GridColor)
		d.add("--fp-line-width", num(c.LineWidth))
	case *model.ModulationMatrix:
		d.add("--fp-cell-size", px(e.CellSize))
		d.color("--fp-cell-color", e.CellColor)
		d.color("--fp-active-color", e.ActiveColor)
		d.color("--fp-border-color", e.BorderColor)
		d.color("--fp-header-background", e.HeaderBackground)
		d.color("--fp-header-color", e.HeaderColor)
		d.add("--fp-header-size", px(e.HeaderFontSize))
		d.add("overflow", "auto")

	case *model.EQCurve, *model.CompressorCurve, *model.EnvelopeDisplay, *model.LFODisplay, *model.FilterResponse:
		c := el.(model.Curve).Curve()
		d.color("background", c.BackgroundColor)
		d.color("--fp-fill-color", c.CurveColor)
		d.color("--fp-grid-color", c.GridColor)
		if g := gradient(180, c.FillGradient); g != "" {
			d.add("--fp-gradient", g)
		} else {
			d.color("--fp-gradient", c.CurveColor)
		}

	case *model.PianoKeyboard:
		d.color("--fp-white-key", e.WhiteKeyColor)
		d.color("--fp-black-key", e.BlackKeyColor)
		d.color("--fp-active-color", e.ActiveColor)
	case *model.DrumPad:
		var pad decls
		boxDecls(&pad, e.PadColor, "", 0, e.Radius)
		pad.color("color", e.TextColor)
		d.color("--fp-active-color", e.ActiveColor)
		extra = append(extra, cssRule{" .pad-surface", pad})
	case *model.XYPad:
		d.color("background", e.BackgroundColor)
		d.color("--fp-grid-color", e.GridColor)
		d.color("--fp-dot-color", e.DotColor)
		d.add("cursor", "crosshair")
	case *model.StepSequencer:
		d.color("--fp-active-color", e.ActiveColor)
		d.color("--fp-inactive-color", e.InactiveColor)
	case *model.LoopPoints:
		d.color("background", e.BackgroundColor)
		d.color("--fp-region-color", e.RegionColor)
		d.color("--fp-marker-color", e.MarkerColor)

	case *model.Panel, *model.Frame, *model.GroupBox, *model.Collapsible:
		c := el.(model.Containing).Container()
		style := "solid"
		if f, ok := el.(*model.Frame); ok && f.BorderStyle != "" {
			style = cssValue(f.BorderStyle)
		}
		d.color("background", c.BackgroundColor)
		if c.BorderWidth > 0 {
			d.add("border", px(c.BorderWidth)+" "+style+" "+cssValue(c.BorderColor))
		}
		if c.BorderRadius > 0 {
			d.add("border-radius", px(c.BorderRadius))
		}
		d.add("overflow", "hidden")
		var content decls
		if c.Padding > 0 {
			content.add("padding", px(c.Padding))
		}
		sub := " > .container-content"
		switch h := el.(type) {
		case *model.GroupBox:
			d.color("--fp-header-color", h.HeaderColor)
			d.color("--fp-header-background", h.HeaderBackground)
			d.add("--fp-header-size", px(h.HeaderFontSize))
		case *model.Collapsible:
			d.color("--fp-header-color", h.HeaderColor)
			d.color("--fp-header-background", h.HeaderBackground)
			d.add("--fp-header-size", px(h.HeaderFontSize))
			d.add("--fp-header-height", px(h.HeaderHeight))
			d.color("--fp-content-background", h.ContentBackground)
			if h.MaxContentHeight > 0 {
				d.add("--fp-max-content-height", px(h.MaxContentHeight))
			}
			sub = " > .collapsible-content"
		}
		extra = append(extra, cssRule{sub, content})

	case *model.Image:
		d.add("--fp-fit", cssValue(e.Fit))
	case *model.SVGGraphic:
		d.add("--fp-fit", cssValue(e.Fit))
	case *model.Rectangle:
		if g := gradient(e.GradientAngle, e.Gradient); g != "" {
			d.add("background", g)
		} else {
			d.color("background", e.FillColor)
		}
		if e.BorderWidth > 0 {
			d.add("border", px(e.BorderWidth)+" solid "+cssValue(e.BorderColor))
		}
		if e.BorderRadius > 0 {
			d.add("border-radius", px(e.BorderRadius))
		}
		if e.Opacity < 1 {
			d.add("opacity", num(math.Max(e.Opacity, 0)))
		}
	case *model.Line:
		var stroke decls
		style := cssValue(e.Style)
		if style == "" {
			style = "solid"
		}
		stroke.add("border-top", px(e.Thickness)+" "+style+" "+cssValue(e.Color))
		stroke.add("margin-top", px(-e.Thickness/2))
		extra = append(extra, cssRule{" .line-stroke", stroke})
	default:
		unhandled("css", el)
	}
	return append([]cssRule{{"", d}}, extra...)
}
