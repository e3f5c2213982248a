package model

import "math"

// Element is one node of a control-surface layout. The set of
// implementations is closed: only types in this package satisfy it.
type Element interface {
	// Kind returns the discriminator of the concrete type.
	Kind() Kind
	// Base returns the shared record. Callers must not retain it across a
	// Snapshot.Clone.
	Base() *BaseConfig
	element()
}

// BaseConfig is the record every element shares.
type BaseConfig struct {
	Type     Kind    `json:"type"`
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Rotation float64 `json:"rotation"`
	ZIndex   int     `json:"zIndex"`
	Locked   bool    `json:"locked"`
	Visible  bool    `json:"visible"`

	// ParameterID binds the element to a host parameter.
	ParameterID string `json:"parameterId,omitempty"`
	// ParentID points at the containing element. Child geometry is
	// relative to the parent's top-left corner.
	ParentID string `json:"parentId,omitempty"`
	// LayerID selects the render layer; empty means DefaultLayerID.
	LayerID string `json:"layerId,omitempty"`
}

func (b *BaseConfig) Base() *BaseConfig { return b }
func (*BaseConfig) element()            {}

// ValueRange is a value with its bounds.
type ValueRange struct {
	Value float64 `json:"value"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

// Normalized maps Value into [0,1]. A degenerate range yields 0.
func (r ValueRange) Normalized() float64 {
	return normalize(r.Value, r.Min, r.Max)
}

func normalize(v, lo, hi float64) float64 {
	if hi <= lo || math.IsNaN(v) {
		return 0
	}
	n := (v - lo) / (hi - lo)
	return math.Max(0, math.Min(1, n))
}

// LabelDisplay configures the caption and value readout drawn around a
// control.
type LabelDisplay struct {
	ShowLabel          bool    `json:"showLabel"`
	LabelText          string  `json:"labelText"`
	LabelPosition      string  `json:"labelPosition"`
	LabelFontSize      float64 `json:"labelFontSize"`
	LabelColor         string  `json:"labelColor"`
	LabelFontFamily    string  `json:"labelFontFamily,omitempty"`
	ShowValue          bool    `json:"showValue"`
	ValuePosition      string  `json:"valuePosition"`
	ValueFormat        string  `json:"valueFormat"` // numeric, percentage, db, hz, custom
	ValueSuffix        string  `json:"valueSuffix"`
	ValueDecimalPlaces int     `json:"valueDecimalPlaces"`
	ValueFontSize      float64 `json:"valueFontSize"`
	ValueColor         string  `json:"valueColor"`
}

func (l *LabelDisplay) Labels() *LabelDisplay { return l }

func defaultLabels(text string) LabelDisplay {
	return LabelDisplay{
		LabelText:          text,
		LabelPosition:      "bottom",
		LabelFontSize:      12,
		LabelColor:         "#ffffff",
		ValuePosition:      "top",
		ValueFormat:        "numeric",
		ValueDecimalPlaces: 2,
		ValueFontSize:      12,
		ValueColor:         "#a0a0a0",
	}
}

// ColorStop is one stop of a gradient.
type ColorStop struct {
	Position float64 `json:"position"` // 0..1
	Color    string  `json:"color"`
}

// RotaryConfig is shared by the knob variants.
type RotaryConfig struct {
	Diameter float64 `json:"diameter"`
	ValueRange
	StartAngle     float64 `json:"startAngle"` // degrees from top
	EndAngle       float64 `json:"endAngle"`
	Style          string  `json:"style"` // arc, filled, dot, line
	TrackColor     string  `json:"trackColor"`
	FillColor      string  `json:"fillColor"`
	IndicatorColor string  `json:"indicatorColor"`
	TrackWidth     float64 `json:"trackWidth"`
	LabelDisplay
}

func (c *RotaryConfig) Rotary() *RotaryConfig { return c }

// Rotary is implemented by every knob variant.
type Rotary interface {
	Element
	Rotary() *RotaryConfig
}

// LinearConfig is shared by the straight slider variants.
type LinearConfig struct {
	Orientation string `json:"orientation"` // vertical, horizontal
	ValueRange
	TrackColor     string  `json:"trackColor"`
	TrackFillColor string  `json:"trackFillColor"`
	ThumbColor     string  `json:"thumbColor"`
	ThumbWidth     float64 `json:"thumbWidth"`
	ThumbHeight    float64 `json:"thumbHeight"`
	LabelDisplay
}

func (c *LinearConfig) Linear() *LinearConfig { return c }

// Linear is implemented by every straight slider variant.
type Linear interface {
	Element
	Linear() *LinearConfig
}

// ButtonConfig is shared by push buttons.
type ButtonConfig struct {
	Mode            string  `json:"mode"` // momentary, toggle
	Label           string  `json:"label"`
	Pressed         bool    `json:"pressed"`
	BackgroundColor string  `json:"backgroundColor"`
	TextColor       string  `json:"textColor"`
	BorderColor     string  `json:"borderColor"`
	BorderRadius    float64 `json:"borderRadius"`
	BorderWidth     float64 `json:"borderWidth"`
	FontFamily      string  `json:"fontFamily,omitempty"`
	FontSize        float64 `json:"fontSize"`
}

func (c *ButtonConfig) Button() *ButtonConfig { return c }

// Pushable is implemented by push buttons.
type Pushable interface {
	Element
	Button() *ButtonConfig
}

// SwitchConfig is shared by two-state switches.
type SwitchConfig struct {
	IsOn       bool   `json:"isOn"`
	OnColor    string `json:"onColor"`
	OffColor   string `json:"offColor"`
	ThumbColor string `json:"thumbColor"`
	Label      string `json:"label,omitempty"`
}

func (c *SwitchConfig) Switch() *SwitchConfig { return c }

// Switchable is implemented by two-state switches.
type Switchable interface {
	Element
	Switch() *SwitchConfig
}

// ChoiceConfig is shared by list pickers.
type ChoiceConfig struct {
	Options         []string `json:"options"`
	SelectedIndex   int      `json:"selectedIndex"`
	Placeholder     string   `json:"placeholder,omitempty"`
	BackgroundColor string   `json:"backgroundColor"`
	TextColor       string   `json:"textColor"`
	BorderColor     string   `json:"borderColor"`
	BorderRadius    float64  `json:"borderRadius"`
	FontSize        float64  `json:"fontSize"`
	FontFamily      string   `json:"fontFamily,omitempty"`
}

func (c *ChoiceConfig) Choice() *ChoiceConfig { return c }

// Chooser is implemented by list pickers.
type Chooser interface {
	Element
	Choice() *ChoiceConfig
}

// MeterConfig is shared by level meters.
type MeterConfig struct {
	Orientation string `json:"orientation"`
	ValueRange
	ColorStops      []ColorStop `json:"colorStops"`
	BackgroundColor string      `json:"backgroundColor"`
	ShowPeakHold    bool        `json:"showPeakHold"`
	SegmentCount    int         `json:"segmentCount,omitempty"`
}

func (c *MeterConfig) Meter() *MeterConfig { return c }

// Metering is implemented by level meters.
type Metering interface {
	Element
	Meter() *MeterConfig
}

// ReadoutConfig is shared by numeric readouts.
type ReadoutConfig struct {
	Value           float64 `json:"value"`
	DecimalPlaces   int     `json:"decimalPlaces"`
	Unit            string  `json:"unit"`
	FontFamily      string  `json:"fontFamily"`
	FontSize        float64 `json:"fontSize"`
	TextColor       string  `json:"textColor"`
	BackgroundColor string  `json:"backgroundColor"`
}

func (c *ReadoutConfig) Readout() *ReadoutConfig { return c }

// Readout is implemented by numeric readouts.
type Readout interface {
	Element
	Readout() *ReadoutConfig
}

// ScopeConfig is shared by canvas-drawn signal visualizations.
type ScopeConfig struct {
	TraceColor      string  `json:"traceColor"`
	BackgroundColor string  `json:"backgroundColor"`
	GridColor       string  `json:"gridColor"`
	ShowGrid        bool    `json:"showGrid"`
	LineWidth       float64 `json:"lineWidth"`
}

func (c *ScopeConfig) Scope() *ScopeConfig { return c }

// Scope is implemented by signal visualizations.
type Scope interface {
	Element
	Scope() *ScopeConfig
}

// CurveConfig is shared by response-curve displays.
type CurveConfig struct {
	CurveColor      string      `json:"curveColor"`
	FillGradient    []ColorStop `json:"fillGradient,omitempty"`
	BackgroundColor string      `json:"backgroundColor"`
	GridColor       string      `json:"gridColor"`
	ShowGrid        bool        `json:"showGrid"`
	LineWidth       float64     `json:"lineWidth"`
}

func (c *CurveConfig) Curve() *CurveConfig { return c }

// Curve is implemented by response-curve displays.
type Curve interface {
	Element
	Curve() *CurveConfig
}

// ScrollbarConfig requests div-based scrollbars on a container.
type ScrollbarConfig struct {
	Width      float64 `json:"width"`
	ThumbColor string  `json:"thumbColor"`
	TrackColor string  `json:"trackColor"`
	ShowArrows bool    `json:"showArrows"`
}

// ContainerConfig is shared by elements that can hold children.
type ContainerConfig struct {
	BackgroundColor string  `json:"backgroundColor"`
	BorderWidth     float64 `json:"borderWidth"`
	BorderColor     string  `json:"borderColor"`
	BorderRadius    float64 `json:"borderRadius"`
	Padding         float64 `json:"padding"`
	// Scrollbar is nil for native scrolling.
	Scrollbar *ScrollbarConfig `json:"customScrollbar,omitempty"`
}

func (c *ContainerConfig) Container() *ContainerConfig { return c }

// Containing is implemented by container elements.
type Containing interface {
	Element
	Container() *ContainerConfig
}

// HeaderConfig is shared by containers with a title bar.
type HeaderConfig struct {
	HeaderText       string  `json:"headerText"`
	HeaderFontSize   float64 `json:"headerFontSize"`
	HeaderColor      string  `json:"headerColor"`
	HeaderBackground string  `json:"headerBackground"`
}
