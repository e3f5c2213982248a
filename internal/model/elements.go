package model

// Labeled is implemented by controls with a caption and value readout.
type Labeled interface {
	Element
	Labels() *LabelDisplay
}

// Knob variants.

type Knob struct {
	BaseConfig
	RotaryConfig
}

type SteppedKnob struct {
	BaseConfig
	RotaryConfig
	Steps int `json:"steps"`
}

type CenterDetentKnob struct {
	BaseConfig
	RotaryConfig
	SnapThreshold float64 `json:"snapThreshold"`
}

type DotIndicatorKnob struct {
	BaseConfig
	RotaryConfig
	DotRadius float64 `json:"dotRadius"`
}

// Slider variants.

type Slider struct {
	BaseConfig
	LinearConfig
}

type BipolarSlider struct {
	BaseConfig
	LinearConfig
	CenterValue float64 `json:"centerValue"`
}

type NotchedSlider struct {
	BaseConfig
	LinearConfig
	NotchCount int    `json:"notchCount"`
	NotchColor string `json:"notchColor"`
}

type CrossfadeSlider struct {
	BaseConfig
	LinearConfig
	LabelA string `json:"labelA"`
	LabelB string `json:"labelB"`
}

type ArcSlider struct {
	BaseConfig
	ValueRange
	StartAngle float64 `json:"startAngle"`
	EndAngle   float64 `json:"endAngle"`
	TrackColor string  `json:"trackColor"`
	FillColor  string  `json:"fillColor"`
	ThumbColor string  `json:"thumbColor"`
	TrackWidth float64 `json:"trackWidth"`
	LabelDisplay
}

type RangeSlider struct {
	BaseConfig
	Orientation string  `json:"orientation"`
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	MinValue    float64 `json:"minValue"`
	MaxValue    float64 `json:"maxValue"`
	TrackColor  string  `json:"trackColor"`
	FillColor   string  `json:"fillColor"`
	ThumbColor  string  `json:"thumbColor"`
	ThumbWidth  float64 `json:"thumbWidth"`
	ThumbHeight float64 `json:"thumbHeight"`
}

// Bounds returns the selection normalized into [0,1].
func (r *RangeSlider) Bounds() (lo, hi float64) {
	return normalize(r.MinValue, r.Min, r.Max), normalize(r.MaxValue, r.Min, r.Max)
}

type MultiSlider struct {
	BaseConfig
	BandCount  int       `json:"bandCount"`
	BandValues []float64 `json:"bandValues"` // normalized
	TrackColor string    `json:"trackColor"`
	FillColor  string    `json:"fillColor"`
	Gap        float64   `json:"gap"`
}

// Buttons and switches.

type Button struct {
	BaseConfig
	ButtonConfig
}

type IconButton struct {
	BaseConfig
	ButtonConfig
	// IconSVG is inline SVG markup drawn inside the button.
	IconSVG string `json:"iconSvg"`
}

type ToggleSwitch struct {
	BaseConfig
	SwitchConfig
}

type PowerButton struct {
	BaseConfig
	SwitchConfig
	LEDColor string `json:"ledColor"`
}

type RockerSwitch struct {
	BaseConfig
	Mode            string `json:"mode"`     // 2-position, 3-position
	Position        int    `json:"position"` // 0 down, 1 center, 2 up
	BackgroundColor string `json:"backgroundColor"`
	SwitchColor     string `json:"switchColor"`
	BorderColor     string `json:"borderColor"`
}

type RotarySwitch struct {
	BaseConfig
	PositionCount   int      `json:"positionCount"`
	CurrentPosition int      `json:"currentPosition"`
	PositionLabels  []string `json:"positionLabels"`
	BodyColor       string   `json:"bodyColor"`
	PointerColor    string   `json:"pointerColor"`
	LabelColor      string   `json:"labelColor"`
	RotationAngle   float64  `json:"rotationAngle"` // total sweep in degrees
}

type SegmentButton struct {
	BaseConfig
	Segments        []string `json:"segments"`
	SelectedIndex   int      `json:"selectedIndex"`
	BackgroundColor string   `json:"backgroundColor"`
	SelectedColor   string   `json:"selectedColor"`
	TextColor       string   `json:"textColor"`
	BorderColor     string   `json:"borderColor"`
}

// Pickers and inputs.

type Dropdown struct {
	BaseConfig
	ChoiceConfig
}

type MultiSelectDropdown struct {
	BaseConfig
	ChoiceConfig
	SelectedIndices []int `json:"selectedIndices"`
}

type ComboBox struct {
	BaseConfig
	ChoiceConfig
	Text string `json:"text"`
}

type Checkbox struct {
	BaseConfig
	Label         string `json:"label"`
	Checked       bool   `json:"checked"`
	LabelPosition string `json:"labelPosition"` // left, right
	CheckColor    string `json:"checkColor"`
	BorderColor   string `json:"borderColor"`
	TextColor     string `json:"textColor"`
}

type RadioGroup struct {
	BaseConfig
	Options       []string `json:"options"`
	SelectedIndex int      `json:"selectedIndex"`
	Orientation   string   `json:"orientation"`
	Spacing       float64  `json:"spacing"`
	RadioColor    string   `json:"radioColor"`
	TextColor     string   `json:"textColor"`
}

type TextField struct {
	BaseConfig
	Value           string  `json:"value"`
	Placeholder     string  `json:"placeholder"`
	MaxLength       int     `json:"maxLength"`
	FontFamily      string  `json:"fontFamily"`
	FontSize        float64 `json:"fontSize"`
	TextColor       string  `json:"textColor"`
	BackgroundColor string  `json:"backgroundColor"`
	BorderColor     string  `json:"borderColor"`
	BorderRadius    float64 `json:"borderRadius"`
}

type Stepper struct {
	BaseConfig
	ValueRange
	Step            float64 `json:"step"`
	DecimalPlaces   int     `json:"decimalPlaces"`
	BackgroundColor string  `json:"backgroundColor"`
	ButtonColor     string  `json:"buttonColor"`
	TextColor       string  `json:"textColor"`
}

type MenuButton struct {
	BaseConfig
	Label           string   `json:"label"`
	MenuItems       []string `json:"menuItems"`
	BackgroundColor string   `json:"backgroundColor"`
	TextColor       string   `json:"textColor"`
	BorderColor     string   `json:"borderColor"`
}

type Breadcrumb struct {
	BaseConfig
	Items       []string `json:"items"`
	Separator   string   `json:"separator"`
	LinkColor   string   `json:"linkColor"`
	ActiveColor string   `json:"activeColor"`
	FontSize    float64  `json:"fontSize"`
}

type TabBar struct {
	BaseConfig
	Tabs            []string `json:"tabs"`
	ActiveTab       int      `json:"activeTab"`
	BackgroundColor string   `json:"backgroundColor"`
	ActiveColor     string   `json:"activeColor"`
	TextColor       string   `json:"textColor"`
	IndicatorColor  string   `json:"indicatorColor"`
}

// TreeItem is one row of a tree view; Depth 0 is top level.
type TreeItem struct {
	Label string `json:"label"`
	Depth int    `json:"depth"`
}

type TreeView struct {
	BaseConfig
	Items           []TreeItem `json:"items"`
	BackgroundColor string     `json:"backgroundColor"`
	TextColor       string     `json:"textColor"`
	SelectedColor   string     `json:"selectedColor"`
	Indent          float64    `json:"indent"`
}

// WindowLink switches the visible window when clicked.
type WindowLink struct {
	BaseConfig
	Label           string  `json:"label"`
	TargetWindowID  string  `json:"targetWindowId"`
	BackgroundColor string  `json:"backgroundColor"`
	TextColor       string  `json:"textColor"`
	BorderRadius    float64 `json:"borderRadius"`
}

// Displays.

type Label struct {
	BaseConfig
	Text       string  `json:"text"`
	FontSize   float64 `json:"fontSize"`
	FontFamily string  `json:"fontFamily"`
	FontWeight int     `json:"fontWeight"`
	Color      string  `json:"color"`
	TextAlign  string  `json:"textAlign"`
}

type Meter struct {
	BaseConfig
	MeterConfig
}

type GainReductionMeter struct {
	BaseConfig
	MeterConfig
}

type DBDisplay struct {
	BaseConfig
	ReadoutConfig
}

type FrequencyDisplay struct {
	BaseConfig
	ReadoutConfig
}

type PresetBrowser struct {
	BaseConfig
	Presets         []string `json:"presets"`
	SelectedIndex   int      `json:"selectedIndex"`
	BackgroundColor string   `json:"backgroundColor"`
	TextColor       string   `json:"textColor"`
	SelectedColor   string   `json:"selectedColor"`
}

type Waveform struct {
	BaseConfig
	ScopeConfig
}

type Oscilloscope struct {
	BaseConfig
	ScopeConfig
}

type SpectrumAnalyzer struct {
	BaseConfig
	ScopeConfig
	BarCount int `json:"barCount"`
}

type Goniometer struct {
	BaseConfig
	ScopeConfig
}

type ModulationMatrix struct {
	BaseConfig
	Sources          []string `json:"sources"`
	Destinations     []string `json:"destinations"`
	CellSize         float64  `json:"cellSize"`
	CellColor        string   `json:"cellColor"`
	ActiveColor      string   `json:"activeColor"`
	BorderColor      string   `json:"borderColor"`
	HeaderBackground string   `json:"headerBackground"`
	HeaderColor      string   `json:"headerColor"`
	HeaderFontSize   float64  `json:"headerFontSize"`
}

// Curves.

type EQCurve struct {
	BaseConfig
	CurveConfig
	BandCount int `json:"bandCount"`
}

type CompressorCurve struct {
	BaseConfig
	CurveConfig
	Threshold float64 `json:"threshold"`
	Ratio     float64 `json:"ratio"`
}

type EnvelopeDisplay struct {
	BaseConfig
	CurveConfig
	Attack  float64 `json:"attack"`
	Decay   float64 `json:"decay"`
	Sustain float64 `json:"sustain"`
	Release float64 `json:"release"`
}

type LFODisplay struct {
	BaseConfig
	CurveConfig
	Shape string `json:"shape"` // sine, triangle, saw, square
}

type FilterResponse struct {
	BaseConfig
	CurveConfig
	FilterType string `json:"filterType"`
}

// Specialized.

type PianoKeyboard struct {
	BaseConfig
	StartNote     int    `json:"startNote"` // MIDI note of the first key
	OctaveCount   int    `json:"octaveCount"`
	WhiteKeyColor string `json:"whiteKeyColor"`
	BlackKeyColor string `json:"blackKeyColor"`
	ActiveColor   string `json:"activeColor"`
}

type DrumPad struct {
	BaseConfig
	Label       string  `json:"label"`
	MidiNote    int     `json:"midiNote"`
	PadColor    string  `json:"padColor"`
	ActiveColor string  `json:"activeColor"`
	TextColor   string  `json:"textColor"`
	Radius      float64 `json:"borderRadius"`
}

type XYPad struct {
	BaseConfig
	XValue float64 `json:"xValue"` // normalized
	YValue float64 `json:"yValue"` // normalized
	// YParameterID binds the vertical axis; ParameterID binds the horizontal.
	YParameterID    string `json:"yParameterId,omitempty"`
	BackgroundColor string `json:"backgroundColor"`
	GridColor       string `json:"gridColor"`
	DotColor        string `json:"dotColor"`
}

type StepSequencer struct {
	BaseConfig
	StepCount     int    `json:"stepCount"`
	Pattern       []bool `json:"pattern"`
	ActiveColor   string `json:"activeColor"`
	InactiveColor string `json:"inactiveColor"`
}

type LoopPoints struct {
	BaseConfig
	Start           float64 `json:"loopStart"` // normalized
	End             float64 `json:"loopEnd"`   // normalized
	BackgroundColor string  `json:"backgroundColor"`
	RegionColor     string  `json:"regionColor"`
	MarkerColor     string  `json:"markerColor"`
}

// Containers.

type Panel struct {
	BaseConfig
	ContainerConfig
}

type Frame struct {
	BaseConfig
	ContainerConfig
	BorderStyle string `json:"borderStyle"` // solid, dashed, dotted, double
}

type GroupBox struct {
	BaseConfig
	ContainerConfig
	HeaderConfig
}

type Collapsible struct {
	BaseConfig
	ContainerConfig
	HeaderConfig
	HeaderHeight      float64 `json:"headerHeight"`
	ContentBackground string  `json:"contentBackground"`
	MaxContentHeight  float64 `json:"maxContentHeight"`
	Collapsed         bool    `json:"collapsed"`
}

// Decorative.

type Image struct {
	BaseConfig
	Src string `json:"src"`
	Fit string `json:"fit"` // contain, cover, fill, none
}

// SVGGraphic carries inline SVG markup that ships as a bundle asset.
type SVGGraphic struct {
	BaseConfig
	SVGContent string `json:"svgContent"`
	Fit        string `json:"fit"`
}

type Rectangle struct {
	BaseConfig
	FillColor     string      `json:"fillColor"`
	Gradient      []ColorStop `json:"gradient,omitempty"`
	GradientAngle float64     `json:"gradientAngle"`
	BorderColor   string      `json:"borderColor"`
	BorderWidth   float64     `json:"borderWidth"`
	BorderRadius  float64     `json:"borderRadius"`
	Opacity       float64     `json:"opacity"`
}

type Line struct {
	BaseConfig
	Color     string  `json:"color"`
	Thickness float64 `json:"strokeWidth"`
	Style     string  `json:"strokeStyle"` // solid, dashed, dotted
}

func (*Knob) Kind() Kind                { return KindKnob }
func (*SteppedKnob) Kind() Kind         { return KindSteppedKnob }
func (*CenterDetentKnob) Kind() Kind    { return KindCenterDetentKnob }
func (*DotIndicatorKnob) Kind() Kind    { return KindDotIndicatorKnob }
func (*Slider) Kind() Kind              { return KindSlider }
func (*BipolarSlider) Kind() Kind       { return KindBipolarSlider }
func (*NotchedSlider) Kind() Kind       { return KindNotchedSlider }
func (*CrossfadeSlider) Kind() Kind     { return KindCrossfadeSlider }
func (*ArcSlider) Kind() Kind           { return KindArcSlider }
func (*RangeSlider) Kind() Kind         { return KindRangeSlider }
func (*MultiSlider) Kind() Kind         { return KindMultiSlider }
func (*Button) Kind() Kind              { return KindButton }
func (*IconButton) Kind() Kind          { return KindIconButton }
func (*ToggleSwitch) Kind() Kind        { return KindToggleSwitch }
func (*PowerButton) Kind() Kind         { return KindPowerButton }
func (*RockerSwitch) Kind() Kind        { return KindRockerSwitch }
func (*RotarySwitch) Kind() Kind        { return KindRotarySwitch }
func (*SegmentButton) Kind() Kind       { return KindSegmentButton }
func (*Dropdown) Kind() Kind            { return KindDropdown }
func (*MultiSelectDropdown) Kind() Kind { return KindMultiSelectDropdown }
func (*ComboBox) Kind() Kind            { return KindComboBox }
func (*Checkbox) Kind() Kind            { return KindCheckbox }
func (*RadioGroup) Kind() Kind          { return KindRadioGroup }
func (*TextField) Kind() Kind           { return KindTextField }
func (*Stepper) Kind() Kind             { return KindStepper }
func (*MenuButton) Kind() Kind          { return KindMenuButton }
func (*Breadcrumb) Kind() Kind          { return KindBreadcrumb }
func (*TabBar) Kind() Kind              { return KindTabBar }
func (*TreeView) Kind() Kind            { return KindTreeView }
func (*WindowLink) Kind() Kind          { return KindWindowLink }
func (*Label) Kind() Kind               { return KindLabel }
func (*Meter) Kind() Kind               { return KindMeter }
func (*GainReductionMeter) Kind() Kind  { return KindGainReductionMeter }
func (*DBDisplay) Kind() Kind           { return KindDBDisplay }
func (*FrequencyDisplay) Kind() Kind    { return KindFrequencyDisplay }
func (*PresetBrowser) Kind() Kind       { return KindPresetBrowser }
func (*Waveform) Kind() Kind            { return KindWaveform }
func (*Oscilloscope) Kind() Kind        { return KindOscilloscope }
func (*SpectrumAnalyzer) Kind() Kind    { return KindSpectrumAnalyzer }
func (*Goniometer) Kind() Kind          { return KindGoniometer }
func (*ModulationMatrix) Kind() Kind    { return KindModulationMatrix }
func (*EQCurve) Kind() Kind             { return KindEQCurve }
func (*CompressorCurve) Kind() Kind     { return KindCompressorCurve }
func (*EnvelopeDisplay) Kind() Kind     { return KindEnvelopeDisplay }
func (*LFODisplay) Kind() Kind          { return KindLFODisplay }
func (*FilterResponse) Kind() Kind      { return KindFilterResponse }
func (*PianoKeyboard) Kind() Kind       { return KindPianoKeyboard }
func (*DrumPad) Kind() Kind             { return KindDrumPad }
func (*XYPad) Kind() Kind               { return KindXYPad }
func (*StepSequencer) Kind() Kind       { return KindStepSequencer }
func (*LoopPoints) Kind() Kind          { return KindLoopPoints }
func (*Panel) Kind() Kind               { return KindPanel }
func (*Frame) Kind() Kind               { return KindFrame }
func (*GroupBox) Kind() Kind            { return KindGroupBox }
func (*Collapsible) Kind() Kind         { return KindCollapsible }
func (*Image) Kind() Kind               { return KindImage }
func (*SVGGraphic) Kind() Kind          { return KindSVGGraphic }
func (*Rectangle) Kind() Kind           { return KindRectangle }
func (*Line) Kind() Kind                { return KindLine }
