package model

import "fmt"

func base(k Kind, name string, w, h float64) BaseConfig {
	return BaseConfig{Type: k, Name: name, Width: w, Height: h, Visible: true}
}

func rotary(label string) RotaryConfig {
	return RotaryConfig{
		Diameter:       60,
		ValueRange:     ValueRange{Value: 0.5, Min: 0, Max: 1},
		StartAngle:     -135,
		EndAngle:       135,
		Style:          "arc",
		TrackColor:     "#374151",
		FillColor:      "#949494",
		IndicatorColor: "#ffffff",
		TrackWidth:     4,
		LabelDisplay:   defaultLabels(label),
	}
}

func linear(label string) LinearConfig {
	return LinearConfig{
		Orientation:    "vertical",
		ValueRange:     ValueRange{Value: 0.5, Min: 0, Max: 1},
		TrackColor:     "#374151",
		TrackFillColor: "#949494",
		ThumbColor:     "#ffffff",
		ThumbWidth:     20,
		ThumbHeight:    20,
		LabelDisplay:   defaultLabels(label),
	}
}

func button(label string) ButtonConfig {
	return ButtonConfig{
		Mode:            "momentary",
		Label:           label,
		BackgroundColor: "#374151",
		TextColor:       "#ffffff",
		BorderColor:     "#4b5563",
		BorderRadius:    4,
		BorderWidth:     1,
		FontSize:        14,
	}
}

func choice() ChoiceConfig {
	return ChoiceConfig{
		Options:         []string{"Option 1", "Option 2", "Option 3"},
		BackgroundColor: "#1f2937",
		TextColor:       "#ffffff",
		BorderColor:     "#374151",
		BorderRadius:    4,
		FontSize:        14,
	}
}

func meter() MeterConfig {
	return MeterConfig{
		Orientation: "vertical",
		ValueRange:  ValueRange{Value: 0.7, Min: 0, Max: 1},
		ColorStops: []ColorStop{
			{Position: 0, Color: "#10b981"},
			{Position: 0.7, Color: "#eab308"},
			{Position: 0.9, Color: "#ef4444"},
		},
		BackgroundColor: "#1f2937",
		ShowPeakHold:    true,
	}
}

func readout(v float64, unit string) ReadoutConfig {
	return ReadoutConfig{
		Value:           v,
		DecimalPlaces:   1,
		Unit:            unit,
		FontFamily:      "Roboto Mono",
		FontSize:        14,
		TextColor:       "#10b981",
		BackgroundColor: "#111827",
	}
}

func scope() ScopeConfig {
	return ScopeConfig{
		TraceColor:      "#3b82f6",
		BackgroundColor: "#111827",
		GridColor:       "#374151",
		ShowGrid:        true,
		LineWidth:       2,
	}
}

func curve() CurveConfig {
	return CurveConfig{
		CurveColor:      "#3b82f6",
		BackgroundColor: "#111827",
		GridColor:       "#374151",
		ShowGrid:        true,
		LineWidth:       2,
	}
}

func container() ContainerConfig {
	return ContainerConfig{
		BackgroundColor: "#1f2937",
		BorderWidth:     1,
		BorderColor:     "#374151",
		BorderRadius:    8,
		Padding:         12,
	}
}

func header(text string) HeaderConfig {
	return HeaderConfig{
		HeaderText:       text,
		HeaderFontSize:   12,
		HeaderColor:      "#e5e7eb",
		HeaderBackground: "#1f2937",
	}
}

var factories = map[Kind]func() Element{
	KindKnob: func() Element { return &Knob{base(KindKnob, "Knob", 60, 60), rotary("Knob")} },
	KindSteppedKnob: func() Element {
		return &SteppedKnob{base(KindSteppedKnob, "Stepped Knob", 60, 60), rotary("Stepped"), 12}
	},
	KindCenterDetentKnob: func() Element {
		return &CenterDetentKnob{base(KindCenterDetentKnob, "Center Detent Knob", 60, 60), rotary("Pan"), 0.05}
	},
	KindDotIndicatorKnob: func() Element {
		return &DotIndicatorKnob{base(KindDotIndicatorKnob, "Dot Knob", 60, 60), rotary("Knob"), 3}
	},
	KindSlider: func() Element { return &Slider{base(KindSlider, "Slider", 40, 200), linear("Slider")} },
	KindBipolarSlider: func() Element {
		return &BipolarSlider{base(KindBipolarSlider, "Bipolar Slider", 40, 200), linear("Bipolar"), 0.5}
	},
	KindNotchedSlider: func() Element {
		return &NotchedSlider{base(KindNotchedSlider, "Notched Slider", 40, 200), linear("Notched"), 5, "#6b7280"}
	},
	KindCrossfadeSlider: func() Element {
		s := &CrossfadeSlider{base(KindCrossfadeSlider, "Crossfade Slider", 200, 40), linear("Crossfade"), "A", "B"}
		s.Orientation = "horizontal"
		return s
	},
	KindArcSlider: func() Element {
		return &ArcSlider{
			BaseConfig:   base(KindArcSlider, "Arc Slider", 100, 100),
			ValueRange:   ValueRange{Value: 0.5, Min: 0, Max: 1},
			StartAngle:   -135,
			EndAngle:     135,
			TrackColor:   "#374151",
			FillColor:    "#3b82f6",
			ThumbColor:   "#ffffff",
			TrackWidth:   6,
			LabelDisplay: defaultLabels("Arc"),
		}
	},
	KindRangeSlider: func() Element {
		return &RangeSlider{
			BaseConfig:  base(KindRangeSlider, "Range Slider", 200, 40),
			Orientation: "horizontal",
			Min:         0,
			Max:         1,
			MinValue:    0.25,
			MaxValue:    0.75,
			TrackColor:  "#374151",
			FillColor:   "#3b82f6",
			ThumbColor:  "#ffffff",
			ThumbWidth:  16,
			ThumbHeight: 16,
		}
	},
	KindMultiSlider: func() Element {
		return &MultiSlider{
			BaseConfig: base(KindMultiSlider, "Multi Slider", 240, 120),
			BandCount:  8,
			BandValues: []float64{0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5},
			TrackColor: "#1f2937",
			FillColor:  "#3b82f6",
			Gap:        2,
		}
	},
	KindButton: func() Element { return &Button{base(KindButton, "Button", 100, 40), button("Button")} },
	KindIconButton: func() Element {
		return &IconButton{base(KindIconButton, "Icon Button", 40, 40), button(""), ""}
	},
	KindToggleSwitch: func() Element {
		return &ToggleSwitch{base(KindToggleSwitch, "Toggle Switch", 60, 30),
			SwitchConfig{OnColor: "#10b981", OffColor: "#374151", ThumbColor: "#ffffff"}}
	},
	KindPowerButton: func() Element {
		return &PowerButton{base(KindPowerButton, "Power Button", 40, 40),
			SwitchConfig{OnColor: "#10b981", OffColor: "#374151", ThumbColor: "#ffffff"}, "#22c55e"}
	},
	KindRockerSwitch: func() Element {
		return &RockerSwitch{
			BaseConfig:      base(KindRockerSwitch, "Rocker Switch", 40, 70),
			Mode:            "2-position",
			BackgroundColor: "#1f2937",
			SwitchColor:     "#4b5563",
			BorderColor:     "#374151",
		}
	},
	KindRotarySwitch: func() Element {
		return &RotarySwitch{
			BaseConfig:     base(KindRotarySwitch, "Rotary Switch", 80, 80),
			PositionCount:  4,
			PositionLabels: []string{"1", "2", "3", "4"},
			BodyColor:      "#374151",
			PointerColor:   "#ffffff",
			LabelColor:     "#9ca3af",
			RotationAngle:  270,
		}
	},
	KindSegmentButton: func() Element {
		return &SegmentButton{
			BaseConfig:      base(KindSegmentButton, "Segment Button", 180, 32),
			Segments:        []string{"A", "B", "C"},
			BackgroundColor: "#1f2937",
			SelectedColor:   "#3b82f6",
			TextColor:       "#ffffff",
			BorderColor:     "#374151",
		}
	},
	KindDropdown: func() Element { return &Dropdown{base(KindDropdown, "Dropdown", 150, 32), choice()} },
	KindMultiSelectDropdown: func() Element {
		return &MultiSelectDropdown{base(KindMultiSelectDropdown, "Multi Select", 150, 32), choice(), []int{}}
	},
	KindComboBox: func() Element { return &ComboBox{base(KindComboBox, "Combo Box", 150, 32), choice(), ""} },
	KindCheckbox: func() Element {
		return &Checkbox{
			BaseConfig:    base(KindCheckbox, "Checkbox", 120, 24),
			Label:         "Checkbox",
			LabelPosition: "right",
			CheckColor:    "#3b82f6",
			BorderColor:   "#6b7280",
			TextColor:     "#ffffff",
		}
	},
	KindRadioGroup: func() Element {
		return &RadioGroup{
			BaseConfig:  base(KindRadioGroup, "Radio Group", 120, 80),
			Options:     []string{"Option 1", "Option 2", "Option 3"},
			Orientation: "vertical",
			Spacing:     8,
			RadioColor:  "#3b82f6",
			TextColor:   "#ffffff",
		}
	},
	KindTextField: func() Element {
		return &TextField{
			BaseConfig:      base(KindTextField, "Text Field", 150, 32),
			Placeholder:     "Enter text...",
			MaxLength:       100,
			FontFamily:      "Inter",
			FontSize:        14,
			TextColor:       "#ffffff",
			BackgroundColor: "#1f2937",
			BorderColor:     "#374151",
			BorderRadius:    4,
		}
	},
	KindStepper: func() Element {
		return &Stepper{
			BaseConfig:      base(KindStepper, "Stepper", 120, 32),
			ValueRange:      ValueRange{Value: 0, Min: 0, Max: 100},
			Step:            1,
			BackgroundColor: "#1f2937",
			ButtonColor:     "#374151",
			TextColor:       "#ffffff",
		}
	},
	KindMenuButton: func() Element {
		return &MenuButton{
			BaseConfig:      base(KindMenuButton, "Menu Button", 120, 32),
			Label:           "Menu",
			MenuItems:       []string{"Item 1", "Item 2"},
			BackgroundColor: "#374151",
			TextColor:       "#ffffff",
			BorderColor:     "#4b5563",
		}
	},
	KindBreadcrumb: func() Element {
		return &Breadcrumb{
			BaseConfig:  base(KindBreadcrumb, "Breadcrumb", 240, 24),
			Items:       []string{"Home", "Presets", "Bass"},
			Separator:   "/",
			LinkColor:   "#9ca3af",
			ActiveColor: "#ffffff",
			FontSize:    12,
		}
	},
	KindTabBar: func() Element {
		return &TabBar{
			BaseConfig:      base(KindTabBar, "Tab Bar", 300, 36),
			Tabs:            []string{"Main", "Mod", "FX"},
			BackgroundColor: "#1f2937",
			ActiveColor:     "#374151",
			TextColor:       "#ffffff",
			IndicatorColor:  "#3b82f6",
		}
	},
	KindTreeView: func() Element {
		return &TreeView{
			BaseConfig:      base(KindTreeView, "Tree View", 200, 200),
			Items:           []TreeItem{{Label: "Root"}, {Label: "Child", Depth: 1}},
			BackgroundColor: "#111827",
			TextColor:       "#e5e7eb",
			SelectedColor:   "#3b82f6",
			Indent:          16,
		}
	},
	KindWindowLink: func() Element {
		return &WindowLink{
			BaseConfig:      base(KindWindowLink, "Window Link", 120, 32),
			Label:           "Open",
			BackgroundColor: "#374151",
			TextColor:       "#ffffff",
			BorderRadius:    4,
		}
	},

	KindLabel: func() Element {
		return &Label{
			BaseConfig: base(KindLabel, "Label", 100, 24),
			Text:       "Label",
			FontSize:   14,
			FontFamily: "Inter",
			FontWeight: 400,
			Color:      "#ffffff",
			TextAlign:  "center",
		}
	},
	KindMeter: func() Element { return &Meter{base(KindMeter, "Meter", 20, 200), meter()} },
	KindGainReductionMeter: func() Element {
		return &GainReductionMeter{base(KindGainReductionMeter, "Gain Reduction Meter", 20, 200), meter()}
	},
	KindDBDisplay: func() Element { return &DBDisplay{base(KindDBDisplay, "dB Display", 80, 28), readout(-6, "dB")} },
	KindFrequencyDisplay: func() Element {
		return &FrequencyDisplay{base(KindFrequencyDisplay, "Frequency Display", 90, 28), readout(1000, "Hz")}
	},
	KindPresetBrowser: func() Element {
		return &PresetBrowser{
			BaseConfig:      base(KindPresetBrowser, "Preset Browser", 200, 240),
			Presets:         []string{"Init", "Warm Pad", "Pluck"},
			BackgroundColor: "#111827",
			TextColor:       "#e5e7eb",
			SelectedColor:   "#3b82f6",
		}
	},
	KindWaveform:     func() Element { return &Waveform{base(KindWaveform, "Waveform", 300, 100), scope()} },
	KindOscilloscope: func() Element { return &Oscilloscope{base(KindOscilloscope, "Oscilloscope", 300, 150), scope()} },
	KindSpectrumAnalyzer: func() Element {
		return &SpectrumAnalyzer{base(KindSpectrumAnalyzer, "Spectrum Analyzer", 300, 150), scope(), 32}
	},
	KindGoniometer: func() Element { return &Goniometer{base(KindGoniometer, "Goniometer", 150, 150), scope()} },
	KindModulationMatrix: func() Element {
		return &ModulationMatrix{
			BaseConfig:       base(KindModulationMatrix, "Modulation Matrix", 300, 200),
			Sources:          []string{"LFO 1", "ENV 1"},
			Destinations:     []string{"Cutoff", "Pitch"},
			CellSize:         24,
			CellColor:        "#1f2937",
			ActiveColor:      "#3b82f6",
			BorderColor:      "#374151",
			HeaderBackground: "#111827",
			HeaderColor:      "#e5e7eb",
			HeaderFontSize:   11,
		}
	},

	KindEQCurve: func() Element { return &EQCurve{base(KindEQCurve, "EQ Curve", 300, 150), curve(), 4} },
	KindCompressorCurve: func() Element {
		return &CompressorCurve{base(KindCompressorCurve, "Compressor Curve", 150, 150), curve(), -18, 4}
	},
	KindEnvelopeDisplay: func() Element {
		return &EnvelopeDisplay{base(KindEnvelopeDisplay, "Envelope Display", 240, 120), curve(), 0.1, 0.2, 0.7, 0.3}
	},
	KindLFODisplay: func() Element { return &LFODisplay{base(KindLFODisplay, "LFO Display", 200, 100), curve(), "sine"} },
	KindFilterResponse: func() Element {
		return &FilterResponse{base(KindFilterResponse, "Filter Response", 300, 150), curve(), "lowpass"}
	},

	KindPianoKeyboard: func() Element {
		return &PianoKeyboard{
			BaseConfig:    base(KindPianoKeyboard, "Piano Keyboard", 400, 100),
			StartNote:     48,
			OctaveCount:   2,
			WhiteKeyColor: "#ffffff",
			BlackKeyColor: "#111827",
			ActiveColor:   "#3b82f6",
		}
	},
	KindDrumPad: func() Element {
		return &DrumPad{
			BaseConfig:  base(KindDrumPad, "Drum Pad", 80, 80),
			Label:       "Kick",
			MidiNote:    36,
			PadColor:    "#374151",
			ActiveColor: "#3b82f6",
			TextColor:   "#ffffff",
			Radius:      6,
		}
	},
	KindXYPad: func() Element {
		return &XYPad{
			BaseConfig:      base(KindXYPad, "XY Pad", 200, 200),
			XValue:          0.5,
			YValue:          0.5,
			BackgroundColor: "#111827",
			GridColor:       "#374151",
			DotColor:        "#3b82f6",
		}
	},
	KindStepSequencer: func() Element {
		return &StepSequencer{
			BaseConfig:    base(KindStepSequencer, "Step Sequencer", 320, 40),
			StepCount:     16,
			Pattern:       make([]bool, 16),
			ActiveColor:   "#3b82f6",
			InactiveColor: "#374151",
		}
	},
	KindLoopPoints: func() Element {
		return &LoopPoints{
			BaseConfig:      base(KindLoopPoints, "Loop Points", 300, 60),
			Start:           0.25,
			End:             0.75,
			BackgroundColor: "#111827",
			RegionColor:     "rgba(59, 130, 246, 0.3)",
			MarkerColor:     "#3b82f6",
		}
	},

	KindPanel: func() Element { return &Panel{base(KindPanel, "Panel", 200, 150), container()} },
	KindFrame: func() Element {
		c := container()
		c.BackgroundColor = "transparent"
		return &Frame{base(KindFrame, "Frame", 200, 150), c, "solid"}
	},
	KindGroupBox: func() Element {
		return &GroupBox{base(KindGroupBox, "Group Box", 200, 150), container(), header("Group")}
	},
	KindCollapsible: func() Element {
		return &Collapsible{
			BaseConfig:        base(KindCollapsible, "Collapsible", 200, 150),
			ContainerConfig:   container(),
			HeaderConfig:      header("Section"),
			HeaderHeight:      28,
			ContentBackground: "#111827",
			MaxContentHeight:  200,
		}
	},

	KindImage: func() Element { return &Image{BaseConfig: base(KindImage, "Image", 100, 100), Fit: "contain"} },
	KindSVGGraphic: func() Element {
		return &SVGGraphic{BaseConfig: base(KindSVGGraphic, "SVG Graphic", 100, 100), Fit: "contain"}
	},
	KindRectangle: func() Element {
		return &Rectangle{
			BaseConfig:    base(KindRectangle, "Rectangle", 100, 100),
			FillColor:     "#374151",
			GradientAngle: 180,
			BorderColor:   "transparent",
			Opacity:       1,
		}
	},
	KindLine: func() Element {
		return &Line{BaseConfig: base(KindLine, "Line", 100, 2), Color: "#6b7280", Thickness: 2, Style: "solid"}
	},
}

// New returns an element of kind k populated with editor defaults.
func New(k Kind) (Element, error) {
	f, ok := factories[k]
	if !ok {
		return nil, fmt.Errorf("unknown element type %q", k)
	}
	return f(), nil
}

// MustNew is New for kinds known at compile time.
func MustNew(k Kind) Element {
	el, err := New(k)
	if err != nil {
		panic(err)
	}
	return el
}
