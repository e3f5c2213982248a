package model

import "sort"

// Kind is the discriminator of an element. It is the "type" field of the
// saved-project format.
type Kind string

// Controls.
const (
	KindKnob                Kind = "knob"
	KindSteppedKnob         Kind = "steppedknob"
	KindCenterDetentKnob    Kind = "centerdetentknob"
	KindDotIndicatorKnob    Kind = "dotindicatorknob"
	KindSlider              Kind = "slider"
	KindBipolarSlider       Kind = "bipolarslider"
	KindNotchedSlider       Kind = "notchedslider"
	KindCrossfadeSlider     Kind = "crossfadeslider"
	KindArcSlider           Kind = "arcslider"
	KindRangeSlider         Kind = "rangeslider"
	KindMultiSlider         Kind = "multislider"
	KindButton              Kind = "button"
	KindIconButton          Kind = "iconbutton"
	KindToggleSwitch        Kind = "toggleswitch"
	KindPowerButton         Kind = "powerbutton"
	KindRockerSwitch        Kind = "rockerswitch"
	KindRotarySwitch        Kind = "rotaryswitch"
	KindSegmentButton       Kind = "segmentbutton"
	KindDropdown            Kind = "dropdown"
	KindMultiSelectDropdown Kind = "multiselectdropdown"
	KindComboBox            Kind = "combobox"
	KindCheckbox            Kind = "checkbox"
	KindRadioGroup          Kind = "radiogroup"
	KindTextField           Kind = "textfield"
	KindStepper             Kind = "stepper"
	KindMenuButton          Kind = "menubutton"
	KindBreadcrumb          Kind = "breadcrumb"
	KindTabBar              Kind = "tabbar"
	KindTreeView            Kind = "treeview"
	KindWindowLink          Kind = "windowlink"
)

// Displays.
const (
	KindLabel              Kind = "label"
	KindMeter              Kind = "meter"
	KindGainReductionMeter Kind = "gainreductionmeter"
	KindDBDisplay          Kind = "dbdisplay"
	KindFrequencyDisplay   Kind = "frequencydisplay"
	KindPresetBrowser      Kind = "presetbrowser"
	KindWaveform           Kind = "waveform"
	KindOscilloscope       Kind = "oscilloscope"
	KindModulationMatrix   Kind = "modulationmatrix"
	KindSpectrumAnalyzer   Kind = "spectrumanalyzer"
	KindGoniometer         Kind = "goniometer"
)

// Curves.
const (
	KindEQCurve         Kind = "eqcurve"
	KindCompressorCurve Kind = "compressorcurve"
	KindEnvelopeDisplay Kind = "envelopedisplay"
	KindLFODisplay      Kind = "lfodisplay"
	KindFilterResponse  Kind = "filterresponse"
)

// Specialized.
const (
	KindPianoKeyboard Kind = "pianokeyboard"
	KindDrumPad       Kind = "drumpad"
	KindXYPad         Kind = "xypad"
	KindStepSequencer Kind = "stepsequencer"
	KindLoopPoints    Kind = "looppoints"
)

// Containers.
const (
	KindPanel       Kind = "panel"
	KindFrame       Kind = "frame"
	KindGroupBox    Kind = "groupbox"
	KindCollapsible Kind = "collapsible"
)

// Decorative.
const (
	KindImage      Kind = "image"
	KindSVGGraphic Kind = "svggraphic"
	KindRectangle  Kind = "rectangle"
	KindLine       Kind = "line"
)

// Family groups kinds for palette ordering and reporting.
type Family string

const (
	FamilyControl     Family = "controls"
	FamilyDisplay     Family = "displays"
	FamilyCurve       Family = "curves"
	FamilySpecialized Family = "specialized"
	FamilyContainer   Family = "containers"
	FamilyDecorative  Family = "decorative"
)

var kindFamily = map[Kind]Family{
	KindKnob:                FamilyControl,
	KindSteppedKnob:         FamilyControl,
	KindCenterDetentKnob:    FamilyControl,
	KindDotIndicatorKnob:    FamilyControl,
	KindSlider:              FamilyControl,
	KindBipolarSlider:       FamilyControl,
	KindNotchedSlider:       FamilyControl,
	KindCrossfadeSlider:     FamilyControl,
	KindArcSlider:           FamilyControl,
	KindRangeSlider:         FamilyControl,
	KindMultiSlider:         FamilyControl,
	KindButton:              FamilyControl,
	KindIconButton:          FamilyControl,
	KindToggleSwitch:        FamilyControl,
	KindPowerButton:         FamilyControl,
	KindRockerSwitch:        FamilyControl,
	KindRotarySwitch:        FamilyControl,
	KindSegmentButton:       FamilyControl,
	KindDropdown:            FamilyControl,
	KindMultiSelectDropdown: FamilyControl,
	KindComboBox:            FamilyControl,
	KindCheckbox:            FamilyControl,
	KindRadioGroup:          FamilyControl,
	KindTextField:           FamilyControl,
	KindStepper:             FamilyControl,
	KindMenuButton:          FamilyControl,
	KindBreadcrumb:          FamilyControl,
	KindTabBar:              FamilyControl,
	KindTreeView:            FamilyControl,
	KindWindowLink:          FamilyControl,

	KindLabel:              FamilyDisplay,
	KindMeter:              FamilyDisplay,
	KindGainReductionMeter: FamilyDisplay,
	KindDBDisplay:          FamilyDisplay,
	KindFrequencyDisplay:   FamilyDisplay,
	KindPresetBrowser:      FamilyDisplay,
	KindWaveform:           FamilyDisplay,
	KindOscilloscope:       FamilyDisplay,
	KindModulationMatrix:   FamilyDisplay,
	KindSpectrumAnalyzer:   FamilyDisplay,
	KindGoniometer:         FamilyDisplay,

	KindEQCurve:         FamilyCurve,
	KindCompressorCurve: FamilyCurve,
	KindEnvelopeDisplay: FamilyCurve,
	KindLFODisplay:      FamilyCurve,
	KindFilterResponse:  FamilyCurve,

	KindPianoKeyboard: FamilySpecialized,
	KindDrumPad:       FamilySpecialized,
	KindXYPad:         FamilySpecialized,
	KindStepSequencer: FamilySpecialized,
	KindLoopPoints:    FamilySpecialized,

	KindPanel:       FamilyContainer,
	KindFrame:       FamilyContainer,
	KindGroupBox:    FamilyContainer,
	KindCollapsible: FamilyContainer,

	KindImage:      FamilyDecorative,
	KindSVGGraphic: FamilyDecorative,
	KindRectangle:  FamilyDecorative,
	KindLine:       FamilyDecorative,
}

// Family reports the palette family of k. The boolean is false for an
// unknown kind.
func (k Kind) Family() (Family, bool) {
	f, ok := kindFamily[k]
	return f, ok
}

// Valid reports whether k is a member of the closed element union.
func (k Kind) Valid() bool {
	_, ok := kindFamily[k]
	return ok
}

// AllKinds returns every kind, sorted.
func AllKinds() []Kind {
	out := make([]Kind, 0, len(kindFamily))
	for k := range kindFamily {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// bindable lists the kinds that push values to the host and therefore
// expect a parameter id.
var bindable = map[Kind]bool{
	KindKnob:                true,
	KindSteppedKnob:         true,
	KindCenterDetentKnob:    true,
	KindDotIndicatorKnob:    true,
	KindSlider:              true,
	KindBipolarSlider:       true,
	KindNotchedSlider:       true,
	KindCrossfadeSlider:     true,
	KindArcSlider:           true,
	KindRangeSlider:         true,
	KindMultiSlider:         true,
	KindButton:              true,
	KindIconButton:          true,
	KindToggleSwitch:        true,
	KindPowerButton:         true,
	KindRockerSwitch:        true,
	KindRotarySwitch:        true,
	KindSegmentButton:       true,
	KindDropdown:            true,
	KindMultiSelectDropdown: true,
	KindComboBox:            true,
	KindCheckbox:            true,
	KindRadioGroup:          true,
	KindStepper:             true,
	KindTabBar:              true,
	KindXYPad:               true,
	KindDrumPad:             true,
	KindStepSequencer:       true,
	KindLoopPoints:          true,
}

// Bindable reports whether elements of kind k send values to a host
// parameter.
func (k Kind) Bindable() bool { return bindable[k] }

// listening lists display kinds that follow a host parameter when bound.
var listening = map[Kind]bool{
	KindMeter:              true,
	KindGainReductionMeter: true,
	KindDBDisplay:          true,
	KindFrequencyDisplay:   true,
}

// Listens reports whether elements of kind k can reflect a host parameter
// without sending values back.
func (k Kind) Listens() bool { return listening[k] }

// Container reports whether k can hold child elements.
func (k Kind) Container() bool {
	f, _ := k.Family()
	return f == FamilyContainer
}
