package codegen

import (
	"sort"
	"strconv"
	"strings"
	"text/template"

	"github.com/agentic-research/faceplate/internal/model"
)

// HostParam is one host parameter a window's bindings read or write.
type HostParam struct {
	ID      string
	Element string
	Kind    model.Kind
	// Listen is true for displays that only follow the host.
	Listen bool
}

// HostParams lists every parameter id the bindings of elements use,
// including the derived ids of multi-value controls. Sorted by id.
func HostParams(elements []model.Element) []HostParam {
	var out []HostParam
	for _, el := range elements {
		param := boundParam(el)
		if param == "" {
			continue
		}
		add := func(id string) {
			out = append(out, HostParam{ID: id, Element: el.Base().Name, Kind: el.Kind(), Listen: el.Kind().Listens()})
		}
		switch e := el.(type) {
		case *model.RangeSlider:
			add(param + "_min")
			add(param + "_max")
		case *model.LoopPoints:
			add(param + "_start")
			add(param + "_end")
		case *model.MultiSlider:
			for i := 0; i < max(e.BandCount, 1); i++ {
				add(param + "_band" + strconv.Itoa(i))
			}
		case *model.StepSequencer:
			for i := 0; i < e.StepCount; i++ {
				add(param + "_step" + strconv.Itoa(i))
			}
		case *model.MultiSelectDropdown:
			for i := range e.Options {
				add(param + "_" + strconv.Itoa(i))
			}
		case *model.XYPad:
			add(param)
			if y := strings.TrimSpace(e.YParameterID); y != "" {
				add(y)
			} else {
				add(param + "_y")
			}
		default:
			if _, ok := bindingCall(el); ok {
				add(param)
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// IntegrationWindow describes one exported window in INTEGRATION.md.
type IntegrationWindow struct {
	Name string
	// Folder is empty for single-window bundles.
	Folder string
	Files  []string
	Params []HostParam
}

type knownIssue struct {
	Title, Symptom, Cause, Solution, Example string
}

var knownIssues = []knownIssue{
	{
		Title:    "White flash on load",
		Symptom:  "The plugin window flashes white for a moment when it opens.",
		Cause:    "The web view paints before styles.css has loaded.",
		Solution: "Give the web view the same background color the window uses; styles.css also sets it on html and body.",
		Example: `juce::WebBrowserComponent::Options options;
options = options.withBackgroundColour(juce::Colour(0x1a, 0x1a, 0x1a));`,
	},
	{
		Title:    "Controls not responding",
		Symptom:  "Knobs and sliders move but the processor never sees the change.",
		Cause:    "No relay was found, so bindings.js fell back to its standalone relay.",
		Solution: "Register getParameter, setParameter, beginGesture and endGesture as native functions, or install window.__FACEPLATE_RELAY__ before bindings.js runs. Parameter ids must match data-parameter-id.",
	},
	{
		Title:    "Slow initial load",
		Symptom:  "The UI takes one to two seconds to appear on first open.",
		Cause:    "Web view runtime start-up.",
		Solution: "Paint a placeholder from the native editor until the page reports ready.",
	},
	{
		Title:    "Parameter values not syncing",
		Symptom:  "After a preset load or session restore the UI shows stale values.",
		Cause:    "The host never pushed current values to the page.",
		Solution: "Emit __juce__paramSync with {params: [{id, value}]} once the editor opens and after every preset change. Values are normalized to 0..1.",
		Example:  `browser.emitEventIfBrowserIsVisible("__juce__paramSync", params);`,
	},
	{
		Title:    "UI freezes during automation",
		Symptom:  "The page stalls while the DAW plays back automation.",
		Cause:    "Every automation point is forwarded as its own message.",
		Solution: "Throttle host-to-page updates to 30-60 per second per parameter.",
	},
}

var integrationTmpl = template.Must(template.New(FileIntegration).Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}).Parse(`# {{.Project}} integration

Generated by faceplate. This bundle is a static web UI for a plugin host's
embedded web view. It talks to the host through one relay object.

## Relay contract

bindings.js looks for a relay in this order:

1. window.__FACEPLATE_RELAY__, if the host installs one.
2. The native function bridge at window.__JUCE__ once it has registered
   functions. It is polled every 50ms for up to 5s. Calls go out as
   __juce__invoke events with integer result ids and resolve on
   __juce__complete, or with undefined after 1s.
3. A standalone in-memory relay, so the UI still works without a host.

The relay exposes:

| Method | Meaning |
|---|---|
| getParameter(id) | Promise of the current normalized value |
| setParameter(id, value) | push a normalized value (0..1) |
| beginGesture(id) | start of a user drag, for host undo and automation |
| endGesture(id) | end of the gesture |
| addListener(fn) | fn(id, value) on every host-side change |

Discrete controls map index i of n to i/(n-1).

## Files
{{range .Windows}}
### {{.Name}}{{if .Folder}} ({{.Folder}}/){{end}}

{{range .Files}}- {{.}}
{{end}}{{if .Params}}
| Parameter | Element | Type | Direction |
|---|---|---|---|
{{range .Params}}| {{.ID}} | {{.Element}} | {{.Kind}} | {{if .Listen}}host to UI{{else}}both{{end}} |
{{end}}{{else}}
No host parameters.
{{end}}{{end}}
Fonts are referenced from fonts/ and are not shipped in the bundle. Copy
the woff2 files for Inter, Roboto or Roboto Mono there if styles.css
declares them.

## Known issues and workarounds
{{range $i, $k := .Issues}}
### {{inc $i}}. {{$k.Title}}

**Symptom:** {{$k.Symptom}}

**Cause:** {{$k.Cause}}

**Solution:** {{$k.Solution}}
{{if $k.Example}}
` + "```cpp" + `
{{$k.Example}}
` + "```" + `
{{end}}{{end}}`))

// GenerateIntegrationDoc renders INTEGRATION.md for an export.
func GenerateIntegrationDoc(project string, windows []IntegrationWindow) string {
	if strings.TrimSpace(project) == "" {
		project = "Faceplate"
	}
	var out strings.Builder
	err := integrationTmpl.Execute(&out, map[string]any{
		"Project": project,
		"Windows": windows,
		"Issues":  knownIssues,
	})
	if err != nil {
		panic(&GenerationError{Artifact: "integration", Reason: err.Error()})
	}
	return out.String()
}
