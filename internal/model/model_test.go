package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func knob(id, name string) *Knob {
	k := MustNew(KindKnob).(*Knob)
	k.ID = id
	k.Name = name
	return k
}

func panel(id, name string) *Panel {
	p := MustNew(KindPanel).(*Panel)
	p.ID = id
	p.Name = name
	return p
}

func ids(els []Element) []string {
	out := make([]string, 0, len(els))
	for _, el := range els {
		out = append(out, el.Base().ID)
	}
	return out
}

func TestNormalizeName(t *testing.T) {
	cases := map[string]string{
		"Gain":           "gain",
		"gain":           "gain",
		"masterVolume":   "master-volume",
		"Filter Cutoff":  "filter-cutoff",
		"env_attack":     "env-attack",
		"  Mix (dry) ":   "mix-dry",
		"Drive!!":        "drive",
		"a  __ b":        "a-b",
		"3 Band EQ":      "fp-3-band-eq",
		"***":            "",
		"":               "",
		"Über":           "ber",
		"LFO Rate":       "lfo-rate",
		"lowPassFilter2": "low-pass-filter2",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeName(in), "input %q", in)
	}
}

func TestAllKinds_HaveFactories(t *testing.T) {
	kinds := AllKinds()
	require.GreaterOrEqual(t, len(kinds), 50)
	for _, k := range kinds {
		el, err := New(k)
		require.NoError(t, err, "kind %s", k)
		assert.Equal(t, k, el.Kind())
		assert.Equal(t, k, el.Base().Type)
		assert.True(t, el.Base().Visible)
		assert.Positive(t, el.Base().Width, "kind %s", k)
		assert.Positive(t, el.Base().Height, "kind %s", k)
		_, ok := k.Family()
		assert.True(t, ok)
	}
}

func TestAllKinds_Sorted(t *testing.T) {
	kinds := AllKinds()
	for i := 1; i < len(kinds); i++ {
		assert.Less(t, string(kinds[i-1]), string(kinds[i]))
	}
}

func TestNew_UnknownKind(t *testing.T) {
	_, err := New("theremin")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "theremin")
}

func TestDecode_FillsDefaults(t *testing.T) {
	el, err := Decode([]byte(`{"type":"knob","id":"k1","name":"Gain","x":10,"y":20,"visible":true}`))
	require.NoError(t, err)
	k, ok := el.(*Knob)
	require.True(t, ok)
	assert.Equal(t, "Gain", k.Name)
	assert.InDelta(t, 10.0, k.X, 0)
	assert.InDelta(t, -135.0, k.StartAngle, 0)
	assert.Equal(t, "#374151", k.TrackColor)
	assert.Equal(t, "numeric", k.ValueFormat)
}

func TestDecode_UnknownTypeNamesElement(t *testing.T) {
	_, err := Decode([]byte(`{"type":"harmoniceditor","id":"h-7"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "h-7")
}

func TestEncode_RepairsTypeTag(t *testing.T) {
	k := &Knob{BaseConfig: BaseConfig{ID: "k"}}
	raw, err := Encode(k)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"type":"knob"`)
	assert.Empty(t, k.Type, "encode must not write through the element")
}

func TestSnapshotClone_Isolated(t *testing.T) {
	k := knob("k1", "Gain")
	s := &Snapshot{
		Name:     "p",
		Windows:  []Window{{ID: "w", Name: "Main", ElementIDs: []string{"k1"}}},
		Elements: []Element{k},
	}
	c, err := s.Clone()
	require.NoError(t, err)

	k.Name = "Changed"
	s.Windows[0].ElementIDs[0] = "zzz"

	assert.Equal(t, "Gain", c.Elements[0].Base().Name)
	assert.Equal(t, []string{"k1"}, c.Windows[0].ElementIDs)
	assert.NotSame(t, k, c.Elements[0])
}

func TestFromProject_RoundTrip(t *testing.T) {
	src := `{
	  "version": "3.0.0",
	  "name": "Synth",
	  "windows": [
	    {"id": "w1", "name": "Main", "type": "release", "width": 400, "height": 300, "elementIds": ["k1"]},
	    {"id": "w2", "name": "Debug", "type": "developer", "width": 200, "height": 100, "elementIds": []}
	  ],
	  "elements": [{"type": "knob", "id": "k1", "name": "Gain", "visible": true}],
	  "layers": [{"id": "default", "name": "Default", "order": 0, "visible": true}]
	}`
	s, err := Read(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "Synth", s.Name)
	require.Len(t, s.Windows, 2)
	assert.Equal(t, WindowDeveloper, s.Windows[1].Kind)
	assert.Len(t, s.ExportWindows(false), 1)
	assert.Len(t, s.ExportWindows(true), 2)

	p, err := s.ToProject()
	require.NoError(t, err)
	back, err := FromProject(p)
	require.NoError(t, err)
	assert.Equal(t, s.Windows, back.Windows)
	assert.Equal(t, "Gain", back.Elements[0].Base().Name)
}

func TestFromProject_UnknownElementFails(t *testing.T) {
	src := `{"version":"3.0.0","windows":[],"elements":[{"type":"patchbay","id":"pb"}]}`
	_, err := Read(strings.NewReader(src))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pb")
}

func TestIndexResolve_IncludesDescendants(t *testing.T) {
	p := panel("p", "Box")
	a := knob("a", "A")
	a.ParentID = "p"
	b := knob("b", "B")
	b.ParentID = "p"
	c := knob("c", "C")
	ix := NewIndex([]Element{c, b, p, a})

	got := ix.Resolve([]string{"p", "c", "missing"})
	assert.Equal(t, []string{"p", "b", "a", "c"}, ids(got))
}

func TestIndexResolve_CycleTerminates(t *testing.T) {
	a := panel("a", "A")
	b := panel("b", "B")
	a.ParentID = "b"
	b.ParentID = "a"
	ix := NewIndex([]Element{a, b})

	got := ix.Resolve([]string{"a", "b", "a"})
	assert.Equal(t, []string{"a", "b"}, ids(got))
}

func TestIndexResolve_SelfParent(t *testing.T) {
	a := panel("a", "A")
	a.ParentID = "a"
	ix := NewIndex([]Element{a})
	assert.Equal(t, []string{"a"}, ids(ix.Resolve([]string{"a"})))
}

func TestForest_LayerThenZIndexThenPosition(t *testing.T) {
	top := knob("top", "Top")
	top.LayerID = "fg"
	low := knob("low", "Low")
	low.ZIndex = 5
	first := knob("first", "First")
	second := knob("second", "Second")
	layers := NewLayerOrder([]Layer{
		{ID: DefaultLayerID, Order: 0, Visible: true},
		{ID: "fg", Order: 1, Visible: true},
	})

	f := NewForest([]Element{top, low, first, second}, layers)
	assert.Equal(t, []string{"first", "second", "low", "top"}, ids(f.Roots()))
}

func TestForest_WalkNestsChildren(t *testing.T) {
	p := panel("p", "Box")
	a := knob("a", "A")
	a.ParentID = "p"
	var trace []string
	f := NewForest([]Element{p, a}, LayerOrder{})
	f.Walk(func(el, parent Element) {
		pid := ""
		if parent != nil {
			pid = parent.Base().ID
		}
		trace = append(trace, "enter "+el.Base().ID+" in "+pid)
	}, func(el, _ Element) {
		trace = append(trace, "leave "+el.Base().ID)
	})
	assert.Equal(t, []string{"enter p in ", "enter a in p", "leave a", "leave p"}, trace)
}

func TestForest_CycleRendersEachOnce(t *testing.T) {
	a := panel("a", "A")
	b := panel("b", "B")
	a.ParentID = "b"
	b.ParentID = "a"
	f := NewForest([]Element{a, b}, LayerOrder{})

	count := map[string]int{}
	f.Walk(func(el, _ Element) { count[el.Base().ID]++ }, nil)
	assert.Equal(t, map[string]int{"a": 1, "b": 1}, count)
}

func TestLayerOrder_HiddenAndUnknown(t *testing.T) {
	lo := NewLayerOrder([]Layer{{ID: "bg", Order: 2, Visible: false}})
	k := knob("k", "K")
	k.LayerID = "bg"
	assert.True(t, lo.Hidden(k))
	assert.Equal(t, 2, lo.Order(k))

	k.LayerID = "nope"
	assert.False(t, lo.Hidden(k))
	assert.Equal(t, 0, lo.Order(k))
}

func TestValueRange_Normalized(t *testing.T) {
	assert.InDelta(t, 0.5, ValueRange{Value: 5, Min: 0, Max: 10}.Normalized(), 1e-9)
	assert.InDelta(t, 1.0, ValueRange{Value: 50, Min: 0, Max: 10}.Normalized(), 1e-9)
	assert.InDelta(t, 0.0, ValueRange{Value: 5, Min: 3, Max: 3}.Normalized(), 1e-9)
}
