package bundle

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"sort"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/agentic-research/faceplate/internal/codegen"
	"github.com/agentic-research/faceplate/internal/model"
)

const logoSVG = `<?xml version="1.0" encoding="UTF-8"?>
<!-- exported from an editor -->
<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">
  <title>Logo</title>
  <rect id="knob-indicator-1" x="45.500" y="10.000" width="10.000" height="30"/>
</svg>
`

func named(k model.Kind, id, name string) model.Element {
	el := model.MustNew(k)
	el.Base().ID = id
	el.Base().Name = name
	return el
}

func fixture() *model.Snapshot {
	logo := named(model.KindSVGGraphic, "s1", "Logo").(*model.SVGGraphic)
	logo.SVGContent = logoSVG
	return &model.Snapshot{
		Name: "Test Synth",
		Windows: []model.Window{
			{ID: "w1", Name: "Main", Kind: model.WindowRelease, Width: 400, Height: 300, BackgroundColor: "#111111", ElementIDs: []string{"k1", "s1"}},
			{ID: "w2", Name: "Settings", Kind: model.WindowRelease, Width: 300, Height: 200, ElementIDs: []string{"k2"}},
			{ID: "w3", Name: "Debug", Kind: model.WindowDeveloper, Width: 300, Height: 200, ElementIDs: []string{"l1"}},
		},
		Elements: []model.Element{
			named(model.KindKnob, "k1", "Gain"),
			logo,
			named(model.KindSlider, "k2", "Mix"),
			named(model.KindLabel, "l1", "Debug Info"),
		},
	}
}

type memSink struct {
	name string
	data []byte
}

func (s *memSink) WriteArchive(_ context.Context, name string, data []byte) (string, error) {
	s.name = name
	s.data = append([]byte(nil), data...)
	return "mem://" + name, nil
}

// recordingFS remembers every file opened for writing.
type recordingFS struct {
	billy.Filesystem
	written []string
	failOn  string
}

func (r *recordingFS) OpenFile(name string, flag int, perm os.FileMode) (billy.File, error) {
	if flag&os.O_CREATE != 0 {
		if name == r.failOn {
			return nil, errors.New("disk full")
		}
		r.written = append(r.written, name)
	}
	return r.Filesystem.OpenFile(name, flag, perm)
}

func (r *recordingFS) Capabilities() billy.Capability { return billy.DefaultCapabilities }

type readOnlyFS struct{ billy.Filesystem }

func (readOnlyFS) Capabilities() billy.Capability { return billy.ReadCapability }

type runLog struct{ runs []Run }

func (l *runLog) Record(_ context.Context, run Run) error {
	l.runs = append(l.runs, run)
	return nil
}

func unzip(t *testing.T, data []byte) map[string][]byte {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	out := map[string][]byte{}
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		b, err := io.ReadAll(rc)
		require.NoError(t, err)
		_ = rc.Close()
		out[f.Name] = b
	}
	return out
}

func keys(m map[string][]byte) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func archive(t *testing.T, snap *model.Snapshot, opts Options) (Result, map[string][]byte, []byte) {
	t.Helper()
	sink := &memSink{}
	opts.Delivery = DeliveryArchive
	res := (&Exporter{Archive: sink}).ExportProject(context.Background(), snap, opts)
	require.True(t, res.OK, res.Message)
	return res, unzip(t, sink.data), sink.data
}

func TestExportProject_MultiWindowLayout(t *testing.T) {
	res, files, _ := archive(t, fixture(), DefaultOptions())

	assert.Equal(t, []string{
		"INTEGRATION.md",
		"main/assets/logo.svg",
		"main/bindings.js",
		"main/components.js",
		"main/index.html",
		"main/responsive.js",
		"main/styles.css",
		"settings/bindings.js",
		"settings/components.js",
		"settings/index.html",
		"settings/responsive.js",
		"settings/styles.css",
	}, keys(files))
	assert.Equal(t, len(files), res.Metrics.FileCount)
	assert.Equal(t, 2, res.Metrics.Windows)
	assert.Contains(t, string(files["INTEGRATION.md"]), "### Main (main/)")
	assert.Contains(t, res.Location, "test-synth-faceplate.zip")
}

func TestExportProject_DeveloperWindows(t *testing.T) {
	_, files, _ := archive(t, fixture(), DefaultOptions())
	for name := range files {
		assert.False(t, strings.HasPrefix(name, "debug/"), name)
	}

	opts := DefaultOptions()
	opts.IncludeDeveloperWindows = true
	_, files, _ = archive(t, fixture(), opts)
	assert.Contains(t, files, "debug/index.html")
}

func TestExportWindow_SingleWindowAtRoot(t *testing.T) {
	sink := &memSink{}
	res := (&Exporter{Archive: sink}).ExportWindow(context.Background(), fixture(), "w1", DefaultOptions())
	require.True(t, res.OK, res.Message)

	files := unzip(t, sink.data)
	assert.Contains(t, files, "index.html")
	assert.Contains(t, files, "assets/logo.svg")
	assert.Contains(t, files, "INTEGRATION.md")
	assert.NotContains(t, files, "main/index.html")
	assert.Contains(t, string(files["index.html"]), `src="assets/logo.svg"`)
}

func TestExportWindow_Unknown(t *testing.T) {
	res := (&Exporter{Archive: &memSink{}}).ExportWindow(context.Background(), fixture(), "nope", DefaultOptions())
	assert.False(t, res.OK)
	assert.Contains(t, res.Message, "nope")
}

func TestExportProject_Deterministic(t *testing.T) {
	_, _, first := archive(t, fixture(), DefaultOptions())
	_, _, second := archive(t, fixture(), DefaultOptions())
	assert.Equal(t, first, second)
}

func TestExportProject_DeliveryParity(t *testing.T) {
	_, files, _ := archive(t, fixture(), DefaultOptions())

	fs := &recordingFS{Filesystem: memfs.New()}
	opts := DefaultOptions()
	opts.Delivery = DeliveryFolder
	res := (&Exporter{Directory: StaticDirectory{FS: fs}}).ExportProject(context.Background(), fixture(), opts)
	require.True(t, res.OK, res.Message)

	sort.Strings(fs.written)
	assert.Equal(t, keys(files), fs.written)
	for name, want := range files {
		got, err := util.ReadFile(fs, name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
	assert.Zero(t, res.Metrics.ArchiveBytes)
}

func TestExportProject_FolderRefusesReadOnly(t *testing.T) {
	fs := memfs.New()
	opts := DefaultOptions()
	opts.Delivery = DeliveryFolder
	res := (&Exporter{Directory: StaticDirectory{FS: readOnlyFS{fs}}}).ExportProject(context.Background(), fixture(), opts)

	assert.False(t, res.OK)
	assert.ErrorIs(t, res.Err, ErrFolderUnavailable)
	_, err := fs.Stat("INTEGRATION.md")
	assert.True(t, os.IsNotExist(err))
}

func TestExportProject_FolderWithoutProvider(t *testing.T) {
	opts := DefaultOptions()
	opts.Delivery = DeliveryFolder
	res := (&Exporter{Archive: &memSink{}}).ExportProject(context.Background(), fixture(), opts)
	assert.False(t, res.OK)
	assert.ErrorIs(t, res.Err, ErrFolderUnavailable)
}

func TestWriteFolder_RemovesPartialOutput(t *testing.T) {
	b := &Bundle{}
	b.add("index.html", "<html></html>")
	b.add("styles.css", "")
	b.add("assets/logo.svg", "<svg/>")

	fs := &recordingFS{Filesystem: memfs.New(), failOn: "assets/logo.svg"}
	err := WriteFolder(fs, b)

	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "write", ioErr.Op)
	assert.Equal(t, "assets/logo.svg", ioErr.Path)
	for _, name := range []string{"index.html", "styles.css", "assets/logo.svg"} {
		_, err := fs.Stat(name)
		assert.True(t, os.IsNotExist(err), name)
	}
}

func TestWriteFolder_RollbackKeepsExistingFiles(t *testing.T) {
	b := &Bundle{}
	b.add("index.html", "<html>new</html>")
	b.add("styles.css", "")
	b.add("assets/logo.svg", "<svg/>")

	mem := memfs.New()
	require.NoError(t, util.WriteFile(mem, "index.html", []byte("<html>old</html>"), 0o644))
	require.NoError(t, util.WriteFile(mem, "notes.txt", []byte("mine"), 0o644))

	fs := &recordingFS{Filesystem: mem, failOn: "assets/logo.svg"}
	require.Error(t, WriteFolder(fs, b))

	got, err := util.ReadFile(fs, "index.html")
	require.NoError(t, err, "pre-existing file was deleted by rollback")
	assert.Equal(t, "<html>old</html>", string(got))

	got, err = util.ReadFile(fs, "notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "mine", string(got))

	for _, name := range []string{"styles.css", "assets/logo.svg"} {
		_, err := fs.Stat(name)
		assert.True(t, os.IsNotExist(err), name)
	}
}

func TestWriteFolder_OverwritesExisting(t *testing.T) {
	b := &Bundle{}
	b.add("index.html", "<html>new</html>")

	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "index.html", []byte("<html>old</html>"), 0o644))
	require.NoError(t, WriteFolder(fs, b))

	got, err := util.ReadFile(fs, "index.html")
	require.NoError(t, err)
	assert.Equal(t, "<html>new</html>", string(got))
}

func TestExportProject_NameCollisionBlocks(t *testing.T) {
	snap := fixture()
	snap.Elements = append(snap.Elements, named(model.KindKnob, "k3", "gain"))
	snap.Windows[0].ElementIDs = append(snap.Windows[0].ElementIDs, "k3")

	sink := &memSink{}
	res := (&Exporter{Archive: sink}).ExportProject(context.Background(), snap, DefaultOptions())

	assert.False(t, res.OK)
	assert.True(t, strings.HasPrefix(res.Message, "Please fix these issues before exporting:"), res.Message)
	assert.Contains(t, res.Message, "Main/gain")
	var ve *ValidationError
	assert.ErrorAs(t, res.Err, &ve)
	assert.Nil(t, sink.data, "nothing is delivered")
}

func TestExportProject_WindowFolderCollision(t *testing.T) {
	snap := fixture()
	snap.Windows[1].Name = "main"

	res := (&Exporter{Archive: &memSink{}}).ExportProject(context.Background(), snap, DefaultOptions())
	assert.False(t, res.OK)
	assert.Contains(t, res.Message, "collides")
}

func TestExportWindow_ParentCycleFailsValidation(t *testing.T) {
	a := named(model.KindPanel, "p1", "Outer")
	b := named(model.KindPanel, "p2", "Inner")
	a.Base().ParentID = "p2"
	b.Base().ParentID = "p1"
	snap := &model.Snapshot{
		Windows:  []model.Window{{ID: "w", Name: "Main", Width: 100, Height: 100, ElementIDs: []string{"p1"}}},
		Elements: []model.Element{a, b},
	}

	res := (&Exporter{Archive: &memSink{}}).ExportWindow(context.Background(), snap, "w", DefaultOptions())
	assert.False(t, res.OK)

	bundle, err := Generate(context.Background(), snap, snap.Windows, DefaultOptions(), nil, nil)
	require.NoError(t, err)
	html, ok := bundle.File(codegen.FileHTML)
	require.True(t, ok)
	assert.Equal(t, 1, strings.Count(string(html), `id="outer"`))
	assert.Equal(t, 1, strings.Count(string(html), `id="inner"`))
}

type rogue struct{ *model.Knob }

func TestGenerate_RecoversGenerationFailure(t *testing.T) {
	snap := fixture()
	snap.Elements[0] = rogue{snap.Elements[0].(*model.Knob)}

	_, err := Generate(context.Background(), snap, snap.Windows[:1], DefaultOptions(), nil, nil)
	var ge *codegen.GenerationError
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, "k1", ge.ElementID)
}

func TestExportProject_OptimizationMetrics(t *testing.T) {
	res, files, _ := archive(t, fixture(), DefaultOptions())
	assert.True(t, res.Metrics.Optimized)
	assert.Equal(t, len(logoSVG), res.Metrics.OriginalSVGBytes)
	assert.Less(t, res.Metrics.OptimizedSVGBytes, res.Metrics.OriginalSVGBytes)
	assert.NotContains(t, string(files["main/assets/logo.svg"]), "<!--")
	assert.Contains(t, string(files["main/assets/logo.svg"]), `id="knob-indicator-1"`)
	assert.Contains(t, res.Message, "saved")

	opts := DefaultOptions()
	opts.Optimize = false
	res, files, _ = archive(t, fixture(), opts)
	assert.False(t, res.Metrics.Optimized)
	assert.Equal(t, logoSVG, string(files["main/assets/logo.svg"]))
}

func TestExportProject_OptionalScripts(t *testing.T) {
	opts := DefaultOptions()
	opts.Responsive = false
	opts.IncludeMockRelay = true
	_, files, _ := archive(t, fixture(), opts)

	assert.NotContains(t, files, "main/responsive.js")
	assert.Contains(t, files, "main/mock-relay.js")
	assert.Contains(t, string(files["main/index.html"]), codegen.ScriptTag(codegen.FileMockRelay))
}

func TestExportProject_DoesNotMutateInput(t *testing.T) {
	snap := fixture()
	before, err := snap.ToProject()
	require.NoError(t, err)

	archive(t, snap, DefaultOptions())

	after, err := snap.ToProject()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestExportProject_RecordsHistory(t *testing.T) {
	hist := &runLog{}
	e := &Exporter{Archive: &memSink{}, History: hist}
	e.ExportProject(context.Background(), fixture(), DefaultOptions())

	snap := fixture()
	snap.Windows[1].Name = "main"
	e.ExportProject(context.Background(), snap, DefaultOptions())

	require.Len(t, hist.runs, 2)
	assert.True(t, hist.runs[0].OK)
	assert.Equal(t, []string{"Main", "Settings"}, hist.runs[0].Windows)
	assert.Equal(t, "Test Synth", hist.runs[0].Project)
	assert.NotEmpty(t, hist.runs[0].ID)
	assert.False(t, hist.runs[1].OK)
}

func TestExportProject_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sink := &memSink{}
	res := (&Exporter{Archive: sink}).ExportProject(ctx, fixture(), DefaultOptions())
	assert.False(t, res.OK)
	assert.ErrorIs(t, res.Err, context.Canceled)
	assert.Nil(t, sink.data)
}

func TestParseDelivery(t *testing.T) {
	d, err := ParseDelivery("zip")
	require.NoError(t, err)
	assert.Equal(t, DeliveryArchive, d)
	d, err = ParseDelivery("Folder")
	require.NoError(t, err)
	assert.Equal(t, DeliveryFolder, d)
	_, err = ParseDelivery("ftp")
	assert.Error(t, err)
}

func TestArchiveName(t *testing.T) {
	assert.Equal(t, "test-synth-faceplate.zip", ArchiveName("Test Synth"))
	assert.Equal(t, "project-faceplate.zip", ArchiveName("!!"))
}

func TestExportProject_Spans(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))

	res := (&Exporter{Archive: &memSink{}, Tracer: tp.Tracer("test")}).ExportProject(context.Background(), fixture(), DefaultOptions())
	require.True(t, res.OK, res.Message)

	var names []string
	for _, s := range rec.Ended() {
		names = append(names, s.Name())
	}
	assert.ElementsMatch(t, []string{"bundle.window", "bundle.window", "bundle.export"}, names)
}
