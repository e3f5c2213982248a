package bundle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/agentic-research/faceplate/internal/model"
	"github.com/agentic-research/faceplate/internal/validate"
)

const tracerName = "github.com/agentic-research/faceplate/internal/bundle"

func defaultTracer() trace.Tracer { return otel.Tracer(tracerName) }

// ValidationError carries the blocking validation result of an export.
type ValidationError struct {
	Result validate.Result
}

func (e *ValidationError) Error() string { return e.Result.Message() }

// Run is one export attempt as recorded in the history.
type Run struct {
	ID        string
	Project   string
	Windows   []string
	Delivery  Delivery
	Location  string
	OK        bool
	Message   string
	Metrics   Metrics
	StartedAt time.Time
	Duration  time.Duration
}

// Recorder stores export runs.
type Recorder interface {
	Record(ctx context.Context, run Run) error
}

// Exporter delivers bundles. The zero value logs to slog.Default, traces
// through the global provider and has no sinks configured.
type Exporter struct {
	Logger    *slog.Logger
	Tracer    trace.Tracer
	Archive   ArchiveSink
	Directory DirectoryProvider
	// History, when set, records every run including failed ones.
	History Recorder
	// Now defaults to time.Now.
	Now func() time.Time
}

func (e *Exporter) logger() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return slog.Default()
}

func (e *Exporter) tracer() trace.Tracer {
	if e.Tracer != nil {
		return e.Tracer
	}
	return defaultTracer()
}

func (e *Exporter) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// ExportWindow exports one window with its files at the bundle root.
// Developer windows are exported when asked for by id.
func (e *Exporter) ExportWindow(ctx context.Context, snap *model.Snapshot, windowID string, opts Options) Result {
	w, ok := snap.Window(windowID)
	if !ok {
		return failed(fmt.Errorf("window %q not found", windowID))
	}
	return e.export(ctx, snap, []model.Window{w}, opts)
}

// ExportProject exports every shipping window in snapshot order.
// Developer windows are skipped unless opts.IncludeDeveloperWindows.
func (e *Exporter) ExportProject(ctx context.Context, snap *model.Snapshot, opts Options) Result {
	windows := snap.ExportWindows(opts.IncludeDeveloperWindows)
	if skipped := len(snap.Windows) - len(windows); skipped > 0 {
		e.logger().Info("skipping developer windows", "count", skipped)
	}
	if len(windows) == 0 {
		return failed(errors.New("no windows to export"))
	}
	return e.export(ctx, snap, windows, opts)
}

func (e *Exporter) export(ctx context.Context, snap *model.Snapshot, windows []model.Window, opts Options) Result {
	started := e.now()
	log := e.logger()
	ctx, span := e.tracer().Start(ctx, "bundle.export", trace.WithAttributes(
		attribute.Int("bundle.windows", len(windows)),
		attribute.String("bundle.delivery", string(opts.Delivery)),
	))
	defer span.End()

	res := e.run(ctx, snap, windows, opts)
	if res.OK {
		log.Info("export complete", "location", res.Location,
			"files", res.Metrics.FileCount, "bytes", res.Metrics.TotalBytes)
	} else {
		span.SetStatus(codes.Error, res.Message)
		log.Error("export failed", "error", res.Message)
	}

	if e.History != nil {
		run := Run{
			ID:        uuid.NewString(),
			Project:   opts.project(snap),
			Delivery:  opts.Delivery,
			Location:  res.Location,
			OK:        res.OK,
			Message:   res.Message,
			StartedAt: started,
			Duration:  e.now().Sub(started),
		}
		for _, w := range windows {
			run.Windows = append(run.Windows, w.Name)
		}
		if res.Metrics != nil {
			run.Metrics = *res.Metrics
		}
		if err := e.History.Record(ctx, run); err != nil {
			log.Warn("could not record export history", "error", err)
		}
	}
	return res
}

func (e *Exporter) run(ctx context.Context, snap *model.Snapshot, windows []model.Window, opts Options) Result {
	if err := ctx.Err(); err != nil {
		return failed(err)
	}
	if opts.Delivery == "" {
		opts.Delivery = DeliveryArchive
	}
	clone, err := snap.Clone()
	if err != nil {
		return failed(err)
	}

	vr := validate.Windows(model.NewIndex(clone.Elements), windows)
	if !vr.Valid {
		return failed(&ValidationError{Result: vr})
	}
	var warnings []string
	for _, w := range vr.Warnings {
		warnings = append(warnings, w.String())
	}

	b, err := Generate(ctx, clone, windows, opts, e.logger(), e.tracer())
	if err != nil {
		return failed(fmt.Errorf("export failed: %w", err))
	}

	metrics := Measure(b)
	location, err := e.deliver(ctx, b, opts, &metrics, opts.project(clone))
	if err != nil {
		return failed(err)
	}
	return Result{
		OK:       true,
		Message:  summary(metrics, location),
		Metrics:  &metrics,
		Location: location,
		Warnings: warnings,
	}
}

func (e *Exporter) deliver(ctx context.Context, b *Bundle, opts Options, m *Metrics, project string) (string, error) {
	switch opts.Delivery {
	case DeliveryArchive:
		if e.Archive == nil {
			return "", errors.New("archive delivery has no sink configured")
		}
		data, err := Zip(b)
		if err != nil {
			return "", err
		}
		m.ArchiveBytes = len(data)
		loc, err := e.Archive.WriteArchive(ctx, ArchiveName(project), data)
		if err != nil {
			return "", &IOError{Op: "archive", Path: ArchiveName(project), Err: err}
		}
		return loc, nil

	case DeliveryFolder:
		if e.Directory == nil {
			return "", ErrFolderUnavailable
		}
		fs, err := e.Directory.Directory(ctx)
		if err != nil {
			if errors.Is(err, ErrFolderUnavailable) {
				return "", err
			}
			return "", &IOError{Op: "provide", Err: err}
		}
		if err := WriteFolder(fs, b); err != nil {
			return "", err
		}
		return fs.Root(), nil
	}
	return "", fmt.Errorf("unknown delivery mode %q", opts.Delivery)
}

func summary(m Metrics, location string) string {
	msg := fmt.Sprintf("Exported %d files (%d bytes) to %s", m.FileCount, m.TotalBytes, location)
	if m.Optimized {
		msg += fmt.Sprintf("; SVG assets %d -> %d bytes (%.1f%% saved)",
			m.OriginalSVGBytes, m.OptimizedSVGBytes, m.SavingsPercent)
	}
	return msg
}
