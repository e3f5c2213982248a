package preview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/agentic-research/faceplate/internal/model"
)

// DefaultGrace is how long a published preview stays reachable after it
// was opened.
const DefaultGrace = 5 * time.Second

// Result is the discriminated outcome of a preview.
type Result struct {
	OK bool `json:"ok"`
	// Blocked is set when the document was published but no browser
	// could be opened. URL is still valid until the grace period ends.
	Blocked bool   `json:"blocked"`
	Message string `json:"message"`
	URL     string `json:"url,omitempty"`
	Err     error  `json:"-"`
}

// Previewer renders, publishes and opens previews.
type Previewer struct {
	Publisher Publisher
	Opener    Opener
	// Grace defaults to DefaultGrace. A negative value never revokes.
	Grace  time.Duration
	Logger *slog.Logger
	Tracer trace.Tracer
}

func (p *Previewer) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}

func (p *Previewer) tracer() trace.Tracer {
	if p.Tracer != nil {
		return p.Tracer
	}
	return otel.Tracer("github.com/agentic-research/faceplate/internal/preview")
}

// Preview publishes doc and opens it.
func (p *Previewer) Preview(ctx context.Context, doc Document) Result {
	ctx, span := p.tracer().Start(ctx, "preview.open", trace.WithAttributes(
		attribute.Int("preview.windows", len(doc.Windows)),
		attribute.Int("preview.bytes", len(doc.HTML)),
	))
	defer span.End()

	if p.Publisher == nil {
		return Result{Message: "no preview publisher configured", Err: errors.New("no preview publisher configured")}
	}
	url, err := p.Publisher.Publish(ctx, doc)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return Result{Message: fmt.Sprintf("Preview failed: %v", err), Err: err}
	}

	grace := p.Grace
	if grace == 0 {
		grace = DefaultGrace
	}

	opener := p.Opener
	if opener == nil {
		opener = NoOpener{}
	}
	if err := opener.Open(ctx, url); err != nil {
		if grace > 0 {
			p.Publisher.RevokeAfter(url, grace)
		}
		span.SetStatus(codes.Error, err.Error())
		if errors.Is(err, ErrPreviewBlocked) {
			p.logger().Warn("preview blocked", "url", url, "error", err)
			return Result{Blocked: true, URL: url, Err: err,
				Message: "Preview window was blocked. Allow pop-ups or open " + url + " manually."}
		}
		return Result{URL: url, Err: err, Message: fmt.Sprintf("Preview failed: %v", err)}
	}
	if grace > 0 {
		p.Publisher.RevokeAfter(url, grace)
	}
	p.logger().Info("preview opened", "url", url, "title", doc.Title)
	return Result{OK: true, URL: url, Message: "Preview opened at " + url}
}

// PreviewWindow renders one window and previews it.
func (p *Previewer) PreviewWindow(ctx context.Context, snap *model.Snapshot, windowID string, opts Options) Result {
	_, span := p.tracer().Start(ctx, "preview.render")
	doc, err := RenderWindow(snap, windowID, opts)
	span.End()
	if err != nil {
		return Result{Message: fmt.Sprintf("Preview failed: %v", err), Err: err}
	}
	return p.Preview(ctx, doc)
}

// PreviewProject renders every previewable window and previews them
// together.
func (p *Previewer) PreviewProject(ctx context.Context, snap *model.Snapshot, opts Options) Result {
	_, span := p.tracer().Start(ctx, "preview.render")
	doc, err := RenderProject(snap, opts)
	span.End()
	if err != nil {
		return Result{Message: fmt.Sprintf("Preview failed: %v", err), Err: err}
	}
	return p.Preview(ctx, doc)
}
