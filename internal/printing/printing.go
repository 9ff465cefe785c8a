// Package printing implements the print collaborator of the engine and the
// export of every slide as a laid out page.
package printing

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/deckshow/internal/events"
	"github.com/agbru/deckshow/internal/geometry"
	"github.com/agbru/deckshow/internal/logging"
	"github.com/agbru/deckshow/internal/orchestration"
	"github.com/agbru/deckshow/internal/view"
)

// PageSeparator is written between exported pages.
const PageSeparator = "\f\n"

// Notifier delivers print passes to subscribers and tracks the page
// orientation requested by presenter mode.
type Notifier struct {
	handlers    []func(orchestration.PrintEvent)
	orientation geometry.Orientation
}

// NewNotifier returns a notifier in landscape orientation.
func NewNotifier() *Notifier { return &Notifier{} }

// OnPrint subscribes fn to print passes.
func (n *Notifier) OnPrint(fn func(orchestration.PrintEvent)) {
	n.handlers = append(n.handlers, fn)
}

// SetPageOrientation records the page orientation of the next print pass.
func (n *Notifier) SetPageOrientation(o geometry.Orientation) { n.orientation = o }

// Orientation returns the current page orientation.
func (n *Notifier) Orientation() geometry.Orientation { return n.orientation }

// Print starts a print pass on a page of the given size.
func (n *Notifier) Print(pageWidth, pageHeight float64) orchestration.PrintEvent {
	ev := orchestration.PrintEvent{
		PageWidth:  pageWidth,
		PageHeight: pageHeight,
		Portrait:   n.orientation == geometry.Portrait,
	}
	for _, h := range n.handlers {
		h(ev)
	}
	return ev
}

// RenderFunc renders one laid out slide view to text.
type RenderFunc func(v *view.SlideView, page orchestration.PrintEvent) (string, error)

// Progress is notified after each rendered page.
type Progress func(done, total int)

// ExporterOption configures an Exporter.
type ExporterOption func(*Exporter)

// WithLogger sets the exporter logger.
func WithLogger(l logging.Logger) ExporterOption {
	return func(x *Exporter) { x.logger = l }
}

// WithProgress installs a progress callback. It is called from a goroutine
// other than the one running Export.
func WithProgress(p Progress) ExporterOption {
	return func(x *Exporter) { x.progress = p }
}

// WithConcurrency bounds the number of pages rendered at once.
func WithConcurrency(n int) ExporterOption {
	return func(x *Exporter) { x.concurrency = n }
}

// Exporter lays out every slide for print and writes the rendered pages.
type Exporter struct {
	notifier    *Notifier
	views       func() []*view.SlideView
	render      RenderFunc
	bus         events.Emitter
	logger      logging.Logger
	progress    Progress
	concurrency int
}

// NewExporter creates an exporter. views returns the engine's slide views;
// bus receives a resize after the export so the screen layout is restored.
func NewExporter(notifier *Notifier, views func() []*view.SlideView, render RenderFunc, bus events.Emitter, opts ...ExporterOption) *Exporter {
	x := &Exporter{
		notifier:    notifier,
		views:       views,
		render:      render,
		bus:         bus,
		logger:      logging.Nop(),
		concurrency: 4,
	}
	for _, opt := range opts {
		opt(x)
	}
	return x
}

// Export prints every slide on a page of the given size and writes the
// pages to w in slide order.
func (x *Exporter) Export(ctx context.Context, w io.Writer, pageWidth, pageHeight float64) (err error) {
	ctx, span := otel.Tracer("github.com/agbru/deckshow/internal/printing").Start(ctx, "printing.Export")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	page := x.notifier.Print(pageWidth, pageHeight)
	defer func() {
		if rerr := x.bus.Emit(events.Resize); rerr != nil && err == nil {
			err = rerr
		}
	}()

	views := x.views()
	span.SetAttributes(
		attribute.Int("deck.slides", len(views)),
		attribute.Float64("page.width", pageWidth),
		attribute.Float64("page.height", pageHeight),
		attribute.Bool("page.portrait", page.Portrait),
	)

	pages := make([]string, len(views))
	g, ctx := errgroup.WithContext(ctx)
	if x.concurrency > 0 {
		g.SetLimit(x.concurrency)
	}
	done := make(chan struct{}, len(views))
	for i, v := range views {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := x.render(v, page)
			if err != nil {
				return fmt.Errorf("rendering slide %d: %w", v.Index()+1, err)
			}
			pages[i] = out
			done <- struct{}{}
			return nil
		})
	}

	finished := make(chan struct{})
	go func() {
		defer close(finished)
		for n := 1; n <= len(views); n++ {
			if _, ok := <-done; !ok {
				return
			}
			if x.progress != nil {
				x.progress(n, len(views))
			}
		}
	}()

	err = g.Wait()
	close(done)
	<-finished
	if err != nil {
		return err
	}

	if _, err = io.WriteString(w, strings.Join(pages, PageSeparator)); err != nil {
		return fmt.Errorf("writing pages: %w", err)
	}
	x.logger.Info("deck exported",
		logging.Int("pages", len(pages)),
		logging.Bool("portrait", page.Portrait),
	)
	return nil
}

var _ orchestration.Printer = (*Notifier)(nil)
