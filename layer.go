/*
Package polyline keeps the point sequences of globe overlay lines and pushes
changed geometry to an external rendering engine.
*/
package polyline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mgnsk/polyline/list"
	"github.com/puzpuzpuz/xsync/v2"
)

// Batch is the geometry of one line at a version.
type Batch struct {
	Name     string
	Segments []Segment
	Style    Style
	Version  uint64
}

// Sink receives geometry for the engine's scene.
type Sink interface {
	// Submit replaces the geometry drawn for b.Name.
	Submit(ctx context.Context, b Batch) error
	// Remove drops the geometry drawn for name.
	Remove(ctx context.Context, name string) error
}

type entry struct {
	line *Line
	// node is the position in draw order, nil once removed. Guarded by Layer.mu.
	node *list.Node[string]
	// flushed is the last version accepted by the sink. Guarded by Layer.mu.
	flushed uint64
	// shown reports whether the sink has ever received the line. Guarded by Layer.mu.
	shown bool
}

// Layer is a set of named lines in draw order.
//
// Layer is safe for concurrent use.
type Layer struct {
	log     *slog.Logger
	entries *xsync.MapOf[string, *entry]
	flushMu sync.Mutex
	mu      sync.Mutex
	order   list.List[string]
	removed []string
}

// New creates an empty layer.
func New(opts ...Option) *Layer {
	o := newDefaultLayerOptions()
	for _, opt := range opts {
		opt.apply(&o)
	}

	return &Layer{
		log:     o.logger,
		entries: xsync.NewMapOf[*entry](),
	}
}

// Len returns the number of lines.
func (l *Layer) Len() int {
	return l.entries.Size()
}

// Add a line on top of the layer.
func (l *Layer) Add(name string, line *Line) error {
	if line == nil {
		return fmt.Errorf("adding line %q: %w", name, ErrNilLine)
	}

	if err := line.Style().Validate(); err != nil {
		return fmt.Errorf("adding line %q: %w", name, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.entries.Load(name); ok {
		return fmt.Errorf("adding line %q: %w", name, ErrExists)
	}

	l.entries.Store(name, &entry{
		line: line,
		node: l.order.PushBack(name),
	})

	return nil
}

// Line returns the line stored under name.
func (l *Layer) Line(name string) (*Line, bool) {
	if e, ok := l.entries.Load(name); ok {
		return e.line, true
	}
	return nil, false
}

// SetStyle validates s and applies it to the line stored under name.
func (l *Layer) SetStyle(name string, s Style) error {
	e, ok := l.entries.Load(name)
	if !ok {
		return fmt.Errorf("styling line %q: %w", name, ErrNotFound)
	}

	if err := e.line.SetStyle(s); err != nil {
		return fmt.Errorf("styling line %q: %w", name, err)
	}

	return nil
}

// Remove a line. The engine drops it on the next Flush.
func (l *Layer) Remove(name string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries.LoadAndDelete(name)
	if !ok {
		return false
	}

	l.order.Remove(e.node)
	e.node = nil

	if e.shown {
		l.removed = append(l.removed, name)
	}

	return true
}

// Clear removes all lines.
func (l *Layer) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	for name := range l.order.All() {
		if e, ok := l.entries.LoadAndDelete(name); ok {
			e.node = nil
			if e.shown {
				l.removed = append(l.removed, name)
			}
		}
	}

	l.order.Clear()
}

// Names returns the line names in draw order, bottom first.
func (l *Layer) Names() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.order.ToSlice()
}

// Raise moves a line to the top of the layer.
func (l *Layer) Raise(name string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries.Load(name)
	if !ok {
		return false
	}

	l.order.MoveToBack(e.node)

	return true
}

// Lower moves a line to the bottom of the layer.
func (l *Layer) Lower(name string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries.Load(name)
	if !ok {
		return false
	}

	l.order.MoveToFront(e.node)

	return true
}

type pending struct {
	entry *entry
	batch Batch
}

// Flush sends removed lines and lines changed since the last flush to sink,
// removals first and then changes in draw order. It returns the number of
// submitted batches.
//
// On error the remaining work stays queued for the next Flush.
func (l *Layer) Flush(ctx context.Context, sink Sink) (int, error) {
	l.flushMu.Lock()
	defer l.flushMu.Unlock()

	removed, batches := l.collect()

	for i, name := range removed {
		if err := ctx.Err(); err != nil {
			l.requeue(removed[i:])
			return 0, err
		}

		if err := sink.Remove(ctx, name); err != nil {
			l.requeue(removed[i:])
			l.log.Warn("removing line failed", "name", name, "error", err)
			return 0, fmt.Errorf("removing line %q: %w", name, err)
		}

		l.log.Debug("removed line", "name", name)
	}

	submitted := 0

	for _, p := range batches {
		if err := ctx.Err(); err != nil {
			return submitted, err
		}

		if err := sink.Submit(ctx, p.batch); err != nil {
			l.log.Warn("submitting line failed", "name", p.batch.Name, "error", err)
			return submitted, fmt.Errorf("submitting line %q: %w", p.batch.Name, err)
		}

		l.markFlushed(p.entry, p.batch.Name, p.batch.Version)
		submitted++

		l.log.Debug("submitted line",
			"name", p.batch.Name,
			"version", p.batch.Version,
			"segments", len(p.batch.Segments),
			"material", p.batch.Style.Material.String(),
		)
	}

	return submitted, nil
}

func (l *Layer) collect() ([]string, []pending) {
	l.mu.Lock()
	defer l.mu.Unlock()

	removed := l.removed
	l.removed = nil

	var batches []pending

	for name := range l.order.All() {
		e, ok := l.entries.Load(name)
		if !ok {
			continue
		}

		segs, style, version := e.line.snapshot()
		if version == e.flushed {
			continue
		}

		if len(segs) == 0 && !e.shown {
			// Nothing drawn yet and nothing to draw.
			e.flushed = version
			continue
		}

		batches = append(batches, pending{
			entry: e,
			batch: Batch{
				Name:     name,
				Segments: segs,
				Style:    style,
				Version:  version,
			},
		})
	}

	return removed, batches
}

func (l *Layer) markFlushed(e *entry, name string, version uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if e.node == nil && !e.shown {
		// Removed while being submitted.
		l.removed = append(l.removed, name)
	}

	if version > e.flushed {
		e.flushed = version
	}
	e.shown = true
}

func (l *Layer) requeue(names []string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.removed = append(append([]string(nil), names...), l.removed...)
}
