package polyline

import (
	"math"
	"sync"

	"github.com/gogpu/gg"
	"github.com/mgnsk/polyline/list"
)

// Segment is a straight piece of a line between two consecutive points.
type Segment struct {
	From, To     gg.Point
	FromID, ToID uint64
}

// Length returns the length of the segment.
func (s Segment) Length() float64 {
	return s.From.Distance(s.To)
}

// Line is an ordered sequence of points drawn as one polyline.
// Each point is addressed by the identifier returned when it was inserted.
//
// Line is safe for concurrent use.
type Line struct {
	mu      sync.RWMutex
	points  list.List[gg.Point]
	style   Style
	version uint64
}

// NewLine creates a line with style and initial points.
func NewLine(style Style, points ...gg.Point) *Line {
	l := &Line{
		style:   style,
		version: 1,
	}

	for _, p := range points {
		l.points.PushBack(p)
	}

	return l
}

// Len returns the number of points.
func (l *Line) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.points.Len()
}

// Version returns a counter that changes whenever the line changes.
func (l *Line) Version() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.version
}

// Style returns the line style.
func (l *Line) Style() Style {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.style
}

// SetStyle validates s and replaces the line style.
func (l *Line) SetStyle(s Style) error {
	if err := s.Validate(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.style = s
	l.version++

	return nil
}

// Append adds a point at the end of the line and returns its identifier.
func (l *Line) Append(p gg.Point) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.version++
	return l.points.PushBack(p).ID()
}

// Prepend adds a point at the start of the line and returns its identifier.
func (l *Line) Prepend(p gg.Point) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.version++
	return l.points.PushFront(p).ID()
}

// InsertAt inserts a point at index i.
func (l *Line) InsertAt(i int, p gg.Point) (id uint64, ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.inserted(l.points.InsertAt(i, p))
}

// InsertAfter inserts a point after the point with identifier mark.
func (l *Line) InsertAfter(mark uint64, p gg.Point) (id uint64, ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.inserted(l.points.InsertAfterID(mark, p))
}

// InsertBefore inserts a point before the point with identifier mark.
func (l *Line) InsertBefore(mark uint64, p gg.Point) (id uint64, ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.inserted(l.points.InsertBeforeID(mark, p))
}

// Point returns the position of the point with identifier id.
func (l *Line) Point(id uint64) (gg.Point, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.points.ByID(id)
}

// Set moves the point with identifier id to p.
func (l *Line) Set(id uint64, p gg.Point) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := l.points.NodeByID(id)
	if n == nil {
		return false
	}

	n.Value = p
	l.version++

	return true
}

// Remove removes the point with identifier id.
func (l *Line) Remove(id uint64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.points.RemoveByID(id); !ok {
		return false
	}

	l.version++

	return true
}

// RemoveAt removes the point at index i.
func (l *Line) RemoveAt(i int) (gg.Point, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	p, ok := l.points.RemoveAt(i)
	if ok {
		l.version++
	}

	return p, ok
}

// Clear removes all points.
func (l *Line) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.points.Clear()
	l.version++
}

// Points returns the positions in line order.
func (l *Line) Points() []gg.Point {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.points.ToSlice()
}

// IDs returns the point identifiers in line order.
func (l *Line) IDs() []uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	ids := make([]uint64, 0, l.points.Len())
	l.points.ForEach(func(_ gg.Point, _ int, n *list.Node[gg.Point]) {
		ids = append(ids, n.ID())
	})

	return ids
}

// Segments returns the segments between consecutive points.
// A line with fewer than two points has no segments.
func (l *Line) Segments() []Segment {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.segments()
}

// Length returns the total length of all segments.
func (l *Line) Length() float64 {
	var total float64
	for _, s := range l.Segments() {
		total += s.Length()
	}
	return total
}

// Bounds returns the smallest box containing all points.
func (l *Line) Bounds() (minPt, maxPt gg.Point, ok bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.points.IsEmpty() {
		return minPt, maxPt, false
	}

	minPt = gg.Pt(math.Inf(1), math.Inf(1))
	maxPt = gg.Pt(math.Inf(-1), math.Inf(-1))

	for p := range l.points.All() {
		minPt = gg.Pt(math.Min(minPt.X, p.X), math.Min(minPt.Y, p.Y))
		maxPt = gg.Pt(math.Max(maxPt.X, p.X), math.Max(maxPt.Y, p.Y))
	}

	return minPt, maxPt, true
}

// snapshot returns everything a flush needs in one consistent read.
func (l *Line) snapshot() ([]Segment, Style, uint64) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.segments(), l.style, l.version
}

func (l *Line) segments() []Segment {
	if l.points.Len() < 2 {
		return nil
	}

	segs := make([]Segment, 0, l.points.Len()-1)

	l.points.Do(func(n *list.Node[gg.Point]) bool {
		if next := n.Next(); next != nil {
			segs = append(segs, Segment{
				From:   n.Value,
				To:     next.Value,
				FromID: n.ID(),
				ToID:   next.ID(),
			})
		}
		return true
	})

	return segs
}

func (l *Line) inserted(n *list.Node[gg.Point]) (uint64, bool) {
	if n == nil {
		return 0, false
	}

	l.version++

	return n.ID(), true
}
