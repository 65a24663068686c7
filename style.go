package polyline

import (
	"fmt"

	"github.com/gogpu/gg"
)

// Material selects how the engine shades a line.
type Material int

// Available line materials.
const (
	// Solid draws the line in a single color.
	Solid Material = iota
	// Dashed draws Color where the dash pattern is set and GapColor elsewhere.
	Dashed
	// Arrow draws a textured arrow image flowing along the dash pattern.
	Arrow
	// Glow draws a soft gradient line with an optional highlighted segment.
	Glow
)

// String returns the material name.
func (m Material) String() string {
	switch m {
	case Solid:
		return "solid"
	case Dashed:
		return "dashed"
	case Arrow:
		return "arrow"
	case Glow:
		return "glow"
	default:
		return fmt.Sprintf("material(%d)", int(m))
	}
}

const solidPattern = 0xFFFF

// Style is the material configuration of a line.
// The engine interprets it; this package only validates and carries it.
type Style struct {
	Material Material
	Color    gg.RGBA
	GapColor gg.RGBA
	Width    float64

	// DashLength is the length of one pattern cycle in pixels.
	DashLength float64
	// DashPattern is a 16 bit mask over one cycle, least significant bit first.
	// A set bit is drawn in Color, an unset bit in GapColor.
	DashPattern uint16

	// Speed is the number of frames one flow cycle takes.
	Speed float64
	// Repeat is how many times the arrow image repeats along the line.
	Repeat float64
	// Image is the arrow texture location.
	Image string

	// Highlight is the index of the segment drawn in HighlightColor, or -1.
	Highlight      int
	HighlightColor gg.RGBA
}

// StyleOption configures a Style.
type StyleOption func(*Style)

// DefaultStyle returns a solid white line of width 8.
func DefaultStyle() Style {
	return Style{
		Material:    Solid,
		Color:       gg.White,
		GapColor:    gg.Transparent,
		Width:       8,
		DashPattern: solidPattern,
		Highlight:   -1,
	}
}

// NewStyle returns the default style with opts applied.
func NewStyle(opts ...StyleOption) Style {
	return DefaultStyle().With(opts...)
}

// DashedStyle returns a dashed line style in color c with transparent gaps.
func DashedStyle(c gg.RGBA) Style {
	return NewStyle(
		WithMaterial(Dashed),
		WithColor(c),
		WithDashLength(16),
		WithDashPattern(0xFF),
	)
}

// ArrowStyle returns the flowing green arrow line style.
func ArrowStyle() Style {
	return NewStyle(
		WithMaterial(Arrow),
		WithColor(gg.RGB(14.0/255, 211.0/255, 126.0/255)),
		WithGapColor(gg.White),
		WithSpeed(60),
		WithRepeat(5),
		WithDashLength(30),
		WithDashPattern(0xFF),
		WithImage("/arrow2.svg"),
	)
}

// GlowStyle returns the white gradient line style used for highlighting.
func GlowStyle() Style {
	return NewStyle(
		WithMaterial(Glow),
		WithHighlightColor(gg.RGB(1, 0.9, 0.3)),
	)
}

// With returns a copy of s with opts applied.
func (s Style) With(opts ...StyleOption) Style {
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Validate reports whether the engine can use the style.
func (s Style) Validate() error {
	switch {
	case s.Material < Solid || s.Material > Glow:
		return fmt.Errorf("%w: unknown material %d", ErrInvalidStyle, int(s.Material))
	case s.Width <= 0:
		return fmt.Errorf("%w: width must be positive, got %v", ErrInvalidStyle, s.Width)
	case s.DashLength < 0:
		return fmt.Errorf("%w: negative dash length %v", ErrInvalidStyle, s.DashLength)
	case s.Speed < 0:
		return fmt.Errorf("%w: negative speed %v", ErrInvalidStyle, s.Speed)
	case s.Highlight < -1:
		return fmt.Errorf("%w: invalid highlight index %d", ErrInvalidStyle, s.Highlight)
	}

	switch s.Material {
	case Dashed, Arrow:
		if s.DashLength == 0 {
			return fmt.Errorf("%w: %s material requires a dash length", ErrInvalidStyle, s.Material)
		}
	}

	if s.Material == Arrow && s.Image == "" {
		return fmt.Errorf("%w: arrow material requires an image", ErrInvalidStyle)
	}

	return nil
}

// Dash converts the dash pattern into alternating dash and gap lengths.
// It returns nil when the pattern is solid, empty or has no length.
func (s Style) Dash() *gg.Dash {
	if s.DashLength <= 0 || s.DashPattern == 0 || s.DashPattern == solidPattern {
		return nil
	}

	p := s.DashPattern
	set := func(i int) bool {
		return p&(1<<(i%16)) != 0
	}

	// Start on a set bit that follows an unset one so that the runs
	// begin with a dash and end with a gap.
	start := 0
	for !set(start) || set(start+15) {
		start++
	}

	unit := s.DashLength / 16
	var lengths []float64

	run := 0
	for i := range 16 {
		run++
		if i == 15 || set(start+i) != set(start+i+1) {
			lengths = append(lengths, float64(run)*unit)
			run = 0
		}
	}

	return gg.NewDash(lengths...).WithOffset(float64((16-start)%16) * unit)
}

// WithMaterial sets the material.
func WithMaterial(m Material) StyleOption {
	return func(s *Style) {
		s.Material = m
	}
}

// WithColor sets the line color.
func WithColor(c gg.RGBA) StyleOption {
	return func(s *Style) {
		s.Color = c
	}
}

// WithHexColor sets the line color from a hex string such as "#0ed37e".
func WithHexColor(hex string) StyleOption {
	return WithColor(gg.Hex(hex))
}

// WithGapColor sets the color drawn between dashes.
func WithGapColor(c gg.RGBA) StyleOption {
	return func(s *Style) {
		s.GapColor = c
	}
}

// WithWidth sets the line width in pixels.
func WithWidth(width float64) StyleOption {
	return func(s *Style) {
		s.Width = width
	}
}

// WithDashLength sets the length of one dash pattern cycle.
func WithDashLength(length float64) StyleOption {
	return func(s *Style) {
		s.DashLength = length
	}
}

// WithDashPattern sets the 16 bit dash mask.
func WithDashPattern(pattern uint16) StyleOption {
	return func(s *Style) {
		s.DashPattern = pattern
	}
}

// WithSpeed sets the flow speed.
func WithSpeed(speed float64) StyleOption {
	return func(s *Style) {
		s.Speed = speed
	}
}

// WithRepeat sets how many times the arrow image repeats.
func WithRepeat(repeat float64) StyleOption {
	return func(s *Style) {
		s.Repeat = repeat
	}
}

// WithImage sets the arrow texture.
func WithImage(image string) StyleOption {
	return func(s *Style) {
		s.Image = image
	}
}

// WithHighlight highlights the segment at index i. Use -1 to disable.
func WithHighlight(i int) StyleOption {
	return func(s *Style) {
		s.Highlight = i
	}
}

// WithHighlightColor sets the color of the highlighted segment.
func WithHighlightColor(c gg.RGBA) StyleOption {
	return func(s *Style) {
		s.HighlightColor = c
	}
}
