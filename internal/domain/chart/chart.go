// Package chart turns aggregation results into declarative chart specs and
// renders them as SVG.
package chart

import (
	"github.com/okian/ipldash/internal/domain/types"
)

// Default canvas size in pixels.
const (
	DefaultWidth  = 640
	DefaultHeight = 360
	maxLabelRunes = 18
)

// Kind is the chart type.
type Kind int

// Chart kinds.
const (
	KindBar Kind = iota
	KindPie
	KindLine
	KindArea
)

func (k Kind) String() string {
	switch k {
	case KindPie:
		return "pie"
	case KindLine:
		return "line"
	case KindArea:
		return "area"
	default:
		return "bar"
	}
}

// Point is one category of a chart. Display is the formatted value.
type Point struct {
	Label   string
	Value   float64
	Display string
}

// Spec describes a chart without drawing it.
type Spec struct {
	ID      string
	Kind    Kind
	Title   string
	XLabel  string
	YLabel  string
	Palette Palette
	Points  []Point
	Width   int
	Height  int
}

// Empty reports whether there is nothing to draw: no points, or a pie
// whose slices are all zero.
func (s Spec) Empty() bool {
	if len(s.Points) == 0 {
		return true
	}
	if s.Kind != KindPie {
		return false
	}
	for _, p := range s.Points {
		if p.Value > 0 {
			return false
		}
	}
	return true
}

// Option applies a configuration option to a Spec.
type Option func(*Spec)

// WithAxes sets the axis labels.
func WithAxes(x, y string) Option {
	return func(s *Spec) {
		s.XLabel = x
		s.YLabel = y
	}
}

// WithPalette sets the colour scale.
func WithPalette(p Palette) Option {
	return func(s *Spec) {
		if p != "" {
			s.Palette = p
		}
	}
}

// WithSize sets the canvas size.
func WithSize(width, height int) Option {
	return func(s *Spec) {
		if width > 0 && height > 0 {
			s.Width = width
			s.Height = height
		}
	}
}

// WithFormatter sets how point values are displayed.
func WithFormatter(format func(float64) string) Option {
	return func(s *Spec) {
		if format == nil {
			return
		}
		for i := range s.Points {
			s.Points[i].Display = format(s.Points[i].Value)
		}
	}
}

// New maps entries onto a Spec in the order given. Labels are kept whole
// here and shortened only when drawn.
func New(kind Kind, id, title string, entries []types.Entry, opts ...Option) Spec {
	s := Spec{
		ID:      id,
		Kind:    kind,
		Title:   title,
		Palette: Categorical,
		Points:  make([]Point, len(entries)),
		Width:   DefaultWidth,
		Height:  DefaultHeight,
	}
	for i, e := range entries {
		s.Points[i] = Point{Label: e.Category, Value: e.Value, Display: Count(e.Value)}
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
