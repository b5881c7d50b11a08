package chart

import (
	"errors"
	"fmt"
	"io"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/okian/ipldash/pkg/metrics"
)

// ErrEmpty is returned for a Spec with nothing to draw. Callers show an
// empty-state message instead.
var ErrEmpty = errors.New("chart has no data")

// Render outcomes recorded as metric labels.
const (
	outcomeOK    = "ok"
	outcomeEmpty = "empty"
	outcomeError = "error"
)

const (
	barWidth      = 36
	barSpacing    = 14
	barCanvasPad  = 120
	headroom      = 1.1
	strokeWidth   = 2.5
	dotWidth      = 4
	areaFillAlpha = 64
)

// Render draws s to w as SVG.
func Render(w io.Writer, s Spec) error {
	if s.Empty() {
		metrics.RecordChartRender(s.Kind.String(), outcomeEmpty)
		return ErrEmpty
	}

	var err error
	switch s.Kind {
	case KindPie:
		err = renderPie(w, s)
	case KindLine, KindArea:
		err = renderSeries(w, s)
	default:
		err = renderBar(w, s)
	}
	if err != nil {
		metrics.RecordChartRender(s.Kind.String(), outcomeError)
		return fmt.Errorf("render %s chart %q: %w", s.Kind, s.ID, err)
	}
	metrics.RecordChartRender(s.Kind.String(), outcomeOK)
	return nil
}

func renderBar(w io.Writer, s Spec) error {
	lo, hi := bounds(s.Points)
	bars := make([]gochart.Value, len(s.Points))
	for i, p := range s.Points {
		c := s.Palette.Color(i, p.Value, lo, hi)
		bars[i] = gochart.Value{
			Label: Truncate(p.Label, maxLabelRunes),
			Value: p.Value,
			Style: gochart.Style{FillColor: c, StrokeColor: c},
		}
	}

	bc := gochart.BarChart{
		Width:      max(s.Width, len(bars)*(barWidth+barSpacing)+barCanvasPad),
		Height:     s.Height,
		BarWidth:   barWidth,
		BarSpacing: barSpacing,
		Background: gochart.Style{Padding: gochart.Box{Top: 24, Left: 16, Right: 16, Bottom: 16}},
		YAxis: gochart.YAxis{
			Name:           s.YLabel,
			Range:          yRange(hi),
			ValueFormatter: countFormatter,
		},
		Bars: bars,
	}
	return bc.Render(gochart.SVG, w)
}

func renderPie(w io.Writer, s Spec) error {
	lo, hi := bounds(s.Points)
	values := make([]gochart.Value, 0, len(s.Points))
	for i, p := range s.Points {
		if p.Value <= 0 {
			continue
		}
		values = append(values, gochart.Value{
			Label: Truncate(p.Label, maxLabelRunes),
			Value: p.Value,
			Style: gochart.Style{FillColor: s.Palette.Color(i, p.Value, lo, hi), StrokeColor: drawing.ColorWhite},
		})
	}

	pc := gochart.PieChart{
		Width:  s.Width,
		Height: s.Height,
		Values: values,
	}
	return pc.Render(gochart.SVG, w)
}

// renderSeries draws line and area charts over categorical x positions
// 1..n. Both axes get explicit ranges so a single point still has a
// non-zero domain.
func renderSeries(w io.Writer, s Spec) error {
	n := len(s.Points)
	xs := make([]float64, n)
	ys := make([]float64, n)
	ticks := make([]gochart.Tick, 0, n+1)
	for i, p := range s.Points {
		xs[i] = float64(i + 1)
		ys[i] = p.Value
		ticks = append(ticks, gochart.Tick{Value: xs[i], Label: Truncate(p.Label, maxLabelRunes)})
	}
	minX, maxX := 0.5, float64(n)+0.5
	if n == 1 {
		maxX = 2
		ticks = append(ticks, gochart.Tick{Value: 2, Label: ""})
	}

	_, hi := bounds(s.Points)
	col := s.Palette.Color(0, hi, 0, hi)
	style := gochart.Style{StrokeColor: col, StrokeWidth: strokeWidth}
	if s.Kind == KindArea {
		style.FillColor = col.WithAlpha(areaFillAlpha)
	} else {
		style.DotColor = col
		style.DotWidth = dotWidth
	}

	ch := gochart.Chart{
		Width:      s.Width,
		Height:     s.Height,
		Background: gochart.Style{Padding: gochart.Box{Top: 24, Left: 16, Right: 16, Bottom: 16}},
		XAxis: gochart.XAxis{
			Name:  s.XLabel,
			Ticks: ticks,
			Range: &gochart.ContinuousRange{Min: minX, Max: maxX},
		},
		YAxis: gochart.YAxis{
			Name:           s.YLabel,
			Range:          yRange(hi),
			ValueFormatter: countFormatter,
		},
		Series: []gochart.Series{
			gochart.ContinuousSeries{Name: s.YLabel, XValues: xs, YValues: ys, Style: style},
		},
	}
	return ch.Render(gochart.SVG, w)
}

func bounds(points []Point) (lo, hi float64) {
	for i, p := range points {
		if i == 0 || p.Value < lo {
			lo = p.Value
		}
		if i == 0 || p.Value > hi {
			hi = p.Value
		}
	}
	return lo, hi
}

// yRange starts at zero and leaves headroom above hi; an all-zero series
// still gets a unit range.
func yRange(hi float64) *gochart.ContinuousRange {
	top := hi * headroom
	if top <= 0 {
		top = 1
	}
	return &gochart.ContinuousRange{Min: 0, Max: top}
}

func countFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return Count(f)
	}
	return ""
}
