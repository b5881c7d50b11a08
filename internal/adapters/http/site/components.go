package site

import (
	"bytes"
	"context"
	"errors"

	"github.com/a-h/templ"
	"github.com/okian/ipldash/internal/domain/chart"
	"github.com/okian/ipldash/pkg/logger"
)

const siteName = "IPL Analytics Dashboard"

func pageTitle(title string) string {
	if title == "" || title == siteName {
		return siteName
	}
	return title + " · " + siteName
}

// navURL links to v while keeping the widget state in q.
func navURL(v View, q Query) templ.SafeURL {
	return templ.URL(v.Path() + "?" + q.Values().Encode())
}

// drawChart renders s to SVG in memory so a failed render never leaves half
// a chart in the page. When nothing can be drawn it returns the note to show
// in its place.
func drawChart(ctx context.Context, s chart.Spec) (svg, note string) {
	var buf bytes.Buffer
	err := chart.Render(&buf, s)
	switch {
	case err == nil:
		return buf.String(), ""
	case errors.Is(err, chart.ErrEmpty):
		return "", "No data to display."
	default:
		logger.Get().Named("site").Error(ctx, "chart render failed",
			logger.String("chart", s.ID), logger.Error(err))
		return "", "Chart unavailable."
	}
}
