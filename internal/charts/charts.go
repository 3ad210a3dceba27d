// Package charts renders survey summaries as bar chart images.
package charts

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"math"

	"ai-need-analyzer/internal/models"

	"github.com/golang/freetype/truetype"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Bar colors.
var (
	NeedColor       = drawing.ColorFromHex("2563eb")
	NoNeedColor     = drawing.ColorFromHex("9ca3af")
	ComparisonColor = drawing.ColorFromHex("10b981")
)

// ErrNoSummaries is returned when there is nothing to draw.
var ErrNoSummaries = errors.New("no summaries to chart")

// Renderer draws charts at a fixed size.
type Renderer struct {
	width  int
	height int
	font   *truetype.Font
}

// NewRenderer creates a renderer. A nil font selects the chart library default.
func NewRenderer(width, height int, font *truetype.Font) *Renderer {
	return &Renderer{width: width, height: height, font: font}
}

// NeedBreakdown draws the need and no-need shares of one industry.
func (r *Renderer) NeedBreakdown(summary models.IndustrySummary) (image.Image, error) {
	graph := r.newBarChart(fmt.Sprintf("%s - AI need", summary.Industry))
	graph.BarWidth = r.width / 6
	graph.BarSpacing = r.width / 6
	graph.Bars = []chart.Value{
		bar("Need", summary.MeanNeed, NeedColor),
		bar("No need", summary.MeanNoNeed, NoNeedColor),
	}
	return r.render(graph)
}

// IndustryComparison draws one mean need bar per industry, in the given order.
func (r *Renderer) IndustryComparison(summaries []models.IndustrySummary) (image.Image, error) {
	if len(summaries) == 0 {
		return nil, ErrNoSummaries
	}

	graph := r.newBarChart("AI need by industry")
	slot := r.width / (len(summaries) + 1)
	graph.BarWidth = slot * 3 / 5
	graph.BarSpacing = slot * 2 / 5
	graph.XAxis = chart.Style{TextRotationDegrees: 45}
	graph.Background.Padding.Bottom = 80

	for _, s := range summaries {
		graph.Bars = append(graph.Bars, bar(s.Industry, s.MeanNeed, ComparisonColor))
	}
	return r.render(graph)
}

func (r *Renderer) newBarChart(title string) chart.BarChart {
	return chart.BarChart{
		Title:  title,
		Width:  r.width,
		Height: r.height,
		Font:   r.font,
		Background: chart.Style{
			Padding: chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 24},
		},
		YAxis: chart.YAxis{
			Name:  "Share (%)",
			Range: &chart.ContinuousRange{Min: 0, Max: 100},
		},
	}
}

func (r *Renderer) render(graph chart.BarChart) (image.Image, error) {
	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart %q: %w", graph.Title, err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode chart %q: %w", graph.Title, err)
	}
	return img, nil
}

// bar draws missing values as empty bars.
func bar(label string, value float64, color drawing.Color) chart.Value {
	if math.IsNaN(value) {
		value = 0
	}
	return chart.Value{
		Label: label,
		Value: value,
		Style: chart.Style{
			FillColor:   color,
			StrokeColor: color,
			StrokeWidth: 1,
		},
	}
}
