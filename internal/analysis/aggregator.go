// Package analysis computes per-industry need shares from a survey table.
// Nothing here depends on the UI.
package analysis

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"ai-need-analyzer/internal/models"

	"gonum.org/v1/gonum/stat"
)

// Level thresholds on the mean need share, in percent.
const (
	VeryHighThreshold     = 25.0
	AboveAverageThreshold = 15.0
)

// ErrNoData is returned when no rows match the requested industries.
var ErrNoData = errors.New("no data")

// Classify maps a mean need share onto its qualitative band.
func Classify(meanNeed float64) models.NeedLevel {
	switch {
	case meanNeed >= VeryHighThreshold:
		return models.LevelVeryHigh
	case meanNeed >= AboveAverageThreshold:
		return models.LevelAboveAverage
	default:
		return models.LevelRelativelyLow
	}
}

// AnalyzeOne averages the need and no-need totals of every row for industry.
func AnalyzeOne(table *models.SurveyTable, industry string) (models.IndustrySummary, error) {
	rows := table.RowsFor(industry)
	if len(rows) == 0 {
		return models.IndustrySummary{}, fmt.Errorf("%w for %s", ErrNoData, industry)
	}
	return summarize(industry, rows), nil
}

// CompareAll summarizes every allow-listed industry, highest mean need first.
// Industries with equal means keep the order in which they first appear.
func CompareAll(table *models.SurveyTable) ([]models.IndustrySummary, error) {
	groups := make(map[string][]models.SurveyRow)
	var order []string
	for _, row := range table.Rows() {
		if !models.TargetIndustries.Contains(row.Industry) {
			continue
		}
		if _, ok := groups[row.Industry]; !ok {
			order = append(order, row.Industry)
		}
		groups[row.Industry] = append(groups[row.Industry], row)
	}
	if len(order) == 0 {
		return nil, ErrNoData
	}

	summaries := make([]models.IndustrySummary, 0, len(order))
	for _, industry := range order {
		summaries = append(summaries, summarize(industry, groups[industry]))
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return descending(summaries[i].MeanNeed, summaries[j].MeanNeed)
	})
	return summaries, nil
}

func summarize(industry string, rows []models.SurveyRow) models.IndustrySummary {
	need := make([]float64, 0, len(rows))
	noNeed := make([]float64, 0, len(rows))
	for _, row := range rows {
		need = append(need, row.NeedTotal)
		noNeed = append(noNeed, row.NoNeedTotal)
	}

	meanNeed := mean(need)
	return models.IndustrySummary{
		Industry:   industry,
		MeanNeed:   meanNeed,
		MeanNoNeed: mean(noNeed),
		Rows:       len(rows),
		Level:      Classify(meanNeed),
	}
}

// mean skips NaN values and returns NaN when nothing is left.
func mean(values []float64) float64 {
	present := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			present = append(present, v)
		}
	}
	if len(present) == 0 {
		return math.NaN()
	}
	return stat.Mean(present, nil)
}

// descending orders a before b when a is larger. NaN sorts last.
func descending(a, b float64) bool {
	if math.IsNaN(a) {
		return false
	}
	if math.IsNaN(b) {
		return true
	}
	return a > b
}
