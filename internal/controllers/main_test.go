package controllers

import (
	"errors"
	"image"
	"testing"

	"ai-need-analyzer/internal/logger"
	"ai-need-analyzer/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dialogCall struct {
	kind    string
	title   string
	message string
}

type fakeView struct {
	industries []string
	selected   string
	result     string
	status     string
	confirm    bool
	dialogs    []dialogCall
	charts     []string

	analyze func()
	compare func()
}

func (v *fakeView) SetIndustries(industries []string) {
	v.industries = industries
	if len(industries) > 0 {
		v.selected = industries[0]
	}
}
func (v *fakeView) SelectedIndustry() string { return v.selected }
func (v *fakeView) SetResultText(text string) { v.result = text }
func (v *fakeView) UpdateStatus(status string) { v.status = status }
func (v *fakeView) SetSourceInfo(path string, rows, industries int) {}
func (v *fakeView) ShowWarning(title, message string) {
	v.dialogs = append(v.dialogs, dialogCall{"warning", title, message})
}
func (v *fakeView) ShowInfo(title, message string) {
	v.dialogs = append(v.dialogs, dialogCall{"info", title, message})
}
func (v *fakeView) ShowError(title string, err error) {
	v.dialogs = append(v.dialogs, dialogCall{"error", title, err.Error()})
}
func (v *fakeView) ShowConfirm(title, message string, callback func(bool)) {
	v.dialogs = append(v.dialogs, dialogCall{"confirm", title, message})
	callback(v.confirm)
}
func (v *fakeView) ShowChart(title string, img image.Image) { v.charts = append(v.charts, title) }
func (v *fakeView) SetAnalyzeHandler(handler func()) { v.analyze = handler }
func (v *fakeView) SetCompareHandler(handler func()) { v.compare = handler }

type fakeRenderer struct {
	err         error
	breakdowns  []models.IndustrySummary
	comparisons [][]models.IndustrySummary
}

func (r *fakeRenderer) NeedBreakdown(summary models.IndustrySummary) (image.Image, error) {
	r.breakdowns = append(r.breakdowns, summary)
	if r.err != nil {
		return nil, r.err
	}
	return image.NewRGBA(image.Rect(0, 0, 1, 1)), nil
}

func (r *fakeRenderer) IndustryComparison(summaries []models.IndustrySummary) (image.Image, error) {
	r.comparisons = append(r.comparisons, summaries)
	if r.err != nil {
		return nil, r.err
	}
	return image.NewRGBA(image.Rect(0, 0, 1, 1)), nil
}

func row(industry string, need, noNeed float64) models.SurveyRow {
	return models.NewSurveyRow(industry, need/2, need/2, noNeed/2, noNeed/2)
}

func sampleTable() *models.SurveyTable {
	return models.NewSurveyTable("survey.xlsx", []models.SurveyRow{
		row(models.IndustryManufacturing, 40, 60),
		row(models.IndustryConstruction, 10, 90),
		row(models.IndustryICT, 20, 80),
		row(models.IndustryICT, 30, 70),
		row("농업", 99, 1),
	})
}

func newController(t *testing.T, table *models.SurveyTable) (*MainController, *fakeView, *fakeRenderer) {
	t.Helper()
	renderer := &fakeRenderer{}
	view := &fakeView{}
	mc := NewMainController(table, renderer, logger.NewNop())
	mc.SetMainView(view)
	return mc, view, renderer
}

func TestSetMainViewPopulatesIndustries(t *testing.T) {
	_, view, _ := newController(t, sampleTable())

	assert.Equal(t, []string{models.IndustryConstruction, models.IndustryICT, models.IndustryManufacturing}, view.industries)
	assert.Equal(t, models.IndustryConstruction, view.selected)
	require.NotNil(t, view.analyze)
	require.NotNil(t, view.compare)
}

func TestAnalyzeSelectedWithoutSelection(t *testing.T) {
	mc, view, renderer := newController(t, sampleTable())
	view.selected = ""

	mc.AnalyzeSelected()

	require.Len(t, view.dialogs, 1)
	assert.Equal(t, "warning", view.dialogs[0].kind)
	assert.Empty(t, view.result)
	assert.Empty(t, renderer.breakdowns)
}

func TestAnalyzeSelectedUnknownIndustry(t *testing.T) {
	mc, view, _ := newController(t, sampleTable())
	view.selected = "광업"

	mc.AnalyzeSelected()

	require.Len(t, view.dialogs, 1)
	assert.Equal(t, "info", view.dialogs[0].kind)
	assert.Equal(t, "No data for 광업.", view.dialogs[0].message)
	assert.Empty(t, view.charts)
}

func TestAnalyzeSelectedShowsChartWhenConfirmed(t *testing.T) {
	_, view, renderer := newController(t, sampleTable())
	view.selected = models.IndustryICT
	view.confirm = true

	view.analyze()

	assert.Contains(t, view.result, "[Selected industry] "+models.IndustryICT)
	assert.Contains(t, view.result, "25.0%")
	require.Len(t, renderer.breakdowns, 1)
	assert.InDelta(t, 25.0, renderer.breakdowns[0].MeanNeed, 1e-9)
	assert.Equal(t, []string{models.IndustryICT + " - AI need"}, view.charts)
}

func TestAnalyzeSelectedDeclinedChart(t *testing.T) {
	mc, view, renderer := newController(t, sampleTable())
	view.confirm = false

	mc.AnalyzeSelected()

	assert.NotEmpty(t, view.result)
	assert.Empty(t, renderer.breakdowns)
	assert.Empty(t, view.charts)
}

func TestAnalyzeSelectedChartFailure(t *testing.T) {
	mc, view, renderer := newController(t, sampleTable())
	view.confirm = true
	renderer.err = errors.New("render failed")

	mc.AnalyzeSelected()

	assert.NotEmpty(t, view.result)
	last := view.dialogs[len(view.dialogs)-1]
	assert.Equal(t, "error", last.kind)
	assert.Empty(t, view.charts)
}

func TestCompareAllOrdersAndCharts(t *testing.T) {
	mc, view, renderer := newController(t, sampleTable())

	mc.CompareAll()

	require.Len(t, renderer.comparisons, 1)
	got := renderer.comparisons[0]
	require.Len(t, got, 3)
	assert.Equal(t, models.IndustryManufacturing, got[0].Industry)
	assert.Equal(t, models.IndustryICT, got[1].Industry)
	assert.Equal(t, models.IndustryConstruction, got[2].Industry)
	assert.Equal(t, []string{"AI need by industry"}, view.charts)
	assert.NotContains(t, view.result, "농업")
	assert.Empty(t, view.dialogs)
}

func TestCompareAllWithoutData(t *testing.T) {
	mc, view, renderer := newController(t, models.NewSurveyTable("", []models.SurveyRow{row("농업", 50, 50)}))

	mc.CompareAll()

	require.Len(t, view.dialogs, 1)
	assert.Equal(t, "info", view.dialogs[0].kind)
	assert.Equal(t, "No data to compare.", view.dialogs[0].message)
	assert.Empty(t, renderer.comparisons)
	assert.Empty(t, view.charts)
}

func TestRepeatedAnalysisIsStable(t *testing.T) {
	mc, view, _ := newController(t, sampleTable())
	view.selected = models.IndustryManufacturing

	mc.AnalyzeSelected()
	first := view.result
	mc.AnalyzeSelected()

	assert.Equal(t, first, view.result)
}
