package controllers

import (
	"errors"
	"fmt"
	"image"

	"ai-need-analyzer/internal/analysis"
	"ai-need-analyzer/internal/logger"
	"ai-need-analyzer/internal/models"
)

// View is the part of the main window the controller drives
type View interface {
	SetIndustries(industries []string)
	SelectedIndustry() string
	SetResultText(text string)
	UpdateStatus(status string)
	SetSourceInfo(path string, rows, industries int)
	ShowWarning(title, message string)
	ShowInfo(title, message string)
	ShowError(title string, err error)
	ShowConfirm(title, message string, callback func(bool))
	ShowChart(title string, img image.Image)
	SetAnalyzeHandler(handler func())
	SetCompareHandler(handler func())
}

// ChartRenderer turns summaries into chart images
type ChartRenderer interface {
	NeedBreakdown(summary models.IndustrySummary) (image.Image, error)
	IndustryComparison(summaries []models.IndustrySummary) (image.Image, error)
}

// MainController connects the main view to the survey aggregates
type MainController struct {
	table    *models.SurveyTable
	renderer ChartRenderer
	logger   logger.Logger

	mainView View
}

// NewMainController creates a new main controller
func NewMainController(table *models.SurveyTable, renderer ChartRenderer, log logger.Logger) *MainController {
	return &MainController{
		table:    table,
		renderer: renderer,
		logger:   log,
	}
}

// SetMainView associates the main view with this controller and fills it
func (mc *MainController) SetMainView(view View) {
	mc.mainView = view

	industries := mc.table.Industries()
	view.SetIndustries(industries)
	view.SetSourceInfo(mc.table.Source(), mc.table.Len(), len(industries))
	view.SetAnalyzeHandler(mc.AnalyzeSelected)
	view.SetCompareHandler(mc.CompareAll)
	view.UpdateStatus("Ready")
}

// AnalyzeSelected summarizes the selected industry and offers its chart
func (mc *MainController) AnalyzeSelected() {
	industry := mc.mainView.SelectedIndustry()
	if industry == "" {
		mc.mainView.ShowWarning("Notice", "Please select an industry first.")
		return
	}

	summary, err := analysis.AnalyzeOne(mc.table, industry)
	if err != nil {
		mc.handleNoData(err, fmt.Sprintf("No data for %s.", industry))
		return
	}

	mc.logger.Debug("MainController", "industry analyzed", map[string]interface{}{
		"industry":     summary.Industry,
		"rows":         summary.Rows,
		"mean_need":    summary.MeanNeed,
		"mean_no_need": summary.MeanNoNeed,
		"level":        summary.Level.String(),
	})

	mc.mainView.SetResultText(FormatSummary(summary))
	mc.mainView.UpdateStatus(fmt.Sprintf("Analyzed %s", industry))

	mc.mainView.ShowConfirm("Show chart", "Show this industry as a chart?", func(confirmed bool) {
		if !confirmed {
			return
		}
		img, err := mc.renderer.NeedBreakdown(summary)
		if err != nil {
			mc.handleError("Chart failed", err)
			return
		}
		mc.mainView.ShowChart(fmt.Sprintf("%s - AI need", summary.Industry), img)
	})
}

// CompareAll summarizes every allow-listed industry and shows the comparison chart
func (mc *MainController) CompareAll() {
	summaries, err := analysis.CompareAll(mc.table)
	if err != nil {
		mc.handleNoData(err, "No data to compare.")
		return
	}

	mc.logger.Debug("MainController", "industries compared", map[string]interface{}{
		"industries": len(summaries),
	})

	mc.mainView.SetResultText(FormatComparison(summaries))
	mc.mainView.UpdateStatus(fmt.Sprintf("Compared %d industries", len(summaries)))

	img, err := mc.renderer.IndustryComparison(summaries)
	if err != nil {
		mc.handleError("Chart failed", err)
		return
	}
	mc.mainView.ShowChart("AI need by industry", img)
}

// handleNoData reports a missing-data outcome as information and anything
// else as an error.
func (mc *MainController) handleNoData(err error, message string) {
	if errors.Is(err, analysis.ErrNoData) {
		mc.logger.Info("MainController", "no matching rows", map[string]interface{}{
			"reason": err.Error(),
		})
		mc.mainView.ShowInfo("Information", message)
		return
	}
	mc.handleError("Analysis failed", err)
}

// handleError handles application errors with consistent UI feedback
func (mc *MainController) handleError(title string, err error) {
	mc.logger.Error("MainController", err, map[string]interface{}{
		"title": title,
	})
	mc.mainView.ShowError(title, err)
}

// Shutdown performs cleanup when the application closes
func (mc *MainController) Shutdown() {
	mc.logger.Info("MainController", "controller stopped", nil)
}
