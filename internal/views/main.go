package views

import (
	"image"

	"ai-need-analyzer/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Title is shown in the window title bar and as the page heading.
const Title = "AI / Digital Technology Need by Industry"

// MainView is the single application window
type MainView struct {
	// UI Components
	app           fyne.App
	window        fyne.Window
	mainContainer *fyne.Container
	toolbar       *components.Toolbar
	resultPanel   *components.ResultPanel
	statusBar     *components.StatusBar

	chartWindows []fyne.Window
}

// NewMainView creates a new main view inside window
func NewMainView(app fyne.App, window fyne.Window) *MainView {
	view := &MainView{
		app:    app,
		window: window,
	}

	view.initializeComponents()
	view.buildLayout()

	return view
}

// initializeComponents creates all UI components
func (mv *MainView) initializeComponents() {
	mv.toolbar = components.NewToolbar()
	mv.resultPanel = components.NewResultPanel()
	mv.statusBar = components.NewStatusBar()
}

// buildLayout constructs the main layout
func (mv *MainView) buildLayout() {
	heading := canvas.NewText(Title, theme.Color(theme.ColorNamePrimary))
	heading.TextSize = 18
	heading.TextStyle = fyne.TextStyle{Bold: true}
	heading.Alignment = fyne.TextAlignCenter
	description := widget.NewLabelWithStyle(
		"Select an industry and press the analyze button.",
		fyne.TextAlignCenter, fyne.TextStyle{},
	)

	topArea := container.NewVBox(
		heading,
		description,
		mv.toolbar.GetContainer(),
		widget.NewSeparator(),
	)

	mv.mainContainer = container.NewBorder(
		topArea,
		mv.statusBar.GetContainer(),
		nil,
		nil,
		mv.resultPanel.GetContainer(),
	)

	mv.window.SetContent(container.NewPadded(mv.mainContainer))
}

// Event handler setters - called by controller

// SetAnalyzeHandler sets the handler for the analyze button
func (mv *MainView) SetAnalyzeHandler(handler func()) {
	mv.toolbar.SetAnalyzeHandler(handler)
}

// SetCompareHandler sets the handler for the compare button
func (mv *MainView) SetCompareHandler(handler func()) {
	mv.toolbar.SetCompareHandler(handler)
}

// UI update methods - called by controller

// SetIndustries fills the industry selector
func (mv *MainView) SetIndustries(industries []string) {
	mv.toolbar.SetIndustries(industries)
}

// SelectedIndustry returns the selected industry, or "" when none
func (mv *MainView) SelectedIndustry() string {
	return mv.toolbar.SelectedIndustry()
}

// SetResultText replaces the result area content
func (mv *MainView) SetResultText(text string) {
	mv.resultPanel.SetText(text)
}

// ResultText returns the result area content
func (mv *MainView) ResultText() string {
	return mv.resultPanel.GetText()
}

// UpdateStatus updates the status bar message
func (mv *MainView) UpdateStatus(status string) {
	mv.statusBar.SetStatus(status)
}

// SetSourceInfo describes the loaded survey in the status bar
func (mv *MainView) SetSourceInfo(path string, rows, industries int) {
	mv.statusBar.SetSourceInfo(path, rows, industries)
}

// ShowError displays an error dialog
func (mv *MainView) ShowError(title string, err error) {
	d := dialog.NewError(err, mv.window)
	d.Show()
}

// ShowInfo displays an information dialog
func (mv *MainView) ShowInfo(title, message string) {
	dialog.ShowInformation(title, message, mv.window)
}

// ShowWarning displays a non-fatal warning dialog
func (mv *MainView) ShowWarning(title, message string) {
	content := container.NewHBox(
		widget.NewIcon(theme.WarningIcon()),
		widget.NewLabel(message),
	)
	dialog.ShowCustom(title, "OK", content, mv.window)
}

// ShowConfirm displays a confirmation dialog
func (mv *MainView) ShowConfirm(title, message string, callback func(bool)) {
	dialog.ShowConfirm(title, message, callback, mv.window)
}

// ShowChart opens img in a separate window
func (mv *MainView) ShowChart(title string, img image.Image) {
	chartWindow := mv.app.NewWindow(title)

	chartImage := canvas.NewImageFromImage(img)
	chartImage.FillMode = canvas.ImageFillContain
	bounds := img.Bounds()
	chartImage.SetMinSize(fyne.NewSize(float32(bounds.Dx()), float32(bounds.Dy())))

	chartWindow.SetContent(chartImage)
	chartWindow.SetOnClosed(func() {
		mv.forgetChartWindow(chartWindow)
	})
	mv.chartWindows = append(mv.chartWindows, chartWindow)
	chartWindow.Show()
}

// ChartWindowCount returns the number of open chart windows
func (mv *MainView) ChartWindowCount() int {
	return len(mv.chartWindows)
}

// CloseCharts closes every open chart window
func (mv *MainView) CloseCharts() {
	for _, w := range append([]fyne.Window(nil), mv.chartWindows...) {
		w.Close()
	}
	mv.chartWindows = nil
}

func (mv *MainView) forgetChartWindow(target fyne.Window) {
	for i, w := range mv.chartWindows {
		if w == target {
			mv.chartWindows = append(mv.chartWindows[:i], mv.chartWindows[i+1:]...)
			return
		}
	}
}

// GetToolbar returns the toolbar component
func (mv *MainView) GetToolbar() *components.Toolbar {
	return mv.toolbar
}

// GetWindow returns the main window
func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}

// Show displays the view
func (mv *MainView) Show() {
	mv.window.Show()
}
