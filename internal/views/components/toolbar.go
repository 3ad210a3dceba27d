package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Toolbar holds the industry selector and the two analysis actions
type Toolbar struct {
	container      *fyne.Container
	industrySelect *widget.Select
	analyzeButton  *widget.Button
	compareButton  *widget.Button

	// Event handlers
	analyzeHandler func()
	compareHandler func()
}

// NewToolbar creates a new toolbar component
func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.createComponents()
	toolbar.buildLayout()
	toolbar.setupEventHandlers()
	return toolbar
}

// createComponents initializes all toolbar components
func (t *Toolbar) createComponents() {
	t.industrySelect = widget.NewSelect(nil, nil)
	t.industrySelect.PlaceHolder = "Select an industry"

	t.analyzeButton = widget.NewButton("Analyze selected industry", nil)
	t.analyzeButton.Importance = widget.HighImportance

	t.compareButton = widget.NewButton("Compare all industries", nil)
	t.compareButton.Importance = widget.SuccessImportance
}

// buildLayout constructs the toolbar layout
func (t *Toolbar) buildLayout() {
	selectRow := container.NewBorder(
		nil, nil,
		widget.NewLabelWithStyle("Industry:", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		t.analyzeButton,
		t.industrySelect,
	)

	t.container = container.NewVBox(
		selectRow,
		container.NewCenter(t.compareButton),
	)
}

// setupEventHandlers connects button events
func (t *Toolbar) setupEventHandlers() {
	t.analyzeButton.OnTapped = func() {
		if t.analyzeHandler != nil {
			t.analyzeHandler()
		}
	}

	t.compareButton.OnTapped = func() {
		if t.compareHandler != nil {
			t.compareHandler()
		}
	}
}

// SetAnalyzeHandler sets the analyze selected industry handler
func (t *Toolbar) SetAnalyzeHandler(handler func()) {
	t.analyzeHandler = handler
}

// SetCompareHandler sets the compare all industries handler
func (t *Toolbar) SetCompareHandler(handler func()) {
	t.compareHandler = handler
}

// SetIndustries replaces the selectable industries and selects the first one
func (t *Toolbar) SetIndustries(industries []string) {
	t.industrySelect.SetOptions(industries)
	if len(industries) > 0 {
		t.industrySelect.SetSelected(industries[0])
	} else {
		t.industrySelect.ClearSelected()
	}
}

// SelectedIndustry returns the current selection, or "" when none
func (t *Toolbar) SelectedIndustry() string {
	return t.industrySelect.Selected
}

// IndustrySelect returns the selector widget
func (t *Toolbar) IndustrySelect() *widget.Select {
	return t.industrySelect
}

// AnalyzeButton returns the analyze button
func (t *Toolbar) AnalyzeButton() *widget.Button {
	return t.analyzeButton
}

// CompareButton returns the compare button
func (t *Toolbar) CompareButton() *widget.Button {
	return t.compareButton
}

// GetContainer returns the toolbar container
func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}
