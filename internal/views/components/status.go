package components

import (
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar displays application status and information about the loaded survey
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	sourceInfo  *widget.Label
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

// createComponents initializes status bar components
func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabel("Ready")
	sb.sourceInfo = widget.NewLabel("No survey loaded")
}

// buildLayout constructs the status bar layout
func (sb *StatusBar) buildLayout() {
	sb.container = container.NewHBox(
		sb.statusLabel,
		widget.NewSeparator(),
		sb.sourceInfo,
	)
}

// SetStatus updates the main status message
func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

// GetStatus returns the current status message
func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// SetSourceInfo shows which file was loaded and how many rows it held
func (sb *StatusBar) SetSourceInfo(path string, rows, industries int) {
	sb.sourceInfo.SetText(fmt.Sprintf("%s: %d rows, %d industries", filepath.Base(path), rows, industries))
}

// GetSourceInfo returns the survey description
func (sb *StatusBar) GetSourceInfo() string {
	return sb.sourceInfo.Text
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
