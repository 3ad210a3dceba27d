package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// UsageHint is shown before the first analysis.
const UsageHint = "1) Select an industry and click [Analyze selected industry]\n" +
	"2) Check the comparison chart for all industries too!\n"

// ResultPanel shows formatted analysis output in a scrollable area
type ResultPanel struct {
	container *fyne.Container
	title     *widget.Label
	text      *widget.Label
	scroll    *container.Scroll
}

// NewResultPanel creates a new result panel component
func NewResultPanel() *ResultPanel {
	rp := &ResultPanel{}
	rp.createComponents()
	rp.buildLayout()
	return rp
}

func (rp *ResultPanel) createComponents() {
	rp.title = widget.NewLabelWithStyle("Analysis result:", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	rp.text = widget.NewLabel(UsageHint)
	rp.text.Wrapping = fyne.TextWrapWord
	rp.scroll = container.NewVScroll(rp.text)
	rp.scroll.SetMinSize(fyne.NewSize(560, 200))
}

func (rp *ResultPanel) buildLayout() {
	rp.container = container.NewBorder(rp.title, nil, nil, nil, rp.scroll)
}

// SetText replaces the displayed result and scrolls back to the top
func (rp *ResultPanel) SetText(text string) {
	rp.text.SetText(text)
	rp.scroll.ScrollToTop()
}

// GetText returns the displayed result
func (rp *ResultPanel) GetText() string {
	return rp.text.Text
}

// Reset restores the usage hint
func (rp *ResultPanel) Reset() {
	rp.SetText(UsageHint)
}

// GetContainer returns the result panel container
func (rp *ResultPanel) GetContainer() *fyne.Container {
	return rp.container
}
