package views

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

// ShowFatalError shows err in a small standalone window and quits the
// application once the dialog is dismissed. It blocks until then.
func ShowFatalError(app fyne.App, title string, err error) {
	window := app.NewWindow(title)
	window.Resize(fyne.NewSize(480, 200))
	window.CenterOnScreen()

	d := dialog.NewError(err, window)
	d.SetOnClosed(app.Quit)

	window.Show()
	d.Show()
	app.Run()
}
