package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// FatalMessage is the text shown when the configuration cannot be loaded.
func FatalMessage(err error) string {
	return fmt.Sprintf(MsgConfigFailed, err)
}

// ShowFatal replaces the window content with a blocking error dialog. Closing
// the dialog or the window calls quit. The caller runs the window and exits
// with a failure status afterwards.
func ShowFatal(window fyne.Window, err error, quit func()) dialog.Dialog {
	window.SetTitle(TextAppTitle)
	window.SetContent(widget.NewLabel(""))
	window.SetCloseIntercept(quit)

	d := dialog.NewInformation(TitleError, FatalMessage(err), window)
	d.SetOnClosed(quit)
	d.Show()
	return d
}
