package ui

// Package ui contains the Fyne desktop window: the save path row with its folder
// picker, the album ID row with the download button, the modal progress dialog
// and the result dialogs. Downloads are driven through download.Orchestrator.
