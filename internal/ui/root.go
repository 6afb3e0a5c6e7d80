package ui

import (
	"errors"
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/ytget/jm-downloader/internal/config"
	"github.com/ytget/jm-downloader/internal/download"
	"github.com/ytget/jm-downloader/internal/model"
	"github.com/ytget/jm-downloader/internal/platform"
)

// SettingsStore persists the option after the save path changes.
type SettingsStore interface {
	Save(settings *config.Settings) error
	Path() string
}

// ProgressHandle is the open progress indicator of a running download.
type ProgressHandle interface {
	Hide()
}

// RootUI represents the main UI structure
type RootUI struct {
	window    fyne.Window
	store     SettingsStore
	settings  *config.Settings
	downloads download.Orchestrator
	log       zerolog.Logger

	pathEntry   *widget.Entry
	browseBtn   *widget.Button
	albumEntry  *widget.Entry
	downloadBtn *widget.Button

	progress ProgressHandle
	active   *model.DownloadTask

	// Dialog hooks. Tests replace them to observe what the user would see.
	pickFolder   func(start string, onPicked func(path string))
	openProgress func() ProgressHandle
	showError    func(message string)
	showInfo     func(title, message string)
	showDone     func(id model.AlbumID, savePath string)
	openFolder   func(path string) error
}

// NewRootUI creates and initializes the main UI. settings is the live option
// object; the UI mutates it on the UI goroutine only.
func NewRootUI(window fyne.Window, store SettingsStore, settings *config.Settings, downloads download.Orchestrator, logger zerolog.Logger) *RootUI {
	ui := &RootUI{
		window:    window,
		store:     store,
		settings:  settings,
		downloads: downloads,
		log:       logger.With().Str("component", "ui").Logger(),
	}

	ui.pickFolder = ui.showFolderPicker
	ui.openProgress = ui.showProgressDialog
	ui.showError = ui.showErrorDialog
	ui.showInfo = ui.showInfoDialog
	ui.showDone = ui.showDoneDialog
	ui.openFolder = platform.OpenFolderInManager

	window.SetTitle(TextAppTitle)
	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.pathEntry = widget.NewEntry()
	ui.pathEntry.SetText(ui.settings.SavePath())
	ui.pathEntry.Disable()

	ui.browseBtn = widget.NewButton(TextBrowse, ui.onBrowseClick)
	pathRow := container.NewBorder(nil, nil, nil, ui.browseBtn, ui.pathEntry)

	ui.albumEntry = widget.NewEntry()
	ui.albumEntry.SetPlaceHolder(TextAlbumIDHint)
	// Trigger download when user presses Enter in the album field
	ui.albumEntry.OnSubmitted = func(string) {
		ui.onDownloadClick()
	}

	ui.downloadBtn = widget.NewButton(TextStartDownload, ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance

	albumRow := container.NewBorder(nil, nil,
		widget.NewLabel(TextAlbumIDLabel),
		ui.downloadBtn,
		ui.albumEntry,
	)

	content := container.NewVBox(
		widget.NewCard("", TextSavePathGroup, pathRow),
		widget.NewCard("", TextDownloadGroup, albumRow),
	)

	ui.window.SetContent(container.NewPadded(content))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	fileMenu := fyne.NewMenu(TextFileMenu,
		fyne.NewMenuItem(TextOpenSaveFolder, ui.onOpenSaveFolder),
		fyne.NewMenuItem(TextOpenConfigDir, ui.onOpenConfigFolder),
	)
	ui.window.SetMainMenu(fyne.NewMainMenu(fileMenu))
}

// SavePath returns the save path currently shown.
func (ui *RootUI) SavePath() string {
	return ui.pathEntry.Text
}

// ApplySettings replaces the in-memory option with one re-read from disk and
// refreshes the path field. Must run on the UI goroutine.
func (ui *RootUI) ApplySettings(settings *config.Settings) {
	if settings == nil {
		return
	}
	if settings.SavePath() != ui.settings.SavePath() {
		ui.log.Info().Str("save_path", settings.SavePath()).Msg("option file edited outside the app")
	}
	ui.settings = settings
	ui.pathEntry.SetText(settings.SavePath())
}

// onBrowseClick opens the folder picker at the current save path
func (ui *RootUI) onBrowseClick() {
	ui.pickFolder(ui.pathEntry.Text, ui.onSavePathPicked)
}

// onSavePathPicked stores a newly chosen save path. A failed save is reported
// but the new path stays in effect for this session.
func (ui *RootUI) onSavePathPicked(path string) {
	if path == "" {
		return
	}

	ui.pathEntry.SetText(path)
	ui.settings.SetSavePath(path)

	if err := ui.store.Save(ui.settings); err != nil {
		ui.showError(fmt.Sprintf(MsgSaveFailed, err))
		return
	}
	ui.log.Info().Str("save_path", path).Msg("save path changed")
}

// onDownloadClick handles the download button click
func (ui *RootUI) onDownloadClick() {
	if ui.downloads.Busy() {
		ui.showInfo(TitleBusy, MsgBusy)
		return
	}
	id, err := ui.downloads.Validate(ui.albumEntry.Text)
	if err != nil {
		ui.showError(MsgInvalidAlbumID)
		return
	}

	task, err := ui.downloads.Start(id, ui.settings, download.Callbacks{
		OnProgressStart: ui.onProgressStart,
		OnSuccess:       ui.onDownloadSuccess,
		OnError:         ui.onDownloadError,
	})
	switch {
	case errors.Is(err, download.ErrBusy):
		ui.showInfo(TitleBusy, MsgBusy)
	case err != nil:
		ui.showError(err.Error())
	default:
		ui.active = task
	}
}

func (ui *RootUI) onProgressStart() {
	ui.downloadBtn.Disable()
	ui.progress = ui.openProgress()
}

func (ui *RootUI) finishProgress() *model.DownloadTask {
	task := ui.active
	ui.active = nil
	if ui.progress != nil {
		ui.progress.Hide()
		ui.progress = nil
	}
	ui.downloadBtn.Enable()
	return task
}

// onDownloadSuccess reports the folder the album was written to, which is the
// save path captured when the download started.
func (ui *RootUI) onDownloadSuccess(id model.AlbumID) {
	savePath := ui.SavePath()
	if task := ui.finishProgress(); task != nil {
		savePath = task.SavePath
	}
	ui.showDone(id, savePath)
}

func (ui *RootUI) onDownloadError(message string) {
	ui.finishProgress()
	ui.showError(fmt.Sprintf(MsgDownloadFailed, message))
}

func (ui *RootUI) onOpenSaveFolder() {
	ui.revealFolder(ui.SavePath())
}

func (ui *RootUI) onOpenConfigFolder() {
	ui.revealFolder(filepath.Dir(ui.store.Path()))
}

func (ui *RootUI) revealFolder(path string) {
	if err := ui.openFolder(path); err != nil {
		ui.log.Warn().Err(err).Str("path", path).Msg("open folder failed")
		ui.showError(fmt.Sprintf(MsgOpenFailed, err))
	}
}

// showFolderPicker opens the native-looking folder dialog seeded at start
func (ui *RootUI) showFolderPicker(start string, onPicked func(path string)) {
	d := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			ui.showError(err.Error())
			return
		}
		if uri == nil {
			return
		}
		onPicked(uri.Path())
	}, ui.window)

	if start != "" {
		if location, err := storage.ListerForURI(storage.NewFileURI(start)); err == nil {
			d.SetLocation(location)
		}
	}
	d.Show()
}

func (ui *RootUI) showProgressDialog() ProgressHandle {
	bar := widget.NewProgressBarInfinite()
	content := container.NewVBox(widget.NewLabel(MsgProgress), bar)
	d := dialog.NewCustomWithoutButtons(TitleProgress, content, ui.window)
	d.Resize(fyne.NewSize(ProgressMinWidth, d.MinSize().Height))
	d.Show()
	return d
}

func (ui *RootUI) showErrorDialog(message string) {
	dialog.ShowInformation(TitleError, message, ui.window)
}

func (ui *RootUI) showInfoDialog(title, message string) {
	dialog.ShowInformation(title, message, ui.window)
}

func (ui *RootUI) showDoneDialog(id model.AlbumID, savePath string) {
	dialog.ShowCustomConfirm(TitleDone, TextOpenFolder, TextClose,
		widget.NewLabel(fmt.Sprintf(MsgDone, id, savePath)),
		func(open bool) {
			if open {
				ui.revealFolder(savePath)
			}
		}, ui.window)
}
