package main

import (
	"context"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/jm-downloader/internal/config"
	"github.com/ytget/jm-downloader/internal/download"
	"github.com/ytget/jm-downloader/internal/logging"
	"github.com/ytget/jm-downloader/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID = "com.ytget.jm-downloader"
)

func main() {
	logger := logging.New(logging.DefaultConfig())
	logger.Info().Str("version", version).Msg("JM Downloader starting")

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(ui.TextAppTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))
	myWindow.CenterOnScreen()

	store, settings, err := config.Open(logger)
	if err != nil {
		logger.Error().Err(err).Msg("configuration unavailable, exiting")
		ui.ShowFatal(myWindow, err, myApp.Quit)
		myWindow.ShowAndRun()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	downloadSvc := download.NewService(ctx, download.NewJMComic(logger), fyne.Do, logger)
	root := ui.NewRootUI(myWindow, store, settings, downloadSvc, logger)

	err = store.Watch(ctx, func(s *config.Settings) {
		fyne.Do(func() { root.ApplySettings(s) })
	})
	if err != nil {
		logger.Warn().Err(err).Msg("option file changes will not be picked up")
	}

	myWindow.ShowAndRun()
	logger.Info().Msg("JM Downloader closed")
}
