package download

import (
	"context"

	"github.com/ytget/jm-downloader/internal/config"
	"github.com/ytget/jm-downloader/internal/model"
)

// AlbumDownloader fetches a whole album using the given option. It blocks until
// the album is on disk or the download failed.
type AlbumDownloader interface {
	DownloadAlbum(ctx context.Context, id model.AlbumID, settings *config.Settings) error
}

// AlbumDownloaderFunc adapts a plain function to AlbumDownloader.
type AlbumDownloaderFunc func(ctx context.Context, id model.AlbumID, settings *config.Settings) error

// DownloadAlbum calls f.
func (f AlbumDownloaderFunc) DownloadAlbum(ctx context.Context, id model.AlbumID, settings *config.Settings) error {
	return f(ctx, id, settings)
}

// Poster schedules fn on the UI goroutine. fyne.Do satisfies it.
type Poster func(fn func())

// Callbacks are the hooks Start reports through. OnProgressStart runs
// synchronously inside Start; exactly one of OnSuccess and OnError runs later
// via the Poster.
type Callbacks struct {
	OnProgressStart func()
	OnSuccess       func(id model.AlbumID)
	OnError         func(message string)
}

// Orchestrator defines the interface the UI drives downloads through.
type Orchestrator interface {
	Validate(text string) (model.AlbumID, error)
	Start(id model.AlbumID, settings *config.Settings, cb Callbacks) (*model.DownloadTask, error)
	Busy() bool
}
