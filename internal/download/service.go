package download

import (
	"context"
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/ytget/jm-downloader/internal/config"
	"github.com/ytget/jm-downloader/internal/model"
)

var (
	// ErrInvalidAlbumID is returned by Validate for non-numeric input.
	ErrInvalidAlbumID = model.ErrInvalidAlbumID
	// ErrBusy is returned by Start while another download is in flight.
	ErrBusy = errors.New("a download is already in progress")
)

// Service handles album download requests
type Service struct {
	ctx        context.Context
	downloader AlbumDownloader
	post       Poster
	log        zerolog.Logger
	busy       atomic.Bool
}

// NewService creates a download service. ctx bounds every download and is
// expected to live as long as the application.
func NewService(ctx context.Context, downloader AlbumDownloader, post Poster, logger zerolog.Logger) *Service {
	return &Service{
		ctx:        ctx,
		downloader: downloader,
		post:       post,
		log:        logger.With().Str("component", "download").Logger(),
	}
}

// Validate turns user input into an AlbumID. Surrounding whitespace is ignored;
// anything else that is not an ASCII digit is rejected.
func (s *Service) Validate(text string) (model.AlbumID, error) {
	id, err := model.ParseAlbumID(text)
	if err != nil {
		s.log.Debug().Str("input", text).Msg("rejected album ID")
		return "", err
	}
	return id, nil
}

// Busy reports whether a download is in flight.
func (s *Service) Busy() bool {
	return s.busy.Load()
}

// Start runs the download of id in the background with a snapshot of settings.
// cb.OnProgressStart is called before Start returns. Once the download ends,
// exactly one of cb.OnSuccess or cb.OnError is posted to the UI goroutine.
// While a download is in flight Start returns ErrBusy and calls nothing.
func (s *Service) Start(id model.AlbumID, settings *config.Settings, cb Callbacks) (*model.DownloadTask, error) {
	if settings == nil {
		return nil, errors.New("settings are required")
	}
	if !s.busy.CompareAndSwap(false, true) {
		s.log.Warn().Str("album", id.String()).Msg("download rejected, another one is running")
		return nil, ErrBusy
	}

	snapshot := settings.Clone()
	task := model.NewDownloadTask(id, snapshot.SavePath())

	s.log.Info().
		Str("task", task.ID).
		Str("album", id.String()).
		Str("save_path", task.SavePath).
		Msg("download starting")

	if cb.OnProgressStart != nil {
		cb.OnProgressStart()
	}

	go s.run(task, snapshot, cb)

	return task, nil
}

// run performs the blocking call and hands the outcome back to the UI.
func (s *Service) run(task *model.DownloadTask, snapshot *config.Settings, cb Callbacks) {
	task.Status = model.TaskStatusDownloading

	err := s.download(task.AlbumID, snapshot)
	task.Finish(err)

	logEvent := s.log.Info()
	if err != nil {
		logEvent = s.log.Error().Err(err)
	}
	logEvent.
		Str("task", task.ID).
		Str("album", task.AlbumID.String()).
		Str("status", task.Status.String()).
		Dur("elapsed", task.Elapsed()).
		Msg("download finished")

	id := task.AlbumID
	s.post(func() {
		s.busy.Store(false)
		if err != nil {
			if cb.OnError != nil {
				cb.OnError(err.Error())
			}
			return
		}
		if cb.OnSuccess != nil {
			cb.OnSuccess(id)
		}
	})
}

// download calls the collaborator, turning a panic into an error so that a
// terminal callback is always delivered.
func (s *Service) download(id model.AlbumID, snapshot *config.Settings) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("download crashed: %v", r)
		}
	}()
	return s.downloader.DownloadAlbum(s.ctx, id, snapshot)
}
