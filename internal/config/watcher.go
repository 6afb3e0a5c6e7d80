package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// WatchDebounce coalesces the burst of events editors produce for one save.
const WatchDebounce = 200 * time.Millisecond

// Watch calls onChange with a freshly parsed option each time the option file is
// written or replaced, until ctx is done. The parent directory is watched so
// that editors which save by rename are seen too. Unparsable content is logged
// and skipped. onChange runs on the watcher goroutine.
func (s *Store) Watch(ctx context.Context, onChange func(*Settings)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create option watcher")
	}
	if err := w.Add(filepath.Dir(s.path)); err != nil {
		w.Close()
		return errors.Wrapf(err, "watch %s", filepath.Dir(s.path))
	}

	go s.watchLoop(ctx, w, onChange)
	return nil
}

func (s *Store) watchLoop(ctx context.Context, w *fsnotify.Watcher, onChange func(*Settings)) {
	defer w.Close()

	name := filepath.Clean(s.path)
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != name {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				pending = time.After(WatchDebounce)
			}

		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			s.log.Warn().Err(err).Msg("option watcher error")

		case <-pending:
			pending = nil
			settings, err := ReadFile(s.path)
			if err != nil {
				s.log.Warn().Err(err).Msg("ignoring unreadable option file change")
				continue
			}
			s.log.Debug().Str("save_path", settings.SavePath()).Msg("option file changed on disk")
			onChange(settings)
		}
	}
}
