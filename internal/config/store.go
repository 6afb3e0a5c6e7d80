package config

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/ytget/jm-downloader/internal/platform"
)

// Option file location, relative to the user's Documents folder.
const (
	ConfigDirName  = "JMconfig"
	ConfigFileName = "option.yml"
)

// Store loads and saves the option file at a fixed path.
type Store struct {
	path string
	log  zerolog.Logger
}

// ResolvePath returns <Documents>/JMconfig/option.yml, creating the JMconfig
// directory when it is missing.
func ResolvePath() (string, error) {
	docs, err := platform.GetDocumentsDir()
	if err != nil {
		return "", newError(ErrConfigPath, err, "resolve documents directory")
	}

	dir := filepath.Join(docs, ConfigDirName)
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		return "", newError(ErrConfigPath, err, "create config directory %s", dir)
	}

	return filepath.Join(dir, ConfigFileName), nil
}

// NewStore resolves the per-user option path and returns a store for it.
func NewStore(logger zerolog.Logger) (*Store, error) {
	path, err := ResolvePath()
	if err != nil {
		return nil, err
	}
	return NewStoreAt(path, logger), nil
}

// NewStoreAt returns a store for an explicit option file path.
func NewStoreAt(path string, logger zerolog.Logger) *Store {
	return &Store{
		path: path,
		log:  logger.With().Str("component", "config").Str("path", path).Logger(),
	}
}

// Path returns the option file path.
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether the option file is present.
func (s *Store) Exists() bool {
	info, err := os.Stat(s.path)
	return err == nil && !info.IsDir()
}

// Load reads the option file, or creates a default one when it does not exist.
// Loading an existing file never writes to it.
func (s *Store) Load() (*Settings, error) {
	if !s.Exists() {
		s.log.Info().Msg("option file not found, creating default")
		return s.CreateDefault()
	}

	settings, err := ReadFile(s.path)
	if err != nil {
		return nil, newError(ErrConfigLoad, err, "load option file %s", s.path)
	}

	s.log.Info().Str("save_path", settings.SavePath()).Msg("option file loaded")
	return settings, nil
}

// CreateDefault builds the default option, points both download paths at the
// user's Downloads folder and saves it.
func (s *Store) CreateDefault() (*Settings, error) {
	settings, err := DefaultSettings()
	if err != nil {
		return nil, newError(ErrConfigLoad, err, "build default option")
	}

	downloadsDir, err := platform.GetHomeDownloadsDir()
	if err != nil {
		return nil, newError(ErrConfigLoad, err, "resolve downloads directory")
	}
	settings.SetSavePath(downloadsDir)

	if err := s.Save(settings); err != nil {
		return nil, newError(ErrConfigLoad, err, "create default option file")
	}
	return settings, nil
}

// Save writes settings to the option file.
func (s *Store) Save(settings *Settings) error {
	if err := WriteFile(s.path, settings); err != nil {
		s.log.Error().Err(err).Msg("option file save failed")
		return newError(ErrConfigSave, err, "save option file %s", s.path)
	}
	s.log.Info().Str("save_path", settings.SavePath()).Msg("option file saved")
	return nil
}

// ReadFile parses the option file at path.
func ReadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// WriteFile encodes settings to path. The content goes to a temporary file in
// the same directory first and is then renamed over path.
func WriteFile(path string, settings *Settings) error {
	data, err := settings.Marshal()
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, platform.DefaultFilePermissions); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

// Open resolves the per-user option file and loads it, creating a default one
// on first run. Any error is a startup failure.
func Open(logger zerolog.Logger) (*Store, *Settings, error) {
	store, err := NewStore(logger)
	if err != nil {
		return nil, nil, err
	}
	settings, err := store.Load()
	if err != nil {
		return nil, nil, err
	}
	return store, settings, nil
}
