package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setHome points the user profile lookup at a temporary directory.
func setHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	return home
}

func TestResolvePath(t *testing.T) {
	home := setHome(t)

	path, err := ResolvePath()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "Documents", "JMconfig", "option.yml"), path)

	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestResolvePath_DirectoryBlocked(t *testing.T) {
	home := setHome(t)
	// A regular file where the Documents directory should be.
	require.NoError(t, os.WriteFile(filepath.Join(home, "Documents"), []byte("x"), 0644))

	_, err := ResolvePath()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfigPath))
}

func TestLoad_CreatesDefaultWhenMissing(t *testing.T) {
	home := setHome(t)
	store, err := NewStore(zerolog.Nop())
	require.NoError(t, err)
	require.False(t, store.Exists())

	settings, err := store.Load()
	require.NoError(t, err)

	downloads := filepath.Join(home, "Downloads")
	assert.Equal(t, downloads, settings.DirRule.BaseDir)
	assert.Equal(t, downloads, settings.Download.DownloadDir)
	assert.True(t, store.Exists(), "default option file should be written")

	onDisk, err := ReadFile(store.Path())
	require.NoError(t, err)
	assert.Equal(t, downloads, onDisk.SavePath())
	assert.Contains(t, onDisk.Extra, "client")
}

func TestLoad_ExistingFileIsNotRewritten(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(sampleOption), 0644))

	past := time.Now().Add(-time.Hour).Truncate(time.Second)
	require.NoError(t, os.Chtimes(path, past, past))

	store := NewStoreAt(path, zerolog.Nop())
	settings, err := store.Load()
	require.NoError(t, err)

	assert.Equal(t, "/data/manga", settings.DirRule.BaseDir)
	assert.Equal(t, "/data/manga", settings.Download.DownloadDir)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(past), "load must not write the file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sampleOption, string(data))
}

func TestLoad_Unparsable(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("dir_rule: [broken"), 0644))

	_, err := NewStoreAt(path, zerolog.Nop()).Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfigLoad))
	assert.False(t, errors.Is(err, ErrConfigSave))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(sampleOption), 0644))
	store := NewStoreAt(path, zerolog.Nop())

	first, err := store.Load()
	require.NoError(t, err)
	require.NoError(t, store.Save(first))

	second, err := store.Load()
	require.NoError(t, err)
	require.NoError(t, store.Save(second))

	third, err := store.Load()
	require.NoError(t, err)

	assert.Equal(t, first.DirRule.BaseDir, third.DirRule.BaseDir)
	assert.Equal(t, first.Download.DownloadDir, third.Download.DownloadDir)
	assert.Equal(t, second, third)
}

func TestSave_AfterPathChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(sampleOption), 0644))
	store := NewStoreAt(path, zerolog.Nop())

	settings, err := store.Load()
	require.NoError(t, err)

	settings.SetSavePath("/home/alice/manga")
	require.NoError(t, store.Save(settings))

	reloaded, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "/home/alice/manga", reloaded.DirRule.BaseDir)
	assert.Equal(t, "/home/alice/manga", reloaded.Download.DownloadDir)
	assert.Equal(t, "Bd_Aauthor_Ptitle", reloaded.DirRule.Extra["rule"])
}

func TestSave_Failure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", ConfigFileName)
	store := NewStoreAt(path, zerolog.Nop())

	settings, err := DefaultSettings()
	require.NoError(t, err)

	err = store.Save(settings)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfigSave))

	var cfgErr *Error
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, ErrConfigSave, cfgErr.Kind)
}

func TestOpen_FirstRun(t *testing.T) {
	home := setHome(t)

	store, settings, err := Open(zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "Documents", "JMconfig", "option.yml"), store.Path())
	assert.Equal(t, filepath.Join(home, "Downloads"), settings.SavePath())
	assert.True(t, store.Exists())
}

func TestOpen_BrokenOptionFile(t *testing.T) {
	home := setHome(t)
	dir := filepath.Join(home, "Documents", ConfigDirName)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("dir_rule: [broken"), 0644))

	store, settings, err := Open(zerolog.Nop())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfigLoad))
	assert.Nil(t, store)
	assert.Nil(t, settings)
}

func TestOpen_NoUsableLocation(t *testing.T) {
	home := setHome(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "Documents"), []byte("x"), 0644))

	_, _, err := Open(zerolog.Nop())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfigPath))
}
