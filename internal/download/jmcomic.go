package download

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/ytget/jm-downloader/internal/config"
	"github.com/ytget/jm-downloader/internal/model"
)

// jmcomic command line constants
const (
	JMComicCommand    = "jmcomic"
	JMComicOptionFlag = "--option"
	OptionFilePattern = "jm-option-*.yml"

	// MaxOutputLine bounds one line of jmcomic output kept in memory.
	MaxOutputLine = 1024 * 1024
)

// ErrCommandNotFound means the jmcomic executable is not installed or not on PATH.
var ErrCommandNotFound = errors.New("jmcomic command not found, install it with: pip install jmcomic")

// JMComic downloads albums by running the jmcomic command line tool with an
// option file written from the settings snapshot.
type JMComic struct {
	// Command is the executable name or path. Defaults to "jmcomic".
	Command string
	// TempDir holds the per-task option files. Empty means os.TempDir().
	TempDir string

	log zerolog.Logger
}

// NewJMComic creates a jmcomic runner.
func NewJMComic(logger zerolog.Logger) *JMComic {
	return &JMComic{
		Command: JMComicCommand,
		log:     logger.With().Str("component", "jmcomic").Logger(),
	}
}

// DownloadAlbum runs `jmcomic <id> --option <file>` and waits for it to exit.
// A non-zero exit becomes an error carrying the last line the tool printed on
// stderr, which is usually the exception message.
func (j *JMComic) DownloadAlbum(ctx context.Context, id model.AlbumID, settings *config.Settings) error {
	bin, err := exec.LookPath(j.Command)
	if err != nil {
		return errors.Wrap(ErrCommandNotFound, err.Error())
	}

	optionPath, err := j.writeOption(settings)
	if err != nil {
		return err
	}
	defer os.Remove(optionPath)

	cmd := exec.CommandContext(ctx, bin, id.String(), JMComicOptionFlag, optionPath)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return errors.Wrap(err, "failed to create stdout pipe")
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return errors.Wrap(err, "failed to create stderr pipe")
	}

	if err := cmd.Start(); err != nil {
		return errors.Wrap(err, "failed to start jmcomic")
	}

	log := j.log.With().Str("album", id.String()).Logger()
	var (
		wg       sync.WaitGroup
		lastLine string
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		j.consume(stdout, log, nil)
	}()
	go func() {
		defer wg.Done()
		j.consume(stderr, log, &lastLine)
	}()
	wg.Wait()

	if err := cmd.Wait(); err != nil {
		if ctx.Err() != nil {
			return errors.Wrap(ctx.Err(), "download aborted")
		}
		if lastLine != "" {
			return errors.Errorf("%s (%v)", lastLine, err)
		}
		return errors.Wrap(err, "jmcomic failed")
	}
	return nil
}

// writeOption stores the snapshot in a fresh temporary option file.
func (j *JMComic) writeOption(settings *config.Settings) (string, error) {
	f, err := os.CreateTemp(j.TempDir, OptionFilePattern)
	if err != nil {
		return "", errors.Wrap(err, "failed to create option file")
	}
	path := f.Name()
	f.Close()

	if err := config.WriteFile(path, settings); err != nil {
		os.Remove(path)
		return "", errors.Wrap(err, "failed to write option file")
	}
	return path, nil
}

// consume logs every output line and remembers the last non-empty one in last.
// Carriage returns split lines too, so progress bars redrawn in place do not
// grow into one huge line. Whatever cannot be scanned is discarded so the child
// never blocks on a full pipe.
func (j *JMComic) consume(r io.Reader, log zerolog.Logger, last *string) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), MaxOutputLine)
	scanner.Split(scanLines)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		log.Debug().Msg(line)
		if last != nil {
			*last = line
		}
	}
	if err := scanner.Err(); err != nil {
		log.Warn().Err(err).Msg("jmcomic output not readable, discarding the rest")
		io.Copy(io.Discard, r)
	}
}

// scanLines is bufio.ScanLines that also ends a line at '\r'.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
