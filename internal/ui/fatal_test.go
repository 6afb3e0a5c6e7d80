package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/jm-downloader/internal/config"
)

func TestFatalMessage(t *testing.T) {
	err := &config.Error{
		Kind: config.ErrConfigLoad,
		Err:  errors.Wrap(errors.New("yaml: line 1: did not find expected node content"), "load option file /x/option.yml"),
	}

	msg := FatalMessage(err)
	assert.Contains(t, msg, "Failed to load configuration")
	assert.Contains(t, msg, "did not find expected node content")
	assert.Contains(t, msg, "/x/option.yml")
}

func TestShowFatal_ClosingDialogQuits(t *testing.T) {
	test.NewTempApp(t)
	w := test.NewTempWindow(t, nil)

	quits := 0
	err := errors.Wrap(config.ErrConfigLoad, "broken option")
	d := ShowFatal(w, err, func() { quits++ })

	require.NotNil(t, w.Canvas().Overlays().Top(), "error dialog should be shown")
	assert.Equal(t, TextAppTitle, w.Title())
	assert.Equal(t, 0, quits)

	d.Hide()
	assert.Equal(t, 1, quits)
}
