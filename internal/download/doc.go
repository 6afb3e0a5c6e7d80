package download

// Package download runs one album download at a time off the UI goroutine.
// The actual fetching is done by an AlbumDownloader (in production the jmcomic
// command); this package validates the album ID, snapshots the settings, runs the
// call on its own goroutine and posts exactly one terminal callback back to the UI.
