package model

import (
	"errors"
	"strings"
)

// ErrInvalidAlbumID is returned for identifiers that are empty or contain
// anything other than ASCII digits.
var ErrInvalidAlbumID = errors.New("album ID must contain digits only")

// AlbumID is a JM album number, e.g. "422866".
type AlbumID string

// ParseAlbumID trims surrounding whitespace and checks that what remains is a
// non-empty run of ASCII digits. It does not check that the album exists.
func ParseAlbumID(text string) (AlbumID, error) {
	id := strings.TrimSpace(text)
	if id == "" {
		return "", ErrInvalidAlbumID
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '0' || id[i] > '9' {
			return "", ErrInvalidAlbumID
		}
	}
	return AlbumID(id), nil
}

// String returns the identifier text.
func (id AlbumID) String() string {
	return string(id)
}
