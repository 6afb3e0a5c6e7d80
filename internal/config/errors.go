package config

import "github.com/pkg/errors"

// Failure classes. Use errors.Is to tell them apart.
var (
	// ErrConfigPath means the option file location could not be resolved or created.
	ErrConfigPath = errors.New("option file location unavailable")
	// ErrConfigLoad means an option file could not be read, parsed or created.
	ErrConfigLoad = errors.New("option file could not be loaded")
	// ErrConfigSave means the option file could not be written.
	ErrConfigSave = errors.New("option file could not be saved")
)

// Error carries a failure class together with its cause.
type Error struct {
	Kind error
	Err  error
}

func (e *Error) Error() string { return e.Err.Error() }

func (e *Error) Unwrap() []error { return []error{e.Kind, e.Err} }

func newError(kind, cause error, format string, args ...any) error {
	if cause == nil {
		cause = kind
	}
	return &Error{Kind: kind, Err: errors.Wrapf(cause, format, args...)}
}
