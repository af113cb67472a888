package usage

import "errors"

var (
	// ErrVersionShown is returned by ParseArgs after --version printed the
	// version. Callers should exit successfully without doing anything else.
	ErrVersionShown = errors.New("version shown")
	// ErrHelpShown is returned by ParseArgs after help output was printed.
	ErrHelpShown = errors.New("help shown")
)

// UsageError is a grammar violation: an unknown flag, a missing positional,
// an out-of-range limit and so on. Usage holds the usage text of the command
// the error was raised for.
type UsageError struct {
	Command string
	Usage   string
	Err     error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }
