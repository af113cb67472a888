package detectsecrets

import "fmt"

const (
	exitOK      = 0
	exitFailure = 1
	// exitUsage matches what argument parsers conventionally use for
	// grammar errors.
	exitUsage = 2
)

// ExitError carries process exit code for handler failures.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("exit with code %d", e.Code)
	}
	return e.Message
}
