package runenv

import "errors"

// Predefined errors for the runenv package.
var (
	// ErrInvalidEnvironment indicates an unrecognized running-environment name
	// passed to Set.
	ErrInvalidEnvironment = errors.New("invalid running environment")

	// ErrInvalidExecutionMode indicates an unrecognized execution-mode name
	// passed to SetMode.
	ErrInvalidExecutionMode = errors.New("invalid execution mode")

	// ErrUnknownToken indicates an unrecognized token passed to Apply.
	ErrUnknownToken = errors.New("unknown override token")
)
