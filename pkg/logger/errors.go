package logger

import "errors"

// Identity resolution errors.
var (
	ErrMissingArguments = errors.New("no program arguments available")
	ErrInvalidPath      = errors.New("invalid program path")
	ErrNonTextName      = errors.New("program name is not displayable text")
)

// Configuration errors. An unset level filter is not an error; it falls back
// to the default level.
var (
	ErrMissingTimezoneConfig = errors.New("timezone offset not configured")
	ErrInvalidTimezoneValue  = errors.New("invalid timezone offset")
	ErrInvalidLevel          = errors.New("invalid log level")
	ErrInvalidStyle          = errors.New("invalid log style")
	ErrInvalidClock          = errors.New("invalid clock")
)

// ErrAlreadyInitialized is returned by Init when a logger has already been
// registered as the process default.
var ErrAlreadyInitialized = errors.New("logger already initialized")

func IsIdentityError(err error) bool {
	return errors.Is(err, ErrMissingArguments) ||
		errors.Is(err, ErrInvalidPath) ||
		errors.Is(err, ErrNonTextName)
}

func IsConfigError(err error) bool {
	return errors.Is(err, ErrMissingTimezoneConfig) ||
		errors.Is(err, ErrInvalidTimezoneValue) ||
		errors.Is(err, ErrInvalidLevel) ||
		errors.Is(err, ErrInvalidStyle) ||
		errors.Is(err, ErrInvalidClock)
}

func IsRegistrationError(err error) bool {
	return errors.Is(err, ErrAlreadyInitialized)
}
