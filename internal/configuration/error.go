package configuration

import "errors"

// ErrInvalidValue occurs when a configuration value cannot be parsed into the
// type of its key.
var ErrInvalidValue = errors.New("invalid configuration value")
