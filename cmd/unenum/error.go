package main

import "errors"

// ErrUsage occurs when the program is invoked with invalid arguments.
var ErrUsage = errors.New("expected exactly one root directory argument")
