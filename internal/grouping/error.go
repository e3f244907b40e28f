package grouping

import "errors"

// ErrNoMetadata occurs when a record is to be grouped but carries no metadata
// to order it by.
var ErrNoMetadata = errors.New("no metadata")
