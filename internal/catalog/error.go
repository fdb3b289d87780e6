package catalog

import "errors"

// ErrReadFailure wraps any failure while aggregating the catalog.
var ErrReadFailure = errors.New("failed to load catalog")
