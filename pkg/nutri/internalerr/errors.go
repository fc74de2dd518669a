package internalerr

import "errors"

// Sentinel errors for catalog and configuration loading. Computing
// nutrition never fails; these only surface while building components.
var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicate          = errors.New("duplicate entry")
	ErrInvalidCatalog     = errors.New("invalid catalog")
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	ErrInvalidConfig      = errors.New("invalid configuration")
)
