package transform

import "errors"

var (
	// ErrUnsupportedFormat means the input path has neither a packaged nor a
	// plain JSON extension. Load performs no filesystem writes in this case.
	ErrUnsupportedFormat = errors.New("unsupported model file format")

	// ErrMissingConfig means a packaged archive has no config.json at its root
	ErrMissingConfig = errors.New("config.json not found in packaged model")
)
