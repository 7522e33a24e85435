package config

import "errors"

var (
	// ErrUnsupportedFormat means the file extension is not a known
	// configuration format.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")

	// ErrInvalidValue means a loaded value fails validation.
	ErrInvalidValue = errors.New("config: invalid value")
)
