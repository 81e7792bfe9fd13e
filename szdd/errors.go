package szdd

import "errors"

// Package errors. Compare with errors.Is; I/O errors from the underlying
// reader or writer are returned as they are.
var (
	ErrTooLarge           = errors.New("szdd: file more than 4 GB not supported")
	ErrFormat             = errors.New("szdd: not an MS-compressed file")
	ErrUnsupportedVersion = errors.New("szdd: unsupported version 6.22")
	ErrNegativeSize       = errors.New("szdd: negative size")
)
