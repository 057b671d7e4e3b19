package errors

import (
	"errors"
)

var (
	ErrFailedToReadConfig  = errors.New("failed to read config file")
	ErrFailedToParseConfig = errors.New("failed to parse config file")
	ErrInvalidConfig       = errors.New("invalid configuration")

	ErrInvalidCapacity  = errors.New("console capacity must be at least 1")
	ErrUnknownLevel     = errors.New("unknown log level")
	ErrMissingTimestamp = errors.New("record has no timestamp")
	ErrMissingMessage   = errors.New("record has no message")

	ErrInvalidExportDir     = errors.New("export directory is not set")
	ErrInvalidIgnorePattern = errors.New("invalid ignore pattern")
	ErrInvalidLogFormat     = errors.New("invalid logging format")

	ErrClipboardWrite = errors.New("clipboard write failed")
	ErrExportWrite    = errors.New("export write failed")

	ErrInputNotFound = errors.New("input file does not exist")
)

var (
	Is  = errors.Is
	New = errors.New
)
