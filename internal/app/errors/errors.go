package errors

import (
	"errors"
)

var (
	ErrFailedToReadConfig  = errors.New("failed to read config file")
	ErrFailedToParseConfig = errors.New("failed to parse config file")
	ErrInvalidConfig       = errors.New("invalid configuration")

	ErrLanguageNotSupported = errors.New("language not supported")
	ErrLocaleNotFound       = errors.New("locale bundle not found")
	ErrLocaleCorrupted      = errors.New("locale bundle is not valid JSON")

	ErrThemeStateNotFound  = errors.New("theme state file not found")
	ErrThemeStateCorrupted = errors.New("theme state file is corrupted")
	ErrThemeStateDirCreate = errors.New("failed to create theme state directory")
	ErrThemeStateWrite     = errors.New("failed to write theme state file")

	ErrInvalidWatchPattern = errors.New("invalid watch pattern")
)

var (
	As  = errors.As
	Is  = errors.Is
	New = errors.New
)
