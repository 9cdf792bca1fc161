package config

import "errors"

var (
	// ErrMissingQuery is returned when no query argument was supplied.
	ErrMissingQuery = errors.New("missing query argument")
	// ErrMissingFilePath is returned when no file path argument was supplied.
	ErrMissingFilePath = errors.New("missing file path argument")
)
