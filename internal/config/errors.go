package config

import "errors"

// Error variables for configuration loading.
var (
	ErrFileNotFound = errors.New("config file not found")
	ErrFileRead     = errors.New("cannot read config file")
	ErrInvalid      = errors.New("invalid config file")
	ErrFileExists   = errors.New("config file already exists")
)
