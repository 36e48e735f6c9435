package config

import "github.com/m-mizutani/goerr/v2"

var (
	ErrConfigNotFound = goerr.New("configuration file not found")
	ErrInvalidConfig  = goerr.New("invalid configuration")
)

// Keys attached to config errors with goerr.V.
const (
	ConfigPathKey = "config_path"
	FieldKey      = "field"
	ValueKey      = "value"
	EnvKey        = "env"
)
