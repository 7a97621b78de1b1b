package config

import (
	_ "embed"
)

// configSchemaCUE is the CUE definition every config file must satisfy.
//
//go:embed schema.cue
var configSchemaCUE []byte
