// Package config defines the runtime configuration of the parser front end
// and loads it from layered sources: built-in defaults, an optional YAML file,
// and COGENT_* environment variables, in that order of precedence.
//
// The `config.Config` value is consumed by the root package to build the
// logger and the transformer options. Nothing here is global; every Load
// call starts from a fresh koanf instance.
package config
