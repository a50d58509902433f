// Package config provides the environment configuration of the deno front end.
//
//   - spec.go: Config struct and defaults
//   - loader.go: loading from the environment with koanf
//
// Recognized variables:
//
//	DENO_DIR   base directory (default $HOME/.deno)
//	NO_COLOR   disable color when set, regardless of value
//
// Nothing is read from or written to disk; every invocation starts from the
// environment it was given.
package config
