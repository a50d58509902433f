// Package output formats what the deno front end prints about an invocation.
//
//   - formatter.go: Formatter interface, factory and terminal detection
//   - json.go: JSON output
//   - yaml.go: YAML output
package output
