// Package command provides the process-level driver of the deno front end.
//
//   - root.go: help rendering from the flag catalog (urfave/cli/v2)
//   - run.go: App, Main and exit codes
//   - dryrun.go: Plan, the Runner interface and the dry-run runner
//
// An invocation goes through these steps:
//
//  1. read DENO_DIR and NO_COLOR
//  2. parse the arguments; on failure print the error and usage, exit 1
//  3. print help for -h/--help
//  4. build the logger (debug with -D/--log-debug)
//  5. forward --v8-options / --v8-flags to the engine configurator; stop
//     after --v8-options
//  6. print the version for -v/--version
//  7. hand the Plan to the Runner
package command
