// Package flags turns the deno command line into runtime flags and the argv
// forwarded to the script engine.
//
// The work is split in small steps:
//
//   - spec.go: the catalog of global flags and built-in subcommands
//   - tokenize.go, parser.go: classification of raw arguments into a
//     ParseResult with a Selection (NoSelection, Info, Eval, Fmt, RunScript)
//   - builder.go: ParseResult to RuntimeFlags, including --allow-all
//   - passthrough.go: the residual argv
//   - engine.go: --v8-options / --v8-flags as engine.Options
//
// Classification stops at the first word. Everything after a script path
// belongs to the script:
//
//	deno --allow-net gist.ts --title X
//	  flags: allow_net
//	  argv:  deno gist.ts --title X
package flags
