package engine

import (
	"fmt"
	"io"
	"strings"
)

// Recorder is a Configurator that remembers every call instead of touching
// a real engine. It backs the dry-run binary and tests. Options listed in
// Unknown (without leading dashes) are handed back as unrecognized.
type Recorder struct {
	Out     io.Writer // if set, receives one line per call
	Calls   [][]string
	Unknown map[string]bool
}

// SetFlags records argv.
func (r *Recorder) SetFlags(argv []string) []string {
	r.Calls = append(r.Calls, append([]string(nil), argv...))
	if r.Out != nil {
		fmt.Fprintf(r.Out, "engine: %s\n", strings.Join(argv, " "))
	}

	rest := []string{argv[0]}
	for _, opt := range argv[1:] {
		if r.Unknown[strings.TrimLeft(opt, "-")] {
			rest = append(rest, opt)
		}
	}
	return rest
}
