package flags

import (
	"fmt"
	"strings"

	"github.com/yndnr/deno-go/internal/engine"
)

// ParseResult is the catalog-level outcome of Parse: which flags were seen,
// the values of value-taking flags, and the selected mode.
type ParseResult struct {
	present map[string]bool
	values  map[string][]string

	Selection Selection
	// Help is set by -h/--help. Parsing stops at the help flag.
	Help bool
}

// Present reports whether the flag with the given canonical name was given.
func (r *ParseResult) Present(name string) bool {
	return r.present[name]
}

// Values returns the values given for a value-taking flag, in order.
func (r *ParseResult) Values(name string) []string {
	return append([]string(nil), r.values[name]...)
}

// PresentFlags returns the canonical names of all given flags in catalog
// order.
func (r *ParseResult) PresentFlags() []string {
	var names []string
	for _, f := range flagDefs {
		if r.present[f.Name] {
			names = append(names, f.Name)
		}
	}
	return names
}

// Trailing returns the tokens that followed the script path. They were not
// classified and are only ever forwarded.
func (r *ParseResult) Trailing() []string {
	if rs, ok := r.Selection.(RunScript); ok {
		return append([]string(nil), rs.Args...)
	}
	return nil
}

// Parse classifies args (without the program name) against the flag catalog.
//
// Global flags are accepted until the first word. A word naming a subcommand
// selects it and its positionals are taken verbatim; any other word is the
// script path and every later token is passed through untouched, so a script
// may take flags spelled like ours.
func Parse(args []string) (*ParseResult, error) {
	p := &parser{
		args: args,
		res: &ParseResult{
			present:   make(map[string]bool),
			values:    make(map[string][]string),
			Selection: NoSelection{},
		},
	}
	if err := p.run(); err != nil {
		return nil, err
	}
	return p.res, nil
}

type parser struct {
	args []string
	pos  int
	res  *ParseResult
}

func (p *parser) next() (string, bool) {
	if p.pos >= len(p.args) {
		return "", false
	}
	arg := p.args[p.pos]
	p.pos++
	return arg, true
}

func (p *parser) rest() []string {
	rest := append([]string(nil), p.args[p.pos:]...)
	p.pos = len(p.args)
	return rest
}

func (p *parser) run() error {
	for {
		arg, ok := p.next()
		if !ok {
			return nil
		}

		tok := tokenize(arg)
		switch tok.kind {
		case tokEndOfOptions:
			path, ok := p.next()
			if !ok {
				return nil
			}
			if path == "" {
				return unrecognized(path)
			}
			p.runScript(path)
			return nil
		case tokLong:
			if err := p.long(tok); err != nil {
				return err
			}
		case tokShort:
			if err := p.shortCluster(tok); err != nil {
				return err
			}
		case tokWord:
			return p.word(tok.raw)
		}
		if p.res.Help {
			return nil
		}
	}
}

func (p *parser) long(tok token) error {
	if tok.name == "help" {
		if tok.hasValue {
			return malformed(tok.raw, "The argument '--help' does not take a value")
		}
		p.res.Help = true
		return nil
	}

	def, ok := LookupLong(tok.name)
	if !ok {
		return unrecognized(tok.raw)
	}

	if !def.TakesValue {
		if tok.hasValue {
			return malformed(tok.raw, "The argument '--%s' does not take a value", def.Long)
		}
		p.res.present[def.Name] = true
		return nil
	}

	value, hasValue := tok.value, tok.hasValue
	if !hasValue {
		value, hasValue = p.separateValue()
	}
	if !hasValue || blank(value) {
		return malformed(tok.raw, "The argument '--%s=<%s>' requires a value but none was supplied", def.Long, def.Name)
	}
	p.record(def, value)
	return nil
}

func (p *parser) shortCluster(tok token) error {
	for i, r := range tok.shorts {
		if r == 'h' {
			p.res.Help = true
			return nil
		}

		def, ok := LookupShort(r)
		if !ok {
			return unrecognized(tok.raw)
		}
		if !def.TakesValue {
			p.res.present[def.Name] = true
			continue
		}

		// "-fVALUE" or "-f VALUE"
		if attached := string(tok.shorts[i+1:]); !blank(attached) {
			p.record(def, attached)
			return nil
		}
		value, ok := p.separateValue()
		if !ok || blank(value) {
			return malformed(tok.raw, "The argument '-%c' requires a value but none was supplied", r)
		}
		p.record(def, value)
		return nil
	}
	return nil
}

// blank reports whether a flag value holds no option once split on commas.
func blank(value string) bool {
	return len(engine.SplitFlags(value)) == 0
}

// separateValue takes the following argument as a flag value unless it looks
// like another option.
func (p *parser) separateValue() (string, bool) {
	if p.pos >= len(p.args) || strings.HasPrefix(p.args[p.pos], "-") {
		return "", false
	}
	return p.next()
}

func (p *parser) record(def FlagDef, value string) {
	p.res.present[def.Name] = true
	p.res.values[def.Name] = append(p.res.values[def.Name], value)
}

func (p *parser) word(w string) error {
	if w == "" {
		return unrecognized(w)
	}
	sub, ok := LookupSubcommand(w)
	if !ok {
		p.runScript(w)
		return nil
	}

	positionals := p.rest()
	switch sub.Arity {
	case ExactlyOne:
		if len(positionals) == 0 {
			return malformed(w, "The following required arguments were not provided: <%s> (deno %s <%s>)", sub.Arg, sub.Name, sub.Arg)
		}
		if len(positionals) > 1 {
			return malformed(positionals[1], "Found argument '%s' which wasn't expected, or isn't valid in this context (deno %s <%s>)", positionals[1], sub.Name, sub.Arg)
		}
	case OneOrMore:
		if len(positionals) == 0 {
			return malformed(w, "The following required arguments were not provided: <%s>... (deno %s <%s>...)", sub.Arg, sub.Name, sub.Arg)
		}
	}

	switch sub.Name {
	case CmdInfo:
		p.res.Selection = Info{File: positionals[0]}
	case CmdEval:
		p.res.Selection = Eval{Code: positionals[0]}
	case CmdFmt:
		p.res.Selection = Fmt{Files: positionals}
	default:
		panic(fmt.Sprintf("flags: subcommand %q has no selection", sub.Name))
	}
	return nil
}

func (p *parser) runScript(path string) {
	p.res.Selection = RunScript{Path: path, Args: p.rest()}
}
