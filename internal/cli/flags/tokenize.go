package flags

import "strings"

type tokenKind int

const (
	tokWord tokenKind = iota
	tokLong
	tokShort
	tokEndOfOptions
)

// token is one raw argument after lexical classification. Nothing here
// consults the catalog; that happens in the parser.
type token struct {
	kind tokenKind
	raw  string

	// tokLong
	name     string
	value    string
	hasValue bool

	// tokShort: "-Dr" expands to ['D', 'r'].
	shorts []rune
}

func tokenize(arg string) token {
	switch {
	case arg == "--":
		return token{kind: tokEndOfOptions, raw: arg}
	case strings.HasPrefix(arg, "--"):
		name, value, hasValue := strings.Cut(arg[2:], "=")
		return token{kind: tokLong, raw: arg, name: name, value: value, hasValue: hasValue}
	case len(arg) > 1 && arg[0] == '-':
		return token{kind: tokShort, raw: arg, shorts: []rune(arg[1:])}
	default:
		// includes "" and the conventional stdin marker "-"
		return token{kind: tokWord, raw: arg}
	}
}
