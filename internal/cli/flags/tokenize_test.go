package flags

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		arg  string
		want token
	}{
		{"script.ts", token{kind: tokWord, raw: "script.ts"}},
		{"-", token{kind: tokWord, raw: "-"}},
		{"", token{kind: tokWord, raw: ""}},
		{"--", token{kind: tokEndOfOptions, raw: "--"}},
		{"--reload", token{kind: tokLong, raw: "--reload", name: "reload"}},
		{"--v8-flags=--a,--b", token{kind: tokLong, raw: "--v8-flags=--a,--b", name: "v8-flags", value: "--a,--b", hasValue: true}},
		{"--v8-flags=", token{kind: tokLong, raw: "--v8-flags=", name: "v8-flags", hasValue: true}},
		{"-r", token{kind: tokShort, raw: "-r", shorts: []rune{'r'}}},
		{"-Dr", token{kind: tokShort, raw: "-Dr", shorts: []rune{'D', 'r'}}},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got := tokenize(tt.arg)
			if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(token{})); diff != "" {
				t.Errorf("tokenize(%q) mismatch (-want +got):\n%s", tt.arg, diff)
			}
		})
	}
}
