package flags

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse_Selection(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Selection
	}{
		{"nothing", nil, NoSelection{}},
		{"flags only", []string{"-D", "--reload"}, NoSelection{}},
		{"script", []string{"script.ts"}, RunScript{Path: "script.ts"}},
		{"script with args", []string{"script.ts", "a", "-b"}, RunScript{Path: "script.ts", Args: []string{"a", "-b"}}},
		{"url script", []string{"https://deno.land/welcome.ts"}, RunScript{Path: "https://deno.land/welcome.ts"}},
		{"stdin marker", []string{"-", "x"}, RunScript{Path: "-", Args: []string{"x"}}},
		{"info", []string{"info", "mod.ts"}, Info{File: "mod.ts"}},
		{"eval", []string{"eval", "1 + 1"}, Eval{Code: "1 + 1"}},
		{"eval code starting with a dash", []string{"eval", "-1"}, Eval{Code: "-1"}},
		{"fmt one", []string{"fmt", "a.ts"}, Fmt{Files: []string{"a.ts"}}},
		{"fmt many", []string{"fmt", "a.ts", "b.ts", "c.ts"}, Fmt{Files: []string{"a.ts", "b.ts", "c.ts"}}},
		{"fmt files spelled like flags", []string{"fmt", "--reload", "a.ts"}, Fmt{Files: []string{"--reload", "a.ts"}}},
		{"subcommand name after script", []string{"script.ts", "info", "x"}, RunScript{Path: "script.ts", Args: []string{"info", "x"}}},
		{"end of options", []string{"-D", "--", "info"}, RunScript{Path: "info"}},
		{"end of options with args", []string{"--", "--weird.ts", "--reload"}, RunScript{Path: "--weird.ts", Args: []string{"--reload"}}},
		{"end of options alone", []string{"--"}, NoSelection{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Parse(tt.args)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.args, err)
			}
			if diff := cmp.Diff(tt.want, res.Selection); diff != "" {
				t.Errorf("selection mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_PresentFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"long", []string{"--allow-env", "--no-prompt"}, []string{FlagAllowEnv, FlagNoPrompt}},
		{"short", []string{"-v"}, []string{FlagVersion}},
		{"cluster", []string{"-ADr"}, []string{FlagAllowAll, FlagLogDebug, FlagReload}},
		{"repeated", []string{"-r", "--reload", "-rr"}, []string{FlagReload}},
		{"catalog order", []string{"--prefetch", "--types", "-v"}, []string{FlagVersion, FlagTypes, FlagPrefetch}},
		{"value flag", []string{"--v8-flags=--expose-gc"}, []string{FlagV8Flags}},
		{"not after script", []string{"script.ts", "--reload"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Parse(tt.args)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.args, err)
			}
			if diff := cmp.Diff(tt.want, res.PresentFlags()); diff != "" {
				t.Errorf("PresentFlags() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_ValueFlag(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"equals", []string{"--v8-flags=--expose-gc"}, []string{"--expose-gc"}},
		{"equals list", []string{"--v8-flags=--a,--b"}, []string{"--a,--b"}},
		{"separate", []string{"--v8-flags", "expose-gc", "script.ts"}, []string{"expose-gc"}},
		{"repeated", []string{"--v8-flags=--a", "--v8-flags=--b"}, []string{"--a", "--b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Parse(tt.args)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.args, err)
			}
			if diff := cmp.Diff(tt.want, res.Values(FlagV8Flags)); diff != "" {
				t.Errorf("Values() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_SeparateValueDoesNotEatScript(t *testing.T) {
	res, err := Parse([]string{"--v8-flags", "expose-gc", "script.ts", "x"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := RunScript{Path: "script.ts", Args: []string{"x"}}
	if diff := cmp.Diff(want, res.Selection); diff != "" {
		t.Errorf("selection mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Help(t *testing.T) {
	tests := [][]string{
		{"--help"},
		{"-h"},
		{"-Dh"},
		{"--reload", "--help", "--bogus"},
	}

	for _, args := range tests {
		res, err := Parse(args)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", args, err)
		}
		if !res.Help {
			t.Errorf("Parse(%q).Help = false, want true", args)
		}
	}

	// A script may take its own --help.
	res, err := Parse([]string{"script.ts", "--help"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if res.Help {
		t.Error("--help after the script path belongs to the script")
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantErr   error
		wantToken string
	}{
		{"fmt without files", []string{"fmt"}, ErrMalformedArguments, "fmt"},
		{"info without file", []string{"info"}, ErrMalformedArguments, "info"},
		{"eval without code", []string{"-D", "eval"}, ErrMalformedArguments, "eval"},
		{"info with two files", []string{"info", "a.ts", "b.ts"}, ErrMalformedArguments, "b.ts"},
		{"eval with extra argument", []string{"eval", "1", "2"}, ErrMalformedArguments, "2"},
		{"v8-flags at end", []string{"--v8-flags"}, ErrMalformedArguments, "--v8-flags"},
		{"v8-flags empty", []string{"--v8-flags=", "script.ts"}, ErrMalformedArguments, "--v8-flags="},
		{"v8-flags only commas", []string{"--v8-flags=,", "script.ts"}, ErrMalformedArguments, "--v8-flags=,"},
		{"v8-flags separate blank list", []string{"--v8-flags", " , ", "script.ts"}, ErrMalformedArguments, "--v8-flags"},
		{"v8-flags followed by flag", []string{"--v8-flags", "--reload"}, ErrMalformedArguments, "--v8-flags"},
		{"help with value", []string{"--help=x"}, ErrMalformedArguments, "--help=x"},
		{"boolean flag with value", []string{"--reload=true"}, ErrMalformedArguments, "--reload=true"},
		{"unknown long flag", []string{"--allow-everything", "script.ts"}, ErrUnrecognizedToken, "--allow-everything"},
		{"unknown short flag", []string{"-x"}, ErrUnrecognizedToken, "-x"},
		{"unknown flag in cluster", []string{"-Dx"}, ErrUnrecognizedToken, "-Dx"},
		{"empty script path", []string{""}, ErrUnrecognizedToken, ""},
		{"empty script path after flags", []string{"-r", "", "x"}, ErrUnrecognizedToken, ""},
		{"empty script path after --", []string{"--", ""}, ErrUnrecognizedToken, ""},
		{"negative number", []string{"-1"}, ErrUnrecognizedToken, "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Parse(tt.args)
			if err == nil {
				t.Fatalf("Parse(%q) = %+v, want error", tt.args, res)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.args, err, tt.wantErr)
			}

			ue, ok := AsUsageError(err)
			if !ok {
				t.Fatalf("error %T is not a *UsageError", err)
			}
			if ue.Token != tt.wantToken {
				t.Errorf("Token = %q, want %q", ue.Token, tt.wantToken)
			}
			if ue.Usage != UsageLine {
				t.Errorf("Usage = %q, want %q", ue.Usage, UsageLine)
			}
			if ue.Error() == "" {
				t.Error("error message should not be empty")
			}
		})
	}
}

func TestParse_ErrorKindsAreDistinct(t *testing.T) {
	_, err := Parse([]string{"--nope"})
	if errors.Is(err, ErrMalformedArguments) {
		t.Error("an unrecognized token is not a malformed-arguments error")
	}

	_, err = Parse([]string{"fmt"})
	if errors.Is(err, ErrUnrecognizedToken) {
		t.Error("a missing positional is not an unrecognized-token error")
	}
}

// Everything after the first unrecognized word is captured, whatever it looks
// like, including the empty string and a lone "--".
func TestParse_PassthroughBoundary(t *testing.T) {
	args := []string{"-A", "script.ts", "", "--", "-A", "fmt", "--v8-flags", "--help"}
	res, err := Parse(args)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := []string{"", "--", "-A", "fmt", "--v8-flags", "--help"}
	if diff := cmp.Diff(want, res.Trailing()); diff != "" {
		t.Errorf("Trailing() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{FlagAllowAll}, res.PresentFlags()); diff != "" {
		t.Errorf("PresentFlags() mismatch (-want +got):\n%s", diff)
	}
	if res.Help {
		t.Error("Help should not be set by passthrough tokens")
	}
}

func TestParse_DoesNotAliasInput(t *testing.T) {
	args := []string{"script.ts", "a", "b"}
	res, err := Parse(args)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	args[1] = "changed"

	if got := res.Trailing(); got[0] != "a" {
		t.Errorf("Trailing()[0] = %q after caller mutation, want %q", got[0], "a")
	}
}

func TestParseResult_TrailingOnlyForScripts(t *testing.T) {
	res, err := Parse([]string{"fmt", "a.ts", "b.ts"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := res.Trailing(); got != nil {
		t.Errorf("Trailing() = %v, want nil", got)
	}
}

func TestModeName(t *testing.T) {
	tests := []struct {
		sel  Selection
		want string
	}{
		{NoSelection{}, "none"},
		{Info{File: "a"}, "info"},
		{Eval{Code: "a"}, "eval"},
		{Fmt{Files: []string{"a"}}, "fmt"},
		{RunScript{Path: "a"}, "run"},
	}
	for _, tt := range tests {
		if got := ModeName(tt.sel); got != tt.want {
			t.Errorf("ModeName(%#v) = %q, want %q", tt.sel, got, tt.want)
		}
	}
}
