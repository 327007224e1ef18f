// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package escape_test

import (
	"errors"
	"testing"

	"go4.org/mem"

	"github.com/liptonshmidt/oj/internal/escape"
)

func TestUnquote(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{``, ``},
		{`abc`, `abc`},
		{`a\nb\tc`, "a\nb\tc"},
		{`\"\\\/\b\f\n\r\t`, "\"\\/\b\f\n\r\t"},
		{`AB`, "AB"},

		// A high/low surrogate pair combines into a single codepoint above
		// U+FFFF.
		{"\\ud83d\\ude00", "\U0001F600"},
	}
	for _, test := range tests {
		got, err := escape.Unquote(mem.S(test.input))
		if err != nil {
			t.Errorf("Unquote(%q): unexpected error: %v", test.input, err)
			continue
		}
		if string(got) != test.want {
			t.Errorf("Unquote(%q): got %q, want %q", test.input, got, test.want)
		}
	}
}

func TestUnquoteErrors(t *testing.T) {
	tests := []string{
		`\`,
		`\u12`,

		// A non-hexadecimal digit inside a \u escape.
		`\u12zz`,

		// An isolated high surrogate with no following low surrogate is not
		// a valid rune on its own; it is a parse error, not a substitution.
		`\ud83d abc`,

		// A high surrogate followed by a \u escape that is not itself a
		// valid low surrogate is an invalid surrogate pair.
		`\ud83d\u0041`,

		// An escape character JSON does not define.
		`\q`,
	}
	for _, input := range tests {
		if _, err := escape.Unquote(mem.S(input)); err == nil {
			t.Errorf("Unquote(%q): got nil error, want non-nil", input)
		}
	}
}

func TestUnquoteErrorKinds(t *testing.T) {
	_, err := escape.Unquote(mem.S(`\u12zz`))
	if !errors.Is(err, escape.ErrInvalidHex) {
		t.Errorf("Unquote(bad hex): err = %v, want wrapping ErrInvalidHex", err)
	}

	_, err = escape.Unquote(mem.S(`\q`))
	if !errors.Is(err, escape.ErrInvalidEscape) {
		t.Errorf("Unquote(bad escape): err = %v, want wrapping ErrInvalidEscape", err)
	}

	_, err = escape.Unquote(mem.S(`\ud83d abc`))
	if !errors.Is(err, escape.ErrInvalidEscape) {
		t.Errorf("Unquote(isolated surrogate): err = %v, want wrapping ErrInvalidEscape", err)
	}
}
