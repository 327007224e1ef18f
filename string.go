// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package oj

import (
	"errors"

	"go4.org/mem"

	"github.com/liptonshmidt/oj/internal/escape"
)

// A Str is the result of scanning a JSON string. It is zero-copy when the
// string contained no escapes, in which case it aliases the reader's last
// protected window; otherwise it owns a freshly decoded buffer. Either way,
// Str follows the same lifetime rule as the window it may alias: a Handler
// that needs the bytes to outlive the callback that received them must
// call Copy.
type Str struct {
	raw   []byte
	owned bool
}

// Bytes returns the decoded string content. The slice is only guaranteed
// valid until the reader's next Protect call if Owned reports false.
func (s Str) Bytes() []byte { return s.raw }

// String decodes the string content to a Go string, always by copying.
func (s Str) String() string { return string(s.raw) }

// Owned reports whether Bytes returns a buffer this Str allocated itself,
// as opposed to an alias of the reader's protected window.
func (s Str) Owned() bool { return s.owned }

// Copy returns a Str with the same content as s, but guaranteed to own its
// own storage, so it can safely be retained past the current callback.
func (s Str) Copy() Str {
	if s.owned {
		return s
	}
	return Str{raw: append([]byte(nil), s.raw...), owned: true}
}

// scanString scans a quoted JSON string, having already consumed its
// opening quotation mark from r. It reads the fast zero-copy path when the
// string contains no backslash escapes, and falls back to
// internal/escape.Unquote otherwise (§4.4).
func scanString(r Reader) (Str, *ParseError) {
	r.Protect(0)
	esc := false
	for {
		c := r.Get()
		switch {
		case c == 0:
			return Str{}, newError(ErrStringNotTerminated, r.Location(), "quoted string not terminated")
		case c == '"':
			raw := r.Release()
			text := raw[:len(raw)-1] // drop the closing quote; the opening quote was consumed before Protect
			if !esc {
				return Str{raw: text}, nil
			}
			dec, err := escape.Unquote(mem.B(text))
			if err != nil {
				kind := ErrInvalidEscapedChar
				switch {
				case errors.Is(err, escape.ErrInvalidHex):
					kind = ErrInvalidHexCharacter
				case errors.Is(err, escape.ErrInvalidUnicode):
					kind = ErrInvalidUnicodeChar
				}
				return Str{}, wrapError(kind, r.Location(), err, "invalid escape sequence: %v", err)
			}
			return Str{raw: dec, owned: true}, nil
		case c == '\\':
			esc = true
			if r.Get() == 0 {
				return Str{}, newError(ErrStringNotTerminated, r.Location(), "quoted string not terminated")
			}
		case c < 0x20:
			return Str{}, newError(ErrInvalidEscapedChar, r.Location(), "unescaped control character %#02x in string", c)
		}
	}
}
