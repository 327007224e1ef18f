// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON strings.
package escape

import (
	"errors"
	"fmt"

	"go4.org/mem"
)

// ErrInvalidHex reports a non-hexadecimal digit inside a \u escape's four
// hex digits. Callers can match it with errors.Is.
var ErrInvalidHex = errors.New("invalid hex character")

// ErrInvalidEscape reports an escape sequence Unquote does not recognize,
// or a high surrogate not followed by a valid low-surrogate \u escape.
// Callers can match it with errors.Is.
var ErrInvalidEscape = errors.New("invalid escaped character")

// ErrInvalidUnicode reports a decoded codepoint too large for even the
// extended 5-/6-byte encoding below to represent. Callers can match it
// with errors.Is.
var ErrInvalidUnicode = errors.New("invalid Unicode character")

// Unquote decodes a byte slice containing the JSON encoding of a string. The
// input must have the enclosing double quotation marks already removed.
//
// Escape sequences are replaced with their unescaped equivalents. Unquote
// reports an error, wrapping ErrInvalidHex or ErrInvalidEscape as
// appropriate, for a malformed \u escape, an unresolved or invalid
// surrogate pair, an unrecognized escape character, or an incomplete
// escape sequence.
func Unquote(src mem.RO) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		dec = mem.Append(dec, src)
		return dec, nil
	}

	putByte := func(bs ...byte) { dec = append(dec, bs...) }
	for src.Len() != 0 {
		dec = mem.Append(dec, src.SliceTo(i))

		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, errors.New("incomplete escape sequence")
		}
		r, n := mem.DecodeRune(src)
		if n == 0 {
			n++
		}

		src = src.SliceFrom(n)
		switch r {
		case '"', '\\', '/':
			putByte(byte(r))
		case 'b':
			putByte('\b')
		case 'f':
			putByte('\f')
		case 'n':
			putByte('\n')
		case 'r':
			putByte('\r')
		case 't':
			putByte('\t')
		case 'u':
			if src.Len() < 4 {
				return nil, errors.New("incomplete Unicode escape")
			}
			v, err := parseHex(src.SliceTo(4))
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidHex, err)
			}
			src = src.SliceFrom(4)
			if isHighSurrogate(v) {
				if src.Len() < 6 || src.At(0) != '\\' || src.At(1) != 'u' {
					return nil, fmt.Errorf("%w: unresolved high surrogate", ErrInvalidEscape)
				}
				v2, err2 := parseHex(src.SliceFrom(2).SliceTo(4))
				if err2 != nil {
					return nil, fmt.Errorf("%w: %v", ErrInvalidHex, err2)
				}
				if !isLowSurrogate(v2) {
					return nil, fmt.Errorf("%w: invalid low-surrogate pair", ErrInvalidEscape)
				}
				dec, err = appendCodepoint(dec, combineSurrogates(v, v2))
				if err != nil {
					return nil, err
				}
				src = src.SliceFrom(6)
				break
			}
			dec, err = appendCodepoint(dec, v)
			if err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("%w: %q", ErrInvalidEscape, r)
		}

		// Look for the next escape sequence, and if one is not found we can blit
		// the rest of the input and go home.
		i = mem.IndexByte(src, '\\')
		if i < 0 {
			dec = mem.Append(dec, src)
			break
		}
	}
	return dec, nil
}

// isHighSurrogate and isLowSurrogate recognize the two halves of a UTF-16
// surrogate pair, used by JSON encoders to represent a codepoint above
// U+FFFF as two consecutive \u escapes.
func isHighSurrogate(v int64) bool { return 0xD800 <= v && v <= 0xDBFF }
func isLowSurrogate(v int64) bool  { return 0xDC00 <= v && v <= 0xDFFF }

// combineSurrogates computes the codepoint represented by a high/low
// surrogate pair, per the standard UTF-16 formula.
func combineSurrogates(hi, lo int64) int64 {
	return ((hi-0xD800)<<10|(lo-0xDC00))&0x0FFFFF + 0x10000
}

// appendCodepoint appends the UTF-8 encoding of code to dec. Codepoints
// beyond the standard RFC 3629 range (up to U+10FFFF) are still encoded, up
// to a 6-byte sequence for code points up to 0x7FFFFFFF, a lenient
// extension beyond strict Unicode; a code point larger than that has no
// representation and is an error.
func appendCodepoint(dec []byte, code int64) ([]byte, error) {
	switch {
	case code <= 0x0000007F:
		return append(dec, byte(code)), nil
	case code <= 0x000007FF:
		return append(dec,
			byte(0xC0|(code>>6)),
			byte(0x80|(code&0x3F)),
		), nil
	case code <= 0x0000FFFF:
		return append(dec,
			byte(0xE0|(code>>12)),
			byte(0x80|((code>>6)&0x3F)),
			byte(0x80|(code&0x3F)),
		), nil
	case code <= 0x001FFFFF:
		return append(dec,
			byte(0xF0|(code>>18)),
			byte(0x80|((code>>12)&0x3F)),
			byte(0x80|((code>>6)&0x3F)),
			byte(0x80|(code&0x3F)),
		), nil
	case code <= 0x03FFFFFF:
		return append(dec,
			byte(0xF8|(code>>24)),
			byte(0x80|((code>>18)&0x3F)),
			byte(0x80|((code>>12)&0x3F)),
			byte(0x80|((code>>6)&0x3F)),
			byte(0x80|(code&0x3F)),
		), nil
	case code <= 0x7FFFFFFF:
		return append(dec,
			byte(0xFC|(code>>30)),
			byte(0x80|((code>>24)&0x3F)),
			byte(0x80|((code>>18)&0x3F)),
			byte(0x80|((code>>12)&0x3F)),
			byte(0x80|((code>>6)&0x3F)),
			byte(0x80|(code&0x3F)),
		), nil
	default:
		return nil, fmt.Errorf("%w: codepoint %#x", ErrInvalidUnicode, code)
	}
}

func parseHex(data mem.RO) (int64, error) {
	var v int64
	for i := 0; i < data.Len(); i++ {
		b := data.At(i)
		v <<= 4
		if '0' <= b && b <= '9' {
			v += int64(b - '0')
		} else if 'a' <= b && b <= 'f' {
			v += int64(b - 'a' + 10)
		} else if 'A' <= b && b <= 'F' {
			v += int64(b - 'A' + 10)
		} else {
			return 0, fmt.Errorf("invalid hex digit %q", b)
		}
	}
	return v, nil
}
