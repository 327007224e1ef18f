// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package escape

import (
	"errors"
	"testing"
)

// TestAppendCodepointExtendedForms exercises the 5-/6-byte UTF-8 forms that
// no \u escape pair can reach on its own (the largest surrogate-combined
// codepoint is U+10FFFF), so they are only reachable by calling
// appendCodepoint directly.
func TestAppendCodepointExtendedForms(t *testing.T) {
	tests := []struct {
		code int64
		want []byte
	}{
		{0x7F, []byte{0x7F}},
		{0x7FF, []byte{0xDF, 0xBF}},
		{0xFFFF, []byte{0xEF, 0xBF, 0xBF}},
		{0x1FFFFF, []byte{0xF7, 0xBF, 0xBF, 0xBF}},
		{0x3FFFFFF, []byte{0xFB, 0xBF, 0xBF, 0xBF, 0xBF}},
		{0x7FFFFFFF, []byte{0xFD, 0xBF, 0xBF, 0xBF, 0xBF, 0xBF}},
	}
	for _, test := range tests {
		got, err := appendCodepoint(nil, test.code)
		if err != nil {
			t.Errorf("appendCodepoint(%#x): unexpected error: %v", test.code, err)
			continue
		}
		if string(got) != string(test.want) {
			t.Errorf("appendCodepoint(%#x) = % x, want % x", test.code, got, test.want)
		}
	}
}

func TestAppendCodepointOutOfRange(t *testing.T) {
	_, err := appendCodepoint(nil, 0x80000000)
	if !errors.Is(err, ErrInvalidUnicode) {
		t.Errorf("appendCodepoint(0x80000000): err = %v, want wrapping ErrInvalidUnicode", err)
	}
}
