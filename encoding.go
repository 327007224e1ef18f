// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package oj

import (
	"errors"
	"strings"

	"github.com/liptonshmidt/oj/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as the contents of a JSON string value. The contents
// are escaped; no enclosing double quotation marks are added.
func Quote(src string) string { return string(escape.Quote(mem.S(src))) }

// Unquote decodes a JSON string value.  Double quotation marks are removed,
// and escape sequences are replaced with their unescaped equivalents.
//
// Unquote reports an error for an incomplete escape sequence, a malformed
// or unresolved \u escape, or an escape character JSON does not define.
func Unquote(src string) ([]byte, error) {
	if len(src) < 2 || !strings.HasPrefix(src, `"`) || !strings.HasSuffix(src, `"`) {
		return nil, errors.New("missing quotations")
	}
	return escape.Unquote(mem.S(src[1 : len(src)-1]))
}
