// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package oj

import (
	"math"
	"math/big"
	"strconv"

	"gopkg.in/inf.v0"
)

// decMax is the largest number of significant digits (excluding trailing
// zeroes) the fast integer/float path will represent exactly before the
// scanner escalates to the big-decimal path.
const decMax = 14

// expMax is the decimal exponent magnitude at which the scanner escalates
// to the big-decimal path (the fast path applies exponents up to
// expMax-1 directly), regardless of how many significant digits were seen.
const expMax = 1023

// longMaxGuard is the point past which another digit could overflow an
// int64 accumulator; the scanner escalates before that happens rather
// than relying on wraparound.
const longMaxGuard = math.MaxInt64/10 - 10

// NumInfo is the raw result of scanning one JSON number: just enough state
// to decide, without re-lexing, whether the number should be materialized
// as a native integer, a native float, or an arbitrary-precision value.
// NumInfo is a pure value type; it does not itself allocate a domain
// number until Decode is called.
type NumInfo struct {
	// Text is the original, unparsed text of the number (including any
	// leading sign). It is the reader's protected window at scan time, so
	// like any such window it is valid only until the window is released;
	// a Handler that wants to retain it must copy it.
	Text []byte

	I        int64 // the accumulated integer digits, while not Big
	Num, Div int64 // the fractional part: frac = Num/Div
	Exp      int32 // the signed decimal exponent
	DecCnt   int   // total significant digits, trailing zeroes excluded

	Big      bool // precision or magnitude exceeded the native fast path
	Infinity bool
	NaN      bool
	Neg      bool
	NoBig    bool // materialize a big decimal as a float rather than keeping it
}

// scanNumber scans a JSON number, having already consumed its first byte
// (c) from r. r must already have had Protect(1) called so that the
// window includes that first byte.
func scanNumber(r Reader, c byte, opt Options) (NumInfo, *ParseError) {
	var ni NumInfo
	ni.Div = 1 // stays 1 (frac = 0/1) unless a fraction is scanned below
	ni.NoBig = opt.BigDecMode == FloatDec

	if c == '-' {
		ni.Neg = true
		c = r.Get()
	} else if c == '+' {
		c = r.Get()
	}

	switch c {
	case 'I':
		if !r.Expect("nfinity") {
			return ni, newError(ErrNotANumberOrOtherValue, r.Location(), "not a number or other value")
		}
		ni.Infinity = true
		ni.Text = r.Release()
		return finishNumber(ni, opt), nil
	case 'N', 'n':
		c1 := r.Get()
		c2 := r.Get()
		if c1 != 'a' || (c2 != 'N' && c2 != 'n') {
			return ni, newError(ErrNotANumberOrOtherValue, r.Location(), "not a number or other value")
		}
		ni.NaN = true
		ni.Text = r.Release()
		return finishNumber(ni, opt), nil
	}

	zeroCnt := 0
	for '0' <= c && c <= '9' {
		ni.DecCnt++
		d := int64(c - '0')
		if ni.Big {
			// Already escalated; just keep the digit count honest.
		} else {
			if d == 0 {
				zeroCnt++
			} else {
				zeroCnt = 0
			}
			if ni.I >= longMaxGuard || ni.DecCnt-zeroCnt > decMax {
				ni.Big = true
			} else {
				ni.I = ni.I*10 + d
			}
		}
		c = r.Get()
	}
	if c == '.' {
		c = r.Get()
		for '0' <= c && c <= '9' {
			d := int64(c - '0')
			if d == 0 {
				zeroCnt++
			} else {
				zeroCnt = 0
			}
			ni.DecCnt++
			if ni.Div >= longMaxGuard || ni.DecCnt-zeroCnt > decMax {
				ni.Big = true
			} else {
				ni.Num = ni.Num*10 + d
				ni.Div *= 10
			}
			c = r.Get()
		}
	}
	if c == 'e' || c == 'E' {
		eneg := false
		c = r.Get()
		if c == '-' {
			eneg = true
			c = r.Get()
		} else if c == '+' {
			c = r.Get()
		}
		for '0' <= c && c <= '9' {
			ni.Exp = ni.Exp*10 + int32(c-'0')
			if ni.Exp >= expMax {
				ni.Big = true
			}
			c = r.Get()
		}
		if eneg {
			ni.Exp = -ni.Exp
		}
	}
	ni.DecCnt -= zeroCnt
	if opt.BigDecMode == BigDec {
		ni.Big = true
	}
	// The loops above read one byte past the number (c, unless at end of
	// input); step back over it so the driver sees it next and Text leaves
	// it out. Only SliceReader and StreamReader are stepped back.
	if c != 0 {
		switch rr := r.(type) {
		case *SliceReader:
			rr.pos.pos, rr.pos.line, rr.pos.col = rr.pos.lastPos, rr.pos.lastLine, rr.pos.lastCol
		case *StreamReader:
			_ = rr.br.UnreadByte()
			rr.buf.Truncate(rr.buf.Len() - 1)
			rr.pos.pos, rr.pos.line, rr.pos.col = rr.pos.lastPos, rr.pos.lastLine, rr.pos.lastCol
		}
	}
	ni.Text = r.Release()
	return finishNumber(ni, opt), nil
}

// finishNumber applies a forced BigDec mode once the full token text is
// known. Infinity and NaN tokens, which skip the digit loop above, also
// flow through here but keep Big unset; Decode makes them floats either way.
func finishNumber(ni NumInfo, opt Options) NumInfo {
	if opt.BigDecMode == BigDec && !ni.Infinity && !ni.NaN {
		ni.Big = true
	}
	return ni
}

// A NumberKind identifies which field of a Number holds the decoded value.
type NumberKind byte

const (
	KindInt NumberKind = iota
	KindFloat
	KindBigInt
	KindBigDecimal
)

// A Number is the domain-level numeric value materialized from a NumInfo
// by Decode.
type Number struct {
	Kind   NumberKind
	Int    int64
	Float  float64
	BigInt *big.Int
	BigDec *inf.Dec
}

// Decode materializes n into a domain numeric value, following §4.7:
// Infinity becomes a signed infinite float and NaN a NaN float (its sign
// is not kept); an integer with no
// fraction or exponent becomes a native int64 or, once escalated, a
// math/big.Int; anything with a fraction or exponent becomes a float64 or,
// once escalated, an inf.Dec (or a float64 derived from that inf.Dec, if
// NoBig is set).
func (n NumInfo) Decode() Number {
	switch {
	case n.Infinity:
		f := math.Inf(1)
		if n.Neg {
			f = math.Inf(-1)
		}
		return Number{Kind: KindFloat, Float: f}
	case n.NaN:
		return Number{Kind: KindFloat, Float: math.NaN()}
	}

	if n.Div == 1 && n.Exp == 0 {
		if n.Big {
			return Number{Kind: KindBigInt, BigInt: parseBigInt(n.Text)}
		}
		v := n.I
		if n.Neg {
			v = -v
		}
		return Number{Kind: KindInt, Int: v}
	}

	if n.Big {
		dec := parseBigDec(n.Text)
		if n.NoBig {
			f, _ := strconv.ParseFloat(dec.String(), 64)
			return Number{Kind: KindFloat, Float: f}
		}
		return Number{Kind: KindBigDecimal, BigDec: dec}
	}
	d := float64(n.I) + float64(n.Num)/float64(n.Div)
	if n.Neg {
		d = -d
	}
	if n.Exp != 0 {
		d *= math.Pow(10, float64(n.Exp))
	}
	return Number{Kind: KindFloat, Float: d}
}

// parseBigInt reconstructs an arbitrary-precision integer from the
// original digit text, rather than from the (possibly already-escalated
// and therefore frozen) fast-path accumulator. A leading "+" is stripped,
// since math/big.Int.SetString only recognizes "-".
func parseBigInt(text []byte) *big.Int {
	s := text
	if len(s) > 0 && s[0] == '+' {
		s = s[1:]
	}
	v, ok := new(big.Int).SetString(string(s), 10)
	if !ok {
		return new(big.Int)
	}
	return v
}

// parseBigDec reconstructs an arbitrary-precision decimal from the
// original digit text by splitting it into sign, integer digits,
// fractional digits, and exponent, then building the equivalent
// unscaled/scale pair directly rather than relying on inf.Dec's own
// string scanner, which does not accept scientific notation.
func parseBigDec(text []byte) *inf.Dec {
	s := text
	neg := false
	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}

	var digits []byte
	fracLen := 0
	i := 0
	for i < len(s) && '0' <= s[i] && s[i] <= '9' {
		digits = append(digits, s[i])
		i++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && '0' <= s[i] && s[i] <= '9' {
			digits = append(digits, s[i])
			fracLen++
			i++
		}
	}
	exp := 0
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		eneg := false
		if i < len(s) && (s[i] == '-' || s[i] == '+') {
			eneg = s[i] == '-'
			i++
		}
		for i < len(s) && '0' <= s[i] && s[i] <= '9' {
			exp = exp*10 + int(s[i]-'0')
			i++
		}
		if eneg {
			exp = -exp
		}
	}

	unscaled := new(big.Int)
	if len(digits) > 0 {
		unscaled.SetString(string(digits), 10)
	}
	dec := inf.NewDecBig(unscaled, inf.Scale(fracLen-exp))
	if neg {
		dec.Neg(dec)
	}
	return dec
}
