// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package oj

// A BigDecMode selects how a number that has escalated to the "big"
// (arbitrary-precision) path is materialized.
type BigDecMode byte

const (
	// AutoDec lets the scanner's own escalation heuristic decide: a
	// big-decimal number is materialized as an arbitrary-precision decimal.
	AutoDec BigDecMode = iota
	// BigDec forces every number onto the big-decimal path, regardless of
	// whether the scanner's heuristic would have escalated it.
	BigDec
	// FloatDec forces a big decimal to be coerced to float64 after it is
	// constructed, rather than kept as an arbitrary-precision value.
	FloatDec
)

// Options configures a Parser.
type Options struct {
	// BigDecMode selects how big (escalated) decimal numbers are
	// materialized; see BigDecMode.
	BigDecMode BigDecMode

	// Circular, if true, advertises to the Handler that the caller intends
	// to track cyclic references in the values it constructs. The core
	// driver never forms a cycle on its own (decoding text can't), so this
	// flag is opaque to the core and is only ever read back by a Handler
	// that wants it (via Parser.Options).
	Circular bool

	// SuppressGC, if true, disables the garbage collector for the duration
	// of a single Parser.Run call. This is the closest Go analogue to the
	// original parser's rb_gc_disable/rb_gc_enable bracketing, intended for
	// latency-sensitive parses of large documents where a GC pause mid-parse
	// is worse than the larger heap a disabled collector produces.
	SuppressGC bool

	// AllowComments enables recognition of "/* ... */" and "// ..." comment
	// tokens in the input (a lenient extension beyond strict JSON).
	AllowComments bool

	// AllowTrailingCommas enables a trailing comma before a closing "]" or
	// "}" (a lenient extension beyond strict JSON).
	AllowTrailingCommas bool
}

// WithBigDecMode returns a copy of o with BigDecMode set to m.
func (o Options) WithBigDecMode(m BigDecMode) Options { o.BigDecMode = m; return o }

// WithComments returns a copy of o with AllowComments set to ok.
func (o Options) WithComments(ok bool) Options { o.AllowComments = ok; return o }

// WithTrailingCommas returns a copy of o with AllowTrailingCommas set to ok.
func (o Options) WithTrailingCommas(ok bool) Options { o.AllowTrailingCommas = ok; return o }

// WithCircular returns a copy of o with Circular set to ok.
func (o Options) WithCircular(ok bool) Options { o.Circular = ok; return o }

// WithSuppressGC returns a copy of o with SuppressGC set to ok.
func (o Options) WithSuppressGC(ok bool) Options { o.SuppressGC = ok; return o }
