// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package oj implements a streaming JSON scanner and event-driven parser,
// fused with a numeric decoder that escalates to arbitrary precision when
// the native integer and floating-point ranges aren't enough to represent
// a value exactly.
//
// # Reading
//
// A Reader supplies the bytes of the input and a "protected window" that
// the scanner uses to hand back slices of the input without copying.
// NewSliceReader wraps an in-memory []byte and is always zero-copy;
// NewStreamReader wraps an io.Reader and copies into a small scratch arena
// only when a token's bytes need to outlive the read that produced them.
//
//	r := oj.NewSliceReader(data)
//	r := oj.NewStreamReader(someReader)
//
// # Parsing
//
// Parser drives a Handler through the structure of the input. Construct a
// Parser from a Reader and Options, and call Run with a Handler:
//
//	p := oj.New(r, oj.Options{})
//	if err := p.Run(handler); err != nil {
//	    log.Fatalf("parse failed: %v", err)
//	}
//
// Run parses exactly one top-level JSON value. If the input is a
// concatenated stream of independent top-level values, call RunAll
// instead; it repeats Run's single-value logic until the input is
// exhausted, invoking an onDoc callback after each one completes. See the
// ast package's ParseAll for an example.
//
// # Handlers
//
// The Handler interface accepts parser events. Its methods fall into four
// groups:
//
//	group        | methods                                                | description
//	------------ | ------------------------------------------------------ | -----------------------------
//	container    | StartArray, EndArray, StartHash, EndHash               | [ ... ] and { ... }
//	root value   | AddValue, AddString, AddNumber                         | a value with no enclosing container
//	array value  | ArrayAppendValue, ArrayAppendString, ArrayAppendNumber | a value inside [ ... ]
//	hash value   | HashSetValue, HashSetString, HashSetNumber             | a value inside { ... }
//
// Strings are delivered as a Str, which aliases the reader's protected
// window and is only valid for the duration of the callback; numbers are
// delivered as a NumInfo, which the handler decodes on demand with
// NumInfo.Decode. The true/false/null literals go through the plain Value
// callbacks as a (bool, isNull) pair. A container's handle is whatever its
// StartArray/StartHash call returned; the driver only ever passes it back
// unchanged, and never inspects it itself.
//
// The ast package is a complete reference Handler that builds an
// in-memory Value tree.
package oj
