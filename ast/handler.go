// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"io"

	"github.com/liptonshmidt/oj"
)

// A Builder implements oj.Handler to assemble a Value tree. Unlike the
// original parser's Handler, whose callbacks only named a token and its
// location and left the caller to maintain its own value stack, oj's
// Handler callbacks are handed the container they belong to directly, so
// Builder never needs a stack of its own: it only needs to remember how
// deep it currently is, to recognize when a StartArray/StartHash at depth
// zero becomes the whole document's root value.
type Builder struct {
	root  Value
	depth int
}

// NewBuilder constructs an empty Builder.
func NewBuilder() *Builder { return new(Builder) }

// Result returns the most recently completed top-level value, or nil if
// none has been parsed yet.
func (b *Builder) Result() Value { return b.root }

// reset clears b so it can build a fresh document, used between documents
// of a RunAll stream.
func (b *Builder) reset() { b.root = nil; b.depth = 0 }

func (b *Builder) StartArray() (any, error) {
	b.depth++
	return &Array{}, nil
}

func (b *Builder) EndArray(handle any) error {
	b.depth--
	if b.depth == 0 {
		b.root = handle.(*Array)
	}
	return nil
}

func (b *Builder) StartHash() (any, error) {
	b.depth++
	return &Object{}, nil
}

func (b *Builder) EndHash(handle any) error {
	b.depth--
	if b.depth == 0 {
		b.root = handle.(*Object)
	}
	return nil
}

func (b *Builder) AddValue(v, isNull bool) error {
	b.root = boolOrNull(v, isNull)
	return nil
}

func (b *Builder) AddString(s oj.Str) error {
	b.root = String{Text: s.String()}
	return nil
}

func (b *Builder) AddNumber(n oj.NumInfo) error {
	b.root = numberValue(n)
	return nil
}

func (b *Builder) ArrayAppendValue(handle any, v, isNull bool) error {
	a := handle.(*Array)
	a.Values = append(a.Values, boolOrNull(v, isNull))
	return nil
}

func (b *Builder) ArrayAppendString(handle any, s oj.Str) error {
	a := handle.(*Array)
	a.Values = append(a.Values, String{Text: s.String()})
	return nil
}

func (b *Builder) ArrayAppendNumber(handle any, n oj.NumInfo) error {
	a := handle.(*Array)
	a.Values = append(a.Values, numberValue(n))
	return nil
}

func (b *Builder) HashSetValue(handle any, key string, v, isNull bool) error {
	o := handle.(*Object)
	o.Members = append(o.Members, &Member{Key: key, Value: boolOrNull(v, isNull)})
	return nil
}

func (b *Builder) HashSetString(handle any, key string, s oj.Str) error {
	o := handle.(*Object)
	o.Members = append(o.Members, &Member{Key: key, Value: String{Text: s.String()}})
	return nil
}

func (b *Builder) HashSetNumber(handle any, key string, n oj.NumInfo) error {
	o := handle.(*Object)
	o.Members = append(o.Members, &Member{Key: key, Value: numberValue(n)})
	return nil
}

func boolOrNull(v, isNull bool) Value {
	if isNull {
		return Null{}
	}
	return Bool{Value: v}
}

func numberValue(n oj.NumInfo) Value {
	switch d := n.Decode(); d.Kind {
	case oj.KindInt:
		return Int{Value: d.Int}
	case oj.KindBigInt:
		return BigInt{Value: d.BigInt}
	case oj.KindBigDecimal:
		return BigDecimal{Value: d.BigDec}
	default:
		return Float{Value: d.Float}
	}
}

// Parse parses exactly one JSON value from r and returns its tree.
func Parse(r io.Reader, opt oj.Options) (Value, error) {
	b := NewBuilder()
	p := oj.New(oj.NewStreamReader(r), opt)
	if err := p.Run(b); err != nil {
		return nil, err
	}
	return b.Result(), nil
}

// ParseAll parses a whitespace-separated stream of JSON values from r and
// returns their trees in order.
func ParseAll(r io.Reader, opt oj.Options) ([]Value, error) {
	b := NewBuilder()
	p := oj.New(oj.NewStreamReader(r), opt)
	var vs []Value
	err := p.RunAll(b, func() error {
		vs = append(vs, b.Result())
		b.reset()
		return nil
	})
	return vs, err
}
