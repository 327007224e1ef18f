// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package ast defines an abstract syntax tree for JSON values, and a
// Builder that implements oj.Handler to construct syntax trees as a
// Parser scans JSON source.
package ast

import (
	"math/big"
	"strconv"
	"strings"

	"gopkg.in/inf.v0"

	"github.com/liptonshmidt/oj"
)

// A Value is an arbitrary JSON value. JSON re-encodes v in canonical form.
type Value interface {
	JSON() string
}

// An Object is a collection of key-value members, in the order they were
// parsed.
type Object struct {
	Members []*Member
}

// Find returns the first member of o with the given key, or nil.
func (o *Object) Find(key string) *Member {
	for _, m := range o.Members {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// JSON satisfies the Value interface.
func (o *Object) JSON() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, m := range o.Members {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(quoteString(m.Key))
		sb.WriteByte(':')
		sb.WriteString(m.Value.JSON())
	}
	sb.WriteByte('}')
	return sb.String()
}

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// An Array is a sequence of values, in the order they were parsed.
type Array struct {
	Values []Value
}

// JSON satisfies the Value interface.
func (a *Array) JSON() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a.Values {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(v.JSON())
	}
	sb.WriteByte(']')
	return sb.String()
}

// A String is a decoded string value.
type String struct{ Text string }

// JSON satisfies the Value interface.
func (s String) JSON() string { return quoteString(s.Text) }

// An Int is a native integer value.
type Int struct{ Value int64 }

// JSON satisfies the Value interface.
func (z Int) JSON() string { return strconv.FormatInt(z.Value, 10) }

// A Float is a native floating-point value.
type Float struct{ Value float64 }

// JSON satisfies the Value interface.
func (f Float) JSON() string { return strconv.FormatFloat(f.Value, 'g', -1, 64) }

// A BigInt is an integer value too large or too precise for Int.
type BigInt struct{ Value *big.Int }

// JSON satisfies the Value interface.
func (z BigInt) JSON() string { return z.Value.String() }

// A BigDecimal is a decimal value too large or too precise for Float.
type BigDecimal struct{ Value *inf.Dec }

// JSON satisfies the Value interface.
func (d BigDecimal) JSON() string { return d.Value.String() }

// A Bool is a Boolean constant, true or false.
type Bool struct{ Value bool }

// JSON satisfies the Value interface.
func (b Bool) JSON() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// Null represents the null constant.
type Null struct{}

// JSON satisfies the Value interface.
func (Null) JSON() string { return "null" }

func quoteString(s string) string { return `"` + oj.Quote(s) + `"` }
