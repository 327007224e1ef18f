// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package oj

import "runtime/debug"

// A Parser drives a Handler through the callbacks that describe one JSON
// value read from a Reader. Unlike the original stream parser, which
// recursed through parseElement/parseMembers/parseElements, Parser.Run is
// a single flat loop over an explicit stack of open containers: each
// iteration looks at the innermost open frame's expectation (or the
// document root, if the stack is empty) and dispatches on the next
// non-whitespace, non-comment byte. This trades the recursive version's
// call-stack depth limit for an explicit one bounded only by available
// memory, which matters for deeply nested machine-generated JSON.
type Parser struct {
	r   Reader
	opt Options
}

// New constructs a Parser that reads from r under opt.
func New(r Reader, opt Options) *Parser { return &Parser{r: r, opt: opt} }

// Options returns the Options p was constructed with, so a Handler can read
// back knobs such as Circular without the caller threading them through
// separately.
func (p *Parser) Options() Options { return p.opt }

// Run parses exactly one JSON value — possibly a whole array or object
// tree — from p's Reader and delivers it to h. It returns the first error
// reported by the scanner or by h; once that happens no further callback
// is made.
func (p *Parser) Run(h Handler) error {
	if p.opt.SuppressGC {
		old := debug.SetGCPercent(-1)
		defer debug.SetGCPercent(old)
	}
	c, err := p.nextToken(h)
	if err != nil {
		return err
	}
	if c == 0 {
		return newError(ErrNotANumberOrOtherValue, p.r.Location(), "no value found")
	}
	if perr := p.runFrom(h, c); perr != nil {
		return perr
	}
	return nil
}

// RunAll repeatedly calls Run to parse a whitespace-separated stream of
// top-level JSON documents, calling onDoc after each one completes (a
// Handler that builds a tree will typically use onDoc to harvest and
// reset its root value). RunAll stops, without error, when the input is
// exhausted between documents.
func (p *Parser) RunAll(h Handler, onDoc func() error) error {
	if p.opt.SuppressGC {
		old := debug.SetGCPercent(-1)
		defer debug.SetGCPercent(old)
	}
	for {
		c, err := p.nextToken(h)
		if err != nil {
			return err
		}
		if c == 0 {
			return nil
		}
		if perr := p.runFrom(h, c); perr != nil {
			return perr
		}
		if onDoc != nil {
			if err := onDoc(); err != nil {
				return err
			}
		}
	}
}

// runFrom runs the flat dispatch loop to completion for one JSON value,
// whose first already-consumed, non-whitespace byte is c.
func (p *Parser) runFrom(h Handler, c byte) *ParseError {
	var stk stack
	for {
		top := stk.top()
		var next nextState
		if top != nil {
			next = top.next
		}

		switch next {
		case stateArrayComma:
			switch c {
			case ',':
				top.next = stateArrayElement
			case ']':
				if err := p.closeContainer(h, &stk); err != nil {
					return err
				}
			case '}':
				return newError(ErrUnexpectedHashClose, p.r.Location(), `expected "," or "]"`)
			default:
				return newError(ErrUnexpectedCharacter, p.r.Location(), `expected "," or "]"`)
			}

		case stateHashComma:
			switch c {
			case ',':
				top.next = stateHashKey
			case '}':
				if err := p.closeContainer(h, &stk); err != nil {
					return err
				}
			case ']':
				return newError(ErrUnexpectedArrayClose, p.r.Location(), `expected "," or "}"`)
			default:
				return newError(ErrUnexpectedCharacter, p.r.Location(), `expected "," or "}"`)
			}

		case stateHashColon:
			if c != ':' {
				return newError(ErrUnexpectedCharacter, p.r.Location(), `expected ":"`)
			}
			top.next = stateHashValue

		case stateHashNew, stateHashKey:
			switch {
			case c == '}' && next == stateHashNew:
				if err := p.closeContainer(h, &stk); err != nil {
					return err
				}
			case c == '}' && p.opt.AllowTrailingCommas:
				if err := p.closeContainer(h, &stk); err != nil {
					return err
				}
			case c == '"':
				s, err := scanString(p.r)
				if err != nil {
					return err
				}
				top.key = s.String()
				top.hasKey = true
				top.next = stateHashColon
			default:
				return newError(ErrUnexpectedCharacter, p.r.Location(), "expected an object key")
			}

		default: // stateNone (root), stateArrayNew, stateArrayElement, stateHashValue
			switch {
			case c == ']' && next == stateArrayNew:
				if err := p.closeContainer(h, &stk); err != nil {
					return err
				}
			case c == ']' && next == stateArrayElement && p.opt.AllowTrailingCommas:
				if err := p.closeContainer(h, &stk); err != nil {
					return err
				}
			default:
				if err := p.dispatchValue(h, &stk, c); err != nil {
					return err
				}
			}
		}

		if len(stk) == 0 {
			return nil
		}
		var perr *ParseError
		c, perr = p.nextToken(h)
		if perr != nil {
			return perr
		}
		if c == 0 {
			if top := stk.top(); top != nil {
				if top.next == stateHashNew || top.next == stateHashKey || top.next == stateHashColon || top.next == stateHashValue || top.next == stateHashComma {
					return newError(ErrHashNotTerminated, p.r.Location(), "object not terminated")
				}
			}
			return newError(ErrArrayNotTerminated, p.r.Location(), "array not terminated")
		}
	}
}

// dispatchValue handles one value token: a literal, a string, a number,
// or the opening of a nested array or object. top is re-read fresh (via
// stk.top()) before any push, since push can reallocate the stack's
// backing array and invalidate any *frame obtained beforehand.
func (p *Parser) dispatchValue(h Handler, stk *stack, c byte) *ParseError {
	top := stk.top()

	switch {
	case c == '[':
		handle, err := h.StartArray()
		if err != nil {
			return wrapHandlerErr(err, p.r.Location())
		}
		stk.push(frame{handle: handle, next: stateArrayNew})
		return nil

	case c == '{':
		handle, err := h.StartHash()
		if err != nil {
			return wrapHandlerErr(err, p.r.Location())
		}
		stk.push(frame{handle: handle, next: stateHashNew})
		return nil

	case c == '"':
		s, err := scanString(p.r)
		if err != nil {
			return err
		}
		if herr := p.deliverString(h, top, s); herr != nil {
			return herr
		}

	case c == 't':
		if !p.r.Expect("rue") {
			return newError(ErrExpectedTrue, p.r.Location(), `expected "true"`)
		}
		if herr := p.deliverValue(h, top, true, false); herr != nil {
			return herr
		}

	case c == 'f':
		if !p.r.Expect("alse") {
			return newError(ErrExpectedFalse, p.r.Location(), `expected "false"`)
		}
		if herr := p.deliverValue(h, top, false, false); herr != nil {
			return herr
		}

	case c == 'n':
		switch next := p.r.Get(); next {
		case 'u':
			if !p.r.Expect("ll") {
				return newError(ErrExpectedNull, p.r.Location(), `expected "null"`)
			}
			if herr := p.deliverValue(h, top, false, true); herr != nil {
				return herr
			}
		case 'a':
			last := p.r.Get()
			if last != 'N' && last != 'n' {
				return newError(ErrExpectedNaN, p.r.Location(), `expected "NaN"`)
			}
			if herr := p.deliverNumber(h, top, finishNumber(NumInfo{Div: 1, NaN: true}, p.opt)); herr != nil {
				return herr
			}
		default:
			return newError(ErrExpectedNull, p.r.Location(), `expected "null"`)
		}

	case c == '-' || c == '+' || ('0' <= c && c <= '9') || c == 'I' || c == 'N':
		p.r.Protect(1)
		ni, err := scanNumber(p.r, c, p.opt)
		if err != nil {
			return err
		}
		if herr := p.deliverNumber(h, top, ni); herr != nil {
			return herr
		}

	default:
		return newError(ErrUnexpectedCharacter, p.r.Location(), "unexpected character %q", c)
	}

	if top != nil {
		switch top.next {
		case stateArrayNew, stateArrayElement:
			top.next = stateArrayComma
		case stateHashValue:
			top.next = stateHashComma
		}
	}
	return nil
}

// deliverValue, deliverString, and deliverNumber route a scanned scalar to
// the correct Handler method, depending on whether it is the document
// root, an array element, or a keyed hash value.
func (p *Parser) deliverValue(h Handler, top *frame, v, isNull bool) *ParseError {
	var err error
	switch {
	case top == nil:
		err = h.AddValue(v, isNull)
	case top.next == stateArrayNew || top.next == stateArrayElement:
		err = h.ArrayAppendValue(top.handle, v, isNull)
	default:
		err = h.HashSetValue(top.handle, top.key, v, isNull)
	}
	if err != nil {
		return wrapHandlerErr(err, p.r.Location())
	}
	return nil
}

func (p *Parser) deliverString(h Handler, top *frame, s Str) *ParseError {
	var err error
	switch {
	case top == nil:
		err = h.AddString(s)
	case top.next == stateArrayNew || top.next == stateArrayElement:
		err = h.ArrayAppendString(top.handle, s)
	default:
		err = h.HashSetString(top.handle, top.key, s)
	}
	if err != nil {
		return wrapHandlerErr(err, p.r.Location())
	}
	return nil
}

func (p *Parser) deliverNumber(h Handler, top *frame, n NumInfo) *ParseError {
	var err error
	switch {
	case top == nil:
		err = h.AddNumber(n)
	case top.next == stateArrayNew || top.next == stateArrayElement:
		err = h.ArrayAppendNumber(top.handle, n)
	default:
		err = h.HashSetNumber(top.handle, top.key, n)
	}
	if err != nil {
		return wrapHandlerErr(err, p.r.Location())
	}
	return nil
}

// closeContainer pops the innermost frame, reports EndArray or EndHash to
// h, and if the frame it exposes underneath was itself an array element or
// hash value slot, advances that frame to its comma state. The pointer
// returned by stk.top() after the pop is safe to use directly: pop only
// shrinks the stack's slice, it never reallocates the backing array.
func (p *Parser) closeContainer(h Handler, stk *stack) *ParseError {
	f := stk.pop()
	var err error
	if f.next == stateArrayNew || f.next == stateArrayElement || f.next == stateArrayComma {
		err = h.EndArray(f.handle)
	} else {
		err = h.EndHash(f.handle)
	}
	if err != nil {
		return wrapHandlerErr(err, p.r.Location())
	}
	if parent := stk.top(); parent != nil {
		switch parent.next {
		case stateArrayNew, stateArrayElement:
			parent.next = stateArrayComma
		case stateHashValue:
			parent.next = stateHashComma
		}
	}
	return nil
}

// nextToken returns the next byte of input significant to the dispatch
// loop: whitespace is always skipped, and comments are skipped (and, if h
// implements CommentHandler, reported) when Options.AllowComments is set.
// It returns 0 at end of input.
func (p *Parser) nextToken(h Handler) (byte, *ParseError) {
	for {
		c := p.r.NextNonWhite()
		if c != '/' || !p.opt.AllowComments {
			return c, nil
		}
		text, isBlock, err := scanComment(p.r)
		if err != nil {
			return 0, err
		}
		if ch, ok := h.(CommentHandler); ok {
			if cerr := ch.Comment(text, isBlock); cerr != nil {
				return 0, wrapHandlerErr(cerr, p.r.Location())
			}
		}
	}
}

// wrapHandlerErr attaches the current location to an error returned by a
// Handler method, unless it is already a *ParseError.
func wrapHandlerErr(err error, loc Location) *ParseError {
	if pe, ok := err.(*ParseError); ok {
		return pe
	}
	return &ParseError{Kind: ErrInvalidToken, Location: loc, Message: err.Error()}
}
