// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package oj

// A Handler receives the sequence of callbacks the driver makes as it
// scans a JSON document. It is the generalized form of the original
// parser's 13-entry callback vtable (§6.2): the container methods return
// an opaque handle that the driver passes back unchanged to the
// corresponding Array*/Hash* methods, so the Handler is free to represent
// a container however it likes (a pointer, a slice index, an integer
// cookie) without the driver ever inspecting it.
//
// Every method may return an error to abort the parse; the driver stops
// dispatching as soon as one does (first error wins). Parser.Run returns a
// *ParseError from a method as is; any other error is reported as a
// *ParseError of kind ErrInvalidToken whose Message is that error's text.
type Handler interface {
	// StartArray is called when "[" opens a new array. The returned handle
	// is later passed to ArrayAppend* calls for elements of this array, and
	// to EndArray when it closes.
	StartArray() (any, error)
	// EndArray is called when "]" closes the array identified by handle.
	EndArray(handle any) error

	// StartHash is called when "{" opens a new object. The returned handle
	// is later passed to HashSet* calls for members of this object, and to
	// EndHash when it closes.
	StartHash() (any, error)
	// EndHash is called when "}" closes the object identified by handle.
	EndHash(handle any) error

	// AddValue is called for a true/false/null literal at the document
	// root, i.e. not inside any open container.
	AddValue(v bool, isNull bool) error
	// AddString is called for a string value at the document root.
	AddString(s Str) error
	// AddNumber is called for a number value at the document root.
	AddNumber(n NumInfo) error

	// ArrayAppendValue, ArrayAppendString, and ArrayAppendNumber append a
	// true/false/null, string, or number element to the array identified
	// by handle.
	ArrayAppendValue(handle any, v bool, isNull bool) error
	ArrayAppendString(handle any, s Str) error
	ArrayAppendNumber(handle any, n NumInfo) error

	// HashSetValue, HashSetString, and HashSetNumber set key on the object
	// identified by handle to a true/false/null, string, or number value.
	HashSetValue(handle any, key string, v bool, isNull bool) error
	HashSetString(handle any, key string, s Str) error
	HashSetNumber(handle any, key string, n NumInfo) error
}

// A CommentHandler is an optional extension of Handler: if the Handler
// passed to Parser.Run also implements CommentHandler and Options.AllowComments
// is set, the driver reports each comment it skips rather than silently
// discarding it.
type CommentHandler interface {
	Handler

	// Comment is called with the text of a comment (without its
	// delimiters) and whether it was a block comment ("/* ... */", true)
	// or a line comment ("// ...", false).
	Comment(text Str, isBlock bool) error
}
