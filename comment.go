// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package oj

// scanComment scans a "/* ... */" or "// ..." comment, having already
// consumed the leading "/" from r. It reports the comment's own text
// (without the delimiters) via a CommentHandler, if the driver's Handler
// implements one; scanComment itself just recognizes and skips the bytes
// (§4.6).
//
// A line comment is terminated by "\n", "\r", "\f", or end of input; a
// block comment must be terminated by "*/" before end of input.
func scanComment(r Reader) (Str, bool, *ParseError) {
	r.Protect(1)
	switch c := r.Get(); c {
	case '/':
		for {
			c := r.Get()
			if c == 0 {
				raw := r.Release()
				return Str{raw: trimCommentTail(raw, 2, 0)}, false, nil
			}
			if c == '\n' || c == '\r' || c == '\f' {
				raw := r.Release()
				return Str{raw: trimCommentTail(raw, 2, 1)}, false, nil
			}
		}
	case '*':
		var prevStar bool
		for {
			c := r.Get()
			switch {
			case c == 0:
				return Str{}, false, newError(ErrCommentNotTerminated, r.Location(), "comment not terminated")
			case c == '/' && prevStar:
				raw := r.Release()
				return Str{raw: trimCommentTail(raw, 2, 2)}, true, nil
			default:
				prevStar = c == '*'
			}
		}
	default:
		return Str{}, false, newError(ErrInvalidComment, r.Location(), "invalid comment format")
	}
}

// trimCommentTail strips the leading delimiter bytes ("//" or "/*", both 2
// bytes) and, for a block comment, the trailing "*/" (also 2 bytes) from a
// comment's raw protected-window text.
func trimCommentTail(raw []byte, head, tail int) []byte {
	end := len(raw) - tail
	if end < head {
		end = head
	}
	if head > len(raw) {
		head = len(raw)
	}
	return raw[head:end]
}
