// Copyright 2017-2020 Denis Bernard <db047h@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package lex

// A Descriptor is a caller-supplied description of one kind of token. The
// Class field is the descriptor's identity: callers can use any comparable
// type for it (an int-based enum, a string, or a dedicated named type) and
// the engine never interprets it beyond comparison and map-keying.
//
// All fields except Class and Pattern are optional.
type Descriptor[C comparable] struct {
	// Class identifies the kind of token this descriptor produces. It is
	// returned unchanged on every Token matched by this descriptor, and is
	// the target of other descriptors' LongerAlt references.
	Class C

	// Pattern is a regular expression matched against the remaining input
	// at the lexer's current position, or the sentinel NotApplicable if
	// this descriptor is a category marker never matched directly.
	//
	// Patterns are always matched as if anchored at the start of the
	// remaining input; the end-of-input anchor ($) and the multi-line flag
	// are forbidden (see DefinitionErrorKind).
	Pattern string

	// Group routes a successful match: Default (or "", the zero value) emits to
	// the main token stream, Skipped discards the match after consuming
	// it, and any other string routes the token to a named bucket in
	// Result.Groups.
	Group string

	// LongerAlt, if non-nil, names another descriptor's Class in the same
	// mode to re-try after this one matches. If the alternative matches a
	// strictly longer lexeme, it wins. This implements the classic
	// keyword-vs-identifier disambiguation without requiring patterns to
	// be mutually exclusive.
	LongerAlt *C

	// PushMode, if non-empty, names a mode to push onto the mode stack
	// after this descriptor's token is consumed.
	PushMode string

	// PopMode, if true, pops the mode stack after this descriptor's token
	// is consumed. If PushMode is also set, the pop happens before the
	// push (see DESIGN.md for why this order is preserved).
	PopMode bool

	// LineBreaks declares whether this pattern can match text containing a
	// line terminator. If nil, the Catalog Analyzer derives it by probing
	// the compiled pattern against sample line-terminator sequences and by
	// scanning the pattern source for line-terminator constructs.
	LineBreaks *bool
}
