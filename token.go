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

import "fmt"

// A Token is one lexeme matched by the engine.
//
// EndLine and EndColumn are left at their zero value when the match's only
// line terminator is its last character: per the trailing-line-terminator
// rule, such a terminator is treated as affecting only the token that
// follows, not this one.
type Token[C comparable] struct {
	Image       string // the matched substring
	StartOffset int    // 0-based byte offset of the first character
	StartLine   int    // 1-based
	StartColumn int    // 1-based
	EndLine     int    // 1-based; 0 if unset (see trailing-LT rule)
	EndColumn   int    // 1-based; 0 if unset (see trailing-LT rule)
	Class       C
}

// Position formats the token's start position as "line:column", the same
// shape the teacher's token.Position.String used for a file position.
func (t Token[C]) Position() string {
	return fmt.Sprintf("%d:%d", t.StartLine, t.StartColumn)
}

// A LexError is a recoverable lexing error: some span of the input matched
// no pattern in the current mode and was skipped during resync.
type LexError struct {
	Line    int // 1-based line of the first skipped character
	Column  int // 1-based column of the first skipped character
	Length  int // number of bytes skipped
	Message string
}

func (e LexError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

// A Result is the outcome of a single Tokenize call.
type Result[C comparable] struct {
	// Tokens is the main token stream: every Default-group match, in
	// match order.
	Tokens []Token[C]

	// Groups maps every named group declared anywhere in the catalog to
	// the ordered sequence of tokens routed to it. A declared group with
	// no matches is present with a nil/empty slice, never absent.
	Groups map[string][]Token[C]

	// Errors is the ordered sequence of recoverable lexing errors
	// encountered while scanning.
	Errors []LexError
}
