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

/*
Package lex provides a table-driven lexer engine: given a catalog of token
descriptors (a regular expression, a group, and some optional mode-stack
directives per descriptor) it scans a complete input string into a sequence
of typed tokens, recovering from unmatched input instead of aborting.

Clients supply the catalog; the package supplies the scanning loop, the
position bookkeeping, and the mode stack. There is no hand-written state
machine to implement for a new language: the catalog is data.

Catalogs and modes

A catalog is either a flat list of Descriptor values (one implicit mode,
DefaultMode) or a map from mode name to descriptor list, for languages
that need context-sensitive scanning (attribute values inside a tag,
template text inside a directive, and so on). Each mode's descriptors are
tried in declaration order; the caller controls priority by ordering more
specific patterns before more general ones.

	Identifier = /[a-zA-Z_]\w* /
	Do         = /do/      LongerAlt: Identifier
	While      = /while/   LongerAlt: Identifier

Declared in the order Do, While, Identifier, the input "donald" matches Do
first (a substring match) but the longer-alt override re-tries Identifier,
which matches more text, so the token comes out as Identifier. This is the
classic keyword-vs-identifier problem and the engine resolves it by table
lookup rather than by special-casing keywords in caller code.

Groups

A descriptor's Group controls where a successful match ends up: Default
for the main token stream, Skipped to consume and discard (whitespace,
comments), or any other string to route into a named bucket in the
Result. Every named bucket mentioned anywhere in the catalog is present in
every Result, even when no input matched it.

Position tracking

Every emitted token carries its start (and, except for a token whose only
line terminator is its last character, its end) line and column,
1-based, with column counted in bytes. Lines are separated by \n, a bare
\r, \r\n (counted once), or either Unicode line-breaking character
(U+2028, U+2029); a descriptor opts into line-terminator-aware position
math by setting LineBreaks, or leaves it to be derived from the pattern.

Error recovery

When no pattern in the current mode matches at the current position, the
engine does not stop: it skips one byte at a time, tracking line/column
through the skip (a \n or a bare \r starts a new line; every other byte,
including each byte of U+2028 and U+2029, advances the column), until some
pattern matches again or the input runs out. The skipped span becomes a
single LexError; scanning then resumes. A definition catalog that fails
validation (a bad pattern, a duplicate, a dangling push-mode reference) is
a different, earlier kind of failure — see DefinitionError — and is never
silently downgraded into a scan-time error.

Concurrency

A *Lexer built by New or NewSingleMode is immutable once construction
succeeds (errors aside) and may be shared across goroutines; each call to
Tokenize owns its own scan state and does not touch any other call's.
*/
package lex
