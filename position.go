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

import "unicode/utf8"

// lineSeparator and paragraphSeparator are the two Unicode line-breaking
// characters outside the ASCII \n/\r pair. See SPEC_FULL.md §4.4 for why
// they're counted here too.
const (
	lineSeparator      = '\u2028'
	paragraphSeparator = '\u2029'
)

// countLineTerminators returns the number of line terminators in s. A line
// terminator is \n, a \r not immediately followed by \n, a \r\n pair
// (counted once), or a Unicode line/paragraph separator.
func countLineTerminators(s string) int {
	n := 0
	for i := 0; i < len(s); {
		b := s[i]
		switch {
		case b == '\n':
			n++
			i++
		case b == '\r':
			n++
			if i+1 < len(s) && s[i+1] == '\n' {
				i += 2
			} else {
				i++
			}
		case b < utf8.RuneSelf:
			i++
		default:
			r, w := utf8.DecodeRuneInString(s[i:])
			if r == lineSeparator || r == paragraphSeparator {
				n++
			}
			i += w
		}
	}
	return n
}

// lastLineTerminatorIndex returns the byte index, within s, of the last
// byte belonging to the last line terminator in s (for a \r\n pair, the
// index of the \n), or -1 if s contains none. Using the last byte of the
// sequence (rather than its first) keeps the index directly comparable to
// len(s)-1 regardless of whether the terminator is one byte (\n, \r) or
// three (the Unicode separators), which is what the column/end-of-token
// arithmetic in the lex loop relies on.
func lastLineTerminatorIndex(s string) int {
	idx := -1
	for i := 0; i < len(s); {
		b := s[i]
		switch {
		case b == '\n':
			idx = i
			i++
		case b == '\r':
			if i+1 < len(s) && s[i+1] == '\n' {
				idx = i + 1
				i += 2
			} else {
				idx = i
				i++
			}
		case b < utf8.RuneSelf:
			i++
		default:
			r, w := utf8.DecodeRuneInString(s[i:])
			if r == lineSeparator || r == paragraphSeparator {
				idx = i + w - 1
			}
			i += w
		}
	}
	return idx
}
