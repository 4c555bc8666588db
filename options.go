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

// options holds construction-time configuration. Kept unexported; callers
// configure it through Option values, same as the teacher's lexer.Option.
type options struct {
	deferDefinitionErrors bool
}

// An Option configures a Lexer at construction time.
type Option func(*options)

// WithDeferredDefinitionErrors makes New/NewSingleMode succeed even if the
// catalog fails validation. The errors are then available from
// (*Lexer).DefinitionErrors, and any subsequent call to Tokenize fails
// with the same aggregated error instead of panicking or silently
// scanning with a broken catalog.
func WithDeferredDefinitionErrors() Option {
	return func(o *options) {
		o.deferDefinitionErrors = true
	}
}

// tokenizeOptions holds per-call configuration for Tokenize.
type tokenizeOptions struct {
	initialMode string
}

// A TokenizeOption configures a single Tokenize call.
type TokenizeOption func(*tokenizeOptions)

// WithInitialMode overrides the mode the scan starts in. name must be a
// mode present in the catalog the Lexer was constructed with; otherwise
// Tokenize returns an error.
func WithInitialMode(name string) TokenizeOption {
	return func(o *tokenizeOptions) {
		o.initialMode = name
	}
}
