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

// DefaultMode is the implicit mode name used by NewSingleMode for callers
// that only need one set of descriptors active at a time.
const DefaultMode = "default_mode"

// Default is the group name used for tokens emitted to the main token
// stream. An empty Descriptor.Group (its zero value) is treated as
// Default, so descriptors that don't set Group default to it.
const Default = "default"

// skipped and notApplicable are NUL-delimited so that an ordinary pattern
// source or group name is very unlikely to equal a sentinel by accident.
// They are plain strings: any string with the same bytes compares equal.
const (
	skipped       = "\x00skipped\x00"
	notApplicable = "\x00not-applicable\x00"
)

// Skipped is the sentinel value for Descriptor.Group meaning "match and
// discard": the input is consumed and advances the scan position, mode
// transitions still apply, but no Token is produced.
const Skipped = skipped

// NotApplicable is the sentinel value for Descriptor.Pattern meaning "this
// descriptor is a category marker, never matched directly". Descriptors
// with this pattern are excluded from the compiled pattern arrays but
// remain valid LongerAlt targets.
const NotApplicable = notApplicable
