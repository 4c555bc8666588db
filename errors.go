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

// A DefinitionErrorKind identifies why a Descriptor was rejected at
// construction time.
type DefinitionErrorKind int

// Definition error kinds, per the catalog validation contract.
const (
	MissingPattern DefinitionErrorKind = iota
	InvalidPattern
	EOIAnchorFound
	UnsupportedFlagsFound
	DuplicatePatternsFound
	InvalidGroupTypeFound
	PushModeDoesNotExist
)

func (k DefinitionErrorKind) String() string {
	switch k {
	case MissingPattern:
		return "MISSING_PATTERN"
	case InvalidPattern:
		return "INVALID_PATTERN"
	case EOIAnchorFound:
		return "EOI_ANCHOR_FOUND"
	case UnsupportedFlagsFound:
		return "UNSUPPORTED_FLAGS_FOUND"
	case DuplicatePatternsFound:
		return "DUPLICATE_PATTERNS_FOUND"
	case InvalidGroupTypeFound:
		return "INVALID_GROUP_TYPE_FOUND"
	case PushModeDoesNotExist:
		return "PUSH_MODE_DOES_NOT_EXIST"
	default:
		return fmt.Sprintf("DefinitionErrorKind(%d)", int(k))
	}
}

// A DefinitionError describes one malformed descriptor found by the
// Pattern Validator. Construction does not stop at the first one: every
// descriptor in every mode is checked, and all resulting DefinitionErrors
// are aggregated (see New and WithDeferredDefinitionErrors).
type DefinitionError[C comparable] struct {
	Kind    DefinitionErrorKind
	Mode    string
	Classes []C // the offending descriptor(s); may be empty
	Message string
}

func (e *DefinitionError[C]) Error() string {
	if e.Mode == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: mode %q: %s", e.Kind, e.Mode, e.Message)
}
