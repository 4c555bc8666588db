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

import (
	"regexp"
	"strings"
)

// validateMode runs the Pattern Validator over one mode's descriptors. It
// never stops at the first problem: every descriptor is checked, and every
// DefinitionError found is appended to errs. modes is the full set of mode
// names, used to validate PushMode references.
func validateMode[C comparable](mode string, defs []Descriptor[C], modes map[string]struct{}, errs *[]*DefinitionError[C]) {
	seenPatterns := make(map[string]C)

	for _, d := range defs {
		if d.Pattern == "" {
			*errs = append(*errs, &DefinitionError[C]{
				Kind: MissingPattern, Mode: mode, Classes: []C{d.Class},
				Message: "descriptor has no Pattern (use NotApplicable for category-only descriptors)",
			})
			continue
		}

		if d.Pattern == NotApplicable {
			// category marker: not matched, not subject to the regex checks below.
		} else {
			if err := validatePatternSource(d.Pattern); err != "" {
				*errs = append(*errs, &DefinitionError[C]{
					Kind: InvalidPattern, Mode: mode, Classes: []C{d.Class},
					Message: err,
				})
				continue
			}
			if hasEOIAnchor(d.Pattern) {
				*errs = append(*errs, &DefinitionError[C]{
					Kind: EOIAnchorFound, Mode: mode, Classes: []C{d.Class},
					Message: "pattern contains a forbidden end-of-input anchor ($)",
				})
			}
			if hasMultilineFlag(d.Pattern) {
				*errs = append(*errs, &DefinitionError[C]{
					Kind: UnsupportedFlagsFound, Mode: mode, Classes: []C{d.Class},
					Message: "pattern sets the multi-line flag (?m), which is forbidden",
				})
			}
			if prior, ok := seenPatterns[d.Pattern]; ok {
				*errs = append(*errs, &DefinitionError[C]{
					Kind: DuplicatePatternsFound, Mode: mode, Classes: []C{prior, d.Class},
					Message: "two descriptors share the identical pattern " + strings.TrimSpace(d.Pattern),
				})
			} else {
				seenPatterns[d.Pattern] = d.Class
			}
		}

		if d.Group != Default && d.Group != Skipped && strings.Contains(d.Group, "\x00") {
			*errs = append(*errs, &DefinitionError[C]{
				Kind: InvalidGroupTypeFound, Mode: mode, Classes: []C{d.Class},
				Message: "Group uses a reserved internal sentinel value",
			})
		}

		if d.PushMode != "" {
			if _, ok := modes[d.PushMode]; !ok {
				*errs = append(*errs, &DefinitionError[C]{
					Kind: PushModeDoesNotExist, Mode: mode, Classes: []C{d.Class},
					Message: "PushMode names unknown mode " + strings.TrimSpace(d.PushMode),
				})
			}
		}
	}
}

// validatePatternSource reports why pattern fails to compile as a Go
// regexp, or "" if it's valid. NotApplicable is handled by the caller
// before this is invoked.
func validatePatternSource(pattern string) string {
	if _, err := regexp.Compile(pattern); err != nil {
		return "invalid regular expression: " + err.Error()
	}
	return ""
}

// hasEOIAnchor reports whether pattern contains an unescaped, not-inside-
// a-character-class '$'. Patterns are matched against a sliding prefix of
// the remaining input, so an end-of-input anchor can never usefully
// match and is rejected outright.
func hasEOIAnchor(pattern string) bool {
	inClass := false
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '\\':
			i++ // skip the escaped character
		case '[':
			inClass = true
		case ']':
			inClass = false
		case '$':
			if !inClass {
				return true
			}
		}
	}
	return false
}

// reMultilineFlag matches Go regexp inline flag groups that set the
// multi-line flag 'm'. Go's RE2 engine has no separate "global" flag (it
// has no sticky-match concept the way the contract in spec.md assumes);
// only the multi-line flag is meaningful to forbid here. See DESIGN.md.
var reMultilineFlag = regexp.MustCompile(`\(\?[a-zA-Z]*m[a-zA-Z]*[:)]`)

func hasMultilineFlag(pattern string) bool {
	return reMultilineFlag.MatchString(pattern)
}
