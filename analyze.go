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

// compiledMode holds one mode's descriptors compiled into the parallel
// arrays the Lex Loop dispatches against. Index i across all of these
// slices describes the same pattern.
type compiledMode[C comparable] struct {
	patterns         []*regexp.Regexp
	ownerClass       []C
	group            []string
	longerAltIdx     []int // -1 if unset
	canLineTerminate []bool
	pushMode         []string // "" if none
	popMode          []bool
}

// compileCatalog is the Catalog Analyzer: it turns a validated set of
// per-mode descriptor lists into compiled mode tables, plus the set of
// named groups that must appear (even empty) in every Result.
//
// Callers must have already run validateMode over every mode in modes;
// compileCatalog assumes the catalog is well-formed and will panic on a
// pattern that fails to compile (that case should have been caught as an
// InvalidPattern DefinitionError).
func compileCatalog[C comparable](modes map[string][]Descriptor[C]) (map[string]*compiledMode[C], map[string]struct{}) {
	compiled := make(map[string]*compiledMode[C], len(modes))
	groups := make(map[string]struct{})

	for name, defs := range modes {
		cm := &compiledMode[C]{}
		classIndex := make(map[C]int, len(defs))
		byClass := make(map[C]Descriptor[C], len(defs))

		for _, d := range defs {
			byClass[d.Class] = d

			group := d.Group
			if group == "" {
				group = Default
			}
			if group != Skipped && group != Default {
				groups[group] = struct{}{}
			}

			if d.Pattern == NotApplicable {
				continue
			}

			re := regexp.MustCompile(anchorPattern(d.Pattern))
			classIndex[d.Class] = len(cm.patterns)

			lineBreaks := d.LineBreaks
			canLT := false
			if lineBreaks != nil {
				canLT = *lineBreaks
			} else {
				canLT = derivesLineTerminating(re, d.Pattern)
			}

			cm.patterns = append(cm.patterns, re)
			cm.ownerClass = append(cm.ownerClass, d.Class)
			cm.group = append(cm.group, group)
			cm.longerAltIdx = append(cm.longerAltIdx, -1)
			cm.canLineTerminate = append(cm.canLineTerminate, canLT)
			cm.pushMode = append(cm.pushMode, d.PushMode)
			cm.popMode = append(cm.popMode, d.PopMode)
		}

		// second pass: longer-alt references are only resolvable once every
		// descriptor in the mode has a known index. A LongerAlt may name a
		// NotApplicable category descriptor rather than a matchable pattern
		// directly; resolveLongerAlt follows that category's own LongerAlt
		// until it lands on a real pattern, so the chain is honored even
		// when it passes through a category that never compiles a pattern
		// of its own.
		for _, d := range defs {
			if d.Pattern == NotApplicable || d.LongerAlt == nil {
				continue
			}
			slot, ok := classIndex[d.Class]
			if !ok {
				continue
			}
			if alt, ok := resolveLongerAlt(*d.LongerAlt, byClass, classIndex); ok {
				cm.longerAltIdx[slot] = alt
			}
		}

		compiled[name] = cm
	}

	return compiled, groups
}

// resolveLongerAlt follows a LongerAlt reference to its ultimate compiled
// slot. Most references name a class with its own pattern and resolve in
// one step; a reference that names a NotApplicable category descriptor
// instead follows that category's own LongerAlt, and so on, until a
// matchable slot is found, the chain runs out, or a cycle is detected.
func resolveLongerAlt[C comparable](class C, byClass map[C]Descriptor[C], classIndex map[C]int) (int, bool) {
	visited := make(map[C]struct{})
	for {
		if _, looped := visited[class]; looped {
			return 0, false
		}
		visited[class] = struct{}{}

		if slot, ok := classIndex[class]; ok {
			return slot, true
		}
		d, ok := byClass[class]
		if !ok || d.LongerAlt == nil {
			return 0, false
		}
		class = *d.LongerAlt
	}
}

// anchorPattern prepends Go regexp's absolute-start anchor so that a match
// is only ever attempted at position zero of the remaining input, per the
// regex contract in spec.md §6. \A is used instead of ^ because ^ is
// redefined by the multi-line flag while \A is not — even though the
// multi-line flag itself is rejected by the validator, \A is the more
// defensive choice.
func anchorPattern(pattern string) string {
	return `\A(?:` + pattern + `)`
}

// derivesLineTerminating implements the "by inspection" fallback for
// Descriptor.LineBreaks. It runs two checks: whether the compiled,
// anchored pattern matches a bare line terminator outright (catches
// whitespace-skipping and catch-all patterns), and whether the pattern's
// source text contains a construct commonly used to span line terminators
// (catches block-comment-style patterns that require delimiters around
// the terminator, which a bare match can't exercise). See DESIGN.md for
// why this execution+heuristic combination was chosen over parsing the
// pattern into a character-class AST.
func derivesLineTerminating(re *regexp.Regexp, source string) bool {
	for _, sample := range []string{"\n", "\r", "\r\n", "\u2028", "\u2029"} {
		if re.FindStringIndex(sample) != nil {
			return true
		}
	}
	for _, construct := range []string{`\n`, `\r`, `\s`, `(?s)`, `\x{2028}`, `\x{2029}`} {
		if strings.Contains(source, construct) {
			return true
		}
	}
	return false
}
