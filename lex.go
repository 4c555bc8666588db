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
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// A Lexer holds a validated, compiled token catalog for a set of modes. It
// is immutable after construction (defErr, the value DefinitionErrors
// returns, is set only by the constructor itself)
// and is therefore safe to share across goroutines: Tokenize allocates all
// of its own scan state per call.
type Lexer[C comparable] struct {
	modes     map[string]*compiledMode[C]
	groups    map[string]struct{}
	modeNames map[string]struct{}
	initial   string

	defErr error // aggregated DefinitionErrors, set only with WithDeferredDefinitionErrors
}

// New builds a Lexer from a mapping of mode name to descriptor list. The
// first error returned is a fatal, aggregated *multierror.Error describing
// every DefinitionError found across every mode, unless opts includes
// WithDeferredDefinitionErrors, in which case New succeeds despite them and
// the errors are retrievable from (*Lexer).DefinitionErrors. An initialMode
// not present in modes is reported as a plain error before validation runs,
// with or without that option.
func New[C comparable](modes map[string][]Descriptor[C], initialMode string, opts ...Option) (*Lexer[C], error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if _, ok := modes[initialMode]; !ok {
		return nil, fmt.Errorf("lex: initial mode %q is not defined", initialMode)
	}

	modeNames := make(map[string]struct{}, len(modes))
	for name := range modes {
		modeNames[name] = struct{}{}
	}

	var defErrs []*DefinitionError[C]
	for name, defs := range modes {
		validateMode(name, defs, modeNames, &defErrs)
	}

	l := &Lexer[C]{modeNames: modeNames, initial: initialMode}

	if len(defErrs) > 0 {
		agg := aggregateDefinitionErrors(defErrs)
		if !o.deferDefinitionErrors {
			return nil, agg
		}
		l.defErr = agg
		return l, nil
	}

	l.modes, l.groups = compileCatalog(modes)
	return l, nil
}

// NewSingleMode builds a Lexer with a single, implicitly named mode
// (DefaultMode). Use this when the catalog has no mode transitions.
func NewSingleMode[C comparable](defs []Descriptor[C], opts ...Option) (*Lexer[C], error) {
	return New(map[string][]Descriptor[C]{DefaultMode: defs}, DefaultMode, opts...)
}

// DefinitionErrors returns the aggregated construction-time error recorded
// when the Lexer was built with WithDeferredDefinitionErrors and the
// catalog failed validation. It returns nil for a Lexer built successfully
// or without that option.
func (l *Lexer[C]) DefinitionErrors() error {
	return l.defErr
}

// aggregateDefinitionErrors concatenates every DefinitionError into a
// single fatal error, per the construction contract in spec §4.1 ("fails
// fatally with all messages concatenated").
func aggregateDefinitionErrors[C comparable](errs []*DefinitionError[C]) error {
	var agg *multierror.Error
	for _, e := range errs {
		agg = multierror.Append(agg, e)
	}
	agg.ErrorFormat = func(es []error) string {
		s := fmt.Sprintf("%d definition error(s) found:", len(es))
		for _, e := range es {
			s += "\n\t* " + e.Error()
		}
		return s
	}
	return agg
}

// scanState holds everything a single Tokenize call mutates. The compiled
// mode tables it reads are shared and never written to.
type scanState[C comparable] struct {
	input string
	pos   int
	line  int
	col   int

	modeStack []string
	current   *compiledMode[C]

	tokens []Token[C]
	groups map[string][]Token[C]
	errs   []LexError
}

// Tokenize scans input according to the Lexer's compiled catalog, starting
// in the mode named by WithInitialMode (or the Lexer's own default mode if
// not given). It returns an error and an empty Result only for deferred
// definition errors or an undefined initial mode; otherwise it returns a
// complete Result. Lexing errors never abort the scan, they only appear in
// Result.Errors.
func (l *Lexer[C]) Tokenize(input string, opts ...TokenizeOption) (Result[C], error) {
	if l.defErr != nil {
		return Result[C]{}, l.defErr
	}

	var to tokenizeOptions
	to.initialMode = l.initial
	for _, opt := range opts {
		opt(&to)
	}
	cm, ok := l.modes[to.initialMode]
	if !ok {
		return Result[C]{}, fmt.Errorf("lex: mode %q is not defined", to.initialMode)
	}

	groups := make(map[string][]Token[C], len(l.groups))
	for g := range l.groups {
		groups[g] = []Token[C]{}
	}

	s := &scanState[C]{
		input:     input,
		pos:       0,
		line:      1,
		col:       1,
		modeStack: []string{to.initialMode},
		current:   cm,
		tokens:    []Token[C]{},
		groups:    groups,
		errs:      []LexError{},
	}

	for s.pos < len(s.input) {
		l.step(s)
	}

	return Result[C]{Tokens: s.tokens, Groups: s.groups, Errors: s.errs}, nil
}

// step runs one iteration of the main loop: find the first matching
// pattern (applying the longer-alt override), dispatch it, or fall back to
// error recovery if nothing matches. It is the direct implementation of
// the Lex Loop's "Main iteration" in spec §4.3.
func (l *Lexer[C]) step(s *scanState[C]) {
	rest := s.input[s.pos:]
	idx, m := firstMatch(s.current, rest)
	if idx < 0 {
		l.recover(s)
		return
	}

	if alt := s.current.longerAltIdx[idx]; alt >= 0 {
		if loc := s.current.patterns[alt].FindStringIndex(rest); loc != nil {
			altLen := loc[1] - loc[0]
			if altLen > len(m) {
				idx = alt
				m = rest[:altLen]
			}
		}
	}

	l.emit(s, idx, m)
}

// firstMatch returns the index and lexeme of the first pattern in cm that
// matches at the very start of rest, or (-1, "") if none does. Patterns
// are pre-anchored with \A by anchorPattern, so FindStringIndex never
// matches anywhere but position zero.
func firstMatch[C comparable](cm *compiledMode[C], rest string) (int, string) {
	for i, re := range cm.patterns {
		if loc := re.FindStringIndex(rest); loc != nil {
			return i, rest[:loc[1]]
		}
	}
	return -1, ""
}

// emit constructs (or discards, for a SKIPPED group) the token for a
// successful match at pattern index idx with lexeme m, advances scan
// position and line/column, and applies any mode-stack transition.
func (l *Lexer[C]) emit(s *scanState[C], idx int, m string) {
	cm := s.current
	startOffset, startLine, startCol := s.pos, s.line, s.col
	length := len(m)

	s.pos += length
	s.col += length

	var endLine, endCol int
	hasEnd := true

	if cm.canLineTerminate[idx] {
		count := countLineTerminators(m)
		if count > 0 {
			lastLTIdx := lastLineTerminatorIndex(m)
			s.line += count
			s.col = length - lastLTIdx
			lastCharIsLT := lastLTIdx == length-1
			if count == 1 && lastCharIsLT {
				hasEnd = false
			} else {
				delta := 0
				if lastCharIsLT {
					delta = 1
				}
				endLine = s.line - delta
				endCol = s.col - 1 + delta
			}
		} else {
			endLine, endCol = s.line, s.col-1
		}
	} else {
		endLine, endCol = startLine, startCol+length-1
	}

	group := cm.group[idx]
	if group != Skipped {
		tok := Token[C]{
			Image:       m,
			StartOffset: startOffset,
			StartLine:   startLine,
			StartColumn: startCol,
			Class:       cm.ownerClass[idx],
		}
		if hasEnd {
			tok.EndLine, tok.EndColumn = endLine, endCol
		}
		if group == Default {
			s.tokens = append(s.tokens, tok)
		} else {
			s.groups[group] = append(s.groups[group], tok)
		}
	}

	l.transition(s, idx)
}

// transition applies a matched pattern's mode-stack directives. Popping
// happens before pushing, so a single token can both pop and push
// (replacing the current mode), preserving the source behavior spec §9
// calls out explicitly. Popping the last remaining mode is a recoverable
// lexing error: the stack is left as-is and the token that triggered it
// has already been emitted.
func (l *Lexer[C]) transition(s *scanState[C], idx int) {
	cm := s.current
	if cm.popMode[idx] {
		if len(s.modeStack) <= 1 {
			s.errs = append(s.errs, LexError{
				Line: s.line, Column: s.col, Length: 0,
				Message: "mode stack underflow: pop_mode with no enclosing mode",
			})
		} else {
			s.modeStack = s.modeStack[:len(s.modeStack)-1]
		}
	}
	if push := cm.pushMode[idx]; push != "" {
		s.modeStack = append(s.modeStack, push)
	}
	s.current = l.modes[s.modeStack[len(s.modeStack)-1]]
}

// recover implements byte-by-byte skip-and-resync error recovery: it
// advances one byte at a time, starting a new line on \n or on a \r not
// followed by \n and otherwise advancing the column by one (the Unicode
// separators U+2028/U+2029 are not treated as line terminators here),
// until some pattern in the current
// mode matches again or the input is exhausted. The skipped span is
// reported as a single LexError.
func (l *Lexer[C]) recover(s *scanState[C]) {
	errOffset, errLine, errCol := s.pos, s.line, s.col

	for s.pos < len(s.input) {
		b := s.input[s.pos]
		if b == '\n' || (b == '\r' && !(s.pos+1 < len(s.input) && s.input[s.pos+1] == '\n')) {
			s.line++
			s.col = 1
		} else {
			s.col++
		}
		s.pos++

		if s.pos >= len(s.input) {
			break
		}
		if idx, _ := firstMatch(s.current, s.input[s.pos:]); idx >= 0 {
			break
		}
	}

	s.errs = append(s.errs, LexError{
		Line: errLine, Column: errCol, Length: s.pos - errOffset,
		Message: fmt.Sprintf("unexpected character: %q", s.input[errOffset:s.pos]),
	})
}
