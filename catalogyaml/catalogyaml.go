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

// Package catalogyaml loads a lex.Descriptor catalog from a YAML document,
// for callers who'd rather keep their token catalog as data than as Go
// source. It is decoupled from any specific class identity type: the
// caller supplies classOf to map the document's string class names onto
// their own C.
//
// Schema:
//
//	modes:
//	  default_mode:
//	    - class: Identifier
//	      pattern: '[a-zA-Z_]\w*'
//	    - class: Do
//	      pattern: 'do'
//	      longer_alt: Identifier
//	      group: default
//	    - class: Space
//	      pattern: '\s+'
//	      group: skipped
//	    - class: Keyword
//	      pattern: not_applicable
//	      push_mode: other_mode
//	      pop_mode: false
//
// group accepts "default", "skipped", or any other string (a named
// bucket); pattern set to "not_applicable" marks a category-only
// descriptor, and an omitted pattern is passed through empty so that
// lex.New reports it as MISSING_PATTERN. line_breaks, when present, is a literal
// true/false; when absent the engine derives it by inspection.
package catalogyaml

import (
	"fmt"
	"io"

	"github.com/tablelex/lex"
	"gopkg.in/yaml.v3"
)

// rawDescriptor mirrors the YAML shape of one catalog entry prior to
// resolving its class name to the caller's C via classOf.
type rawDescriptor struct {
	Class      string `yaml:"class"`
	Pattern    string `yaml:"pattern"`
	Group      string `yaml:"group"`
	LongerAlt  string `yaml:"longer_alt"`
	PushMode   string `yaml:"push_mode"`
	PopMode    bool   `yaml:"pop_mode"`
	LineBreaks *bool  `yaml:"line_breaks"`
}

type document struct {
	Modes map[string][]rawDescriptor `yaml:"modes"`
}

// Load parses a YAML catalog document from r into the map[string][]Descriptor[C]
// shape lex.New accepts. classOf maps a document's class name string to
// the caller's concrete class identity; it returns false for a name the
// caller doesn't recognize, which Load reports as an error naming the
// offending mode and class.
func Load[C comparable](r io.Reader, classOf func(string) (C, bool)) (map[string][]lex.Descriptor[C], error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("catalogyaml: %w", err)
	}

	out := make(map[string][]lex.Descriptor[C], len(doc.Modes))
	for mode, raws := range doc.Modes {
		defs := make([]lex.Descriptor[C], 0, len(raws))
		for _, raw := range raws {
			d, err := resolve(mode, raw, classOf)
			if err != nil {
				return nil, err
			}
			defs = append(defs, d)
		}
		out[mode] = defs
	}
	return out, nil
}

func resolve[C comparable](mode string, raw rawDescriptor, classOf func(string) (C, bool)) (lex.Descriptor[C], error) {
	class, ok := classOf(raw.Class)
	if !ok {
		return lex.Descriptor[C]{}, fmt.Errorf("catalogyaml: mode %q: unknown class %q", mode, raw.Class)
	}

	pattern := raw.Pattern
	switch pattern {
	case "":
		// left as "" so the Pattern Validator reports MISSING_PATTERN
		// rather than Load silently defaulting it.
	case "not_applicable":
		pattern = lex.NotApplicable
	}

	group := raw.Group
	if group == "skipped" {
		group = lex.Skipped
	}

	d := lex.Descriptor[C]{
		Class:      class,
		Pattern:    pattern,
		Group:      group,
		PushMode:   raw.PushMode,
		PopMode:    raw.PopMode,
		LineBreaks: raw.LineBreaks,
	}

	if raw.LongerAlt != "" {
		alt, ok := classOf(raw.LongerAlt)
		if !ok {
			return lex.Descriptor[C]{}, fmt.Errorf("catalogyaml: mode %q: class %q references unknown longer_alt %q", mode, raw.Class, raw.LongerAlt)
		}
		d.LongerAlt = &alt
	}

	return d, nil
}
