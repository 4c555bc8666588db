package lex

import (
	"strings"
	"testing"
)

type benchClass int

const (
	benchIdent benchClass = iota
	benchDo
	benchWhile
	benchSpace
)

func benchLexer(tb testing.TB) *Lexer[benchClass] {
	tb.Helper()
	l, err := NewSingleMode([]Descriptor[benchClass]{
		{Class: benchDo, Pattern: `do`, LongerAlt: ptr(benchIdent)},
		{Class: benchWhile, Pattern: `while`, LongerAlt: ptr(benchIdent)},
		{Class: benchIdent, Pattern: `[a-zA-Z_]\w*`},
		{Class: benchSpace, Pattern: `\s+`, Group: Skipped},
	})
	if err != nil {
		tb.Fatal(err)
	}
	return l
}

func ptr[T any](v T) *T { return &v }

func BenchmarkTokenize(b *testing.B) {
	l := benchLexer(b)
	input := strings.Repeat("do while donald ", 64)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := l.Tokenize(input); err != nil {
			b.Fatal(err)
		}
	}
}
