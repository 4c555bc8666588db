package lex_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tablelex/lex"
)

type class int

const (
	classIdentifier class = iota
	classDo
	classWhile
	classSpace
	classLine
	classEOL
	classComment
	classEnter
	classExit
	classX
	classY
)

func classPtr(c class) *class { return &c }

func TestLongerAltKeywordVsIdentifier(t *testing.T) {
	l, err := lex.NewSingleMode([]lex.Descriptor[class]{
		{Class: classDo, Pattern: `do`, LongerAlt: classPtr(classIdentifier)},
		{Class: classWhile, Pattern: `while`, LongerAlt: classPtr(classIdentifier)},
		{Class: classIdentifier, Pattern: `[a-zA-Z_]\w*`},
		{Class: classSpace, Pattern: `\s+`, Group: lex.Skipped},
	})
	require.NoError(t, err)

	cases := []struct {
		name  string
		input string
		want  []class
	}{
		{"do", "do", []class{classDo}},
		{"donald", "donald", []class{classIdentifier}},
		{"do while", "do while", []class{classDo, classWhile}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res, err := l.Tokenize(c.input)
			require.NoError(t, err)
			require.Len(t, res.Tokens, len(c.want))
			for i, want := range c.want {
				require.Equal(t, want, res.Tokens[i].Class)
			}
		})
	}
}

func TestLineTrackingAcrossCRLF(t *testing.T) {
	no := false
	yes := true
	l, err := lex.NewSingleMode([]lex.Descriptor[class]{
		{Class: classLine, Pattern: `[^\r\n]+`, LineBreaks: &no},
		{Class: classEOL, Pattern: `\r\n|\r|\n`, Group: lex.Skipped, LineBreaks: &yes},
	})
	require.NoError(t, err)

	res, err := l.Tokenize("ab\r\ncd")
	require.NoError(t, err)
	require.Len(t, res.Tokens, 2)

	first := res.Tokens[0]
	require.Equal(t, "ab", first.Image)
	require.Equal(t, 1, first.StartLine)
	require.Equal(t, 1, first.StartColumn)
	require.Equal(t, 1, first.EndLine)
	require.Equal(t, 2, first.EndColumn)

	second := res.Tokens[1]
	require.Equal(t, "cd", second.Image)
	require.Equal(t, 2, second.StartLine)
	require.Equal(t, 1, second.StartColumn)
	require.Equal(t, 2, second.EndLine)
	require.Equal(t, 2, second.EndColumn)
}

func TestMultilineCommentTrailingLineTerminator(t *testing.T) {
	yes := true
	l, err := lex.NewSingleMode([]lex.Descriptor[class]{
		{Class: classComment, Pattern: `/\* x\n \*/\n`, LineBreaks: &yes},
		{Class: classIdentifier, Pattern: `[a-zA-Z_]\w*`},
	})
	require.NoError(t, err)

	res, err := l.Tokenize("/* x\n */\nrest")
	require.NoError(t, err)
	require.Len(t, res.Tokens, 2)
	require.Equal(t, 3, res.Tokens[1].StartLine)
	require.Equal(t, 1, res.Tokens[1].StartColumn)
}

func TestErrorRecovery(t *testing.T) {
	l, err := lex.NewSingleMode([]lex.Descriptor[class]{
		{Class: classIdentifier, Pattern: `[a-z]+`},
	})
	require.NoError(t, err)

	res, err := l.Tokenize("abc!!def")
	require.NoError(t, err)
	require.Len(t, res.Tokens, 2)
	require.Equal(t, "abc", res.Tokens[0].Image)
	require.Equal(t, 0, res.Tokens[0].StartOffset)
	require.Equal(t, "def", res.Tokens[1].Image)
	require.Equal(t, 5, res.Tokens[1].StartOffset)
	require.Equal(t, 1, res.Tokens[1].StartLine)
	require.Equal(t, 6, res.Tokens[1].StartColumn)

	require.Len(t, res.Errors, 1)
	require.Equal(t, lex.LexError{Line: 1, Column: 4, Length: 2, Message: res.Errors[0].Message}, res.Errors[0])
}

func TestModeStack(t *testing.T) {
	modes := map[string][]lex.Descriptor[class]{
		"M1": {
			{Class: classEnter, Pattern: `Enter`, PushMode: "M2"},
			{Class: classX, Pattern: `X`},
			{Class: classSpace, Pattern: ` +`, Group: lex.Skipped},
		},
		"M2": {
			{Class: classY, Pattern: `Y`},
			{Class: classExit, Pattern: `Exit`, PopMode: true},
			{Class: classSpace, Pattern: ` +`, Group: lex.Skipped},
		},
	}
	l, err := lex.New(modes, "M1")
	require.NoError(t, err)

	res, err := l.Tokenize("X Enter Y Exit X")
	require.NoError(t, err)
	require.Len(t, res.Errors, 0)
	want := []class{classX, classEnter, classY, classExit, classX}
	require.Len(t, res.Tokens, len(want))
	for i, w := range want {
		require.Equal(t, w, res.Tokens[i].Class)
	}

	// a pop_mode token with no enclosing mode left on the stack is a
	// recoverable lexing error; the offending token is still emitted.
	underflow, err := lex.NewSingleMode([]lex.Descriptor[class]{
		{Class: classExit, Pattern: `Exit`, PopMode: true},
	})
	require.NoError(t, err)
	res, err = underflow.Tokenize("Exit")
	require.NoError(t, err)
	require.Len(t, res.Tokens, 1)
	require.Equal(t, classExit, res.Tokens[0].Class)
	require.Len(t, res.Errors, 1)
}

func TestDefinitionErrorDuplicatePatterns(t *testing.T) {
	defs := []lex.Descriptor[class]{
		{Class: classX, Pattern: `a`},
		{Class: classY, Pattern: `a`},
	}

	_, err := lex.NewSingleMode(defs)
	require.Error(t, err)

	l, err := lex.NewSingleMode(defs, lex.WithDeferredDefinitionErrors())
	require.NoError(t, err)
	require.Error(t, l.DefinitionErrors())

	_, err = l.Tokenize("a")
	require.Error(t, err)
}

func TestEmptyInput(t *testing.T) {
	l, err := lex.NewSingleMode([]lex.Descriptor[class]{
		{Class: classX, Pattern: `x`, Group: "named"},
	})
	require.NoError(t, err)

	res, err := l.Tokenize("")
	require.NoError(t, err)
	require.Empty(t, res.Tokens)
	require.Empty(t, res.Errors)
	require.Contains(t, res.Groups, "named")
	require.Empty(t, res.Groups["named"])
}

func TestDeterminism(t *testing.T) {
	defs := []lex.Descriptor[class]{
		{Class: classDo, Pattern: `do`, LongerAlt: classPtr(classIdentifier)},
		{Class: classIdentifier, Pattern: `[a-zA-Z_]\w*`},
		{Class: classSpace, Pattern: `\s+`, Group: lex.Skipped},
	}
	input := "do donald do"

	l1, err := lex.NewSingleMode(defs)
	require.NoError(t, err)
	l2, err := lex.NewSingleMode(defs)
	require.NoError(t, err)

	res1, err := l1.Tokenize(input)
	require.NoError(t, err)
	res2, err := l2.Tokenize(input)
	require.NoError(t, err)
	require.Equal(t, res1, res2)
}

func TestSpanReproductionAndMonotonicOffsets(t *testing.T) {
	l, err := lex.NewSingleMode([]lex.Descriptor[class]{
		{Class: classIdentifier, Pattern: `[a-z]+`},
		{Class: classSpace, Pattern: ` +`, Group: lex.Skipped},
	})
	require.NoError(t, err)

	input := "abc !! def  ghi"
	res, err := l.Tokenize(input)
	require.NoError(t, err)

	type span struct {
		offset int
		text   string
	}
	var spans []span
	for _, tok := range res.Tokens {
		spans = append(spans, span{tok.StartOffset, tok.Image})
	}
	require.NotEmpty(t, res.Errors)

	// strictly increasing start_offset across emitted tokens
	for i := 1; i < len(spans); i++ {
		require.Greater(t, spans[i].offset, spans[i-1].offset)
	}

	var rebuilt string
	pos := 0
	for _, tok := range res.Tokens {
		if tok.StartOffset > pos {
			rebuilt += input[pos:tok.StartOffset]
		}
		rebuilt += tok.Image
		pos = tok.StartOffset + len(tok.Image)
	}
	rebuilt += input[pos:]
	require.Equal(t, input, rebuilt)
}
