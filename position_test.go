package lex_test

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
	"github.com/tablelex/lex"
	"golang.org/x/text/width"
)

// displayWidth computes the width in terminal cells a byte slice would
// occupy, the same way the teacher's own line-reporting code did. It
// exists here only to prove a point: Column is a byte offset, not a
// display width, so a full-width rune spans as many columns as it has
// UTF-8 bytes (three for U+3042) even though it renders as two cells.
func displayWidth(s string) int {
	w := 0
	for i := 0; i < len(s); {
		r, n := utf8.DecodeRuneInString(s[i:])
		i += n
		switch width.LookupRune(r).Kind() {
		case width.EastAsianFullwidth, width.EastAsianWide:
			w += 2
		default:
			w += 1
		}
	}
	return w
}

func TestColumnIsByteOffsetNotDisplayWidth(t *testing.T) {
	l, err := lex.NewSingleMode([]lex.Descriptor[class]{
		{Class: classIdentifier, Pattern: `.`, Group: "runes"},
	})
	require.NoError(t, err)

	// U+3042 (hiragana "a") is 3 bytes in UTF-8 and renders full-width
	// (2 terminal cells), unlike the 1-byte, 1-cell ASCII 'a' that
	// precedes it.
	input := "aあ"
	res, err := l.Tokenize(input)
	require.NoError(t, err)
	require.Len(t, res.Groups["runes"], 2)

	ascii, wide := res.Groups["runes"][0], res.Groups["runes"][1]
	require.Equal(t, 1, ascii.StartColumn)
	require.Equal(t, 2, wide.StartColumn)
	require.Equal(t, 4, wide.EndColumn) // 3 bytes wide; a display-width column would end at 3

	require.Equal(t, 1, displayWidth(ascii.Image))
	require.Equal(t, 2, displayWidth(wide.Image))
}
