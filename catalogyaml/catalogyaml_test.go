package catalogyaml_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tablelex/lex"
	"github.com/tablelex/lex/catalogyaml"
)

type class int

const (
	classIdentifier class = iota
	classDo
	classSpace
)

func classOf(name string) (class, bool) {
	switch name {
	case "Identifier":
		return classIdentifier, true
	case "Do":
		return classDo, true
	case "Space":
		return classSpace, true
	default:
		return 0, false
	}
}

const doc = `
modes:
  default_mode:
    - class: Do
      pattern: 'do'
      longer_alt: Identifier
    - class: Identifier
      pattern: '[a-zA-Z_]\w*'
    - class: Space
      pattern: '\s+'
      group: skipped
`

func TestLoadAndConstruct(t *testing.T) {
	modes, err := catalogyaml.Load(strings.NewReader(doc), classOf)
	require.NoError(t, err)
	require.Contains(t, modes, "default_mode")
	require.Len(t, modes["default_mode"], 3)

	l, err := lex.New(modes, "default_mode")
	require.NoError(t, err)

	res, err := l.Tokenize("do donald")
	require.NoError(t, err)
	require.Len(t, res.Tokens, 2)
	require.Equal(t, classDo, res.Tokens[0].Class)
	require.Equal(t, classIdentifier, res.Tokens[1].Class)
}

func TestLoadUnknownClass(t *testing.T) {
	_, err := catalogyaml.Load(strings.NewReader(`
modes:
  default_mode:
    - class: Bogus
      pattern: 'x'
`), classOf)
	require.Error(t, err)
}

func TestLoadUnknownLongerAlt(t *testing.T) {
	_, err := catalogyaml.Load(strings.NewReader(`
modes:
  default_mode:
    - class: Do
      pattern: 'do'
      longer_alt: Bogus
`), classOf)
	require.Error(t, err)
}
