package term

import (
	"testing"

	"github.com/imhotep-nb/ucum/atom"
	"github.com/stretchr/testify/require"
)

func TestTokenizeAnnotationAttachesToUnit(t *testing.T) {
	tz := NewTokenizer("m{meters}")
	tok, err := tz.Next()
	require.NoError(t, err)
	require.Equal(t, TokUnit, tok.Kind)
	require.Equal(t, "m", tok.Symbol)
	require.Equal(t, int8(1), tok.Exponent)
	require.Equal(t, "meters", tok.Annotation)

	eof, err := tz.Next()
	require.NoError(t, err)
	require.Equal(t, TokEOF, eof.Kind)
}

func TestTokenizeSeparatedAnnotationIsItsOwnUnit(t *testing.T) {
	tz := NewTokenizer("m.{meters}")

	tok, err := tz.Next()
	require.NoError(t, err)
	require.Equal(t, TokUnit, tok.Kind)
	require.Equal(t, "m", tok.Symbol)
	require.Empty(t, tok.Annotation)

	mul, err := tz.Next()
	require.NoError(t, err)
	require.Equal(t, TokMul, mul.Kind)

	ann, err := tz.Next()
	require.NoError(t, err)
	require.Equal(t, TokUnit, ann.Kind)
	require.Equal(t, "", ann.Symbol)
	require.Equal(t, "meters", ann.Annotation)
}

func TestTokenizeUnmatchedClosingBraceIsLexError(t *testing.T) {
	tz := NewTokenizer("m}")
	_, err := tz.Next()
	require.NoError(t, err)
	_, err = tz.Next()
	require.Error(t, err)
}

func TestAtomTokenizeSplitsEveryPrefixedMetricAtom(t *testing.T) {
	for _, p := range atom.Prefixes {
		u := atom.Tokenize(p+"m", 1, "")
		require.Equalf(t, p, u.Prefix, "prefix %q over atom m", p)
		require.Equalf(t, "m", u.Atom, "prefix %q over atom m", p)
	}
}

func TestAtomTokenizeLeavesNonMetricAtomsUnsplit(t *testing.T) {
	for _, a := range []string{"[in_i]", "%", "gon", "deg", "min", "wk"} {
		u := atom.Tokenize(a, 1, "")
		require.Emptyf(t, u.Prefix, "atom %q should not split a prefix off", a)
		require.Equal(t, a, u.Atom)
	}
}

func TestAtomTokenizeDoesNotSplitMolIntoPrefixM(t *testing.T) {
	u := atom.Tokenize("mol", 1, "")
	require.Empty(t, u.Prefix)
	require.Equal(t, "mol", u.Atom)
}
