package expr

import (
	"testing"

	"github.com/imhotep-nb/ucum/term"
	"github.com/stretchr/testify/require"
)

func TestEvaluateMultipliesQuantities(t *testing.T) {
	q, err := Evaluate("1 kg.m/s2 * 2 s/m")
	require.NoError(t, err)
	require.InDelta(t, 2.0, q.Mag, 1e-9)

	want, err := term.Parse("kg/s")
	require.NoError(t, err)
	eq, err := term.Eq(q.Term, want)
	require.NoError(t, err)
	require.True(t, eq)
}

func TestEvaluateDividesQuantities(t *testing.T) {
	q, err := Evaluate("1 kg.m/s2 / 2 m/s")
	require.NoError(t, err)
	require.InDelta(t, 0.5, q.Mag, 1e-9)

	want, err := term.Parse("kg/s")
	require.NoError(t, err)
	eq, err := term.Eq(q.Term, want)
	require.NoError(t, err)
	require.True(t, eq)
}

func TestEvaluateAddsQuantitiesWithEqualTerms(t *testing.T) {
	q, err := Evaluate("1 kg.m/s2 + 5 N")
	require.NoError(t, err)
	require.InDelta(t, 6.0, q.Mag, 1e-9)

	want, err := term.Parse("N")
	require.NoError(t, err)
	eq, err := term.Eq(q.Term, want)
	require.NoError(t, err)
	require.True(t, eq)
}

func TestEvaluateAddsAcrossDifferingPrefixes(t *testing.T) {
	q, err := Evaluate("1 km + 500 m")
	require.NoError(t, err)
	require.InDelta(t, 1.5, q.Mag, 1e-9)

	want, err := term.Parse("km")
	require.NoError(t, err)
	eq, err := term.Eq(q.Term, want)
	require.NoError(t, err)
	require.True(t, eq)
}

func TestEvaluateRejectsDimensionalMismatch(t *testing.T) {
	_, err := Evaluate("10 kg.m/s + 5 N")
	require.Error(t, err)
	var dimErr *DimensionError
	require.ErrorAs(t, err, &dimErr)
}

func TestEvaluateRejectsMissingOperator(t *testing.T) {
	_, err := Evaluate("1 kg.m/s 2 s/m")
	require.Error(t, err)
}

func TestEvaluateRejectsLeadingOperator(t *testing.T) {
	_, err := Evaluate("+ 5 N")
	require.Error(t, err)
}

func TestEvaluateIgnoresSpaceBetweenMagnitudeAndTerm(t *testing.T) {
	a, err := Evaluate("1 kg.m/s2")
	require.NoError(t, err)
	b, err := Evaluate("1kg.m/s2")
	require.NoError(t, err)
	require.Equal(t, a.Mag, b.Mag)
	eq, err := term.Eq(a.Term, b.Term)
	require.NoError(t, err)
	require.True(t, eq)
}

func TestEvaluateAnnotationSurvivesEmbeddedSpace(t *testing.T) {
	q, err := Evaluate("1 m{total length}")
	require.NoError(t, err)
	require.Len(t, q.Term.Units, 1)
	require.Equal(t, "total length", q.Term.Units[0].Annotation)
}
