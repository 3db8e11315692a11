package term

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) *UnitTerm {
	t.Helper()
	ut, err := Parse(s)
	require.NoError(t, err)
	return ut
}

func TestEqForceReducesDerivedUnits(t *testing.T) {
	cases := []struct{ a, b string }{
		{"m.kg/s2", "N"},
		{"N/m2", "Pa"},
		{"g.cm/s2", "dyn"},
	}
	for _, c := range cases {
		eq, err := Eq(mustParse(t, c.a), mustParse(t, c.b))
		require.NoError(t, err)
		require.Truef(t, eq, "%s should reduce equal to %s", c.a, c.b)
	}
}

func TestEqRejectsMismatchedDimensions(t *testing.T) {
	eq, err := Eq(mustParse(t, "kg.m/s"), mustParse(t, "N"))
	require.NoError(t, err)
	require.False(t, eq)
}

func TestCommensurableIgnoresPrefix(t *testing.T) {
	ok, err := Commensurable(mustParse(t, "km"), mustParse(t, "m"))
	require.NoError(t, err)
	require.True(t, ok)

	eq, err := Eq(mustParse(t, "km"), mustParse(t, "m"))
	require.NoError(t, err)
	require.False(t, eq)
}

func TestInvertIsInvolutive(t *testing.T) {
	a := mustParse(t, "kg.m/s2")
	twice := Invert(Invert(a))
	eq, err := Eq(a, twice)
	require.NoError(t, err)
	require.True(t, eq)
	require.InDelta(t, a.Mag, twice.Mag, 1e-12)
}

func TestMulIsCommutativeUnderReduction(t *testing.T) {
	a := mustParse(t, "kg.m/s2")
	b := mustParse(t, "s/m")
	ab := Mul(a, b)
	ba := Mul(b, a)
	eq, err := Eq(ab, ba)
	require.NoError(t, err)
	require.True(t, eq)
	require.InDelta(t, ab.Mag, ba.Mag, 1e-12)
}

func TestDivBySelfIsDimensionless(t *testing.T) {
	a := mustParse(t, "kg.m/s2")
	ratio, err := AsBaseUnits(Div(a, a))
	require.NoError(t, err)
	require.Empty(t, ratio.Units)
	require.InDelta(t, 1.0, ratio.Mag, 1e-12)
}

func TestAsBaseUnitsTerminatesForBaseAtoms(t *testing.T) {
	for _, sym := range []string{"m", "s", "g", "K", "mol", "cd", "rad", "C", "sr"} {
		_, err := AsBaseUnits(mustParse(t, sym))
		require.NoErrorf(t, err, "atom %s should reduce without error", sym)
	}
}

func TestNormalizedListsHaveNoAdjacentDuplicates(t *testing.T) {
	ut := mustParse(t, "m.m.kg.kg")
	seen := map[string]bool{}
	for _, u := range ut.Units {
		key := u.Prefix + u.Atom
		require.Falsef(t, seen[key], "duplicate symbol %s survived normalization", key)
		seen[key] = true
	}
}
