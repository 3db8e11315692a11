package term

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/imhotep-nb/ucum/atom"
	"github.com/stretchr/testify/require"
)

func TestParseSortsAndCollectsUnits(t *testing.T) {
	ut, err := Parse("m.kg/s2")
	require.NoError(t, err)
	require.Equal(t, 1.0, ut.Mag)

	want := []atom.Unit{
		{Prefix: "k", Atom: "g", Exponent: 1},
		{Atom: "m", Exponent: 1},
		{Atom: "s", Exponent: -2},
	}
	if diff := cmp.Diff(want, ut.Units); diff != "" {
		t.Fatalf("unit list mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDivisionScalesMagnitude(t *testing.T) {
	ut, err := Parse("m.kg/5s2")
	require.NoError(t, err)
	require.InDelta(t, 0.2, ut.Mag, 1e-12)
}

func TestParseCoalescesRepeatedUnits(t *testing.T) {
	a, err := Parse("m.m.m")
	require.NoError(t, err)
	b, err := Parse("m3")
	require.NoError(t, err)
	if diff := cmp.Diff(b.Units, a.Units); diff != "" {
		t.Fatalf("m.m.m should normalize the same as m3 (-want +got):\n%s", diff)
	}
}

func TestParseAnnotationAttachesToPrecedingUnit(t *testing.T) {
	ut, err := Parse("m{meters}")
	require.NoError(t, err)
	require.Len(t, ut.Units, 1)
	require.Equal(t, "m", ut.Units[0].Atom)
	require.Equal(t, int8(1), ut.Units[0].Exponent)
	require.Equal(t, "meters", ut.Units[0].Annotation)
}

func TestParseDimensionless(t *testing.T) {
	ut, err := Parse("")
	require.NoError(t, err)
	require.Equal(t, 1.0, ut.Mag)
	require.Empty(t, ut.Units)
}

func TestParseRejectsLeadingDivision(t *testing.T) {
	_, err := Parse("/s")
	require.Error(t, err)
}

func TestParseRejectsDivisionByZero(t *testing.T) {
	_, err := Parse("m/0")
	require.Error(t, err)
}

func TestParseRejectsTrailingOperator(t *testing.T) {
	_, err := Parse("m/")
	require.Error(t, err)
}
