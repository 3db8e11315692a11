package term

import (
	"fmt"

	"github.com/imhotep-nb/ucum/atom"
	"golang.org/x/exp/slices"
)

// ReductionError is raised when AsBaseUnits exceeds its recursion depth
// guard, a defense against a cyclic or malformed conversion table.
type ReductionError struct {
	Atom  string
	Depth int
}

func (e *ReductionError) Error() string {
	return fmt.Sprintf("reduction of %q exceeded max depth %d", e.Atom, e.Depth)
}

// maxReductionDepth bounds AsBaseUnits recursion. The conversion table is
// static and finite, so any real unit bottoms out long before this; it
// exists only to turn a malformed or cyclic table entry into an error
// instead of a stack overflow.
const maxReductionDepth = 32

// Normalize sorts units by atom symbol, coalesces adjacent units that
// share a (prefix, atom) pair by summing their exponents, and drops any
// unit whose combined exponent is zero. The dimensionless term normalizes
// to a nil slice.
func Normalize(units []atom.Unit) []atom.Unit {
	if len(units) == 0 {
		return nil
	}
	sorted := slices.Clone(units)
	slices.SortFunc(sorted, func(a, b atom.Unit) int {
		if a.Atom == b.Atom {
			return 0
		}
		if a.Atom < b.Atom {
			return -1
		}
		return 1
	})

	out := make([]atom.Unit, 0, len(sorted))
	for _, u := range sorted {
		if n := len(out); n > 0 && out[n-1].SameSymbol(u) {
			out[n-1].Exponent += u.Exponent
			if u.Annotation != "" {
				out[n-1].Annotation = u.Annotation
			}
			continue
		}
		out = append(out, u)
	}

	final := out[:0]
	for _, u := range out {
		if u.Exponent != 0 {
			final = append(final, u)
		}
	}
	if len(final) == 0 {
		return nil
	}
	return final
}

// Invert returns the unit term with every exponent negated and the
// magnitude replaced by its reciprocal.
func Invert(ut *UnitTerm) *UnitTerm {
	units := make([]atom.Unit, len(ut.Units))
	for i, u := range ut.Units {
		units[i] = u.Invert()
	}
	return &UnitTerm{Mag: 1 / ut.Mag, Units: units}
}

// Mul returns the product a*b: magnitudes multiply, unit lists concatenate
// and renormalize.
func Mul(a, b *UnitTerm) *UnitTerm {
	units := make([]atom.Unit, 0, len(a.Units)+len(b.Units))
	units = append(units, a.Units...)
	units = append(units, b.Units...)
	return &UnitTerm{Mag: a.Mag * b.Mag, Units: Normalize(units)}
}

// Div returns the quotient a/b, defined as a * invert(b).
func Div(a, b *UnitTerm) *UnitTerm {
	return Mul(a, Invert(b))
}

// AsBaseUnits reduces ut to an equivalent term expressed entirely in base
// units (and opaque atoms the conversion table marks unreducible), folding
// every conversion factor encountered into the magnitude. Each constituent
// unit is reduced independently and the results combined by multiplication,
// so a unit's own exponent and prefix scaling apply once, at the leaf.
func AsBaseUnits(ut *UnitTerm) (*UnitTerm, error) {
	result := &UnitTerm{Mag: ut.Mag}
	for _, u := range ut.Units {
		reduced, err := reduceUnit(u, 0)
		if err != nil {
			return nil, err
		}
		result = Mul(result, reduced)
	}
	result.Units = Normalize(result.Units)
	return result, nil
}

// reduceUnit reduces a single prefixed, exponentiated atom to base units,
// recursing through the conversion table until it reaches a base atom or an
// opaque sentinel (see atom.IsOpaque). The unit's own exponent is applied
// by raising the reduced term to that power; its prefix contributes
// 10^(prefixExponent * exponent) to the magnitude, or 1024^(n * exponent)
// for a binary prefix.
func reduceUnit(u atom.Unit, depth int) (*UnitTerm, error) {
	if depth > maxReductionDepth {
		return nil, &ReductionError{Atom: u.Atom, Depth: maxReductionDepth}
	}

	conv, ok := atom.Lookup(u.Atom)
	if !ok {
		leaf := &UnitTerm{Mag: 1, Units: []atom.Unit{{Atom: u.Atom, Exponent: 1}}}
		return applyPrefixAndExponent(leaf, u)
	}

	if atom.IsOpaque(conv.RHS) || conv.RHS == u.Atom {
		leaf := &UnitTerm{Mag: conv.Factor, Units: []atom.Unit{{Atom: u.Atom, Exponent: 1}}}
		return applyPrefixAndExponent(leaf, u)
	}

	rhsTerm, err := Parse(conv.RHS)
	if err != nil {
		// An RHS that does not parse is kept opaque, like a sentinel.
		leaf := &UnitTerm{Mag: conv.Factor, Units: []atom.Unit{{Atom: u.Atom, Exponent: 1}}}
		return applyPrefixAndExponent(leaf, u)
	}
	reduced, err := reduceTermUnits(rhsTerm, depth+1)
	if err != nil {
		return nil, err
	}
	reduced.Mag *= conv.Factor
	return applyPrefixAndExponent(reduced, u)
}

// reduceTermUnits reduces every constituent unit of a UnitTerm (used while
// expanding a conversion table RHS, which is itself a unit term) and
// combines the results, without applying any outer prefix or exponent.
func reduceTermUnits(ut *UnitTerm, depth int) (*UnitTerm, error) {
	result := &UnitTerm{Mag: ut.Mag}
	for _, u := range ut.Units {
		r, err := reduceUnit(u, depth)
		if err != nil {
			return nil, err
		}
		result = Mul(result, r)
	}
	return result, nil
}

// applyPrefixAndExponent raises base (already reduced, unit exponent 1) to
// u's exponent and scales by u's prefix, returning the combined term.
func applyPrefixAndExponent(base *UnitTerm, u atom.Unit) (*UnitTerm, error) {
	exp := int(u.Exponent)
	mag := 1.0
	if u.Prefix != "" {
		if pe, ok := atom.PrefixExponents[u.Prefix]; ok {
			mag *= pow10(pe * exp)
		} else if be, ok := atom.BinaryPrefixExponents[u.Prefix]; ok {
			mag *= pow2(10 * be * exp)
		}
	}

	units := make([]atom.Unit, len(base.Units))
	for i, bu := range base.Units {
		bu.Exponent *= u.Exponent
		units[i] = bu
	}
	baseMag := base.Mag
	if exp != 1 {
		baseMag = powf(base.Mag, float64(exp))
	}
	return &UnitTerm{Mag: mag * baseMag, Units: Normalize(units)}, nil
}

func pow10(n int) float64 {
	return powf(10, float64(n))
}

func pow2(n int) float64 {
	return powf(2, float64(n))
}

func powf(base, exp float64) float64 {
	if exp == 0 {
		return 1
	}
	neg := exp < 0
	if neg {
		exp = -exp
	}
	result := 1.0
	for i := 0; i < int(exp); i++ {
		result *= base
	}
	if neg {
		return 1 / result
	}
	return result
}

// Eq reports whether a and b denote the same unit under reduction: equal
// base-unit lists (same atom and exponent, in any order) AND equal
// intrinsic reduction scalar. Reduction folds every prefix and conversion
// factor into the magnitude rather than retaining it on the unit (see
// reduceUnit), so a prefix never survives as a structural difference
// between two reduced unit lists — km and m both reduce to the bare atom
// m. Eq's prefix sensitivity therefore has to come from the scalar side:
// km's units alone reduce with a factor of 1000, m's with a factor of 1,
// so they carry the same unit list but are not Eq. That scalar is computed
// from a and b's unit lists alone (Mag pinned to 1 before reducing), not
// from AsBaseUnits(a).Mag/AsBaseUnits(b).Mag directly — a and b may each
// already carry their own unrelated numeric literal (e.g. "2 s/m" parses
// to Mag 2), which must not affect whether the *units* are equal.
// Commensurable drops this scalar check, so it collapses exactly the
// cases that differ only by prefix.
func Eq(a, b *UnitTerm) (bool, error) {
	ra, err := AsBaseUnits(a)
	if err != nil {
		return false, err
	}
	rb, err := AsBaseUnits(b)
	if err != nil {
		return false, err
	}
	if !sameUnits(ra.Units, rb.Units) {
		return false, nil
	}
	sa, err := reductionScalar(a.Units)
	if err != nil {
		return false, err
	}
	sb, err := reductionScalar(b.Units)
	if err != nil {
		return false, err
	}
	return floatsEqual(sa, sb), nil
}

// reductionScalar is the scalar AsBaseUnits would fold into the magnitude
// of a bare unit list (Mag 1), independent of whatever numeric literal the
// owning UnitTerm itself carries.
func reductionScalar(units []atom.Unit) (float64, error) {
	r, err := AsBaseUnits(&UnitTerm{Mag: 1, Units: units})
	if err != nil {
		return 0, err
	}
	return r.Mag, nil
}

// Commensurable reports whether a and b reduce to the same base units,
// ignoring any difference in reduced magnitude: e.g. km and m are
// commensurable but not Eq.
func Commensurable(a, b *UnitTerm) (bool, error) {
	ra, err := AsBaseUnits(a)
	if err != nil {
		return false, err
	}
	rb, err := AsBaseUnits(b)
	if err != nil {
		return false, err
	}
	return sameUnits(ra.Units, rb.Units), nil
}

// floatsEqual compares two reduced magnitudes with a relative tolerance,
// absorbing the rounding that accumulates across chained conversion-table
// multiplications (e.g. dyn's multi-step reduction through N).
func floatsEqual(a, b float64) bool {
	if a == b {
		return true
	}
	diff := absf(a - b)
	scale := absf(a)
	if absf(b) > scale {
		scale = absf(b)
	}
	if scale == 0 {
		return diff < 1e-12
	}
	return diff/scale < 1e-9
}

func absf(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func sameUnits(a, b []atom.Unit) bool {
	if len(a) != len(b) {
		return false
	}
	key := func(u atom.Unit) atom.Unit {
		u.Annotation = ""
		return u
	}
	sa := make([]atom.Unit, len(a))
	sb := make([]atom.Unit, len(b))
	for i, u := range a {
		sa[i] = key(u)
	}
	for i, u := range b {
		sb[i] = key(u)
	}
	less := func(x, y atom.Unit) int {
		if x.Atom != y.Atom {
			if x.Atom < y.Atom {
				return -1
			}
			return 1
		}
		if x.Prefix != y.Prefix {
			if x.Prefix < y.Prefix {
				return -1
			}
			return 1
		}
		return int(x.Exponent) - int(y.Exponent)
	}
	slices.SortFunc(sa, less)
	slices.SortFunc(sb, less)
	for i := range sa {
		if sa[i] != sb[i] {
			return false
		}
	}
	return true
}
