// Package ucum is a small UCUM (Unified Code for Units of Measure) unit
// algebra and expression evaluator: parsing and normalizing unit terms
// such as "kg.m/s2", reducing them to base units, testing equality and
// commensurability, and evaluating arithmetic expressions over dimensioned
// quantities such as "1 kg.m/s2 + 5 N".
//
// The grammar and reduction rules live in the term subpackage; the
// arithmetic-expression layer lives in expr. This file is a thin public
// front door over both.
package ucum

import (
	"fmt"
	"strings"

	"github.com/imhotep-nb/ucum/expr"
	"github.com/imhotep-nb/ucum/term"
)

// UnitTerm is a parsed, normalized product of units with a leading scalar
// magnitude.
type UnitTerm = term.UnitTerm

// Quantity is a scalar magnitude paired with a unit term.
type Quantity = expr.Quantity

// ParseUnitTerm parses a UCUM unit term string such as "kg.m/s2" or
// "[in_i'Hg]" into a normalized UnitTerm.
func ParseUnitTerm(s string) (*UnitTerm, error) {
	return term.Parse(s)
}

// dimensionSignatures maps a reduced base-unit signature (atom,exponent
// pairs, prefix and magnitude ignored) to a familiar dimension name. It is
// a display nicety only: Dimension never influences Eq or Commensurable.
var dimensionSignatures = map[string]string{
	"g1":           "mass",
	"m1":           "length",
	"s1":           "time",
	"C1.s-1":       "electric current",
	"K1":           "temperature",
	"mol1":         "amount of substance",
	"cd1":          "luminous intensity",
	"m1.s-1":       "velocity",
	"m1.s-2":       "acceleration",
	"s-1":          "frequency",
	"g1.m1.s-2":    "force",
	"g1.m2.s-2":    "energy",
	"g1.m2.s-3":    "power",
	"g1.m-1.s-2":   "pressure",
	"C1":           "electric charge",
	"C-1.g1.m2.s-2": "electric potential",
	"C-2.g1.m2.s-1": "electric resistance",
	"m3":           "volume",
}

// Dimension returns a familiar name for ut's dimension (e.g. "force" for
// "kg.m/s2"), or "" if reduction fails or no known composite matches.
func Dimension(ut *UnitTerm) string {
	reduced, err := term.AsBaseUnits(ut)
	if err != nil {
		return ""
	}
	var sb strings.Builder
	for i, u := range reduced.Units {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(u.Atom)
		fmt.Fprintf(&sb, "%d", u.Exponent)
	}
	return dimensionSignatures[sb.String()]
}

// Reduce rewrites ut to an equivalent term expressed in base units (and
// any opaque special-function/affine atoms the conversion table marks
// unreducible), folding every conversion factor encountered into the
// magnitude.
func Reduce(ut *UnitTerm) (*UnitTerm, error) {
	return term.AsBaseUnits(ut)
}

// Eq reports whether a and b denote the same unit under reduction:
// identical base-unit sequences and the same scalar from prefixes and
// conversion factors, so km and m are not Eq.
func Eq(a, b *UnitTerm) (bool, error) {
	return term.Eq(a, b)
}

// Commensurable reports whether a and b have the same dimension: equal
// base-unit sequences once prefixes are ignored.
func Commensurable(a, b *UnitTerm) (bool, error) {
	return term.Commensurable(a, b)
}

// EvaluateExpression lexes and folds an expression such as
// "1 kg.m/s2 + 5 N" into a single Quantity.
func EvaluateExpression(s string) (Quantity, error) {
	return expr.Evaluate(s)
}

// NewQuantity pairs mag with the unit term parsed from s.
func NewQuantity(mag float64, s string) (Quantity, error) {
	return expr.New(mag, s)
}

// FormatUnitTerm renders a UnitTerm back into UCUM unit-term syntax, the
// unprefixed-dimensionless term rendering as "1".
func FormatUnitTerm(ut *UnitTerm) string {
	if ut == nil || len(ut.Units) == 0 {
		return "1"
	}
	var sb strings.Builder
	for i, u := range ut.Units {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(u.Prefix)
		sb.WriteString(u.Atom)
		if u.Exponent != 1 {
			fmt.Fprintf(&sb, "%d", u.Exponent)
		}
		if u.Annotation != "" {
			fmt.Fprintf(&sb, "{%s}", u.Annotation)
		}
	}
	return sb.String()
}

// FormatQuantity renders q as "<mag> <unit term>", e.g. "6 N".
func FormatQuantity(q Quantity) string {
	return fmt.Sprintf("%g %s", q.Mag, FormatUnitTerm(q.Term))
}

// Context is a display convenience that pins a preferred output format for
// quantities under a named usage domain (e.g. "pressure" formatted in
// psi). It does not participate in parsing or algebra; it is purely for
// pretty-printing a Quantity a caller already has in hand.
type Context struct {
	Name   string
	Format string // a fmt verb pair: %[1]f for the magnitude, %[2]s for the unit term
}

var contexts = make(map[string]*Context)

// DefineContext registers a named display Context. An empty name creates
// an unregistered Context the caller keeps a reference to directly.
func DefineContext(name, format string) (*Context, error) {
	if name == "" {
		return &Context{Name: name, Format: format}, nil
	}
	if _, exists := contexts[name]; exists {
		return nil, fmt.Errorf("duplicate context: %s", name)
	}
	ctx := &Context{Name: name, Format: format}
	contexts[name] = ctx
	return ctx, nil
}

// Ctx looks up a registered Context by name, or nil if none was
// registered under that name.
func Ctx(name string) *Context {
	return contexts[name]
}

// FormatContext renders q using ctx's format string, with the magnitude
// as verb index 1 and the unit term string as verb index 2.
func (ctx *Context) FormatContext(q Quantity) string {
	return fmt.Sprintf(ctx.Format, q.Mag, FormatUnitTerm(q.Term))
}
