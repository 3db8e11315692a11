package expr

import (
	"fmt"

	"github.com/imhotep-nb/ucum/term"
)

// DimensionError is raised when '+' or '-' is applied to two quantities
// whose unit terms are not commensurable (different base units).
type DimensionError struct {
	Left, Right string
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("dimensional mismatch: %q is not commensurable with %q", e.Left, e.Right)
}

// Quantity is a scalar magnitude paired with a unit term.
type Quantity struct {
	Mag  float64
	Term *term.UnitTerm
}

// New parses s as a unit term and pairs it with mag.
func New(mag float64, s string) (Quantity, error) {
	ut, err := term.Parse(s)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Mag: mag * ut.Mag, Term: ut}, nil
}

// Add returns q+o. The two terms must be commensurable (same base units,
// prefix differences allowed and resolved via conversionFactor); the
// result carries the left operand's (unreduced) term, matching UCUM's
// convention of preserving the first operand's display unit.
func (q Quantity) Add(o Quantity) (Quantity, error) {
	ok, err := term.Commensurable(q.Term, o.Term)
	if err != nil {
		return Quantity{}, err
	}
	if !ok {
		return Quantity{}, &DimensionError{Left: display(q.Term), Right: display(o.Term)}
	}
	factor, err := conversionFactor(o.Term, q.Term)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Mag: q.Mag + o.Mag*factor, Term: q.Term}, nil
}

// Sub returns q-o, with the same commensurability requirement as Add.
func (q Quantity) Sub(o Quantity) (Quantity, error) {
	ok, err := term.Commensurable(q.Term, o.Term)
	if err != nil {
		return Quantity{}, err
	}
	if !ok {
		return Quantity{}, &DimensionError{Left: display(q.Term), Right: display(o.Term)}
	}
	factor, err := conversionFactor(o.Term, q.Term)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Mag: q.Mag - o.Mag*factor, Term: q.Term}, nil
}

// Mul returns q*o. Terms always compose, regardless of dimension.
func (q Quantity) Mul(o Quantity) Quantity {
	return Quantity{Mag: q.Mag * o.Mag, Term: term.Mul(q.Term, o.Term)}
}

// Div returns q/o. Terms always compose, regardless of dimension.
func (q Quantity) Div(o Quantity) Quantity {
	return Quantity{Mag: q.Mag / o.Mag, Term: term.Div(q.Term, o.Term)}
}

// conversionFactor returns the scalar that converts a magnitude expressed
// in "from" units into one expressed in "to" units, given the two terms
// are already known to be Commensurable. Both reduce to the same base units, so the
// ratio of their reduced magnitudes is exactly that scalar.
func conversionFactor(from, to *term.UnitTerm) (float64, error) {
	rf, err := term.AsBaseUnits(from)
	if err != nil {
		return 0, err
	}
	rt, err := term.AsBaseUnits(to)
	if err != nil {
		return 0, err
	}
	if rt.Mag == 0 {
		return 0, fmt.Errorf("unit %q reduces to a zero magnitude", display(to))
	}
	return rf.Mag / rt.Mag, nil
}

func display(ut *term.UnitTerm) string {
	if ut == nil || len(ut.Units) == 0 {
		return "1"
	}
	s := ""
	for i, u := range ut.Units {
		if i > 0 {
			s += "."
		}
		s += u.Prefix + u.Atom
		if u.Exponent != 1 {
			s += fmt.Sprintf("%d", u.Exponent)
		}
	}
	return s
}
