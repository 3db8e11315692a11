package term

import (
	"fmt"

	"github.com/imhotep-nb/ucum/atom"
)

// ParseError is a syntax error raised while folding a token stream into a
// UnitTerm: an operator with no operand, or a token that cannot legally
// follow a division.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in unit term: %s", e.Message)
}

// UnitTerm is a product of units with a leading scalar magnitude, the
// parsed and normalized form of a unit term string such as "kg.m/s2".
type UnitTerm struct {
	Mag   float64
	Units []atom.Unit
}

// Parse lexes and folds s into a normalized UnitTerm. The empty string
// yields the dimensionless term {Mag: 1, Units: nil}.
func Parse(s string) (*UnitTerm, error) {
	tz := NewTokenizer(s)
	ut := &UnitTerm{Mag: 1.0}
	first := true

	for {
		tok, err := tz.Next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == TokDiv && first {
			return nil, &ParseError{Message: "leading division '/' has no left-hand operand"}
		}
		if tok.Kind != TokEOF {
			first = false
		}
		switch tok.Kind {
		case TokEOF:
			ut.Units = Normalize(ut.Units)
			return ut, nil
		case TokMul:
			continue
		case TokDiv:
			if err := applyDiv(tz, ut); err != nil {
				return nil, err
			}
		case TokInt:
			ut.Mag *= float64(tok.Int)
		case TokUnit:
			ut.Units = append(ut.Units, tokenizeSymbol(tok))
		}
	}
}

// applyDiv consumes the token immediately following a '/' and applies it:
// a unit is appended inverted, an integer divides the magnitude. Any other
// token following '/' is a parse error — division only ever takes exactly
// one operand on its right, matching "/" as a binary, non-chaining operator.
func applyDiv(tz *Tokenizer, ut *UnitTerm) error {
	tok, err := tz.Next()
	if err != nil {
		return err
	}
	switch tok.Kind {
	case TokUnit:
		ut.Units = append(ut.Units, tokenizeSymbol(tok).Invert())
		return nil
	case TokInt:
		if tok.Int == 0 {
			return &ParseError{Message: "division by zero"}
		}
		ut.Mag /= float64(tok.Int)
		return nil
	case TokEOF:
		return &ParseError{Message: "division '/' with no right-hand operand"}
	default:
		return &ParseError{Message: "invalid token after division '/'"}
	}
}
