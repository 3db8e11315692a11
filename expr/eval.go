package expr

import "fmt"

// EvalError is a syntax error raised while folding an expression's token
// stream into a single Quantity.
type EvalError struct {
	Message string
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("syntax error in expression: %s", e.Message)
}

// Evaluate lexes and folds an expression string such as
// "1 kg.m/s2 + 5 N" into a single Quantity, applying + - * / strictly
// left to right with no operator precedence. The expression must begin
// with a quantity; every subsequent quantity must be preceded by an
// operator.
func Evaluate(s string) (Quantity, error) {
	tz := NewTokenizer(s)

	first, err := tz.Next()
	if err != nil {
		return Quantity{}, err
	}
	if first.Kind != TokQuantity {
		return Quantity{}, &EvalError{Message: "expression must begin with a quantity"}
	}
	acc := first.Quantity

	for {
		op, err := tz.Next()
		if err != nil {
			return Quantity{}, err
		}
		if op.Kind == TokEOF {
			return acc, nil
		}
		if op.Kind == TokQuantity {
			return Quantity{}, &EvalError{Message: "two quantities in a row: expected '+', '-', '*' or '/' between them"}
		}

		rhs, err := tz.Next()
		if err != nil {
			return Quantity{}, err
		}
		if rhs.Kind != TokQuantity {
			return Quantity{}, &EvalError{Message: "operator must be followed by a quantity"}
		}

		switch op.Kind {
		case TokAdd:
			acc, err = acc.Add(rhs.Quantity)
		case TokSub:
			acc, err = acc.Sub(rhs.Quantity)
		case TokMul:
			acc = acc.Mul(rhs.Quantity)
		case TokDiv:
			acc = acc.Div(rhs.Quantity)
		}
		if err != nil {
			return Quantity{}, err
		}
	}
}
