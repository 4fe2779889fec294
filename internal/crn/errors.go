package crn

import (
	"errors"
	"fmt"
)

// Grammar-level failures. All fatal: the reaction string cannot be
// interpreted at all.
var (
	// ErrNoOperator indicates a reaction string without a "->" operator.
	ErrNoOperator = errors.New("crn: reaction has no -> operator")

	// ErrManyOperators indicates more than one "->" in a reaction string.
	ErrManyOperators = errors.New("crn: reaction has multiple -> operators")

	// ErrBlankSide indicates a reaction side with no characters at all.
	// An absent side must be written as the explicit sentinel "0".
	ErrBlankSide = errors.New("crn: reaction side is blank")
)

// Validation-level failures across the network fields.
var (
	// ErrEmptyField indicates a required field with no elements.
	ErrEmptyField = errors.New("crn: field is empty")

	// ErrLengthMismatch indicates positionally paired fields of unequal length.
	ErrLengthMismatch = errors.New("crn: paired fields differ in length")

	// ErrDuplicateSpecies indicates a species listed more than once.
	ErrDuplicateSpecies = errors.New("crn: duplicate species")

	// ErrNegativeValue indicates a negative initial concentration or rate constant.
	ErrNegativeValue = errors.New("crn: negative value")

	// ErrMolecularity indicates a left side consuming more than two
	// reactant instances; only unimolecular and bimolecular kinetics
	// are supported.
	ErrMolecularity = errors.New("crn: left-side molecularity above 2")
)

// GrammarError wraps a grammar failure with the offending reaction text.
type GrammarError struct {
	Reaction string
	Wrapped  error
}

func (e *GrammarError) Error() string {
	return fmt.Sprintf("%v in %q", e.Wrapped, e.Reaction)
}

func (e *GrammarError) Unwrap() error { return e.Wrapped }

// ValidationError wraps a structural failure with the field (or
// reaction) that violated the constraint.
type ValidationError struct {
	Field   string
	Wrapped error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v (field %s)", e.Wrapped, e.Field)
}

func (e *ValidationError) Unwrap() error { return e.Wrapped }

// DegenerateReactionError reports a reaction whose sides both reduce to
// empty/zero, such as "0 -> 0". Such a reaction has no kinetic meaning.
type DegenerateReactionError struct {
	Reaction string
}

func (e *DegenerateReactionError) Error() string {
	return fmt.Sprintf("crn: degenerate reaction %q (both sides empty or zero)", e.Reaction)
}
