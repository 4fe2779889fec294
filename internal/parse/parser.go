package parse

import (
	"fmt"
	"strings"

	"github.com/san-kum/crnsim/internal/crn"
)

// SplitSides splits a reaction on its single "->" operator. Zero or
// multiple operators is a grammar error.
func SplitSides(reaction string) (left, right string, err error) {
	switch strings.Count(reaction, crn.Operator) {
	case 1:
	case 0:
		return "", "", &crn.GrammarError{Reaction: reaction, Wrapped: crn.ErrNoOperator}
	default:
		return "", "", &crn.GrammarError{Reaction: reaction, Wrapped: crn.ErrManyOperators}
	}
	i := strings.Index(reaction, crn.Operator)
	return reaction[:i], reaction[i+len(crn.Operator):], nil
}

// IsEmptyOrZero reports whether a side denotes "nothing": blank text or
// the sentinel species 0 alone.
func IsEmptyOrZero(part string) bool {
	t := strings.TrimSpace(part)
	return t == "" || t == crn.Zero
}

// Terms tokenizes one reaction side into coefficient/species terms.
// Sentinel "0" tokens contribute no term. Tokens whose species name is
// empty or does not start with a letter are dropped with a
// [crn.DiagMalformedSpecies] diagnostic; parsing continues.
func Terms(part string) ([]Term, crn.Diagnostics) {
	if IsEmptyOrZero(part) {
		return nil, nil
	}

	var out []Term
	var diags crn.Diagnostics
	for _, tok := range tokens(part) {
		if tok == crn.Zero {
			continue
		}
		coeff, name := splitCoeff(tok)
		if name == "" || !startsWithLetter(name) {
			diags = append(diags, crn.Diagnostic{
				Code:     crn.DiagMalformedSpecies,
				Reaction: part,
				Message:  fmt.Sprintf("token %q leaves no valid species name; term dropped", tok),
			})
			continue
		}
		out = append(out, Term{Coeff: coeff, Species: name})
	}
	return out, diags
}

// SpeciesStoichiometry sums the coefficients of every term in part
// whose species matches exactly. Tokenization guarantees whole-token
// matching, so species "A" never matches an occurrence of "A2".
func SpeciesStoichiometry(species, part string) int {
	terms, _ := Terms(part)
	total := 0
	for _, t := range terms {
		if t.Species == species {
			total += t.Coeff
		}
	}
	return total
}

// PartStoichiometry is the total molecularity of one side: the sum of
// all term coefficients.
func PartStoichiometry(part string) int {
	terms, _ := Terms(part)
	total := 0
	for _, t := range terms {
		total += t.Coeff
	}
	return total
}

// ReactionStoichiometry returns how many instances of species the
// reaction consumes and produces.
func ReactionStoichiometry(species, reaction string) (left, right int, err error) {
	l, r, err := SplitSides(reaction)
	if err != nil {
		return 0, 0, err
	}
	return SpeciesStoichiometry(species, l), SpeciesStoichiometry(species, r), nil
}

// Reactants lists the distinct species consumed by the reaction, in
// first-appearance order.
func Reactants(reaction string) ([]string, error) {
	left, _, err := SplitSides(reaction)
	if err != nil {
		return nil, err
	}
	terms, _ := Terms(left)
	return dedup(terms), nil
}

// Products lists the distinct species produced by the reaction, in
// first-appearance order. A side that collapses to nothing yields the
// sentinel species itself: Products("A -> 0") is ["0"].
func Products(reaction string) ([]string, error) {
	_, right, err := SplitSides(reaction)
	if err != nil {
		return nil, err
	}
	terms, _ := Terms(right)
	if len(terms) == 0 {
		return []string{crn.Zero}, nil
	}
	return dedup(terms), nil
}

func dedup(terms []Term) []string {
	seen := make(map[string]struct{}, len(terms))
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		if _, ok := seen[t.Species]; ok {
			continue
		}
		seen[t.Species] = struct{}{}
		out = append(out, t.Species)
	}
	return out
}

// IsUnimolecular reports a total left-side stoichiometry of exactly 1.
func IsUnimolecular(reaction string) bool {
	left, _, err := SplitSides(reaction)
	if err != nil {
		return false
	}
	return PartStoichiometry(left) == 1
}

// IsBimolecular reports a total left-side stoichiometry of exactly 2,
// covering both "A + B -> C" and "2A -> B".
func IsBimolecular(reaction string) bool {
	left, _, err := SplitSides(reaction)
	if err != nil {
		return false
	}
	return PartStoichiometry(left) == 2
}

// IsFormation reports a left side that denotes nothing, as in "0 -> A".
func IsFormation(reaction string) bool {
	left, _, err := SplitSides(reaction)
	if err != nil {
		return false
	}
	terms, _ := Terms(left)
	return len(terms) == 0
}

// IsDegradation reports a right side that collapses to nothing, as in
// "A -> 0".
func IsDegradation(reaction string) bool {
	_, right, err := SplitSides(reaction)
	if err != nil {
		return false
	}
	terms, _ := Terms(right)
	return len(terms) == 0
}
