package parse

import (
	"fmt"
	"strings"

	"github.com/san-kum/crnsim/internal/crn"
)

// Normalize validates a network and returns the reaction strings to use
// downstream, with degenerate "+0" terms repaired. All structural
// violations fail here, before any matrix is built: a network that
// passes Normalize is safe to simulate.
//
// Normalize is idempotent: a reaction that needs no repair is returned
// byte-for-byte unchanged, and a repaired reaction passes a second
// Normalize untouched.
func Normalize(net crn.Network) ([]string, crn.Diagnostics, error) {
	if err := checkFields(net); err != nil {
		return nil, nil, err
	}

	out := make([]string, len(net.Reactions))
	var diags crn.Diagnostics

	for i, reaction := range net.Reactions {
		normalized, d, err := normalizeReaction(reaction)
		if err != nil {
			return nil, nil, err
		}
		diags = append(diags, d...)
		out[i] = normalized
	}
	return out, diags, nil
}

func checkFields(net crn.Network) error {
	if len(net.Species) == 0 {
		return &crn.ValidationError{Field: "species", Wrapped: crn.ErrEmptyField}
	}
	if len(net.Reactions) == 0 {
		return &crn.ValidationError{Field: "reactions", Wrapped: crn.ErrEmptyField}
	}
	if len(net.Times) == 0 {
		return &crn.ValidationError{Field: "times", Wrapped: crn.ErrEmptyField}
	}
	if len(net.Init) != len(net.Species) {
		return &crn.ValidationError{Field: "init", Wrapped: crn.ErrLengthMismatch}
	}
	if len(net.Rates) != len(net.Reactions) {
		return &crn.ValidationError{Field: "rates", Wrapped: crn.ErrLengthMismatch}
	}

	seen := make(map[string]struct{}, len(net.Species))
	for _, s := range net.Species {
		if _, ok := seen[s]; ok {
			return &crn.ValidationError{Field: "species: " + s, Wrapped: crn.ErrDuplicateSpecies}
		}
		seen[s] = struct{}{}
	}

	for i, c := range net.Init {
		if c < 0 {
			return &crn.ValidationError{
				Field:   fmt.Sprintf("init[%d] (%s)", i, net.Species[i]),
				Wrapped: crn.ErrNegativeValue,
			}
		}
	}
	for i, k := range net.Rates {
		if k < 0 {
			return &crn.ValidationError{
				Field:   fmt.Sprintf("rates[%d]", i),
				Wrapped: crn.ErrNegativeValue,
			}
		}
	}
	return nil
}

func normalizeReaction(reaction string) (string, crn.Diagnostics, error) {
	left, right, err := SplitSides(reaction)
	if err != nil {
		return "", nil, err
	}

	// A side with no characters at all is missing, which is distinct
	// from the explicit sentinel "0".
	if strings.TrimSpace(left) == "" || strings.TrimSpace(right) == "" {
		return "", nil, &crn.GrammarError{Reaction: reaction, Wrapped: crn.ErrBlankSide}
	}

	newLeft, repairedLeft := repairSide(left)
	newRight, repairedRight := repairSide(right)

	leftTerms, leftDiags := Terms(newLeft)
	rightTerms, rightDiags := Terms(newRight)
	if len(leftTerms) == 0 && len(rightTerms) == 0 {
		return "", nil, &crn.DegenerateReactionError{Reaction: reaction}
	}

	molecularity := 0
	for _, t := range leftTerms {
		molecularity += t.Coeff
	}
	if molecularity > 2 {
		return "", nil, &crn.ValidationError{Field: "reaction " + reaction, Wrapped: crn.ErrMolecularity}
	}

	var diags crn.Diagnostics
	for _, d := range append(leftDiags, rightDiags...) {
		d.Reaction = reaction
		diags = append(diags, d)
	}

	normalized := reaction
	if repairedLeft || repairedRight {
		normalized = strings.TrimSpace(newLeft) + " " + crn.Operator + " " + strings.TrimSpace(newRight)
		diags = append(diags, crn.Diagnostic{
			Code:     crn.DiagZeroTermRepair,
			Reaction: reaction,
			Message:  fmt.Sprintf("stripped zero term; using %q", normalized),
		})
	}
	return normalized, diags, nil
}

// repairSide strips sentinel "0" tokens when they coexist with real
// species terms: "A + 0" becomes "A". A side consisting only of
// sentinels is left alone, since there the 0 legitimately means
// "nothing".
func repairSide(part string) (string, bool) {
	toks := tokens(part)
	kept := make([]string, 0, len(toks))
	zeros := 0
	for _, tok := range toks {
		if tok == crn.Zero {
			zeros++
			continue
		}
		kept = append(kept, tok)
	}
	if zeros == 0 || len(kept) == 0 {
		return part, false
	}
	return strings.Join(kept, " + "), true
}
