// Package parse implements the reaction-string grammar.
//
// Strategy:
//  1. Split the reaction on its single "->" operator
//  2. Tokenize each side on any rune outside [A-Za-z0-9_]
//  3. Strip each token's leading digit run as its coefficient
//
// The grammar accepts:
//   - "+"-separated terms: "A + B -> C"
//   - integer coefficients fused to the species: "2A -> A2"
//   - repeated species on one side: "A + A -> B" (stoichiometry 2)
//   - the sentinel 0 as a whole side: "0 -> A", "A -> 0"
//   - insignificant whitespace anywhere
//
// Species identifiers are case-sensitive, start with a letter, and may
// contain letters, digits and underscores.
//
// [Normalize] validates a whole network against the grammar plus the
// structural invariants (paired lengths, unique species, molecularity
// at most 2) and auto-repairs "+0" constructs, reporting every repair
// as a [crn.Diagnostic].
package parse
