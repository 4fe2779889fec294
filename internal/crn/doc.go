// Package crn defines the core data model for chemical reaction
// networks:
//
//   - [Network]: species, initial concentrations, reactions, rate
//     constants and the reporting time grid
//   - [Diagnostic]: non-fatal findings collected during parsing and
//     normalization (auto-repairs, dropped tokens)
//   - the fatal error taxonomy: [GrammarError], [ValidationError],
//     [DegenerateReactionError]
//
// Reactions are mass-action and one-way; a reversible reaction is
// written as two reactions. The sentinel species [Zero] expresses
// formation ("0 -> A") and degradation ("A -> 0").
package crn
