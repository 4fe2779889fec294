package crn

import "fmt"

// DiagCode identifies a class of non-fatal diagnostic.
type DiagCode string

const (
	// DiagMalformedSpecies: a token stripped down to an empty or
	// non-letter-initial species name and was dropped.
	DiagMalformedSpecies DiagCode = "malformed-species"

	// DiagZeroTermRepair: a "0" term coexisting with real species terms
	// was stripped and the rewritten reaction is used instead.
	DiagZeroTermRepair DiagCode = "zero-term-repair"

	// DiagUnknownSpecies: a reaction references a species not in the
	// network's species list; it contributes nothing to the matrices.
	DiagUnknownSpecies DiagCode = "unknown-species"
)

// Diagnostic is a non-fatal finding attached to a reaction. Diagnostics
// never block a simulation; fatal conditions are errors instead.
type Diagnostic struct {
	Code     DiagCode
	Reaction string
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s in %q", d.Code, d.Message, d.Reaction)
}

type Diagnostics []Diagnostic

func (ds Diagnostics) Has(code DiagCode) bool {
	for _, d := range ds {
		if d.Code == code {
			return true
		}
	}
	return false
}

func (ds Diagnostics) Filter(code DiagCode) Diagnostics {
	var out Diagnostics
	for _, d := range ds {
		if d.Code == code {
			out = append(out, d)
		}
	}
	return out
}
