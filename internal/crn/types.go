package crn

// Zero is the sentinel species denoting "nothing". It is only meaningful
// as the sole content of a reaction side, as in formation ("0 -> A") and
// degradation ("A -> 0").
const Zero = "0"

// Operator is the relation separating the two sides of a reaction.
const Operator = "->"

// Network is a chemical reaction network: named species with initial
// concentrations, mass-action reactions with rate constants, and the
// time grid the trajectory is reported on.
//
// Species order is significant: it fixes the column order of every
// derived matrix and of the output trajectory. Init pairs positionally
// with Species, Rates with Reactions.
type Network struct {
	Species   []string
	Init      []float64
	Reactions []string
	Rates     []float64
	Times     []float64
}

func (n Network) NumSpecies() int   { return len(n.Species) }
func (n Network) NumReactions() int { return len(n.Reactions) }

// SpeciesIndex maps each species name to its column index.
func (n Network) SpeciesIndex() map[string]int {
	idx := make(map[string]int, len(n.Species))
	for i, s := range n.Species {
		idx[s] = i
	}
	return idx
}
