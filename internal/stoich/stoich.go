// Package stoich builds the stoichiometry matrices of a reaction
// network. All three matrices are |reactions| x |species| dense
// matrices; species order follows the network's species list.
package stoich

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/crnsim/internal/crn"
	"github.com/san-kum/crnsim/internal/parse"
)

// Matrices holds the reactant (consumed), product (produced) and
// net-change (produced - consumed) stoichiometry of a network. They are
// derived, read-only artifacts: build once per simulation, never
// mutate.
type Matrices struct {
	Reactant *mat.Dense
	Product  *mat.Dense
	Net      *mat.Dense
}

// Build computes the stoichiometry matrices for the given species
// ordering and reaction strings. Reactions are expected to be
// normalized already; a grammar failure here is returned as-is.
//
// A species named in a reaction but absent from the species list
// contributes zero to every cell and is reported with a
// [crn.DiagUnknownSpecies] diagnostic. The reaction still fires, so a
// reaction consuming only unregistered species degrades to an
// effective formation with respect to the registered set.
func Build(species, reactions []string) (*Matrices, crn.Diagnostics, error) {
	nr, ns := len(reactions), len(species)
	reactant := mat.NewDense(nr, ns, nil)
	product := mat.NewDense(nr, ns, nil)

	index := make(map[string]int, ns)
	for j, s := range species {
		index[s] = j
	}

	var diags crn.Diagnostics
	for i, reaction := range reactions {
		left, right, err := parse.SplitSides(reaction)
		if err != nil {
			return nil, nil, err
		}
		diags = append(diags, fillRow(reactant, i, left, reaction, index)...)
		diags = append(diags, fillRow(product, i, right, reaction, index)...)
	}

	net := mat.NewDense(nr, ns, nil)
	net.Sub(product, reactant)

	return &Matrices{Reactant: reactant, Product: product, Net: net}, diags, nil
}

func fillRow(m *mat.Dense, row int, part, reaction string, index map[string]int) crn.Diagnostics {
	terms, diags := parse.Terms(part)
	for i := range diags {
		diags[i].Reaction = reaction
	}
	for _, t := range terms {
		j, ok := index[t.Species]
		if !ok {
			diags = append(diags, crn.Diagnostic{
				Code:     crn.DiagUnknownSpecies,
				Reaction: reaction,
				Message:  fmt.Sprintf("species %q is not in the network", t.Species),
			})
			continue
		}
		m.Set(row, j, m.At(row, j)+float64(t.Coeff))
	}
	return diags
}
