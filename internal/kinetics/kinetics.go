// Package kinetics assembles the mass-action ODE right-hand side of a
// reaction network.
//
// For each reaction i with rate constant k_i, the instantaneous rate is
//
//	v_i = k_i * prod_j y[idx[i][j]] ^ exp[i][j]
//
// where idx[i] are the columns of the species consumed by reaction i
// and exp[i] their stoichiometric counts (each reactant concentration
// is raised to its own coefficient). A reaction with no registered
// reactants has rate k_i: a zero-order production term. The species
// derivative is then dy = Nᵀ·v with N the net-change matrix.
package kinetics

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/crnsim/internal/crn"
	"github.com/san-kum/crnsim/internal/stoich"
)

// System is the ODE right-hand side handed to the integrator. All index
// lists, exponents and the transposed net-change matrix are finalized
// at construction and treated as read-only afterwards, so Derive is
// safe to call at arbitrary frequency with arbitrary probe states.
type System struct {
	rates []float64
	idx   [][]int
	exp   [][]float64
	netT  mat.Matrix
	ns    int
}

// New precomputes the rate-law structure from the reactant matrix.
func New(net crn.Network, m *stoich.Matrices) *System {
	nr, ns := m.Reactant.Dims()

	idx := make([][]int, nr)
	exp := make([][]float64, nr)
	for i := 0; i < nr; i++ {
		for j := 0; j < ns; j++ {
			if c := m.Reactant.At(i, j); c > 0 {
				idx[i] = append(idx[i], j)
				exp[i] = append(exp[i], c)
			}
		}
	}

	rates := make([]float64, len(net.Rates))
	copy(rates, net.Rates)

	return &System{
		rates: rates,
		idx:   idx,
		exp:   exp,
		netT:  m.Net.T(),
		ns:    ns,
	}
}

// Dim is the number of species, the length of the state vector.
func (s *System) Dim() int { return s.ns }

// Rates evaluates the instantaneous rate of every reaction at state y.
func (s *System) Rates(y []float64) []float64 {
	v := make([]float64, len(s.rates))
	for i, k := range s.rates {
		rate := k
		for j, col := range s.idx[i] {
			e := s.exp[i][j]
			if e == 1 {
				rate *= y[col]
			} else {
				rate *= math.Pow(y[col], e)
			}
		}
		v[i] = rate
	}
	return v
}

// Derive computes the concentration derivative dy = Nᵀ·v at state y.
// It is a pure function of its arguments; nothing is cached between
// calls.
func (s *System) Derive(y []float64, _ float64) []float64 {
	v := s.Rates(y)
	var dy mat.VecDense
	dy.MulVec(s.netT, mat.NewVecDense(len(v), v))
	return dy.RawVector().Data
}
