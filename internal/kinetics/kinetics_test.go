package kinetics

import (
	"math"
	"testing"

	"github.com/san-kum/crnsim/internal/crn"
	"github.com/san-kum/crnsim/internal/stoich"
)

func buildSystem(t *testing.T, species []string, reactions []string, rates []float64) *System {
	t.Helper()
	m, _, err := stoich.Build(species, reactions)
	if err != nil {
		t.Fatalf("build matrices: %v", err)
	}
	return New(crn.Network{Species: species, Reactions: reactions, Rates: rates}, m)
}

func TestDeriveBimolecular(t *testing.T) {
	sys := buildSystem(t, []string{"A", "B", "C"}, []string{"A + B -> C"}, []float64{1})

	dy := sys.Derive([]float64{1, 1, 0}, 0)
	want := []float64{-1, -1, 1}
	for i := range want {
		if math.Abs(dy[i]-want[i]) > 1e-12 {
			t.Errorf("dy[%d] = %g, want %g", i, dy[i], want[i])
		}
	}
}

func TestDeriveSquaredExponent(t *testing.T) {
	// 2A -> B: the rate is k*A^2, and each firing consumes two A.
	sys := buildSystem(t, []string{"A", "B"}, []string{"2A -> B"}, []float64{3})

	dy := sys.Derive([]float64{2, 0}, 0)
	if math.Abs(dy[0]-(-24)) > 1e-12 {
		t.Errorf("dy[A] = %g, want -24", dy[0])
	}
	if math.Abs(dy[1]-12) > 1e-12 {
		t.Errorf("dy[B] = %g, want 12", dy[1])
	}
}

func TestDeriveZeroOrderFormation(t *testing.T) {
	// "0 -> A" has no concentration dependence: rate is the constant k.
	sys := buildSystem(t, []string{"A"}, []string{"0 -> A"}, []float64{2.5})

	for _, y := range [][]float64{{0}, {10}, {1e6}} {
		dy := sys.Derive(y, 0)
		if dy[0] != 2.5 {
			t.Errorf("dy at y=%v is %g, want 2.5", y, dy[0])
		}
	}
}

func TestRates(t *testing.T) {
	sys := buildSystem(t,
		[]string{"A", "B"},
		[]string{"A -> B", "A + B -> 2B", "0 -> A"},
		[]float64{2, 3, 5},
	)

	v := sys.Rates([]float64{4, 7})
	want := []float64{8, 84, 5}
	for i := range want {
		if math.Abs(v[i]-want[i]) > 1e-12 {
			t.Errorf("v[%d] = %g, want %g", i, v[i], want[i])
		}
	}
}

func TestDeriveIsStateless(t *testing.T) {
	sys := buildSystem(t, []string{"A", "B", "C"}, []string{"A + B -> C"}, []float64{0.5})

	y := []float64{3, 2, 1}
	first := sys.Derive(y, 0)
	// Probe other states out of order, as an adaptive solver would.
	sys.Derive([]float64{0, 0, 0}, 10)
	sys.Derive([]float64{100, 100, 100}, -5)
	second := sys.Derive(y, 0)

	for i := range first {
		if first[i] != second[i] {
			t.Errorf("call %d differs: %g vs %g", i, first[i], second[i])
		}
	}
}

func TestUnregisteredReactantsDegradeToFormation(t *testing.T) {
	// X is not registered, so "X -> A" behaves as zero-order production
	// of A with respect to the registered set.
	sys := buildSystem(t, []string{"A"}, []string{"X -> A"}, []float64{4})

	dy := sys.Derive([]float64{0}, 0)
	if dy[0] != 4 {
		t.Errorf("dy[A] = %g, want 4", dy[0])
	}
}
