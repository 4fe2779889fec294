package parse

import (
	"errors"
	"reflect"
	"testing"

	"github.com/san-kum/crnsim/internal/crn"
)

func TestSplitSides(t *testing.T) {
	left, right, err := SplitSides("A + B -> C")
	if err != nil {
		t.Fatalf("split failed: %v", err)
	}
	if left != "A + B " || right != " C" {
		t.Errorf("got left=%q right=%q", left, right)
	}

	// Concatenating the sides around the operator reproduces the input.
	if rebuilt := left + crn.Operator + right; rebuilt != "A + B -> C" {
		t.Errorf("round-trip mismatch: %q", rebuilt)
	}
}

func TestSplitSidesErrors(t *testing.T) {
	tests := []struct {
		reaction string
		want     error
	}{
		{"A + B", crn.ErrNoOperator},
		{"A -> B -> C", crn.ErrManyOperators},
		{"", crn.ErrNoOperator},
	}
	for _, tt := range tests {
		_, _, err := SplitSides(tt.reaction)
		if !errors.Is(err, tt.want) {
			t.Errorf("SplitSides(%q): got %v, want %v", tt.reaction, err, tt.want)
		}
		var ge *crn.GrammarError
		if !errors.As(err, &ge) || ge.Reaction != tt.reaction {
			t.Errorf("SplitSides(%q): error does not carry the reaction text", tt.reaction)
		}
	}
}

func TestIsEmptyOrZero(t *testing.T) {
	tests := []struct {
		part string
		want bool
	}{
		{"", true},
		{"   ", true},
		{"0", true},
		{" 0 ", true},
		{"A", false},
		{"0A", false},
	}
	for _, tt := range tests {
		if got := IsEmptyOrZero(tt.part); got != tt.want {
			t.Errorf("IsEmptyOrZero(%q) = %v, want %v", tt.part, got, tt.want)
		}
	}
}

func TestTerms(t *testing.T) {
	tests := []struct {
		part string
		want []Term
	}{
		{"2A", []Term{{2, "A"}}},
		{"A + B", []Term{{1, "A"}, {1, "B"}}},
		{" C", []Term{{1, "C"}}},
		{"2A + 3A", []Term{{2, "A"}, {3, "A"}}},
		{"12Ab_3", []Term{{12, "Ab_3"}}},
		{"A + 0", []Term{{1, "A"}}},
		{"0", nil},
		{"", nil},
	}
	for _, tt := range tests {
		got, _ := Terms(tt.part)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Terms(%q) = %v, want %v", tt.part, got, tt.want)
		}
	}
}

func TestTermsMalformedSpecies(t *testing.T) {
	terms, diags := Terms("12 + A")
	if !reflect.DeepEqual(terms, []Term{{1, "A"}}) {
		t.Errorf("got terms %v", terms)
	}
	if !diags.Has(crn.DiagMalformedSpecies) {
		t.Error("expected malformed-species diagnostic")
	}

	// The sentinel alone is not malformed.
	_, diags = Terms("A + 0")
	if diags.Has(crn.DiagMalformedSpecies) {
		t.Error("sentinel 0 flagged as malformed")
	}

	// Underscore-initial remainder is not a species.
	terms, diags = Terms("2_x + B")
	if !reflect.DeepEqual(terms, []Term{{1, "B"}}) {
		t.Errorf("got terms %v", terms)
	}
	if !diags.Has(crn.DiagMalformedSpecies) {
		t.Error("expected malformed-species diagnostic for 2_x")
	}
}

func TestPartStoichiometry(t *testing.T) {
	tests := []struct {
		part string
		want int
	}{
		{"A + B", 2},
		{"2A", 2},
		{" C", 1},
		{"0", 0},
		{"A + A", 2},
	}
	for _, tt := range tests {
		if got := PartStoichiometry(tt.part); got != tt.want {
			t.Errorf("PartStoichiometry(%q) = %d, want %d", tt.part, got, tt.want)
		}
	}
}

func TestSpeciesStoichiometryExactMatch(t *testing.T) {
	// "A" must not match a substring occurrence inside "A2".
	if got := SpeciesStoichiometry("A", "A + A2"); got != 1 {
		t.Errorf("got %d, want 1", got)
	}
	if got := SpeciesStoichiometry("A2", "A + A2"); got != 1 {
		t.Errorf("got %d, want 1", got)
	}
}

func TestReactionStoichiometry(t *testing.T) {
	tests := []struct {
		species, reaction string
		left, right       int
	}{
		{"A", "A + B -> 2A", 1, 2},
		{"A", "B -> A + B", 0, 1},
		{"A", "A + A -> B", 2, 0},
		{"B", "A -> 0", 0, 0},
	}
	for _, tt := range tests {
		left, right, err := ReactionStoichiometry(tt.species, tt.reaction)
		if err != nil {
			t.Fatalf("ReactionStoichiometry(%q, %q): %v", tt.species, tt.reaction, err)
		}
		if left != tt.left || right != tt.right {
			t.Errorf("ReactionStoichiometry(%q, %q) = (%d, %d), want (%d, %d)",
				tt.species, tt.reaction, left, right, tt.left, tt.right)
		}
	}
}

func TestReactantsProducts(t *testing.T) {
	reactants, err := Reactants("A + B -> C")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(reactants, []string{"A", "B"}) {
		t.Errorf("reactants = %v", reactants)
	}

	// Repeated species deduplicate, keeping first-appearance order.
	reactants, _ = Reactants("A + A -> B")
	if !reflect.DeepEqual(reactants, []string{"A"}) {
		t.Errorf("reactants = %v", reactants)
	}

	reactants, _ = Reactants("0 -> A")
	if len(reactants) != 0 {
		t.Errorf("formation has reactants: %v", reactants)
	}

	products, _ := Products("A + B -> C")
	if !reflect.DeepEqual(products, []string{"C"}) {
		t.Errorf("products = %v", products)
	}

	// Pure degradation reports the sentinel itself as the product.
	products, _ = Products("A -> 0")
	if !reflect.DeepEqual(products, []string{crn.Zero}) {
		t.Errorf("products = %v", products)
	}
}

func TestClassification(t *testing.T) {
	tests := []struct {
		reaction                        string
		uni, bi, formation, degradation bool
	}{
		{"2A -> B", false, true, false, false},
		{"A + B -> C", false, true, false, false},
		{"A -> B", true, false, false, false},
		{"0 -> A", false, false, true, false},
		{"-> A", false, false, true, false},
		{"A -> 0", true, false, false, true},
	}
	for _, tt := range tests {
		if got := IsUnimolecular(tt.reaction); got != tt.uni {
			t.Errorf("IsUnimolecular(%q) = %v, want %v", tt.reaction, got, tt.uni)
		}
		if got := IsBimolecular(tt.reaction); got != tt.bi {
			t.Errorf("IsBimolecular(%q) = %v, want %v", tt.reaction, got, tt.bi)
		}
		if got := IsFormation(tt.reaction); got != tt.formation {
			t.Errorf("IsFormation(%q) = %v, want %v", tt.reaction, got, tt.formation)
		}
		if got := IsDegradation(tt.reaction); got != tt.degradation {
			t.Errorf("IsDegradation(%q) = %v, want %v", tt.reaction, got, tt.degradation)
		}
	}
}
