package parse

import (
	"errors"
	"reflect"
	"testing"

	"github.com/san-kum/crnsim/internal/crn"
)

func validNetwork(reactions ...string) crn.Network {
	rates := make([]float64, len(reactions))
	for i := range rates {
		rates[i] = 1.0
	}
	return crn.Network{
		Species:   []string{"A", "B"},
		Init:      []float64{1, 1},
		Reactions: reactions,
		Rates:     rates,
		Times:     []float64{0, 1},
	}
}

func TestNormalizeCleanNetwork(t *testing.T) {
	net := validNetwork("A -> B", "0 -> A", "B -> 0")
	normalized, diags, err := Normalize(net)
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if len(diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}
	if !reflect.DeepEqual(normalized, net.Reactions) {
		t.Errorf("clean reactions were rewritten: %v", normalized)
	}
}

func TestNormalizeRepair(t *testing.T) {
	net := validNetwork("A + 0 -> B")
	normalized, diags, err := Normalize(net)
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if normalized[0] != "A -> B" {
		t.Errorf("got %q, want %q", normalized[0], "A -> B")
	}
	if !diags.Has(crn.DiagZeroTermRepair) {
		t.Error("expected zero-term-repair diagnostic")
	}
	repairs := diags.Filter(crn.DiagZeroTermRepair)
	if repairs[0].Reaction != "A + 0 -> B" {
		t.Errorf("diagnostic names %q, want the original reaction", repairs[0].Reaction)
	}
}

func TestNormalizeRepairBothSides(t *testing.T) {
	net := validNetwork("0 + A -> B + 0")
	normalized, _, err := Normalize(net)
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if normalized[0] != "A -> B" {
		t.Errorf("got %q", normalized[0])
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	net := validNetwork("A + 0 -> B", "2A -> B", "0 -> A")
	first, _, err := Normalize(net)
	if err != nil {
		t.Fatalf("first normalize failed: %v", err)
	}

	net.Reactions = first
	second, diags, err := Normalize(net)
	if err != nil {
		t.Fatalf("second normalize failed: %v", err)
	}
	if len(diags) != 0 {
		t.Errorf("second pass produced diagnostics: %v", diags)
	}
	if !reflect.DeepEqual(second, first) {
		t.Errorf("not idempotent: %v vs %v", second, first)
	}
}

func TestNormalizeFatalReactions(t *testing.T) {
	tests := []struct {
		name     string
		reaction string
		want     error
	}{
		{"both sides zero", "0 -> 0", nil}, // DegenerateReactionError, checked below
		{"blank left", " -> A", crn.ErrBlankSide},
		{"blank right", "A -> ", crn.ErrBlankSide},
		{"no operator", "A + B", crn.ErrNoOperator},
		{"two operators", "A -> B -> C", crn.ErrManyOperators},
		{"trimolecular", "3A -> B", crn.ErrMolecularity},
		{"three reactants", "A + A + B -> C", crn.ErrMolecularity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Normalize(validNetwork(tt.reaction))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}

	var degenerate *crn.DegenerateReactionError
	_, _, err := Normalize(validNetwork("0 -> 0"))
	if !errors.As(err, &degenerate) {
		t.Errorf("0 -> 0: got %v, want DegenerateReactionError", err)
	}
}

func TestNormalizeFieldChecks(t *testing.T) {
	base := validNetwork("A -> B")

	tests := []struct {
		name   string
		mutate func(*crn.Network)
		want   error
	}{
		{"no species", func(n *crn.Network) { n.Species = nil; n.Init = nil }, crn.ErrEmptyField},
		{"no reactions", func(n *crn.Network) { n.Reactions = nil; n.Rates = nil }, crn.ErrEmptyField},
		{"no times", func(n *crn.Network) { n.Times = nil }, crn.ErrEmptyField},
		{"init length", func(n *crn.Network) { n.Init = []float64{1} }, crn.ErrLengthMismatch},
		{"rates length", func(n *crn.Network) { n.Rates = nil }, crn.ErrLengthMismatch},
		{"duplicate species", func(n *crn.Network) { n.Species = []string{"A", "A"} }, crn.ErrDuplicateSpecies},
		{"negative init", func(n *crn.Network) { n.Init = []float64{-1, 1} }, crn.ErrNegativeValue},
		{"negative rate", func(n *crn.Network) { n.Rates = []float64{-1} }, crn.ErrNegativeValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			net := base
			net.Species = append([]string(nil), base.Species...)
			net.Init = append([]float64(nil), base.Init...)
			net.Reactions = append([]string(nil), base.Reactions...)
			net.Rates = append([]float64(nil), base.Rates...)
			net.Times = append([]float64(nil), base.Times...)
			tt.mutate(&net)

			_, _, err := Normalize(net)
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
			var ve *crn.ValidationError
			if !errors.As(err, &ve) {
				t.Errorf("error is not a ValidationError: %v", err)
			}
		})
	}
}

func TestNormalizeMalformedSpeciesDiagnostic(t *testing.T) {
	net := validNetwork("A + 12 -> B")
	normalized, diags, err := Normalize(net)
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	// The malformed token is dropped, not repaired into the string.
	if normalized[0] != "A + 12 -> B" {
		t.Errorf("reaction rewritten to %q", normalized[0])
	}
	malformed := diags.Filter(crn.DiagMalformedSpecies)
	if len(malformed) != 1 {
		t.Fatalf("got %d malformed-species diagnostics, want 1", len(malformed))
	}
	if malformed[0].Reaction != "A + 12 -> B" {
		t.Errorf("diagnostic names %q, want the full reaction", malformed[0].Reaction)
	}
}
