package solver

import "fmt"

// NewStepper builds a stepper by name: "euler", "rk4" or "rk45".
func NewStepper(name string) (Stepper, error) {
	switch name {
	case "euler":
		return NewEuler(), nil
	case "rk4":
		return NewRK4(), nil
	case "rk45", "":
		return NewRK45(), nil
	default:
		return nil, fmt.Errorf("solver: unknown stepper %q", name)
	}
}
