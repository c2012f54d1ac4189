package domain

import "fmt"

// Thresholds holds the tuned acceptance levels of the matcher and validator.
type Thresholds struct {
	// SubstantialFraction is the minimum length ratio for a substring to count as structural.
	SubstantialFraction float64
	// SubstringInside applies when the candidate sits inside a name part.
	SubstringInside float64
	// SubstringContaining applies when a name part sits inside the candidate.
	SubstringContaining float64
	SingleVsMulti       float64
	SingleVsMultiRelax  float64
	// LastNameRelaxTrigger is the last-name ratio that unlocks SingleVsMultiRelax.
	LastNameRelaxTrigger float64
	MultiToken           float64
	Default              float64
	Problematic          float64
	ValidatorFloor       float64
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		SubstantialFraction:  0.75,
		SubstringInside:      0.6,
		SubstringContaining:  0.7,
		SingleVsMulti:        0.85,
		SingleVsMultiRelax:   0.7,
		LastNameRelaxTrigger: 0.9,
		MultiToken:           0.95,
		Default:              0.7,
		Problematic:          0.95,
		ValidatorFloor:       0.6,
	}
}

func (t Thresholds) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"substantial_fraction", t.SubstantialFraction},
		{"substring_inside", t.SubstringInside},
		{"substring_containing", t.SubstringContaining},
		{"single_vs_multi", t.SingleVsMulti},
		{"single_vs_multi_relax", t.SingleVsMultiRelax},
		{"last_name_relax_trigger", t.LastNameRelaxTrigger},
		{"multi_token", t.MultiToken},
		{"default", t.Default},
		{"problematic", t.Problematic},
		{"validator_floor", t.ValidatorFloor},
	}
	for _, f := range fields {
		if f.value <= 0 || f.value > 1 {
			return fmt.Errorf("threshold %s must be in (0, 1], got %v", f.name, f.value)
		}
	}
	if t.SingleVsMultiRelax > t.SingleVsMulti {
		return fmt.Errorf("threshold single_vs_multi_relax (%v) exceeds single_vs_multi (%v)", t.SingleVsMultiRelax, t.SingleVsMulti)
	}

	return nil
}
