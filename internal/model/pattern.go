package model

import "fmt"

// Pattern is one domain-knowledge rule: when any trigger matches the
// current input, the sequence lists the items that typically follow, in
// installation order. Patterns are static - loaded once, never mutated.
type Pattern struct {
	Name           string   `yaml:"name"`
	Triggers       []string `yaml:"triggers"`
	Sequence       []string `yaml:"sequence"`
	BaseConfidence float64  `yaml:"confidence"`
}

// Validate ensures the pattern has valid data.
func (p *Pattern) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("pattern name is required")
	}
	if len(p.Triggers) == 0 {
		return fmt.Errorf("pattern %q must have at least one trigger", p.Name)
	}
	for i, trigger := range p.Triggers {
		if trigger == "" {
			return fmt.Errorf("pattern %q has empty trigger at index %d", p.Name, i)
		}
	}
	if len(p.Sequence) == 0 {
		return fmt.Errorf("pattern %q must have a follow-up sequence", p.Name)
	}
	for i, item := range p.Sequence {
		if item == "" {
			return fmt.Errorf("pattern %q has empty sequence entry at index %d", p.Name, i)
		}
	}
	if p.BaseConfidence <= 0.0 || p.BaseConfidence > 1.0 {
		return fmt.Errorf("pattern %q confidence must be in (0.0, 1.0], got %.2f", p.Name, p.BaseConfidence)
	}
	return nil
}

// MatchesTrigger reports whether text matches any trigger phrase:
// case-insensitive containment in either direction.
func (p *Pattern) MatchesTrigger(text string) bool {
	if NormalizeName(text) == "" {
		return false
	}
	for _, trigger := range p.Triggers {
		if NamesMatch(trigger, text) {
			return true
		}
	}
	return false
}
