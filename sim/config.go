package sim

import "fmt"

// Config groups everything needed to set up one simulation run.
type Config struct {
	Policy   string   // "fcfs" or "sstf"
	Limit    int      // max input records admitted; <= 0 means all
	Geometry Geometry // disk layout and cost constants
}

// DefaultConfig returns a Config for policy over the default geometry with no admission cap.
func DefaultConfig(policy string) Config {
	return Config{Policy: policy, Geometry: DefaultGeometry()}
}

// Validate checks the policy name and geometry.
func (c Config) Validate() error {
	if !IsValidPolicy(c.Policy) {
		return fmt.Errorf("unknown dispatch policy %q", c.Policy)
	}
	if err := c.Geometry.Validate(); err != nil {
		return fmt.Errorf("invalid geometry: %w", err)
	}
	return nil
}
