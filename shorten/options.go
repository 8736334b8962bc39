package shorten

// Option configures Compute's optional behaviour, in the same
// functional-option style used by surface.Build.
type Option func(*config)

type config struct {
	dropRate float64
}

func defaultConfig() *config {
	return &config{dropRate: 0.1}
}

// WithDropRate overrides the spiralling-acceleration heuristic's drop
// threshold. It is a performance knob, not part of the contract:
// WithDropRate(0) disables acceleration entirely and still produces a
// correct, if slower, result.
func WithDropRate(rate float64) Option {
	return func(c *config) { c.dropRate = rate }
}
