package place

import "github.com/BonnyAD9/place-macro/internal/expand"

// Options configure expansion through the facade.
type Options struct {
	// MaxSteps bounds directive evaluations per pass; 0 means the engine
	// default.
	MaxSteps int
	// Passes is how many times the engine runs to fixed point; each pass
	// peels one Identity staging level. 0 means 1.
	Passes int
	// Trace records evaluated call sites in evaluation order.
	Trace bool
}

func (o Options) withDefaults() Options {
	if o.MaxSteps <= 0 {
		o.MaxSteps = expand.DefaultMaxSteps
	}
	if o.Passes <= 0 {
		o.Passes = 1
	}
	return o
}
