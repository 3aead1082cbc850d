package harness

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/chaoslab/primeseed/internal/prime"
	"github.com/chaoslab/primeseed/internal/seed"
)

// Result is the outcome of running a scenario.
type Result struct {
	// Pass is true when every assertion held.
	Pass bool

	// Errors holds one AssertionError per failed assertion.
	Errors []error

	// Pairs is the discovery output.
	Pairs []prime.Pair

	// Seeds is the batch output; empty for discovery-only scenarios.
	Seeds []seed.Seed
}

// Harness executes scenarios. The zero value is not usable; construct with
// New. The logger defaults to a discard handler so test output stays quiet
// unless a caller opts in.
type Harness struct {
	logger *slog.Logger
}

// Option configures a Harness.
type Option func(*Harness)

// WithLogger attaches a logger for execution diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(h *Harness) { h.logger = l }
}

// New creates a harness.
func New(opts ...Option) *Harness {
	h := &Harness{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Run executes a scenario through the real pipeline and evaluates its
// assertions. Returns an error only for a malformed scenario or a pipeline
// failure; assertion failures land in Result.Errors with Pass=false.
func (h *Harness) Run(scenario *Scenario) (*Result, error) {
	if err := scenario.Validate(); err != nil {
		return nil, err
	}

	h.logger.Info("running scenario", "name", scenario.Name, "max", scenario.Max, "agents", scenario.Agents)

	pairs, err := prime.FindTwinPrimes(scenario.Max)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: discovery: %w", scenario.Name, err)
	}

	result := &Result{Pairs: pairs}

	if scenario.Agents > 0 {
		seeds, err := seed.BuildBatch(pairs, scenario.Agents, scenario.Config())
		if err != nil {
			return nil, fmt.Errorf("scenario %q: batch: %w", scenario.Name, err)
		}
		result.Seeds = seeds
	}

	for _, assertion := range scenario.Assertions {
		if err := evaluate(scenario, result, assertion); err != nil {
			result.Errors = append(result.Errors, err)
		}
	}
	result.Pass = len(result.Errors) == 0

	h.logger.Info("scenario finished", "name", scenario.Name, "pass", result.Pass, "failures", len(result.Errors))
	return result, nil
}
