package mvector

import (
	"log/slog"
	"math"

	"github.com/hupe1980/mvector/resource"
)

// MinGrowCapacity is the smallest capacity DoublingGrowth hands out.
const MinGrowCapacity = 4

// GrowthPolicy returns the capacity to allocate when a vector of the given
// capacity must hold required elements. Results below required are raised to it.
type GrowthPolicy func(capacity, required int) int

// DoublingGrowth doubles the capacity (at least MinGrowCapacity), so n
// single-element appends reallocate O(log n) times.
func DoublingGrowth(capacity, required int) int {
	next := MinGrowCapacity
	if capacity > math.MaxInt/2 {
		next = math.MaxInt
	} else if 2*capacity > next {
		next = 2 * capacity
	}
	return max(next, required)
}

// ExactGrowth allocates exactly what is required. Appends become O(n) each;
// use it only for vectors whose size is known up front.
func ExactGrowth(_, required int) int {
	return required
}

type options struct {
	logger  *Logger
	metrics MetricsCollector
	budget  *resource.Controller
	growth  GrowthPolicy
	aligned bool
}

// Option configures vector construction.
//
// Options travel with the vector: clones and arithmetic results inherit the
// options of their (left) source operand.
type Option func(*options)

// WithLogger configures structured logging of buffer reallocations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := mvector.NewJSONLogger(slog.LevelDebug)
//	v, _ := mvector.New[float64](16, mvector.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for buffer operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &mvector.BasicMetricsCollector{}
//	v, _ := mvector.New[int](0, mvector.WithMetricsCollector(metrics))
//	// ... use v ...
//	stats := metrics.GetStats()
//	fmt.Printf("Reallocations: %d\n", stats.ReallocCount)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}

// WithMemoryBudget charges every buffer against a shared memory budget.
// Allocations that would exceed the budget fail with an error matching both
// ErrAllocation and resource.ErrMemoryLimitExceeded.
func WithMemoryBudget(c *resource.Controller) Option {
	return func(o *options) {
		o.budget = c
	}
}

// WithGrowthPolicy replaces DoublingGrowth. Pass nil to restore the default.
func WithGrowthPolicy(p GrowthPolicy) Option {
	return func(o *options) {
		if p == nil {
			p = DoublingGrowth
		}
		o.growth = p
	}
}

// WithAlignedStorage places buffers of numeric element types on 64-byte
// boundaries. Other element types are allocated normally.
func WithAlignedStorage() Option {
	return func(o *options) {
		o.aligned = true
	}
}

var defaultOptions = newOptions()

func newOptions() *options {
	return &options{
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
		growth:  DoublingGrowth,
	}
}

func applyOptions(optFns []Option) *options {
	if len(optFns) == 0 {
		return defaultOptions
	}
	o := newOptions()
	for _, fn := range optFns {
		if fn != nil {
			fn(o)
		}
	}
	return o
}
