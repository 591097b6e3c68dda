package resilience

import (
	"context"
	"errors"
	"time"

	"github.com/carxpresspanabo/carxpress-rental/pkg/logger"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// ErrCircuitOpen is returned when the breaker rejects an execution.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// Settings tunes a circuit breaker.
type Settings struct {
	Name             string
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold uint32
	SuccessThreshold uint32
}

// BuildSettings produces a Settings struct from primitive tuning knobs.
func BuildSettings(name string, intervalSeconds, timeoutSeconds, failureThreshold, successThreshold int) Settings {
	interval := time.Duration(intervalSeconds) * time.Second
	if interval <= 0 {
		interval = time.Minute
	}

	timeout := time.Duration(timeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	if failureThreshold <= 0 {
		failureThreshold = 5
	}

	if successThreshold <= 0 {
		successThreshold = 1
	}

	return Settings{
		Name:             name,
		Interval:         interval,
		Timeout:          timeout,
		FailureThreshold: uint32(failureThreshold),
		SuccessThreshold: uint32(successThreshold),
	}
}

// CircuitBreaker wraps gobreaker with logging and Prometheus metrics.
type CircuitBreaker struct {
	name string
	cb   *gobreaker.CircuitBreaker
}

// NewCircuitBreaker creates a breaker from the given settings.
func NewCircuitBreaker(s Settings) *CircuitBreaker {
	name := s.Name
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		Interval:    s.Interval,
		Timeout:     s.Timeout,
		MaxRequests: s.SuccessThreshold,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= s.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			recordStateChange(name, from, to)
			logger.Warn("circuit breaker state change",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})
	recordState(name, gobreaker.StateClosed)
	return &CircuitBreaker{name: name, cb: cb}
}

// Execute runs fn through the breaker. When the breaker is open the call is
// rejected with ErrCircuitOpen without invoking fn. The context is checked
// before execution so cancelled callers do not consume the breaker budget.
func (b *CircuitBreaker) Execute(ctx context.Context, fn func() (interface{}, error)) (interface{}, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	breakerRequestsTotal.WithLabelValues(b.name).Inc()

	result, err := b.cb.Execute(fn)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			breakerFallbacksTotal.WithLabelValues(b.name).Inc()
			return nil, ErrCircuitOpen
		}
		breakerFailuresTotal.WithLabelValues(b.name).Inc()
		return nil, err
	}
	return result, nil
}

// State reports the current breaker state.
func (b *CircuitBreaker) State() string {
	return b.cb.State().String()
}
