package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
	"gorm.io/gorm"
)

const (
	probeTripAfter  = 3
	probeResetAfter = 30 * time.Second
)

// ErrCircuitOpen is returned by Probe.Check while the breaker is open.
var ErrCircuitOpen = errors.New("circuit open")

// Probe pings the database through a circuit breaker so that a failing
// database is not hammered by health checks.
type Probe struct {
	cb   *gobreaker.CircuitBreaker
	ping func(ctx context.Context) error
}

// NewProbe creates a Probe for the given handle.
func NewProbe(db *gorm.DB) *Probe {
	return newProbe(func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	})
}

func newProbe(ping func(ctx context.Context) error) *Probe {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "database",
		Timeout: probeResetAfter,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= probeTripAfter
		},
	})
	return &Probe{cb: cb, ping: ping}
}

// Check returns nil when the database answered a ping.
func (p *Probe) Check(ctx context.Context) error {
	_, err := p.cb.Execute(func() (interface{}, error) {
		if err := p.ping(ctx); err != nil {
			return nil, fmt.Errorf("ping: %w", err)
		}
		return nil, nil
	})
	if errors.Is(err, gobreaker.ErrOpenState) {
		return ErrCircuitOpen
	}
	return err
}
