package db

import (
	"context"
	"time"

	"todo_webapp/internal/logger"
)

type RetryPolicy struct {
	MaxAttempts int
	Backoff     time.Duration
}

var DefaultRetryPolicy = RetryPolicy{MaxAttempts: 5, Backoff: 5 * time.Second}

// Manager is the connection manager: it wraps an Opener with bounded
// retry and a fixed delay between attempts.
type Manager struct {
	open    Opener
	dialect Dialect
	policy  RetryPolicy

	sleep   func(ctx context.Context, d time.Duration) error
	release func() error
}

func NewManager(open Opener, d Dialect, policy RetryPolicy) *Manager {
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}
	return &Manager{
		open:    open,
		dialect: d,
		policy:  policy,
		sleep:   sleepContext,
	}
}

func (m *Manager) Dialect() Dialect { return m.dialect }

// Acquire returns a fresh connection or, after MaxAttempts consecutive
// failures, a *ConnectionError wrapping the last driver error.
func (m *Manager) Acquire(ctx context.Context) (Conn, error) {
	log := logger.WithContext(ctx)
	limit := m.policy.MaxAttempts

	var lastErr error
	for attempt := 1; attempt <= limit; attempt++ {
		conn, err := m.open(ctx)
		if err == nil {
			ConnectAttempts.WithLabelValues("ok").Inc()
			return conn, nil
		}
		ConnectAttempts.WithLabelValues("error").Inc()
		lastErr = err

		if attempt == limit {
			break
		}
		log.Warn("database connection failed",
			"attempt", attempt,
			"max_attempts", limit,
			"retry_in", m.policy.Backoff.String(),
			"error", err,
		)
		if err := m.sleep(ctx, m.policy.Backoff); err != nil {
			return nil, &ConnectionError{Attempts: attempt, Err: err}
		}
	}

	ConnectExhausted.Inc()
	log.Error("failed to connect to database", "attempts", limit, "error", lastErr)
	return nil, &ConnectionError{Attempts: limit, Err: lastErr}
}

// Close releases the underlying pool, if the manager owns one.
func (m *Manager) Close() error {
	if m.release == nil {
		return nil
	}
	return m.release()
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
