package test

import (
	"context"
	"sync"
)

// LimiterStub allows a fixed number of attempts per key.
type LimiterStub struct {
	mu      sync.Mutex
	Max     int
	Err     error
	Attempt map[string]int
}

// Allow counts the attempt and reports whether it is within Max.
// A zero Max allows everything.
func (l *LimiterStub) Allow(ctx context.Context, key string) (bool, error) {
	if l.Err != nil {
		return false, l.Err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.Attempt == nil {
		l.Attempt = make(map[string]int)
	}
	l.Attempt[key]++
	return l.Max == 0 || l.Attempt[key] <= l.Max, nil
}

// SentMessage records a push attempt.
type SentMessage struct {
	To   string
	Body string
}

// MessageSenderStub records messages and optionally fails.
type MessageSenderStub struct {
	mu   sync.Mutex
	Err  error
	Sent []SentMessage
}

// SendText records the message and returns Err.
func (s *MessageSenderStub) SendText(ctx context.Context, to, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Sent = append(s.Sent, SentMessage{To: to, Body: body})
	return s.Err
}

// HealthCheckerStub reports a fixed health state.
type HealthCheckerStub struct {
	Err error
}

// HealthCheck returns Err.
func (h HealthCheckerStub) HealthCheck(ctx context.Context) error {
	return h.Err
}
