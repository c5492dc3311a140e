// Package throttle limits how often a keyed action may happen.
package throttle

import "context"

// Limiter reports whether one more event for key is allowed right now.
// Every call counts as an attempt.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
