package ports

import "context"

// SequenceGenerator hands out the sequential display numbers for delivery
// orders, e.g. "DEL-00042". Implementations must be safe under concurrent
// order creation.
type SequenceGenerator interface {
	// NextOrderNumber returns the next number in the sequence.
	NextOrderNumber(ctx context.Context) (string, error)
}
