package secretstore

import "context"

// Store supplies secret material by identifier. Implementations must be safe
// for concurrent use.
type Store interface {
	GetSecret(ctx context.Context, id string) (string, error)
}
