package secrets

import "context"

// Store resolves named secrets at call time. Values are never cached here:
// the parameter store is the source of truth on every fetch.
type Store interface {
	GetSecret(ctx context.Context, name string) (string, error)
}
