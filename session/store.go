// Package session owns server-side session persistence and the per-request
// session handle. It maps opaque cookie-carried tokens to user ids; it does
// not make authorization decisions.
package session

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// MaxAge applies to both the cache entry and the cookie.
const MaxAge = 10 * 365 * 24 * time.Hour

var ErrNotFound = errors.New("session not found")

// Store defines how sessions are stored and retrieved. Implementations
// must be safe for concurrent use.
type Store interface {
	Set(ctx context.Context, token string, userId int64) error
	// Get returns ErrNotFound when the token has no live session.
	Get(ctx context.Context, token string) (int64, error)
	Destroy(ctx context.Context, token string) error
}
