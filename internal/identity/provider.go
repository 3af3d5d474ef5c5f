// Package identity resolves one-shot login codes from the mobile
// client to stable user subjects. The provider is an external
// collaborator; this package only wraps the exchange.
package identity

import (
	"context"
	"errors"
)

var ErrCodeRejected = errors.New("login code rejected")

// Provider exchanges a client login code for a stable opaque subject
// (the "openid" of the original platform).
type Provider interface {
	Resolve(ctx context.Context, code string) (string, error)
}
