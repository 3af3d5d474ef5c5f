package identity

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// LocalProvider derives a deterministic subject from the login code
// itself, for development and tests where no real identity platform is
// reachable. The same code always maps to the same subject.
type LocalProvider struct {
	secret []byte
}

func NewLocalProvider(secret string) *LocalProvider {
	return &LocalProvider{secret: []byte(secret)}
}

func (provider *LocalProvider) Resolve(_ context.Context, code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", ErrCodeRejected
	}

	mac := hmac.New(sha256.New, provider.secret)
	mac.Write([]byte(code))
	return "local-" + hex.EncodeToString(mac.Sum(nil))[:32], nil
}
