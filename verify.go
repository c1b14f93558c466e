package sha256bits

import (
	"github.com/pkg/errors"
)

// ErrEmptySecret is returned by NewVerifier when no secret is given.
var ErrEmptySecret = errors.New("empty secret")

// Verifier produces and checks integrity tokens of the form
// Hash(id + secret + payload). A token computed by an independent system
// that shares the secret verifies only if the id and payload are unchanged.
type Verifier struct {
	secret string
}

// NewVerifier returns a Verifier using the shared secret.
func NewVerifier(secret string) (*Verifier, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	return &Verifier{secret: secret}, nil
}

// Token returns the integrity token for id and payload.
func (v *Verifier) Token(id, payload string) string {
	return HashBytes([]byte(id + v.secret + payload))
}

// Verify reports whether token is exactly the token for id and payload.
// Comparison is byte for byte; an uppercase token never matches.
func (v *Verifier) Verify(id, payload, token string) bool {
	return v.Token(id, payload) == token
}

// String redacts the secret.
func (v *Verifier) String() string {
	return "Verifier{secret:<redacted>}"
}
