package kling

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// TokenTTL is how long a signed token stays valid after signing.
	TokenTTL = 1800 * time.Second

	// TokenSkew backdates the not-before claim to absorb clock drift
	// between this host and the API.
	TokenSkew = 5 * time.Second
)

// signer produces the short-lived bearer tokens the API expects.
type signer struct {
	accessKey string
	secretKey string
	now       func() time.Time
}

func newSigner(cfg *clientConfig) *signer {
	return &signer{
		accessKey: cfg.accessKey,
		secretKey: cfg.secretKey,
		now:       cfg.now,
	}
}

// sign returns an HS256 JWT with iss=access key, nbf=now-5s, exp=now+1800s.
// Tokens are never reused across requests.
func (s *signer) sign() (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Issuer:    s.accessKey,
		NotBefore: jwt.NewNumericDate(now.Add(-TokenSkew)),
		ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secretKey))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
