package jwtx

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretLength is the shortest HMAC secret accepted for HS256.
const MinSecretLength = 32

// HS256 signs and verifies member tokens with a shared secret. The service
// that mints tokens is the only one that verifies them, so a symmetric key is
// enough.
type HS256 struct {
	secret []byte
	opts   VerifyOptions
}

// NewHS256 returns an HS256 signer/verifier. The secret must be at least
// MinSecretLength bytes.
func NewHS256(secret []byte, opts VerifyOptions) (*HS256, error) {
	if len(secret) < MinSecretLength {
		return nil, ErrWeakSecret
	}
	return &HS256{secret: append([]byte(nil), secret...), opts: opts}, nil
}

func (h *HS256) Alg() string { return jwt.SigningMethodHS256.Alg() }

func (h *HS256) Sign(c Claims) (string, error) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	s, err := tok.SignedString(h.secret)
	if err != nil {
		return "", fmt.Errorf("jwtx: sign: %w", err)
	}
	return s, nil
}

func (h *HS256) Verify(raw string) (Claims, error) {
	// Time-based checks run below so the injected clock and leeway apply.
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)

	var claims Claims
	_, err := parser.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return h.secret, nil
	})
	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return Claims{}, ErrInvalidSig
	default:
		return Claims{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if claims.Subject == "" {
		return Claims{}, ErrInvalidClaim
	}
	if err := claims.ValidateIssuer(h.opts.Issuer); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateAudience(h.opts.Audience); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateExpiry(h.opts.now(), h.opts.Leeway); err != nil {
		return Claims{}, err
	}
	return claims, nil
}
