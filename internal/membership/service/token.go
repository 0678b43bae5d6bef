package service

import (
	"time"

	"github.com/aussiebroadwan/circle/internal/membership/domain"
	"github.com/aussiebroadwan/circle/pkg/jwtx"
)

// MemberAudience is the audience of every member token.
const MemberAudience = "circle-members"

// TokenService mints the bearer tokens that identify members to the API.
type TokenService struct {
	Signer jwtx.Signer
	Issuer string
	TTL    time.Duration
	Now    func() time.Time
}

// IssueMemberToken returns a signed token for u and its expiry.
func (s *TokenService) IssueMemberToken(u domain.User) (string, time.Time, error) {
	claims := jwtx.NewMemberClaims(u.ID, u.Name, u.Email, s.Issuer, []string{MemberAudience}, s.TTL, nowFrom(s.Now))
	tok, err := s.Signer.Sign(claims)
	if err != nil {
		return "", time.Time{}, err
	}
	return tok, claims.ExpiresAt.Time, nil
}
