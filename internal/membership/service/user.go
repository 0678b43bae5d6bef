package service

import (
	"context"

	"github.com/aussiebroadwan/circle/internal/membership/domain"
	"github.com/aussiebroadwan/circle/internal/membership/store"
)

type UserService struct {
	Store store.Store
}

// ListMembers returns the member directory ordered by name.
func (s *UserService) ListMembers(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().ListUsers(ctx)
}
