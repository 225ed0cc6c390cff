package account

import (
	"context"
	"errors"

	"qkart/internal/domain"
	"github.com/google/uuid"
)

// ErrAddressNotFound is returned when deleting an address the user does not own.
var ErrAddressNotFound = errors.New("address to delete was not found")

const (
	addressMin = 20
	addressMax = 128
)

type userRepo interface {
	ReplaceAddresses(ctx context.Context, userID string, addresses []domain.Address) error
}

// Service manages a user's shipping addresses. Like the cart, the list is
// persisted as a full replacement.
type Service struct {
	users userRepo
}

func New(users userRepo) *Service {
	return &Service{users: users}
}

// Addresses returns the user's address list.
func (s *Service) Addresses(_ context.Context, u *domain.User) []domain.Address {
	if u.Addresses == nil {
		return []domain.Address{}
	}
	return u.Addresses
}

// Add appends a new address and returns the updated list. The text must be
// 20 to 128 characters.
func (s *Service) Add(ctx context.Context, u *domain.User, text string) ([]domain.Address, error) {
	if len(text) < addressMin {
		return nil, domain.NewValidationError("Address should be greater than 20 characters")
	}
	if len(text) > addressMax {
		return nil, domain.NewValidationError("Address should be less than 128 characters")
	}

	updated := append(append([]domain.Address{}, u.Addresses...), domain.Address{
		ID:   uuid.NewString(),
		Text: text,
	})
	if err := s.users.ReplaceAddresses(ctx, u.ID, updated); err != nil {
		return nil, err
	}
	u.Addresses = updated
	return updated, nil
}

// Delete removes the address with the given id and returns the updated list.
func (s *Service) Delete(ctx context.Context, u *domain.User, addressID string) ([]domain.Address, error) {
	updated := make([]domain.Address, 0, len(u.Addresses))
	found := false
	for _, a := range u.Addresses {
		if a.ID == addressID {
			found = true
			continue
		}
		updated = append(updated, a)
	}
	if !found {
		return nil, ErrAddressNotFound
	}
	if err := s.users.ReplaceAddresses(ctx, u.ID, updated); err != nil {
		return nil, err
	}
	u.Addresses = updated
	return updated, nil
}
