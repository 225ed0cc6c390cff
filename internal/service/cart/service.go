package cart

import (
	"context"
	"errors"

	"qkart/internal/domain"
)

// ErrUnknownProduct is returned when the product being added does not exist
// in the catalog.
var ErrUnknownProduct = errors.New("product doesn't exist")

type userRepo interface {
	ReplaceCart(ctx context.Context, userID string, lines []domain.CartLine) error
}

type productRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

// Service applies cart mutations for a user and persists them with a full
// replace of the line set. No concurrency token is used: two concurrent
// updates from the same user race last-write-wins.
type Service struct {
	users    userRepo
	products productRepo
}

func New(users userRepo, products productRepo) *Service {
	return &Service{users: users, products: products}
}

// Get returns the user's cart lines as loaded with the user record.
func (s *Service) Get(_ context.Context, u *domain.User) []domain.CartLine {
	if u.Cart == nil {
		return []domain.CartLine{}
	}
	return u.Cart
}

// Set overwrites the quantity of productID in the user's cart and persists
// the updated line set. Quantity zero deletes the line.
func (s *Service) Set(ctx context.Context, u *domain.User, productID string, qty int) ([]domain.CartLine, error) {
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrUnknownProduct
		}
		return nil, err
	}

	lines, err := SetQuantity(u.Cart, productID, qty)
	if err != nil {
		return nil, err
	}
	if err := s.users.ReplaceCart(ctx, u.ID, lines); err != nil {
		return nil, err
	}
	u.Cart = lines
	return lines, nil
}
