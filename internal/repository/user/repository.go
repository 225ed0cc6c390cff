package user

import (
	"context"

	"qkart/internal/domain"
)

// Repository persists user records, including the cart and address documents
// embedded in them. Cart and address writes are full replacements: callers
// read-modify-write the complete set.
type Repository interface {
	Create(ctx context.Context, u domain.User) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	ReplaceCart(ctx context.Context, userID string, lines []domain.CartLine) error
	ReplaceAddresses(ctx context.Context, userID string, addresses []domain.Address) error
	// CompleteOrder debits total from the user's balance and clears the cart
	// as a single write. Returns domain.ErrNotFound when the user is missing
	// or the balance no longer covers the total.
	CompleteOrder(ctx context.Context, userID string, total int64) error
}
