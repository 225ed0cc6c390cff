package checkout

import (
	"context"
	"errors"

	"qkart/internal/domain"
	cartsvc "qkart/internal/service/cart"
)

var (
	// ErrEmptyCart is returned when the cart totals to zero.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrInsufficientBalance is returned when the wallet cannot cover the total.
	ErrInsufficientBalance = errors.New("wallet balance not sufficient to place order")
	// ErrNoAddress is returned when no shipping address was selected.
	ErrNoAddress = errors.New("address not set")
	// ErrBadAddress is returned when the selected address does not belong to the user.
	ErrBadAddress = errors.New("bad address specified")
)

type userRepo interface {
	CompleteOrder(ctx context.Context, userID string, total int64) error
}

type productRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

// Service runs the checkout flow: collect cart items, validate, then commit
// an atomic balance debit plus cart clear. The flow is linear and
// non-resumable; a failed validation leaves the user record untouched.
type Service struct {
	users    userRepo
	products productRepo
}

func New(users userRepo, products productRepo) *Service {
	return &Service{users: users, products: products}
}

// Submit validates in fixed order (empty cart, insufficient balance, missing
// address, unknown address) and reports the first failure. On success the
// user's balance is debited by the cart total and the cart is emptied as a
// single write; the in-memory user is updated to match.
func (s *Service) Submit(ctx context.Context, u *domain.User, addressID string) error {
	items, err := s.collect(ctx, u.Cart)
	if err != nil {
		return err
	}
	total := cartsvc.Total(items)

	if total == 0 {
		return ErrEmptyCart
	}
	if u.Balance < total {
		return ErrInsufficientBalance
	}
	if addressID == "" {
		return ErrNoAddress
	}
	if !hasAddress(u.Addresses, addressID) {
		return ErrBadAddress
	}

	if err := s.users.CompleteOrder(ctx, u.ID, total); err != nil {
		return err
	}
	u.Balance -= total
	u.Cart = []domain.CartLine{}
	return nil
}

func (s *Service) collect(ctx context.Context, lines []domain.CartLine) ([]domain.CartItem, error) {
	var lookupErr error
	items := cartsvc.Items(lines, func(productID string) (*domain.Product, bool) {
		p, err := s.products.GetByID(ctx, productID)
		if err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				lookupErr = err
			}
			return nil, false
		}
		return p, true
	})
	if lookupErr != nil {
		return nil, lookupErr
	}
	return items, nil
}

func hasAddress(addresses []domain.Address, id string) bool {
	for _, a := range addresses {
		if a.ID == id {
			return true
		}
	}
	return false
}
