package account

import (
	"context"
	"errors"
	"strings"
	"testing"

	"qkart/internal/domain"
)

type stubUserRepo struct {
	replacedUserID string
	replaced       []domain.Address
	replaceErr     error
}

func (s *stubUserRepo) ReplaceAddresses(_ context.Context, userID string, addresses []domain.Address) error {
	s.replacedUserID = userID
	s.replaced = addresses
	return s.replaceErr
}

const validAddress = "21, Baker Street, Crio Lane, Bengaluru 560001"

func TestAdd_AppendsAndPersists(t *testing.T) {
	users := &stubUserRepo{}
	svc := New(users)
	u := &domain.User{ID: "u1"}

	addresses, err := svc.Add(context.Background(), u, validAddress)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if len(addresses) != 1 || addresses[0].Text != validAddress {
		t.Fatalf("unexpected addresses %+v", addresses)
	}
	if addresses[0].ID == "" {
		t.Fatal("expected generated id")
	}
	if users.replacedUserID != "u1" || len(users.replaced) != 1 {
		t.Fatalf("expected full list persisted for u1, got %q %+v", users.replacedUserID, users.replaced)
	}
}

func TestAdd_LengthBounds(t *testing.T) {
	svc := New(&stubUserRepo{})
	u := &domain.User{ID: "u1"}

	if _, err := svc.Add(context.Background(), u, "too short"); err == nil {
		t.Fatal("expected error for short address")
	} else if _, ok := domain.AsValidation(err); !ok {
		t.Fatalf("expected validation error, got %v", err)
	}

	if _, err := svc.Add(context.Background(), u, strings.Repeat("x", 129)); err == nil {
		t.Fatal("expected error for long address")
	}

	// Inclusive bounds: exactly 20 and exactly 128 are accepted.
	if _, err := svc.Add(context.Background(), u, strings.Repeat("x", 20)); err != nil {
		t.Fatalf("20 chars should pass: %v", err)
	}
	if _, err := svc.Add(context.Background(), u, strings.Repeat("x", 128)); err != nil {
		t.Fatalf("128 chars should pass: %v", err)
	}
}

func TestDelete_RemovesById(t *testing.T) {
	users := &stubUserRepo{}
	svc := New(users)
	u := &domain.User{ID: "u1", Addresses: []domain.Address{
		{ID: "a1", Text: validAddress},
		{ID: "a2", Text: validAddress + " second"},
	}}

	addresses, err := svc.Delete(context.Background(), u, "a1")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(addresses) != 1 || addresses[0].ID != "a2" {
		t.Fatalf("unexpected addresses %+v", addresses)
	}
	if len(u.Addresses) != 1 {
		t.Fatalf("in-memory user not updated: %+v", u.Addresses)
	}
}

func TestDelete_Missing(t *testing.T) {
	svc := New(&stubUserRepo{})
	u := &domain.User{ID: "u1"}

	if _, err := svc.Delete(context.Background(), u, "a1"); !errors.Is(err, ErrAddressNotFound) {
		t.Fatalf("expected ErrAddressNotFound, got %v", err)
	}
}
