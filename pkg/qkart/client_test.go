package qkart

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/auth/login" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["username"] != "crio-user" || body["password"] != "secret-pass" {
			t.Fatalf("unexpected credentials %v", body)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true, "token": "tok-123", "username": "crio-user", "balance": 5000,
		})
	}))
	defer srv.Close()

	sess, err := New(srv.URL, nil).Login(context.Background(), "crio-user", "secret-pass")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if sess.Token != "tok-123" || sess.Username != "crio-user" || sess.Balance != 5000 {
		t.Fatalf("unexpected session %+v", sess)
	}
	if !sess.Active() {
		t.Fatal("expected active session")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "message": "Password is incorrect"})
	}))
	defer srv.Close()

	_, err := New(srv.URL, nil).Login(context.Background(), "crio-user", "wrong-pass")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest || apiErr.Message != "Password is incorrect" {
		t.Fatalf("unexpected error %+v", apiErr)
	}
}

func TestRegister_RejectsShortCredentialsLocally(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("request should not reach the server")
	}))
	defer srv.Close()
	c := New(srv.URL, nil)

	if err := c.Register(context.Background(), "bob", "long-enough-pass"); err == nil {
		t.Fatal("expected short username to be rejected")
	} else if !strings.Contains(err.Error(), "username") {
		t.Fatalf("expected username error, got %v", err)
	}
	if err := c.Register(context.Background(), "long-enough", "pw"); err == nil {
		t.Fatal("expected short password to be rejected")
	} else if !strings.Contains(err.Error(), "password") {
		t.Fatalf("expected password error, got %v", err)
	}
}

func TestSessionClear(t *testing.T) {
	sess := &Session{Token: "tok", Username: "crio-user", Balance: 5000}
	sess.Clear()
	if sess.Active() {
		t.Fatal("expected inactive session after clear")
	}
	if sess.Token != "" || sess.Username != "" || sess.Balance != 0 {
		t.Fatalf("state not dropped: %+v", sess)
	}
	sess.Clear() // second clear is a no-op

	var nilSess *Session
	nilSess.Clear()
	if nilSess.Active() {
		t.Fatal("nil session must never be active")
	}
}

func TestSearchProducts_EmptyResultIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("value"); got != "laptop" {
			t.Fatalf("unexpected query %q", got)
		}
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	products, err := New(srv.URL, nil).SearchProducts(context.Background(), "laptop")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if products == nil || len(products) != 0 {
		t.Fatalf("expected empty slice, got %#v", products)
	}
}

func TestAddToCart(t *testing.T) {
	cart := []CartLine{{ProductID: "shoes", Quantity: 2}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Fatalf("unexpected auth header %q", got)
		}
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/v1/cart":
			json.NewEncoder(w).Encode(cart)
		case r.Method == http.MethodPost && r.URL.Path == "/api/v1/cart":
			var body struct {
				ProductID string `json:"productId"`
				Qty       int    `json:"qty"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body.Qty != 1 {
				t.Fatalf("add must set quantity 1, got %d", body.Qty)
			}
			cart = append(cart, CartLine{ProductID: body.ProductID, Quantity: body.Qty})
			json.NewEncoder(w).Encode(cart)
		default:
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	sess := &Session{Token: "tok-123"}

	lines, err := c.AddToCart(context.Background(), sess, "tan-bag")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if len(lines) != 2 || lines[1].ProductID != "tan-bag" || lines[1].Quantity != 1 {
		t.Fatalf("unexpected cart %+v", lines)
	}

	// A second add of the same product is a warning, never an increment.
	if _, err := c.AddToCart(context.Background(), sess, "shoes"); !errors.Is(err, ErrAlreadyInCart) {
		t.Fatalf("expected ErrAlreadyInCart, got %v", err)
	}
}

func TestCheckout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/cart/checkout" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["addressId"] != "addr-1" {
			t.Fatalf("unexpected address %v", body)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	err := New(srv.URL, nil).Checkout(context.Background(), &Session{Token: "tok"}, "addr-1")
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
}

func TestAddresses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/v1/user/addresses":
			json.NewEncoder(w).Encode([]Address{{ID: "addr-1", Text: "21, Baker Street, Crio Lane, Bengaluru"}})
		case r.Method == http.MethodDelete && r.URL.Path == "/api/v1/user/addresses/addr-1":
			w.Write([]byte("[]"))
		default:
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	sess := &Session{Token: "tok"}

	added, err := c.AddAddress(context.Background(), sess, "21, Baker Street, Crio Lane, Bengaluru")
	if err != nil {
		t.Fatalf("add address: %v", err)
	}
	if len(added) != 1 || added[0].ID != "addr-1" {
		t.Fatalf("unexpected list %+v", added)
	}

	left, err := c.DeleteAddress(context.Background(), sess, "addr-1")
	if err != nil {
		t.Fatalf("delete address: %v", err)
	}
	if len(left) != 0 {
		t.Fatalf("expected empty list, got %+v", left)
	}
}
