package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"qkart/internal/domain"
	userrepo "qkart/internal/repository/user"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrUsernameTaken is returned when registering an existing username.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrUnknownUser is returned when logging in with an unknown username.
	ErrUnknownUser = errors.New("username does not exist")
	// ErrWrongPassword is returned when the password does not match.
	ErrWrongPassword = errors.New("password is incorrect")
	// ErrInvalidToken indicates the bearer token could not be verified or expired.
	ErrInvalidToken = errors.New("invalid token")
	// ErrUserVanished indicates a valid token whose user record no longer exists.
	ErrUserVanished = errors.New("user no longer exists")
)

const (
	credentialMin   = 6
	credentialMax   = 32
	startingBalance = 5000
)

// Service handles registration, login and bearer-token verification. Tokens
// are stateless signed JWTs; nothing is stored server-side.
type Service struct {
	repo     userrepo.Repository
	secret   []byte
	tokenTTL time.Duration
}

func New(repo userrepo.Repository, secret string, tokenTTL time.Duration) *Service {
	if tokenTTL <= 0 {
		tokenTTL = 6 * time.Hour
	}
	return &Service{repo: repo, secret: []byte(secret), tokenTTL: tokenTTL}
}

// Register creates a user with the starting wallet balance and empty cart
// and address list. Username and password must be 6 to 32 characters.
func (s *Service) Register(ctx context.Context, username, password string) error {
	if err := validateCredential("Username", username); err != nil {
		return err
	}
	if err := validateCredential("Password", password); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = s.repo.Create(ctx, domain.User{
		Username:     username,
		PasswordHash: string(hashed),
		Balance:      startingBalance,
		Cart:         []domain.CartLine{},
		Addresses:    []domain.Address{},
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return ErrUsernameTaken
		}
		return err
	}
	return nil
}

// Login validates credentials and returns the user with a signed token.
func (s *Service) Login(ctx context.Context, username, password string) (*domain.User, string, error) {
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", ErrUnknownUser
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrWrongPassword
	}

	token, err := s.issueToken(u.Username)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Authenticate verifies a bearer token and loads the user it names.
// Invalid or expired tokens map to ErrInvalidToken; a verified token whose
// user record has vanished maps to ErrUserVanished.
func (s *Service) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	username, err := s.verifyToken(token)
	if err != nil {
		return nil, ErrInvalidToken
	}
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrUserVanished
		}
		return nil, err
	}
	return u, nil
}

// TokenTTL exposes the configured token lifetime.
func (s *Service) TokenTTL() time.Duration {
	return s.tokenTTL
}

func (s *Service) issueToken(username string) (string, error) {
	claims := jwt.MapClaims{
		"username": username,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Service) verifyToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	username, ok := claims["username"].(string)
	if !ok || username == "" {
		return "", ErrInvalidToken
	}
	return username, nil
}

func validateCredential(field, value string) error {
	if len(value) < credentialMin || len(value) > credentialMax {
		return domain.NewValidationError(fmt.Sprintf("%s must be between %d and %d characters in length", field, credentialMin, credentialMax))
	}
	return nil
}
