package user

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"log"
	"strings"

	"qkart/internal/domain"
	"github.com/google/uuid"
	sqlite3 "github.com/mattn/go-sqlite3"
)

type sqliteRepo struct {
	db     *sql.DB
	logger *log.Logger
}

// NewSQLite returns a Repository backed by the embedded SQLite store.
func NewSQLite(db *sql.DB, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &sqliteRepo{db: db, logger: logger}
}

func (r *sqliteRepo) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	if strings.TrimSpace(u.ID) == "" {
		u.ID = uuid.NewString()
	}
	cartJSON, err := json.Marshal(emptyIfNilLines(u.Cart))
	if err != nil {
		return nil, err
	}
	addrJSON, err := json.Marshal(emptyIfNilAddresses(u.Addresses))
	if err != nil {
		return nil, err
	}

	const q = `
INSERT INTO users (id, username, password_hash, balance, cart, addresses)
VALUES (?, ?, ?, ?, ?, ?)
`
	_, err = r.db.ExecContext(ctx, q, u.ID, u.Username, u.PasswordHash, u.Balance, string(cartJSON), string(addrJSON))
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
			return nil, domain.ErrAlreadyExists
		}
		r.logger.Printf("user repo: create username=%s error=%v", u.Username, err)
		return nil, err
	}
	return r.GetByUsername(ctx, u.Username)
}

func (r *sqliteRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	const q = `
SELECT id, username, password_hash, balance, cart, addresses, created_at
FROM users
WHERE username = ?
LIMIT 1
`
	var u domain.User
	var cartJSON, addrJSON []byte
	err := r.db.QueryRowContext(ctx, q, username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Balance, &cartJSON, &addrJSON, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("user repo: get username=%s error=%v", username, err)
		return nil, err
	}
	if err := json.Unmarshal(cartJSON, &u.Cart); err != nil {
		r.logger.Printf("user repo: decode cart id=%s err=%v", u.ID, err)
		return nil, err
	}
	if err := json.Unmarshal(addrJSON, &u.Addresses); err != nil {
		r.logger.Printf("user repo: decode addresses id=%s err=%v", u.ID, err)
		return nil, err
	}
	return &u, nil
}

func (r *sqliteRepo) ReplaceCart(ctx context.Context, userID string, lines []domain.CartLine) error {
	data, err := json.Marshal(emptyIfNilLines(lines))
	if err != nil {
		return err
	}
	return r.replaceColumn(ctx, "cart", userID, string(data))
}

func (r *sqliteRepo) ReplaceAddresses(ctx context.Context, userID string, addresses []domain.Address) error {
	data, err := json.Marshal(emptyIfNilAddresses(addresses))
	if err != nil {
		return err
	}
	return r.replaceColumn(ctx, "addresses", userID, string(data))
}

// CompleteOrder is the checkout commit: one UPDATE debits the balance and
// empties the cart. The balance guard keeps the non-negative invariant even
// if a concurrent request changed the balance after validation.
func (r *sqliteRepo) CompleteOrder(ctx context.Context, userID string, total int64) error {
	const q = `
UPDATE users
SET balance = balance - ?, cart = '[]'
WHERE id = ? AND balance >= ?
`
	res, err := r.db.ExecContext(ctx, q, total, userID, total)
	if err != nil {
		r.logger.Printf("user repo: complete order id=%s error=%v", userID, err)
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *sqliteRepo) replaceColumn(ctx context.Context, column, userID, value string) error {
	// column is one of the fixed names above, never caller input.
	q := `UPDATE users SET ` + column + ` = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, value, userID)
	if err != nil {
		r.logger.Printf("user repo: replace %s id=%s error=%v", column, userID, err)
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func emptyIfNilLines(lines []domain.CartLine) []domain.CartLine {
	if lines == nil {
		return []domain.CartLine{}
	}
	return lines
}

func emptyIfNilAddresses(addresses []domain.Address) []domain.Address {
	if addresses == nil {
		return []domain.Address{}
	}
	return addresses
}
