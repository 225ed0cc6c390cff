package product

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log"
	"strings"

	"qkart/internal/domain"
	"github.com/google/uuid"
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

func (r *sqliteRepo) List(ctx context.Context) ([]domain.Product, error) {
	const q = `
SELECT id, name, category, cost, rating, image_url, created_at
FROM products
ORDER BY created_at, id
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		r.logger.Printf("product repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()
	return r.collect(rows)
}

func (r *sqliteRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	const q = `
SELECT id, name, category, cost, rating, image_url, created_at
FROM products
WHERE id = ?
`
	var p domain.Product
	err := r.db.QueryRowContext(ctx, q, id).Scan(&p.ID, &p.Name, &p.Category, &p.Cost, &p.Rating, &p.ImageURL, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: get id=%s error=%v", id, err)
		return nil, err
	}
	return &p, nil
}

// Search matches the query as a case-insensitive substring of the product
// name or category. An empty query matches everything.
func (r *sqliteRepo) Search(ctx context.Context, query string) ([]domain.Product, error) {
	const q = `
SELECT id, name, category, cost, rating, image_url, created_at
FROM products
WHERE name LIKE '%' || ? || '%' COLLATE NOCASE
   OR category LIKE '%' || ? || '%' COLLATE NOCASE
ORDER BY created_at, id
`
	rows, err := r.db.QueryContext(ctx, q, query, query)
	if err != nil {
		r.logger.Printf("product repo: search query=%q error=%v", query, err)
		return nil, err
	}
	defer rows.Close()
	return r.collect(rows)
}

// Upsert inserts a product or refreshes an existing row by id. Used by the
// seed tool; the API never writes the catalog.
func (r *sqliteRepo) Upsert(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if strings.TrimSpace(p.ID) == "" {
		p.ID = uuid.NewString()
	}
	const q = `
INSERT INTO products (id, name, category, cost, rating, image_url)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT (id) DO UPDATE SET
    name = excluded.name,
    category = excluded.category,
    cost = excluded.cost,
    rating = excluded.rating,
    image_url = excluded.image_url
`
	if _, err := r.db.ExecContext(ctx, q, p.ID, p.Name, p.Category, p.Cost, p.Rating, p.ImageURL); err != nil {
		r.logger.Printf("product repo: upsert id=%s error=%v", p.ID, err)
		return nil, err
	}
	return r.GetByID(ctx, p.ID)
}

func (r *sqliteRepo) collect(rows *sql.Rows) ([]domain.Product, error) {
	var result []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Cost, &p.Rating, &p.ImageURL, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("product repo: rows error=%v", err)
		return nil, err
	}
	return result, nil
}
