package product

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"qkart/internal/db"
	"qkart/internal/domain"
	"qkart/internal/migrate"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	sqlDB, err := db.Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })
	if err := migrate.Apply(sqlDB); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return sqlDB
}

func seedCatalog(t *testing.T, repo Repository) {
	t.Helper()
	for _, p := range []domain.Product{
		{ID: "shoes", Name: "UNIFACTOR Mens Running Shoes", Category: "Fashion", Cost: 50, Rating: 5},
		{ID: "phone-cover", Name: "YONEX Smash Badminton Racquet", Category: "Sports", Cost: 100, Rating: 5},
		{ID: "tan-bag", Name: "Tan Leatherette Weekender Duffle", Category: "Fashion", Cost: 150, Rating: 4},
	} {
		if _, err := repo.Upsert(context.Background(), p); err != nil {
			t.Fatalf("seed %s: %v", p.ID, err)
		}
	}
}

func TestListAndGet(t *testing.T) {
	repo := NewSQLite(openTestDB(t), nil)
	seedCatalog(t, repo)

	all, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 products, got %d", len(all))
	}

	p, err := repo.GetByID(context.Background(), "tan-bag")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.Cost != 150 || p.Category != "Fashion" {
		t.Fatalf("unexpected product %+v", p)
	}
}

func TestGet_Missing(t *testing.T) {
	repo := NewSQLite(openTestDB(t), nil)

	if _, err := repo.GetByID(context.Background(), "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpsert_RefreshesExistingRow(t *testing.T) {
	repo := NewSQLite(openTestDB(t), nil)
	seedCatalog(t, repo)

	updated, err := repo.Upsert(context.Background(), domain.Product{
		ID: "shoes", Name: "UNIFACTOR Mens Running Shoes", Category: "Fashion", Cost: 75, Rating: 4,
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if updated.Cost != 75 || updated.Rating != 4 {
		t.Fatalf("row not refreshed: %+v", updated)
	}

	all, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("upsert duplicated a row, got %d products", len(all))
	}
}

func TestUpsert_GeneratesID(t *testing.T) {
	repo := NewSQLite(openTestDB(t), nil)

	p, err := repo.Upsert(context.Background(), domain.Product{Name: "Plain Tee", Category: "Fashion", Cost: 20, Rating: 3})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if p.ID == "" {
		t.Fatal("expected generated id")
	}
}

func TestSearch(t *testing.T) {
	repo := NewSQLite(openTestDB(t), nil)
	seedCatalog(t, repo)

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{name: "matches name case-insensitively", query: "RUNNING", want: 1},
		{name: "matches category", query: "fashion", want: 2},
		{name: "substring match", query: "eather", want: 1},
		{name: "no match", query: "laptop", want: 0},
		{name: "empty query matches everything", query: "", want: 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := repo.Search(context.Background(), tc.query)
			if err != nil {
				t.Fatalf("search %q: %v", tc.query, err)
			}
			if len(got) != tc.want {
				t.Fatalf("search %q: expected %d products, got %d", tc.query, tc.want, len(got))
			}
		})
	}
}
