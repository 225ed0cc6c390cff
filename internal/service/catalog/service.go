package catalog

import (
	"context"
	"strings"

	"qkart/internal/domain"
	productrepo "qkart/internal/repository/product"
)

// Service exposes the read-only product catalog.
type Service struct {
	repo productrepo.Repository
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// Search filters products by a case-insensitive substring match on name or
// category. Quote characters are stripped from the query; an empty query
// returns the unfiltered catalog.
func (s *Service) Search(ctx context.Context, query string) ([]domain.Product, error) {
	query = strings.NewReplacer(`'`, "", `"`, "").Replace(query)
	return s.repo.Search(ctx, query)
}
