package seed

import (
	"context"
	"database/sql"
	"fmt"

	"qkart/internal/domain"
	productrepo "qkart/internal/repository/product"
)

// Apply inserts demo catalog data for manual testing. Idempotent: rows are
// upserted by id.
func Apply(ctx context.Context, sqlDB *sql.DB) error {
	repo := productrepo.NewSQLite(sqlDB, nil)

	products := []domain.Product{
		{
			ID:       "PmInA797xJhMIPti",
			Name:     "UNIFACTOR Mens Running Shoes",
			Category: "Fashion",
			Cost:     150,
			Rating:   4,
			ImageURL: "https://crio-directus-assets.s3.ap-south-1.amazonaws.com/66550b55-8563-4cc5-b111-c3a1bb9cd3d5.png",
		},
		{
			ID:       "TwMM4OAhmK0VQ93S",
			Name:     "BULLET Bike Cover",
			Category: "Auto accessories",
			Cost:     60,
			Rating:   5,
			ImageURL: "https://crio-directus-assets.s3.ap-south-1.amazonaws.com/d2ea4a48-acad-4006-9b79-a671ae915fca.png",
		},
		{
			ID:       "KCRwjF7lN97HnEaY",
			Name:     "Fossil Hybrid Smartwatch",
			Category: "Watches",
			Cost:     100,
			Rating:   5,
			ImageURL: "https://crio-directus-assets.s3.ap-south-1.amazonaws.com/6692eafd-f0a1-4dbb-b40f-4d24032e2332.png",
		},
		{
			ID:       "upLK9JbQ4rMhTwt4",
			Name:     "Attitudist Handcrafted Leather Belt",
			Category: "Fashion",
			Cost:     45,
			Rating:   3,
			ImageURL: "https://crio-directus-assets.s3.ap-south-1.amazonaws.com/1d321c16-3616-43c6-b772-4d62f7dcd57f.png",
		},
		{
			ID:       "BW0jAAeDJmlZCF8i",
			Name:     "YONEX Smash Badminton Racquet",
			Category: "Sports",
			Cost:     100,
			Rating:   5,
			ImageURL: "https://crio-directus-assets.s3.ap-south-1.amazonaws.com/64b930f7-3c82-4a29-a433-dbc6f04dcbc5.png",
		},
	}

	for _, p := range products {
		if _, err := repo.Upsert(ctx, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.ID, err)
		}
	}

	return nil
}
