package cart

import (
	"qkart/internal/domain"
)

// Items joins cart lines against the catalog. A line whose product is missing
// from the lookup is dropped; the catalog is assumed complete in practice.
func Items(lines []domain.CartLine, lookup func(productID string) (*domain.Product, bool)) []domain.CartItem {
	items := make([]domain.CartItem, 0, len(lines))
	for _, line := range lines {
		p, ok := lookup(line.ProductID)
		if !ok {
			continue
		}
		items = append(items, domain.CartItem{
			ProductID: line.ProductID,
			Name:      p.Name,
			Category:  p.Category,
			Cost:      p.Cost,
			Rating:    p.Rating,
			ImageURL:  p.ImageURL,
			Quantity:  line.Quantity,
		})
	}
	return items
}

// SetQuantity returns the line list with productID set to qty. Quantity zero
// removes the line; a line is appended when absent. The result never holds
// two lines for one product, and a zero quantity is never stored.
func SetQuantity(lines []domain.CartLine, productID string, qty int) ([]domain.CartLine, error) {
	if qty < 0 {
		return nil, domain.NewValidationError("Quantity cannot be negative")
	}
	out := make([]domain.CartLine, 0, len(lines)+1)
	found := false
	for _, line := range lines {
		if line.ProductID == productID {
			found = true
			if qty > 0 {
				out = append(out, domain.CartLine{ProductID: productID, Quantity: qty})
			}
			continue
		}
		out = append(out, line)
	}
	if !found && qty > 0 {
		out = append(out, domain.CartLine{ProductID: productID, Quantity: qty})
	}
	return out, nil
}

// Total sums cost times quantity over the items. An empty cart totals to 0.
func Total(items []domain.CartItem) int64 {
	var total int64
	for _, item := range items {
		total += item.Cost * int64(item.Quantity)
	}
	return total
}
