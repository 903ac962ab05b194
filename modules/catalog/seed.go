package catalog

import (
	"time"

	domain "github.com/example/storefront-demo/domain/catalog"
)

// seedProducts returns the fixed starter catalog installed when the
// products key is empty on first load.
func seedProducts(now time.Time) []domain.Product {
	return []domain.Product{
		{
			ID:        1,
			Name:      "Wireless Headphones Pro",
			Category:  "Electronics",
			Price:     299.99,
			Quantity:  15,
			Image:     "https://picsum.photos/seed/headphones/400/300",
			CreatedAt: now,
		},
		{
			ID:        2,
			Name:      "Smart Watch Ultra",
			Category:  "Electronics",
			Price:     449.99,
			Quantity:  8,
			Image:     "https://picsum.photos/seed/smartwatch/400/300",
			CreatedAt: now,
		},
		{
			ID:        3,
			Name:      "Premium Leather Jacket",
			Category:  "Clothing",
			Price:     599.99,
			Quantity:  12,
			Image:     "https://picsum.photos/seed/jacket/400/300",
			CreatedAt: now,
		},
		{
			ID:        4,
			Name:      "JavaScript: The Complete Guide",
			Category:  "Books",
			Price:     49.99,
			Quantity:  25,
			Image:     "https://picsum.photos/seed/jsbook/400/300",
			CreatedAt: now,
		},
		{
			ID:        5,
			Name:      "Smart Home Hub",
			Category:  "Electronics",
			Price:     199.99,
			Quantity:  20,
			Image:     "https://picsum.photos/seed/smarthome/400/300",
			CreatedAt: now,
		},
		{
			ID:        6,
			Name:      "Yoga Mat Premium",
			Category:  "Sports",
			Price:     79.99,
			Quantity:  30,
			Image:     "https://picsum.photos/seed/yogamat/400/300",
			CreatedAt: now,
		},
	}
}
