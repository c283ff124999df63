package services

import "github.com/custodia-labs/farescope/internal/core/domain"

// Cheapest returns the item with the lowest price.
// Ties go to the earliest item. Empty input returns the zero value and false.
func Cheapest[T domain.Priced](items []T) (T, bool) {
	var best T
	if len(items) == 0 {
		return best, false
	}

	best = items[0]
	for _, item := range items[1:] {
		if item.Price().LessThan(best.Price()) {
			best = item
		}
	}
	return best, true
}
