package portfolio

import (
	"sort"

	"github.com/alexanderramin/horizon/internal/domain"
)

// DefaultTopN is the number of products shown in "top by benefit" lists.
const DefaultTopN = 3

// TopProductsByBenefit returns up to n products ordered by EstimatedBenefit
// descending. Equal benefits are ordered by ascending product ID so the
// result does not depend on input order. n <= 0 selects DefaultTopN; n
// larger than the input returns every product.
//
// The input slice is not reordered.
func TopProductsByBenefit(products []domain.Product, n int) []domain.Product {
	if n <= 0 {
		n = DefaultTopN
	}
	sorted := make([]domain.Product, len(products))
	copy(sorted, products)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].EstimatedBenefit != sorted[j].EstimatedBenefit {
			return sorted[i].EstimatedBenefit > sorted[j].EstimatedBenefit
		}
		return sorted[i].ID < sorted[j].ID
	})

	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}
