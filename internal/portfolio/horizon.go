package portfolio

import (
	"sort"

	"github.com/alexanderramin/horizon/internal/domain"
)

// HorizonShare is one row of a horizon distribution.
type HorizonShare struct {
	Horizon domain.Horizon
	Count   int
	Pct     float64 // 0..100, unrounded
}

// HorizonDistribution counts products per horizon. Horizons with no products
// are absent from the map; callers default missing keys to zero.
func HorizonDistribution(products []domain.Product) map[domain.Horizon]int {
	dist := make(map[domain.Horizon]int)
	for _, p := range products {
		dist[p.Horizon]++
	}
	return dist
}

// HorizonPercentage returns count as a percentage of total, or 0 when total
// is not positive.
func HorizonPercentage(count, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}

// HorizonBreakdown expands dist into one share per horizon in canonical
// order, including empty horizons.
func HorizonBreakdown(dist map[domain.Horizon]int, total int) []HorizonShare {
	horizons := domain.AllHorizons()
	shares := make([]HorizonShare, 0, len(horizons))
	for _, h := range horizons {
		count := dist[h]
		shares = append(shares, HorizonShare{
			Horizon: h,
			Count:   count,
			Pct:     HorizonPercentage(count, total),
		})
	}
	return shares
}

// PresentHorizons returns only the non-empty buckets of dist, in canonical
// order. Horizon values outside the canonical set are appended last.
func PresentHorizons(dist map[domain.Horizon]int) []HorizonShare {
	total := 0
	for _, c := range dist {
		total += c
	}

	var shares []HorizonShare
	seen := make(map[domain.Horizon]bool, len(dist))
	for _, h := range domain.AllHorizons() {
		seen[h] = true
		if c := dist[h]; c > 0 {
			shares = append(shares, HorizonShare{Horizon: h, Count: c, Pct: HorizonPercentage(c, total)})
		}
	}
	var extra []HorizonShare
	for h, c := range dist {
		if !seen[h] && c > 0 {
			extra = append(extra, HorizonShare{Horizon: h, Count: c, Pct: HorizonPercentage(c, total)})
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i].Horizon < extra[j].Horizon })
	return append(shares, extra...)
}
