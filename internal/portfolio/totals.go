// Package portfolio computes derived, read-only views over a portfolio
// snapshot: totals, horizon distributions, risk tallies and rankings.
//
// Every function is pure. Inputs are never modified, and functions that
// return a re-ordered sequence return a copy, so callers may share one
// snapshot across goroutines without coordination.
package portfolio

import (
	"math"

	"github.com/alexanderramin/horizon/internal/domain"
)

// monthsPerYear annualizes monthly cloud costs for ROI.
const monthsPerYear = 12

// TotalProductCount returns the number of products across all value streams.
func TotalProductCount(streams []domain.ValueStream) int {
	n := 0
	for _, vs := range streams {
		n += len(vs.Products)
	}
	return n
}

// PortfolioBenefit sums the stored TotalBenefit of each stream. It does not
// recompute from nested products.
func PortfolioBenefit(streams []domain.ValueStream) float64 {
	var sum float64
	for _, vs := range streams {
		sum += vs.TotalBenefit
	}
	return sum
}

// PortfolioCloudCost sums the stored monthly TotalCloudCosts of each stream.
func PortfolioCloudCost(streams []domain.ValueStream) float64 {
	var sum float64
	for _, vs := range streams {
		sum += vs.TotalCloudCosts
	}
	return sum
}

// PortfolioROI returns annual benefit divided by annualized monthly cost,
// rounded half-up to two decimals.
//
// A zero monthly cost does not panic: the result is +Inf (or -Inf) for a
// non-zero benefit and NaN when both are zero. Use ROIAvailable before
// formatting the value.
func PortfolioROI(benefit, monthlyCost float64) float64 {
	ratio := benefit / (monthlyCost * monthsPerYear)
	return round2(ratio)
}

// ROIAvailable reports whether roi is a finite ratio that can be displayed.
func ROIAvailable(roi float64) bool {
	return !math.IsNaN(roi) && !math.IsInf(roi, 0)
}

// round2 rounds half toward +Inf at two decimals. Non-finite values pass
// through unchanged.
func round2(v float64) float64 {
	if !ROIAvailable(v) {
		return v
	}
	return math.Floor(v*100+0.5) / 100
}

// AllProducts flattens the products of every stream, preserving stream order
// and product order within each stream.
func AllProducts(streams []domain.ValueStream) []domain.Product {
	products := make([]domain.Product, 0, TotalProductCount(streams))
	for _, vs := range streams {
		products = append(products, vs.Products...)
	}
	return products
}

// DerivedBenefit sums EstimatedBenefit over products.
func DerivedBenefit(products []domain.Product) float64 {
	var sum float64
	for _, p := range products {
		sum += p.EstimatedBenefit
	}
	return sum
}

// DerivedCloudCost sums monthly CloudCosts over products.
func DerivedCloudCost(products []domain.Product) float64 {
	var sum float64
	for _, p := range products {
		sum += p.CloudCosts
	}
	return sum
}
