package portfolio

import (
	"math"
	"testing"

	"github.com/alexanderramin/horizon/internal/domain"
	"github.com/alexanderramin/horizon/internal/fixture"
	"github.com/alexanderramin/horizon/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestTotalProductCount_SumsAcrossStreams(t *testing.T) {
	streams := []domain.ValueStream{
		testutil.NewTestValueStream("A", testutil.WithProducts(
			testutil.NewTestProduct("a1"), testutil.NewTestProduct("a2"))),
		testutil.NewTestValueStream("B"),
		testutil.NewTestValueStream("C", testutil.WithProducts(testutil.NewTestProduct("c1"))),
	}
	assert.Equal(t, 3, TotalProductCount(streams))
}

func TestTotalProductCount_Empty(t *testing.T) {
	assert.Equal(t, 0, TotalProductCount(nil))
	assert.Equal(t, 0, TotalProductCount([]domain.ValueStream{}))
}

func TestPortfolioBenefit_UsesStoredTotals(t *testing.T) {
	// Stored totals deliberately disagree with the nested products.
	vs := testutil.NewTestValueStream("A",
		testutil.WithProducts(testutil.NewTestProduct("a1", testutil.WithBenefit(10))),
		testutil.WithStoredTotals(1000, 50),
	)
	streams := []domain.ValueStream{vs}

	assert.Equal(t, 1000.0, PortfolioBenefit(streams))
	assert.Equal(t, 50.0, PortfolioCloudCost(streams))
}

func TestPortfolioROI_Rounded(t *testing.T) {
	// 2500/mo -> 30000/yr; 1.5M / 30k = 50
	assert.Equal(t, 50.0, PortfolioROI(1_500_000, 2_500))
	// 5.9M / 1.26M = 4.6825... -> 4.68
	assert.Equal(t, 4.68, PortfolioROI(5_900_000, 105_000))
	// Half-up at the second decimal.
	assert.Equal(t, 0.13, PortfolioROI(1.5, 1)) // 1.5/12 = 0.125
}

func TestPortfolioROI_ZeroCostIsNonFinite(t *testing.T) {
	assert.NotPanics(t, func() { PortfolioROI(100, 0) })

	roi := PortfolioROI(100, 0)
	assert.True(t, math.IsInf(roi, 1))
	assert.False(t, ROIAvailable(roi))

	roi = PortfolioROI(0, 0)
	assert.True(t, math.IsNaN(roi))
	assert.False(t, ROIAvailable(roi))
}

func TestROIAvailable_Finite(t *testing.T) {
	assert.True(t, ROIAvailable(0))
	assert.True(t, ROIAvailable(4.68))
}

func TestAllProducts_PreservesOrder(t *testing.T) {
	streams := fixture.ValueStreams()
	products := AllProducts(streams)

	ids := make([]string, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	assert.Equal(t, []string{"p1", "p2", "p3", "p4", "p5", "p6", "p7"}, ids)
}

func TestDerivedTotals(t *testing.T) {
	products := []domain.Product{
		testutil.NewTestProduct("a", testutil.WithBenefit(100), testutil.WithCloudCosts(5)),
		testutil.NewTestProduct("b", testutil.WithBenefit(250), testutil.WithCloudCosts(7)),
	}
	assert.Equal(t, 350.0, DerivedBenefit(products))
	assert.Equal(t, 12.0, DerivedCloudCost(products))
	assert.Equal(t, 0.0, DerivedBenefit(nil))
}

func TestFixture_PortfolioTotals(t *testing.T) {
	snap := fixture.Snapshot()

	assert.Equal(t, 3, len(snap.ValueStreams))
	assert.Equal(t, 7, TotalProductCount(snap.ValueStreams))
	assert.Equal(t, 5_900_000.0, PortfolioBenefit(snap.ValueStreams))
	assert.Equal(t, 105_000.0, PortfolioCloudCost(snap.ValueStreams))
	assert.Equal(t, 4.68, PortfolioROI(PortfolioBenefit(snap.ValueStreams), PortfolioCloudCost(snap.ValueStreams)))
	assert.Equal(t, 2, AtRiskProductCount(AllProducts(snap.ValueStreams)))
}
