package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/alexanderramin/horizon/internal/app"
	"github.com/alexanderramin/horizon/internal/domain"
	"github.com/alexanderramin/horizon/internal/fixture"
	"github.com/alexanderramin/horizon/internal/portfolio"
	"github.com/alexanderramin/horizon/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.events = append(r.events, e)
}

func productIDs(products []domain.Product) []string {
	ids := make([]string, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}

func TestOverview_Fixture(t *testing.T) {
	svc := NewPortfolioService(fixture.Snapshot())

	o, err := svc.Overview(context.Background(), app.NewOverviewRequest())
	require.NoError(t, err)

	assert.Equal(t, fixture.SourceName, o.Source)
	assert.Equal(t, 7, o.ProductCount)
	assert.Equal(t, 3, o.ValueStreamCount)
	assert.Equal(t, 5900000.0, o.TotalBenefit)
	assert.Equal(t, 105000.0, o.MonthlyCloudCost)
	assert.Equal(t, 4.68, o.ROI)
	assert.Equal(t, 2, o.AtRiskCount)
	assert.Equal(t, []string{"p1", "p4", "p2"}, productIDs(o.TopProducts))
	assert.False(t, o.Reconciled)
	assert.Nil(t, o.Discrepancies)

	require.Len(t, o.Horizons, len(domain.AllHorizons()))
	counts := map[domain.Horizon]int{}
	for _, share := range o.Horizons {
		counts[share.Horizon] = share.Count
	}
	assert.Equal(t, map[domain.Horizon]int{
		domain.HorizonIdea:       1,
		domain.HorizonEvaluation: 2,
		domain.HorizonEmerging:   1,
		domain.HorizonInvesting:  2,
		domain.HorizonExtracting: 1,
		domain.HorizonRetiring:   0,
	}, counts)

	require.Len(t, o.ValueStreams, 3)
	vs1 := o.ValueStreams[0]
	assert.Equal(t, "Efficiency", vs1.ShortName)
	require.NotNil(t, vs1.Manager)
	assert.Equal(t, "Sarah Johnson", vs1.Manager.Name)
	assert.Equal(t, 5.19, vs1.ROI)
	assert.Equal(t, 1, vs1.AtRiskCount)
	assert.Equal(t, []string{"p1", "p2", "p3"}, productIDs(vs1.TopProducts))
}

func TestOverview_TopNAndReconciliation(t *testing.T) {
	svc := NewPortfolioService(fixture.Snapshot())

	o, err := svc.Overview(context.Background(), app.OverviewRequest{TopN: 10, IncludeReconciliation: true})
	require.NoError(t, err)
	assert.Len(t, o.TopProducts, 7)
	assert.True(t, o.Reconciled)
	assert.Empty(t, o.Discrepancies)
}

func TestOverview_ReportsAlteredStoredTotal(t *testing.T) {
	snap := fixture.Snapshot()
	snap.ValueStreams[1].TotalBenefit = 2000000

	o, err := NewPortfolioService(snap).Overview(context.Background(),
		app.OverviewRequest{IncludeReconciliation: true})
	require.NoError(t, err)

	// Stored totals are reported as given.
	assert.Equal(t, 6000000.0, o.TotalBenefit)
	require.Len(t, o.Discrepancies, 1)
	assert.Equal(t, portfolio.DiscrepancyBenefit, o.Discrepancies[0].Kind)
	assert.Equal(t, "vs2", o.Discrepancies[0].ValueStreamID)
}

func TestOverview_EmptySnapshot(t *testing.T) {
	o, err := NewPortfolioService(nil).Overview(context.Background(), app.NewOverviewRequest())
	require.NoError(t, err)
	assert.Zero(t, o.ProductCount)
	assert.Empty(t, o.ValueStreams)
	assert.Empty(t, o.TopProducts)
	assert.True(t, math.IsNaN(o.ROI))
	for _, share := range o.Horizons {
		assert.Zero(t, share.Pct)
	}
}

func TestOverview_DoesNotReorderSnapshot(t *testing.T) {
	snap := fixture.Snapshot()
	svc := NewPortfolioService(snap)

	_, err := svc.Overview(context.Background(), app.NewOverviewRequest())
	require.NoError(t, err)
	assert.Equal(t, fixture.ValueStreams(), snap.ValueStreams)
	assert.Same(t, snap, svc.Snapshot())
}

func TestValueStream_Found(t *testing.T) {
	svc := NewPortfolioService(fixture.Snapshot())

	vs, err := svc.ValueStream(context.Background(), "vs2", 1)
	require.NoError(t, err)
	assert.Equal(t, "Customer Experience", vs.Name)
	assert.Equal(t, "Customer", vs.ShortName)
	assert.Equal(t, "Mike Chen", vs.Manager.Name)
	assert.Equal(t, 4.95, vs.ROI)
	assert.Equal(t, 2, vs.ProductCount)
	assert.Equal(t, []string{"p4"}, productIDs(vs.TopProducts))

	require.Len(t, vs.Horizons, 2)
	assert.Equal(t, domain.HorizonEvaluation, vs.Horizons[0].Horizon)
	assert.Equal(t, domain.HorizonInvesting, vs.Horizons[1].Horizon)
	assert.Equal(t, 50.0, vs.Horizons[0].Pct)

	require.Len(t, vs.Products, 2)
	assert.True(t, vs.Products[0].AtRisk)
	assert.Equal(t, 1, vs.Products[0].HighSeverityRisks)
	assert.False(t, vs.Products[1].AtRisk)
}

func TestValueStream_UnknownManagerIsNil(t *testing.T) {
	snap := testutil.NewTestSnapshot(nil, testutil.NewTestValueStream("Orphan",
		testutil.WithStreamID("vs-x"), testutil.WithManager("pm-gone")))

	vs, err := NewPortfolioService(snap).ValueStream(context.Background(), "vs-x", 0)
	require.NoError(t, err)
	assert.Nil(t, vs.Manager)
	assert.Empty(t, vs.Products)
	assert.Empty(t, vs.Horizons)
}

func TestValueStream_Errors(t *testing.T) {
	svc := NewPortfolioService(fixture.Snapshot())

	_, err := svc.ValueStream(context.Background(), "vs9", 3)
	var lookupErr *app.LookupError
	require.True(t, errors.As(err, &lookupErr))
	assert.Equal(t, app.LookupNotFound, lookupErr.Code)
	assert.Equal(t, "vs9", lookupErr.ID)
	assert.Equal(t, `NOT_FOUND: value stream "vs9" not found`, err.Error())

	_, err = svc.ValueStream(context.Background(), " ", 3)
	require.True(t, errors.As(err, &lookupErr))
	assert.Equal(t, app.LookupInvalidArg, lookupErr.Code)
}

func TestProduct_Detail(t *testing.T) {
	svc := NewPortfolioService(fixture.Snapshot())

	d, err := svc.Product(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "Cost Optimization Platform", d.Product.Name)
	assert.Equal(t, "vs1", d.ValueStreamID)
	assert.Equal(t, "Efficiency Value Stream", d.ValueStreamName)
	assert.True(t, d.AtRisk)
	assert.Equal(t, 1, d.CompletedMilestones)
	assert.Equal(t, 1, d.HighSeverityRisks)

	require.Len(t, d.StakeholdersByRole[domain.RACIAccountable], 1)
	assert.Equal(t, "s1", d.StakeholdersByRole[domain.RACIAccountable][0].ID)
	assert.Equal(t, "s2", d.StakeholdersByRole[domain.RACIResponsible][0].ID)
	assert.NotContains(t, d.StakeholdersByRole, domain.RACIInformed)
}

func TestProduct_NotFound(t *testing.T) {
	_, err := NewPortfolioService(fixture.Snapshot()).Product(context.Background(), "p99")
	var lookupErr *app.LookupError
	require.True(t, errors.As(err, &lookupErr))
	assert.Equal(t, app.LookupNotFound, lookupErr.Code)
	assert.Equal(t, "product", lookupErr.Entity)
}

func TestPortfolioService_ObservesUseCases(t *testing.T) {
	obs := &recordingObserver{}
	svc := NewPortfolioService(fixture.Snapshot(), obs)
	ctx := context.Background()

	_, err := svc.Overview(ctx, app.NewOverviewRequest())
	require.NoError(t, err)
	_, err = svc.Product(ctx, "missing")
	require.Error(t, err)

	require.Len(t, obs.events, 2)
	assert.Equal(t, UseCaseOverview, obs.events[0].Name)
	assert.True(t, obs.events[0].Success)
	assert.Equal(t, 7, obs.events[0].Fields["product_count"])

	assert.Equal(t, UseCaseProductDetail, obs.events[1].Name)
	assert.False(t, obs.events[1].Success)
	assert.Equal(t, err, obs.events[1].Err)
}
