package service

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/horizon/internal/app"
	"github.com/alexanderramin/horizon/internal/domain"
	"github.com/alexanderramin/horizon/internal/portfolio"
)

type portfolioService struct {
	snap     *domain.Snapshot
	observer UseCaseObserver
}

// NewPortfolioService serves views derived from snap. A nil snapshot is
// treated as an empty portfolio.
func NewPortfolioService(snap *domain.Snapshot, observers ...UseCaseObserver) PortfolioService {
	if snap == nil {
		snap = &domain.Snapshot{}
	}
	return &portfolioService{
		snap:     snap,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *portfolioService) Snapshot() *domain.Snapshot {
	return s.snap
}

func (s *portfolioService) Overview(ctx context.Context, req app.OverviewRequest) (out *app.PortfolioOverview, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"top_n":     req.TopN,
		"reconcile": req.IncludeReconciliation,
	}
	defer observe(ctx, s.observer, UseCaseOverview, startedAt, fields, &err)

	streams := s.snap.ValueStreams
	products := portfolio.AllProducts(streams)
	count := portfolio.TotalProductCount(streams)
	benefit := portfolio.PortfolioBenefit(streams)
	cost := portfolio.PortfolioCloudCost(streams)

	out = &app.PortfolioOverview{
		GeneratedAt:      startedAt,
		Source:           s.snap.Source,
		ProductCount:     count,
		ValueStreamCount: len(streams),
		TotalBenefit:     benefit,
		MonthlyCloudCost: cost,
		ROI:              portfolio.PortfolioROI(benefit, cost),
		AtRiskCount:      portfolio.AtRiskProductCount(products),
		Horizons:         portfolio.HorizonBreakdown(portfolio.HorizonDistribution(products), count),
		TopProducts:      portfolio.TopProductsByBenefit(products, req.TopN),
		ValueStreams:     make([]app.ValueStreamSummary, 0, len(streams)),
	}
	for i := range streams {
		out.ValueStreams = append(out.ValueStreams, s.summarize(&streams[i], req.TopN))
	}

	if req.IncludeReconciliation {
		out.Discrepancies = portfolio.Reconcile(streams, s.snap.Managers)
		out.Reconciled = true
		fields["discrepancies"] = len(out.Discrepancies)
	}
	fields["product_count"] = count
	fields["at_risk"] = out.AtRiskCount
	return out, nil
}

func (s *portfolioService) ValueStream(ctx context.Context, id string, topN int) (out *app.ValueStreamSummary, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"value_stream": id, "top_n": topN}
	defer observe(ctx, s.observer, UseCaseValueStream, startedAt, fields, &err)

	if strings.TrimSpace(id) == "" {
		return nil, app.NewInvalidArgError("value stream", "value stream id is required")
	}
	vs, ok := portfolio.FindValueStream(s.snap.ValueStreams, id)
	if !ok {
		return nil, app.NewNotFoundError("value stream", id)
	}
	summary := s.summarize(&vs, topN)
	fields["product_count"] = summary.ProductCount
	return &summary, nil
}

func (s *portfolioService) Product(ctx context.Context, id string) (out *app.ProductDetail, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"product": id}
	defer observe(ctx, s.observer, UseCaseProductDetail, startedAt, fields, &err)

	if strings.TrimSpace(id) == "" {
		return nil, app.NewInvalidArgError("product", "product id is required")
	}
	p, vs, ok := portfolio.FindProduct(s.snap.ValueStreams, id)
	if !ok {
		return nil, app.NewNotFoundError("product", id)
	}
	fields["value_stream"] = vs.ID

	return &app.ProductDetail{
		ProductSummary:     summarizeProduct(p),
		ValueStreamID:      vs.ID,
		ValueStreamName:    vs.Name,
		StakeholdersByRole: portfolio.StakeholdersByRole(p.Stakeholders),
	}, nil
}

func (s *portfolioService) summarize(vs *domain.ValueStream, topN int) app.ValueStreamSummary {
	summary := app.ValueStreamSummary{
		ID:               vs.ID,
		Name:             vs.Name,
		ShortName:        vs.ShortName(),
		Description:      vs.Description,
		TotalBenefit:     vs.TotalBenefit,
		MonthlyCloudCost: vs.TotalCloudCosts,
		ROI:              portfolio.PortfolioROI(vs.TotalBenefit, vs.TotalCloudCosts),
		ProductCount:     len(vs.Products),
		AtRiskCount:      portfolio.AtRiskProductCount(vs.Products),
		Horizons:         portfolio.PresentHorizons(portfolio.HorizonDistribution(vs.Products)),
		TopProducts:      portfolio.TopProductsByBenefit(vs.Products, topN),
		Products:         make([]app.ProductSummary, 0, len(vs.Products)),
	}
	if pm, ok := portfolio.LookupProductManager(s.snap.Managers, vs.ProductManagerID); ok {
		summary.Manager = &pm
	}
	for _, p := range vs.Products {
		summary.Products = append(summary.Products, summarizeProduct(p))
	}
	return summary
}

func summarizeProduct(p domain.Product) app.ProductSummary {
	return app.ProductSummary{
		Product:             p,
		AtRisk:              portfolio.IsAtRisk(p),
		CompletedMilestones: portfolio.CompletedMilestoneCount(p.Milestones),
		HighSeverityRisks:   portfolio.HighSeverityRiskCount(p.Risks),
	}
}
