// Package metrics exports portfolio aggregates as Prometheus gauges so a
// node-exporter textfile collector can scrape them.
package metrics

import (
	"fmt"
	"io"

	"github.com/alexanderramin/horizon/internal/app"
	"github.com/alexanderramin/horizon/internal/portfolio"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

const namespace = "horizon"

// PortfolioGauges holds one gauge per exported aggregate. Observe replaces
// every value, so a single instance can be reused across overviews.
type PortfolioGauges struct {
	products     prometheus.Gauge
	valueStreams prometheus.Gauge
	benefit      prometheus.Gauge
	cloudCost    prometheus.Gauge
	atRisk       prometheus.Gauge

	// Label-less vec so the series can be dropped when ROI is undefined.
	roi *prometheus.GaugeVec

	horizonProducts *prometheus.GaugeVec
	streamBenefit   *prometheus.GaugeVec
	streamCloudCost *prometheus.GaugeVec
	streamAtRisk    *prometheus.GaugeVec
}

func NewPortfolioGauges(reg prometheus.Registerer) *PortfolioGauges {
	f := promauto.With(reg)
	return &PortfolioGauges{
		products: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "products_total",
			Help:      "Number of products across all value streams",
		}),
		valueStreams: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "value_streams_total",
			Help:      "Number of value streams in the portfolio",
		}),
		benefit: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "portfolio_benefit",
			Help:      "Sum of stored value stream benefit",
		}),
		cloudCost: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "portfolio_cloud_cost_monthly",
			Help:      "Sum of stored monthly value stream cloud cost",
		}),
		atRisk: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "products_at_risk",
			Help:      "Products with a high or critical risk or an at-risk milestone",
		}),
		roi: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "portfolio_roi",
			Help:      "Benefit over annualised cloud cost; absent when there is no cost",
		}, nil),
		horizonProducts: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "horizon_products",
			Help:      "Products per development horizon",
		}, []string{"horizon"}),
		streamBenefit: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "value_stream_benefit",
			Help:      "Stored benefit per value stream",
		}, []string{"value_stream"}),
		streamCloudCost: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "value_stream_cloud_cost_monthly",
			Help:      "Stored monthly cloud cost per value stream",
		}, []string{"value_stream"}),
		streamAtRisk: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "value_stream_products_at_risk",
			Help:      "At-risk products per value stream",
		}, []string{"value_stream"}),
	}
}

// Observe sets every gauge from o. Streams missing from o lose their series.
func (g *PortfolioGauges) Observe(o *app.PortfolioOverview) {
	g.products.Set(float64(o.ProductCount))
	g.valueStreams.Set(float64(o.ValueStreamCount))
	g.benefit.Set(o.TotalBenefit)
	g.cloudCost.Set(o.MonthlyCloudCost)
	g.atRisk.Set(float64(o.AtRiskCount))

	g.roi.Reset()
	if portfolio.ROIAvailable(o.ROI) {
		g.roi.WithLabelValues().Set(o.ROI)
	}

	g.horizonProducts.Reset()
	for _, share := range o.Horizons {
		g.horizonProducts.WithLabelValues(string(share.Horizon)).Set(float64(share.Count))
	}

	g.streamBenefit.Reset()
	g.streamCloudCost.Reset()
	g.streamAtRisk.Reset()
	for _, vs := range o.ValueStreams {
		g.streamBenefit.WithLabelValues(vs.ID).Set(vs.TotalBenefit)
		g.streamCloudCost.WithLabelValues(vs.ID).Set(vs.MonthlyCloudCost)
		g.streamAtRisk.WithLabelValues(vs.ID).Set(float64(vs.AtRiskCount))
	}
}

// WriteTextfile atomically writes everything gathered by g to path in the
// text exposition format.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("writing metrics textfile %s: %w", path, err)
	}
	return nil
}

// Write prints everything gathered by g to w in the text exposition format.
func Write(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("encoding metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
