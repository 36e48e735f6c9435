package metrics

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/horizon/internal/app"
	"github.com/alexanderramin/horizon/internal/domain"
	"github.com/alexanderramin/horizon/internal/portfolio"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOverview() *app.PortfolioOverview {
	dist := map[domain.Horizon]int{domain.HorizonInvesting: 2, domain.HorizonIdea: 1}
	return &app.PortfolioOverview{
		ProductCount:     3,
		ValueStreamCount: 2,
		TotalBenefit:     2400000,
		MonthlyCloudCost: 50000,
		ROI:              portfolio.PortfolioROI(2400000, 50000),
		AtRiskCount:      1,
		Horizons:         portfolio.HorizonBreakdown(dist, 3),
		ValueStreams: []app.ValueStreamSummary{
			{ID: "vs1", TotalBenefit: 2000000, MonthlyCloudCost: 40000, AtRiskCount: 1},
			{ID: "vs2", TotalBenefit: 400000, MonthlyCloudCost: 10000},
		},
	}
}

func TestObserve_SetsGauges(t *testing.T) {
	reg := prometheus.NewRegistry()
	g := NewPortfolioGauges(reg)
	g.Observe(sampleOverview())

	assert.Equal(t, 3.0, testutil.ToFloat64(g.products))
	assert.Equal(t, 2.0, testutil.ToFloat64(g.valueStreams))
	assert.Equal(t, 2400000.0, testutil.ToFloat64(g.benefit))
	assert.Equal(t, 50000.0, testutil.ToFloat64(g.cloudCost))
	assert.Equal(t, 1.0, testutil.ToFloat64(g.atRisk))
	assert.Equal(t, 4.0, testutil.ToFloat64(g.roi.WithLabelValues()))

	assert.Equal(t, 2.0, testutil.ToFloat64(g.horizonProducts.WithLabelValues("Investing")))
	assert.Equal(t, 0.0, testutil.ToFloat64(g.horizonProducts.WithLabelValues("Retiring")))
	assert.Equal(t, 6, testutil.CollectAndCount(g.horizonProducts))

	assert.Equal(t, 40000.0, testutil.ToFloat64(g.streamCloudCost.WithLabelValues("vs1")))
	assert.Equal(t, 1.0, testutil.ToFloat64(g.streamAtRisk.WithLabelValues("vs1")))
	assert.Equal(t, 2, testutil.CollectAndCount(g.streamBenefit))
}

func TestObserve_DropsUndefinedROI(t *testing.T) {
	reg := prometheus.NewRegistry()
	g := NewPortfolioGauges(reg)

	g.Observe(sampleOverview())
	require.Equal(t, 1, testutil.CollectAndCount(g.roi))

	o := sampleOverview()
	o.MonthlyCloudCost = 0
	o.ROI = math.Inf(1)
	g.Observe(o)
	assert.Equal(t, 0, testutil.CollectAndCount(g.roi))
}

func TestObserve_RemovesStaleStreams(t *testing.T) {
	g := NewPortfolioGauges(prometheus.NewRegistry())
	g.Observe(sampleOverview())

	o := sampleOverview()
	o.ValueStreams = o.ValueStreams[:1]
	g.Observe(o)
	assert.Equal(t, 1, testutil.CollectAndCount(g.streamBenefit))
	assert.Equal(t, 1, testutil.CollectAndCount(g.streamAtRisk))
}

func TestWriteTextfile(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewPortfolioGauges(reg).Observe(sampleOverview())

	path := filepath.Join(t.TempDir(), "horizon.prom")
	require.NoError(t, WriteTextfile(path, reg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "# TYPE horizon_products_total gauge")
	assert.Contains(t, text, "horizon_products_total 3")
	assert.Contains(t, text, `horizon_value_stream_products_at_risk{value_stream="vs1"} 1`)
	assert.Contains(t, text, `horizon_horizon_products{horizon="Idea"} 1`)
}

func TestWriteTextfile_BadDirectory(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewPortfolioGauges(reg).Observe(sampleOverview())

	err := WriteTextfile(filepath.Join(t.TempDir(), "missing", "horizon.prom"), reg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing metrics textfile")
}

func TestWrite(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewPortfolioGauges(reg).Observe(sampleOverview())

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, reg))
	assert.Contains(t, buf.String(), "horizon_value_streams_total 2")
	assert.Contains(t, buf.String(), "horizon_portfolio_roi 4")
}
