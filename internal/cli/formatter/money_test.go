package formatter

import (
	"math"
	"testing"

	"github.com/alexanderramin/horizon/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestMoney(t *testing.T) {
	assert.Equal(t, "$5.9M", Millions(5_900_000))
	assert.Equal(t, "$1.5M", Millions(1_500_000))
	assert.Equal(t, "$0.0M", Millions(0))
	assert.Equal(t, "$105K", Thousands(105_000))
	assert.Equal(t, "$45K/mo", PerMonth(45_000))
}

func TestROI(t *testing.T) {
	assert.Equal(t, "4.68x", ROI(4.68))
	assert.Equal(t, "50x", ROI(50))
	assert.Equal(t, "0x", ROI(0))
	assert.Equal(t, "N/A", ROI(math.Inf(1)))
	assert.Equal(t, "N/A", ROI(math.NaN()))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "29%", Percent(2.0/7*100))
	assert.Equal(t, "14%", Percent(1.0/7*100))
	assert.Equal(t, "50%", Percent(50))
	assert.Equal(t, "0%", Percent(0))
}

func TestManagerName(t *testing.T) {
	assert.Equal(t, "Unassigned", ManagerName(nil))
	assert.Equal(t, "Unassigned", ManagerName(&domain.ProductManager{ID: "pm9"}))
	assert.Equal(t, "Mike Chen", ManagerName(&domain.ProductManager{ID: "pm2", Name: "Mike Chen"}))
}
