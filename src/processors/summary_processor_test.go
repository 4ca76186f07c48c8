package processors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/username/settlehub/src/models"
)

func TestSummaryProcessor_Empty(t *testing.T) {
	assert.Equal(t, models.BatchSummary{}, NewSummaryProcessor().Summarize(nil))
}

func TestSummaryProcessor_FeesAreNotQuantityWeighted(t *testing.T) {
	records := []models.SettlementRecord{
		{Quantity: 2, GrossAmount: 100, FeesBreakdown: models.FeesBreakdown{Commission: 10}},
		{Quantity: 2, GrossAmount: 100, FeesBreakdown: models.FeesBreakdown{Commission: 10}},
	}

	got := NewSummaryProcessor().Summarize(records)

	assert.Equal(t, 20.0, got.TotalFees)
	assert.Equal(t, 400.0, got.TotalSales)
}

func TestSummaryProcessor_WeightedTotals(t *testing.T) {
	records := []models.SettlementRecord{
		{
			Quantity:      1,
			GrossAmount:   800,
			ReturnAmount:  200,
			FeesBreakdown: models.FeesBreakdown{Commission: 150, OtherFee: 45},
			GSTCollected:  144,
			GSTOnFees:     35.1,
			NetPayout:     569.9,
			GrossProfit:   300,
			NetProfit:     69.9,
		},
		{
			Quantity:     3,
			GrossAmount:  500,
			GSTCollected: 90,
			NetPayout:    410,
			GrossProfit:  300,
			NetProfit:    210,
		},
	}

	got := NewSummaryProcessor().Summarize(records)

	assert.Equal(t, models.BatchSummary{
		TotalSales:       2300,
		OutputGST:        414,
		InputGST:         35.1,
		NetGST:           378.9,
		TotalFees:        195,
		TotalNetPayout:   1799.9,
		TotalGrossProfit: 1200,
		TotalNetProfit:   699.9,
		TotalReturns:     200,
	}, got)
	assert.Equal(t, got.NetGST, GSTLiability(got))
}

func TestSummaryProcessor_OrderIndependentAndIdempotent(t *testing.T) {
	records := []models.SettlementRecord{
		{Quantity: 1, GrossAmount: 0.1, NetPayout: 0.1, GSTOnFees: 0.07},
		{Quantity: 1, GrossAmount: 0.2, NetPayout: 0.2, GSTOnFees: 0.01},
		{Quantity: 3, GrossAmount: 0.3, NetPayout: 0.3, GSTOnFees: 0.03},
	}
	reversed := []models.SettlementRecord{records[2], records[1], records[0]}

	p := NewSummaryProcessor()
	first := p.Summarize(records)

	assert.Equal(t, first, p.Summarize(records))
	assert.Equal(t, first, p.Summarize(reversed))
	assert.Equal(t, 1.2, first.TotalSales)
}
