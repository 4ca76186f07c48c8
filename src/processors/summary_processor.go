// src/processors/summary_processor.go
package processors

import (
	"github.com/shopspring/decimal"
	"github.com/username/settlehub/src/models"
	"github.com/username/settlehub/src/utils"
)

type summaryProcessorImpl struct{}

func NewSummaryProcessor() SummaryProcessor {
	return &summaryProcessorImpl{}
}

// Summarize aggregates a set of records into a BatchSummary.
//
// Every total is Σ field × quantity except TotalFees, which adds the three fee
// components per record without the quantity weight; downstream report totals
// depend on that arithmetic.
//
// Sums run in decimal, so the result does not depend on record order and the
// upload path and the on-demand path agree to the paisa.
func (p *summaryProcessorImpl) Summarize(records []models.SettlementRecord) models.BatchSummary {
	var sales, outputGST, inputGST, fees, netPayout, grossProfit, netProfit, returns decimal.Decimal

	for _, rec := range records {
		qty := decimal.NewFromInt(int64(rec.Quantity))

		sales = sales.Add(utils.Money(rec.GrossAmount).Mul(qty))
		outputGST = outputGST.Add(utils.Money(rec.GSTCollected).Mul(qty))
		inputGST = inputGST.Add(utils.Money(rec.GSTOnFees).Mul(qty))
		netPayout = netPayout.Add(utils.Money(rec.NetPayout).Mul(qty))
		grossProfit = grossProfit.Add(utils.Money(rec.GrossProfit).Mul(qty))
		netProfit = netProfit.Add(utils.Money(rec.NetProfit).Mul(qty))
		returns = returns.Add(utils.Money(rec.ReturnAmount).Mul(qty))

		fees = fees.
			Add(utils.Money(rec.FeesBreakdown.Commission)).
			Add(utils.Money(rec.FeesBreakdown.ShippingFee)).
			Add(utils.Money(rec.FeesBreakdown.OtherFee))
	}

	return models.BatchSummary{
		TotalSales:       toRoundedFloat(sales),
		OutputGST:        toRoundedFloat(outputGST),
		InputGST:         toRoundedFloat(inputGST),
		NetGST:           toRoundedFloat(outputGST.Round(2).Sub(inputGST.Round(2))),
		TotalFees:        toRoundedFloat(fees),
		TotalNetPayout:   toRoundedFloat(netPayout),
		TotalGrossProfit: toRoundedFloat(grossProfit),
		TotalNetProfit:   toRoundedFloat(netProfit),
		TotalReturns:     toRoundedFloat(returns),
	}
}

func toRoundedFloat(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// GSTLiability is output GST minus input GST of an already rounded summary.
// It equals summary.NetGST.
func GSTLiability(summary models.BatchSummary) float64 {
	return toRoundedFloat(utils.Money(summary.OutputGST).Sub(utils.Money(summary.InputGST)))
}
