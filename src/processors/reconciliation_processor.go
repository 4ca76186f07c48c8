// src/processors/reconciliation_processor.go
package processors

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/username/settlehub/src/models"
	"github.com/username/settlehub/src/utils"
)

// PayoutTolerance is one paisa. A difference equal to it still matches.
var PayoutTolerance = decimal.New(1, -2)

type reconciliationProcessorImpl struct {
	tolerance decimal.Decimal
}

func NewReconciliationProcessor() ReconciliationProcessor {
	return &reconciliationProcessorImpl{tolerance: PayoutTolerance}
}

// ExpectedPayout is what the marketplace should have credited for rec:
// gross - commission - shipping - other fees - GST on fees, and also
// - GST collected when the marketplace withholds output tax.
func ExpectedPayout(rec models.SettlementRecord, deductOutputGST bool) decimal.Decimal {
	expected := utils.Money(rec.GrossAmount).
		Sub(utils.Money(rec.FeesBreakdown.Commission)).
		Sub(utils.Money(rec.FeesBreakdown.ShippingFee)).
		Sub(utils.Money(rec.FeesBreakdown.OtherFee)).
		Sub(utils.Money(rec.GSTOnFees))
	if deductOutputGST {
		expected = expected.Sub(utils.Money(rec.GSTCollected))
	}
	return expected
}

// Evaluate assigns the reconciliation outcome. Missing order id wins over
// any payout comparison; otherwise a gap above one paisa is Short Paid.
func (p *reconciliationProcessorImpl) Evaluate(rec models.SettlementRecord, expected decimal.Decimal) (models.ReconciliationStatus, string) {
	if rec.OrderID == nil || *rec.OrderID == "" {
		return models.StatusMissing, "Order ID missing from settlement row"
	}

	actual := utils.Money(rec.NetPayout)
	diff := actual.Sub(expected)
	if diff.Abs().GreaterThan(p.tolerance) {
		return models.StatusShortPaid, fmt.Sprintf(
			"Expected payout ₹%s but received ₹%s (difference ₹%s)",
			expected.StringFixed(2), actual.StringFixed(2), diff.StringFixed(2))
	}
	return models.StatusMatched, ""
}
