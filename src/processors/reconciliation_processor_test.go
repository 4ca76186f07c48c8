package processors

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/username/settlehub/src/models"
)

func strPtr(s string) *string { return &s }

func TestExpectedPayout(t *testing.T) {
	rec := models.SettlementRecord{
		GrossAmount:   1000,
		FeesBreakdown: models.FeesBreakdown{Commission: 150, ShippingFee: 40, OtherFee: 45},
		GSTOnFees:     42.3,
		GSTCollected:  180,
	}

	assert.Equal(t, "722.70", ExpectedPayout(rec, false).StringFixed(2))
	assert.Equal(t, "542.70", ExpectedPayout(rec, true).StringFixed(2))
}

func TestReconciliationProcessor_Evaluate(t *testing.T) {
	p := NewReconciliationProcessor()
	expected := decimal.RequireFromString("410")

	tests := []struct {
		name       string
		rec        models.SettlementRecord
		wantStatus models.ReconciliationStatus
		wantNotes  string
	}{
		{
			name:       "exact payout matches",
			rec:        models.SettlementRecord{OrderID: strPtr("A1"), NetPayout: 410},
			wantStatus: models.StatusMatched,
		},
		{
			name:       "one paisa difference still matches",
			rec:        models.SettlementRecord{OrderID: strPtr("A1"), NetPayout: 409.99},
			wantStatus: models.StatusMatched,
		},
		{
			name:       "just above one paisa is short paid",
			rec:        models.SettlementRecord{OrderID: strPtr("A1"), NetPayout: 409.989},
			wantStatus: models.StatusShortPaid,
			wantNotes:  "Expected payout ₹410.00 but received ₹409.99 (difference ₹-0.01)",
		},
		{
			name:       "overpayment is flagged too",
			rec:        models.SettlementRecord{OrderID: strPtr("A1"), NetPayout: 450},
			wantStatus: models.StatusShortPaid,
			wantNotes:  "Expected payout ₹410.00 but received ₹450.00 (difference ₹40.00)",
		},
		{
			name:       "missing order id wins over an exact match",
			rec:        models.SettlementRecord{NetPayout: 410},
			wantStatus: models.StatusMissing,
			wantNotes:  "Order ID missing from settlement row",
		},
		{
			name:       "blank order id counts as missing",
			rec:        models.SettlementRecord{OrderID: strPtr(""), NetPayout: 1},
			wantStatus: models.StatusMissing,
			wantNotes:  "Order ID missing from settlement row",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, notes := p.Evaluate(tt.rec, expected)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantNotes, notes)
		})
	}
}
