package processors

import (
	"github.com/shopspring/decimal"
	"github.com/username/settlehub/src/models"
)

// ReconciliationProcessor decides whether a record's payout matches what was expected.
type ReconciliationProcessor interface {
	Evaluate(rec models.SettlementRecord, expected decimal.Decimal) (models.ReconciliationStatus, string)
}

// SummaryProcessor aggregates canonical records into a BatchSummary.
type SummaryProcessor interface {
	Summarize(records []models.SettlementRecord) models.BatchSummary
}
