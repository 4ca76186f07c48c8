package models

import "time"

// RawRow maps an original file column name to its cell text.
type RawRow map[string]string

// Marketplace identifies the export format a batch was uploaded as.
type Marketplace string

const (
	MarketplaceAmazon   Marketplace = "amazon"
	MarketplaceFlipkart Marketplace = "flipkart"
	MarketplaceGeneric  Marketplace = "generic"
)

// ParseMarketplace validates a form value; an empty value means generic.
func ParseMarketplace(s string) (Marketplace, bool) {
	switch Marketplace(s) {
	case "", MarketplaceGeneric:
		return MarketplaceGeneric, true
	case MarketplaceAmazon, MarketplaceFlipkart:
		return Marketplace(s), true
	default:
		return "", false
	}
}

type ReconciliationStatus string

const (
	StatusMatched   ReconciliationStatus = "Matched"
	StatusShortPaid ReconciliationStatus = "Short Paid"
	StatusMissing   ReconciliationStatus = "Missing"
)

// BatchSummary is derived on demand from persisted records, never stored.
type BatchSummary struct {
	TotalSales       float64 `json:"totalSales"`
	OutputGST        float64 `json:"outputGST"`
	InputGST         float64 `json:"inputGST"`
	NetGST           float64 `json:"netGST"`
	TotalFees        float64 `json:"totalFees"`
	TotalNetPayout   float64 `json:"totalNetPayout"`
	TotalGrossProfit float64 `json:"totalGrossProfit"`
	TotalNetProfit   float64 `json:"totalNetProfit"`
	TotalReturns     float64 `json:"totalReturns"`
}

// BatchInfo is the history view of one upload.
type BatchInfo struct {
	BatchID      string      `json:"batchId"`
	CreatedAt    time.Time   `json:"createdAt"`
	RecordsCount int         `json:"recordsCount"`
	Marketplace  Marketplace `json:"marketplace"`
	Filename     string      `json:"filename"`
}

// SummaryQuery selects records for aggregation. BatchID takes precedence over the range.
type SummaryQuery struct {
	BatchID string
	From    *time.Time
	To      *time.Time
}
