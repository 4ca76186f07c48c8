// src/models/canonical.go
package models

import "time"

// FeesBreakdown holds the marketplace fees deducted from a settlement row.
type FeesBreakdown struct {
	Commission  float64 `json:"commission"`
	ShippingFee float64 `json:"shippingFee"`
	OtherFee    float64 `json:"otherFee"`
}

// Total returns commission + shipping + other fees.
func (f FeesBreakdown) Total() float64 {
	return f.Commission + f.ShippingFee + f.OtherFee
}

// SettlementRecord is the unified, canonical representation of one settlement row.
// Normalizers populate everything except ID, UserID, Filename and CreatedAt,
// which are stamped by the service when the batch is persisted.
type SettlementRecord struct {
	ID     int64 `json:"id,omitempty"`
	UserID int64 `json:"-"`

	// --- Identity ---
	OrderID      *string `json:"orderId"`
	SettlementID *string `json:"settlementId"`
	BatchID      string  `json:"batchId"`

	Marketplace Marketplace `json:"marketplace"`

	// --- Commerce ---
	ProductName string  `json:"productName"`
	OrderDate   *string `json:"orderDate"` // YYYY-MM-DD
	Quantity    int     `json:"quantity"`

	// --- Money (INR) ---
	GrossAmount   float64       `json:"grossAmount"` // after returns
	CostPrice     float64       `json:"costPrice"`
	ReturnAmount  float64       `json:"returnAmount"`
	FeesBreakdown FeesBreakdown `json:"feesBreakdown"`
	GSTCollected  float64       `json:"gstCollected"`
	GSTOnFees     float64       `json:"gstOnFees"`
	NetPayout     float64       `json:"netPayout"`

	// --- Derived ---
	GrossProfit float64 `json:"grossProfit"`
	NetProfit   float64 `json:"netProfit"`
	Margin      float64 `json:"margin"`

	ReconciliationStatus ReconciliationStatus `json:"reconciliationStatus"`
	ReconciliationNotes  string               `json:"reconciliationNotes"`

	// --- Provenance ---
	RawRow    RawRow    `json:"rawRow,omitempty"`
	Filename  string    `json:"filename,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// WithoutRawRow returns a copy of the record with the debug row dropped,
// which is the default projection for API responses.
func (r SettlementRecord) WithoutRawRow() SettlementRecord {
	r.RawRow = nil
	return r
}
