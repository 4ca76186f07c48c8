// Package settlement holds the marketplace-independent half of settlement
// parsing: header validation and the per-row normalization into canonical
// records. Marketplace packages only supply a Profile.
package settlement

import (
	"github.com/username/settlehub/src/logger"
	"github.com/username/settlehub/src/models"
	"github.com/username/settlehub/src/parsers/columns"
	"github.com/username/settlehub/src/parsers/sheet"
	"github.com/username/settlehub/src/processors"
	"github.com/username/settlehub/src/security/validation"
	"github.com/username/settlehub/src/utils"
)

// Parser decodes, validates and normalizes one marketplace's settlement files.
type Parser struct {
	profile    Profile
	resolver   *columns.Resolver
	reconciler processors.ReconciliationProcessor
}

func NewParser(profile Profile, resolver *columns.Resolver) *Parser {
	return &Parser{
		profile:    profile,
		resolver:   resolver,
		reconciler: processors.NewReconciliationProcessor(),
	}
}

func (p *Parser) Marketplace() models.Marketplace {
	return p.profile.Marketplace
}

// Parse turns an uploaded buffer into canonical records stamped with batchID.
func (p *Parser) Parse(buf []byte, explicit columns.Mapping, batchID string) ([]models.SettlementRecord, error) {
	s, err := sheet.Decode(buf)
	if err != nil {
		return nil, err
	}
	logger.L.Debug("Settlement file decoded",
		"marketplace", p.profile.Marketplace, "format", s.Format, "columns", len(s.Headers), "rows", len(s.Rows))
	if err := ValidateHeaders(s.Headers, p.profile, p.resolver, explicit); err != nil {
		return nil, err
	}
	return p.Normalize(s.Headers, s.Rows, explicit, batchID), nil
}

// Normalize maps already-decoded rows. Headers must be validated by the caller.
func (p *Parser) Normalize(headers []string, rows []models.RawRow, explicit columns.Mapping, batchID string) []models.SettlementRecord {
	binding := p.resolver.Bind(headers, explicit)
	records := make([]models.SettlementRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, p.normalizeRow(binding, row, batchID))
	}
	return records
}

func (p *Parser) normalizeRow(b columns.Binding, row models.RawRow, batchID string) models.SettlementRecord {
	num := func(field columns.Field) (float64, bool) {
		v, ok := b.Value(row, field)
		if !ok {
			return 0, false
		}
		return utils.ToNumber(v), true
	}
	numOr := func(field columns.Field, fallback func() float64) float64 {
		if v, ok := num(field); ok {
			return v
		}
		return utils.RoundMoney(fallback())
	}

	rec := models.SettlementRecord{
		BatchID:     batchID,
		Marketplace: p.profile.Marketplace,
		Quantity:    1,
		RawRow:      row,
	}
	if v, ok := b.Value(row, columns.OrderID); ok {
		rec.OrderID = &v
	}
	if v, ok := b.Value(row, columns.SettlementID); ok {
		rec.SettlementID = &v
	}
	if v, ok := b.Value(row, columns.ProductName); ok {
		rec.ProductName = validation.StripUnprintable(v)
	}
	if v, ok := b.Value(row, columns.OrderDate); ok {
		rec.OrderDate = utils.NormalizeDate(v)
	}
	if v, ok := b.Value(row, columns.Quantity); ok {
		rec.Quantity = utils.ToQuantity(v)
	}

	rawGross, _ := num(columns.GrossAmount)
	rec.CostPrice, _ = num(columns.CostPrice)
	rec.ReturnAmount, _ = num(columns.ReturnAmount)

	// Fee estimates follow the invoiced amount, before any return.
	fees := models.FeesBreakdown{
		Commission:  numOr(columns.Commission, func() float64 { return p.profile.DefaultCommission(rawGross) }),
		ShippingFee: numOr(columns.ShippingFee, func() float64 { return p.profile.DefaultShippingFee(rawGross) }),
		OtherFee:    numOr(columns.OtherFee, func() float64 { return p.profile.DefaultOtherFee(rawGross) }),
	}
	rec.FeesBreakdown = fees
	rec.GSTOnFees = numOr(columns.GSTOnFees, func() float64 { return fees.Total() * GSTRate })

	rec.GrossAmount = utils.Money(rawGross).Sub(utils.Money(rec.ReturnAmount)).InexactFloat64()
	rec.GSTCollected = numOr(columns.GSTCollected, func() float64 { return rec.GrossAmount * GSTRate })
	rec.NetPayout = numOr(columns.NetPayout, func() float64 {
		payout := rec.GrossAmount - fees.Total() - rec.GSTOnFees
		if p.profile.DeductOutputGST {
			payout -= rec.GSTCollected
		}
		return payout
	})

	rec.GrossProfit = utils.RoundMoney(rec.GrossAmount - rec.CostPrice)
	rec.NetProfit = utils.RoundMoney(rec.NetPayout - rec.CostPrice)
	if rec.GrossAmount > 0 {
		rec.Margin = utils.RoundMoney(rec.NetProfit / rec.GrossAmount * 100)
	}

	rec.ReconciliationStatus, rec.ReconciliationNotes = p.reconciler.Evaluate(rec, processors.ExpectedPayout(rec, p.profile.DeductOutputGST))
	return rec
}
