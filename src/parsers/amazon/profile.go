// src/parsers/amazon/profile.go
package amazon

import (
	"github.com/username/settlehub/src/models"
	"github.com/username/settlehub/src/parsers/columns"
	"github.com/username/settlehub/src/parsers/settlement"
)

// Referral fee charged on the item price when the report has no commission column.
const commissionRate = 0.15

// closingFee is Amazon's fixed per-order closing fee, tiered on the item price.
func closingFee(gross float64) float64 {
	switch {
	case gross < 300:
		return 10
	case gross <= 500:
		return 15
	default:
		return 45
	}
}

func Profile() settlement.Profile {
	return settlement.Profile{
		Marketplace: models.MarketplaceAmazon,
		RequiredFields: []columns.Field{
			columns.SettlementID, columns.OrderID, columns.GrossAmount, columns.GSTCollected,
		},
		DefaultCommission:  settlement.Percent(commissionRate),
		DefaultShippingFee: settlement.Zero,
		DefaultOtherFee:    closingFee,
		Guard: &settlement.PlatformGuard{
			ForeignFeeColumn: "collection-fee",
			NativeFeeColumn:  "closing-fee",
			Suggested:        models.MarketplaceFlipkart,
		},
	}
}

func NewParser(resolver *columns.Resolver) *settlement.Parser {
	return settlement.NewParser(Profile(), resolver)
}
