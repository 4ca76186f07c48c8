// src/parsers/flipkart/profile.go
package flipkart

import (
	"github.com/username/settlehub/src/models"
	"github.com/username/settlehub/src/parsers/columns"
	"github.com/username/settlehub/src/parsers/settlement"
)

const (
	commissionRate    = 0.15
	collectionFeeRate = 0.025
)

func Profile() settlement.Profile {
	return settlement.Profile{
		Marketplace: models.MarketplaceFlipkart,
		RequiredFields: []columns.Field{
			columns.SettlementID, columns.OrderID, columns.GrossAmount, columns.GSTCollected,
		},
		DefaultCommission:  settlement.Percent(commissionRate),
		DefaultShippingFee: settlement.Zero,
		DefaultOtherFee:    settlement.Percent(collectionFeeRate),
		Guard: &settlement.PlatformGuard{
			ForeignFeeColumn: "closing-fee",
			NativeFeeColumn:  "collection-fee",
			Suggested:        models.MarketplaceAmazon,
		},
	}
}

func NewParser(resolver *columns.Resolver) *settlement.Parser {
	return settlement.NewParser(Profile(), resolver)
}
