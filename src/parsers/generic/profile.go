// src/parsers/generic/profile.go
package generic

import (
	"github.com/username/settlehub/src/models"
	"github.com/username/settlehub/src/parsers/columns"
	"github.com/username/settlehub/src/parsers/settlement"
)

// Profile describes a seller-maintained sheet. No marketplace fees are
// assumed and the payout is net of the GST collected on the sale.
func Profile() settlement.Profile {
	return settlement.Profile{
		Marketplace:        models.MarketplaceGeneric,
		RequiredFields:     []columns.Field{columns.OrderID, columns.GrossAmount},
		DefaultCommission:  settlement.Zero,
		DefaultShippingFee: settlement.Zero,
		DefaultOtherFee:    settlement.Zero,
		DeductOutputGST:    true,
	}
}

func NewParser(resolver *columns.Resolver) *settlement.Parser {
	return settlement.NewParser(Profile(), resolver)
}
