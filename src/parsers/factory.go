// src/parsers/factory.go
package parsers

import (
	"fmt"

	"github.com/username/settlehub/src/models"
	"github.com/username/settlehub/src/parsers/amazon"
	"github.com/username/settlehub/src/parsers/columns"
	"github.com/username/settlehub/src/parsers/flipkart"
	"github.com/username/settlehub/src/parsers/generic"
)

func GetParser(marketplace models.Marketplace, resolver *columns.Resolver) (Parser, error) {
	switch marketplace {
	case models.MarketplaceAmazon:
		return amazon.NewParser(resolver), nil
	case models.MarketplaceFlipkart:
		return flipkart.NewParser(resolver), nil
	case models.MarketplaceGeneric:
		return generic.NewParser(resolver), nil
	default:
		return nil, fmt.Errorf("no parser available for marketplace: %s", marketplace)
	}
}
