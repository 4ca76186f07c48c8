package settlement

import (
	"fmt"
	"strings"

	"github.com/username/settlehub/src/models"
)

// MissingColumnsError lists the required canonical fields no header resolved to.
type MissingColumnsError struct {
	Marketplace models.Marketplace
	Fields      []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required columns for %s settlement file: %s",
		e.Marketplace, strings.Join(e.Fields, ", "))
}

// WrongPlatformError means the file looks like another marketplace's export.
type WrongPlatformError struct {
	Selected  models.Marketplace
	Suggested models.Marketplace
}

func (e *WrongPlatformError) Error() string {
	return fmt.Sprintf("this file looks like a %s settlement report but %s was selected; please upload it again with marketplace %q",
		marketplaceTitle(e.Suggested), marketplaceTitle(e.Selected), e.Suggested)
}

func marketplaceTitle(m models.Marketplace) string {
	switch m {
	case models.MarketplaceAmazon:
		return "Amazon"
	case models.MarketplaceFlipkart:
		return "Flipkart"
	default:
		return "generic"
	}
}
