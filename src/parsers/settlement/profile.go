package settlement

import (
	"github.com/username/settlehub/src/models"
	"github.com/username/settlehub/src/parsers/columns"
)

// GSTRate is the rate applied to sales (output tax) and to marketplace fees (input tax).
const GSTRate = 0.18

// FeeFormula estimates a fee from the row's gross amount before returns.
type FeeFormula func(gross float64) float64

// Zero is the formula for fees a marketplace does not charge by default.
func Zero(float64) float64 { return 0 }

// Percent returns a formula charging rate (0.15 = 15%) of gross.
func Percent(rate float64) FeeFormula {
	return func(gross float64) float64 { return gross * rate }
}

// PlatformGuard catches files uploaded under the wrong marketplace: a file
// carrying ForeignFeeColumn but not NativeFeeColumn belongs to Suggested.
type PlatformGuard struct {
	ForeignFeeColumn string
	NativeFeeColumn  string
	Suggested        models.Marketplace
}

// Profile is everything that differs between marketplaces.
type Profile struct {
	Marketplace    models.Marketplace
	RequiredFields []columns.Field

	DefaultCommission  FeeFormula
	DefaultShippingFee FeeFormula
	DefaultOtherFee    FeeFormula

	// DeductOutputGST means the payout is net of the GST collected on the
	// sale, both for the default netPayout and for the expected payout.
	DeductOutputGST bool

	Guard *PlatformGuard
}
