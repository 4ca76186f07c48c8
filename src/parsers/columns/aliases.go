package columns

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Field is a canonical settlement field name, as used in column mappings.
type Field string

const (
	OrderID      Field = "orderId"
	ProductName  Field = "productName"
	SettlementID Field = "settlementId"
	OrderDate    Field = "orderDate"
	Quantity     Field = "quantity"
	GrossAmount  Field = "grossAmount"
	CostPrice    Field = "costPrice"
	Commission   Field = "commission"
	ShippingFee  Field = "shippingFee"
	OtherFee     Field = "otherFee"
	GSTCollected Field = "gstCollected"
	GSTOnFees    Field = "gstOnFees"
	NetPayout    Field = "netPayout"
	ReturnAmount Field = "returnAmount"
)

// Fields lists every canonical field in the order the column reference is published.
var Fields = []Field{
	OrderID, SettlementID, ProductName, OrderDate, Quantity,
	GrossAmount, CostPrice, Commission, ShippingFee, OtherFee,
	GSTCollected, GSTOnFees, NetPayout, ReturnAmount,
}

// IsField reports whether name is a canonical field.
func IsField(name string) bool {
	for _, f := range Fields {
		if string(f) == name {
			return true
		}
	}
	return false
}

// AliasTable maps each canonical field to the raw header spellings it accepts.
// Treat it as immutable once handed to a Resolver.
type AliasTable map[Field][]string

// DefaultAliases returns a fresh copy of the built-in alias table, covering
// Amazon settlement reports, Flipkart payment reports and generic sheets.
func DefaultAliases() AliasTable {
	return AliasTable{
		OrderID: {
			"Order ID", "order-id", "OrderID", "order_id", "Order Number", "Order No",
			"amazon-order-id", "Order Item ID", "Sub Order No", "Reference ID",
		},
		SettlementID: {
			"Settlement ID", "settlement-id", "settlement_id", "NEFT ID", "NEFT Ref",
			"Payment Reference", "UTR", "UTR Number", "Transaction ID", "Payout ID",
		},
		ProductName: {
			"Product Name", "Product", "Product Title", "Item Name", "Title", "SKU",
			"Seller SKU", "Item Description", "Description",
		},
		OrderDate: {
			"Order Date", "order-date", "Date", "posted-date", "Posted Date",
			"purchase-date", "Order Approval Date", "Settlement Date", "Payment Date",
		},
		Quantity: {
			"Quantity", "Qty", "quantity-purchased", "Units", "Item Quantity",
		},
		GrossAmount: {
			"Gross Amount", "Sale Amount", "Sale Amount (Rs.)", "Selling Price", "Total",
			"Amount", "Order Value", "Product Sales", "Principal", "item-price",
			"Invoice Amount", "Gross Sales",
		},
		CostPrice: {
			"Cost Price", "Cost", "Purchase Price", "COGS", "Unit Cost", "Buying Price",
		},
		Commission: {
			"Commission", "Commission Fee", "Commission (Rs.)", "Referral Fee", "referral-fee",
			"Marketplace Fee", "Selling Fee",
		},
		ShippingFee: {
			"Shipping Fee", "Shipping", "Shipping Charge", "Shipping Fee (Rs.)", "FBA Fee",
			"FBA Fees", "fba-fee", "Fulfilment Fee", "Fulfillment Fee", "Weight Handling Fee",
			"Easy Ship Fee",
		},
		OtherFee: {
			"Other Fee", "Other Fees", "Other Charges", "Closing Fee", "closing-fee",
			"Fixed Fee", "Fixed Fee (Rs.)", "Collection Fee", "collection-fee",
			"Collection Fee (Rs.)",
		},
		GSTCollected: {
			"GST Collected", "GST", "Output GST", "Tax", "IGST", "Tax Collected",
			"GST Amount", "Product Tax", "Tax Amount",
		},
		GSTOnFees: {
			"GST on Fees", "GST on Fee", "Tax on Fees", "Input GST", "ITC",
			"Fee GST", "GST on Commission", "Taxes on Marketplace Fee",
		},
		NetPayout: {
			"Net Payout", "Net Amount", "net-amount", "Settlement Amount", "Net Settlement",
			"Payout", "Amount Received", "Total Amount", "total-amount",
			"Bank Settlement Value", "Bank Settlement Value (Rs.)",
		},
		ReturnAmount: {
			"Return Amount", "Returns", "Return", "Refund", "Refund Amount", "refund-amount",
			"Customer Return", "Refund (Rs.)",
		},
	}
}

// Clone deep-copies the table.
func (t AliasTable) Clone() AliasTable {
	out := make(AliasTable, len(t))
	for field, aliases := range t {
		out[field] = append([]string(nil), aliases...)
	}
	return out
}

// Merge returns a new table with extra aliases appended after the existing ones.
// Unknown field names are reported as an error.
func (t AliasTable) Merge(extra map[string][]string) (AliasTable, error) {
	out := t.Clone()
	for name, aliases := range extra {
		if !IsField(name) {
			return nil, fmt.Errorf("unknown canonical field %q in alias overrides", name)
		}
		out[Field(name)] = append(out[Field(name)], aliases...)
	}
	return out, nil
}

// LoadAliasFile extends the default table with a YAML document of the form
//
//	grossAmount:
//	  - "Sale Value"
//	netPayout:
//	  - "Credited Amount"
func LoadAliasFile(path string) (AliasTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read column alias file '%s': %w", path, err)
	}
	var extra map[string][]string
	if err := yaml.Unmarshal(data, &extra); err != nil {
		return nil, fmt.Errorf("failed to parse column alias file '%s': %w", path, err)
	}
	return DefaultAliases().Merge(extra)
}
