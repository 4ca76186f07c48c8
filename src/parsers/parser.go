// src/parsers/parser.go
package parsers

import (
	"github.com/username/settlehub/src/models"
	"github.com/username/settlehub/src/parsers/columns"
)

// Parser turns one uploaded settlement file into canonical records.
type Parser interface {
	Parse(buf []byte, mapping columns.Mapping, batchID string) ([]models.SettlementRecord, error)
	Marketplace() models.Marketplace
}
