package services

import (
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/username/settlehub/src/parsers/columns"
	"github.com/username/settlehub/src/processors"
)

// NewSettlementServiceWithClock pins the clock and the batch id generator.
func NewSettlementServiceWithClock(repo SettlementRepository, resolver *columns.Resolver, c *cache.Cache, now time.Time, batchID string) SettlementService {
	return &settlementServiceImpl{
		repo:             repo,
		resolver:         resolver,
		summaryProcessor: processors.NewSummaryProcessor(),
		reportCache:      c,
		now:              func() time.Time { return now },
		newBatch:         func() string { return batchID },
	}
}
