package services

import (
	"errors"
	"fmt"
)

var (
	ErrParsingFailed        = errors.New("failed to parse settlement file")
	ErrPersistenceFailed    = errors.New("failed to store settlement records")
	ErrAggregationFailed    = errors.New("failed to aggregate settlement records")
	ErrInvalidMarketplace   = errors.New("unsupported marketplace")
	ErrInvalidColumnMapping = errors.New("invalid column mapping")
	ErrNoRecordsDeleted     = errors.New("no matching settlement records found")
	ErrNoUploads            = errors.New("no settlement uploads found")
)

// ErrInvalidSummaryQuery is an aggregation failure caused by the caller's selection.
var ErrInvalidSummaryQuery = fmt.Errorf("%w: a batchId or both from and to dates are required", ErrAggregationFailed)
