package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/username/settlehub/src/logger"
	"github.com/username/settlehub/src/models"
	"github.com/username/settlehub/src/parsers"
	"github.com/username/settlehub/src/parsers/columns"
	"github.com/username/settlehub/src/parsers/settlement"
	"github.com/username/settlehub/src/processors"
	"github.com/username/settlehub/src/security/validation"
)

const (
	ckLatestUploadResult = "latest_upload_result_user_%d"

	DefaultCacheExpiration = 15 * time.Minute
	CacheCleanupInterval   = 30 * time.Minute
)

type settlementServiceImpl struct {
	repo             SettlementRepository
	resolver         *columns.Resolver
	summaryProcessor processors.SummaryProcessor
	reportCache      *cache.Cache

	now      func() time.Time
	newBatch func() string
}

func NewSettlementService(
	repo SettlementRepository,
	resolver *columns.Resolver,
	summaryProcessor processors.SummaryProcessor,
	reportCache *cache.Cache,
) SettlementService {
	return &settlementServiceImpl{
		repo:             repo,
		resolver:         resolver,
		summaryProcessor: summaryProcessor,
		reportCache:      reportCache,
		now:              time.Now,
		newBatch:         uuid.NewString,
	}
}

// ProcessUpload runs decode -> normalize -> persist -> summarize for one file.
// Nothing is stored unless every row is.
func (s *settlementServiceImpl) ProcessUpload(ctx context.Context, req UploadRequest) (*UploadResult, error) {
	overallStartTime := s.now()
	log := logger.FromContext(ctx)
	log.Info("ProcessUpload START", "userID", req.UserID, "marketplace", req.Marketplace, "filename", req.Filename, "size", len(req.Data))

	marketplace, ok := models.ParseMarketplace(req.Marketplace)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMarketplace, req.Marketplace)
	}
	mapping, err := parseColumnMapping(req.ColumnMapping)
	if err != nil {
		return nil, err
	}

	parser, err := parsers.GetParser(marketplace, s.resolver)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMarketplace, err)
	}

	batchID := s.newBatch()
	records, err := parser.Parse(req.Data, mapping, batchID)
	if err != nil {
		var missing *settlement.MissingColumnsError
		var wrong *settlement.WrongPlatformError
		if errors.As(err, &missing) || errors.As(err, &wrong) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrParsingFailed, err)
	}

	createdAt := s.now().UTC().Truncate(time.Microsecond)
	filename := validation.SanitizeForFormulaInjection(validation.StripUnprintable(req.Filename))
	for i := range records {
		records[i].UserID = req.UserID
		records[i].Filename = filename
		records[i].CreatedAt = createdAt
	}

	if err := s.repo.InsertBatch(ctx, records); err != nil {
		log.Error("Settlement batch insert failed", "userID", req.UserID, "batchID", batchID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}

	result := s.buildResult(batchID, marketplace, filename, createdAt, records)
	s.reportCache.Set(fmt.Sprintf(ckLatestUploadResult, req.UserID), result, cache.DefaultExpiration)

	log.Info("ProcessUpload END", "userID", req.UserID, "batchID", batchID, "count", len(records), "duration", time.Since(overallStartTime))
	return result, nil
}

func (s *settlementServiceImpl) buildResult(batchID string, marketplace models.Marketplace, filename string, createdAt time.Time, records []models.SettlementRecord) *UploadResult {
	out := make([]models.SettlementRecord, len(records))
	for i, rec := range records {
		out[i] = rec.WithoutRawRow()
	}
	return &UploadResult{
		BatchID:     batchID,
		Marketplace: marketplace,
		Filename:    filename,
		CreatedAt:   createdAt,
		Count:       len(records),
		Summary:     s.summaryProcessor.Summarize(records),
		Records:     out,
	}
}

// parseColumnMapping accepts an empty string or a JSON object keyed by canonical field names.
func parseColumnMapping(raw string) (columns.Mapping, error) {
	if raw == "" {
		return nil, nil
	}
	var mapping columns.Mapping
	if err := json.Unmarshal([]byte(raw), &mapping); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidColumnMapping, err)
	}
	for field := range mapping {
		if !columns.IsField(field) {
			return nil, fmt.Errorf("%w: unknown field %q", ErrInvalidColumnMapping, field)
		}
	}
	return mapping, nil
}

// GetSummary aggregates one batch, or every record created between From and
// To (whole days, inclusive). A batch id takes precedence over the range.
func (s *settlementServiceImpl) GetSummary(ctx context.Context, userID int64, query models.SummaryQuery) (*SummaryResult, error) {
	var (
		records []models.SettlementRecord
		err     error
	)
	switch {
	case query.BatchID != "":
		records, err = s.repo.FindByBatch(ctx, userID, query.BatchID)
	case query.From != nil && query.To != nil:
		if query.To.Before(*query.From) {
			return nil, fmt.Errorf("%w: from must not be after to", ErrInvalidSummaryQuery)
		}
		from := startOfDay(*query.From)
		records, err = s.repo.FindByDateRange(ctx, userID, from, startOfDay(*query.To).AddDate(0, 0, 1))
	default:
		return nil, ErrInvalidSummaryQuery
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAggregationFailed, err)
	}

	summary := s.summaryProcessor.Summarize(records)
	logger.FromContext(ctx).Debug("Summary computed", "userID", userID, "batchID", query.BatchID, "records", len(records))
	return &SummaryResult{Summary: summary, GSTLiability: processors.GSTLiability(summary)}, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *settlementServiceImpl) ListBatches(ctx context.Context, userID int64) ([]models.BatchInfo, error) {
	batches, err := s.repo.ListBatches(ctx, userID)
	if err != nil {
		return nil, err
	}
	if batches == nil {
		batches = []models.BatchInfo{}
	}
	return batches, nil
}

// GetRecords lists a user's records, optionally for one batch. Raw rows are
// only returned when asked for.
func (s *settlementServiceImpl) GetRecords(ctx context.Context, userID int64, batchID string, includeRaw bool) ([]models.SettlementRecord, error) {
	var (
		records []models.SettlementRecord
		err     error
	)
	if batchID != "" {
		records, err = s.repo.FindByBatch(ctx, userID, batchID)
	} else {
		records, err = s.repo.FindByUser(ctx, userID)
	}
	if err != nil {
		return nil, err
	}
	if records == nil {
		return []models.SettlementRecord{}, nil
	}
	if !includeRaw {
		for i := range records {
			records[i] = records[i].WithoutRawRow()
		}
	}
	return records, nil
}

// GetLatestUploadResult serves the cached result of the user's last upload,
// rebuilding it from the store after expiry or a restart.
func (s *settlementServiceImpl) GetLatestUploadResult(ctx context.Context, userID int64) (*UploadResult, error) {
	cacheKey := fmt.Sprintf(ckLatestUploadResult, userID)
	if cached, found := s.reportCache.Get(cacheKey); found {
		if result, ok := cached.(*UploadResult); ok {
			logger.FromContext(ctx).Debug("Cache hit for latest upload result", "userID", userID)
			return result, nil
		}
	}

	batches, err := s.repo.ListBatches(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(batches) == 0 {
		return nil, ErrNoUploads
	}
	latest := batches[0]
	records, err := s.repo.FindByBatch(ctx, userID, latest.BatchID)
	if err != nil {
		return nil, err
	}

	result := s.buildResult(latest.BatchID, latest.Marketplace, latest.Filename, latest.CreatedAt, records)
	s.reportCache.Set(cacheKey, result, cache.DefaultExpiration)
	return result, nil
}

func (s *settlementServiceImpl) DeleteBatch(ctx context.Context, userID int64, batchID string) (int64, error) {
	return s.DeleteBatches(ctx, userID, []string{batchID})
}

func (s *settlementServiceImpl) DeleteBatches(ctx context.Context, userID int64, batchIDs []string) (int64, error) {
	n, err := s.repo.DeleteBatches(ctx, userID, batchIDs)
	return s.afterDelete(ctx, userID, n, err)
}

func (s *settlementServiceImpl) DeleteRecord(ctx context.Context, userID, recordID int64) (int64, error) {
	n, err := s.repo.DeleteRecord(ctx, userID, recordID)
	return s.afterDelete(ctx, userID, n, err)
}

func (s *settlementServiceImpl) afterDelete(ctx context.Context, userID, deleted int64, err error) (int64, error) {
	if err != nil {
		return 0, err
	}
	if deleted == 0 {
		return 0, ErrNoRecordsDeleted
	}
	s.InvalidateUserCache(userID)
	logger.FromContext(ctx).Info("Settlement records deleted", "userID", userID, "deletedCount", deleted)
	return deleted, nil
}

// InvalidateUserCache forces the next latest-upload request to rebuild from the store.
func (s *settlementServiceImpl) InvalidateUserCache(userID int64) {
	s.reportCache.Delete(fmt.Sprintf(ckLatestUploadResult, userID))
}

func (s *settlementServiceImpl) ColumnReference() []columns.FieldAliases {
	return s.resolver.Reference()
}
