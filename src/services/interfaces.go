package services

import (
	"context"
	"time"

	"github.com/username/settlehub/src/models"
	"github.com/username/settlehub/src/parsers/columns"
)

// UploadRequest is one settlement file as received from the client.
type UploadRequest struct {
	UserID        int64
	Filename      string
	Marketplace   string
	ColumnMapping string // JSON object, canonical field -> raw header; may be empty
	Data          []byte
}

// UploadResult is what an upload produces and what the latest-upload view returns.
type UploadResult struct {
	BatchID     string                    `json:"batchId"`
	Marketplace models.Marketplace        `json:"marketplace"`
	Filename    string                    `json:"filename"`
	CreatedAt   time.Time                 `json:"createdAt"`
	Count       int                       `json:"count"`
	Summary     models.BatchSummary       `json:"summary"`
	Records     []models.SettlementRecord `json:"records"`
}

type SummaryResult struct {
	Summary      models.BatchSummary `json:"summary"`
	GSTLiability float64             `json:"gstLiability"`
}

// SettlementRepository is the storage the service depends on.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks -source=interfaces.go SettlementRepository
type SettlementRepository interface {
	InsertBatch(ctx context.Context, records []models.SettlementRecord) error
	FindByBatch(ctx context.Context, userID int64, batchID string) ([]models.SettlementRecord, error)
	FindByDateRange(ctx context.Context, userID int64, from, to time.Time) ([]models.SettlementRecord, error)
	FindByUser(ctx context.Context, userID int64) ([]models.SettlementRecord, error)
	ListBatches(ctx context.Context, userID int64) ([]models.BatchInfo, error)
	DeleteBatches(ctx context.Context, userID int64, batchIDs []string) (int64, error)
	DeleteRecord(ctx context.Context, userID, recordID int64) (int64, error)
}

// SettlementService defines the upload, reporting and lifecycle operations.
type SettlementService interface {
	ProcessUpload(ctx context.Context, req UploadRequest) (*UploadResult, error)
	GetSummary(ctx context.Context, userID int64, query models.SummaryQuery) (*SummaryResult, error)
	ListBatches(ctx context.Context, userID int64) ([]models.BatchInfo, error)
	GetRecords(ctx context.Context, userID int64, batchID string, includeRaw bool) ([]models.SettlementRecord, error)
	GetLatestUploadResult(ctx context.Context, userID int64) (*UploadResult, error)
	DeleteBatch(ctx context.Context, userID int64, batchID string) (int64, error)
	DeleteBatches(ctx context.Context, userID int64, batchIDs []string) (int64, error)
	DeleteRecord(ctx context.Context, userID, recordID int64) (int64, error)
	ColumnReference() []columns.FieldAliases
}
