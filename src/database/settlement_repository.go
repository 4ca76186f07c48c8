package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/username/settlehub/src/logger"
	"github.com/username/settlehub/src/models"
)

// createdAtLayout is fixed-width UTC so that created_at compares correctly as text.
const createdAtLayout = "2006-01-02T15:04:05.000000Z"

const recordColumns = `id, user_id, batch_id, marketplace, filename, order_id, settlement_id, product_name, order_date, quantity, gross_amount, cost_price, return_amount, commission, shipping_fee, other_fee, gst_collected, gst_on_fees, net_payout, gross_profit, net_profit, margin, reconciliation_status, reconciliation_notes, raw_row, created_at`

// SettlementRepository persists canonical settlement records. Every read and
// delete is scoped to the owning user.
type SettlementRepository struct {
	db *sql.DB
}

func NewSettlementRepository(db *sql.DB) *SettlementRepository {
	return &SettlementRepository{db: db}
}

// InsertBatch stores records in one transaction; either all rows land or none.
// On success the generated ids are written back into records.
func (r *SettlementRepository) InsertBatch(ctx context.Context, records []models.SettlementRecord) error {
	if len(records) == 0 {
		return nil
	}

	dbTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error beginning database transaction: %w", err)
	}
	defer dbTx.Rollback()

	stmt, err := dbTx.PrepareContext(ctx, `INSERT INTO settlement_records (user_id, batch_id, marketplace, filename, order_id, settlement_id, product_name, order_date, quantity, gross_amount, cost_price, return_amount, commission, shipping_fee, other_fee, gst_collected, gst_on_fees, net_payout, gross_profit, net_profit, margin, reconciliation_status, reconciliation_notes, raw_row, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("error preparing insert statement: %w", err)
	}
	defer stmt.Close()

	ids := make([]int64, len(records))
	for i, rec := range records {
		rawRow, err := encodeRawRow(rec.RawRow)
		if err != nil {
			return fmt.Errorf("error encoding raw row %d of batch %s: %w", i, rec.BatchID, err)
		}
		res, err := stmt.ExecContext(ctx,
			rec.UserID, rec.BatchID, string(rec.Marketplace), rec.Filename,
			rec.OrderID, rec.SettlementID, rec.ProductName, rec.OrderDate, rec.Quantity,
			rec.GrossAmount, rec.CostPrice, rec.ReturnAmount,
			rec.FeesBreakdown.Commission, rec.FeesBreakdown.ShippingFee, rec.FeesBreakdown.OtherFee,
			rec.GSTCollected, rec.GSTOnFees, rec.NetPayout,
			rec.GrossProfit, rec.NetProfit, rec.Margin,
			string(rec.ReconciliationStatus), rec.ReconciliationNotes,
			rawRow, rec.CreatedAt.UTC().Format(createdAtLayout),
		)
		if err != nil {
			return fmt.Errorf("error inserting settlement row %d of batch %s: %w", i, rec.BatchID, err)
		}
		if ids[i], err = res.LastInsertId(); err != nil {
			return fmt.Errorf("error reading inserted id: %w", err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("error committing settlement batch: %w", err)
	}
	for i := range records {
		records[i].ID = ids[i]
	}
	logger.L.Debug("Settlement batch inserted", "batchID", records[0].BatchID, "count", len(records))
	return nil
}

// FindByBatch returns one batch in file order.
func (r *SettlementRepository) FindByBatch(ctx context.Context, userID int64, batchID string) ([]models.SettlementRecord, error) {
	return r.query(ctx, `SELECT `+recordColumns+` FROM settlement_records WHERE user_id = ? AND batch_id = ? ORDER BY id ASC`, userID, batchID)
}

// FindByDateRange returns records created in [from, to).
func (r *SettlementRepository) FindByDateRange(ctx context.Context, userID int64, from, to time.Time) ([]models.SettlementRecord, error) {
	return r.query(ctx, `SELECT `+recordColumns+` FROM settlement_records WHERE user_id = ? AND created_at >= ? AND created_at < ? ORDER BY created_at ASC, id ASC`,
		userID, from.UTC().Format(createdAtLayout), to.UTC().Format(createdAtLayout))
}

// FindByUser returns all of a user's records, newest batch first.
func (r *SettlementRepository) FindByUser(ctx context.Context, userID int64) ([]models.SettlementRecord, error) {
	return r.query(ctx, `SELECT `+recordColumns+` FROM settlement_records WHERE user_id = ? ORDER BY created_at DESC, id ASC`, userID)
}

// ListBatches groups a user's records by batch, newest first.
func (r *SettlementRepository) ListBatches(ctx context.Context, userID int64) ([]models.BatchInfo, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT batch_id, MIN(created_at) AS created, COUNT(*), MIN(marketplace), MIN(filename)
		FROM settlement_records
		WHERE user_id = ?
		GROUP BY batch_id
		ORDER BY created DESC, batch_id ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying batches for userID %d: %w", userID, err)
	}
	defer rows.Close()

	var batches []models.BatchInfo
	for rows.Next() {
		var (
			b         models.BatchInfo
			createdAt string
			market    string
		)
		if err := rows.Scan(&b.BatchID, &createdAt, &b.RecordsCount, &market, &b.Filename); err != nil {
			return nil, fmt.Errorf("error scanning batch row for userID %d: %w", userID, err)
		}
		if b.CreatedAt, err = time.Parse(createdAtLayout, createdAt); err != nil {
			return nil, fmt.Errorf("error parsing created_at %q: %w", createdAt, err)
		}
		b.Marketplace = models.Marketplace(market)
		batches = append(batches, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over batch rows for userID %d: %w", userID, err)
	}
	return batches, nil
}

// DeleteBatches removes every record of the given batches and returns how many went.
func (r *SettlementRepository) DeleteBatches(ctx context.Context, userID int64, batchIDs []string) (int64, error) {
	if len(batchIDs) == 0 {
		return 0, nil
	}
	args := make([]any, 0, len(batchIDs)+1)
	args = append(args, userID)
	for _, id := range batchIDs {
		args = append(args, id)
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(batchIDs)), ",")

	res, err := r.db.ExecContext(ctx, `DELETE FROM settlement_records WHERE user_id = ? AND batch_id IN (`+placeholders+`)`, args...)
	if err != nil {
		return 0, fmt.Errorf("error deleting batches for userID %d: %w", userID, err)
	}
	return res.RowsAffected()
}

// DeleteRecord removes a single record owned by userID.
func (r *SettlementRepository) DeleteRecord(ctx context.Context, userID, recordID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM settlement_records WHERE user_id = ? AND id = ?`, userID, recordID)
	if err != nil {
		return 0, fmt.Errorf("error deleting record %d for userID %d: %w", recordID, userID, err)
	}
	return res.RowsAffected()
}

func (r *SettlementRepository) query(ctx context.Context, query string, args ...any) ([]models.SettlementRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying settlement records: %w", err)
	}
	defer rows.Close()

	var records []models.SettlementRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over settlement rows: %w", err)
	}
	return records, nil
}

func scanRecord(rows *sql.Rows) (models.SettlementRecord, error) {
	var (
		rec          models.SettlementRecord
		marketplace  string
		status       string
		orderID      sql.NullString
		settlementID sql.NullString
		orderDate    sql.NullString
		rawRow       sql.NullString
		createdAt    string
	)
	err := rows.Scan(
		&rec.ID, &rec.UserID, &rec.BatchID, &marketplace, &rec.Filename,
		&orderID, &settlementID, &rec.ProductName, &orderDate, &rec.Quantity,
		&rec.GrossAmount, &rec.CostPrice, &rec.ReturnAmount,
		&rec.FeesBreakdown.Commission, &rec.FeesBreakdown.ShippingFee, &rec.FeesBreakdown.OtherFee,
		&rec.GSTCollected, &rec.GSTOnFees, &rec.NetPayout,
		&rec.GrossProfit, &rec.NetProfit, &rec.Margin,
		&status, &rec.ReconciliationNotes, &rawRow, &createdAt,
	)
	if err != nil {
		return rec, fmt.Errorf("error scanning settlement row: %w", err)
	}

	rec.Marketplace = models.Marketplace(marketplace)
	rec.ReconciliationStatus = models.ReconciliationStatus(status)
	rec.OrderID = nullableString(orderID)
	rec.SettlementID = nullableString(settlementID)
	rec.OrderDate = nullableString(orderDate)
	if rawRow.Valid && rawRow.String != "" {
		if err := json.Unmarshal([]byte(rawRow.String), &rec.RawRow); err != nil {
			return rec, fmt.Errorf("error decoding raw row of record %d: %w", rec.ID, err)
		}
	}
	if rec.CreatedAt, err = time.Parse(createdAtLayout, createdAt); err != nil {
		return rec, fmt.Errorf("error parsing created_at %q: %w", createdAt, err)
	}
	return rec, nil
}

func encodeRawRow(row models.RawRow) (any, error) {
	if row == nil {
		return nil, nil
	}
	b, err := json.Marshal(row)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func nullableString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
