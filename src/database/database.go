package database

import (
	"database/sql"
	"fmt"
	stdlog "log"

	"github.com/username/settlehub/src/logger"
	_ "modernc.org/sqlite"
)

var DB *sql.DB

// InitDB opens the process-wide database and brings the schema up to date.
// Any failure here is fatal.
func InitDB(databasePath string) {
	db, err := Open(databasePath)
	if err != nil {
		stdlog.Fatalf("failed to initialise database at %s: %v", databasePath, err)
	}
	DB = db
}

// Open connects to the SQLite file at databasePath and migrates it.
func Open(databasePath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", databasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// SQLite serialises writers; one connection keeps batch transactions from hitting SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	logger.L.Info("Checking database migrations", "databasePath", databasePath)
	if err := Migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

const createSettlementRecords = `
CREATE TABLE IF NOT EXISTS settlement_records (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL,
	batch_id TEXT NOT NULL,
	marketplace TEXT NOT NULL,
	order_id TEXT,
	settlement_id TEXT,
	product_name TEXT NOT NULL DEFAULT '',
	order_date TEXT,
	quantity INTEGER NOT NULL DEFAULT 1,
	gross_amount REAL NOT NULL DEFAULT 0,
	cost_price REAL NOT NULL DEFAULT 0,
	return_amount REAL NOT NULL DEFAULT 0,
	commission REAL NOT NULL DEFAULT 0,
	shipping_fee REAL NOT NULL DEFAULT 0,
	other_fee REAL NOT NULL DEFAULT 0,
	gst_collected REAL NOT NULL DEFAULT 0,
	gst_on_fees REAL NOT NULL DEFAULT 0,
	net_payout REAL NOT NULL DEFAULT 0,
	gross_profit REAL NOT NULL DEFAULT 0,
	net_profit REAL NOT NULL DEFAULT 0,
	margin REAL NOT NULL DEFAULT 0,
	reconciliation_status TEXT NOT NULL,
	reconciliation_notes TEXT NOT NULL DEFAULT '',
	filename TEXT NOT NULL DEFAULT '',
	raw_row TEXT,
	created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_settlement_records_user_batch ON settlement_records(user_id, batch_id);
CREATE INDEX IF NOT EXISTS idx_settlement_records_user_created ON settlement_records(user_id, created_at);
`

// Migrate creates the settlement tables and indexes when they are missing.
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(createSettlementRecords); err != nil {
		logger.L.Error("failed to create tables", "error", err)
		return fmt.Errorf("failed to create tables: %w", err)
	}
	logger.L.Info("Database tables ensured/created.")
	return nil
}
