package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		role TEXT NOT NULL,
		name TEXT,
		company_name TEXT,
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT,
		mobile TEXT,
		farm_address TEXT,
		address TEXT,
		vehicle_type TEXT,
		wallet_address TEXT,
		wallet_network_id TEXT,
		balance REAL NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createCropTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE crops (
		id TEXT PRIMARY KEY,
		farmer_id TEXT NOT NULL,
		type TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		price_per_kg REAL NOT NULL,
		cultivation TEXT,
		farm_location TEXT,
		harvest_date TEXT,
		status TEXT NOT NULL,
		transporter_id TEXT,
		customer_id TEXT,
		farmer_name TEXT,
		transporter_name TEXT,
		qr_tag TEXT,
		tx_reference TEXT,
		approved_at DATETIME,
		rejected_at DATETIME,
		picked_up_at DATETIME,
		in_transit_at DATETIME,
		delivered_at DATETIME,
		confirmed_at DATETIME,
		sold_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createLedgerTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE transactions (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		type TEXT NOT NULL,
		amount REAL NOT NULL,
		description TEXT,
		crop_id TEXT,
		tx_reference TEXT,
		created_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE orders (
		id TEXT PRIMARY KEY,
		customer_id TEXT NOT NULL,
		crop_id TEXT NOT NULL,
		product_name TEXT,
		quantity INTEGER NOT NULL,
		amount REAL NOT NULL,
		created_at DATETIME
	);`)
}

func createSocialTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE connection_requests (
		id TEXT PRIMARY KEY,
		from_user_id TEXT NOT NULL,
		to_user_id TEXT NOT NULL,
		status TEXT NOT NULL,
		created_at DATETIME,
		resolved_at DATETIME,
		UNIQUE(from_user_id, to_user_id)
	);`)
	mustExec(t, db, `CREATE TABLE connections (
		id TEXT PRIMARY KEY,
		user_a_id TEXT NOT NULL,
		user_b_id TEXT NOT NULL,
		created_at DATETIME,
		UNIQUE(user_a_id, user_b_id)
	);`)
	mustExec(t, db, `CREATE TABLE messages (
		id TEXT PRIMARY KEY,
		from_user_id TEXT NOT NULL,
		to_user_id TEXT NOT NULL,
		body TEXT NOT NULL,
		read BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE activities (
		id TEXT PRIMARY KEY,
		type TEXT NOT NULL,
		actor_id TEXT NOT NULL,
		secondary_actor_id TEXT,
		crop_id TEXT,
		description TEXT,
		read BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME
	);`)
}

func createAllTables(t *testing.T, db *gorm.DB) {
	createUserTable(t, db)
	createCropTable(t, db)
	createLedgerTables(t, db)
	createSocialTables(t, db)
}
