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

func createIdentityTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE auth_accounts (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		provider TEXT NOT NULL,
		password_hash TEXT,
		email_verified BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		account_id TEXT UNIQUE NOT NULL,
		email TEXT UNIQUE NOT NULL,
		name TEXT NOT NULL,
		phone TEXT,
		profession TEXT,
		company TEXT,
		blood_group TEXT,
		address TEXT,
		graduation_year INTEGER,
		photo_url TEXT,
		role TEXT NOT NULL DEFAULT 'user',
		status TEXT NOT NULL DEFAULT 'pending',
		provider TEXT NOT NULL,
		visibility TEXT,
		approved_by TEXT,
		approved_at DATETIME,
		last_login_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE email_verifications (
		id TEXT PRIMARY KEY,
		account_id TEXT NOT NULL,
		token TEXT UNIQUE NOT NULL,
		expires_at DATETIME NOT NULL,
		verified_at DATETIME,
		created_at DATETIME
	);`)
}

func createEventTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE events (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT,
		location_street TEXT,
		location_city TEXT,
		location_postcode TEXT,
		location_country TEXT,
		start_date DATETIME NOT NULL,
		end_date DATETIME,
		registration_deadline DATETIME,
		participant_limit INTEGER NOT NULL DEFAULT 0,
		registration_fee INTEGER NOT NULL DEFAULT 0,
		payment_methods TEXT,
		receiving_numbers TEXT,
		contact_persons TEXT,
		banner_url TEXT,
		status TEXT NOT NULL,
		public BOOLEAN NOT NULL DEFAULT 1,
		current_participants INTEGER NOT NULL DEFAULT 0,
		created_by TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE participants (
		id TEXT PRIMARY KEY,
		event_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT,
		status TEXT NOT NULL,
		payment_required BOOLEAN NOT NULL DEFAULT 0,
		payment_method TEXT,
		transaction_id TEXT,
		sender_number TEXT,
		confirmor_name TEXT,
		confirmor_phone TEXT,
		payment_verified BOOLEAN NOT NULL DEFAULT 0,
		approved_by TEXT,
		approved_at DATETIME,
		admin_notes TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		UNIQUE(event_id, user_id)
	);`)
}

func createArchiveTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE archived_events (
		id TEXT PRIMARY KEY,
		event_id TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT,
		location TEXT,
		start_date DATETIME NOT NULL,
		end_date DATETIME,
		registration_fee INTEGER NOT NULL DEFAULT 0,
		participants TEXT,
		participant_count INTEGER NOT NULL,
		total_revenue INTEGER NOT NULL,
		archived_by TEXT NOT NULL,
		archived_at DATETIME NOT NULL
	);`)
}

func createActivityTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE activity_logs (
		id TEXT PRIMARY KEY,
		type TEXT NOT NULL,
		actor_id TEXT NOT NULL,
		actor_name TEXT,
		actor_email TEXT,
		target_id TEXT,
		target_name TEXT,
		details TEXT,
		created_at DATETIME
	);`)
}
