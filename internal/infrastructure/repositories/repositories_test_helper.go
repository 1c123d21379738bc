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
		username TEXT UNIQUE NOT NULL,
		email TEXT,
		password_hash TEXT NOT NULL,
		wallet_address TEXT UNIQUE NOT NULL,
		trust_factor REAL NOT NULL DEFAULT 0,
		bio TEXT,
		avatar_url TEXT,
		role TEXT NOT NULL DEFAULT 'MEMBER',
		notify_transactions BOOLEAN NOT NULL DEFAULT 1,
		notify_messages BOOLEAN NOT NULL DEFAULT 1,
		notify_content BOOLEAN NOT NULL DEFAULT 1,
		is_active BOOLEAN NOT NULL DEFAULT 1,
		last_login DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createWalletTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE wallets (
		address TEXT PRIMARY KEY,
		user_id TEXT UNIQUE NOT NULL,
		balance REAL NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE transactions (
		id TEXT PRIMARY KEY,
		sender_address TEXT NOT NULL,
		receiver_address TEXT NOT NULL,
		amount REAL NOT NULL,
		type TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'PENDING',
		blockchain_tx_hash TEXT,
		related_post_id TEXT,
		related_sphere_id TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createSphereTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE spheres (
		id TEXT PRIMARY KEY,
		name TEXT UNIQUE NOT NULL,
		description TEXT,
		category TEXT,
		is_private BOOLEAN NOT NULL DEFAULT 0,
		entry_fee REAL NOT NULL DEFAULT 0,
		creator_id TEXT NOT NULL,
		rules TEXT,
		member_count INTEGER NOT NULL DEFAULT 0,
		content_count INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE sphere_members (
		id TEXT PRIMARY KEY,
		sphere_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'MEMBER',
		joined_at DATETIME,
		UNIQUE(sphere_id, user_id)
	);`)
}

func createContentTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE posts (
		id TEXT PRIMARY KEY,
		sphere_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		content TEXT,
		media_urls TEXT,
		is_premium BOOLEAN NOT NULL DEFAULT 0,
		premium_cost REAL NOT NULL DEFAULT 0,
		ipfs_hash TEXT,
		upvotes INTEGER NOT NULL DEFAULT 0,
		downvotes INTEGER NOT NULL DEFAULT 0,
		comment_count INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE comments (
		id TEXT PRIMARY KEY,
		post_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		content TEXT,
		ipfs_hash TEXT,
		upvotes INTEGER NOT NULL DEFAULT 0,
		downvotes INTEGER NOT NULL DEFAULT 0,
		is_deleted BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createVoteAndReportTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE votes (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		post_id TEXT,
		comment_id TEXT,
		vote_type TEXT NOT NULL,
		created_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE reports (
		id TEXT PRIMARY KEY,
		reporter_id TEXT NOT NULL,
		reported_post_id TEXT,
		reported_comment_id TEXT,
		reported_user_id TEXT,
		reason TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'PENDING',
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createChatTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE chat_rooms (
		id TEXT PRIMARY KEY,
		name TEXT,
		is_group BOOLEAN NOT NULL DEFAULT 0,
		is_sphere_chat BOOLEAN NOT NULL DEFAULT 0,
		sphere_id TEXT UNIQUE,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE chat_room_members (
		id TEXT PRIMARY KEY,
		chat_room_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'MEMBER',
		joined_at DATETIME,
		last_read_at DATETIME,
		UNIQUE(chat_room_id, user_id)
	);`)
	mustExec(t, db, `CREATE TABLE messages (
		id TEXT PRIMARY KEY,
		chat_room_id TEXT NOT NULL,
		sender_id TEXT NOT NULL,
		content TEXT,
		media_urls TEXT,
		is_encrypted BOOLEAN NOT NULL DEFAULT 0,
		encryption_metadata TEXT,
		self_destruct_at DATETIME,
		is_deleted BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME
	);`)
}

func createGovernanceTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE governance_proposals (
		id TEXT PRIMARY KEY,
		sphere_id TEXT NOT NULL,
		creator_id TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT,
		proposal_type TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'ACTIVE',
		votes_for INTEGER NOT NULL DEFAULT 0,
		votes_against INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME,
		ends_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE governance_votes (
		id TEXT PRIMARY KEY,
		proposal_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		vote BOOLEAN NOT NULL,
		created_at DATETIME,
		UNIQUE(proposal_id, user_id)
	);`)
}

func createNotificationTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE notifications (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		type TEXT NOT NULL,
		content TEXT,
		is_read BOOLEAN NOT NULL DEFAULT 0,
		related_entity_type TEXT,
		related_entity_id TEXT,
		created_at DATETIME
	);`)
}
