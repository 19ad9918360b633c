package sqlite

import "database/sql"

// migrations contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
// IMPORTANT: transactions must be created BEFORE transaction_splits due to
// the composite foreign key.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS friends (
    user_id TEXT NOT NULL,
    name TEXT NOT NULL,
    PRIMARY KEY (user_id, name)
);

CREATE TABLE IF NOT EXISTS categories (
    user_id TEXT NOT NULL,
    name TEXT NOT NULL,
    PRIMARY KEY (user_id, name)
);

CREATE TABLE IF NOT EXISTS transactions (
    user_id TEXT NOT NULL,
    id INTEGER NOT NULL,
    date TEXT NOT NULL,
    description TEXT NOT NULL,
    amount REAL NOT NULL,
    category TEXT NOT NULL,
    paid_by TEXT NOT NULL,
    split_type TEXT NOT NULL DEFAULT 'equal',
    created_at INTEGER NOT NULL,
    PRIMARY KEY (user_id, id)
);

CREATE TABLE IF NOT EXISTS transaction_splits (
    user_id TEXT NOT NULL,
    transaction_id INTEGER NOT NULL,
    participant TEXT NOT NULL,
    share REAL,
    PRIMARY KEY (user_id, transaction_id, participant),
    FOREIGN KEY (user_id, transaction_id)
        REFERENCES transactions(user_id, id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS transaction_counters (
    user_id TEXT PRIMARY KEY,
    last_id INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS salaries (
    user_id TEXT PRIMARY KEY,
    amount REAL NOT NULL,
    received_date TEXT NOT NULL,
    previous_balance REAL NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_transactions_user_date ON transactions(user_id, date);
CREATE INDEX IF NOT EXISTS idx_splits_user_transaction ON transaction_splits(user_id, transaction_id);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
