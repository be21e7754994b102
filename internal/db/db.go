// Package db opens the Postgres connection and applies the schema.
package db

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func Connect(databaseURL string) (*sql.DB, error) {
	conn, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	username      TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS products (
	id            TEXT PRIMARY KEY,
	owner_id      TEXT NOT NULL REFERENCES users (id),
	name          TEXT NOT NULL,
	sku           TEXT NOT NULL,
	category      TEXT NOT NULL,
	supplier      TEXT NOT NULL,
	description   TEXT NOT NULL DEFAULT '',
	price         DOUBLE PRECISION NOT NULL CHECK (price >= 0),
	cost          DOUBLE PRECISION NOT NULL CHECK (cost >= 0),
	quantity      INTEGER NOT NULL CHECK (quantity >= 0),
	reorder_level INTEGER NOT NULL CHECK (reorder_level >= 0),
	created_at    TIMESTAMPTZ NOT NULL,
	updated_at    TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_products_owner ON products (owner_id, created_at DESC);

CREATE TABLE IF NOT EXISTS sales (
	id             TEXT PRIMARY KEY,
	owner_id       TEXT NOT NULL REFERENCES users (id),
	total_amount   DOUBLE PRECISION NOT NULL,
	payment_method TEXT NOT NULL,
	created_at     TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_sales_owner ON sales (owner_id, created_at DESC);

CREATE TABLE IF NOT EXISTS sale_items (
	sale_id      TEXT NOT NULL REFERENCES sales (id),
	position     INTEGER NOT NULL,
	product_id   TEXT NOT NULL,
	product_name TEXT NOT NULL,
	quantity     INTEGER NOT NULL,
	unit_price   DOUBLE PRECISION NOT NULL,
	PRIMARY KEY (sale_id, position)
);
`

// Migrate applies the schema. Idempotent.
func Migrate(conn *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err := conn.ExecContext(ctx, schema)
	return err
}
