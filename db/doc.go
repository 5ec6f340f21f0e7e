// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db provides the durable key-value store behind board persistence.

# Opening a Database

Open connects, pings and creates the schema in one step:

	conn, err := db.Open(db.TypeSQLite, "board.db")
	conn, err := db.Open(db.TypePostgres, "postgres://...")

SQLite (modernc.org/sqlite, no cgo) is the default. PostgreSQL uses lib/pq.
Queries use $N placeholders, which both drivers accept.

# Schema

CreateSchema is safe to call multiple times - uses IF NOT EXISTS.

  - kv_store: key TEXT PRIMARY KEY, value TEXT, updated_at TIMESTAMP

# Key-Value Access

	kv := db.NewKV(conn)
	err := kv.Put(ctx, "catan_board_config", data)
	data, ok, err := kv.Get(ctx, "catan_board_config")

Put is an upsert, so repeated writes of the same key are idempotent.
*/
package db
