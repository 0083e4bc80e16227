// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db provides the durable key/value backends that hold session state.

# Opening a Backend

Open picks a backend by type and returns a KV:

	kv, err := db.Open(ctx, db.TypeSQLite, "file:hackconsole.db")
	if err != nil {
		log.Fatal(err)
	}
	defer kv.Close()

Supported types:

  - sqlite: modernc.org/sqlite, pure Go, the default
  - postgres: github.com/lib/pq
  - redis: github.com/go-redis/redis/v8, keys prefixed with "hackconsole:"

# Schema

SQL backends call CreateSchema on open. It is safe to call repeatedly:

	CREATE TABLE IF NOT EXISTS session_kv (
	    k TEXT PRIMARY KEY,
	    v TEXT NOT NULL,
	    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

Writes are upserts, so Set on an existing key replaces its value.

# Missing Keys

Get returns ErrNotFound when a key has never been written or was deleted.
Delete on a missing key is not an error.
*/
package db
