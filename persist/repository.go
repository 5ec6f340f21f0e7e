// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package persist

import (
	"context"
	"log/slog"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/catan-builder/board"
)

// DefaultKey is the storage key the board document lives under.
const DefaultKey = "catan_board_config"

// KV is the durable store the repository writes through. db.KV implements it.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
}

// Repository loads and saves the board document under a single key.
type Repository struct {
	kv  KV
	key string
}

// NewRepository returns a repository for key, or DefaultKey when key is empty.
func NewRepository(kv KV, key string) *Repository {
	if key == "" {
		key = DefaultKey
	}
	return &Repository{kv: kv, key: key}
}

// Load returns the stored board. A missing, unreadable or malformed document
// yields an empty board; the failure is logged, never returned.
func (r *Repository) Load(ctx context.Context) board.Board {
	data, ok, err := r.kv.Get(ctx, r.key)
	if err != nil {
		slog.Warn("failed to read board, starting empty", "key", r.key, "error", err)
		return board.New()
	}
	if !ok {
		return board.New()
	}

	b, err := Decode(data)
	if err != nil {
		slog.Warn("stored board is malformed, starting empty", "key", r.key, "error", err)
		return board.New()
	}

	slog.Debug("board loaded", "key", r.key, "assigned", b.Assigned())
	return b
}

// Save writes every tile of b under the repository key.
func (r *Repository) Save(ctx context.Context, b board.Board) error {
	data, err := Encode(b)
	if err != nil {
		return err
	}
	if err := r.kv.Put(ctx, r.key, data); err != nil {
		return err
	}

	slog.Debug("board saved", "key", r.key, "size", humanize.Bytes(uint64(len(data))))
	return nil
}
