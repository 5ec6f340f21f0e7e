// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"log/slog"
	"sync"

	"github.com/danielhkuo/catan-builder/board"
)

// Persister is the durable side of the store. persist.Repository implements it.
type Persister interface {
	Load(ctx context.Context) board.Board
	Save(ctx context.Context, b board.Board) error
}

// Store owns the live board. Every mutation is validated by the constraint
// engine and then written through to the Persister.
type Store struct {
	mu      sync.Mutex
	board   board.Board
	persist Persister
}

// New returns a store holding the persisted board, or an empty one.
func New(ctx context.Context, p Persister) *Store {
	s := &Store{board: board.New(), persist: p}
	if p != nil {
		s.board = p.Load(ctx)
	}
	return s
}

// CurrentState returns a snapshot of the board.
func (s *Store) CurrentState() board.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board
}

// AssignTile sets tile i to r and n if the supply allows it. A Desert always
// gets no number. On error the board is unchanged and the current state is
// returned with it.
func (s *Store) AssignTile(ctx context.Context, i int, r board.Resource, n board.DiceNumber) (board.Board, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := board.Validate(s.board, i, r, n); err != nil {
		return s.board, err
	}

	s.board = s.board.With(i, r, n)
	slog.Info("tile assigned", "index", i, "type", r, "dice_number", s.board[i].Number)

	s.save(ctx)
	return s.board, nil
}

// ClearBoard empties every tile and persists the empty board.
func (s *Store) ClearBoard(ctx context.Context) board.Board {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.board = board.New()
	slog.Info("board cleared")

	s.save(ctx)
	return s.board
}

// save writes the board through. Failures are logged and swallowed so the board
// stays editable while storage is unavailable. Caller holds s.mu.
func (s *Store) save(ctx context.Context) {
	if s.persist == nil {
		return
	}
	if err := s.persist.Save(ctx, s.board); err != nil {
		slog.Error("failed to save board", "error", err)
	}
}
