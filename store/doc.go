// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package store holds the live board and gates every change through the
// constraint engine. Successful assignments and clears are persisted
// immediately, so a reload after ClearBoard sees an empty board.
package store
