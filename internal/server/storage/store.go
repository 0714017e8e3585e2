// Package storage persists game sessions between requests. The server
// itself is stateless: every request loads a snapshot, advances the
// game and saves it back.
package storage

import (
	"context"
	"errors"

	"github.com/cardtable/hearts/internal/game"
)

// ErrNotFound is returned when no session exists for the given id,
// including sessions that have expired.
var ErrNotFound = errors.New("session not found")

// Store saves and loads game snapshots keyed by session id. Entries
// expire after the store's configured time to live; a save refreshes
// the expiry.
type Store interface {
	Save(ctx context.Context, id string, snap *game.Snapshot) error
	Load(ctx context.Context, id string) (*game.Snapshot, error)
	Delete(ctx context.Context, id string) error
	Close() error
}
