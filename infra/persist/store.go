// Package persist snapshots and restores the whole game state as a single
// JSON blob, either against a remote save endpoint or a local file.
package persist

import (
	"context"
	"errors"

	"github.com/villnoweric/package-delivery-tycoon/core/model"
)

var (
	// ErrUnavailable means the backend could not be reached or refused the
	// operation.
	ErrUnavailable = errors.New("persistence backend unavailable")
	// ErrNoSave means the backend is healthy but holds no saved game.
	ErrNoSave = errors.New("no saved game")
)

// Store saves and loads game state snapshots.
type Store interface {
	Save(ctx context.Context, st model.GameState) error
	Load(ctx context.Context) (model.GameState, error)
}
