package persist

import (
	"context"
	"errors"

	"github.com/villnoweric/package-delivery-tycoon/core/model"
	"github.com/villnoweric/package-delivery-tycoon/infra/logger"
)

// FallbackStore prefers the primary backend and falls back to the secondary
// when the primary is unavailable. A missing save on the primary also falls
// through to the secondary on load.
type FallbackStore struct {
	primary   Store
	secondary Store
	log       logger.Logger
}

// NewFallbackStore composes the two backends.
func NewFallbackStore(primary, secondary Store) *FallbackStore {
	return &FallbackStore{
		primary:   primary,
		secondary: secondary,
		log:       logger.New("persist"),
	}
}

func (s *FallbackStore) Save(ctx context.Context, st model.GameState) error {
	err := s.primary.Save(ctx, st)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrUnavailable) {
		return err
	}
	s.log.Warnf("primary save failed, using fallback: %v", err)
	return s.secondary.Save(ctx, st)
}

func (s *FallbackStore) Load(ctx context.Context) (model.GameState, error) {
	st, err := s.primary.Load(ctx)
	if err == nil {
		return st, nil
	}
	if !errors.Is(err, ErrUnavailable) && !errors.Is(err, ErrNoSave) {
		return model.GameState{}, err
	}
	s.log.Warnf("primary load failed, using fallback: %v", err)
	return s.secondary.Load(ctx)
}
