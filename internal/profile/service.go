package profile

import (
	"context"
	"encoding/json"

	"risorte/internal/domain"
	"risorte/internal/errors"

	"go.uber.org/zap"
)

type Service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Load returns the persisted profile. A missing record and an unreadable one
// both degrade to the empty default without an error; only a storage-level
// failure propagates.
func (s *Service) Load(ctx context.Context) (domain.Profile, error) {
	payload, err := s.repo.Get(ctx)
	if err != nil {
		if _, ok := errors.IsNotFoundError(err); ok {
			return domain.EmptyProfile(), nil
		}
		return domain.EmptyProfile(), errors.NewInternalError("loading profile", err)
	}

	var p domain.Profile
	if err := json.Unmarshal(payload, &p); err != nil {
		corrupt := errors.NewCorruptProfileError("stored profile is unreadable", err)
		s.logger.Warn("discarding corrupt profile record", zap.Error(corrupt))
		return domain.EmptyProfile(), nil
	}

	return p, nil
}

// Save overwrites the stored record with the full profile.
func (s *Service) Save(ctx context.Context, p domain.Profile) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return errors.NewInternalError("serializing profile", err)
	}
	if err := s.repo.Set(ctx, payload); err != nil {
		return errors.NewInternalError("saving profile", err)
	}
	return nil
}

// Delete removes the record; a subsequent Load yields the empty default.
func (s *Service) Delete(ctx context.Context) error {
	if err := s.repo.Delete(ctx); err != nil {
		return errors.NewInternalError("deleting profile", err)
	}
	return nil
}
