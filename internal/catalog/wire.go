package catalog

import (
	"risorte/internal/catalog/repository"

	"go.uber.org/zap"
)

// NewModule loads the catalog document once and builds the index over it.
// A failed load degrades to the built-in default data for the session and is
// only logged, never surfaced.
func NewModule(path string, logger *zap.Logger) (*Controller, Index) {
	repo := repository.NewFileRepository(path)

	loaded, err := repo.Load()
	if err != nil {
		logger.Warn("catalog load failed, falling back to default data",
			zap.String("path", path), zap.Error(err))
		loaded = repository.DefaultCatalog()
	}

	index := NewService(loaded)
	return NewController(index, logger), index
}
