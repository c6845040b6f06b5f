package profile

import (
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"risorte/internal/profile/repository"
)

func NewModule(client *goredis.Client, key string, logger *zap.Logger) (*Controller, *Service) {
	repo := repository.NewRedisRepository(client, key)
	svc := NewService(repo, logger)
	return NewController(svc, logger), svc
}
