package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"ops-dashboard/internal/authz"
	"ops-dashboard/internal/repositories"
)

type RoleResolverServiceInterface interface {
	Resolve(ctx context.Context, userID uint64) (authz.Role, error)
}

// RoleResolverService вычисляет роль принципала и кеширует её в Redis.
// Недоступность кеша не фатальна: разрешение деградирует до чтения из БД.
type RoleResolverService struct {
	userRepo  repositories.UserRepositoryInterface
	cacheRepo repositories.CacheRepositoryInterface
	logger    *zap.Logger
	cacheTTL  time.Duration
}

func NewRoleResolverService(
	userRepo repositories.UserRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	logger *zap.Logger,
	cacheTTL time.Duration,
) RoleResolverServiceInterface {
	return &RoleResolverService{
		userRepo:  userRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

func (s *RoleResolverService) cacheKey(userID uint64) string {
	return fmt.Sprintf("auth:role:%d", userID)
}

func (s *RoleResolverService) Resolve(ctx context.Context, userID uint64) (authz.Role, error) {
	key := s.cacheKey(userID)

	if cached, err := s.cacheRepo.Get(ctx, key); err == nil {
		role := authz.Role(cached)
		if role.Valid() {
			return role, nil
		}
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return authz.RoleAnon, err
	}
	role := authz.ResolveRole(user)

	if err := s.cacheRepo.Set(ctx, key, string(role), s.cacheTTL); err != nil {
		s.logger.Warn("не удалось закешировать роль пользователя",
			zap.Uint64("userID", userID), zap.Error(err))
	}
	return role, nil
}
