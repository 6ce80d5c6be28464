package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"ops-dashboard/internal/authz"
	"ops-dashboard/pkg/contextkeys"
	apperrors "ops-dashboard/pkg/errors"
	"ops-dashboard/pkg/service"
	"ops-dashboard/pkg/utils"
)

// RoleResolver отдаёт роль принципала по его ID.
type RoleResolver interface {
	Resolve(ctx context.Context, userID uint64) (authz.Role, error)
}

type AuthMiddleware struct {
	jwtService   service.JWTService
	roleResolver RoleResolver
	logger       *zap.Logger
}

func NewAuthMiddleware(jwtSvc service.JWTService, roleResolver RoleResolver, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:   jwtSvc,
		roleResolver: roleResolver,
		logger:       logger,
	}
}

// Auth извлекает Bearer-токен, валидирует его и кладёт UserID и роль
// в контекст запроса.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return utils.ErrorResponse(c, apperrors.ErrEmptyAuthHeader, m.logger)
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return utils.ErrorResponse(c, apperrors.ErrInvalidAuthHeader, m.logger)
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			return utils.ErrorResponse(c, err, m.logger)
		}
		if claims.IsRefreshToken {
			return utils.ErrorResponse(c, apperrors.ErrTokenIsNotAccess, m.logger)
		}

		role, err := m.roleResolver.Resolve(c.Request().Context(), claims.UserID)
		if err != nil {
			m.logger.Warn("не удалось определить роль пользователя",
				zap.Uint64("userID", claims.UserID), zap.Error(err))
			return utils.ErrorResponse(c, apperrors.ErrUnauthorized, m.logger)
		}

		ctx := c.Request().Context()
		ctx = context.WithValue(ctx, contextkeys.UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, contextkeys.RoleKey, role)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireRoles — единый ролевой страж: пропускает обработчик только если
// роль запроса входит в допустимый набор, иначе 403 без выполнения.
func (m *AuthMiddleware) RequireRoles(allowed ...authz.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, err := utils.GetRoleFromCtx(c.Request().Context())
			if err != nil {
				return utils.ErrorResponse(c, apperrors.ErrUnauthorized, m.logger)
			}
			if !authz.Allowed(role, allowed...) {
				m.logger.Warn("отказ в доступе по роли",
					zap.String("role", string(role)),
					zap.String("uri", c.Request().RequestURI))
				return utils.ErrorResponse(c, apperrors.ErrForbidden, m.logger)
			}
			return next(c)
		}
	}
}
