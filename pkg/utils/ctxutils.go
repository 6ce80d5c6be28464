package utils

import (
	"context"

	"ops-dashboard/internal/authz"
	"ops-dashboard/pkg/contextkeys"
	apperrors "ops-dashboard/pkg/errors"
)

func GetUserIDFromCtx(ctx context.Context) (uint64, error) {
	userID, ok := ctx.Value(contextkeys.UserIDKey).(uint64)
	if !ok || userID == 0 {
		return 0, apperrors.ErrUserIDNotFoundInContext
	}
	return userID, nil
}

func GetRoleFromCtx(ctx context.Context) (authz.Role, error) {
	role, ok := ctx.Value(contextkeys.RoleKey).(authz.Role)
	if !ok {
		return authz.RoleAnon, apperrors.ErrRoleNotFoundInContext
	}
	return role, nil
}
