package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "ops-dashboard/pkg/errors"
)

func TestJWTServiceGenerateAndValidate(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour, 24*time.Hour, zap.NewNop())

	access, refresh, err := svc.GenerateTokens(42)
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)

	accessClaims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), accessClaims.UserID)
	assert.False(t, accessClaims.IsRefreshToken)

	refreshClaims, err := svc.ValidateToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), refreshClaims.UserID)
	assert.True(t, refreshClaims.IsRefreshToken)
}

func TestJWTServiceRejectsForeignSignature(t *testing.T) {
	issuer := NewJWTService("secret-one", time.Hour, time.Hour, zap.NewNop())
	verifier := NewJWTService("secret-two", time.Hour, time.Hour, zap.NewNop())

	access, _, err := issuer.GenerateTokens(1)
	require.NoError(t, err)

	_, err = verifier.ValidateToken(access)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestJWTServiceRejectsExpiredToken(t *testing.T) {
	svc := NewJWTService("test-secret", -time.Minute, -time.Minute, zap.NewNop())

	access, _, err := svc.GenerateTokens(1)
	require.NoError(t, err)

	_, err = svc.ValidateToken(access)
	assert.Error(t, err)
}

func TestJWTServiceRejectsGarbage(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour, time.Hour, zap.NewNop())

	_, err := svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
