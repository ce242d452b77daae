package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour, 0)
	userID := uuid.New()

	token, err := svc.GenerateAccessToken(userID, "student@example.com")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "student@example.com", claims.Email)
	assert.NotEmpty(t, claims.ID)
	assert.InDelta(t, time.Hour.Seconds(), Remaining(claims).Seconds(), 5)
	assert.Equal(t, DefaultRefreshTokenExpiry, svc.RefreshTTL())
}

func TestJWTService_RefreshTokenID(t *testing.T) {
	svc := NewJWTService("test-secret", 0, 0)

	tokenID, token, err := svc.GenerateRefreshToken(uuid.New(), "student@example.com")
	require.NoError(t, err)

	extracted, err := svc.ExtractTokenID(token)
	require.NoError(t, err)
	assert.Equal(t, tokenID, extracted)
}

func TestJWTService_TokenTypes(t *testing.T) {
	svc := NewJWTService("test-secret", 0, 0)
	userID := uuid.New()

	access, err := svc.GenerateAccessToken(userID, "a@b.c")
	require.NoError(t, err)
	_, refresh, err := svc.GenerateRefreshToken(userID, "a@b.c")
	require.NoError(t, err)

	accessClaims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	assert.True(t, accessClaims.IsAccess())

	refreshClaims, err := svc.ValidateToken(refresh)
	require.NoError(t, err)
	assert.False(t, refreshClaims.IsAccess())
	assert.Equal(t, TokenTypeRefresh, refreshClaims.TokenType)

	_, err = svc.ValidateRefreshToken(access)
	assert.Error(t, err)
	_, err = svc.ExtractTokenID(access)
	assert.Error(t, err)

	_, err = svc.ValidateRefreshToken(refresh)
	assert.NoError(t, err)
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	token, err := NewJWTService("other-secret", 0, 0).GenerateAccessToken(uuid.New(), "a@b.c")
	require.NoError(t, err)

	_, err = NewJWTService("test-secret", 0, 0).ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpired(t *testing.T) {
	svc := NewJWTService("test-secret", time.Nanosecond, 0)
	token, err := svc.GenerateAccessToken(uuid.New(), "a@b.c")
	require.NoError(t, err)

	time.Sleep(1100 * time.Millisecond)
	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestTokenStore_WithoutRedisFailsSafe(t *testing.T) {
	store := NewTokenStore(nil)
	ctx := context.Background()

	require.NoError(t, store.StoreRefreshToken(ctx, "id", uuid.New(), "a@b.c", time.Minute))
	_, _, err := store.GetRefreshToken(ctx, "id")
	assert.Error(t, err)

	blacklisted, err := store.IsAccessTokenBlacklisted(ctx, "id")
	require.NoError(t, err)
	assert.False(t, blacklisted)
}
