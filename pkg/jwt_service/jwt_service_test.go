package jwtservice_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/craveblock/internal/error_values"
	"github.com/limbo/craveblock/pkg/entity"
	jwtservice "github.com/limbo/craveblock/pkg/jwt_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenLifecycle(t *testing.T) {
	s := jwtservice.New("test_secret", time.Hour)
	user := &entity.User{ID: uuid.New(), Email: "sam@example.com"}

	token, err := s.GenerateToken(user)
	require.NoError(t, err)

	claims, err := s.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.NotEmpty(t, claims.ID)

	s.Revoke(claims.ID, claims.ExpiresAt.Time)
	_, err = s.ParseToken(token)
	assert.ErrorIs(t, err, errorvalues.ErrTokenRevoked)

	other, err := s.GenerateToken(user)
	require.NoError(t, err)
	_, err = s.ParseToken(other)
	assert.NoError(t, err)
}

func TestParseTokenRejects(t *testing.T) {
	s := jwtservice.New("test_secret", time.Hour)
	user := &entity.User{ID: uuid.New()}

	t.Run("garbage", func(t *testing.T) {
		_, err := s.ParseToken("not.a.token")
		assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
	t.Run("foreign secret", func(t *testing.T) {
		token, err := jwtservice.New("other_secret", time.Hour).GenerateToken(user)
		require.NoError(t, err)
		_, err = s.ParseToken(token)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
	t.Run("expired", func(t *testing.T) {
		claims := jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute))}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test_secret"))
		require.NoError(t, err)
		_, err = s.ParseToken(token)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
	t.Run("wrong algorithm", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{}).SignedString([]byte("test_secret"))
		require.NoError(t, err)
		_, err = s.ParseToken(token)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
}
