package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/limbo/craveblock/pkg/entity"
)

type JWTServiceI interface {
	GenerateToken(user *entity.User) (string, error)
	// Fails with ErrInvalidToken or ErrTokenRevoked
	ParseToken(tokenString string) (*JWTClaims, error)
	// Rejects the token id until the token would expire anyway
	Revoke(tokenID string, expiresAt time.Time)
}

type JWTClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}
