// Package auth issues and validates the JWTs that carry the requester
// identity between requests.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/jobsterhq/jobster-api/internal/apperrors"
	"github.com/jobsterhq/jobster-api/internal/models"
)

// Claims embeds the display name because the front-end renders it straight
// from the token. That means a profile update has to reissue the token;
// the old one stays valid until it expires (no revocation list).
type Claims struct {
	UserID   uuid.UUID `json:"userId"`
	Name     string    `json:"name"`
	ReadOnly bool      `json:"readOnly"`
	jwt.RegisteredClaims
}

type TokenIssuer struct {
	secret   []byte
	lifetime time.Duration
}

func NewTokenIssuer(secret string, lifetime time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), lifetime: lifetime}
}

func (i *TokenIssuer) Issue(user *models.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:   user.ID,
		Name:     user.Name,
		ReadOnly: user.ReadOnly,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.lifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

func (i *TokenIssuer) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if method, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		} else if method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected HMAC algorithm: %v", method.Alg())
		}
		return i.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.Unauthenticated("Token expired")
		}
		return nil, apperrors.Unauthenticated("Authentication invalid")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.Unauthenticated("Authentication invalid")
	}
	if claims.UserID == uuid.Nil {
		return nil, apperrors.Unauthenticated("Authentication invalid")
	}
	return claims, nil
}
