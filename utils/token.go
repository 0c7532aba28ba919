package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"ohio-order/models"
)

type SessionClaims struct {
	SessionID string `json:"session_id"`
	TableID   string `json:"table_id"`
	NomorMeja string `json:"nomor_meja"`
	jwt.RegisteredClaims
}

func GenerateSessionToken(sess models.Session, secret string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		SessionID: sess.ID,
		TableID:   sess.TableID,
		NomorMeja: sess.NomorMeja,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ValidateSessionToken(tokenString, secret string) (models.Session, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return models.Session{}, err
	}
	if !token.Valid || claims.SessionID == "" {
		return models.Session{}, errors.New("invalid session token")
	}

	return models.Session{
		ID:        claims.SessionID,
		TableID:   claims.TableID,
		NomorMeja: claims.NomorMeja,
	}, nil
}
