package services

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/xjtang/lifelog-backend/internal/logger"
)

// AuthService gates the single-user API: the configured device key is
// exchanged for a short-lived bearer token. There are no accounts; "sub" is
// always the device.
type AuthService interface {
	IssueToken(ctx context.Context, deviceKey string) (string, error)
	ValidateToken(tokenString string) error
}

type authService struct {
	log           *logger.Logger
	deviceKeyHash []byte
	jwtSecret     []byte
	tokenTTL      time.Duration
}

func NewAuthService(baseLog *logger.Logger, deviceKey, jwtSecret string, tokenTTL time.Duration) (AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(deviceKey), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash device key: %w", err)
	}
	return &authService{
		log:           baseLog.With("service", "AuthService"),
		deviceKeyHash: hash,
		jwtSecret:     []byte(jwtSecret),
		tokenTTL:      tokenTTL,
	}, nil
}

func (s *authService) IssueToken(ctx context.Context, deviceKey string) (string, error) {
	if err := bcrypt.CompareHashAndPassword(s.deviceKeyHash, []byte(deviceKey)); err != nil {
		s.log.Warn("Token request with wrong device key")
		return "", fmt.Errorf("invalid device key")
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "device",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	})
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (s *authService) ValidateToken(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return err
	}
	if !token.Valid {
		return fmt.Errorf("invalid token")
	}
	return nil
}
