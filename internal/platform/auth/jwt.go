// Package auth issues and verifies session tokens.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/fatflowers/coursehub/pkg/config"
	"github.com/fatflowers/coursehub/pkg/tool"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const CookieName = "token"

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	AccountID string `json:"account_id"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTService(secret string, ttl time.Duration) *JWTService {
	return &JWTService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// NewFromConfig uses a throwaway secret when none is configured, so dev
// sessions do not survive a restart.
func NewFromConfig(cfg *config.Config, log *zap.SugaredLogger) *JWTService {
	secret := cfg.Auth.JWTSecret
	if secret == "" {
		log.Warnw("auth.jwt_secret not set, using a random secret")
		secret = tool.GenerateTraceID()
	}
	return NewJWTService(secret, cfg.Auth.TokenTTL)
}

func (s *JWTService) TTL() time.Duration { return s.ttl }

// Generate returns a signed token for accountID and its expiry.
func (s *JWTService) Generate(accountID string) (string, time.Time, error) {
	now := s.now()
	exp := now.Add(s.ttl)
	claims := &Claims{
		AccountID: accountID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return token, exp, nil
}

func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.AccountID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

var Module = fx.Options(
	fx.Provide(NewFromConfig),
)
