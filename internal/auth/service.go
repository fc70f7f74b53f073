package auth

import (
	"fmt"
	"time"

	apperrors "team-schedule-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Access tiers. Admin satisfies every viewer requirement.
const (
	RoleViewer = "viewer"
	RoleAdmin  = "admin"
)

// AuthService issues and validates tier session tokens
type AuthService struct {
	config *AuthConfig
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// LoginResponse represents a successful login
type LoginResponse struct {
	AccessToken      string `json:"accessToken"`
	TokenType        string `json:"tokenType" example:"bearer"`
	Role             string `json:"role"`
	ExpiresInSeconds int64  `json:"expiresInSeconds"`
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}
	return &AuthService{config: config}, nil
}

// Login checks the password for a tier and issues a session token.
func (s *AuthService) Login(role, password string) (*LoginResponse, error) {
	tier, ok := s.config.Tiers[role]
	if !ok {
		return nil, &apperrors.AuthenticationError{Message: "unknown role"}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(tier.PasswordHash), []byte(password)); err != nil {
		return nil, &apperrors.AuthenticationError{Message: "invalid credentials"}
	}

	ttl := time.Duration(s.config.TokenTTLMins) * time.Minute
	now := time.Now()
	claims := AuthClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "team-schedule-backend",
			Subject:   role,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &LoginResponse{
		AccessToken:      signed,
		TokenType:        "bearer",
		Role:             role,
		ExpiresInSeconds: int64(ttl.Seconds()),
	}, nil
}

// ValidateJWT parses and verifies a session token.
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, &apperrors.AuthenticationError{Message: "invalid token"}
	}
	return claims, nil
}

// RoleAllows reports whether a session role satisfies a required tier.
func RoleAllows(sessionRole, required string) bool {
	if sessionRole == RoleAdmin {
		return true
	}
	return sessionRole == required
}
