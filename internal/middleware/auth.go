package middleware

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"fintrack/internal/config"
	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// getJWTKey returns the JWT signing key from configuration
func getJWTKey() []byte {
	return []byte(config.Get().JWTSecret)
}

// GenerateToken mints a bearer token carrying the subject email and an
// expiry of now plus the configured lifetime.
func GenerateToken(email string) (string, error) {
	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Subject:   email,
		ExpiresAt: jwt.NewNumericDate(now.Add(config.Get().JWTExpirationDur)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(getJWTKey())
}

// ParseToken verifies a bearer token and returns its subject.
// Any parse, signature, or expiry failure is reported as an error.
func ParseToken(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return getJWTKey(), nil
	})
	if err != nil || !token.Valid {
		return "", fmt.Errorf("invalid token")
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("token has no subject")
	}
	return claims.Subject, nil
}

// PrincipalResolver resolves a token subject to a live user record.
type PrincipalResolver interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthMiddleware verifies the bearer token, resolves its subject through
// the identity store, and installs the principal on the request context.
// Tokens referring to a deleted user are treated as anonymous.
func AuthMiddleware(users PrincipalResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthenticated(c)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthenticated(c)
			return
		}

		email, err := ParseToken(parts[1])
		if err != nil {
			abortUnauthenticated(c)
			return
		}

		user, err := users.GetUserByEmail(c.Request.Context(), email)
		if err != nil {
			abortUnauthenticated(c)
			return
		}

		c.Set("userID", user.ID)
		c.Set("email", user.Email)
		c.Next()
	}
}

func abortUnauthenticated(c *gin.Context) {
	c.String(apperrors.ErrUnauthenticated.StatusCode, apperrors.ErrUnauthenticated.Message)
	c.Abort()
}
