package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token kinds carried in the token_type claim. A refresh token is never
// accepted where an access token is required, and vice versa.
const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

type jwtClaims struct {
	jwt.RegisteredClaims
	TokenType string `json:"token_type"`
}

// JWTTokens issues and verifies HS256-signed access and refresh tokens.
// It implements both domain.TokenIssuer and domain.TokenVerifier.
type JWTTokens struct {
	secret        []byte
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

// NewJWTTokens returns a JWTTokens signing with the given secret. Refresh
// tokens additionally get a unique JTI.
func NewJWTTokens(secret string, accessExpiry, refreshExpiry time.Duration) *JWTTokens {
	return &JWTTokens{
		secret:        []byte(secret),
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
	}
}

func (t *JWTTokens) IssueAccess(userID int64) (string, error) {
	return t.issue(userID, tokenTypeAccess, t.accessExpiry, "")
}

func (t *JWTTokens) IssueRefresh(userID int64) (string, error) {
	return t.issue(userID, tokenTypeRefresh, t.refreshExpiry, uuid.NewString())
}

func (t *JWTTokens) issue(userID int64, tokenType string, expiry time.Duration, jti string) (string, error) {
	now := time.Now()
	claims := jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
		TokenType: tokenType,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

func (t *JWTTokens) VerifyAccess(token string) (int64, error) {
	return t.verify(token, tokenTypeAccess)
}

func (t *JWTTokens) VerifyRefresh(token string) (int64, error) {
	return t.verify(token, tokenTypeRefresh)
}

func (t *JWTTokens) verify(tokenString, wantType string) (int64, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &jwtClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		return 0, fmt.Errorf("invalid token: %w", err)
	}
	claims, ok := parsed.Claims.(*jwtClaims)
	if !ok || !parsed.Valid {
		return 0, fmt.Errorf("invalid token claims")
	}
	if claims.TokenType != wantType {
		return 0, fmt.Errorf("unexpected token type %q", claims.TokenType)
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid subject: %w", err)
	}
	return userID, nil
}
