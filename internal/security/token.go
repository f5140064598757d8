package security

import (
	"net/http"
	"time"

	"go-hrms/internal/shared/apperror"

	"github.com/golang-jwt/jwt/v5"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var ErrInvalidToken = apperror.New(
	apperror.CodeUnauthorized,
	"invalid or expired token",
	http.StatusUnauthorized,
)

// TokenManager issues and verifies the signed HS256 tokens used for auth.
// Access and refresh tokens share the claim shape {sub, org_id, type, iat, exp}
// and differ only in type and TTL.
type TokenManager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenManager(secret string, accessTTL, refreshTTL time.Duration) *TokenManager {
	return &TokenManager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (m *TokenManager) CreateAccessToken(subject, orgID string) (string, error) {
	return m.sign(subject, orgID, TokenTypeAccess, m.accessTTL)
}

func (m *TokenManager) CreateRefreshToken(subject, orgID string) (string, error) {
	return m.sign(subject, orgID, TokenTypeRefresh, m.refreshTTL)
}

func (m *TokenManager) sign(subject, orgID, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":    subject,
		"org_id": orgID,
		"type":   tokenType,
		"iat":    now.Unix(),
		"exp":    now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Decode verifies signature and expiry and returns the claims.
func (m *TokenManager) Decode(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// AssertTokenType rejects claims whose "type" differs from expected, so a
// refresh token can never pass as an access token and vice versa.
func AssertTokenType(claims jwt.MapClaims, expected string) error {
	actual, _ := claims["type"].(string)
	if actual != expected {
		return ErrInvalidToken
	}
	return nil
}
