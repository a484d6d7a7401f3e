package auth

import (
	"errors"
	"os"
	"strconv"
	"time"

	"comanda/models"

	"github.com/golang-jwt/jwt/v5"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"

	accessTokenTTL  = 30 * time.Minute
	refreshTokenTTL = 24 * time.Hour
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims embeds the caller's identity and role groups in the signed token.
// Permission predicates trust these claims without re-querying the store.
type Claims struct {
	Username    string   `json:"username"`
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	IsSuperuser bool     `json:"is_superuser"`
	Groups      []string `json:"groups"`
	TokenType   string   `json:"token_type"`
	jwt.RegisteredClaims
}

func (c *Claims) UserID() uint {
	id, _ := strconv.ParseUint(c.Subject, 10, 64)
	return uint(id)
}

func (c *Claims) HasRole(role Role) bool {
	for _, g := range c.Groups {
		if g == string(role) {
			return true
		}
	}
	return false
}

func (c *Claims) HasAnyRole(roles ...Role) bool {
	for _, r := range roles {
		if c.HasRole(r) {
			return true
		}
	}
	return false
}

// TokenPair is the login response body: a short-lived access token plus a
// refresh token that can mint new access tokens.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

func signingKey() []byte {
	if s := os.Getenv("COMANDA_JWT_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("comanda-dev-secret")
}

func newClaims(user *models.User, tokenType string, ttl time.Duration) *Claims {
	now := time.Now()
	return &Claims{
		Username:    user.Username,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		IsSuperuser: user.IsSuperuser,
		Groups:      user.Roles,
		TokenType:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
}

func sign(claims *Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(signingKey())
}

// IssueTokenPair mints the access/refresh pair for an authenticated user.
func IssueTokenPair(user *models.User) (*TokenPair, error) {
	access, err := sign(newClaims(user, TokenTypeAccess, accessTokenTTL))
	if err != nil {
		return nil, err
	}
	refresh, err := sign(newClaims(user, TokenTypeRefresh, refreshTokenTTL))
	if err != nil {
		return nil, err
	}
	return &TokenPair{Access: access, Refresh: refresh}, nil
}

// IssueAccessToken mints a fresh access token, used by the refresh endpoint.
func IssueAccessToken(user *models.User) (string, error) {
	return sign(newClaims(user, TokenTypeAccess, accessTokenTTL))
}

// ParseToken verifies the signature and expiry and returns the claims.
func ParseToken(tokenString string) (*Claims, error) {
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return signingKey(), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
