package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/wb-go/wbf/ginext"
)

const (
	RoleOwner = "OWNER"
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

const (
	userIDKey = "user_id"
	roleKey   = "role"
)

var errInvalidToken = errors.New("invalid token")

type Claims struct {
	Role  string `json:"role"`
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// IssueToken signs an HS256 access token for sub.
func IssueToken(secret, sub, role string, ttl time.Duration) (string, error) {
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseToken(secret, tokenStr string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	c, ok := t.Claims.(*Claims)
	if !ok || !t.Valid || c.Subject == "" {
		return nil, errInvalidToken
	}
	return c, nil
}

// Authenticate resolves the bearer token when one is sent. Requests without
// a token pass through anonymously; a bad token is rejected.
func Authenticate(secret string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		tokenStr, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "expected a bearer token"})
			return
		}

		claims, err := ParseToken(secret, strings.TrimSpace(tokenStr))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid token"})
			return
		}

		c.Set(userIDKey, claims.Subject)
		c.Set(roleKey, claims.Role)
		c.Next()
	}
}

// RequireRole admits authenticated callers. With roles given, the caller's
// role must be one of them.
func RequireRole(roles ...string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if UserID(c) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "authentication required"})
			return
		}
		if len(roles) == 0 {
			c.Next()
			return
		}

		role := Role(c)
		for _, r := range roles {
			if r == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{"error": "forbidden"})
	}
}

func UserID(c *ginext.Context) string {
	return c.GetString(userIDKey)
}

func Role(c *ginext.Context) string {
	return c.GetString(roleKey)
}

// IsStaff reports whether the caller may act on other users' bookings.
func IsStaff(c *ginext.Context) bool {
	role := Role(c)
	return role == RoleOwner || role == RoleAdmin
}
