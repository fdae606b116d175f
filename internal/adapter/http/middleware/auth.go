package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"reform_flow/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const userContextKey = "auth_user"

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid credentials", http.StatusUnauthorized)

// AuthUser is the identity extracted from a verified bearer token.
type AuthUser struct {
	ID    string
	Email string
}

// AuthConfig defines how bearer tokens are verified. Now is injectable so
// expiry checks are testable; nil means time.Now.
type AuthConfig struct {
	Secret []byte
	Now    func() time.Time
}

type authClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// RequireAuth verifies the Authorization bearer token (HS256) and stores the
// authenticated user in the request context. The user id travels in the
// standard subject claim.
func RequireAuth(cfg AuthConfig) gin.HandlerFunc {
	parserOpts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if cfg.Now != nil {
		parserOpts = append(parserOpts, jwt.WithTimeFunc(cfg.Now))
	}

	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		var claims authClaims
		parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
			if len(cfg.Secret) == 0 {
				return nil, errors.New("auth secret not configured")
			}
			return cfg.Secret, nil
		}, parserOpts...)
		if err != nil || !parsed.Valid || strings.TrimSpace(claims.Subject) == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		SetUser(c, AuthUser{ID: claims.Subject, Email: claims.Email})
		c.Next()
	}
}

// SetUser stores the authenticated user in the request context.
func SetUser(c *gin.Context, u AuthUser) {
	c.Set(userContextKey, u)
}

// UserFromContext returns the authenticated user stored by RequireAuth.
func UserFromContext(c *gin.Context) (AuthUser, bool) {
	v, ok := c.Get(userContextKey)
	if !ok {
		return AuthUser{}, false
	}
	u, ok := v.(AuthUser)
	return u, ok
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
