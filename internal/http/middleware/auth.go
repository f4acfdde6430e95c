package middleware

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"nzwalks/internal/config"
)

// Role names carried in the token's roles claim.
const (
	RoleReader = "Reader"
	RoleWriter = "Writer"
)

// ClaimsLocalKey is where Require stores the verified *Claims.
const ClaimsLocalKey = "claims"

// Claims are the JWT claims accepted by the API.
type Claims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// HasRole reports whether the claims grant role. Writers may also read.
func (c *Claims) HasRole(role string) bool {
	if slices.Contains(c.Roles, role) {
		return true
	}
	return role == RoleReader && slices.Contains(c.Roles, RoleWriter)
}

// Auth verifies HS256 bearer tokens.
type Auth struct {
	secret []byte
	issuer string
}

// NewAuth builds an Auth from cfg. An empty secret disables every check.
func NewAuth(cfg config.AuthConfig) *Auth {
	return &Auth{secret: []byte(cfg.Secret), issuer: cfg.Issuer}
}

// Enabled reports whether tokens are verified.
func (a *Auth) Enabled() bool { return len(a.secret) > 0 }

// Require rejects requests without a valid token granting role with 401 or 403.
func (a *Auth) Require(role string) fiber.Handler {
	if !a.Enabled() {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return func(c *fiber.Ctx) error {
		raw, ok := strings.CutPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
		if !ok || raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
		}

		claims, err := a.parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}
		if !claims.HasRole(role) {
			return fiber.NewError(fiber.StatusForbidden, fmt.Sprintf("role %s required", role))
		}

		c.Locals(ClaimsLocalKey, claims)
		return c.Next()
	}
}

func (a *Auth) parse(raw string) (*Claims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if a.issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.issuer))
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}
	return claims, nil
}

// Sign issues a token carrying roles that expires after ttl.
func (a *Auth) Sign(subject string, roles []string, ttl time.Duration) (string, error) {
	if !a.Enabled() {
		return "", errors.New("auth is disabled")
	}
	now := time.Now()
	claims := Claims{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    a.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}
