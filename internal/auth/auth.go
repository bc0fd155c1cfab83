// Package auth verifies bearer tokens and enforces per-route authorities and scopes.
package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// ClaimsLocalKey is the key used to store verified claims in Fiber's context locals.
const ClaimsLocalKey = "auth_claims"

var ErrMissingToken = errors.New("missing bearer token")

// Scopes accepts both a JSON array and a space-separated string.
type Scopes []string

func (s *Scopes) UnmarshalJSON(b []byte) error {
	var list []string
	if err := json.Unmarshal(b, &list); err == nil {
		*s = list
		return nil
	}
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return fmt.Errorf("scope must be a string or an array of strings")
	}
	*s = strings.Fields(str)
	return nil
}

// Claims carried by access tokens.
type Claims struct {
	UserName    string   `json:"user_name,omitempty"`
	Authorities []string `json:"authorities"`
	Scope       Scopes   `json:"scope"`
	jwt.RegisteredClaims
}

func (c *Claims) HasAuthority(a string) bool { return slices.Contains(c.Authorities, a) }

func (c *Claims) HasScope(s string) bool { return slices.Contains(c.Scope, s) }

// Verifier validates HS256 access tokens.
type Verifier struct {
	secret []byte
	parser *jwt.Parser
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{
		secret: []byte(secret),
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired()),
	}
}

// Verify parses token and checks its signature and expiry.
func (v *Verifier) Verify(token string) (*Claims, error) {
	claims := &Claims{}
	_, err := v.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// Guard builds route middleware. A Guard without a verifier lets every request through.
type Guard struct {
	verifier *Verifier
}

// NewGuard returns a Guard for secret. An empty secret disables authorization.
func NewGuard(secret string) *Guard {
	if secret == "" {
		return &Guard{}
	}
	return &Guard{verifier: NewVerifier(secret)}
}

func (g *Guard) Enabled() bool { return g.verifier != nil }

// Require rejects requests without a valid bearer token (401) or lacking
// authority or any of scopes (403).
func (g *Guard) Require(authority string, scopes ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !g.Enabled() {
			return c.Next()
		}

		token, err := bearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}
		claims, err := g.verifier.Verify(token)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		if !claims.HasAuthority(authority) {
			return fiber.NewError(fiber.StatusForbidden, "missing authority "+authority)
		}
		for _, s := range scopes {
			if !claims.HasScope(s) {
				return fiber.NewError(fiber.StatusForbidden, "missing scope "+s)
			}
		}

		c.Locals(ClaimsLocalKey, claims)
		return c.Next()
	}
}

// ClaimsFrom returns the claims stored by Require, or nil.
func ClaimsFrom(c *fiber.Ctx) *Claims {
	claims, _ := c.Locals(ClaimsLocalKey).(*Claims)
	return claims
}

func bearerToken(c *fiber.Ctx) (string, error) {
	h := c.Get(fiber.HeaderAuthorization)
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", ErrMissingToken
	}
	return strings.TrimSpace(token), nil
}
