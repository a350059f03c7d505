// Package identity abstracts "who is making this request". The original
// demo shipped four near-identical front ends, one per auth vendor; here
// each vendor integration is just another Provider behind one interface.
package identity

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ErrUnauthenticated means the request carried no usable identity.
// The edge maps it to 401; it is not part of the cart fault taxonomy.
var ErrUnauthenticated = errors.New("unauthenticated")

type Provider interface {
	// CurrentUserID extracts the authenticated user id for this request.
	CurrentUserID(c *fiber.Ctx) (string, error)
}

// ForMode builds the configured provider. Modes: "jwt", "apikey",
// "query" (trusts ?userId=, the original demo's unauthenticated mode).
func ForMode(mode, jwtSecret, apiKeyHash string) (Provider, error) {
	switch mode {
	case "jwt":
		if jwtSecret == "" {
			return nil, errors.New("AUTH_MODE=jwt requires JWT_SECRET")
		}
		return &JWTProvider{Secret: []byte(jwtSecret)}, nil
	case "apikey":
		if apiKeyHash == "" {
			return nil, errors.New("AUTH_MODE=apikey requires API_KEY_HASH")
		}
		return &APIKeyProvider{KeyHash: []byte(apiKeyHash)}, nil
	case "query", "":
		return QueryProvider{}, nil
	default:
		return nil, fmt.Errorf("unsupported AUTH_MODE %q", mode)
	}
}

// QueryProvider trusts the userId query parameter. Dev/demo only.
type QueryProvider struct{}

func (QueryProvider) CurrentUserID(c *fiber.Ctx) (string, error) {
	uid := c.Query("userId")
	if uid == "" {
		return "", ErrUnauthenticated
	}
	return uid, nil
}
