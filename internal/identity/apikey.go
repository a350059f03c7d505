package identity

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// APIKeyProvider accepts a shared key in X-Api-Key, checked against a
// bcrypt hash, and takes the acting user from X-User-Id. Meant for
// trusted server-to-server callers that already authenticated the user.
type APIKeyProvider struct {
	KeyHash []byte
}

func (p *APIKeyProvider) CurrentUserID(c *fiber.Ctx) (string, error) {
	key := c.Get("X-Api-Key")
	if key == "" {
		return "", ErrUnauthenticated
	}
	if err := bcrypt.CompareHashAndPassword(p.KeyHash, []byte(key)); err != nil {
		return "", ErrUnauthenticated
	}
	uid := c.Get("X-User-Id")
	if uid == "" {
		return "", ErrUnauthenticated
	}
	return uid, nil
}
