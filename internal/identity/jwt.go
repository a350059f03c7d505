package identity

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// JWTProvider validates an HS256 bearer token and uses its subject claim
// as the user id. Cognito, Entra and Firebase all end up presenting a
// bearer JWT, so one provider covers every front-end variant.
type JWTProvider struct {
	Secret []byte
}

func (p *JWTProvider) CurrentUserID(c *fiber.Ctx) (string, error) {
	raw := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	const prefix = "Bearer "
	if !strings.HasPrefix(raw, prefix) {
		return "", ErrUnauthenticated
	}

	tok, err := jwt.Parse(raw[len(prefix):], func(t *jwt.Token) (any, error) {
		return p.Secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !tok.Valid {
		return "", ErrUnauthenticated
	}

	sub, err := tok.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", ErrUnauthenticated
	}
	return sub, nil
}
