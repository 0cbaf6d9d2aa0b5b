package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"

	"github.com/givehub/givehub/internal/model"
)

const bearerScheme = "Bearer"

// RequireRole returns a middleware that verifies the bearer token, loads the
// entity of the required role for the token's subject, and attaches it as the
// request's Grant. It is the only way handlers learn who is calling and in
// which role. A valid token whose subject has no profile in the required role
// is rejected the same way as an invalid token.
func RequireRole(store Store, tokens *TokenService, role model.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, err := bearerToken(c)
		if err != nil {
			return err
		}

		subject, err := tokens.Verify(raw)
		if err != nil {
			return err
		}

		ctx := c.UserContext()
		grant := &Grant{Role: role}

		switch role {
		case model.RoleAccount:
			account, err := store.AccountByID(ctx, subject)
			if err != nil {
				return unauthorizedOrInternal(err)
			}
			grant.Account = account
		case model.RoleDonationCenter:
			dc, err := store.DonationCenterByID(ctx, subject)
			if err != nil {
				return unauthorizedOrInternal(err)
			}
			grant.DonationCenter = dc
		case model.RoleUser:
			user, err := store.UserByID(ctx, subject)
			if err != nil {
				return unauthorizedOrInternal(err)
			}
			grant.User = user
		default:
			return errors.New("unknown required role", errors.CategoryInternal).
				WithCode(errors.CodeInternal).
				WithMetadata(map[string]any{"role": string(role)})
		}

		WithGrant(c, grant)
		return c.Next()
	}
}

// bearerToken extracts the raw token from the Authorization header.
func bearerToken(c *fiber.Ctx) (string, error) {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return "", ErrUnauthorized
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", ErrUnauthorized
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrUnauthorized
	}
	return token, nil
}

func unauthorizedOrInternal(err error) error {
	if errors.IsNotFound(err) {
		return ErrUnauthorized
	}
	return errors.Wrap(err, errors.CategoryInternal, "failed to load role entity")
}
