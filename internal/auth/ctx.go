package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/givehub/givehub/internal/model"
)

// grantKey is the fiber Locals slot holding the request's Grant.
const grantKey = "auth:grant"

// Grant is the request-scoped authorization context: the role the route
// required and the entity loaded for it. Exactly one of the entity fields is
// set, matching Role. It lives for one request and is never persisted.
type Grant struct {
	Role           model.Role
	Account        *model.Account
	DonationCenter *model.DonationCenter
	User           *model.User
}

// WithGrant attaches the grant to the current request.
func WithGrant(c *fiber.Ctx, grant *Grant) {
	c.Locals(grantKey, grant)
}

// GrantFromCtx returns the grant stored by the authorization middleware.
func GrantFromCtx(c *fiber.Ctx) (*Grant, bool) {
	grant, ok := c.Locals(grantKey).(*Grant)
	return grant, ok
}

// DonationCenterFromCtx is a convenience accessor for routes that required
// the donation_center role.
func DonationCenterFromCtx(c *fiber.Ctx) (*model.DonationCenter, bool) {
	grant, ok := GrantFromCtx(c)
	if !ok || grant.DonationCenter == nil {
		return nil, false
	}
	return grant.DonationCenter, true
}
