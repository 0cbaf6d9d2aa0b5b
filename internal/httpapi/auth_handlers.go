package httpapi

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/givehub/givehub/internal/auth"
	"github.com/givehub/givehub/internal/model"
)

func (s *Server) handleSignup(c *fiber.Ctx) error {
	query := payloadFromCtx[*SignupQuery](c, localQuery)
	body := payloadFromCtx[*SignupBody](c, localBody)

	result, err := s.auth.Signup(c.UserContext(),
		model.Role(query.Role),
		auth.AccountInput{
			Email:    body.Account.Email,
			Password: body.Account.Password,
		},
		auth.ProfileInput{
			Name:    body.Profile.Name,
			Address: body.Profile.Address,
			Phone:   body.Profile.Phone,
		},
	)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"account": result.Account,
		"profile": result.Profile,
		"token":   result.Token,
	})
}

func (s *Server) handleLogin(c *fiber.Ctx) error {
	body := payloadFromCtx[*LoginBody](c, localBody)

	result, err := s.auth.Login(c.UserContext(), body.Email, body.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"account": result.Account,
		"token":   result.Token,
	})
}

func (s *Server) handleAuthTest(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "Authorized"})
}

func (s *Server) handleDeleteAccount(c *fiber.Ctx) error {
	params := payloadFromCtx[*IDParam](c, localParams)
	body := payloadFromCtx[*LoginBody](c, localBody)

	id, err := strconv.ParseInt(params.ID, 10, 64)
	if err != nil {
		return auth.ErrAccountNotFound
	}

	account, err := s.auth.DeleteAccount(c.UserContext(), id, body.Email, body.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"account": account})
}
