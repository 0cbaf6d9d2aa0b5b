package httpapi

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"

	"github.com/givehub/givehub/internal/auth"
	"github.com/givehub/givehub/internal/model"
	"github.com/givehub/givehub/internal/store"
)

// itemNotFound is used by the public read routes; the owned mutation routes
// report 403 instead so callers cannot probe which ids exist.
var itemNotFound = errors.New("Item not found", errors.CategoryNotFound).
	WithCode(errors.CodeNotFound).
	WithTextCode("ITEM_NOT_FOUND")

func (s *Server) handleListItems(c *fiber.Ctx) error {
	items, err := s.items.Items(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"items": items})
}

func (s *Server) handleListCategories(c *fiber.Ctx) error {
	categories, err := s.items.ItemCategories(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"categories": categories})
}

func (s *Server) handleGetItem(c *fiber.Ctx) error {
	item, err := s.items.ItemByID(c.UserContext(), itemID(c))
	if err != nil {
		if errors.IsNotFound(err) {
			return itemNotFound
		}
		return err
	}
	return c.JSON(fiber.Map{"item": item})
}

func (s *Server) handleCreateItem(c *fiber.Ctx) error {
	body := payloadFromCtx[*ItemBody](c, localBody)

	dc, ok := auth.DonationCenterFromCtx(c)
	if !ok {
		return auth.ErrUnauthorized
	}
	if body.DonationCenterID != dc.ID {
		return auth.ErrForbidden
	}

	item := &model.Item{
		DonationCenterID: body.DonationCenterID,
		CategoryID:       body.CategoryID,
		Name:             body.Name,
		Quantity:         body.Quantity,
	}
	if err := s.items.CreateItem(c.UserContext(), item); err != nil {
		if s.isConstraintViolation(err) {
			return errors.New("Invalid item", errors.CategoryValidation).
				WithCode(errors.CodeBadRequest).
				WithTextCode("INVALID_ITEM")
		}
		return err
	}
	return c.JSON(fiber.Map{"item": item})
}

func (s *Server) handlePatchItem(c *fiber.Ctx) error {
	body := payloadFromCtx[*ItemPatchBody](c, localBody)

	dc, ok := auth.DonationCenterFromCtx(c)
	if !ok {
		return auth.ErrUnauthorized
	}

	patch := model.ItemPatch{
		CategoryID: body.CategoryID,
		Name:       body.Name,
		Quantity:   body.Quantity,
	}
	item, err := s.items.UpdateOwnedItem(c.UserContext(), itemID(c), dc.ID, patch)
	if err != nil {
		// A row that is missing or owned by someone else is reported the same
		// way, so existence is never revealed.
		if errors.IsNotFound(err) {
			return auth.ErrForbidden
		}
		if s.isConstraintViolation(err) {
			return errors.New("Invalid item", errors.CategoryValidation).
				WithCode(errors.CodeBadRequest).
				WithTextCode("INVALID_ITEM")
		}
		return err
	}
	return c.JSON(fiber.Map{"item": item})
}

func (s *Server) handleDeleteItem(c *fiber.Ctx) error {
	dc, ok := auth.DonationCenterFromCtx(c)
	if !ok {
		return auth.ErrUnauthorized
	}

	item, err := s.items.DeleteOwnedItem(c.UserContext(), itemID(c), dc.ID)
	if err != nil {
		if errors.IsNotFound(err) {
			return auth.ErrForbidden
		}
		return err
	}
	return c.JSON(fiber.Map{"item": item})
}

// itemID reads the validated :id parameter. The digit check already ran in
// the validation pipeline.
func itemID(c *fiber.Ctx) int64 {
	params := payloadFromCtx[*IDParam](c, localParams)
	id, _ := strconv.ParseInt(params.ID, 10, 64)
	return id
}

// isConstraintViolation defers to the storage layer's classifier so the
// handlers stay free of driver imports.
func (s *Server) isConstraintViolation(err error) bool {
	return store.IsConstraintViolation(err)
}
