package httpapi

import (
	"github.com/gofiber/fiber/v2"
)

type createWishlistRequest struct {
	Name string `json:"name"`
}

// updateWishlistRequest mirrors the combined update the frontend sends: a
// rename, a new recipient, or both in one PATCH.
type updateWishlistRequest struct {
	Name      string `json:"name"`
	ShareWith string `json:"shareWith"`
}

type addItemRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Supplier string  `json:"supplier"`
}

type setClaimRequest struct {
	Claimed bool `json:"claimed"`
}

func (s *Server) createWishlist(c *fiber.Ctx) error {
	req := &createWishlistRequest{}
	if err := c.BodyParser(req); err != nil {
		return sendError(c, fiber.StatusBadRequest, "malformed request body")
	}

	w, err := s.wishlists.Create(c.UserContext(), callerID(c), req.Name)
	if err != nil {
		return s.sendServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(w)
}

func (s *Server) listWishlists(c *fiber.Ctx) error {
	ws, err := s.wishlists.List(c.UserContext(), callerID(c))
	if err != nil {
		return s.sendServiceError(c, err)
	}
	return c.JSON(ws)
}

func (s *Server) getWishlist(c *fiber.Ctx) error {
	w, err := s.wishlists.Get(c.UserContext(), callerID(c), c.Params("id"), true)
	if err != nil {
		return s.sendServiceError(c, err)
	}
	return c.JSON(w)
}

func (s *Server) updateWishlist(c *fiber.Ctx) error {
	req := &updateWishlistRequest{}
	if err := c.BodyParser(req); err != nil {
		return sendError(c, fiber.StatusBadRequest, "malformed request body")
	}
	if req.Name == "" && req.ShareWith == "" {
		return sendError(c, fiber.StatusBadRequest, "nothing to update")
	}

	ctx := c.UserContext()
	caller := callerID(c)
	id := c.Params("id")

	if req.Name != "" {
		if _, err := s.wishlists.Rename(ctx, caller, id, req.Name); err != nil {
			return s.sendServiceError(c, err)
		}
	}
	if req.ShareWith != "" {
		if _, err := s.wishlists.Share(ctx, caller, id, req.ShareWith); err != nil {
			return s.sendServiceError(c, err)
		}
	}

	w, err := s.wishlists.Get(ctx, caller, id, true)
	if err != nil {
		return s.sendServiceError(c, err)
	}
	return c.JSON(w)
}

func (s *Server) deleteWishlist(c *fiber.Ctx) error {
	if err := s.wishlists.Delete(c.UserContext(), callerID(c), c.Params("id")); err != nil {
		return s.sendServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) addItem(c *fiber.Ctx) error {
	req := &addItemRequest{}
	if err := c.BodyParser(req); err != nil {
		return sendError(c, fiber.StatusBadRequest, "malformed request body")
	}

	it, err := s.wishlists.AddItem(c.UserContext(), callerID(c), c.Params("id"), req.Name, req.Price, req.Supplier)
	if err != nil {
		return s.sendServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(it)
}

func (s *Server) removeItem(c *fiber.Ctx) error {
	if err := s.wishlists.RemoveItem(c.UserContext(), callerID(c), c.Params("id"), c.Params("itemId")); err != nil {
		return s.sendServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) getSharedWishlist(c *fiber.Ctx) error {
	w, err := s.wishlists.Get(c.UserContext(), callerID(c), c.Params("id"), false)
	if err != nil {
		return s.sendServiceError(c, err)
	}
	return c.JSON(w)
}

func (s *Server) setClaim(c *fiber.Ctx) error {
	req := &setClaimRequest{}
	if err := c.BodyParser(req); err != nil {
		return sendError(c, fiber.StatusBadRequest, "malformed request body")
	}

	it, err := s.claims.SetClaim(c.UserContext(), callerID(c), c.Params("id"), c.Params("itemId"), req.Claimed)
	if err != nil {
		return s.sendServiceError(c, err)
	}
	return c.JSON(it)
}
