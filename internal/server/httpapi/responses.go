package httpapi

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/soplanita/giftgenie/internal/common"
)

func sendError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// sendServiceError maps the service error taxonomy onto HTTP statuses:
// invalid data → 400, invalid token → 401, forbidden (including claim
// conflicts) → 403, not found → 404, partial failure → 502 carrying the
// committed sub-writes so the caller can retry the remainder.
func (s *Server) sendServiceError(c *fiber.Ctx, err error) error {
	var pe *common.PartialError
	switch {
	case errors.As(err, &pe):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error":     "operation partially completed",
			"op":        pe.Op,
			"committed": pe.Committed,
		})
	case errors.Is(err, common.ErrInvalidData):
		return sendError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, common.ErrForbidden):
		return sendError(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, common.ErrNotFound):
		return sendError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, common.ErrInvalidToken):
		return sendError(c, fiber.StatusUnauthorized, err.Error())
	default:
		s.logger.Error(c.UserContext(), "request failed", "error", err.Error())
		return sendError(c, fiber.StatusInternalServerError, common.ErrInternal.Error())
	}
}
