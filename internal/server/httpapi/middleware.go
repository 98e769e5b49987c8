package httpapi

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const callerIDKey = "callerID"

// requireCaller verifies the bearer token and stores the resolved caller id
// in request locals for the handlers.
func (s *Server) requireCaller() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return sendError(c, fiber.StatusUnauthorized, "missing bearer token")
		}

		callerID, err := s.resolver.Resolve(c.UserContext(), token)
		if err != nil {
			s.logger.Debug(c.UserContext(), "token rejected", "error", err.Error())
			return sendError(c, fiber.StatusUnauthorized, "invalid token")
		}

		c.Locals(callerIDKey, callerID)
		return c.Next()
	}
}

func callerID(c *fiber.Ctx) string {
	id, _ := c.Locals(callerIDKey).(string)
	return id
}
