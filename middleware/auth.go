package middleware

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware resolves the bearer credential to a candidate identity.
// The credential is the candidate's numeric id itself; there is no signing
// or expiry. The id is not checked against the candidates table: queries
// for an unknown id simply return nothing downstream.
func AuthMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  false,
			"message": "Missing or invalid Authorization header",
		})
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  false,
			"message": "Invalid Authorization header format",
		})
	}

	token := strings.TrimSpace(authHeader[len("Bearer "):])

	candidateID, err := strconv.ParseUint(token, 10, 64)
	if err != nil || candidateID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status":  false,
			"message": "Invalid credential",
		})
	}

	c.Locals("candidateId", uint(candidateID))

	return c.Next()
}

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusBadRequest, false, "Validation failed!", errors)
}
