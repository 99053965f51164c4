package courseValidator

import (
	"strconv"

	"examportal/middleware"

	"github.com/gofiber/fiber/v2"
)

// GetQuestions validates the :courseId path parameter and normalizes the
// page query value. A missing or non-numeric page defaults to 1 rather
// than failing.
func GetQuestions() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := strconv.ParseUint(c.Params("courseId"), 10, 64)
		if err != nil || courseID == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
		}

		page, err := strconv.Atoi(c.Query("page"))
		if err != nil || page < 1 {
			page = 1
		}

		c.Locals("courseId", uint(courseID))
		c.Locals("page", page)
		return c.Next()
	}
}
