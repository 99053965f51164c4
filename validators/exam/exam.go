package examValidator

import (
	"strconv"

	"examportal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type SaveAnswerRequest struct {
	QuestionID     uint `json:"questionId" validate:"required"`
	SelectedOption int  `json:"selectedOption" validate:"gte=0"`
}

// SaveAnswer validator middleware
func SaveAnswer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SaveAnswerRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			if verrs, ok := err.(validator.ValidationErrors); ok {
				for _, fe := range verrs {
					switch fe.Field() {
					case "QuestionID":
						errors["questionId"] = "Question id is required!"
					case "SelectedOption":
						errors["selectedOption"] = "Selected option must not be negative!"
					}
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSaveAnswer", reqData)
		return c.Next()
	}
}

type SubmitExamRequest struct {
	CourseID uint `json:"courseId" validate:"required"`
}

// SubmitExam validator middleware
func SubmitExam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SubmitExamRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"courseId": "Course id is required!",
			})
		}

		c.Locals("validatedSubmitExam", reqData)
		return c.Next()
	}
}

// GetResultDetail validates the :resultId path parameter.
func GetResultDetail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		resultID, err := strconv.ParseUint(c.Params("resultId"), 10, 64)
		if err != nil || resultID == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid result id!", nil)
		}

		c.Locals("resultId", uint(resultID))
		return c.Next()
	}
}
