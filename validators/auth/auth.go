package authValidator

import (
	"examportal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// fieldErrors flattens validator output into the field -> message map the
// response envelope expects.
func fieldErrors(err error, messages map[string]string) map[string]string {
	errors := make(map[string]string)
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			field := fe.Field()
			if msg, ok := messages[field]; ok {
				errors[field] = msg
			} else {
				errors[field] = "Invalid value!"
			}
		}
	}
	return errors
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// Register validator middleware
func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RegisterRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err, map[string]string{
				"Name":     "Name is required!",
				"Email":    "Invalid email!",
				"Password": "Password must be at least 8 characters long!",
			}))
		}

		c.Locals("validatedRegister", reqData)
		return c.Next()
	}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err, map[string]string{
				"Email":    "Invalid email!",
				"Password": "Password is required!",
			}))
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

// ChangePassword validator middleware
func ChangePassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ChangePasswordRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err, map[string]string{
				"CurrentPassword": "Current password is required!",
				"NewPassword":     "Password must be at least 8 characters long!",
			}))
		}

		c.Locals("validatedChangePassword", reqData)
		return c.Next()
	}
}

type LoginHistoryRequest struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// LoginHistory validator middleware. Page and limit fall back to sane
// defaults instead of failing.
func LoginHistory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginHistoryRequest)
		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		if reqData.Page < 1 {
			reqData.Page = 1
		}
		if reqData.Limit < 1 {
			reqData.Limit = 10
		}

		c.Locals("validatedLoginHistory", reqData)
		return c.Next()
	}
}
