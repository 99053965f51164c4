package authRoutes

import (
	authControllers "examportal/controllers/auth"
	"examportal/middleware"
	authValidators "examportal/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, ctrl *authControllers.Controller) {
	authGroup := app.Group("/auth")

	authGroup.Post("/register", authValidators.Register(), ctrl.Register)
	authGroup.Post("/login", authValidators.Login(), ctrl.Login)
	authGroup.Put("/change/password", authValidators.ChangePassword(), middleware.AuthMiddleware, ctrl.ChangePassword)
	authGroup.Get("/login/history", authValidators.LoginHistory(), middleware.AuthMiddleware, ctrl.LoginHistoryList)
}
