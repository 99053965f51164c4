package examRoutes

import (
	examControllers "examportal/controllers/exam"
	"examportal/middleware"
	examValidators "examportal/validators/exam"

	"github.com/gofiber/fiber/v2"
)

// SetupExamRoutes sets up the authenticated exam workflow routes
func SetupExamRoutes(app *fiber.App, ctrl *examControllers.Controller) {
	app.Post("/answers", examValidators.SaveAnswer(), middleware.AuthMiddleware, ctrl.SaveAnswer)
	app.Post("/exams/submit", examValidators.SubmitExam(), middleware.AuthMiddleware, ctrl.SubmitExam)
	app.Get("/results/:resultId", examValidators.GetResultDetail(), middleware.AuthMiddleware, ctrl.GetResultDetail)
	app.Get("/my-results", middleware.AuthMiddleware, ctrl.MyResults)
}
