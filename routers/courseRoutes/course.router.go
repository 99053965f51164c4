package courseRoutes

import (
	courseControllers "examportal/controllers/course"
	courseValidators "examportal/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up course and question listing routes. Both are
// public: the question payload never includes the answer key.
func SetupCourseRoutes(app *fiber.App, ctrl *courseControllers.Controller) {
	app.Get("/courses", ctrl.ListCourses)
	app.Get("/questions/:courseId", courseValidators.GetQuestions(), ctrl.GetQuestions)
}
