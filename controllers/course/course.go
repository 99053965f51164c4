package courseController

import (
	"examportal/exam"
	"examportal/middleware"
	"examportal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Controller struct {
	DB    *gorm.DB
	Exams *exam.Service
}

func NewController(db *gorm.DB, exams *exam.Service) *Controller {
	return &Controller{DB: db, Exams: exams}
}

// ListCourses returns all courses ordered by name
func (ctrl *Controller) ListCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := ctrl.DB.Order("name asc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course list.", courses)
}

// GetQuestions returns one page of a course's questions. The correct
// option is stripped before anything leaves the exam service.
func (ctrl *Controller) GetQuestions(c *fiber.Ctx) error {
	courseID := c.Locals("courseId").(uint)
	page := c.Locals("page").(int)

	questionPage, err := ctrl.Exams.ListQuestions(courseID, page)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch questions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question page.", questionPage)
}
