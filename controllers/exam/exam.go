package examController

import (
	"errors"
	"log"

	"examportal/exam"
	"examportal/middleware"
	"examportal/models"
	"examportal/utils"
	examValidator "examportal/validators/exam"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Controller struct {
	DB     *gorm.DB
	Exams  *exam.Service
	Mailer *utils.Mailer
}

func NewController(db *gorm.DB, exams *exam.Service, mailer *utils.Mailer) *Controller {
	return &Controller{DB: db, Exams: exams, Mailer: mailer}
}

// SaveAnswer upserts the candidate's selection for a question. Replaying
// the request is harmless; a changed selection overwrites the stored one.
func (ctrl *Controller) SaveAnswer(c *fiber.Ctx) error {
	candidateID, ok := c.Locals("candidateId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedSaveAnswer").(*examValidator.SaveAnswerRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := ctrl.Exams.RecordAnswer(candidateID, reqData.QuestionID, reqData.SelectedOption); err != nil {
		if errors.Is(err, exam.ErrQuestionNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
		}
		log.Printf("Error saving answer: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save answer!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Answer saved.", fiber.Map{
		"accepted": true,
	})
}

// SubmitExam scores the candidate's committed answers for the course and
// records a new result row.
func (ctrl *Controller) SubmitExam(c *fiber.Ctx) error {
	candidateID, ok := c.Locals("candidateId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedSubmitExam").(*examValidator.SubmitExamRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	result, err := ctrl.Exams.FinalizeSubmission(candidateID, reqData.CourseID)
	if err != nil {
		if errors.Is(err, exam.ErrInvalidInput) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Missing courseId or candidateId!", nil)
		}
		log.Printf("Error submitting exam: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit exam!", nil)
	}

	go ctrl.sendResultEmail(candidateID, result)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Exam submitted.", result)
}

// GetResultDetail returns a stored result with its per-question review.
// An unknown result and someone else's result look identical to the caller.
func (ctrl *Controller) GetResultDetail(c *fiber.Ctx) error {
	candidateID, ok := c.Locals("candidateId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	resultID := c.Locals("resultId").(uint)

	detail, err := ctrl.Exams.ResultDetail(resultID, candidateID)
	if err != nil {
		if errors.Is(err, exam.ErrResultNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Result not found!", nil)
		}
		log.Printf("Error fetching result details: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch result!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Result detail.", detail)
}

// MyResults returns the candidate's result history, newest first
func (ctrl *Controller) MyResults(c *fiber.Ctx) error {
	candidateID, ok := c.Locals("candidateId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	summaries, err := ctrl.Exams.ListResults(candidateID)
	if err != nil {
		log.Printf("Error fetching results: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch results!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Result list.", summaries)
}

func (ctrl *Controller) sendResultEmail(candidateID uint, result *models.ExamResult) {
	var candidate models.Candidate
	if err := ctrl.DB.First(&candidate, candidateID).Error; err != nil {
		return
	}

	var course models.Course
	if err := ctrl.DB.First(&course, result.CourseID).Error; err != nil {
		return
	}

	ctrl.Mailer.SendResultEmail(candidate.Email, candidate.Name, course.Name, result.Score, result.AttemptedOn)
}
