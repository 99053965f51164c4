package examController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"examportal/config"
	courseControllers "examportal/controllers/course"
	examControllers "examportal/controllers/exam"
	"examportal/database"
	"examportal/exam"
	"examportal/models"
	courseRoutes "examportal/routers/courseRoutes"
	examRoutes "examportal/routers/examRoutes"
	"examportal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newExamApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{}
	examService := exam.NewService(db)
	mailer := utils.NewMailer(cfg)

	app := fiber.New()
	examRoutes.SetupExamRoutes(app, examControllers.NewController(db, examService, mailer))
	courseRoutes.SetupCourseRoutes(app, courseControllers.NewController(db, examService))
	return app, db
}

func seedMathCourse(t *testing.T, db *gorm.DB, n int) (models.Course, []models.Question) {
	t.Helper()

	course := models.Course{Name: "Math"}
	require.NoError(t, db.Create(&course).Error)

	questions := make([]models.Question, 0, n)
	for i := 0; i < n; i++ {
		q := models.Question{
			CourseID:      course.ID,
			QuestionText:  fmt.Sprintf("Math question %d", i+1),
			Options:       datatypes.JSON(`["a","b","c","d"]`),
			CorrectOption: 1,
		}
		require.NoError(t, db.Create(&q).Error)
		questions = append(questions, q)
	}
	return course, questions
}

func authedJSONRequest(method, target string, candidateID uint, body interface{}) *http.Request {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if candidateID > 0 {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %d", candidateID))
	}
	return req
}

func decodeEnvelope(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &envelope))
	return envelope
}

func TestSaveAnswerRequiresCredential(t *testing.T) {
	app, db := newExamApp(t)
	_, questions := seedMathCourse(t, db, 1)

	resp, err := app.Test(authedJSONRequest("POST", "/answers", 0, map[string]interface{}{
		"questionId":     questions[0].ID,
		"selectedOption": 1,
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestSaveAnswerUnknownQuestion(t *testing.T) {
	app, _ := newExamApp(t)

	resp, err := app.Test(authedJSONRequest("POST", "/answers", 1, map[string]interface{}{
		"questionId":     9999,
		"selectedOption": 1,
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestSaveAnswerAccepted(t *testing.T) {
	app, db := newExamApp(t)
	_, questions := seedMathCourse(t, db, 1)

	resp, err := app.Test(authedJSONRequest("POST", "/answers", 1, map[string]interface{}{
		"questionId":     questions[0].ID,
		"selectedOption": 1,
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, true, data["accepted"])
}

func TestQuestionsPageNeverLeaksAnswerKey(t *testing.T) {
	app, db := newExamApp(t)
	course, _ := seedMathCourse(t, db, 7)

	// Non-numeric page falls back to page 1
	resp, err := app.Test(httptest.NewRequest("GET", fmt.Sprintf("/questions/%d?page=abc", course.ID), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "correct_option")

	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &envelope))
	data := envelope["data"].(map[string]interface{})
	assert.EqualValues(t, 1, data["currentPage"])
	assert.EqualValues(t, 2, data["totalPages"])
	assert.Len(t, data["questions"], 5)
}

func TestSubmitAndReviewFlow(t *testing.T) {
	app, db := newExamApp(t)
	course, questions := seedMathCourse(t, db, 7)

	selections := map[uint]int{
		questions[0].ID: 1,
		questions[1].ID: 1,
		questions[2].ID: 1,
		questions[3].ID: 0,
	}
	for questionID, option := range selections {
		resp, err := app.Test(authedJSONRequest("POST", "/answers", 11, map[string]interface{}{
			"questionId":     questionID,
			"selectedOption": option,
		}))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	resp, err := app.Test(authedJSONRequest("POST", "/exams/submit", 11, map[string]interface{}{
		"courseId": course.ID,
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	data := envelope["data"].(map[string]interface{})
	assert.EqualValues(t, 3, data["score"])
	resultID := uint(data["ID"].(float64))

	// Owner sees the full review
	resp, err = app.Test(authedJSONRequest("GET", fmt.Sprintf("/results/%d", resultID), 11, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	envelope = decodeEnvelope(t, resp)
	detail := envelope["data"].(map[string]interface{})
	assert.Equal(t, "Math", detail["course_name"])
	assert.Len(t, detail["summary"], 7)

	// Another candidate gets the same 404 as for a missing result
	resp, err = app.Test(authedJSONRequest("GET", fmt.Sprintf("/results/%d", resultID), 12, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// History lists the attempt with the current question count
	resp, err = app.Test(authedJSONRequest("GET", "/my-results", 11, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	envelope = decodeEnvelope(t, resp)
	rows := envelope["data"].([]interface{})
	require.Len(t, rows, 1)
	row := rows[0].(map[string]interface{})
	assert.EqualValues(t, 3, row["score"])
	assert.EqualValues(t, 7, row["total_questions"])
}

func TestSubmitExamValidation(t *testing.T) {
	app, _ := newExamApp(t)

	resp, err := app.Test(authedJSONRequest("POST", "/exams/submit", 11, map[string]interface{}{}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
