package authController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"examportal/config"
	authControllers "examportal/controllers/auth"
	"examportal/database"
	"examportal/models"
	authRoutes "examportal/routers/authRoutes"
	"examportal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newAuthApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{SaltRound: 4}
	ctrl := authControllers.NewController(db, cfg, utils.NewMailer(cfg), utils.NewRegistrationNotifier(""))

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app, ctrl)
	return app, db
}

func jsonRequest(method, target string, body interface{}) *http.Request {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(method, target, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
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

func TestRegister(t *testing.T) {
	app, _ := newAuthApp(t)

	resp, err := app.Test(jsonRequest("POST", "/auth/register", map[string]string{
		"name":     "Jane Doe",
		"email":    "jane@example.com",
		"password": "averysecret",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "jane@example.com", data["email"])

	// The stored hash must never appear in the response
	_, leaked := data["password"]
	assert.False(t, leaked)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app, _ := newAuthApp(t)

	body := map[string]string{"name": "Jane Doe", "email": "jane@example.com", "password": "averysecret"}

	resp, err := app.Test(jsonRequest("POST", "/auth/register", body))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, err = app.Test(jsonRequest("POST", "/auth/register", body))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestRegisterValidation(t *testing.T) {
	app, _ := newAuthApp(t)

	resp, err := app.Test(jsonRequest("POST", "/auth/register", map[string]string{
		"name":     "J",
		"email":    "not-an-email",
		"password": "short",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestLogin(t *testing.T) {
	app, db := newAuthApp(t)

	resp, err := app.Test(jsonRequest("POST", "/auth/register", map[string]string{
		"name":     "Jane Doe",
		"email":    "jane@example.com",
		"password": "averysecret",
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, err = app.Test(jsonRequest("POST", "/auth/login", map[string]string{
		"email":    "jane@example.com",
		"password": "averysecret",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	data := envelope["data"].(map[string]interface{})

	// The issued credential is the candidate's id itself
	var candidate models.Candidate
	require.NoError(t, db.Where("email = ?", "jane@example.com").First(&candidate).Error)
	assert.Equal(t, fmt.Sprintf("%d", candidate.ID), data["token"])

	// A successful login is recorded in the audit trail
	var audits int64
	db.Model(&models.LoginTracking{}).Where("candidate_id = ?", candidate.ID).Count(&audits)
	assert.EqualValues(t, 1, audits)
}

func TestLoginRejections(t *testing.T) {
	app, _ := newAuthApp(t)

	resp, err := app.Test(jsonRequest("POST", "/auth/register", map[string]string{
		"name":     "Jane Doe",
		"email":    "jane@example.com",
		"password": "averysecret",
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// Unknown email
	resp, err = app.Test(jsonRequest("POST", "/auth/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "averysecret",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// Wrong password
	resp, err = app.Test(jsonRequest("POST", "/auth/login", map[string]string{
		"email":    "jane@example.com",
		"password": "wrongpassword",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestChangePassword(t *testing.T) {
	app, db := newAuthApp(t)

	resp, err := app.Test(jsonRequest("POST", "/auth/register", map[string]string{
		"name":     "Jane Doe",
		"email":    "jane@example.com",
		"password": "averysecret",
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var candidate models.Candidate
	require.NoError(t, db.Where("email = ?", "jane@example.com").First(&candidate).Error)

	req := jsonRequest("PUT", "/auth/change/password", map[string]string{
		"currentPassword": "averysecret",
		"newPassword":     "evenmoresecret",
	})
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %d", candidate.ID))

	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Old password no longer works, the new one does
	resp, err = app.Test(jsonRequest("POST", "/auth/login", map[string]string{
		"email":    "jane@example.com",
		"password": "averysecret",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, err = app.Test(jsonRequest("POST", "/auth/login", map[string]string{
		"email":    "jane@example.com",
		"password": "evenmoresecret",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
