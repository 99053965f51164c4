package authController

import (
	"log"
	"strconv"
	"time"

	"examportal/config"
	"examportal/middleware"
	"examportal/models"
	"examportal/utils"
	authValidator "examportal/validators/auth"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Controller bundles the dependencies of the auth handlers. Everything is
// handed in at construction; there is no package state.
type Controller struct {
	DB       *gorm.DB
	Cfg      *config.Config
	Mailer   *utils.Mailer
	Notifier *utils.RegistrationNotifier
}

func NewController(db *gorm.DB, cfg *config.Config, mailer *utils.Mailer, notifier *utils.RegistrationNotifier) *Controller {
	return &Controller{DB: db, Cfg: cfg, Mailer: mailer, Notifier: notifier}
}

// Register creates a candidate account. The password is stored as a bcrypt
// hash and never serialized back.
func (ctrl *Controller) Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegister").(*authValidator.RegisterRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Check if email already exists
	if err := ctrl.DB.Where("email = ?", reqData.Email).First(&models.Candidate{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), ctrl.Cfg.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newCandidate := models.Candidate{
		Name:     reqData.Name,
		Email:    reqData.Email,
		Password: string(hashedPassword),
	}

	if err := ctrl.DB.Create(&newCandidate).Error; err != nil {
		log.Printf("Error saving candidate to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register candidate!", nil)
	}

	// Side effects are best effort and must not block registration
	go ctrl.Mailer.SendWelcomeEmail(newCandidate.Email, newCandidate.Name)
	go ctrl.Notifier.NotifyRegistered(newCandidate)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Candidate registered successfully.", newCandidate)
}

// Login verifies the email/password pair and issues the credential. The
// credential is the candidate's numeric id as a string; the client presents
// it back as a bearer token.
func (ctrl *Controller) Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var candidate models.Candidate
	if err := ctrl.DB.Where("email = ?", reqData.Email).First(&candidate).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(candidate.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	candidate.LastLogin = time.Now()
	if err := ctrl.DB.Save(&candidate).Error; err != nil {
		log.Printf("Error saving last login time: %v", err)
	}

	ip := c.IP()
	if forwarded := c.Get("X-Forwarded-For"); forwarded != "" {
		ip = forwarded
	}

	loginTracking := models.LoginTracking{
		CandidateID: candidate.ID,
		IPAddress:   ip,
		Device:      c.Get("User-Agent"),
		Timestamp:   time.Now(),
	}

	if err := ctrl.DB.Create(&loginTracking).Error; err != nil {
		log.Printf("Error saving login tracking details: %v", err)
	}

	token := strconv.FormatUint(uint64(candidate.ID), 10)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"token":     token,
		"candidate": candidate,
	})
}

// ChangePassword updates the authenticated candidate's password
func (ctrl *Controller) ChangePassword(c *fiber.Ctx) error {
	candidateID, ok := c.Locals("candidateId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedChangePassword").(*authValidator.ChangePasswordRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var candidate models.Candidate
	if err := ctrl.DB.First(&candidate, candidateID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Candidate not found!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(candidate.Password), []byte(reqData.CurrentPassword)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Current password is incorrect!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.NewPassword), ctrl.Cfg.SaltRound)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to hash password!", nil)
	}

	if err := ctrl.DB.Model(&candidate).Update("password", string(hashedPassword)).Error; err != nil {
		log.Printf("Error updating candidate password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update password!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Password changed successfully.", nil)
}

// LoginHistoryList returns the candidate's login audit rows, paginated
func (ctrl *Controller) LoginHistoryList(c *fiber.Ctx) error {
	candidateID, ok := c.Locals("candidateId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedLoginHistory").(*authValidator.LoginHistoryRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	offset := (reqData.Page - 1) * reqData.Limit

	var loginTracking []models.LoginTracking
	var total int64

	if err := ctrl.DB.Where("candidate_id = ?", candidateID).
		Order("timestamp DESC").
		Offset(offset).
		Limit(reqData.Limit).
		Find(&loginTracking).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch login history!", nil)
	}

	ctrl.DB.Model(&models.LoginTracking{}).Where("candidate_id = ?", candidateID).Count(&total)

	response := map[string]interface{}{
		"loginHistory": loginTracking,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  reqData.Page,
			"limit": reqData.Limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login History List.", response)
}
