package main

import (
	"log"

	"examportal/config"
	authControllers "examportal/controllers/auth"
	courseControllers "examportal/controllers/course"
	examControllers "examportal/controllers/exam"
	"examportal/database"
	"examportal/exam"
	authRoutes "examportal/routers/authRoutes"
	courseRoutes "examportal/routers/courseRoutes"
	examRoutes "examportal/routers/examRoutes"
	"examportal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg := config.LoadConfig()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Database setup failed: %v", err)
	}

	examService := exam.NewService(db)
	mailer := utils.NewMailer(cfg)
	notifier := utils.NewRegistrationNotifier(cfg.RegistrationSyncURL)

	authCtrl := authControllers.NewController(db, cfg, mailer, notifier)
	courseCtrl := courseControllers.NewController(db, examService)
	examCtrl := examControllers.NewController(db, examService, mailer)

	app := fiber.New()

	app.Use(recover.New())

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app, authCtrl)
	courseRoutes.SetupCourseRoutes(app, courseCtrl)
	examRoutes.SetupExamRoutes(app, examCtrl)

	utils.InitializeAuditScheduler(db, cfg.AuditRetentionDays)

	log.Printf("Server is running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
