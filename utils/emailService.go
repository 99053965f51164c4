package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"
	"time"

	"examportal/config"
)

// Mailer sends notification emails over SMTP. All sends are best effort:
// callers fire them from goroutines and a failure is only logged.
type Mailer struct {
	cfg *config.Config
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{cfg: cfg}
}

// Send delivers a generic HTML email
func (m *Mailer) Send(to []string, subject string, htmlBody string) error {
	if m.cfg.EmailSender == "" {
		log.Println("Email sender not configured, skipping email:", subject)
		return nil
	}

	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := m.cfg.EmailSender
	password := m.cfg.Password

	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Exam Portal <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg)); err != nil {
		log.Printf("Error sending email %q to %v: %v", subject, to, err)
		return err
	}
	return nil
}

// SendWelcomeEmail greets a freshly registered candidate
func (m *Mailer) SendWelcomeEmail(email, name string) {
	body := emailTemplate("Welcome to Exam Portal", fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your account has been created. Log in, pick a course and start your exam whenever you are ready.</p>
		<p>Good luck!</p>
	`, name))

	m.Send([]string{email}, "Welcome to Exam Portal", body)
}

// SendResultEmail notifies a candidate of a scored submission
func (m *Mailer) SendResultEmail(email, name, courseName string, score int, attemptedOn time.Time) {
	body := emailTemplate("Your Exam Result", fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your submission for <b>%s</b> on %s has been scored.</p>
		<div class="info-box">Score: <b>%d</b></div>
		<p>You can review every question and answer on your results page.</p>
	`, name, courseName, attemptedOn.Format("02 Jan 2006 15:04"), score))

	m.Send([]string{email}, "Your Exam Result - "+courseName, body)
}

// emailTemplate wraps body content in the shared HTML layout
func emailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #00004D; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #00004D; line-height: 1.6; }
			.content h2 { color: #00004D; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #d7b56d; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>EXAM PORTAL</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 Exam Portal. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}
