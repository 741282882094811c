package utils

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// EmailConfig holds email configuration
type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func emailConfigFromEnv() EmailConfig {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil || port == 0 {
		port = 587
	}
	return EmailConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
	}
}

// SendEmail sends a transactional email over SMTP
func SendEmail(to, subject, body string, isHTML bool) error {
	config := emailConfigFromEnv()

	m := gomail.NewMessage()
	m.SetHeader("From", config.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	if isHTML {
		m.SetBody("text/html", body)
	} else {
		m.SetBody("text/plain", body)
	}

	d := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}

	return nil
}

// SendEmailBestEffort sends an email, logging failures instead of returning
// them. Notification failures never fail the parent request.
func SendEmailBestEffort(to, subject, body string, isHTML bool) {
	if err := SendEmail(to, subject, body, isHTML); err != nil {
		LogError("Failed to send email to %s: %v", to, err)
	}
}

// SendPasswordResetEmail sends a password reset email. Delivery is best
// effort; failures are logged, never returned.
func SendPasswordResetEmail(to, resetToken string) {
	subject := "Password Reset Request"
	body := fmt.Sprintf(`
		<h2>Password Reset Request</h2>
		<p>You have requested to reset your password. Click the link below to proceed:</p>
		<p><a href="%s/reset-password?token=%s">Reset Password</a></p>
		<p>This link will expire in 1 hour.</p>
		<p>If you didn't request this reset, please ignore this email.</p>
	`, os.Getenv("FRONTEND_URL"), resetToken)

	SendEmailBestEffort(to, subject, body, true)
}

// SendAdminPasswordResetEmail sends the admin variant of the reset email,
// with the same best-effort delivery.
func SendAdminPasswordResetEmail(to, resetToken string) {
	subject := "Admin Password Reset Request"
	body := fmt.Sprintf(`
		<h2>Admin Password Reset Request</h2>
		<p>You have requested to reset your admin password. Click the link below to proceed:</p>
		<p><a href="%s/admin/reset-password?token=%s">Reset Admin Password</a></p>
		<p>This link will expire in 1 hour.</p>
		<p>If you did not request this password reset, please contact your system administrator.</p>
	`, os.Getenv("FRONTEND_URL"), resetToken)

	SendEmailBestEffort(to, subject, body, true)
}
