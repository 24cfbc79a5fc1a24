package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"elearn/config"
)

// SendEmail sends an HTML email through the configured SMTP account.
func SendEmail(cfg *config.Config, to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := cfg.EmailSender
	password := cfg.Password

	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Elearn <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg)); err != nil {
		log.Println("Error sending email:", err)
		return err
	}
	return nil
}

// SendWelcomeEmail greets a new student. No-op when no sender is configured.
func SendWelcomeEmail(cfg *config.Config, email, name string) error {
	if cfg.EmailSender == "" {
		return nil
	}

	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">Welcome to Elearn, %s!</h2>
					<p style="font-size: 16px; color: #555555; text-align: center;">Your account is ready. Browse subjects, finish materials and start collecting XP.</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 30px;">Happy learning.</p>
				</div>
			</body>
		</html>
	`, name)

	return SendEmail(cfg, []string{email}, "Welcome to Elearn", body)
}
