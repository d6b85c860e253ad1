package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"learnhub/config"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: LearnHub <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; }
			.header { background-color: #1B3A4B; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1B3A4B; line-height: 1.6; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header"><h1>%s</h1></div>
			<div class="content">%s</div>
			<div class="footer">LearnHub &middot; This is an automated message, please do not reply.</div>
		</div>
	</body>
	</html>`, title, bodyContent)
}

// SendWelcomeEmail greets a newly registered user.
func SendWelcomeEmail(to, username string) error {
	body := fmt.Sprintf(`<h2>Welcome, %s!</h2>
		<p>Your LearnHub account is ready. Browse the catalog and enroll in your first course.</p>`, username)
	return SendEmail([]string{to}, "Welcome to LearnHub", getEmailTemplate("Welcome to LearnHub", body))
}

// SendEnrollmentEmail confirms a course enrollment.
func SendEnrollmentEmail(to, username, courseTitle string) error {
	body := fmt.Sprintf(`<h2>You're enrolled!</h2>
		<p>Hi %s, you are now enrolled in <b>%s</b>. Head to your dashboard to start learning.</p>`, username, courseTitle)
	return SendEmail([]string{to}, "Enrollment confirmed: "+courseTitle, getEmailTemplate("Enrollment Confirmed", body))
}
