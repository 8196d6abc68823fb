package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"learntrack/config"
)

// SendEmail sends an HTML email through the configured SMTP account
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	if from == "" || password == "" {
		return fmt.Errorf("email sender not configured")
	}

	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Learning Tracker <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	return smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
}

// getEmailTemplate wraps body content in the shared layout
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1A2B4C; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A2B4C; line-height: 1.6; }
			.content h2 { color: #1A2B4C; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #4C84FF; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>Learning Tracker</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				This is an automated message from Learning Tracker.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendEnrollmentEmail notifies a learner that a course was assigned to them
func SendEnrollmentEmail(email, name, courseTitle string) error {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>A new course has been assigned to you:</p>
		<div class="info-box"><strong>%s</strong></div>
		<p>Log in to start watching and take the quiz when you are ready.</p>
	`, name, courseTitle)

	return SendEmail([]string{email}, "New course assigned: "+courseTitle, getEmailTemplate("New Course Assigned", body))
}

// SendAdminDigestEmail delivers the daily activity summary to the admin
func SendAdminDigestEmail(submissions, passed, completions int64) error {
	admin := config.AppConfig.AdminEmail
	if admin == "" {
		return fmt.Errorf("admin email not configured")
	}

	body := fmt.Sprintf(`
		<p>Activity over the last 24 hours:</p>
		<div class="info-box">
			Quiz submissions: <strong>%d</strong><br/>
			Passing submissions: <strong>%d</strong><br/>
			Courses completed: <strong>%d</strong>
		</div>
	`, submissions, passed, completions)

	return SendEmail([]string{admin}, "Learning Tracker daily digest", getEmailTemplate("Daily Digest", body))
}
