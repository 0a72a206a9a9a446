package mailer

import (
	"fmt"

	"inventory-app/config"

	"gopkg.in/gomail.v2"
)

// SendPasswordRecovery mails a reset link for the given token.
func SendPasswordRecovery(toEmail, token string) error {
	subject := "Password recovery"
	body := fmt.Sprintf(`
		<html>
			<body>
				<h3>Password recovery</h3>
				<p>Use the link below to reset your password. The link is valid for one hour.</p>
				<p><a href="%s/reset-password?token=%s">Reset password</a></p>
				<p>This is an auto-generated email. Please do not reply.</p>
			</body>
		</html>
	`, config.FrontendHost, token)

	msg := gomail.NewMessage()
	msg.SetHeader("From", config.SMTPSender)
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPSender, config.SMTPPassword)
	if err := dialer.DialAndSend(msg); err != nil {
		fmt.Println("❌ Failed to send recovery email:", err)
		return err
	}

	fmt.Println("✅ Recovery email sent to:", toEmail)
	return nil
}
