package utils

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/navswara/storefront/config"
)

// SendResetOTP mails a password reset OTP to the user
func SendResetOTP(to, otp string) error {
	cfg := config.App

	m := gomail.NewMessage()
	m.SetHeader("From", cfg.SMTPFrom)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Your password reset code")

	body := fmt.Sprintf(`
		<h2>Password reset requested</h2>
		<p>Use the following code to reset your password:</p>
		<h1 style="font-size: 32px; letter-spacing: 5px;">%s</h1>
		<p>This code expires in 10 minutes.</p>
		<p>If you didn't request a reset, please ignore this email.</p>
	`, otp)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}

	return nil
}
