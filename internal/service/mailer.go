package service

import (
	"fmt"

	"github.com/mkhadiri/mentorhub/config"
	"gopkg.in/gomail.v2"
)

// Mailer delivers transactional mail. Only OTP delivery exists today.
type Mailer interface {
	SendOtp(to, code string) error
}

type smtpMailer struct {
	cfg config.SMTP
}

func NewMailer(cfg *config.Config) Mailer {
	return &smtpMailer{cfg: cfg.SMTP}
}

func (m *smtpMailer) SendOtp(to, code string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Your verification code")
	msg.SetBody("text/html", fmt.Sprintf(
		"<p>Your verification code is <strong>%s</strong>.</p><p>It expires in 10 minutes.</p>", code))

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("sending otp mail: %w", err)
	}
	return nil
}
