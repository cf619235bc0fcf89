package services

import (
	"gopkg.in/gomail.v2"

	"linkstash/internal/config"
)

type EmailService interface {
	SendEmail(to, subject, msg string) error
}

type emailService struct {
	smtp config.SMTP
}

func NewEmailService(cfg *config.Config) EmailService {
	return &emailService{smtp: cfg.SMTP}
}

func (e *emailService) SendEmail(to, subject, msg string) error {
	m := gomail.NewMessage()

	from := e.smtp.From
	if from == "" {
		from = e.smtp.Username
	}
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", msg)

	d := gomail.NewDialer(e.smtp.Host, e.smtp.Port, e.smtp.Username, e.smtp.Password)

	if err := d.DialAndSend(m); err != nil {
		return err
	}
	return nil
}
