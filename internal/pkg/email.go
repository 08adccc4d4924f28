package pkg

import (
	"crypto/tls"
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func SendEmail(cfg SMTPConfig, to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.TLSConfig = &tls.Config{ServerName: cfg.Host}
	return d.DialAndSend(m)
}

func ResetCodeHTML(code string, ttl time.Duration) string {
	return fmt.Sprintf(`<p>Hello,</p><p>Your password reset code is <b style="font-size:18px;">%s</b>.</p><p>It expires in %d minutes. If you did not request a reset, ignore this mail.</p>`,
		code, int(ttl.Minutes()))
}
