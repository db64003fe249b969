package utils

import (
	"gopkg.in/gomail.v2"
)

// Mailer sends shop emails over SMTP.
type Mailer struct {
	Host string
	Port int
	User string
	Pass string
}

func (m Mailer) Enabled() bool {
	return m.Host != "" && m.User != ""
}

func (m Mailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.User)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	d := gomail.NewDialer(m.Host, m.Port, m.User, m.Pass)
	return d.DialAndSend(msg)
}
