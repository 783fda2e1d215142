// Package mailer delivers transactional email over SMTP. The contact form,
// the doctor call invitation, and the growth-log reminder scheduler all go
// through the Mailer interface so tests can substitute a recorder.
package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/suryaprakash0010/InfantCareCompass/pkg/config"
)

type Mailer interface {
	Send(to []string, subject, body string) error
}

// SMTPMailer sends mail through a single SMTP relay.
type SMTPMailer struct {
	host     string
	port     string
	from     string
	username string
	password string
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	from := cfg.SMTPFrom
	if from == "" {
		from = cfg.SMTPUser
	}
	return &SMTPMailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		from:     from,
		username: cfg.SMTPUser,
		password: cfg.SMTPPassword,
	}
}

func (m *SMTPMailer) Send(to []string, subject, body string) error {
	if m.host == "" {
		return fmt.Errorf("smtp is not configured")
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		m.from,
		strings.Join(to, ","),
		subject,
		body,
	)

	addr := m.host + ":" + m.port
	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	return smtp.SendMail(addr, auth, m.from, to, []byte(msg))
}
