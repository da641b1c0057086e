// Package mail provides a small fluent SMTP mailer.
//
// Usage:
//
//	mail.To("user@example.com").
//	    Subject("Welcome to Orderdesk").
//	    Body("<h1>Hello</h1>").
//	    Send()
package mail

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/shashiranjanraj/orderdesk/config"
)

// Message is a pending email, built fluently.
type Message struct {
	to      []string
	subject string
	body    string
}

// To starts a new message addressed to the given recipients.
func To(recipients ...string) *Message {
	return &Message{to: recipients}
}

// Subject sets the subject line.
func (m *Message) Subject(s string) *Message {
	m.subject = s
	return m
}

// Body sets the HTML body.
func (m *Message) Body(html string) *Message {
	m.body = html
	return m
}

// Send delivers the message through the configured SMTP relay.
// With no SMTP_HOST configured, Send is a silent no-op so local
// development never needs a mail server.
func (m *Message) Send() error {
	host := config.SMTPHost()
	if host == "" {
		return nil
	}

	addr := host + ":" + config.SMTPPort()
	from := config.SMTPFrom()

	headers := []string{
		fmt.Sprintf("From: %s <%s>", config.SMTPFromName(), from),
		"To: " + strings.Join(m.to, ", "),
		"Subject: " + m.subject,
		"MIME-Version: 1.0",
		`Content-Type: text/html; charset="UTF-8"`,
	}
	payload := strings.Join(headers, "\r\n") + "\r\n\r\n" + m.body

	var a smtp.Auth
	if user := config.SMTPUsername(); user != "" {
		a = smtp.PlainAuth("", user, config.SMTPPassword(), host)
	}

	if err := smtp.SendMail(addr, a, from, m.to, []byte(payload)); err != nil {
		return fmt.Errorf("mail: send: %w", err)
	}
	return nil
}
