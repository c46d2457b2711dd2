// Package notify is the notification gateway: it delivers one-time
// verification codes to users by email. The SMTP implementation is kept
// behind a small interface so services and tests can substitute fakes.
package notify

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Mailer sends a verification code to a recipient address. Implementations
// must be safe for concurrent use.
type Mailer interface {
	SendCode(recipient, code string) error
}

// SMTPMailer delivers codes through an SMTP relay using gomail.
type SMTPMailer struct {
	host string
	port int
	user string
	pass string
	from string

	// dial is a seam for tests; defaults to gomail's DialAndSend.
	send func(m *gomail.Message) error
}

// NewSMTPMailer constructs an SMTPMailer for the given relay. The from
// address is used as the envelope and header sender.
func NewSMTPMailer(host string, port int, user, pass, from string) *SMTPMailer {
	m := &SMTPMailer{host: host, port: port, user: user, pass: pass, from: from}
	m.send = func(msg *gomail.Message) error {
		d := gomail.NewDialer(m.host, m.port, m.user, m.pass)
		return d.DialAndSend(msg)
	}
	return m
}

// SendCode emails the verification code to recipient. Any SMTP failure
// is returned to the caller; the service layer surfaces it as a delivery
// error without retrying.
func (m *SMTPMailer) SendCode(recipient, code string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", recipient)
	msg.SetHeader("Subject", "Your verification code")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Your verification code is %s. It expires in 15 minutes.\n\nIf you did not request this code, you can ignore this message.", code))

	return m.send(msg)
}
