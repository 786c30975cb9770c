package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendTicketAssigned(toEmail, assigneeName, ticketTitle string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	enabled     bool
}

// NewEmailService builds the SMTP mailer. With an empty host the service
// becomes a no-op so local setups work without an SMTP account.
func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	return &emailService{
		dialer:      gomail.NewDialer(host, port, username, password),
		senderEmail: senderEmail,
		enabled:     host != "",
	}
}

func (s *emailService) SendTicketAssigned(toEmail, assigneeName, ticketTitle string) error {
	if !s.enabled {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "A ticket has been assigned to you")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Hi %s,</h2>
			<p>The following ticket has been assigned to you:</p>
			<h3>%s</h3>
			<p>Please log in to TicketDesk to review it.</p>
		</div>
	`, assigneeName, ticketTitle)

	m.SetBody("text/html", body)
	return s.dialer.DialAndSend(m)
}
