package notifications

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/smtp"
	"text/template"

	"retreatly/internal/shared/config"
)

// EmailService renders and delivers booking emails
type EmailService interface {
	SendBookingEmail(ctx context.Context, event *BookingEvent) error
}

const bookingEmailTemplate = `Hi {{.RecipientName}},

{{if eq .Type "booking.created"}}We received your booking {{.BookingRef}} for {{.OfferingName}} at {{.PropertyName}}.
{{else if eq .Type "booking.confirmed"}}Your booking {{.BookingRef}} for {{.OfferingName}} at {{.PropertyName}} is confirmed.
{{else if eq .Type "booking.cancelled"}}Your booking {{.BookingRef}} for {{.OfferingName}} at {{.PropertyName}} has been cancelled.
{{end}}
Check-in:  {{.CheckIn.Format "Mon, 02 Jan 2006"}}
Check-out: {{.CheckOut.Format "Mon, 02 Jan 2006"}}
Guests:    {{.Guests}}
Total:     {{printf "%.2f" .TotalPrice}}

The Retreatly team`

// NewEmailService returns an SMTP-backed service when SMTP is configured and
// a log-only one otherwise, so booking flows never depend on mail delivery.
func NewEmailService(cfg config.EmailConfig) EmailService {
	tmpl := template.Must(template.New("booking").Parse(bookingEmailTemplate))
	if cfg.SMTPHost == "" {
		log.Println("SMTP not configured; booking emails will only be logged")
		return &logEmailService{tmpl: tmpl}
	}
	return &smtpEmailService{config: cfg, tmpl: tmpl}
}

type smtpEmailService struct {
	config config.EmailConfig
	tmpl   *template.Template
}

func (s *smtpEmailService) SendBookingEmail(_ context.Context, event *BookingEvent) error {
	var body bytes.Buffer
	if err := s.tmpl.Execute(&body, event); err != nil {
		return fmt.Errorf("failed to render booking email: %w", err)
	}

	msg := fmt.Sprintf("From: %s <%s>\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		s.config.FromName, s.config.FromEmail, event.RecipientEmail, event.Subject(), body.String())

	addr := fmt.Sprintf("%s:%d", s.config.SMTPHost, s.config.SMTPPort)
	auth := smtp.PlainAuth("", s.config.SMTPUsername, s.config.SMTPPassword, s.config.SMTPHost)

	if err := smtp.SendMail(addr, auth, s.config.FromEmail, []string{event.RecipientEmail}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send booking email: %w", err)
	}

	log.Printf("Booking email sent to %s (%s)", event.RecipientEmail, event.Type)
	return nil
}

type logEmailService struct {
	tmpl *template.Template
}

func (s *logEmailService) SendBookingEmail(_ context.Context, event *BookingEvent) error {
	var body bytes.Buffer
	if err := s.tmpl.Execute(&body, event); err != nil {
		return fmt.Errorf("failed to render booking email: %w", err)
	}
	log.Printf("[email stub] to=%s subject=%q\n%s", event.RecipientEmail, event.Subject(), body.String())
	return nil
}
