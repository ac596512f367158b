package service

import (
	"bytes"
	"fmt"
	"text/template"

	"smashlabs-backend/config"
	"smashlabs-backend/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

// TransitionKind identifies which lifecycle event an email describes.
type TransitionKind string

const (
	TransitionCreated   TransitionKind = "created"
	TransitionConfirmed TransitionKind = "confirmed"
	TransitionCancelled TransitionKind = "cancelled"
	TransitionCompleted TransitionKind = "completed"
)

// Notifier sends transactional emails on lifecycle events. Every method is
// fire-and-forget: failures are logged by the implementation and never
// reach the caller, so a state transition can never be undone by a failed
// send.
type Notifier interface {
	SendBookingTransition(booking *entity.Booking, kind TransitionKind)
	SendCorporateTransition(booking *entity.CorporateBooking, kind TransitionKind)
	SendRegistrationWelcome(registration *entity.Registration)
	SendContactAck(ticket *entity.ContactTicket)
}

type mailer struct {
	dialer *gomail.Dialer
	from   string
	log    *logrus.Logger
}

func NewMailer(cfg config.SMTPConfig, log *logrus.Logger) Notifier {
	return &mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
		log:    log,
	}
}

var bookingSubjects = map[TransitionKind]string{
	TransitionCreated:   "We received your booking %s",
	TransitionConfirmed: "Your session %s is confirmed",
	TransitionCancelled: "Your booking %s has been cancelled",
	TransitionCompleted: "Thanks for smashing with us (%s)",
}

var bookingBody = template.Must(template.New("booking").Parse(`Hi {{.Name}},

Your booking {{.ReferenceCode}} for the {{.PackageName}} package on {{.PreferredDate.Format "Mon, 02 Jan 2006"}} is now {{.Status}}.

Keep the reference code handy when you visit.

The SmashLabs team
`))

var corporateBody = template.Must(template.New("corporate").Parse(`Hi {{.ContactPerson}},

The corporate event request {{.ReferenceCode}} for {{.CompanyName}} ({{.TeamSize}} people) on {{.PreferredDate.Format "Mon, 02 Jan 2006"}} is now {{.Status}}.

We will reach out with the details shortly.

The SmashLabs team
`))

var registrationBody = template.Must(template.New("registration").Parse(`Hi {{.Name}},

Welcome to the SmashLabs community! Your registration code is {{.ReferenceCode}}.

The SmashLabs team
`))

var contactBody = template.Must(template.New("contact").Parse(`Hi {{.Name}},

We received your message "{{.Subject}}" and will get back to you within one business day.

The SmashLabs team
`))

func (m *mailer) SendBookingTransition(booking *entity.Booking, kind TransitionKind) {
	subject := fmt.Sprintf(bookingSubjects[kind], booking.ReferenceCode)
	m.send(booking.Email, subject, bookingBody, booking)
}

func (m *mailer) SendCorporateTransition(booking *entity.CorporateBooking, kind TransitionKind) {
	subject := fmt.Sprintf(bookingSubjects[kind], booking.ReferenceCode)
	m.send(booking.Email, subject, corporateBody, booking)
}

func (m *mailer) SendRegistrationWelcome(registration *entity.Registration) {
	m.send(registration.Email, "Welcome to the SmashLabs community", registrationBody, registration)
}

func (m *mailer) SendContactAck(ticket *entity.ContactTicket) {
	m.send(ticket.Email, "We got your message", contactBody, ticket)
}

// send renders and delivers the mail on its own goroutine. Delivery is
// best-effort: any error is logged and dropped.
func (m *mailer) send(to, subject string, tmpl *template.Template, data interface{}) {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		m.log.Errorf("Failed to render mail template for %s: %+v", to, err)
		return
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body.String())

	go func() {
		if err := m.dialer.DialAndSend(msg); err != nil {
			m.log.Warnf("Failed to send %q to %s (non-fatal): %+v", subject, to, err)
			return
		}
		m.log.Infof("Mail sent: %q to %s", subject, to)
	}()
}
