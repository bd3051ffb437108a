package notification

import (
	"context"
	"fmt"

	"github.com/maazimam/parkeasy-sub000/internal/domain"
	"github.com/wb-go/wbf/logger"
	"github.com/wneessen/go-mail"
)

type mailDialer interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// EmailSender mails the booking's contact address over SMTP.
type EmailSender struct {
	client mailDialer
	from   string
	logger logger.Logger
}

func NewEmailSender(cfg EmailConfig, logger logger.Logger) (*EmailSender, error) {
	if cfg.Host == "" {
		logger.Warn("smtp host is empty, email notifications disabled")
		return &EmailSender{logger: logger}, nil
	}

	opts := []mail.Option{mail.WithPort(cfg.Port)}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}

	return &EmailSender{client: client, from: cfg.From, logger: logger}, nil
}

func (s *EmailSender) Send(ctx context.Context, event domain.BookingEvent) error {
	if s.client == nil {
		return nil
	}
	if event.Booking == nil || event.Booking.Email == "" {
		s.logger.Debug("notification skipped (no email)", logger.String("kind", string(event.Kind)))
		return nil
	}

	msg, err := s.message(event)
	if err != nil {
		return err
	}

	if err = s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

func (s *EmailSender) message(event domain.BookingEvent) (*mail.Msg, error) {
	subject, body := render(event)

	msg := mail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return nil, fmt.Errorf("set from address: %w", err)
	}
	if err := msg.To(event.Booking.Email); err != nil {
		return nil, fmt.Errorf("set to address: %w", err)
	}
	msg.Subject("ParkEasy: " + subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	return msg, nil
}
