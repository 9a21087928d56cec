package mailer

import (
	"context"
	"errors"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/teamwear/jersey-orders/internal/app/config"
	"github.com/teamwear/jersey-orders/internal/app/usecase/notify"
)

var ErrNotConfigured = errors.New("email transport is not configured")

// SMTPSender implements notify.Sender over an SMTP relay. A sender built
// from an empty configuration stays usable and fails every send with
// ErrNotConfigured, which the dispatcher logs and swallows.
type SMTPSender struct {
	client *mail.Client
	from   string
}

func New(config config.Config) (*SMTPSender, error) {
	if len(config.SMTPHost) == 0 || len(config.EmailFrom) == 0 {
		return &SMTPSender{}, nil
	}

	opts := []mail.Option{
		mail.WithPort(config.SMTPPort),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	}
	if len(config.SMTPUsername) > 0 {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(config.SMTPUsername),
			mail.WithPassword(config.SMTPPassword),
		)
	}

	client, err := mail.NewClient(config.SMTPHost, opts...)
	if err != nil {
		return nil, fmt.Errorf("error while creating smtp client: %w", err)
	}

	return &SMTPSender{
		client: client,
		from:   config.EmailFrom,
	}, nil
}

func (s *SMTPSender) Send(ctx context.Context, msg notify.Message) error {
	if s.client == nil {
		return ErrNotConfigured
	}

	m := mail.NewMsg()
	if err := m.From(s.from); err != nil {
		return fmt.Errorf("error while setting from address: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return fmt.Errorf("error while setting to address: %w", err)
	}

	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Text)
	m.AddAlternativeString(mail.TypeTextHTML, msg.HTML)

	err := s.client.DialAndSendWithContext(ctx, m)
	if err != nil {
		return fmt.Errorf("error while sending mail over smtp: %w", err)
	}

	return nil
}
