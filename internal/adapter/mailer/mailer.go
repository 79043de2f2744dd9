// Package mailer sends lead notifications over SMTP.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/niksmo/jubilant/internal/core/domain"
	"github.com/niksmo/jubilant/internal/core/port"
	"github.com/wneessen/go-mail"
)

var _ port.Notifier = (*Mailer)(nil)

type sender interface {
	DialAndSendWithContext(ctx context.Context, msgs ...*mail.Msg) error
}

// A Config describes the SMTP relay and the fixed destination inbox.
type Config struct {
	Host string
	Port int
	User string
	Pass string
	To   string
}

type Mailer struct {
	sender sender
	from   string
	to     string
}

func New(cfg Config) (*Mailer, error) {
	const op = "mailer.New"

	if cfg.To == "" {
		return nil, fmt.Errorf("%s: destination address is empty", op)
	}

	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSMandatory),
	}
	if cfg.User != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.User),
			mail.WithPassword(cfg.Pass),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return NewWithSender(client, cfg.User, cfg.To), nil
}

func NewWithSender(s sender, from, to string) *Mailer {
	return &Mailer{sender: s, from: from, to: to}
}

func (m *Mailer) Notify(ctx context.Context, n domain.Notification) error {
	const op = "Mailer.Notify"
	log := slog.With("op", op)

	msg, err := m.message(n)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := m.sender.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("%s: failed to send: %w", op, err)
	}

	log.Info("notification sent", "subject", n.Subject)
	return nil
}

func (m *Mailer) message(n domain.Notification) (*mail.Msg, error) {
	msg := mail.NewMsg()

	from := m.from
	if from == "" {
		from = m.to
	}

	var errs []error
	errs = append(errs, msg.From(from), msg.To(m.to))
	if n.ReplyTo != "" {
		errs = append(errs, msg.ReplyTo(n.ReplyTo))
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	msg.Subject(n.Subject)
	msg.SetBodyString(mail.TypeTextPlain, n.Body)
	return msg, nil
}
