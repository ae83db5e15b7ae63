package mail

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/koberec/eshop/internal/config"
)

type Mailer struct {
	client *mail.Client
	config config.Smtp
}

func NewMailer(config config.Smtp) (*Mailer, error) {
	client, err := mail.NewClient(
		config.Host,
		mail.WithPort(config.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(config.Username),
		mail.WithPassword(config.Password),
	)
	if err != nil {
		return nil, fmt.Errorf("failed initializing smtp client with error=%w", err)
	}
	return &Mailer{client: client, config: config}, nil
}

func (m *Mailer) Send(c context.Context, to string, subject string, body string) error {
	msg := mail.NewMsg()
	err := msg.FromFormat(m.config.SenderName, m.config.Sender)
	if err != nil {
		return fmt.Errorf("failed setting mail sender=%s with error=%w", m.config.Sender, err)
	}
	err = msg.To(to)
	if err != nil {
		return fmt.Errorf("failed setting mail recipient=%s with error=%w", to, err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, body)

	err = m.client.DialAndSendWithContext(c, msg)
	if err != nil {
		return fmt.Errorf("failed sending mail to=%s with error=%w", to, err)
	}
	return nil
}
