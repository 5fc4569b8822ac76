package mailer

import (
	"context"
	"fmt"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// sendClient часть *sendgrid.Client, используемая отправителем
type sendClient interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// Config настройки SendGrid
type Config struct {
	APIKey    string
	FromEmail string
	FromName  string
}

// Client отправляет письма через SendGrid API
type Client struct {
	client    sendClient
	fromEmail string
	fromName  string
	log       Logger
}

// NewClient создает клиента SendGrid. Без API-ключа Send возвращает ErrNotConfigured.
func NewClient(cfg Config, log Logger) *Client {
	c := &Client{
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
		log:       log,
	}
	if cfg.APIKey != "" {
		c.client = sendgrid.NewSendClient(cfg.APIKey)
	}
	return c
}

// Send отправляет одно письмо
func (c *Client) Send(ctx context.Context, msg Message) error {
	if c.client == nil {
		return ErrNotConfigured
	}
	if msg.To == "" || msg.Subject == "" {
		return fmt.Errorf("%w: recipient and subject are required", ErrInvalidMessage)
	}

	from := mail.NewEmail(c.fromName, c.fromEmail)
	to := mail.NewEmail(msg.ToName, msg.To)

	html := msg.HTML
	if html == "" {
		html = msg.Text
	}
	message := mail.NewSingleEmail(from, msg.Subject, to, msg.Text, html)

	response, err := c.client.SendWithContext(ctx, message)
	if err != nil {
		c.log.Error("SendGrid send failed: to=%s, error=%v", msg.To, err)
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	if response.StatusCode >= 400 {
		c.log.Error("SendGrid returned status %d: to=%s, body=%s", response.StatusCode, msg.To, response.Body)
		return fmt.Errorf("%w: status %d", ErrRejected, response.StatusCode)
	}

	c.log.Info("Email sent: to=%s, subject=%q, status=%d", msg.To, msg.Subject, response.StatusCode)
	return nil
}

// StubClient логирует письма вместо отправки (email.enabled = false)
type StubClient struct {
	log Logger
}

// NewStubClient создает заглушку отправителя
func NewStubClient(log Logger) *StubClient {
	return &StubClient{log: log}
}

// Send только пишет письмо в лог
func (s *StubClient) Send(_ context.Context, msg Message) error {
	s.log.Info("Email delivery disabled, would send: to=%s, subject=%q", msg.To, msg.Subject)
	return nil
}
