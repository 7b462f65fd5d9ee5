package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/mailersend/mailersend-go"
)

// MailerSendClient 透過 MailerSend 寄送通知信
type MailerSendClient struct {
	client *mailersend.Mailersend
	from   mailersend.From
}

func NewMailerSend(apiKey, fromName, fromEmail string) *MailerSendClient {
	return &MailerSendClient{
		client: mailersend.NewMailersend(apiKey),
		from: mailersend.From{
			Name:  fromName,
			Email: fromEmail,
		},
	}
}

func (m *MailerSendClient) SendOrderConfirmation(toEmail, toName string, orderID int, amount float64) error {
	subject := fmt.Sprintf("Order #%d confirmed", orderID)
	text := fmt.Sprintf("Hi %s,\n\nWe received your order #%d (total %.2f). We'll let you know when it ships.", toName, orderID, amount)
	html := fmt.Sprintf("<p>Hi %s,</p><p>We received your order <strong>#%d</strong> (total %.2f). We'll let you know when it ships.</p>", toName, orderID, amount)
	return m.send(toEmail, toName, subject, text, html)
}

func (m *MailerSendClient) SendOrderStatusUpdate(toEmail, toName string, orderID int, status string) error {
	subject := fmt.Sprintf("Order #%d is now %s", orderID, status)
	text := fmt.Sprintf("Hi %s,\n\nYour order #%d status changed to: %s.", toName, orderID, status)
	html := fmt.Sprintf("<p>Hi %s,</p><p>Your order <strong>#%d</strong> status changed to: <strong>%s</strong>.</p>", toName, orderID, status)
	return m.send(toEmail, toName, subject, text, html)
}

func (m *MailerSendClient) send(toEmail, toName, subject, text, html string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	msg := m.client.Email.NewMessage()
	msg.SetFrom(m.from)
	msg.SetRecipients([]mailersend.Recipient{{Name: toName, Email: toEmail}})
	msg.SetSubject(subject)
	msg.SetText(text)
	msg.SetHTML(html)

	_, err := m.client.Email.Send(ctx, msg)
	return err
}
