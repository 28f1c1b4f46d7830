package notification

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/ArtytL/loh2-site/config"
	"github.com/ArtytL/loh2-site/internal/domain"
)

// EmailNotifier mails the order summary to the shop's admin address over
// SMTP.
type EmailNotifier struct {
	smtp      config.SMTPConfig
	recipient string
}

func CreateEmailNotifier(smtp config.SMTPConfig, recipient string) *EmailNotifier {
	return &EmailNotifier{smtp: smtp, recipient: recipient}
}

func (n *EmailNotifier) OrderCreated(ctx context.Context, order domain.Order) error {
	message := gomail.NewMessage()
	message.SetHeader("From", n.smtp.Sender)
	message.SetHeader("To", n.recipient)
	message.SetHeader("Subject", fmt.Sprintf("New order %s", order.ID))
	message.SetBody("text/plain", BuildOrderSummary(order))

	d := gomail.NewDialer(n.smtp.Host, n.smtp.Port, n.smtp.Sender, n.smtp.Password)

	return d.DialAndSend(message)
}
