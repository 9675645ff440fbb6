// Package notify implements the outbound email side of certificate
// fulfillment.
package notify

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer delivers certificate email through SendGrid.
type Mailer struct {
	apiKey   string
	fromName string
	fromAddr string
}

func NewMailer(apiKey, fromName, fromAddr string) *Mailer {
	return &Mailer{apiKey: apiKey, fromName: fromName, fromAddr: fromAddr}
}

func (m *Mailer) Send(ctx context.Context, to, subject, body string, attachment []byte, filename string) error {
	from := mail.NewEmail(m.fromName, m.fromAddr)
	msg := mail.NewSingleEmail(from, subject, mail.NewEmail("", to), body, body)

	if len(attachment) > 0 {
		att := mail.NewAttachment()
		att.SetContent(base64.StdEncoding.EncodeToString(attachment))
		att.SetType("application/pdf")
		att.SetFilename(filename)
		att.SetDisposition("attachment")
		msg.AddAttachment(att)
	}

	client := sendgrid.NewSendClient(m.apiKey)
	resp, err := client.SendWithContext(ctx, msg)
	if err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("send mail to %s: sendgrid status %d: %s", to, resp.StatusCode, resp.Body)
	}
	return nil
}
