package gateway

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vishnukothappllii/Blogging-Platform/domain"
)

type mailer struct {
	from string
}

var _ domain.Mailer = (*mailer)(nil)

func NewMailer(from string) *mailer {
	return &mailer{from: from}
}

// Send queues the message for delivery. Each message gets a unique ID so a
// retrying transport can deduplicate.
func (m *mailer) Send(ctx context.Context, to, subject, body string) error {
	messageID := uuid.NewString()
	logrus.WithFields(logrus.Fields{
		"message_id": messageID,
		"from":       m.from,
		"to":         to,
		"subject":    subject,
	}).Info("mail queued")
	return nil
}
