package notifier

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cogs-reconciler-api/internal/config"
)

// Notifier envia alertas operacionais por e-mail. Os envios são
// fire-and-forget: falha de envio é logada e nunca interrompe o job.
type Notifier interface {
	Alert(subject, body string) error
}

type EmailNotifier struct {
	transport  Transport
	recipients []string
}

func NewEmailNotifier(cfg *config.Config, transport Transport) Notifier {
	return &EmailNotifier{
		transport:  transport,
		recipients: cfg.SMTP.Recipients,
	}
}

func (n *EmailNotifier) Alert(subject, body string) error {
	msg := strings.Join([]string{
		"From: " + n.transport.From(),
		"To: " + strings.Join(n.recipients, ";"),
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		body,
	}, "\r\n")

	client, err := n.transport.Connect()
	if err != nil {
		logrus.WithError(err).Error("Erro ao conectar ao servidor SMTP")
		return fmt.Errorf("erro ao conectar ao servidor SMTP: %w", err)
	}
	defer client.Close()

	if err := client.Mail(n.transport.From()); err != nil {
		logrus.WithError(err).Error("Erro ao definir o remetente do alerta")
		return err
	}

	for _, addr := range n.recipients {
		if err := client.Rcpt(addr); err != nil {
			logrus.WithError(err).WithField("recipient", addr).Error("Erro ao definir destinatário do alerta")
			return err
		}
	}

	wc, err := client.Data()
	if err != nil {
		return err
	}

	if _, err = wc.Write([]byte(msg)); err != nil {
		return err
	}

	if err = wc.Close(); err != nil {
		return err
	}

	if err = client.Quit(); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"subject":    subject,
		"recipients": len(n.recipients),
	}).Info("Alerta por e-mail enviado com sucesso")

	return nil
}
