package notifier

import (
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/smtp"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cogs-reconciler-api/internal/config"
)

// Client abstrai o cliente SMTP para permitir testes sem rede.
type Client interface {
	Mail(from string) error
	Rcpt(to string) error
	Data() (io.WriteCloser, error)
	Quit() error
	Close() error
}

// Transport abre conexões autenticadas com o servidor SMTP.
type Transport interface {
	Connect() (Client, error)
	From() string
}

type SMTPTransport struct {
	cfg config.SMTP
}

func NewSMTPTransport(cfg *config.Config) Transport {
	return &SMTPTransport{cfg: cfg.SMTP}
}

// smtpClientWrapper adapta *smtp.Client à interface Client.
type smtpClientWrapper struct {
	client *smtp.Client
}

func (w *smtpClientWrapper) Mail(from string) error {
	return w.client.Mail(from)
}

func (w *smtpClientWrapper) Rcpt(to string) error {
	return w.client.Rcpt(to)
}

func (w *smtpClientWrapper) Data() (io.WriteCloser, error) {
	return w.client.Data()
}

func (w *smtpClientWrapper) Quit() error {
	return w.client.Quit()
}

func (w *smtpClientWrapper) Close() error {
	return w.client.Close()
}

func (t *SMTPTransport) From() string {
	return t.cfg.User
}

// Connect estabelece a conexão com o servidor SMTP usando STARTTLS.
func (t *SMTPTransport) Connect() (Client, error) {
	addr := t.cfg.Host + ":" + t.cfg.Port

	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar ao servidor SMTP: %w", err)
	}

	client, err := smtp.NewClient(conn, t.cfg.Host)
	if err != nil {
		if closeErr := conn.Close(); closeErr != nil {
			logrus.WithError(closeErr).Warn("Erro ao fechar conexão SMTP")
		}
		return nil, fmt.Errorf("erro ao criar cliente SMTP: %w", err)
	}

	tlsConfig := &tls.Config{
		ServerName: t.cfg.Host,
		MinVersion: tls.VersionTLS12,
	}

	if ok, _ := client.Extension("STARTTLS"); !ok {
		if closeErr := client.Close(); closeErr != nil {
			logrus.WithError(closeErr).Warn("Erro ao fechar cliente SMTP")
		}
		return nil, fmt.Errorf("servidor SMTP não suporta STARTTLS")
	}

	if err = client.StartTLS(tlsConfig); err != nil {
		if closeErr := client.Close(); closeErr != nil {
			logrus.WithError(closeErr).Warn("Erro ao fechar cliente SMTP")
		}
		return nil, fmt.Errorf("erro ao iniciar TLS: %w", err)
	}

	auth := smtp.PlainAuth("", t.cfg.User, t.cfg.Password, t.cfg.Host)
	if err = client.Auth(auth); err != nil {
		if closeErr := client.Close(); closeErr != nil {
			logrus.WithError(closeErr).Warn("Erro ao fechar cliente SMTP")
		}
		return nil, fmt.Errorf("falha na autenticação SMTP: %w", err)
	}

	return &smtpClientWrapper{client: client}, nil
}
