package notifier_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cogs-reconciler-api/internal/config"
	"github.com/vfg2006/cogs-reconciler-api/internal/notifier"
	"github.com/vfg2006/cogs-reconciler-api/internal/notifier/mocks"
	"go.uber.org/mock/gomock"
)

type captureWriteCloser struct {
	bytes.Buffer
}

func (c *captureWriteCloser) Close() error { return nil }

func testSMTPConfig() *config.Config {
	return &config.Config{
		SMTP: config.SMTP{
			User:       "alerts@company.test",
			Recipients: []string{"finance@company.test", "ops@company.test"},
		},
	}
}

func TestAlert(t *testing.T) {
	ctrl := gomock.NewController(t)

	transport := mocks.NewMockTransport(ctrl)
	client := mocks.NewMockClient(ctrl)
	captured := &captureWriteCloser{}

	transport.EXPECT().From().Return("alerts@company.test").AnyTimes()
	transport.EXPECT().Connect().Return(client, nil)

	client.EXPECT().Mail("alerts@company.test").Return(nil)
	client.EXPECT().Rcpt("finance@company.test").Return(nil)
	client.EXPECT().Rcpt("ops@company.test").Return(nil)
	client.EXPECT().Data().Return(io.WriteCloser(captured), nil)
	client.EXPECT().Quit().Return(nil)
	client.EXPECT().Close().Return(nil)

	n := notifier.NewEmailNotifier(testSMTPConfig(), transport)

	err := n.Alert("Journal Entries Created", "Journal entries created: DF_COG_03152024_SC")

	require.NoError(t, err)

	message := captured.String()
	assert.Contains(t, message, "From: alerts@company.test\r\n")
	assert.Contains(t, message, "To: finance@company.test;ops@company.test\r\n")
	assert.Contains(t, message, "Subject: Journal Entries Created\r\n")
	assert.Contains(t, message, "MIME-Version: 1.0\r\n")
	assert.Contains(t, message, "\r\n\r\nJournal entries created: DF_COG_03152024_SC")
}

func TestAlert_FalhaDeConexao(t *testing.T) {
	ctrl := gomock.NewController(t)

	transport := mocks.NewMockTransport(ctrl)
	transport.EXPECT().From().Return("alerts@company.test").AnyTimes()
	transport.EXPECT().Connect().Return(nil, assert.AnError)

	n := notifier.NewEmailNotifier(testSMTPConfig(), transport)

	err := n.Alert("subject", "body")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "erro ao conectar ao servidor SMTP")
}

func TestAlert_FalhaAoDefinirDestinatario(t *testing.T) {
	ctrl := gomock.NewController(t)

	transport := mocks.NewMockTransport(ctrl)
	client := mocks.NewMockClient(ctrl)

	transport.EXPECT().From().Return("alerts@company.test").AnyTimes()
	transport.EXPECT().Connect().Return(client, nil)

	client.EXPECT().Mail(gomock.Any()).Return(nil)
	client.EXPECT().Rcpt("finance@company.test").Return(assert.AnError)
	client.EXPECT().Close().Return(nil)

	n := notifier.NewEmailNotifier(testSMTPConfig(), transport)

	err := n.Alert("subject", "body")
	require.Error(t, err)
}
