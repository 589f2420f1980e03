package qbclient

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	qbdomain "github.com/vfg2006/cogs-reconciler-api/infrastructure/integrator/quickbooks/domain"
	"github.com/vfg2006/cogs-reconciler-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	RefreshAccessToken(refreshToken string) (*qbdomain.TokenPair, error)
	CreateJournalEntry(entry *qbdomain.JournalEntry) (*qbdomain.JournalEntry, error)
	FindJournalEntryByDocNumber(docNumber string) (*qbdomain.JournalEntry, error)
	AttachFileToJournalEntry(filePath, journalEntryID string) error
}

type QuickBooksClient struct {
	httpClient *http.Client
	cfg        config.QuickBooks

	// accessToken é cunhado a partir do refresh token persistido e vale pela
	// vida do cliente; uma execução do job dura bem menos que o token.
	accessToken string
}

func NewClient(cfg *config.Config) *QuickBooksClient {
	return &QuickBooksClient{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.QuickBooks.TimeoutSeconds) * time.Second,
		},
		cfg: cfg.QuickBooks,
	}
}

// companyURL monta a URL de um recurso da empresa (realm) no QuickBooks.
func (c *QuickBooksClient) companyURL(resource string) string {
	base := strings.TrimRight(c.cfg.BaseURL, "/")
	return fmt.Sprintf("%s/company/%s/%s", base, c.cfg.RealmID, resource)
}
