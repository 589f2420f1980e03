package quickbooks

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	qbdomain "github.com/vfg2006/cogs-reconciler-api/infrastructure/integrator/quickbooks/domain"
	"github.com/vfg2006/cogs-reconciler-api/infrastructure/integrator/quickbooks/qbclient"
	"github.com/vfg2006/cogs-reconciler-api/internal/config"
	"github.com/vfg2006/cogs-reconciler-api/internal/domain"
)

// AccountingAPIError encapsula falhas na API contábil. É tratado por canal:
// logado e alertado, sem derrubar os canais irmãos.
type AccountingAPIError struct {
	Op  string
	Err error
}

func (e *AccountingAPIError) Error() string {
	return fmt.Sprintf("erro na API do QuickBooks (%s): %v", e.Op, e.Err)
}

func (e *AccountingAPIError) Unwrap() error {
	return e.Err
}

type QuickBooksIntegrator interface {
	Authenticate(refreshToken string) (rotatedToken string, err error)
	CreateChannelEntry(channel config.Channel, amount decimal.Decimal, rangeEnd time.Time) (docNumber string, err error)
	CreateCombinedEntry(results []domain.ChannelResult, channels map[string]config.Channel, rangeEnd time.Time) (docNumber string, err error)
	FindJournalEntryID(docNumber string) (string, error)
	AttachReport(reportPath, journalEntryID string) error
}

type QuickBooksService struct {
	cfg    *config.Config
	Client qbclient.Client
}

func New(cfg *config.Config, client qbclient.Client) QuickBooksIntegrator {
	return &QuickBooksService{
		cfg:    cfg,
		Client: client,
	}
}

// Authenticate cunha um access token a partir do refresh token persistido e
// devolve o refresh token vigente depois da troca, que pode ter sido
// rotacionado pela Intuit.
func (s *QuickBooksService) Authenticate(refreshToken string) (string, error) {
	pair, err := s.Client.RefreshAccessToken(refreshToken)
	if err != nil {
		return "", &AccountingAPIError{Op: "authenticate", Err: err}
	}

	return pair.RefreshToken, nil
}

// CreateChannelEntry cria o lançamento individual de um canal: crédito na
// conta de contrapartida e débito na conta de COGS com a classe do canal.
// DocNumber: {CANAL}_COG_{MMDDYYYY}_SC.
func (s *QuickBooksService) CreateChannelEntry(channel config.Channel, amount decimal.Decimal, rangeEnd time.Time) (string, error) {
	entry := &qbdomain.JournalEntry{
		DocNumber: fmt.Sprintf("%s_COG_%s_SC", channel.Code, rangeEnd.Format("01022006")),
		TxnDate:   rangeEnd,
		Lines: []qbdomain.JournalLine{
			{
				Amount:      amount,
				PostingType: qbdomain.PostingCredit,
				AccountID:   s.cfg.QuickBooks.CreditAccountID,
			},
			{
				Amount:      amount,
				PostingType: qbdomain.PostingDebit,
				AccountID:   s.cfg.QuickBooks.DebitAccountID,
				ClassID:     channel.ClassRefID,
			},
		},
	}

	created, err := s.Client.CreateJournalEntry(entry)
	if err != nil {
		return "", &AccountingAPIError{Op: "create journal entry", Err: err}
	}

	return created.DocNumber, nil
}

// CreateCombinedEntry cria um único lançamento com o total de todos os canais
// na linha de crédito e uma linha de débito por canal.
// DocNumber: COG_{MMMDD}_SC com o mês abreviado em maiúsculas.
func (s *QuickBooksService) CreateCombinedEntry(results []domain.ChannelResult, channels map[string]config.Channel, rangeEnd time.Time) (string, error) {
	total := decimal.Zero
	for _, result := range results {
		total = total.Add(result.Total)
	}

	lines := []qbdomain.JournalLine{
		{
			Amount:      total,
			PostingType: qbdomain.PostingCredit,
			AccountID:   s.cfg.QuickBooks.CreditAccountID,
		},
	}

	for _, result := range results {
		channel, ok := channels[result.Channel]
		if !ok {
			return "", errors.Errorf("canal desconhecido no lançamento combinado: %s", result.Channel)
		}

		lines = append(lines, qbdomain.JournalLine{
			Amount:      result.Total,
			PostingType: qbdomain.PostingDebit,
			AccountID:   s.cfg.QuickBooks.DebitAccountID,
			ClassID:     channel.ClassRefID,
		})
	}

	entry := &qbdomain.JournalEntry{
		DocNumber: fmt.Sprintf("COG_%s_SC", strings.ToUpper(rangeEnd.Format("Jan02"))),
		TxnDate:   rangeEnd,
		Lines:     lines,
	}

	created, err := s.Client.CreateJournalEntry(entry)
	if err != nil {
		return "", &AccountingAPIError{Op: "create combined journal entry", Err: err}
	}

	return created.DocNumber, nil
}

// FindJournalEntryID devolve o ID interno do lançamento pelo número de
// documento, ou vazio quando não existe.
func (s *QuickBooksService) FindJournalEntryID(docNumber string) (string, error) {
	entry, err := s.Client.FindJournalEntryByDocNumber(docNumber)
	if err != nil {
		return "", &AccountingAPIError{Op: "find journal entry", Err: err}
	}

	if entry == nil {
		return "", nil
	}

	return entry.ID, nil
}

func (s *QuickBooksService) AttachReport(reportPath, journalEntryID string) error {
	if err := s.Client.AttachFileToJournalEntry(reportPath, journalEntryID); err != nil {
		return &AccountingAPIError{Op: "attach report", Err: err}
	}

	return nil
}
