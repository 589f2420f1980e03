package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PostingType indica o lado de uma linha do lançamento contábil.
type PostingType string

const (
	PostingCredit PostingType = "Credit"
	PostingDebit  PostingType = "Debit"
)

// JournalLine é uma linha de um lançamento. ClassID fica vazio na linha de
// crédito; nas linhas de débito carrega a classe contábil do canal.
type JournalLine struct {
	Amount      decimal.Decimal
	PostingType PostingType
	AccountID   string
	ClassID     string
}

// JournalEntry é um lançamento contábil balanceado: uma linha de crédito na
// conta de contrapartida e uma ou mais linhas de débito na conta de COGS.
type JournalEntry struct {
	ID        string
	DocNumber string
	TxnDate   time.Time
	Lines     []JournalLine
}

// TokenPair é o resultado da troca de refresh token por access token. O
// refresh token pode ser rotacionado pela Intuit a cada troca.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}
