package qbclient

import (
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	qbdomain "github.com/vfg2006/cogs-reconciler-api/infrastructure/integrator/quickbooks/domain"
	"github.com/vfg2006/cogs-reconciler-api/internal/config"
)

func newTestClient(serverURL string) *QuickBooksClient {
	return NewClient(&config.Config{
		QuickBooks: config.QuickBooks{
			BaseURL:        serverURL,
			TokenURL:       serverURL + "/oauth2/v1/tokens/bearer",
			ClientID:       "client-id",
			ClientSecret:   "client-secret",
			RealmID:        "9999",
			TimeoutSeconds: 5,
		},
	})
}

func TestRefreshAccessToken(t *testing.T) {
	var gotAuth, gotGrant, gotRefresh string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotAuth = r.Header.Get("Authorization")
		gotGrant = r.FormValue("grant_type")
		gotRefresh = r.FormValue("refresh_token")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"new-access","refresh_token":"new-refresh","expires_in":3600}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	pair, err := client.RefreshAccessToken("old-refresh")

	require.NoError(t, err)
	assert.Equal(t, "new-access", pair.AccessToken)
	assert.Equal(t, "new-refresh", pair.RefreshToken)
	assert.Equal(t, int64(3600), pair.ExpiresIn)

	expectedBasic := "Basic " + base64.StdEncoding.EncodeToString([]byte("client-id:client-secret"))
	assert.Equal(t, expectedBasic, gotAuth)
	assert.Equal(t, "refresh_token", gotGrant)
	assert.Equal(t, "old-refresh", gotRefresh)
}

func TestRefreshAccessToken_TokenVazio(t *testing.T) {
	client := newTestClient("http://quickbooks.test")

	_, err := client.RefreshAccessToken("")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "não pode ser vazio")
}

func TestCreateJournalEntry(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotBody, _ = io.ReadAll(r.Body)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"JournalEntry":{"Id":"151","DocNumber":"DF_COG_03152024_SC"}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	client.accessToken = "access-token"

	entry := &qbdomain.JournalEntry{
		DocNumber: "DF_COG_03152024_SC",
		TxnDate:   time.Date(2024, 3, 15, 23, 59, 59, 0, time.UTC),
		Lines: []qbdomain.JournalLine{
			{Amount: decimal.RequireFromString("125.37"), PostingType: qbdomain.PostingCredit, AccountID: "29"},
			{Amount: decimal.RequireFromString("125.37"), PostingType: qbdomain.PostingDebit, AccountID: "46", ClassID: "300100"},
		},
	}

	created, err := client.CreateJournalEntry(entry)

	require.NoError(t, err)
	assert.Equal(t, "151", created.ID)
	assert.Equal(t, "/company/9999/journalentry", gotPath)
	assert.Equal(t, "Bearer access-token", gotAuth)

	var wire wireJournalEntry
	require.NoError(t, json.Unmarshal(gotBody, &wire))
	assert.Equal(t, "DF_COG_03152024_SC", wire.DocNumber)
	assert.Equal(t, "2024-03-15", wire.TxnDate)
	require.Len(t, wire.Line, 2)

	assert.Equal(t, "JournalEntryLineDetail", wire.Line[0].DetailType)
	assert.Equal(t, "Credit", wire.Line[0].Detail.PostingType)
	assert.Equal(t, "29", wire.Line[0].Detail.AccountRef.Value)
	assert.Equal(t, "Sales", wire.Line[0].Detail.TaxApplicableOn)
	assert.Nil(t, wire.Line[0].Detail.ClassRef)

	assert.Equal(t, "Debit", wire.Line[1].Detail.PostingType)
	require.NotNil(t, wire.Line[1].Detail.ClassRef)
	assert.Equal(t, "300100", wire.Line[1].Detail.ClassRef.Value)
}

func TestFindJournalEntryByDocNumber(t *testing.T) {
	tests := []struct {
		name     string
		response string
		found    bool
	}{
		{
			name:     "Lançamento existente",
			response: `{"QueryResponse":{"JournalEntry":[{"Id":"151","DocNumber":"DF_COG_03152024_SC","TxnDate":"2024-03-15"}]}}`,
			found:    true,
		},
		{
			name:     "Lançamento inexistente devolve nil sem erro",
			response: `{"QueryResponse":{}}`,
			found:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotQuery string

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotQuery = r.URL.Query().Get("query")
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tt.response))
			}))
			defer server.Close()

			client := newTestClient(server.URL)

			entry, err := client.FindJournalEntryByDocNumber("DF_COG_03152024_SC")

			require.NoError(t, err)
			assert.Equal(t, "select * from JournalEntry where DocNumber = 'DF_COG_03152024_SC'", gotQuery)

			if tt.found {
				require.NotNil(t, entry)
				assert.Equal(t, "151", entry.ID)
				assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), entry.TxnDate)
			} else {
				assert.Nil(t, entry)
			}
		})
	}
}

func TestAttachFileToJournalEntry(t *testing.T) {
	reportPath := filepath.Join(t.TempDir(), "direct_fulfillment_orders.xlsx")
	require.NoError(t, os.WriteFile(reportPath, []byte("conteudo-da-planilha"), 0o600))

	var gotMetadata, gotContent string
	var gotFileName string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))

		metaFile, _, err := r.FormFile("file_metadata_01")
		require.NoError(t, err)
		metaBytes, _ := io.ReadAll(metaFile)
		gotMetadata = string(metaBytes)

		contentFile, header, err := r.FormFile("file_content_01")
		require.NoError(t, err)
		contentBytes, _ := io.ReadAll(contentFile)
		gotContent = string(contentBytes)
		gotFileName = header.Filename

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	err := client.AttachFileToJournalEntry(reportPath, "151")

	require.NoError(t, err)
	assert.Equal(t, "conteudo-da-planilha", gotContent)
	assert.Equal(t, "direct_fulfillment_orders.xlsx", gotFileName)
	assert.Contains(t, gotMetadata, `"value":"151"`)
	assert.Contains(t, gotMetadata, `"type":"JournalEntry"`)
	assert.Contains(t, gotMetadata, xlsxContentType)
}

func TestCreateJournalEntry_StatusDeErro(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"Fault":{}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.CreateJournalEntry(&qbdomain.JournalEntry{DocNumber: "X"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Status: 400")
}
