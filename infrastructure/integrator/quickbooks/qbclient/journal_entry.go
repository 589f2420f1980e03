package qbclient

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	qbdomain "github.com/vfg2006/cogs-reconciler-api/infrastructure/integrator/quickbooks/domain"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Estruturas de fio da API do QuickBooks. Ficam restritas a este pacote;
// o resto do sistema só vê os tipos de valor de qbdomain.
type wireRef struct {
	Value string `json:"value"`
}

type wireLineDetail struct {
	PostingType     string   `json:"PostingType"`
	AccountRef      wireRef  `json:"AccountRef"`
	ClassRef        *wireRef `json:"ClassRef,omitempty"`
	TaxApplicableOn string   `json:"TaxApplicableOn"`
}

type wireLine struct {
	Amount     float64        `json:"Amount"`
	DetailType string         `json:"DetailType"`
	Detail     wireLineDetail `json:"JournalEntryLineDetail"`
}

type wireJournalEntry struct {
	ID        string     `json:"Id,omitempty"`
	DocNumber string     `json:"DocNumber"`
	TxnDate   string     `json:"TxnDate"`
	Line      []wireLine `json:"Line"`
}

type journalEntryResponse struct {
	JournalEntry wireJournalEntry `json:"JournalEntry"`
}

type queryResponse struct {
	QueryResponse struct {
		JournalEntry []wireJournalEntry `json:"JournalEntry"`
	} `json:"QueryResponse"`
}

// CreateJournalEntry cria o lançamento contábil e devolve a versão criada com
// o ID atribuído pelo QuickBooks.
func (c *QuickBooksClient) CreateJournalEntry(entry *qbdomain.JournalEntry) (*qbdomain.JournalEntry, error) {
	payload, err := json.Marshal(toWire(entry))
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar lançamento contábil: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.companyURL("journalentry"), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar requisição: %w", err)
	}
	c.setHeaders(req, "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar lançamento contábil: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("erro ao criar lançamento contábil. Status: %d, Resposta: %s", resp.StatusCode, body)
	}

	var created journalEntryResponse
	if err := json.Unmarshal(body, &created); err != nil {
		return nil, fmt.Errorf("erro ao decodificar lançamento criado: %w", err)
	}

	result := *entry
	result.ID = created.JournalEntry.ID
	return &result, nil
}

// FindJournalEntryByDocNumber busca um lançamento pelo número de documento.
// Devolve nil quando não existe.
func (c *QuickBooksClient) FindJournalEntryByDocNumber(docNumber string) (*qbdomain.JournalEntry, error) {
	query := fmt.Sprintf("select * from JournalEntry where DocNumber = '%s'", docNumber)
	requestURL := c.companyURL("query") + "?query=" + url.QueryEscape(query)

	req, err := http.NewRequest(http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar requisição: %w", err)
	}
	c.setHeaders(req, "")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar lançamento contábil: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("erro ao consultar lançamento contábil. Status: %d, Resposta: %s", resp.StatusCode, body)
	}

	var result queryResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta da consulta: %w", err)
	}

	if len(result.QueryResponse.JournalEntry) == 0 {
		return nil, nil
	}

	return fromWire(result.QueryResponse.JournalEntry[0]), nil
}

// AttachFileToJournalEntry sobe o relatório e o vincula ao lançamento por
// referência de entidade.
func (c *QuickBooksClient) AttachFileToJournalEntry(filePath, journalEntryID string) error {
	fileName := filepath.Base(filePath)

	metadata := map[string]interface{}{
		"FileName":    fileName,
		"ContentType": xlsxContentType,
		"AttachableRef": []map[string]interface{}{
			{
				"EntityRef": map[string]string{
					"type":  "JournalEntry",
					"value": journalEntryID,
				},
			},
		},
	}

	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("erro ao serializar metadados do anexo: %w", err)
	}

	fileContent, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("erro ao ler o arquivo do relatório: %w", err)
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	metaPart, err := writer.CreateFormFile("file_metadata_01", "attachment.json")
	if err != nil {
		return fmt.Errorf("erro ao montar o multipart: %w", err)
	}
	if _, err := metaPart.Write(metadataJSON); err != nil {
		return fmt.Errorf("erro ao escrever metadados do anexo: %w", err)
	}

	filePart, err := writer.CreateFormFile("file_content_01", fileName)
	if err != nil {
		return fmt.Errorf("erro ao montar o multipart: %w", err)
	}
	if _, err := filePart.Write(fileContent); err != nil {
		return fmt.Errorf("erro ao escrever conteúdo do anexo: %w", err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("erro ao finalizar o multipart: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.companyURL("upload"), &buf)
	if err != nil {
		return fmt.Errorf("erro ao criar requisição: %w", err)
	}
	c.setHeaders(req, writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao anexar arquivo ao lançamento: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("erro ao anexar arquivo ao lançamento. Status: %d, Resposta: %s", resp.StatusCode, body)
	}

	return nil
}

func (c *QuickBooksClient) setHeaders(req *http.Request, contentType string) {
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
}

func toWire(entry *qbdomain.JournalEntry) wireJournalEntry {
	lines := make([]wireLine, 0, len(entry.Lines))
	for _, line := range entry.Lines {
		amount, _ := line.Amount.Float64()

		detail := wireLineDetail{
			PostingType:     string(line.PostingType),
			AccountRef:      wireRef{Value: line.AccountID},
			TaxApplicableOn: "Sales",
		}
		if line.ClassID != "" {
			detail.ClassRef = &wireRef{Value: line.ClassID}
		}

		lines = append(lines, wireLine{
			Amount:     amount,
			DetailType: "JournalEntryLineDetail",
			Detail:     detail,
		})
	}

	return wireJournalEntry{
		DocNumber: entry.DocNumber,
		TxnDate:   entry.TxnDate.Format(time.DateOnly),
		Line:      lines,
	}
}

func fromWire(entry wireJournalEntry) *qbdomain.JournalEntry {
	txnDate, _ := time.Parse(time.DateOnly, entry.TxnDate)

	lines := make([]qbdomain.JournalLine, 0, len(entry.Line))
	for _, line := range entry.Line {
		wireLine := qbdomain.JournalLine{
			Amount:      decimal.NewFromFloat(line.Amount),
			PostingType: qbdomain.PostingType(line.Detail.PostingType),
			AccountID:   line.Detail.AccountRef.Value,
		}
		if line.Detail.ClassRef != nil {
			wireLine.ClassID = line.Detail.ClassRef.Value
		}
		lines = append(lines, wireLine)
	}

	return &qbdomain.JournalEntry{
		ID:        entry.ID,
		DocNumber: entry.DocNumber,
		TxnDate:   txnDate,
		Lines:     lines,
	}
}
