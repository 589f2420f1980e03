package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cogs-reconciler-api/internal/config"
	"github.com/vfg2006/cogs-reconciler-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

// Colunas do relatório, na ordem esperada pela contabilidade.
var reportColumns = []string{
	"order_date",
	"sc_order_id",
	"purchase_order_number",
	"sku",
	"item_cost",
	"qty",
	"total_cost",
}

// Writer gera o artefato xlsx de um canal e devolve o caminho do arquivo
// para o anexo do lançamento contábil.
type Writer interface {
	WriteChannelReport(rows []domain.ChannelReportRow, channelName string, runDate time.Time) (string, error)
}

type XLSXWriter struct {
	outputDir string
}

func NewXLSXWriter(cfg *config.Config) Writer {
	return &XLSXWriter{
		outputDir: cfg.Report.OutputDir,
	}
}

func (w *XLSXWriter) WriteChannelReport(rows []domain.ChannelReportRow, channelName string, runDate time.Time) (string, error) {
	// Diretório por execução, carimbado com a data (ex.: tmp/JAN15,2024).
	dir := filepath.Join(w.outputDir, strings.ToUpper(runDate.Format("Jan02,2006")))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("erro ao criar diretório do relatório: %w", err)
	}

	file := excelize.NewFile()
	defer func() {
		if err := file.Close(); err != nil {
			logrus.WithError(err).Warn("Erro ao fechar arquivo xlsx")
		}
	}()

	sheet := file.GetSheetName(0)

	for i, column := range reportColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return "", fmt.Errorf("erro ao montar célula do cabeçalho: %w", err)
		}
		if err := file.SetCellValue(sheet, cell, column); err != nil {
			return "", fmt.Errorf("erro ao escrever cabeçalho: %w", err)
		}
	}

	for i, row := range rows {
		values := []interface{}{
			row.OrderDate,
			row.OrderID,
			row.PurchaseOrderNumber,
			row.SKU,
			row.ItemCost,
			row.Qty,
			row.TotalCost,
		}

		for j, value := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return "", fmt.Errorf("erro ao montar célula: %w", err)
			}
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return "", fmt.Errorf("erro ao escrever linha do relatório: %w", err)
			}
		}
	}

	path := filepath.Join(dir, channelName+"_orders.xlsx")
	if err := file.SaveAs(path); err != nil {
		return "", fmt.Errorf("erro ao salvar relatório: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"channel": channelName,
		"rows":    len(rows),
		"path":    path,
	}).Info("Relatório do canal gerado")

	return path, nil
}
