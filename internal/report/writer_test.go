package report

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cogs-reconciler-api/internal/config"
	"github.com/vfg2006/cogs-reconciler-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

func TestWriteChannelReport(t *testing.T) {
	outputDir := t.TempDir()
	writer := NewXLSXWriter(&config.Config{
		Report: config.Report{OutputDir: outputDir},
	})

	rows := []domain.ChannelReportRow{
		{
			OrderDate:           "2024-03-15 02:30 pm",
			OrderID:             1001,
			PurchaseOrderNumber: "AMZ-778",
			SKU:                 "SKU-X",
			ItemCost:            12.34,
			Qty:                 3,
			TotalCost:           37.02,
		},
		{
			OrderDate:           "2024-03-15 04:00 pm",
			OrderID:             1002,
			PurchaseOrderNumber: "AMZ-779",
			SKU:                 "SKU-Y",
			ItemCost:            5,
			Qty:                 1,
			TotalCost:           5,
		},
	}

	runDate := time.Date(2024, 3, 15, 5, 0, 0, 0, time.UTC)

	path, err := writer.WriteChannelReport(rows, "direct_fulfillment", runDate)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outputDir, "MAR15,2024", "direct_fulfillment_orders.xlsx"), path)

	file, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer file.Close()

	sheet := file.GetSheetName(0)
	cells, err := file.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, cells, 3)

	assert.Equal(t, []string{
		"order_date", "sc_order_id", "purchase_order_number", "sku", "item_cost", "qty", "total_cost",
	}, cells[0])

	assert.Equal(t, "2024-03-15 02:30 pm", cells[1][0])
	assert.Equal(t, "1001", cells[1][1])
	assert.Equal(t, "AMZ-778", cells[1][2])
	assert.Equal(t, "SKU-X", cells[1][3])
	assert.Equal(t, "3", cells[1][5])

	assert.Equal(t, "SKU-Y", cells[2][3])
}

func TestWriteChannelReport_SemLinhas(t *testing.T) {
	outputDir := t.TempDir()
	writer := NewXLSXWriter(&config.Config{
		Report: config.Report{OutputDir: outputDir},
	})

	path, err := writer.WriteChannelReport(nil, "dropship", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outputDir, "JAN02,2024", "dropship_orders.xlsx"), path)

	file, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer file.Close()

	cells, err := file.GetRows(file.GetSheetName(0))
	require.NoError(t, err)

	// Só o cabeçalho.
	require.Len(t, cells, 1)
}
