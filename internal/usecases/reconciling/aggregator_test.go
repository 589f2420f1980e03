package reconciling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	scdomain "github.com/vfg2006/cogs-reconciler-api/infrastructure/integrator/sellercloud/domain"
)

func TestAggregate(t *testing.T) {
	tests := []struct {
		name          string
		orders        []scdomain.Order
		expectedTotal string
		expectedRows  int
	}{
		{
			name: "Deve somar o custo de todos os itens do pedido",
			orders: []scdomain.Order{
				{
					ID:                 1001,
					OrderSourceOrderID: "PO-1001",
					ShipDate:           "2024-03-15T10:00:00",
					Items: []scdomain.OrderItem{
						{ProductIDOriginal: "SKU-A", Description: "Produto A", AverageCost: 10.50, Qty: 2},
						{ProductIDOriginal: "SKU-B", Description: "Produto B", AverageCost: 5.25, Qty: 1},
					},
				},
			},
			expectedTotal: "26.25",
			expectedRows:  2,
		},
		{
			name: "Linhas de Taxes e Shipping não entram no relatório nem no total",
			orders: []scdomain.Order{
				{
					ID:       1002,
					ShipDate: "2024-03-15T10:00:00",
					Items: []scdomain.OrderItem{
						{ProductIDOriginal: "SKU-A", Description: "Produto A", AverageCost: 10, Qty: 1},
						{ProductIDOriginal: "TAX", Description: "Taxes", AverageCost: 2.50, Qty: 1},
						{ProductIDOriginal: "SHIP", Description: "Shipping", AverageCost: 7.99, Qty: 1},
					},
				},
			},
			expectedTotal: "10",
			expectedRows:  1,
		},
		{
			name: "Descrição que apenas contém Taxes entra normalmente",
			orders: []scdomain.Order{
				{
					ID:       1003,
					ShipDate: "2024-03-15T10:00:00",
					Items: []scdomain.OrderItem{
						{ProductIDOriginal: "SKU-T", Description: "Taxesaurus", AverageCost: 3, Qty: 1},
						{ProductIDOriginal: "SKU-S", Description: "shipping", AverageCost: 4, Qty: 1},
					},
				},
			},
			expectedTotal: "7",
			expectedRows:  2,
		},
		{
			name: "Meio centavo no custo acumulado deve arredondar para cima",
			orders: []scdomain.Order{
				{
					ID:       1004,
					ShipDate: "2024-03-15T10:00:00",
					Items: []scdomain.OrderItem{
						{ProductIDOriginal: "SKU-H", Description: "Produto H", AverageCost: 10.005, Qty: 2},
					},
				},
			},
			expectedTotal: "20.01",
			expectedRows:  1,
		},
		{
			name:          "Sem pedidos o total é zero",
			orders:        []scdomain.Order{},
			expectedTotal: "0",
			expectedRows:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, rows := Aggregate(tt.orders)

			assert.Equal(t, tt.expectedTotal, total.String())
			assert.Len(t, rows, tt.expectedRows)
		})
	}
}

func TestAggregate_LinhasDoRelatorio(t *testing.T) {
	orders := []scdomain.Order{
		{
			ID:                 2001,
			OrderSourceOrderID: "AMZ-778",
			ShipDate:           "2024-03-15T14:30:00.000000",
			Items: []scdomain.OrderItem{
				{ProductIDOriginal: "SKU-X", Description: "Produto X", AverageCost: 12.34, Qty: 3},
			},
		},
	}

	_, rows := Aggregate(orders)

	assert.Len(t, rows, 1)
	assert.Equal(t, "2024-03-15 02:30 pm", rows[0].OrderDate)
	assert.Equal(t, 2001, rows[0].OrderID)
	assert.Equal(t, "AMZ-778", rows[0].PurchaseOrderNumber)
	assert.Equal(t, "SKU-X", rows[0].SKU)
	assert.Equal(t, 12.34, rows[0].ItemCost)
	assert.Equal(t, 3, rows[0].Qty)
	assert.InDelta(t, 37.02, rows[0].TotalCost, 0.0001)
}

func TestAggregate_DataDeEnvioInvalida(t *testing.T) {
	orders := []scdomain.Order{
		{
			ID:       3001,
			ShipDate: "not-a-date",
			Items: []scdomain.OrderItem{
				{ProductIDOriginal: "SKU-A", Description: "Produto A", AverageCost: 1, Qty: 1},
			},
		},
	}

	total, rows := Aggregate(orders)

	// A linha entra mesmo sem data; só a coluna order_date fica vazia.
	assert.Equal(t, "1", total.String())
	assert.Len(t, rows, 1)
	assert.Empty(t, rows[0].OrderDate)
}
