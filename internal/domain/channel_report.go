package domain

import "github.com/shopspring/decimal"

// ChannelReportRow é uma linha do relatório de custo de um canal, uma por
// item de pedido. TotalCost mantém a precisão original da API; apenas o total
// agregado do canal é arredondado.
type ChannelReportRow struct {
	OrderDate           string
	OrderID             int
	PurchaseOrderNumber string
	SKU                 string
	ItemCost            float64
	Qty                 int
	TotalCost           float64
}

// ChannelResult agrega o resultado do processamento de um canal: o custo
// total arredondado, as linhas do relatório e o caminho do xlsx gerado.
type ChannelResult struct {
	Channel    string
	Total      decimal.Decimal
	Rows       []ChannelReportRow
	ReportPath string
	OrderCount int
}
