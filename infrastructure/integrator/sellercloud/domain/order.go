package domain

// Order representa um pedido faturado devolvido pela API de pedidos do
// SellerCloud. Os campos seguem o contrato da API e não são alterados depois
// da deserialização.
type Order struct {
	ID                 int         `json:"ID"`
	OrderSourceOrderID string      `json:"OrderSourceOrderID"`
	ShipDate           string      `json:"ShipDate"`
	Items              []OrderItem `json:"Items"`
}

// OrderItem é um item de linha de um pedido.
type OrderItem struct {
	ProductIDOriginal string  `json:"ProductIDOriginal"`
	Description       string  `json:"DisplayDescription"`
	AverageCost       float64 `json:"AverageCost"`
	Qty               int     `json:"Qty"`
}

// OrdersPage é uma página da listagem de pedidos. A API não expõe um marcador
// de última página; uma página com Items vazio encerra a paginação.
type OrdersPage struct {
	Items []Order `json:"Items"`
}
