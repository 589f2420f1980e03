package sellercloudclient

import (
	"fmt"
	"strings"

	"github.com/vfg2006/cogs-reconciler-api/internal/config"
)

// Method é o verbo HTTP de um endpoint, como variante fechada para evitar
// despacho por reflexão sobre nomes de método.
type Method int

const (
	MethodGet Method = iota
	MethodPost
	MethodDelete
)

// Endpoint descreve uma chamada nomeada à API do SellerCloud. A tabela é
// montada uma vez no construtor do cliente e nunca muda depois disso.
type Endpoint struct {
	Method         Method
	URLTemplate    string
	ErrorContext   string
	SuccessMessage string
}

// Ações disponíveis na tabela de endpoints.
const (
	ActionGetToken        = "GET_TOKEN"
	ActionGetOrders       = "GET_SELLERCLOUD_ORDERS"
	ActionGetVendorOrders = "GET_AMZ_VEN_ORDERS"
)

// Tamanho de página fixo da listagem de pedidos.
const ordersPageSize = 50

func newEndpointTable(cfg config.SellerCloud) map[string]Endpoint {
	base := strings.TrimRight(cfg.BaseURL, "/")

	ordersQuery := fmt.Sprintf(
		"model.companyID=%d&model.orderStatus=3&model.shipFromDate={from}&model.shipToDate={to}&model.channel={channel}&model.pageNumber={page}&model.pageSize=%d",
		cfg.CompanyID, ordersPageSize,
	)

	// O endpoint de pedidos do Amazon Vendor difere apenas pelo userID fixo.
	vendorOrdersQuery := fmt.Sprintf(
		"model.companyID=%d&model.orderStatus=3&model.shipFromDate={from}&model.shipToDate={to}&model.channel={channel}&model.userID=%d&model.pageNumber={page}&model.pageSize=%d",
		cfg.CompanyID, cfg.VendorUserID, ordersPageSize,
	)

	return map[string]Endpoint{
		ActionGetToken: {
			Method:         MethodPost,
			URLTemplate:    base + "/token",
			ErrorContext:   "while getting SellerCloud API access token: ",
			SuccessMessage: "Got SellerCloud API access token successfully!",
		},
		ActionGetOrders: {
			Method:         MethodGet,
			URLTemplate:    base + "/Orders?" + ordersQuery,
			ErrorContext:   "while getting orders from SellerCloud: ",
			SuccessMessage: "Got all orders from SellerCloud successfully!",
		},
		ActionGetVendorOrders: {
			Method:         MethodGet,
			URLTemplate:    base + "/Orders?" + vendorOrdersQuery,
			ErrorContext:   "while getting orders from SellerCloud: ",
			SuccessMessage: "Got all orders from SellerCloud successfully!",
		},
	}
}
