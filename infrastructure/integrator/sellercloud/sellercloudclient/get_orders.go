package sellercloudclient

import (
	"fmt"
	"net/http"
	"strconv"

	scdomain "github.com/vfg2006/cogs-reconciler-api/infrastructure/integrator/sellercloud/domain"
	"github.com/vfg2006/cogs-reconciler-api/internal/config"
	"github.com/vfg2006/cogs-reconciler-api/internal/domain"
)

// GetOrders busca todos os pedidos faturados do canal dentro do intervalo,
// paginando até a primeira página vazia. Qualquer página com status diferente
// de 200 descarta o resultado parcial: o canal ou entrega tudo ou nada.
func (c *SellerCloudClient) GetOrders(rng domain.DateRange, channel config.Channel) ([]scdomain.Order, error) {
	action := ActionGetOrders
	if channel.UseVendor {
		action = ActionGetVendorOrders
	}

	var orders []scdomain.Order

	for page := 1; ; page++ {
		response, err := c.Execute(action, nil, map[string]string{
			"from":    rng.QueryStart(),
			"to":      rng.QueryEnd(),
			"channel": strconv.Itoa(channel.APICode),
			"page":    strconv.Itoa(page),
		})
		if err != nil {
			return nil, err
		}

		if response.StatusCode != http.StatusOK {
			return nil, &FetchError{StatusCode: response.StatusCode}
		}

		var ordersPage scdomain.OrdersPage
		if err := json.Unmarshal(response.Body, &ordersPage); err != nil {
			return nil, fmt.Errorf("erro ao decodificar página de pedidos: %w", err)
		}

		// Página vazia é a única condição de parada: a API não expõe um
		// marcador de última página.
		if len(ordersPage.Items) == 0 {
			break
		}

		orders = append(orders, ordersPage.Items...)
	}

	return orders, nil
}
