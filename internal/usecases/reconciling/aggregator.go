package reconciling

import (
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	scdomain "github.com/vfg2006/cogs-reconciler-api/infrastructure/integrator/sellercloud/domain"
	"github.com/vfg2006/cogs-reconciler-api/internal/domain"
	"github.com/vfg2006/cogs-reconciler-api/pkg/utils"
)

// Descrições de linha que representam impostos e frete, não custo de
// mercadoria. A comparação é exata e sensível a maiúsculas: um SKU chamado
// "Taxesaurus" entra no relatório normalmente.
const (
	taxesLineDescription    = "Taxes"
	shippingLineDescription = "Shipping"
)

// Aggregate dobra os itens de pedido de um canal em linhas de relatório e no
// custo total do canal.
//
// O total é arredondado half-up para duas casas como valor monetário; o custo
// de cada linha mantém a precisão original da API. Essa assimetria é
// intencional: o agregado e o relatório itemizado podem divergir no último
// dígito.
func Aggregate(orders []scdomain.Order) (decimal.Decimal, []domain.ChannelReportRow) {
	total := decimal.Zero
	rows := make([]domain.ChannelReportRow, 0)

	for _, order := range orders {
		orderDate := ""
		if shipDate, err := utils.ParseShipDate(order.ShipDate); err == nil {
			orderDate = utils.FormatOrderDate(shipDate)
		} else {
			logrus.WithFields(logrus.Fields{
				"order_id":  order.ID,
				"ship_date": order.ShipDate,
			}).Warn("Data de envio do pedido em formato inesperado")
		}

		for _, item := range order.Items {
			if item.Description == taxesLineDescription || item.Description == shippingLineDescription {
				continue
			}

			lineCost := item.AverageCost * float64(item.Qty)

			rows = append(rows, domain.ChannelReportRow{
				OrderDate:           orderDate,
				OrderID:             order.ID,
				PurchaseOrderNumber: order.OrderSourceOrderID,
				SKU:                 item.ProductIDOriginal,
				ItemCost:            item.AverageCost,
				Qty:                 item.Qty,
				TotalCost:           lineCost,
			})

			total = total.Add(decimal.NewFromFloat(item.AverageCost).Mul(decimal.NewFromInt(int64(item.Qty))))
		}
	}

	return utils.RoundHalfUp(total), rows
}
