package sellercloud

import (
	"github.com/sirupsen/logrus"
	scdomain "github.com/vfg2006/cogs-reconciler-api/infrastructure/integrator/sellercloud/domain"
	"github.com/vfg2006/cogs-reconciler-api/infrastructure/integrator/sellercloud/sellercloudclient"
	"github.com/vfg2006/cogs-reconciler-api/internal/config"
	"github.com/vfg2006/cogs-reconciler-api/internal/domain"
)

type SellerCloudIntegrator interface {
	GetOrdersByChannel(rng domain.DateRange, channel config.Channel) ([]scdomain.Order, error)
}

type SellerCloudService struct {
	cfg    *config.Config
	Client sellercloudclient.Client
}

func New(cfg *config.Config, client sellercloudclient.Client) SellerCloudIntegrator {
	return &SellerCloudService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *SellerCloudService) GetOrdersByChannel(rng domain.DateRange, channel config.Channel) ([]scdomain.Order, error) {
	orders, err := s.Client.GetOrders(rng, channel)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"channel": channel.Code,
		"from":    rng.QueryStart(),
		"to":      rng.QueryEnd(),
		"orders":  len(orders),
	}).Info("Pedidos do canal obtidos no SellerCloud")

	return orders, nil
}
