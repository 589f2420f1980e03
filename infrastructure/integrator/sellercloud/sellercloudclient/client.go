package sellercloudclient

import (
	"net/http"
	"time"

	scdomain "github.com/vfg2006/cogs-reconciler-api/infrastructure/integrator/sellercloud/domain"
	"github.com/vfg2006/cogs-reconciler-api/internal/config"
	"github.com/vfg2006/cogs-reconciler-api/internal/domain"
	"github.com/vfg2006/cogs-reconciler-api/internal/notifier"
)

// Response é a resposta crua de uma chamada. Status diferente de 2xx não é
// erro nesta camada; a decisão por status fica com o chamador.
type Response struct {
	StatusCode int
	Body       []byte
}

type Client interface {
	Execute(action string, payload interface{}, urlArgs map[string]string) (*Response, error)
	GetOrders(rng domain.DateRange, channel config.Channel) ([]scdomain.Order, error)
}

type SellerCloudClient struct {
	httpClient *http.Client
	cfg        config.SellerCloud
	endpoints  map[string]Endpoint
	notifier   notifier.Notifier

	// token é obtido na primeira chamada autenticada e vale pela vida do
	// cliente.
	token string
}

func NewClient(cfg *config.Config, alerts notifier.Notifier) Client {
	return &SellerCloudClient{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.SellerCloud.TimeoutSeconds) * time.Second,
		},
		cfg:       cfg.SellerCloud,
		endpoints: newEndpointTable(cfg.SellerCloud),
		notifier:  alerts,
	}
}
