package sellercloudclient

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	scdomain "github.com/vfg2006/cogs-reconciler-api/infrastructure/integrator/sellercloud/domain"
	"github.com/vfg2006/cogs-reconciler-api/internal/config"
	"github.com/vfg2006/cogs-reconciler-api/internal/domain"
	notifiermocks "github.com/vfg2006/cogs-reconciler-api/internal/notifier/mocks"
	"go.uber.org/mock/gomock"
)

// fakeSellerCloud simula o endpoint de token e a listagem paginada de pedidos.
type fakeSellerCloud struct {
	t             *testing.T
	pages         map[int]scdomain.OrdersPage
	pageStatus    map[int]int
	tokenRequests int
	orderRequests []*http.Request
}

func (f *fakeSellerCloud) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/rest/api/token":
			f.tokenRequests++
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"access_token":"test-token"}`))

		case "/rest/api/Orders":
			f.orderRequests = append(f.orderRequests, r.Clone(r.Context()))

			page, err := strconv.Atoi(r.URL.Query().Get("model.pageNumber"))
			require.NoError(f.t, err)

			if status, ok := f.pageStatus[page]; ok {
				w.WriteHeader(status)
				return
			}

			w.Header().Set("Content-Type", "application/json")
			body, err := json.Marshal(f.pages[page])
			require.NoError(f.t, err)
			_, _ = w.Write(body)

		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

func newFakeClient(t *testing.T, fake *fakeSellerCloud) Client {
	server := httptest.NewServer(fake.handler())
	t.Cleanup(server.Close)

	ctrl := gomock.NewController(t)
	alerts := notifiermocks.NewMockNotifier(ctrl)
	alerts.EXPECT().Alert(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{
		SellerCloud: config.SellerCloud{
			BaseURL:        server.URL + "/rest/api",
			Username:       "user",
			Password:       "pass",
			CompanyID:      163,
			VendorUserID:   75437,
			TimeoutSeconds: 5,
		},
	}

	return NewClient(cfg, alerts)
}

func testRange() domain.DateRange {
	return domain.DateRange{
		Start: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 15, 23, 59, 59, 0, time.UTC),
	}
}

func orderWithID(id int) scdomain.Order {
	return scdomain.Order{
		ID:       id,
		ShipDate: "2024-03-15T10:00:00",
		Items: []scdomain.OrderItem{
			{ProductIDOriginal: "SKU", Description: "Produto", AverageCost: 1, Qty: 1},
		},
	}
}

func TestGetOrders_PaginaAteAPrimeiraPaginaVazia(t *testing.T) {
	fake := &fakeSellerCloud{
		t: t,
		pages: map[int]scdomain.OrdersPage{
			1: {Items: []scdomain.Order{orderWithID(1), orderWithID(2)}},
			2: {Items: []scdomain.Order{orderWithID(3)}},
			3: {},
		},
	}
	client := newFakeClient(t, fake)

	orders, err := client.GetOrders(testRange(), config.Channel{Code: "DF", APICode: 66})

	require.NoError(t, err)
	require.Len(t, orders, 3)

	// Os pedidos chegam na ordem das páginas.
	assert.Equal(t, 1, orders[0].ID)
	assert.Equal(t, 2, orders[1].ID)
	assert.Equal(t, 3, orders[2].ID)

	// Uma única troca de credenciais por token para as três páginas.
	assert.Equal(t, 1, fake.tokenRequests)
	assert.Len(t, fake.orderRequests, 3)
}

func TestGetOrders_StatusDeErroDescartaOParcial(t *testing.T) {
	fake := &fakeSellerCloud{
		t: t,
		pages: map[int]scdomain.OrdersPage{
			1: {Items: []scdomain.Order{orderWithID(1)}},
		},
		pageStatus: map[int]int{2: http.StatusInternalServerError},
	}
	client := newFakeClient(t, fake)

	orders, err := client.GetOrders(testRange(), config.Channel{Code: "DF", APICode: 66})

	require.Error(t, err)
	assert.Nil(t, orders)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusInternalServerError, fetchErr.StatusCode)
}

func TestGetOrders_CanalVendorUsaEndpointComUserID(t *testing.T) {
	fake := &fakeSellerCloud{
		t:     t,
		pages: map[int]scdomain.OrdersPage{1: {}},
	}
	client := newFakeClient(t, fake)

	_, err := client.GetOrders(testRange(), config.Channel{Code: "VN", APICode: 0, UseVendor: true})

	require.NoError(t, err)
	require.Len(t, fake.orderRequests, 1)

	query := fake.orderRequests[0].URL.Query()
	assert.Equal(t, "75437", query.Get("model.userID"))
	assert.Equal(t, "0", query.Get("model.channel"))
	assert.Equal(t, "03/15/2024 00:00:00", query.Get("model.shipFromDate"))
	assert.Equal(t, "03/15/2024 23:59:59", query.Get("model.shipToDate"))
	assert.Equal(t, "3", query.Get("model.orderStatus"))
	assert.Equal(t, "50", query.Get("model.pageSize"))
}

func TestGetOrders_TokenAutenticaAsRequisicoes(t *testing.T) {
	fake := &fakeSellerCloud{
		t:     t,
		pages: map[int]scdomain.OrdersPage{1: {}},
	}
	client := newFakeClient(t, fake)

	_, err := client.GetOrders(testRange(), config.Channel{Code: "DF", APICode: 66})

	require.NoError(t, err)
	require.Len(t, fake.orderRequests, 1)
	assert.Equal(t, "Bearer test-token", fake.orderRequests[0].Header.Get("Authorization"))
}
