package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-dashboard/internal/chart"
	"github.com/carson-networks/budget-dashboard/internal/model"
	"github.com/carson-networks/budget-dashboard/internal/operator"
	"github.com/carson-networks/budget-dashboard/internal/service"
	"github.com/carson-networks/budget-dashboard/internal/storage"
	"github.com/carson-networks/budget-dashboard/internal/storage/transaction"
	"github.com/carson-networks/budget-dashboard/internal/storage/transactiontype"
	"github.com/carson-networks/budget-dashboard/internal/store"
)

type testServer struct {
	handler  http.Handler
	operator *operator.OperatorDelegator
	types    *transactiontype.MockITransactionTypeRepository
	txs      *transaction.MockITransactionRepository
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	s := &testServer{
		types: transactiontype.NewMockITransactionTypeRepository(t),
		txs:   transaction.NewMockITransactionRepository(t),
	}
	dbStorage := &storage.Storage{
		Connection:       storage.NewConnection(storage.ConnectionConfig{URI: "mongodb://unused"}, logger),
		TransactionTypes: s.types,
		Transactions:     s.txs,
	}
	s.operator = operator.NewOperatorDelegator(dbStorage, 1, operator.WithLogger(logger))
	s.operator.Start()
	t.Cleanup(s.operator.Stop)

	canvas := chart.NewCanvas(logger)
	rest := &Rest{
		Logger:     logger,
		Port:       "0",
		Connection: dbStorage.Connection,
		Store:      store.New(s.operator, logger),
		Service:    service.NewService(dbStorage, canvas, logger),
		Canvas:     canvas,
	}
	s.handler = rest.Handler()
	return s
}

func (s *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	return w
}

func TestRoutes_Status(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/status", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"database":"disconnected"`)
}

func TestRoutes_TransactionTypeIsVisibleBeforeItIsWritten(t *testing.T) {
	s := newTestServer(t)
	salary := model.NewTransactionType("A", "Salary", true)
	s.types.EXPECT().Add(mock.Anything, salary).Return(nil).Once()

	w := s.do(t, http.MethodPost, "/v1/transaction-types", map[string]any{
		"id": "A", "description": "Salary", "isCredit": true,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(t, http.MethodGet, "/v1/transaction-types", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"A"`)

	s.operator.Stop()
}

func TestRoutes_TransactionNeedsKnownType(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/v1/transactions", map[string]any{
		"transactionTypeID": "missing", "amount": "10",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRoutes_DashboardThenSVG(t *testing.T) {
	s := newTestServer(t)
	s.txs.EXPECT().Aggregate(mock.Anything, transaction.AggregateQuery{Credit: true, Metric: transaction.MetricCount}).
		Return([]model.ChartRecord{{ID: "salary", Count: 3}}, nil)
	s.txs.EXPECT().Aggregate(mock.Anything, transaction.AggregateQuery{Credit: false, Metric: transaction.MetricCount}).
		Return([]model.ChartRecord{{ID: "rent", Count: 12}, {ID: "gym", Count: 4}}, nil)

	w := s.do(t, http.MethodPost, "/v1/dashboard/render", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(t, http.MethodGet, "/v1/charts/outcomes_plot", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/svg+xml", w.Header().Get("Content-Type"))
	assert.Equal(t, 2, strings.Count(w.Body.String(), `class="arc"`))

	w = s.do(t, http.MethodGet, "/v1/charts/incomes_plot", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
