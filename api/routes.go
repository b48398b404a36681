package api

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-dashboard/internal/chart"
	charthandler "github.com/carson-networks/budget-dashboard/internal/handlers/v1/chart"
	dashboardhandler "github.com/carson-networks/budget-dashboard/internal/handlers/v1/dashboard"
	"github.com/carson-networks/budget-dashboard/internal/handlers/v1/status"
	transactionhandler "github.com/carson-networks/budget-dashboard/internal/handlers/v1/transaction"
	transactiontypehandler "github.com/carson-networks/budget-dashboard/internal/handlers/v1/transactiontype"
	"github.com/carson-networks/budget-dashboard/internal/logging"
	"github.com/carson-networks/budget-dashboard/internal/service"
	"github.com/carson-networks/budget-dashboard/internal/storage"
	"github.com/carson-networks/budget-dashboard/internal/store"
)

type Rest struct {
	Logger     *logrus.Logger
	Port       string
	Connection *storage.Connection
	Store      *store.Store
	Service    *service.Service
	Canvas     *chart.Canvas

	once   sync.Once
	server *http.Server
}

// Handler builds the mux serving /status and the huma API.
func (r *Rest) Handler() http.Handler {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler(r.Connection)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	api := humago.New(mux, huma.DefaultConfig("Budget Dashboard API", "1.0.0"))
	api.UseMiddleware(logging.HumaMiddleware(r.Logger))

	transactiontypehandler.NewListTransactionTypesHandler(r.Store).Register(api)
	transactiontypehandler.NewCreateTransactionTypeHandler(r.Store).Register(api)
	transactiontypehandler.NewUpdateTransactionTypeHandler(r.Store).Register(api)
	transactiontypehandler.NewRemoveTransactionTypeHandler(r.Store).Register(api)
	transactiontypehandler.NewSetTransactionTypesHandler(r.Store).Register(api)

	transactionhandler.NewListTransactionsHandler(r.Store).Register(api)
	transactionhandler.NewCreateTransactionHandler(r.Store).Register(api)
	transactionhandler.NewUpdateTransactionHandler(r.Store).Register(api)
	transactionhandler.NewRemoveTransactionHandler(r.Store).Register(api)
	transactionhandler.NewSetTransactionsHandler(r.Store).Register(api)

	charthandler.NewRenderChartHandler(r.Canvas).Register(api)
	charthandler.NewGetChartHandler(r.Canvas).Register(api)

	dashboardhandler.NewRenderDashboardHandler(r.Service.Dashboard).Register(api)

	return mux
}

func (r *Rest) init() {
	r.once.Do(func() {
		r.server = &http.Server{
			Addr:              ":" + r.Port,
			Handler:           r.Handler(),
			ReadTimeout:       time.Duration(30) * time.Second,
			WriteTimeout:      time.Duration(30) * time.Second,
			IdleTimeout:       time.Duration(10) * time.Second,
			ReadHeaderTimeout: time.Duration(10) * time.Second,
		}
	})
}

// Serve listens until Shutdown is called. A closed server is not an error.
func (r *Rest) Serve() error {
	r.init()

	r.Logger.Info("HttpServer.Serve.listening")
	err := r.server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
		return err
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones until ctx expires.
func (r *Rest) Shutdown(ctx context.Context) error {
	r.init()
	return r.server.Shutdown(ctx)
}
