package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/budget-dashboard/api"
	"github.com/carson-networks/budget-dashboard/internal/chart"
	"github.com/carson-networks/budget-dashboard/internal/config"
	"github.com/carson-networks/budget-dashboard/internal/events"
	"github.com/carson-networks/budget-dashboard/internal/logging"
	"github.com/carson-networks/budget-dashboard/internal/operator"
	"github.com/carson-networks/budget-dashboard/internal/service"
	"github.com/carson-networks/budget-dashboard/internal/storage"
	"github.com/carson-networks/budget-dashboard/internal/storage/mongostore"
	"github.com/carson-networks/budget-dashboard/internal/store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := logging.SetupLogging()
	logger.Info("budget-dashboard starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logger.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn := storage.NewConnection(storage.ConnectionConfig{
		URI:            envConfig.MongoConnectionString,
		Database:       envConfig.MongoDatabase,
		ConnectTimeout: envConfig.MongoConnectTimeout,
	}, logger)

	if envConfig.MigrateOnStart {
		if _, err := mongostore.Migrate(ctx, conn, logger); err != nil {
			logger.WithError(err).Fatal("mongostore.Migrate")
			return
		}
	}

	var publisher events.Publisher = events.NoopPublisher{}
	if envConfig.AMQPURL != "" {
		amqpPublisher, err := events.NewAMQPPublisher(envConfig.AMQPURL, envConfig.AMQPExchange, logger)
		if err != nil {
			logger.WithError(err).Fatal("events.NewAMQPPublisher")
			return
		}
		publisher = amqpPublisher
	}

	dbStorage := mongostore.NewStorage(conn)
	op := operator.NewOperatorDelegator(dbStorage, envConfig.OperatorWorkers,
		operator.WithQueueSize(envConfig.OperatorQueueSize),
		operator.WithPublisher(publisher),
		operator.WithLogger(logger),
	)
	op.Start()

	domainStore := store.New(op, logger)
	if err := domainStore.Hydrate(ctx); err != nil {
		// The database may not be configured yet; the store starts empty and writes retry the connection.
		logger.WithError(err).Warn("Store.Hydrate.failed")
	}

	canvas := chart.NewCanvas(logger)
	httpRest := &api.Rest{
		Logger:     logger,
		Port:       envConfig.HTTPPort,
		Connection: conn,
		Store:      domainStore,
		Service:    service.NewService(dbStorage, canvas, logger),
		Canvas:     canvas,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(httpRest.Serve)
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpRest.Shutdown(shutdownCtx)
	})
	if err := g.Wait(); err != nil {
		logger.WithError(err).Error("budget-dashboard.serve")
	}

	shutdown(logger, op, publisher, conn)
}

// shutdown drains pending writes before the connection they need is closed.
func shutdown(logger *logrus.Logger, op *operator.OperatorDelegator, publisher events.Publisher, conn *storage.Connection) {
	op.Stop()
	if err := publisher.Close(); err != nil {
		logger.WithError(err).Warn("events.Publisher.Close")
	}
	if conn.IsConnected() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = conn.Disconnect(ctx)
	}
	logger.Info("budget-dashboard stopped")
}
