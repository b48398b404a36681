package main

import (
	"context"

	"github.com/sirupsen/logrus"

	server_config "github.com/carson-networks/budget-dashboard/internal/config"
	"github.com/carson-networks/budget-dashboard/internal/logging"
	"github.com/carson-networks/budget-dashboard/internal/storage"
	"github.com/carson-networks/budget-dashboard/internal/storage/mongostore"
)

func main() {
	logger := logging.SetupLogging()

	env, err := server_config.ProcessEnvironmentVariables()
	if err != nil {
		logger.WithError(err).Fatal("ProcessEnvironmentVariables")
		return
	}

	conn := storage.NewConnection(storage.ConnectionConfig{
		URI:            env.MongoConnectionString,
		Database:       env.MongoDatabase,
		ConnectTimeout: env.MongoConnectTimeout,
	}, logger)

	ctx := context.Background()
	result, err := mongostore.Migrate(ctx, conn, logger)
	if err != nil {
		logger.WithError(err).Fatal("mongostore.Migrate")
		return
	}
	defer func() {
		_ = conn.Disconnect(ctx)
	}()

	logger.WithFields(logrus.Fields{
		"database":             env.MongoDatabase,
		"preMigrationVersion":  result.PreMigrationVersion,
		"postMigrationVersion": result.PostMigrationVersion,
	}).Info("Migration status")
}
