package service

import (
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-dashboard/internal/chart"
	"github.com/carson-networks/budget-dashboard/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Dashboard *DashboardService
}

// NewService creates a new Service rendering into canvas from the given storage.
func NewService(store *storage.Storage, canvas *chart.Canvas, logger *logrus.Logger) *Service {
	return &Service{
		Dashboard: NewDashboardService(store, canvas, logger),
	}
}
