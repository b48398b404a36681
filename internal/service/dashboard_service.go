package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-dashboard/internal/chart"
	"github.com/carson-networks/budget-dashboard/internal/model"
	"github.com/carson-networks/budget-dashboard/internal/storage"
	"github.com/carson-networks/budget-dashboard/internal/storage/transaction"
)

// DashboardService turns persisted transactions into the dashboard charts.
type DashboardService struct {
	storage *storage.Storage
	canvas  *chart.Canvas
	panels  []Panel
	logger  *logrus.Logger
}

// NewDashboardService creates a DashboardService drawing DashboardPanels.
func NewDashboardService(store *storage.Storage, canvas *chart.Canvas, logger *logrus.Logger) *DashboardService {
	return &DashboardService{
		storage: store,
		canvas:  canvas,
		panels:  DashboardPanels,
		logger:  logger,
	}
}

// Aggregate returns one record per transaction type with the given credit flag.
func (s *DashboardService) Aggregate(ctx context.Context, credit bool, metric transaction.Metric) ([]model.ChartRecord, error) {
	return s.storage.Transactions.Aggregate(ctx, transaction.AggregateQuery{Credit: credit, Metric: metric})
}

// Render aggregates every panel and draws it. Nothing is drawn unless all aggregations succeed.
func (s *DashboardService) Render(ctx context.Context, metric transaction.Metric) ([]RenderedPanel, error) {
	if metric == "" {
		metric = transaction.MetricCount
	}

	records := make([][]model.ChartRecord, len(s.panels))
	for i, panel := range s.panels {
		data, err := s.Aggregate(ctx, panel.Credit, metric)
		if err != nil {
			return nil, fmt.Errorf("aggregating %s: %w", panel.CanvasID, err)
		}
		records[i] = data
	}

	rendered := make([]RenderedPanel, 0, len(s.panels))
	for i, panel := range s.panels {
		render, ok := chart.RendererFor(panel.Kind)
		if !ok {
			return nil, fmt.Errorf("panel %s: unknown chart kind %q", panel.CanvasID, panel.Kind)
		}
		render(s.canvas, panel.props(records[i]))

		_, drawn := s.canvas.Drawing(panel.CanvasID)
		rendered = append(rendered, RenderedPanel{
			CanvasID: panel.CanvasID,
			Kind:     panel.Kind,
			Records:  records[i],
			Drawn:    drawn,
		})
	}

	s.logger.WithFields(logrus.Fields{
		"metric": metric,
		"panels": len(rendered),
	}).Info("DashboardService.Render.complete")
	return rendered, nil
}
