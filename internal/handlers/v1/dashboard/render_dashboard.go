package dashboard

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-dashboard/internal/logging"
	"github.com/carson-networks/budget-dashboard/internal/model"
	"github.com/carson-networks/budget-dashboard/internal/service"
	"github.com/carson-networks/budget-dashboard/internal/storage"
	"github.com/carson-networks/budget-dashboard/internal/storage/transaction"
)

type RenderDashboardInput struct {
	Metric string `query:"metric" enum:"count,amount" default:"count" doc:"count of transactions or sum of amounts per type"`
}

// Panel reports one drawn chart of the dashboard.
type Panel struct {
	CanvasID string              `json:"canvasId" doc:"Mount point of the chart, readable at /v1/charts/{canvasId}"`
	Kind     string              `json:"kind" doc:"Renderer used"`
	Drawn    bool                `json:"drawn" doc:"False when there was nothing to draw"`
	Records  []model.ChartRecord `json:"records" doc:"Aggregated records fed to the renderer"`
}

type RenderDashboardResponseBody struct {
	Panels []Panel `json:"panels" doc:"Dashboard charts in display order"`
}

type RenderDashboardOutput struct {
	Body RenderDashboardResponseBody
}

type dashboardRenderer interface {
	Render(ctx context.Context, metric transaction.Metric) ([]service.RenderedPanel, error)
}

// RenderDashboardHandler handles POST /v1/dashboard/render.
type RenderDashboardHandler struct {
	DashboardService dashboardRenderer
}

func NewRenderDashboardHandler(svc dashboardRenderer) *RenderDashboardHandler {
	return &RenderDashboardHandler{DashboardService: svc}
}

// Register registers the render dashboard endpoint with the Huma API.
func (h *RenderDashboardHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "render-dashboard",
		Method:      http.MethodPost,
		Path:        "/v1/dashboard/render",
		Summary:     "Render dashboard",
		Description: "Aggregates incomes and outcomes per transaction type and redraws both dashboard charts.",
		Tags:        []string{"Dashboard"},
	}, h.handle)
}

func (h *RenderDashboardHandler) handle(ctx context.Context, input *RenderDashboardInput) (*RenderDashboardOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("renderDashboardMs")
	}
	rendered, err := h.DashboardService.Render(ctx, transaction.Metric(input.Metric))
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		var configErr *storage.ConfigurationError
		var connErr *storage.ConnectionError
		switch {
		case errors.As(err, &configErr):
			return nil, huma.NewError(http.StatusServiceUnavailable, "database is not configured", err)
		case errors.As(err, &connErr):
			return nil, huma.NewError(http.StatusServiceUnavailable, "database is unavailable", err)
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to render dashboard", err)
	}

	resp := RenderDashboardResponseBody{Panels: make([]Panel, len(rendered))}
	for i, p := range rendered {
		records := p.Records
		if records == nil {
			records = []model.ChartRecord{}
		}
		resp.Panels[i] = Panel{CanvasID: p.CanvasID, Kind: p.Kind, Drawn: p.Drawn, Records: records}
	}
	return &RenderDashboardOutput{Body: resp}, nil
}
