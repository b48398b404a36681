package chart

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-dashboard/internal/chart"
)

type GetChartInput struct {
	CanvasID string `path:"canvasId" doc:"Mount point to read"`
}

type GetChartOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

// GetChartHandler handles GET /v1/charts/{canvasId}, serving the current drawing as SVG.
type GetChartHandler struct {
	Canvas *chart.Canvas
}

func NewGetChartHandler(canvas *chart.Canvas) *GetChartHandler {
	return &GetChartHandler{Canvas: canvas}
}

func (h *GetChartHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-chart",
		Method:      http.MethodGet,
		Path:        "/v1/charts/{canvasId}",
		Summary:     "Get chart",
		Description: "Returns the drawing mounted at the canvas as an SVG document.",
		Tags:        []string{"Charts"},
	}, h.handle)
}

func (h *GetChartHandler) handle(_ context.Context, input *GetChartInput) (*GetChartOutput, error) {
	svg, ok, err := h.Canvas.SVG(input.CanvasID)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to encode chart", err)
	}
	if !ok {
		return nil, huma.NewError(http.StatusNotFound, "nothing is drawn at "+input.CanvasID)
	}
	return &GetChartOutput{ContentType: "image/svg+xml", Body: svg}, nil
}
