package chart

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-dashboard/internal/chart"
	"github.com/carson-networks/budget-dashboard/internal/logging"
)

type RenderChartInput struct {
	Kind string `path:"kind" enum:"bar,circular" doc:"Renderer to draw with"`
	Body RenderChartBody
}

type RenderChartResponseBody struct {
	CanvasID string `json:"canvasId" doc:"Mount point that was drawn or cleared"`
	Drawn    bool   `json:"drawn" doc:"False when the input left nothing to draw"`
}

type RenderChartOutput struct {
	Body RenderChartResponseBody
}

// RenderChartHandler handles POST /v1/charts/{kind}.
type RenderChartHandler struct {
	Canvas *chart.Canvas
}

func NewRenderChartHandler(canvas *chart.Canvas) *RenderChartHandler {
	return &RenderChartHandler{Canvas: canvas}
}

// Register registers the render chart endpoint with the Huma API.
func (h *RenderChartHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "render-chart",
		Method:      http.MethodPost,
		Path:        "/v1/charts/{kind}",
		Summary:     "Render chart",
		Description: "Draws the data into the canvas, replacing whatever was mounted there.",
		Tags:        []string{"Charts"},
	}, h.handle)
}

func (h *RenderChartHandler) handle(ctx context.Context, input *RenderChartInput) (*RenderChartOutput, error) {
	render, ok := chart.RendererFor(input.Kind)
	if !ok {
		return nil, huma.NewError(http.StatusBadRequest, "unknown chart kind "+input.Kind)
	}

	props := input.Body.props()
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("canvasId", props.CanvasID)
		logData.AddData("recordCount", len(props.Data))
		defer logData.AddTiming("renderMs")()
	}

	render(h.Canvas, props)
	_, drawn := h.Canvas.Drawing(props.CanvasID)

	return &RenderChartOutput{Body: RenderChartResponseBody{CanvasID: props.CanvasID, Drawn: drawn}}, nil
}
