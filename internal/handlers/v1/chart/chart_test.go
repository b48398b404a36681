package chart

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-dashboard/internal/chart"
)

func newTestAPI(t *testing.T) (humatest.TestAPI, *chart.Canvas) {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	canvas := chart.NewCanvas(logger)

	_, api := humatest.New(t)
	NewRenderChartHandler(canvas).Register(api)
	NewGetChartHandler(canvas).Register(api)
	return api, canvas
}

func incomesBody() RenderChartBody {
	return RenderChartBody{
		Data: []ChartRecord{
			{ID: "A", Count: 38},
			{ID: "B", Count: 73},
		},
		CanvasID: "incomes_plot",
		Width:    300,
		Height:   300,
		Color:    "blue",
		LabelY:   "incomes",
	}
}

func TestHTTP_RenderBarChart(t *testing.T) {
	api, canvas := newTestAPI(t)

	resp := api.Post("/v1/charts/bar", incomesBody())

	assert.Equal(t, http.StatusOK, resp.Code)
	var body RenderChartResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, RenderChartResponseBody{CanvasID: "incomes_plot", Drawn: true}, body)

	root, ok := canvas.Drawing("incomes_plot")
	require.True(t, ok)
	assert.Len(t, root.FindAll(chart.ByClass("bar")), 2)
}

func TestHTTP_RenderCircularChart(t *testing.T) {
	api, canvas := newTestAPI(t)
	body := incomesBody()
	body.CanvasID = "outcomes_plot"

	resp := api.Post("/v1/charts/circular", body)

	assert.Equal(t, http.StatusOK, resp.Code)
	root, ok := canvas.Drawing("outcomes_plot")
	require.True(t, ok)
	assert.Len(t, root.FindAll(chart.ByClass("arc")), 2)
}

func TestHTTP_RenderChart_EmptyDataClears(t *testing.T) {
	api, canvas := newTestAPI(t)
	api.Post("/v1/charts/bar", incomesBody())

	body := incomesBody()
	body.Data = []ChartRecord{}
	resp := api.Post("/v1/charts/bar", body)

	assert.Equal(t, http.StatusOK, resp.Code)
	var out RenderChartResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.False(t, out.Drawn)
	assert.Empty(t, canvas.IDs())
}

func TestHTTP_RenderChart_UnknownKind(t *testing.T) {
	api, canvas := newTestAPI(t)

	// enum:"bar,circular" is checked before the handler runs.
	resp := api.Post("/v1/charts/pie", incomesBody())

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	assert.Empty(t, canvas.IDs())
}

func TestHTTP_RenderChart_InvalidCanvasID(t *testing.T) {
	api, _ := newTestAPI(t)
	body := incomesBody()
	body.CanvasID = "has space"

	resp := api.Post("/v1/charts/bar", body)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestHTTP_GetChart(t *testing.T) {
	api, _ := newTestAPI(t)
	api.Post("/v1/charts/bar", incomesBody())

	resp := api.Get("/v1/charts/incomes_plot")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "image/svg+xml", resp.Header().Get("Content-Type"))
	svg := resp.Body.String()
	assert.True(t, strings.HasPrefix(svg, "<?xml"))
	assert.Contains(t, svg, `id="incomes_plot"`)
}

func TestHTTP_GetChart_NotDrawn(t *testing.T) {
	api, _ := newTestAPI(t)

	resp := api.Get("/v1/charts/outcomes_plot")

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
