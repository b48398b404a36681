package service

import (
	"github.com/carson-networks/budget-dashboard/internal/chart"
	"github.com/carson-networks/budget-dashboard/internal/model"
)

// Panel is one chart of the dashboard: which transactions feed it and how it is drawn.
type Panel struct {
	CanvasID string
	Kind     string
	Credit   bool
	Width    float64
	Height   float64
	Color    string
	LabelY   string
}

// DashboardPanels are the incomes and outcomes charts of the dashboard screen.
var DashboardPanels = []Panel{
	{CanvasID: "incomes_plot", Kind: chart.KindBar, Credit: true, Width: 300, Height: 300, Color: "blue", LabelY: "incomes"},
	{CanvasID: "outcomes_plot", Kind: chart.KindCircular, Credit: false, Width: 400, Height: 400, Color: "red", LabelY: "outcomes"},
}

func (p Panel) props(data []model.ChartRecord) chart.Props {
	return chart.Props{
		Data:     data,
		CanvasID: p.CanvasID,
		Width:    p.Width,
		Height:   p.Height,
		Color:    p.Color,
		LabelY:   p.LabelY,
	}
}

// RenderedPanel reports what was drawn for one panel.
type RenderedPanel struct {
	CanvasID string
	Kind     string
	Records  []model.ChartRecord
	// Drawn is false when the records left nothing to draw and the canvas was cleared.
	Drawn bool
}
