package chart

import (
	"github.com/carson-networks/budget-dashboard/internal/chart"
	"github.com/carson-networks/budget-dashboard/internal/model"
)

// ChartRecord is one category of a chart request.
type ChartRecord struct {
	ID    string  `json:"_id" doc:"Category key, also used as display label"`
	Count float64 `json:"count" doc:"Value drawn for the category"`
}

// RenderChartBody mirrors the renderer props.
type RenderChartBody struct {
	Data        []ChartRecord `json:"data" doc:"Categories to draw, may be empty"`
	CanvasID    string        `json:"canvasId" minLength:"1" pattern:"^[A-Za-z][A-Za-z0-9_-]*$" doc:"Mount point the drawing replaces"`
	Width       float64       `json:"width" minimum:"1" doc:"Drawing width in pixels"`
	Height      float64       `json:"height" minimum:"1" doc:"Drawing height in pixels"`
	Color       string        `json:"color,omitempty" default:"steelblue" doc:"Fill color of bars or arcs"`
	RotateTextX float64       `json:"rotateTextX,omitempty" doc:"Rotation in degrees of category tick labels"`
	LabelY      string        `json:"labelY,omitempty" doc:"Caption under the category axis"`
}

func (b RenderChartBody) props() chart.Props {
	data := make([]model.ChartRecord, len(b.Data))
	for i, d := range b.Data {
		data[i] = model.ChartRecord{ID: d.ID, Count: d.Count}
	}
	return chart.Props{
		Data:        data,
		CanvasID:    b.CanvasID,
		Width:       b.Width,
		Height:      b.Height,
		Color:       b.Color,
		RotateTextX: b.RotateTextX,
		LabelY:      b.LabelY,
	}
}
