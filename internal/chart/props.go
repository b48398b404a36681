package chart

import (
	"cmp"
	"regexp"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-dashboard/internal/model"
)

// Props is everything a renderer needs. The drawing is mounted at CanvasID.
type Props struct {
	Data        []model.ChartRecord `json:"data" yaml:"data" doc:"Categories to draw"`
	CanvasID    string              `json:"canvasId" yaml:"canvasId" doc:"Mount point the drawing replaces"`
	Width       float64             `json:"width" yaml:"width" doc:"Drawing width in pixels"`
	Height      float64             `json:"height" yaml:"height" doc:"Drawing height in pixels"`
	Color       string              `json:"color" yaml:"color" doc:"Fill color of bars or arcs"`
	RotateTextX float64             `json:"rotateTextX" yaml:"rotateTextX" doc:"Rotation in degrees of category tick labels"`
	LabelY      string              `json:"labelY" yaml:"labelY" doc:"Caption under the category axis"`
}

type margin struct {
	top, right, bottom, left float64
}

// Renderer draws props into canvas. It returns nothing; the result is only observable on the canvas.
type Renderer func(canvas *Canvas, props Props)

// CanvasIDPattern is the expression every mount point must match, so that it works both as an
// XML id and as a CSS selector.
const CanvasIDPattern = `^[A-Za-z][A-Za-z0-9_-]*$`

var canvasIDPattern = regexp.MustCompile(CanvasIDPattern)

func ValidCanvasID(id string) bool {
	return canvasIDPattern.MatchString(id)
}

// accept clears the mount point and reports whether props hold something drawable. A mount point
// that does not match CanvasIDPattern is refused and nothing is cleared.
func accept(canvas *Canvas, props Props, renderer string) bool {
	if !ValidCanvasID(props.CanvasID) {
		canvas.logger.WithField("canvasId", props.CanvasID).Warn(renderer + ".input.invalid canvas id")
		return false
	}
	canvas.Clear(props.CanvasID)

	if len(props.Data) == 0 {
		return false
	}
	for _, d := range props.Data {
		if !d.Valid() {
			canvas.logger.WithFields(logrus.Fields{
				"canvasId": props.CanvasID,
				"id":       d.ID,
			}).Warn(renderer + ".input.non-finite count")
			return false
		}
	}
	return true
}

// sortDescending orders a copy of data by count, largest first. Ties keep their input order.
func sortDescending(data []model.ChartRecord) []model.ChartRecord {
	sorted := slices.Clone(data)
	slices.SortStableFunc(sorted, func(a, b model.ChartRecord) int {
		return cmp.Compare(b.Count, a.Count)
	})
	return sorted
}

// uniqueByID keeps the first record of every id.
func uniqueByID(data []model.ChartRecord) []model.ChartRecord {
	seen := make(map[string]bool, len(data))
	out := make([]model.ChartRecord, 0, len(data))
	for _, d := range data {
		if seen[d.ID] {
			continue
		}
		seen[d.ID] = true
		out = append(out, d)
	}
	return out
}

func maxCount(data []model.ChartRecord) float64 {
	m := 0.0
	for _, d := range data {
		m = max(m, d.Count)
	}
	return m
}

func ids(data []model.ChartRecord) []string {
	out := make([]string, len(data))
	for i, d := range data {
		out[i] = d.ID
	}
	return out
}

func newSVG(props Props) *Node {
	return NewNode("svg").
		Set("xmlns", "http://www.w3.org/2000/svg").
		Set("id", props.CanvasID).
		SetNum("width", props.Width).
		SetNum("height", props.Height).
		Set("viewBox", "0 0 "+num(props.Width)+" "+num(props.Height)).
		Set("preserveAspectRatio", "xMidYMid meet")
}

// hoverStyle highlights the hovered shape. Leaving it restores the fill attribute.
func hoverStyle(svg *Node, canvasID, class, color string) {
	svg.Append("style").SetText("#" + canvasID + " ." + class + ":hover { fill: " + color + "; }")
}

func tooltip(shape *Node, d model.ChartRecord) {
	text := d.ID + "\n" + formatCount(d.Count) + " unidades"
	for _, c := range shape.ChildrenNamed("title") {
		c.SetText(text)
		return
	}
	shape.Append("title").SetText(text)
}

func translate(x, y float64) string {
	return "translate(" + num(x) + "," + num(y) + ")"
}

func rotate(deg float64) string {
	return "rotate(" + num(deg) + ")"
}

const (
	KindBar      = "bar"
	KindCircular = "circular"
)

var renderers = map[string]Renderer{
	KindBar:      BarPlot,
	KindCircular: CircularBarPlot,
}

// RendererFor returns the renderer registered under kind.
func RendererFor(kind string) (Renderer, bool) {
	r, ok := renderers[kind]
	return r, ok
}
