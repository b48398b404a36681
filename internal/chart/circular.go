package chart

import (
	"math"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/carson-networks/budget-dashboard/internal/model"
)

var circularMargin = margin{top: 10, right: 20, bottom: 10, left: 0}

const (
	arcClass     = "arc"
	arcHighlight = "red"
	arcPadAngle  = 0.01
	// crowdingBase is how far the inner radius sits below the outer one before categories are counted.
	crowdingBase = 240
	labelGap     = 10
)

// CircularBarPlot draws one annular bar per category around a hole, largest first, clockwise from
// 45°. Categories without an id or with a count of at most 1 are left out.
func CircularBarPlot(canvas *Canvas, props Props) {
	if !accept(canvas, props, "CircularBarPlot") {
		return
	}

	svg := newSVG(props)
	hoverStyle(svg, props.CanvasID, arcClass, arcHighlight)

	graphWidth := props.Width - circularMargin.left - circularMargin.right
	graphHeight := props.Height - circularMargin.top - circularMargin.bottom
	outer, inner := radii(graphWidth, graphHeight, len(props.Data))

	graph := svg.Append("g").
		SetNum("width", graphWidth).
		SetNum("height", graphHeight).
		Set("transform", translate(graphWidth/2+circularMargin.left, graphHeight/2+circularMargin.top))

	drawArcs(graph, props, visibleArcs(props.Data), inner, outer)
	canvas.mount(props.CanvasID, svg)
}

// radii sizes the ring. The hole shrinks as the number of categories n grows; it never goes below
// zero, and falls back to half the outer radius when n would push it past the outer edge.
func radii(graphWidth, graphHeight float64, n int) (outer, inner float64) {
	outer = math.Max(0, math.Min(graphWidth, graphHeight)/2)
	inner = outer - float64(crowdingBase-n)
	switch {
	case inner < 0:
		inner = 0
	case inner >= outer:
		inner = outer / 2
	}
	return outer, inner
}

// visibleArcs drops records without an id or with a count of at most 1 and sorts the rest, largest
// first.
func visibleArcs(data []model.ChartRecord) []model.ChartRecord {
	kept := make([]model.ChartRecord, 0, len(data))
	for _, d := range data {
		if d.ID == "" || d.Count <= 1 {
			continue
		}
		kept = append(kept, d)
	}
	return uniqueByID(sortDescending(kept))
}

func drawArcs(graph *Node, props Props, data []model.ChartRecord, inner, outer float64) {
	x := NewBandScale(ids(data), math.Pi/4, 2*math.Pi+math.Pi/4).Align(0)
	y := NewRadialScale(0, maxCount(data), inner, outer)
	padRadius := inner

	for _, d := range data {
		start, _ := x.Position(d.ID)
		arc := Arc{
			InnerRadius: inner,
			OuterRadius: y.Scale(d.Count),
			StartAngle:  start,
			EndAngle:    start + x.Bandwidth(),
			PadAngle:    arcPadAngle,
			PadRadius:   &padRadius,
		}
		shape := graph.Append("path").
			Set("class", arcClass).
			Set("fill", props.Color).
			Set("d", arc.Path())
		shape.key = d.ID
		tooltip(shape, d)
	}

	labels := graph.Append("g")
	for _, d := range data {
		start, _ := x.Position(d.ID)
		mid := start + x.Bandwidth()/2
		flipped := math.Mod(mid+math.Pi, 2*math.Pi) < math.Pi

		anchor, turn := "start", 0.0
		if flipped {
			anchor, turn = "end", 180
		}

		label := labels.Append("g").
			Set("text-anchor", anchor).
			Set("transform", rotate(mid*180/math.Pi-90)+translate(y.Scale(d.Count)+labelGap, 0))
		label.key = d.ID
		label.Append("text").
			SetText(capitalizeWords(d.ID)).
			Set("transform", rotate(turn)).
			Set("style", "font-size: 11px").
			Set("alignment-baseline", "middle")
	}
}

// capitalizeWords lowercases s and uppercases the first letter of every space separated word.
// Hyphens and apostrophes do not start a new word.
func capitalizeWords(s string) string {
	upper := cases.Upper(language.Und)
	words := strings.Split(cases.Lower(language.Und).String(s), " ")
	for i, w := range words {
		_, size := utf8.DecodeRuneInString(w)
		words[i] = upper.String(w[:size]) + w[size:]
	}
	return strings.Join(words, " ")
}
