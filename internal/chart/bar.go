package chart

import (
	"math"
	"slices"

	"github.com/carson-networks/budget-dashboard/internal/model"
)

var barMargin = margin{top: 20, right: 20, bottom: 100, left: 100}

const (
	barClass       = "bar"
	dataLabelClass = "data-label"
	barHighlight   = "grey"
	barTicks       = 5
	dataLabelSize  = 20
)

// BarPlot draws a vertical bar per category, tallest first, into the canvas at props.CanvasID.
// Empty or non-finite input leaves the mount point empty.
func BarPlot(canvas *Canvas, props Props) {
	if !accept(canvas, props, "BarPlot") {
		return
	}

	svg, plot := newBarPlot(props)
	plot.update(props.Data)
	canvas.mount(props.CanvasID, svg)
}

// newBarPlot builds the empty frame of a bar chart: axes, captions and the graph bars are joined into.
func newBarPlot(props Props) (*Node, *barPlot) {
	svg := newSVG(props)
	hoverStyle(svg, props.CanvasID, barClass, barHighlight)

	plot := &barPlot{
		props:       props,
		graphWidth:  props.Width - barMargin.left - barMargin.right,
		graphHeight: props.Height - barMargin.top - barMargin.bottom,
	}
	plot.graph = svg.Append("g").
		SetNum("width", plot.graphWidth).
		SetNum("height", plot.graphHeight).
		Set("transform", translate(barMargin.left, barMargin.top))
	plot.xAxis = plot.graph.Append("g").Set("transform", translate(0, plot.graphHeight))
	plot.yAxis = plot.graph.Append("g")

	svg.Append("text").
		Set("class", "x label").
		Set("text-anchor", "end").
		SetNum("x", plot.graphWidth/2+barMargin.left).
		SetNum("y", props.Height-8).
		SetText(props.LabelY)
	svg.Append("text").
		Set("class", "y label").
		Set("text-anchor", "end").
		SetNum("y", 6).
		SetNum("x", -(plot.graphHeight / 2)).
		Set("dy", ".75em").
		Set("transform", rotate(-90)).
		SetText("unidades")

	return svg, plot
}

type barPlot struct {
	props       Props
	graph       *Node
	xAxis       *Node
	yAxis       *Node
	graphWidth  float64
	graphHeight float64
}

// update joins data to the bars already in the graph by id. Bars without a datum are removed, bars
// with one are moved to their new place, and new bars grow from the baseline.
func (p *barPlot) update(data []model.ChartRecord) {
	data = uniqueByID(sortDescending(data))

	x := NewBandScale(ids(data), 0, p.props.Width-100).PaddingInner(0.2).PaddingOuter(0.2)
	y := NewLinearScale(0, maxCount(data), p.graphHeight, 0)

	bars := p.join(barClass, data)
	for _, d := range data {
		pos, _ := x.Position(d.ID)
		top := y.Scale(math.Max(0, d.Count))
		height := p.graphHeight - top

		bar, ok := bars[d.ID]
		if ok {
			oldTop, oldHeight := bar.Num("y"), bar.Num("height")
			moved := num(oldTop) != num(top) || num(oldHeight) != num(height)
			bar.Children = slices.DeleteFunc(bar.Children, ByName("animate"))
			bar.SetNum("width", x.Bandwidth()).
				Set("fill", p.props.Color).
				SetNum("x", pos).
				SetNum("y", top).
				SetNum("height", height)
			if moved {
				animate(bar, "y", oldTop, top)
				animate(bar, "height", oldHeight, height)
			}
		} else {
			bar = p.graph.Append("rect")
			bar.key = d.ID
			bar.Set("class", barClass).
				SetNum("width", x.Bandwidth()).
				Set("fill", p.props.Color).
				SetNum("x", pos).
				SetNum("y", top).
				SetNum("height", height)
			animateTween(bar, "width", Interpolate(0, x.Bandwidth()))
			animate(bar, "y", p.graphHeight, top)
			animate(bar, "height", 0, height)
		}
		tooltip(bar, d)
	}
	p.order(barClass, data)

	labels := p.join(dataLabelClass, data)
	for _, d := range data {
		pos, _ := x.Position(d.ID)
		top := y.Scale(math.Max(0, d.Count))

		label, ok := labels[d.ID]
		if !ok {
			label = p.graph.Append("g").Set("class", dataLabelClass)
			label.key = d.ID
			revealAfterTransition(label)
		}
		label.Children = slices.DeleteFunc(label.Children, func(n *Node) bool { return n.Name != "set" })
		label.Append("rect").
			Set("class", "data-label-bg").
			SetNum("x", pos).
			SetNum("y", top-dataLabelSize).
			SetNum("width", x.Bandwidth()).
			SetNum("height", dataLabelSize).
			Set("fill", "white").
			Set("opacity", "0.8")
		label.Append("text").
			SetNum("x", pos+x.Bandwidth()/2).
			SetNum("y", top-10).
			Set("fill", "black").
			Set("style", "font-size: 9px; font-weight: normal; text-anchor: middle").
			SetText(formatCount(d.Count))
	}
	p.order(dataLabelClass, data)

	bottomAxis(p.xAxis, x)
	for _, text := range p.xAxis.FindAll(ByName("text")) {
		text.Set("transform", rotate(p.props.RotateTextX)).
			Set("text-anchor", "end").
			Set("fill", "black")
	}
	leftAxis(p.yAxis, y, barTicks)
}

// join returns the graph's nodes of class keyed by datum id, removing those whose id left data.
func (p *barPlot) join(class string, data []model.ChartRecord) map[string]*Node {
	wanted := make(map[string]bool, len(data))
	for _, d := range data {
		wanted[d.ID] = true
	}

	joined := map[string]*Node{}
	for _, n := range slices.Clone(p.graph.Children) {
		if !n.HasClass(class) {
			continue
		}
		if _, dup := joined[n.key]; dup || !wanted[n.key] {
			n.Remove()
			continue
		}
		joined[n.key] = n
	}
	return joined
}

// order moves the nodes of class to the end of the graph in data order.
func (p *barPlot) order(class string, data []model.ChartRecord) {
	nodes := map[string]*Node{}
	for _, n := range p.graph.Children {
		if n.HasClass(class) {
			nodes[n.key] = n
		}
	}
	for _, d := range data {
		if n, ok := nodes[d.ID]; ok {
			p.graph.AppendNode(n)
			delete(nodes, d.ID)
		}
	}
}
