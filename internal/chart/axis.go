package chart

import (
	"strconv"
)

const (
	tickSize    = 6
	tickPadding = 3
	// tickOffset keeps one-pixel lines on the pixel grid.
	tickOffset = 0.5
)

// resetAxis styles axis and drops whatever a previous call drew into it.
func resetAxis(axis *Node, anchor string) {
	axis.Children = nil
	axis.Set("fill", "none").
		Set("font-size", "10").
		Set("font-family", "sans-serif").
		Set("text-anchor", anchor)
}

// bottomAxis draws a band axis into axis, with one tick at the centre of each band.
func bottomAxis(axis *Node, x *BandScale) {
	resetAxis(axis, "middle")
	r0, r1 := x.Range()
	axis.Append("path").
		Set("class", "domain").
		Set("stroke", "currentColor").
		Set("d", "M"+num(r0+tickOffset)+","+num(tickSize)+"V"+num(tickOffset)+"H"+num(r1+tickOffset)+"V"+num(tickSize))

	for _, d := range x.Domain() {
		pos, _ := x.Position(d)
		tick := axis.Append("g").
			Set("class", "tick").
			Set("opacity", "1").
			Set("transform", "translate("+num(pos+x.Bandwidth()/2+tickOffset)+",0)")
		tick.Append("line").Set("stroke", "currentColor").SetNum("y2", tickSize)
		tick.Append("text").
			Set("fill", "currentColor").
			SetNum("y", tickSize+tickPadding).
			Set("dy", "0.71em").
			SetText(d)
	}
}

// leftAxis draws a linear axis into axis with about count ticks.
func leftAxis(axis *Node, y *LinearScale, count int) {
	resetAxis(axis, "end")
	r0, r1 := y.Range()
	axis.Append("path").
		Set("class", "domain").
		Set("stroke", "currentColor").
		Set("d", "M"+num(-tickSize)+","+num(r0+tickOffset)+"H"+num(tickOffset)+"V"+num(r1+tickOffset)+"H"+num(-tickSize))

	for _, v := range y.Ticks(count) {
		tick := axis.Append("g").
			Set("class", "tick").
			Set("opacity", "1").
			Set("transform", "translate(0,"+num(y.Scale(v)+tickOffset)+")")
		tick.Append("line").Set("stroke", "currentColor").SetNum("x2", -tickSize)
		tick.Append("text").
			Set("fill", "currentColor").
			SetNum("x", -(tickSize + tickPadding)).
			Set("dy", "0.32em").
			SetText(formatCount(v))
	}
}

// formatCount prints a number the shortest way that reads back exactly.
func formatCount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
