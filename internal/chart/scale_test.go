package chart

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBandScale_Padding(t *testing.T) {
	x := NewBandScale([]string{"A", "B"}, 0, 200).PaddingInner(0.2).PaddingOuter(0.2)

	a, ok := x.Position("A")
	assert.True(t, ok)
	b, _ := x.Position("B")
	assert.InDelta(t, 18.182, a, 0.001)
	assert.InDelta(t, 109.091, b, 0.001)
	assert.InDelta(t, 72.727, x.Bandwidth(), 0.001)

	_, ok = x.Position("C")
	assert.False(t, ok)
}

func TestBandScale_AlignZeroFullTurn(t *testing.T) {
	x := NewBandScale([]string{"A", "B", "C", "D"}, math.Pi/4, 2*math.Pi+math.Pi/4).Align(0)

	a, _ := x.Position("A")
	d, _ := x.Position("D")
	assert.InDelta(t, math.Pi/4, a, 1e-9)
	assert.InDelta(t, math.Pi/4+3*math.Pi/2, d, 1e-9)
	assert.InDelta(t, math.Pi/2, x.Bandwidth(), 1e-9)
}

func TestBandScale_DuplicatesKeepFirstSlot(t *testing.T) {
	x := NewBandScale([]string{"A", "B", "A"}, 0, 100)

	assert.Equal(t, []string{"A", "B"}, x.Domain())
	assert.InDelta(t, 50, x.Step(), 1e-9)
}

func TestBandScale_ReversedRange(t *testing.T) {
	x := NewBandScale([]string{"A", "B"}, 100, 0)

	a, _ := x.Position("A")
	b, _ := x.Position("B")
	assert.InDelta(t, 50, a, 1e-9)
	assert.InDelta(t, 0, b, 1e-9)
}

func TestLinearScale(t *testing.T) {
	y := NewLinearScale(0, 73, 180, 0)

	assert.InDelta(t, 180, y.Scale(0), 1e-9)
	assert.InDelta(t, 0, y.Scale(73), 1e-9)
	assert.InDelta(t, 90, y.Scale(36.5), 1e-9)

	flat := NewLinearScale(0, 0, 180, 0)
	assert.InDelta(t, 90, flat.Scale(0), 1e-9)
}

func TestTicks(t *testing.T) {
	tests := []struct {
		start, stop float64
		count       int
		want        []float64
	}{
		{0, 73, 5, []float64{0, 20, 40, 60}},
		{0, 98, 5, []float64{0, 20, 40, 60, 80}},
		{0, 1, 5, []float64{0, 0.2, 0.4, 0.6, 0.8, 1}},
		{0, 10, 5, []float64{0, 2, 4, 6, 8, 10}},
		{5, 5, 5, []float64{5}},
		{10, 0, 5, []float64{10, 8, 6, 4, 2, 0}},
		{0, 10, 0, nil},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ticks(tt.start, tt.stop, tt.count), "ticks(%v, %v, %d)", tt.start, tt.stop, tt.count)
	}
}

func TestRadialScale(t *testing.T) {
	y := NewRadialScale(0, 100, 0, 10)

	assert.InDelta(t, 0, y.Scale(0), 1e-9)
	assert.InDelta(t, 5, y.Scale(25), 1e-9)
	assert.InDelta(t, 10, y.Scale(100), 1e-9)

	ring := NewRadialScale(0, 100, 30, 50)
	assert.InDelta(t, 30, ring.Scale(0), 1e-9)
	assert.InDelta(t, math.Sqrt(900+0.5*1600), ring.Scale(50), 1e-9)
}

func TestEaseCubicInOut(t *testing.T) {
	assert.InDelta(t, 0, EaseCubicInOut(0), 1e-12)
	assert.InDelta(t, 0.0625, EaseCubicInOut(0.25), 1e-12)
	assert.InDelta(t, 0.5, EaseCubicInOut(0.5), 1e-12)
	assert.InDelta(t, 0.9375, EaseCubicInOut(0.75), 1e-12)
	assert.InDelta(t, 1, EaseCubicInOut(1), 1e-12)
}

func TestInterpolate(t *testing.T) {
	i := Interpolate(0, 72)

	assert.InDelta(t, 0, i(0), 1e-12)
	assert.InDelta(t, 36, i(0.5), 1e-12)
	assert.InDelta(t, 72, i(1), 1e-12)
}

func TestArcPath(t *testing.T) {
	tests := []struct {
		name string
		arc  Arc
		want string
	}{
		{
			name: "pie slice",
			arc:  Arc{OuterRadius: 100, EndAngle: math.Pi / 2},
			want: "M0,-100A100,100,0,0,1,100,0L0,0Z",
		},
		{
			name: "annular sector",
			arc:  Arc{InnerRadius: 50, OuterRadius: 100, EndAngle: math.Pi / 2},
			want: "M0,-100A100,100,0,0,1,100,0L50,0A50,50,0,0,0,0,-50Z",
		},
		{
			name: "zero outer radius",
			arc:  Arc{EndAngle: math.Pi},
			want: "M0,0Z",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.arc.Path())
		})
	}
}

func TestArcPath_PadAngleNarrowsSector(t *testing.T) {
	padRadius := 50.0
	padded := Arc{InnerRadius: 50, OuterRadius: 100, EndAngle: math.Pi / 2, PadAngle: 0.1, PadRadius: &padRadius}

	p := padded.Path()
	assert.NotEqual(t, Arc{InnerRadius: 50, OuterRadius: 100, EndAngle: math.Pi / 2}.Path(), p)
	assert.NotContains(t, p, "M0,-100", "start is pushed clockwise off twelve o'clock")
}
