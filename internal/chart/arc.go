package chart

import (
	"math"
	"strings"
)

const (
	arcEpsilon  = 1e-12
	pathEpsilon = 1e-6
	tau         = 2 * math.Pi
)

// path accumulates SVG path commands.
type path struct {
	b        strings.Builder
	hasPoint bool
	x1, y1   float64
}

func (p *path) moveTo(x, y float64) {
	p.b.WriteString("M" + num(x) + "," + num(y))
	p.hasPoint, p.x1, p.y1 = true, x, y
}

func (p *path) lineTo(x, y float64) {
	p.b.WriteString("L" + num(x) + "," + num(y))
	p.hasPoint, p.x1, p.y1 = true, x, y
}

func (p *path) closePath() {
	if p.hasPoint {
		p.b.WriteString("Z")
	}
}

// arc draws a circular arc around (x, y), counter-clockwise when ccw is set.
func (p *path) arc(x, y, r, a0, a1 float64, ccw bool) {
	dx, dy := r*math.Cos(a0), r*math.Sin(a0)
	x0, y0 := x+dx, y+dy
	cw := "1"
	da := a1 - a0
	if ccw {
		cw = "0"
		da = a0 - a1
	}

	if !p.hasPoint {
		p.moveTo(x0, y0)
	} else if math.Abs(p.x1-x0) > pathEpsilon || math.Abs(p.y1-y0) > pathEpsilon {
		p.lineTo(x0, y0)
	}
	if r == 0 {
		return
	}
	if da < 0 {
		da = math.Mod(da, tau) + tau
	}

	radius := num(r) + "," + num(r) + ",0,"
	switch {
	case da > tau-pathEpsilon:
		p.b.WriteString("A" + radius + "1," + cw + "," + num(x-dx) + "," + num(y-dy))
		p.b.WriteString("A" + radius + "1," + cw + "," + num(x0) + "," + num(y0))
		p.x1, p.y1 = x0, y0
	case da > pathEpsilon:
		large := "0"
		if da >= math.Pi {
			large = "1"
		}
		p.x1, p.y1 = x+r*math.Cos(a1), y+r*math.Sin(a1)
		p.b.WriteString("A" + radius + large + "," + cw + "," + num(p.x1) + "," + num(p.y1))
	}
}

func (p *path) String() string {
	return p.b.String()
}

// Arc describes an annular sector. Angles are in radians, zero at twelve o'clock, growing clockwise.
type Arc struct {
	InnerRadius float64
	OuterRadius float64
	StartAngle  float64
	EndAngle    float64
	PadAngle    float64
	// PadRadius sets the radius at which PadAngle is measured. Nil means sqrt(inner² + outer²).
	PadRadius *float64
}

// Path returns the SVG path data of the sector centred on the origin.
func (a Arc) Path() string {
	var p path

	r0, r1 := a.InnerRadius, a.OuterRadius
	a0, a1 := a.StartAngle-math.Pi/2, a.EndAngle-math.Pi/2
	da := math.Abs(a1 - a0)
	cw := a1 > a0

	if r1 < r0 {
		r0, r1 = r1, r0
	}

	switch {
	case !(r1 > arcEpsilon):
		p.moveTo(0, 0)

	case da > tau-arcEpsilon:
		p.moveTo(r1*math.Cos(a0), r1*math.Sin(a0))
		p.arc(0, 0, r1, a0, a1, !cw)
		if r0 > arcEpsilon {
			p.moveTo(r0*math.Cos(a1), r0*math.Sin(a1))
			p.arc(0, 0, r0, a1, a0, cw)
		}

	default:
		a01, a11, a00, a10 := a0, a1, a0, a1
		da0, da1 := da, da
		ap := a.PadAngle / 2

		rp := 0.0
		if ap > arcEpsilon {
			if a.PadRadius != nil {
				rp = *a.PadRadius
			} else {
				rp = math.Sqrt(r0*r0 + r1*r1)
			}
		}

		if rp > arcEpsilon {
			p0 := math.Asin(rp / r0 * math.Sin(ap))
			p1 := math.Asin(rp / r1 * math.Sin(ap))
			sign := 1.0
			if !cw {
				sign = -1
			}
			if da0 -= p0 * 2; da0 > arcEpsilon {
				p0 *= sign
				a00 += p0
				a10 -= p0
			} else {
				da0 = 0
				a00 = (a0 + a1) / 2
				a10 = a00
			}
			if da1 -= p1 * 2; da1 > arcEpsilon {
				p1 *= sign
				a01 += p1
				a11 -= p1
			} else {
				da1 = 0
				a01 = (a0 + a1) / 2
				a11 = a01
			}
		}

		x01, y01 := r1*math.Cos(a01), r1*math.Sin(a01)
		x10, y10 := r0*math.Cos(a10), r0*math.Sin(a10)

		p.moveTo(x01, y01)
		if da1 > arcEpsilon {
			p.arc(0, 0, r1, a01, a11, !cw)
		}

		if !(r0 > arcEpsilon) || !(da0 > arcEpsilon) {
			p.lineTo(x10, y10)
		} else {
			p.arc(0, 0, r0, a10, a00, cw)
		}
	}

	p.closePath()
	return p.String()
}
