package chart

import (
	"math"
)

// BandScale maps discrete categories to equal bands across a continuous range.
type BandScale struct {
	domain       []string
	index        map[string]int
	r0, r1       float64
	paddingInner float64
	paddingOuter float64
	align        float64

	step      float64
	bandwidth float64
	start     float64
}

func NewBandScale(domain []string, r0, r1 float64) *BandScale {
	s := &BandScale{r0: r0, r1: r1, align: 0.5}
	s.index = map[string]int{}
	for _, d := range domain {
		if _, ok := s.index[d]; ok {
			continue
		}
		s.index[d] = len(s.domain)
		s.domain = append(s.domain, d)
	}
	s.rescale()
	return s
}

func (s *BandScale) PaddingInner(p float64) *BandScale {
	s.paddingInner = math.Min(1, p)
	s.rescale()
	return s
}

func (s *BandScale) PaddingOuter(p float64) *BandScale {
	s.paddingOuter = p
	s.rescale()
	return s
}

// Align positions the outer padding: 0 puts all of it after the last band, 1 before the first.
func (s *BandScale) Align(a float64) *BandScale {
	s.align = math.Max(0, math.Min(1, a))
	s.rescale()
	return s
}

func (s *BandScale) rescale() {
	n := float64(len(s.domain))
	start, stop := s.r0, s.r1
	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}
	s.step = (stop - start) / math.Max(1, n-s.paddingInner+s.paddingOuter*2)
	start += (stop - start - s.step*(n-s.paddingInner)) * s.align
	s.bandwidth = s.step * (1 - s.paddingInner)
	s.start = start
	if reverse {
		s.start = start + s.step*(n-1)
		s.step = -s.step
	}
}

// Position returns the start of the band for category d.
func (s *BandScale) Position(d string) (float64, bool) {
	i, ok := s.index[d]
	if !ok {
		return 0, false
	}
	return s.start + s.step*float64(i), true
}

func (s *BandScale) Bandwidth() float64 {
	return s.bandwidth
}

func (s *BandScale) Step() float64 {
	return math.Abs(s.step)
}

func (s *BandScale) Domain() []string {
	return s.domain
}

func (s *BandScale) Range() (float64, float64) {
	return s.r0, s.r1
}

// LinearScale maps [d0, d1] onto [r0, r1].
type LinearScale struct {
	d0, d1 float64
	r0, r1 float64
}

func NewLinearScale(d0, d1, r0, r1 float64) *LinearScale {
	return &LinearScale{d0: d0, d1: d1, r0: r0, r1: r1}
}

func (s *LinearScale) Scale(v float64) float64 {
	if s.d1 == s.d0 {
		return (s.r0 + s.r1) / 2
	}
	t := (v - s.d0) / (s.d1 - s.d0)
	return s.r0 + t*(s.r1-s.r0)
}

func (s *LinearScale) Range() (float64, float64) {
	return s.r0, s.r1
}

// Ticks returns round values spanning the domain, about count of them.
func (s *LinearScale) Ticks(count int) []float64 {
	return ticks(s.d0, s.d1, count)
}

// RadialScale maps a value so that the area of a ring grows linearly with it.
type RadialScale struct {
	linear *LinearScale
}

func NewRadialScale(d0, d1, r0, r1 float64) *RadialScale {
	return &RadialScale{linear: NewLinearScale(d0, d1, signedSquare(r0), signedSquare(r1))}
}

func (s *RadialScale) Scale(v float64) float64 {
	return signedSqrt(s.linear.Scale(v))
}

func signedSquare(x float64) float64 {
	return math.Copysign(x*x, x)
}

func signedSqrt(x float64) float64 {
	return math.Copysign(math.Sqrt(math.Abs(x)), x)
}

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

func tickSpec(start, stop float64, count float64) (i1, i2, inc float64) {
	step := (stop - start) / math.Max(0, count)
	power := math.Floor(math.Log10(step))
	err := step / math.Pow(10, power)
	factor := 1.0
	switch {
	case err >= e10:
		factor = 10
	case err >= e5:
		factor = 5
	case err >= e2:
		factor = 2
	}

	if power < 0 {
		inc = math.Pow(10, -power) / factor
		i1 = math.Round(start * inc)
		i2 = math.Round(stop * inc)
		if i1/inc < start {
			i1++
		}
		if i2/inc > stop {
			i2--
		}
		inc = -inc
	} else {
		inc = math.Pow(10, power) * factor
		i1 = math.Round(start / inc)
		i2 = math.Round(stop / inc)
		if i1*inc < start {
			i1++
		}
		if i2*inc > stop {
			i2--
		}
	}
	if i2 < i1 && 0.5 <= count && count < 2 {
		return tickSpec(start, stop, count*2)
	}
	return i1, i2, inc
}

func ticks(start, stop float64, count int) []float64 {
	if count <= 0 {
		return nil
	}
	if start == stop {
		return []float64{start}
	}
	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}
	i1, i2, inc := tickSpec(start, stop, float64(count))
	if !(i2 >= i1) {
		return nil
	}

	n := int(i2-i1) + 1
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		var v float64
		if inc < 0 {
			v = (i1 + float64(i)) / -inc
		} else {
			v = (i1 + float64(i)) * inc
		}
		if reverse {
			out[n-1-i] = v
		} else {
			out[i] = v
		}
	}
	return out
}
