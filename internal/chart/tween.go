package chart

import (
	"strconv"
	"strings"
	"time"
)

// TransitionDuration is how long entering bars take to reach their size.
const TransitionDuration = 1500 * time.Millisecond

// cubicInOutSpline is EaseCubicInOut expressed as a cubic Bézier for SMIL keySplines.
const cubicInOutSpline = "0.645 0.045 0.355 1"

// tweenSamples is the number of keyframes a sampled tween is cut into.
const tweenSamples = 10

func Interpolate(a, b float64) func(t float64) float64 {
	return func(t float64) float64 {
		return a*(1-t) + b*t
	}
}

// EaseCubicInOut is symmetric cubic easing, slow at both ends.
func EaseCubicInOut(t float64) float64 {
	t *= 2
	if t <= 1 {
		return t * t * t / 2
	}
	t -= 2
	return (t*t*t + 2) / 2
}

func seconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64) + "s"
}

// animate appends an eased SMIL animation of attr from → to. The target keeps its final value after
// the animation ends.
func animate(target *Node, attr string, from, to float64) *Node {
	return target.Append("animate").
		Set("attributeName", attr).
		Set("from", num(from)).
		Set("to", num(to)).
		Set("dur", seconds(TransitionDuration)).
		Set("fill", "freeze").
		Set("calcMode", "spline").
		Set("keyTimes", "0;1").
		Set("keySplines", cubicInOutSpline)
}

// animateTween appends a keyframed animation sampling tween over the eased timeline.
func animateTween(target *Node, attr string, tween func(t float64) float64) *Node {
	values := make([]string, 0, tweenSamples+1)
	keyTimes := make([]string, 0, tweenSamples+1)
	for i := 0; i <= tweenSamples; i++ {
		t := float64(i) / tweenSamples
		values = append(values, num(tween(EaseCubicInOut(t))))
		keyTimes = append(keyTimes, num(t))
	}
	return target.Append("animate").
		Set("attributeName", attr).
		Set("values", strings.Join(values, ";")).
		Set("keyTimes", strings.Join(keyTimes, ";")).
		Set("dur", seconds(TransitionDuration)).
		Set("fill", "freeze")
}

// revealAfterTransition hides target until the transition has ended.
func revealAfterTransition(target *Node) {
	target.Set("visibility", "hidden")
	target.Append("set").
		Set("attributeName", "visibility").
		Set("to", "visible").
		Set("begin", seconds(TransitionDuration)).
		Set("fill", "freeze")
}
