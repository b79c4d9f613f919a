package projection

import "math"

// solveFixed runs a fixed number of Newton iterations from theta0 and
// returns the final estimate. step evaluates the residual and its
// derivative at theta. The budget is never cut short: a fixed iteration
// count buys fixed cost and double-precision-comparable accuracy for all
// physically valid inputs, at the price of wasted steps once converged.
//
// At the projection poles the derivative vanishes and the quotient can turn
// NaN; pole then supplies the exact substitute value.
func solveFixed(theta0 float64, iterations int, step func(theta float64) (f, df float64), pole func() float64) float64 {
	theta := theta0
	for i := 0; i < iterations; i++ {
		f, df := step(theta)
		theta -= f / df
	}
	if math.IsNaN(theta) {
		return pole()
	}
	return theta
}
