package interp

import "github.com/chrisns/gcodepulse/internal/fixedpoint"

// stepAxis emits one pulse at a time on axis, moving cur toward target,
// until the two are raw-equal. It is the common per-axis convergence used
// by both the linear DDA walk and the arc angle sweep.
func stepAxis(cur, target fixedpoint.FixedPoint, axis int, emit func(Command)) fixedpoint.FixedPoint {
	for cur.Raw != target.Raw {
		sign, _ := cur.Direction(target)
		if sign == fixedpoint.Positive {
			emit(StepperCommand(axis, 1))
			cur = cur.Increment(1)
		} else {
			emit(StepperCommand(axis, -1))
			cur = cur.Increment(-1)
		}
	}
	return cur
}
