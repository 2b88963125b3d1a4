package interp

import (
	"math"

	"github.com/chrisns/gcodepulse/internal/fixedpoint"
	"github.com/chrisns/gcodepulse/internal/machine"
)

// Arc decomposes a circular move in the XY plane from cur to next into an
// ordered pulse stream. i, j are the arc center offset relative to cur;
// clockwise selects G2 (true) vs G3 (false, counterclockwise).
//
// The angle is swept in fixed-point, at a resolution chosen as the product
// of the X and Y steps-per-unit so the angular grid is finer than the
// coordinate grid; at each tick the trig output is quantized back to
// per-axis fixed-point before being compared with the current cursor.
// Fixed-point angle accumulation only controls iteration count and does not
// itself guarantee the cursor lands exactly on next's coordinates, so a
// final clamp walks the cursor the rest of the way onto the target lattice
// point after the sweep.
func Arc(cur, next machine.ToolState, i, j float64, clockwise bool, cfg machine.ToolConfig, emit func(Command)) {
	cx := cur.X + i
	cy := cur.Y + j
	r := math.Sqrt(i*i + j*j)

	theta0 := math.Atan2(-j, -i)
	theta1 := math.Atan2(next.Y-cy, next.X-cx)
	if clockwise {
		theta1 -= 2 * math.Pi
	}

	angleRes := cfg.StepsPerUnit[machine.AxisX] * cfg.StepsPerUnit[machine.AxisY]
	thetaStart := fixedpoint.New(theta0, angleRes)
	thetaStop := fixedpoint.New(theta1, angleRes)

	if next.Feedrate != cur.Feedrate {
		emit(FeedrateCommand(next.Feedrate))
	}

	xRes := cfg.StepsPerUnit[machine.AxisX]
	yRes := cfg.StepsPerUnit[machine.AxisY]
	curX := fixedpoint.New(cur.X, xRes)
	curY := fixedpoint.New(cur.Y, yRes)

	step := int64(1)
	if thetaStop.Raw < thetaStart.Raw {
		step = -1
	}

	for th := thetaStart; (step > 0 && th.Raw <= thetaStop.Raw) || (step < 0 && th.Raw >= thetaStop.Raw); th = th.Increment(step) {
		angle := th.Value()
		tx := cx + r*math.Cos(angle)
		ty := cy + r*math.Sin(angle)

		targetX := fixedpoint.New(tx, xRes)
		targetY := fixedpoint.New(ty, yRes)

		curX = stepAxis(curX, targetX, machine.AxisX, emit)
		curY = stepAxis(curY, targetY, machine.AxisY, emit)
	}

	finalX := fixedpoint.New(next.X, xRes)
	finalY := fixedpoint.New(next.Y, yRes)
	curX = stepAxis(curX, finalX, machine.AxisX, emit)
	curY = stepAxis(curY, finalY, machine.AxisY, emit)

	emit(DoneCommand())
}
