package interp

import (
	"math"

	"github.com/chrisns/gcodepulse/internal/fixedpoint"
	"github.com/chrisns/gcodepulse/internal/machine"
)

// Linear decomposes a straight-line move from cur to next into an ordered
// pulse stream, one parametric step at a time. The movement amplitude A is
// the raw-step-unit length of the four-axis delta vector; at parametric
// step s (0..ceil(A)) the target on each axis is start + delta*(s/A),
// quantized in that axis's resolution. Each axis converges toward its
// per-step target independently before s advances, which is what keeps the
// four axes' staircases interleaved on the lattice instead of one axis
// racing ahead of the others.
func Linear(cur, next machine.ToolState, cfg machine.ToolConfig, emit func(Command)) {
	startX := fixedpoint.New(cur.X, cfg.StepsPerUnit[machine.AxisX])
	startY := fixedpoint.New(cur.Y, cfg.StepsPerUnit[machine.AxisY])
	startZ := fixedpoint.New(cur.Z, cfg.StepsPerUnit[machine.AxisZ])
	startE := fixedpoint.New(cur.E, cfg.StepsPerUnit[machine.AxisE])

	stopX := fixedpoint.New(next.X, cfg.StepsPerUnit[machine.AxisX])
	stopY := fixedpoint.New(next.Y, cfg.StepsPerUnit[machine.AxisY])
	stopZ := fixedpoint.New(next.Z, cfg.StepsPerUnit[machine.AxisZ])
	stopE := fixedpoint.New(next.E, cfg.StepsPerUnit[machine.AxisE])

	deltaX := stopX.Sub(startX)
	deltaY := stopY.Sub(startY)
	deltaZ := stopZ.Sub(startZ)
	deltaE := stopE.Sub(startE)

	dx, dy, dz, de := float64(deltaX.Raw), float64(deltaY.Raw), float64(deltaZ.Raw), float64(deltaE.Raw)
	amplitude := math.Sqrt(dx*dx + dy*dy + dz*dz + de*de)

	if next.Feedrate != cur.Feedrate {
		emit(FeedrateCommand(next.Feedrate))
	}

	steps := int64(math.Ceil(amplitude))
	curX, curY, curZ, curE := startX, startY, startZ, startE

	for s := int64(0); s <= steps; s++ {
		t := 0.0
		if amplitude != 0 {
			t = float64(s) / amplitude
		}

		targetX := fixedpoint.FixedPoint{Raw: startX.Raw + deltaX.MultiplyRaw(t).Raw, Resolution: startX.Resolution}
		targetY := fixedpoint.FixedPoint{Raw: startY.Raw + deltaY.MultiplyRaw(t).Raw, Resolution: startY.Resolution}
		targetZ := fixedpoint.FixedPoint{Raw: startZ.Raw + deltaZ.MultiplyRaw(t).Raw, Resolution: startZ.Resolution}
		targetE := fixedpoint.FixedPoint{Raw: startE.Raw + deltaE.MultiplyRaw(t).Raw, Resolution: startE.Resolution}

		curX = stepAxis(curX, targetX, machine.AxisX, emit)
		curY = stepAxis(curY, targetY, machine.AxisY, emit)
		curZ = stepAxis(curZ, targetZ, machine.AxisZ, emit)
		curE = stepAxis(curE, targetE, machine.AxisE, emit)
	}

	emit(DoneCommand())
}
