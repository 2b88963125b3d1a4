// Package fixedpoint implements exact, deterministic fixed-point coordinates
// for stepper-quantized motion. A coordinate is stored as an integer raw
// count of steps alongside the resolution (steps per unit) it was quantized
// at, so comparisons and increments never accumulate floating-point error.
package fixedpoint

// FixedPoint is a raw integer step count at a given resolution (steps per
// unit). Numeric value = Raw / Resolution.
type FixedPoint struct {
	Raw        int64
	Resolution int32
}

// New quantizes v at the given resolution, truncating toward zero.
func New(v float64, resolution int32) FixedPoint {
	return FixedPoint{
		Raw:        int64(v * float64(resolution)),
		Resolution: resolution,
	}
}

// Value returns the real-valued coordinate this FixedPoint represents.
func (fp FixedPoint) Value() float64 {
	return float64(fp.Raw) / float64(fp.Resolution)
}

// Add returns fp + other, keeping fp's resolution.
func (fp FixedPoint) Add(other FixedPoint) FixedPoint {
	return FixedPoint{Raw: fp.Raw + other.Raw, Resolution: fp.Resolution}
}

// Sub returns fp - other, keeping fp's resolution.
func (fp FixedPoint) Sub(other FixedPoint) FixedPoint {
	return FixedPoint{Raw: fp.Raw - other.Raw, Resolution: fp.Resolution}
}

// MultiplyRaw scales the raw step count by factor, truncating toward zero.
func (fp FixedPoint) MultiplyRaw(factor float64) FixedPoint {
	return FixedPoint{Raw: int64(float64(fp.Raw) * factor), Resolution: fp.Resolution}
}

// Increment advances the raw step count by d (typically -1 or +1).
func (fp FixedPoint) Increment(d int64) FixedPoint {
	return FixedPoint{Raw: fp.Raw + d, Resolution: fp.Resolution}
}

// Equal reports whether two FixedPoint values have the same raw step count.
func (fp FixedPoint) Equal(other FixedPoint) bool {
	return fp.Raw == other.Raw
}

// Sign is the tri-state result of a Direction query.
type Sign int8

const (
	// Negative means fp's raw value is greater than the target's (moving
	// toward the target requires a negative step).
	Negative Sign = -1
	// Positive means fp's raw value is less than the target's (moving
	// toward the target requires a positive step).
	Positive Sign = 1
)

// Direction reports the sign of (target - fp) in raw step units. The second
// return value is false when fp already equals target (no direction).
func (fp FixedPoint) Direction(target FixedPoint) (Sign, bool) {
	switch {
	case fp.Raw == target.Raw:
		return 0, false
	case fp.Raw < target.Raw:
		return Positive, true
	default:
		return Negative, true
	}
}
