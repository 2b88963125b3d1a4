package fixedpoint

import "testing"

func TestNewTruncatesTowardZero(t *testing.T) {
	cases := []struct {
		name string
		v    float64
		res  int32
		want int64
	}{
		{"positive exact", 1.0, 100, 100},
		{"positive fractional truncates down", 1.009, 100, 100},
		{"negative fractional truncates toward zero", -0.009, 100, 0},
		{"negative exact", -1.0, 100, -100},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := New(c.v, c.res)
			if got.Raw != c.want {
				t.Errorf("New(%v, %v).Raw = %v, want %v", c.v, c.res, got.Raw, c.want)
			}
		})
	}
}

func TestIncrementRoundTrip(t *testing.T) {
	fp := New(1.0, 100)
	got := fp.Increment(1).Increment(-1)
	if !got.Equal(fp) {
		t.Errorf("increment round trip = %+v, want %+v", got, fp)
	}
}

func TestAddSubInverse(t *testing.T) {
	a := New(1.5, 100)
	b := New(0.25, 100)
	got := a.Add(b).Sub(b)
	if !got.Equal(a) {
		t.Errorf("add/sub inverse = %+v, want %+v", got, a)
	}
}

func TestDirection(t *testing.T) {
	low := New(0, 100)
	high := New(1, 100)

	if sign, ok := low.Direction(high); !ok || sign != Positive {
		t.Errorf("low.Direction(high) = (%v, %v), want (Positive, true)", sign, ok)
	}
	if sign, ok := high.Direction(low); !ok || sign != Negative {
		t.Errorf("high.Direction(low) = (%v, %v), want (Negative, true)", sign, ok)
	}
	if _, ok := low.Direction(low); ok {
		t.Errorf("low.Direction(low) ok = true, want false")
	}
}

func TestMultiplyRawTruncates(t *testing.T) {
	fp := FixedPoint{Raw: 100, Resolution: 100}
	got := fp.MultiplyRaw(1.009)
	if got.Raw != 100 {
		t.Errorf("MultiplyRaw(1.009).Raw = %v, want 100", got.Raw)
	}
	got = fp.MultiplyRaw(1.5)
	if got.Raw != 150 {
		t.Errorf("MultiplyRaw(1.5).Raw = %v, want 150", got.Raw)
	}
}
