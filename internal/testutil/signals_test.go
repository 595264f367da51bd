package testutil

import "testing"

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 0, 1.0, 64)
	b := DeterministicNoise(42, 0, 1.0, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
	}
}

func TestDeterministicNoiseDifferentSeeds(t *testing.T) {
	a := DeterministicNoise(1, 0, 1.0, 16)
	b := DeterministicNoise(2, 0, 1.0, 16)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestDeterministicNoiseOffset(t *testing.T) {
	n := DeterministicNoise(7, 10, 0.5, 256)
	for i, v := range n {
		if v < 9.5 || v >= 10.5 {
			t.Fatalf("noise[%d] = %v outside [9.5, 10.5)", i, v)
		}
	}
}

func TestRamp(t *testing.T) {
	RequireSliceEqual(t, Ramp(1, 2, 4), []float64{1, 3, 5, 7})
	if len(Ramp(0, 1, 0)) != 0 {
		t.Fatal("Ramp with length 0 should be empty")
	}
}

func TestConstant(t *testing.T) {
	d := Constant(0.5, 4)
	if len(d) != 4 {
		t.Fatalf("len = %d, want 4", len(d))
	}
	for i, v := range d {
		if v != 0.5 {
			t.Fatalf("Constant[%d] = %v, want 0.5", i, v)
		}
	}
}

func TestClone(t *testing.T) {
	src := []float64{1, 2, 3}
	c := Clone(src)
	RequireSliceEqual(t, c, src)
	c[0] = 99
	if src[0] != 1 {
		t.Fatal("Clone shares storage with its source")
	}
	if Clone(nil) != nil {
		t.Fatal("Clone(nil) should be nil")
	}
}
