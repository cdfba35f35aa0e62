package array

import "testing"

func TestNewDenseZeroFilled(t *testing.T) {
	d, err := NewDense[float64](OfLengths(2, 3))
	if err != nil {
		t.Fatalf("NewDense failed: %v", err)
	}
	if d.NumElements() != 6 {
		t.Errorf("NumElements = %d, want 6", d.NumElements())
	}
	for i, v := range d.Data() {
		if v != 0 {
			t.Errorf("Data()[%d] = %v, want 0", i, v)
		}
	}
}

func TestNewDenseInvalidAxes(t *testing.T) {
	if _, err := NewDense[float64](OfLengths(2, 0)); err == nil {
		t.Error("NewDense with empty axis should fail")
	}
}

func TestFromSlice(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	d, err := FromSlice(data, OfLengths(2, 3))
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	// Row-major layout.
	if got := d.At(0, 2); got != 3 {
		t.Errorf("At(0, 2) = %v, want 3", got)
	}
	if got := d.At(1, 0); got != 4 {
		t.Errorf("At(1, 0) = %v, want 4", got)
	}

	// The input slice is copied.
	data[0] = 99
	if got := d.At(0, 0); got != 1 {
		t.Errorf("At(0, 0) = %v after mutating source slice, want 1", got)
	}
}

func TestFromSliceLengthMismatch(t *testing.T) {
	if _, err := FromSlice([]float64{1, 2, 3}, OfLengths(2, 3)); err == nil {
		t.Error("FromSlice with wrong element count should fail")
	}
}

func TestDenseOffsetAxes(t *testing.T) {
	axes := Axes{{First: 1, Last: 2}, {First: -1, Last: 0}}
	d, err := FromSlice([]int{1, 2, 3, 4}, axes)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	tests := []struct {
		ix   []int
		want int
	}{
		{[]int{1, -1}, 1},
		{[]int{1, 0}, 2},
		{[]int{2, -1}, 3},
		{[]int{2, 0}, 4},
	}
	for _, tt := range tests {
		if got := d.At(tt.ix...); got != tt.want {
			t.Errorf("At(%v) = %d, want %d", tt.ix, got, tt.want)
		}
	}

	d.Set(42, 2, 0)
	if got := d.Linear(3); got != 42 {
		t.Errorf("Linear(3) = %d after Set(42, 2, 0), want 42", got)
	}
}

func TestDenseScalar(t *testing.T) {
	s := Scalar(7.5)
	if len(s.Axes()) != 0 {
		t.Errorf("Scalar rank = %d, want 0", len(s.Axes()))
	}
	if got := s.At(); got != 7.5 {
		t.Errorf("At() = %v, want 7.5", got)
	}
	s.Set(2.5)
	if got := s.Linear(0); got != 2.5 {
		t.Errorf("Linear(0) = %v, want 2.5", got)
	}
}

func TestDenseOutOfBoundsPanics(t *testing.T) {
	d := Vector(1.0, 2.0)

	assertPanics(t, "index past end", func() { d.At(2) })
	assertPanics(t, "wrong rank", func() { d.At(0, 0) })
	assertPanics(t, "index below offset", func() {
		o, _ := NewDense[float64](Axes{{First: 1, Last: 2}})
		o.At(0)
	})
}

func TestDenseClone(t *testing.T) {
	d := Vector(1.0, 2.0, 3.0)
	c := d.Clone()
	c.SetLinear(0, 99)
	if d.Linear(0) != 1 {
		t.Errorf("Clone shares data with original")
	}
	if !c.Axes().Equal(d.Axes()) {
		t.Errorf("Clone axes = %v, want %v", c.Axes(), d.Axes())
	}
}

func TestDenseReshape(t *testing.T) {
	d := Vector(1.0, 2.0, 3.0, 4.0, 5.0, 6.0)
	m, err := d.Reshape(OfLengths(2, 3))
	if err != nil {
		t.Fatalf("Reshape failed: %v", err)
	}
	if got := m.At(1, 1); got != 5 {
		t.Errorf("At(1, 1) = %v, want 5", got)
	}

	// Reshape shares data.
	m.Set(42, 0, 0)
	if d.Linear(0) != 42 {
		t.Error("Reshape should share the backing data")
	}

	if _, err := d.Reshape(OfLengths(4)); err == nil {
		t.Error("Reshape to a different element count should fail")
	}
}

func TestVector(t *testing.T) {
	v := Vector(2, 3, 5)
	if !v.Axes().Equal(OfLengths(3)) {
		t.Errorf("Vector axes = %v, want %v", v.Axes(), OfLengths(3))
	}
	if v.IndexStyle() != IndexLinear {
		t.Errorf("Dense IndexStyle = %v, want linear", v.IndexStyle())
	}
}

func assertPanics(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}
