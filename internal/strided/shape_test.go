package strided

import "testing"

func TestNumel(t *testing.T) {
	tests := []struct {
		name  string
		shape []int
		want  int
	}{
		{"rank 0", []int{}, 1},
		{"vector", []int{5}, 5},
		{"matrix", []int{2, 3}, 6},
		{"empty dimension", []int{2, 0, 3}, 0},
		{"negative dimension", []int{2, -1}, 0},
		{"rank 4", []int{2, 3, 4, 5}, 120},
	}
	for _, tt := range tests {
		if got := Numel(tt.shape); got != tt.want {
			t.Errorf("%s: Numel(%v) = %d, want %d", tt.name, tt.shape, got, tt.want)
		}
	}
}

func TestShape2Strides(t *testing.T) {
	tests := []struct {
		name  string
		shape []int
		order Order
		want  []int
	}{
		{"row-major 2x3", []int{2, 3}, RowMajor, []int{3, 1}},
		{"column-major 2x3", []int{2, 3}, ColumnMajor, []int{1, 2}},
		{"row-major 2x3x4", []int{2, 3, 4}, RowMajor, []int{12, 4, 1}},
		{"column-major 2x3x4", []int{2, 3, 4}, ColumnMajor, []int{1, 2, 6}},
		{"vector", []int{7}, RowMajor, []int{1}},
	}
	for _, tt := range tests {
		out := make([]int, len(tt.shape))
		Shape2Strides(tt.shape, tt.order, out)
		for i := range tt.want {
			if out[i] != tt.want[i] {
				t.Errorf("%s: Shape2Strides = %v, want %v", tt.name, out, tt.want)
				break
			}
		}
	}
}

func TestStrides2Offset(t *testing.T) {
	tests := []struct {
		name    string
		shape   []int
		strides []int
		want    int
	}{
		{"all positive", []int{2, 3}, []int{3, 1}, 0},
		{"negative vector", []int{3}, []int{-8}, 16},
		{"mixed signs", []int{2, 3}, []int{3, -1}, 2},
		{"all negative", []int{2, 3}, []int{-3, -1}, 5},
	}
	for _, tt := range tests {
		if got := Strides2Offset(tt.shape, tt.strides); got != tt.want {
			t.Errorf("%s: Strides2Offset = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestStrides2Order(t *testing.T) {
	tests := []struct {
		name    string
		strides []int
		want    OrderClass
	}{
		{"rank 0", []int{}, OrderNone},
		{"single axis", []int{1}, OrderBoth},
		{"row-major", []int{3, 1}, OrderRowMajor},
		{"column-major", []int{1, 2}, OrderColumnMajor},
		{"row-major negative", []int{-3, -1}, OrderRowMajor},
		{"constant", []int{2, 2}, OrderBoth},
		{"neither", []int{1, 4, 2}, OrderNone},
	}
	for _, tt := range tests {
		if got := Strides2Order(tt.strides); got != tt.want {
			t.Errorf("%s: Strides2Order(%v) = %d, want %d", tt.name, tt.strides, got, tt.want)
		}
	}
}

func TestIterationOrder(t *testing.T) {
	tests := []struct {
		strides []int
		want    int
	}{
		{[]int{3, 1}, 1},
		{[]int{0, 1}, 1},
		{[]int{-3, -1}, -1},
		{[]int{3, -1}, 0},
		{[]int{}, 1},
	}
	for _, tt := range tests {
		if got := IterationOrder(tt.strides); got != tt.want {
			t.Errorf("IterationOrder(%v) = %d, want %d", tt.strides, got, tt.want)
		}
	}
}

func TestMinmaxViewBufferIndex(t *testing.T) {
	tests := []struct {
		name    string
		shape   []int
		strides []int
		offset  int
		want    [2]int
	}{
		{"row-major contiguous", []int{2, 3}, []int{24, 8}, 0, [2]int{0, 40}},
		{"negative stride", []int{3}, []int{-8}, 16, [2]int{0, 16}},
		{"mixed signs", []int{2, 3}, []int{24, -8}, 16, [2]int{0, 40}},
		{"zero dimension", []int{2, 0}, []int{24, 8}, 4, [2]int{4, 4}},
		{"zero stride", []int{2, 3}, []int{0, 8}, 0, [2]int{0, 16}},
	}
	for _, tt := range tests {
		var out [2]int
		MinmaxViewBufferIndex(tt.shape, tt.strides, tt.offset, &out)
		if out != tt.want {
			t.Errorf("%s: MinmaxViewBufferIndex = %v, want %v", tt.name, out, tt.want)
		}
		if got := MaxViewBufferIndex(tt.shape, tt.strides, tt.offset); got != tt.want[1] {
			t.Errorf("%s: MaxViewBufferIndex = %d, want %d", tt.name, got, tt.want[1])
		}
	}
}

func TestSingletonDimensions(t *testing.T) {
	shape := []int{1, 3, 1, 5}
	if got := SingletonDimensions(shape); got != 2 {
		t.Errorf("SingletonDimensions = %d, want 2", got)
	}
	if got := NonsingletonDimensions(shape); got != 2 {
		t.Errorf("NonsingletonDimensions = %d, want 2", got)
	}
}
