package strided

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSub2Ind(t *testing.T) {
	tests := []struct {
		name     string
		shape    []int
		strides  []int
		offset   int
		sub      []int
		submodes []IndexMode
		want     int
		wantErr  bool
	}{
		{
			name:     "row-major bytes",
			shape:    []int{2, 3},
			strides:  []int{24, 8},
			offset:   0,
			sub:      []int{1, 1},
			submodes: []IndexMode{IndexError},
			want:     32,
		},
		{
			name:     "nonzero offset negative stride",
			shape:    []int{3},
			strides:  []int{-8},
			offset:   16,
			sub:      []int{2},
			submodes: []IndexMode{IndexError},
			want:     0,
		},
		{
			name:     "out of bounds",
			shape:    []int{2, 3},
			strides:  []int{24, 8},
			offset:   0,
			sub:      []int{2, 0},
			submodes: []IndexMode{IndexError},
			wantErr:  true,
		},
		{
			name:     "clamp submode",
			shape:    []int{2, 3},
			strides:  []int{24, 8},
			offset:   0,
			sub:      []int{5, 5},
			submodes: []IndexMode{IndexClamp},
			want:     40,
		},
		{
			name:     "recycled submodes",
			shape:    []int{2, 3},
			strides:  []int{24, 8},
			offset:   0,
			sub:      []int{-1, 4},
			submodes: []IndexMode{IndexClamp, IndexWrap},
			want:     8, // clamp(-1)=0, wrap(4 over 3)=1
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sub2Ind(tt.shape, tt.strides, tt.offset, tt.sub, tt.submodes)
			if tt.wantErr {
				if !errors.Is(err, ErrOutOfBounds) {
					t.Fatalf("expected ErrOutOfBounds, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Sub2Ind = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestInd2SubViewPerspective(t *testing.T) {
	// With a zero offset the linear index is an index into the view, so
	// decomposition follows the shape in the order's traversal.
	tests := []struct {
		name  string
		shape []int
		order Order
		idx   int
		want  []int
	}{
		{"row-major last fastest", []int{2, 3}, RowMajor, 4, []int{1, 1}},
		{"column-major first fastest", []int{2, 3}, ColumnMajor, 4, []int{0, 2}},
		{"row-major 3d", []int{2, 3, 4}, RowMajor, 17, []int{1, 1, 1}},
		{"column-major 3d", []int{2, 3, 4}, ColumnMajor, 17, []int{1, 2, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strides := make([]int, len(tt.shape))
			Shape2Strides(tt.shape, tt.order, strides)
			out := make([]int, len(tt.shape))
			if err := Ind2Sub(tt.shape, strides, 0, tt.order, tt.idx, IndexError, out); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, out); diff != "" {
				t.Errorf("subscripts mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInd2SubBufferPerspective(t *testing.T) {
	// A nonzero offset switches to decomposing against the actual
	// strides, recovering subscripts from the buffer's perspective.
	shape := []int{3, 3}
	strides := []int{-3, 1}
	out := make([]int, 2)
	if err := Ind2Sub(shape, strides, 6, RowMajor, 7, IndexError, out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]int{0, 1}, out); diff != "" {
		t.Errorf("subscripts mismatch (-want +got):\n%s", diff)
	}
}

func TestInd2SubErrorMode(t *testing.T) {
	out := make([]int, 1)
	err := Ind2Sub([]int{4}, []int{1}, 0, RowMajor, 4, IndexError, out)
	if !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
	if err := Ind2Sub([]int{4}, []int{1}, 0, RowMajor, -1, IndexWrap, out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out[0] != 3 {
		t.Errorf("wrapped subscript = %d, want 3", out[0])
	}
}

func TestVind2Bind(t *testing.T) {
	tests := []struct {
		name    string
		shape   []int
		strides []int
		offset  int
		order   Order
		idx     int
		want    int
	}{
		{"row-major bytes", []int{2, 3}, []int{24, 8}, 0, RowMajor, 4, 32},
		{"negative stride offset", []int{3}, []int{-8}, 16, RowMajor, 0, 16},
		{"negative stride end", []int{3}, []int{-8}, 16, RowMajor, 2, 0},
		{"column-major", []int{2, 3}, []int{1, 2}, 0, ColumnMajor, 4, 4},
		{"rank 0", []int{}, []int{}, 5, RowMajor, 0, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Vind2Bind(tt.shape, tt.strides, tt.offset, tt.order, tt.idx, IndexError)
			if got != tt.want {
				t.Errorf("Vind2Bind = %d, want %d", got, tt.want)
			}
		})
	}

	if got := Vind2Bind([]int{2, 3}, []int{3, 1}, 0, RowMajor, 6, IndexError); got != -1 {
		t.Errorf("out-of-bounds Vind2Bind = %d, want -1", got)
	}
}

func TestBind2Vind(t *testing.T) {
	// The reference case from the buffer's perspective: a flipped view
	// over a 3x3 buffer.
	got := Bind2Vind([]int{3, 3}, []int{-3, 1}, 6, RowMajor, 7, IndexError)
	if got != 1 {
		t.Errorf("Bind2Vind = %d, want 1", got)
	}
}

func TestVindBindRoundTrip(t *testing.T) {
	// For element-unit strides, mapping a view index into the buffer and
	// back is the identity.
	tests := []struct {
		name    string
		shape   []int
		strides []int
		order   Order
	}{
		{"row-major", []int{2, 3, 4}, []int{12, 4, 1}, RowMajor},
		{"column-major", []int{2, 3, 4}, []int{1, 2, 6}, ColumnMajor},
		{"negative rows", []int{3, 3}, []int{-3, 1}, RowMajor},
		{"all negative", []int{2, 4}, []int{-4, -1}, RowMajor},
		{"column-major negative", []int{3, 2}, []int{-1, 3}, ColumnMajor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset := Strides2Offset(tt.shape, tt.strides)
			n := Numel(tt.shape)
			for i := 0; i < n; i++ {
				b := Vind2Bind(tt.shape, tt.strides, offset, tt.order, i, IndexError)
				if b < 0 {
					t.Fatalf("Vind2Bind(%d) = %d", i, b)
				}
				v := Bind2Vind(tt.shape, tt.strides, offset, tt.order, b, IndexError)
				if v != i {
					t.Fatalf("round trip of %d came back as %d (buffer index %d)", i, v, b)
				}
			}
		})
	}
}
