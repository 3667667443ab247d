package tensor

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBroadcast(t *testing.T) {
	tests := []struct {
		a, b    Shape
		want    Shape
		wantErr bool
	}{
		{Shape{1, 3}, Shape{4, 3}, Shape{4, 3}, false},
		{Shape{3, 1}, Shape{3, 5}, Shape{3, 5}, false},
		{Shape{3, 5}, Shape{3, 5}, Shape{3, 5}, false},
		{Shape{3}, Shape{2, 3}, Shape{2, 3}, false},
		{Shape{}, Shape{2, 3}, Shape{2, 3}, false},
		{Shape{5, 1, 4}, Shape{3, 1}, Shape{5, 3, 4}, false},
		{Shape{2, 3}, Shape{4, 3}, nil, true},
		{Shape{3, 4}, Shape{3, 5}, nil, true},
	}

	for _, tt := range tests {
		got, err := Broadcast(tt.a, tt.b)
		if tt.wantErr {
			if !errors.Is(err, ErrBroadcast) {
				t.Errorf("Broadcast(%v, %v) error = %v, want ErrBroadcast", tt.a, tt.b, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Broadcast(%v, %v) failed: %v", tt.a, tt.b, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Broadcast(%v, %v) mismatch (-want +got):\n%s", tt.a, tt.b, diff)
		}
	}
}

func TestBroadcastCommutes(t *testing.T) {
	pairs := [][2]Shape{
		{{1, 3}, {4, 3}},
		{{5, 1, 4}, {3, 1}},
		{{}, {2, 2}},
	}

	for _, p := range pairs {
		ab, err1 := Broadcast(p[0], p[1])
		ba, err2 := Broadcast(p[1], p[0])
		if err1 != nil || err2 != nil {
			t.Fatalf("Broadcast failed: %v / %v", err1, err2)
		}
		if !ab.Equal(ba) {
			t.Errorf("Broadcast(%v, %v) = %v but reversed gives %v", p[0], p[1], ab, ba)
		}
	}
}
