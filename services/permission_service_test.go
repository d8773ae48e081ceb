package services

import (
	"reflect"
	"testing"
)

func TestCopyTargets(t *testing.T) {
	tests := []struct {
		name string
		from uint
		to   []uint
		want []uint
	}{
		{"distinct", 1, []uint{2, 3}, []uint{2, 3}},
		{"duplicates and source dropped", 1, []uint{2, 3, 3, 1, 2}, []uint{2, 3}},
		{"zero ids dropped", 4, []uint{0, 5}, []uint{5}},
		{"only the source", 7, []uint{7}, []uint{}},
	}
	for _, tt := range tests {
		if got := copyTargets(tt.from, tt.to); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}
