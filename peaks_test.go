package merkleroot

import (
	"math"
	"reflect"
	"testing"
)

func TestPeakCount(t *testing.T) {
	type args struct {
		leafCount uint64
	}
	tests := []struct {
		name string
		args args
		want int
	}{
		{"no leaves, no peaks", args{0}, 0},
		{"one leaf is one peak", args{1}, 1},
		{"two leaves share one peak", args{2}, 1},
		{"three leaves give two peaks", args{3}, 2},
		{"seven leaves give three peaks", args{7}, 3},
		{"eight leaves collapse to one peak", args{8}, 1},
		{"eleven leaves give three peaks", args{11}, 3},
		{"fourteen leaves give three peaks", args{14}, 3},
		{"fifteen leaves give four peaks", args{15}, 4},
		{"all ones gives sixty four peaks", args{math.MaxUint64}, 64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PeakCount(tt.args.leafCount); got != tt.want {
				t.Errorf("PeakCount() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPeakLevels(t *testing.T) {
	type args struct {
		leafCount uint64
	}
	tests := []struct {
		name string
		args args
		want []int
	}{
		{"no leaves, no levels", args{0}, []int{}},
		{"one leaf sits at level zero", args{1}, []int{0}},
		{"two leaves sit at level one", args{2}, []int{1}},
		{"eight leaves sit at level three", args{8}, []int{3}},
		{"eleven leaves occupy levels 0, 1 and 3", args{11}, []int{0, 1, 3}},
		{"fourteen leaves occupy levels 1, 2 and 3", args{14}, []int{1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PeakLevels(tt.args.leafCount); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("PeakLevels() = %v, want %v", got, tt.want)
			}
		})
	}
}
