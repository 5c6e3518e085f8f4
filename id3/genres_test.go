package id3

import (
	"slices"
	"testing"
)

func TestDecodeGenres(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   []string
	}{
		{"plain name", []string{"Rock"}, []string{"Rock"}},
		{"bare index", []string{"17"}, []string{"Rock"}},
		{"parenthesized index", []string{"(17)"}, []string{"Rock"}},
		{"index with refinement", []string{"(17)Alt Rock"}, []string{"Rock", "Alt Rock"}},
		{"multiple references", []string{"(17)(8)"}, []string{"Rock", "Jazz"}},
		{"remix", []string{"(RX)"}, []string{"Remix"}},
		{"cover", []string{"(CR)"}, []string{"Cover"}},
		{"escaped parenthesis", []string{"((escaped"}, []string{"(escaped"}},
		{"not a reference", []string{"(abc)rest"}, []string{"(abc)rest"}},
		{"out of range index", []string{"256"}, []string{"Unknown"}},
		{"empty value skipped", []string{"", "Rock"}, []string{"Rock"}},
		{"multiple values", []string{"Rock", "Pop"}, []string{"Rock", "Pop"}},
		{"nothing", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeGenres(tt.values)
			if !slices.Equal(got, tt.want) {
				t.Errorf("DecodeGenres(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}
