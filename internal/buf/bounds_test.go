package buf

import (
	"math"
	"testing"
)

func TestCheckTableBounds(t *testing.T) {
	cases := []struct {
		name       string
		bufLen     int
		count      int
		recordSize int
		want       int
		wantErr    bool
	}{
		{"exact fit", 48, 2, 24, 48, false},
		{"slack after table", 100, 2, 24, 48, false},
		{"zero records", 0, 0, 24, 0, false},
		{"one byte short", 47, 2, 24, 0, true},
		{"negative count", 48, -1, 24, 0, true},
		{"zero record size", 48, 2, 0, 0, true},
		{"multiplication overflow", 48, math.MaxInt/2, 24, 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := CheckTableBounds(tc.bufLen, tc.count, tc.recordSize)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got n=%d", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("n = %d, want %d", got, tc.want)
			}
		})
	}
}
