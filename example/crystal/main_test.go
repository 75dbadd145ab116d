package main

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestParsePlanes(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		count   int
		wantErr bool
	}{
		{"empty", "", 0, false},
		{"blank", "  ", 0, false},
		{"one", "0.8,1,0,0.4", 1, false},
		{"two with spaces", "0, 1, 0, 0.2; 1, 0, 0, -0.1", 2, false},
		{"missing offset", "0,1,0", 0, true},
		{"not a number", "a,1,0,0", 0, true},
		{"zero normal", "0,0,0,1", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			planes, err := parsePlanes(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parsePlanes(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if len(planes) != tt.count {
				t.Errorf("got %d planes, want %d", len(planes), tt.count)
			}
		})
	}

	planes, _ := parsePlanes("0,2,0,0.5")
	if !planes[0].Normal.ApproxEqual(mgl64.Vec3{0, 1, 0}) || planes[0].Offset != 0.5 {
		t.Errorf("plane = %+v, want normalized {0 1 0} with offset 0.5", planes[0])
	}
}
