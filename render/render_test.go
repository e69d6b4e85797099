package render

import "testing"

func TestAspectOf(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		want   float32
	}{
		{"standard", 800, 600, 800.0 / 600.0},
		{"square", 512, 512, 1},
		{"zero height clamped", 800, 0, 800},
		{"negative height clamped", 800, -5, 800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := aspectOf(tt.width, tt.height); got != tt.want {
				t.Errorf("aspectOf(%d, %d) = %v, want %v", tt.width, tt.height, got, tt.want)
			}
		})
	}
}
