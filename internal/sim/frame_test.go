package sim

import "testing"

func TestLightingIntensities(t *testing.T) {
	l := DefaultLighting()

	tests := []struct {
		name     string
		eclipse  Eclipse
		wantSun  float32
		wantMoon float32
	}{
		{"clear", Eclipse{}, 1.2, 0.15},
		{"solar", Eclipse{Solar: true}, 0.05, 0.25},
		{"lunar", Eclipse{Lunar: true}, 1.2, 0.15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sun, moon := l.Intensities(tt.eclipse)
			if sun != tt.wantSun || moon != tt.wantMoon {
				t.Errorf("Intensities() = (%v, %v), want (%v, %v)", sun, moon, tt.wantSun, tt.wantMoon)
			}
		})
	}
}
