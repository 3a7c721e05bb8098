package math

import (
	"math"
	"testing"
)

func TestVec2Add(t *testing.T) {
	got := Vec2{1, 2}.Add(Vec2{3, 4})
	if got != (Vec2{4, 6}) {
		t.Errorf("Vec2.Add() = %v, want {4 6}", got)
	}
}

func TestVec2Length(t *testing.T) {
	if got := (Vec2{3, 4}).Length(); got != 5 {
		t.Errorf("Vec2.Length() = %v, want 5", got)
	}
}

func TestVec2Cross(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec2
		want float32
	}{
		{"unit axes", Vec2{1, 0}, Vec2{0, 1}, 1},
		{"reversed", Vec2{0, 1}, Vec2{1, 0}, -1},
		{"parallel", Vec2{2, 0}, Vec2{-3, 0}, 0},
		{"general", Vec2{2, 3}, Vec2{4, 5}, -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cross(tt.b); got != tt.want {
				t.Errorf("%v.Cross(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestPolar(t *testing.T) {
	if got := Polar(8, 0); got != (Vec2{8, 0}) {
		t.Errorf("Polar(8, 0) = %v, want {8 0}", got)
	}
	p := Polar(2, float32(math.Pi/2))
	if math.Abs(float64(p.X)) > 1e-6 || math.Abs(float64(p.Y-2)) > 1e-6 {
		t.Errorf("Polar(2, pi/2) = %v, want {0 2}", p)
	}
}

func TestVec2XZ(t *testing.T) {
	if got := (Vec2{3, 4}).XZ(1); got != (Vec3{3, 1, 4}) {
		t.Errorf("Vec2.XZ() = %v, want {3 1 4}", got)
	}
	if got := (Vec3{3, 1, 4}).XZ(); got != (Vec2{3, 4}) {
		t.Errorf("Vec3.XZ() = %v, want {3 4}", got)
	}
}

func TestVec3Cross(t *testing.T) {
	got := Vec3{1, 0, 0}.Cross(Vec3{0, 1, 0})
	if got != (Vec3{0, 0, 1}) {
		t.Errorf("Vec3.Cross() = %v, want {0 0 1}", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{3, 4, 12}.Normalize()
	if l := n.Length(); l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
	if z := (Vec3{}).Normalize(); z != (Vec3{}) {
		t.Errorf("zero vector normalized to %v", z)
	}
}
