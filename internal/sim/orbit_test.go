package sim

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/heliosim/pkg/math"
)

func near(a, b, eps float32) bool {
	return gomath.Abs(float64(a-b)) <= float64(eps)
}

func TestPositionAtZero(t *testing.T) {
	o := DefaultOrbits()
	p := o.PositionAt(0)

	if p.Sun != (math.Vec2{}) {
		t.Errorf("sun at %v, want origin", p.Sun)
	}
	if p.Earth != (math.Vec2{X: DefaultEarthDistance, Y: 0}) {
		t.Errorf("earth at %v, want (%v, 0)", p.Earth, DefaultEarthDistance)
	}
	wantMoon := math.Vec2{X: float32(DefaultEarthDistance) + float32(DefaultMoonDistance), Y: 0}
	if p.Moon != wantMoon {
		t.Errorf("moon at %v, want %v", p.Moon, wantMoon)
	}
}

func TestPositionAtCircularOrbits(t *testing.T) {
	o := DefaultOrbits()

	for i := 0; i < 500; i++ {
		tm := float32(i) * 0.137
		p := o.PositionAt(tm)

		if d := p.Earth.Length(); !near(d, DefaultEarthDistance, 1e-5) {
			t.Fatalf("t=%v: earth at distance %v from sun, want %v", tm, d, DefaultEarthDistance)
		}
		if d := p.Moon.Distance(p.Earth); !near(d, DefaultMoonDistance, 1e-5) {
			t.Fatalf("t=%v: moon at distance %v from earth, want %v", tm, d, DefaultMoonDistance)
		}
	}
}

func TestPositionAtAngles(t *testing.T) {
	o := DefaultOrbits()

	// A quarter of Earth's period puts it on +Z.
	quarter := float32(gomath.Pi/2) / DefaultEarthRate
	p := o.PositionAt(quarter)
	if !near(p.Earth.X, 0, 1e-5) || !near(p.Earth.Y, DefaultEarthDistance, 1e-5) {
		t.Errorf("earth after quarter orbit at %v, want (0, %v)", p.Earth, DefaultEarthDistance)
	}

	// The Moon's offset from Earth follows its own rate.
	tm := float32(1.3)
	p = o.PositionAt(tm)
	off := p.Moon.Sub(p.Earth)
	angle := float32(gomath.Atan2(float64(off.Y), float64(off.X)))
	want := float32(gomath.Remainder(float64(tm*DefaultMoonRate), 2*gomath.Pi))
	if !near(angle, want, 1e-4) {
		t.Errorf("moon offset angle %v, want %v", angle, want)
	}
}

func TestOrbitsFor(t *testing.T) {
	bodies := DefaultBodies()
	bodies[Earth].OrbitalRadius = 10
	bodies[Moon].AngularSpeed = 3

	o := OrbitsFor(bodies)
	if o.EarthDistance != 10 || o.MoonRate != 3 {
		t.Errorf("OrbitsFor = %+v, want earth distance 10 and moon rate 3", o)
	}
	if OrbitsFor(DefaultBodies()) != DefaultOrbits() {
		t.Error("default bodies should produce default orbits")
	}
}

func TestPositionsOf(t *testing.T) {
	p := Positions{Earth: math.Vec2{X: 1}, Moon: math.Vec2{X: 2}}
	if p.Of(Sun) != (math.Vec2{}) || p.Of(Earth).X != 1 || p.Of(Moon).X != 2 {
		t.Errorf("Positions.Of returned wrong bodies for %+v", p)
	}
}

func TestPositionsWorld(t *testing.T) {
	p := DefaultOrbits().PositionAt(0.75)
	w := p.World()

	for kind, v := range w {
		flat := p.Of(BodyKind(kind))
		if v.Y != 0 || v.X != flat.X || v.Z != flat.Y {
			t.Errorf("%s: world %v does not match plane position %v", BodyKind(kind), v, flat)
		}
	}
}
