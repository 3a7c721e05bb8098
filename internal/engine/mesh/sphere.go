package mesh

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

// Minimum tessellation accepted by GenerateSphere.
const (
	MinSectors = 3
	MinStacks  = 2
)

// ErrInvalidSphere is returned for a radius or tessellation that cannot form a sphere.
var ErrInvalidSphere = errors.New("invalid sphere parameters")

// GenerateSphere builds a UV sphere centered at the origin.
//
// Stacks run from the north pole (+Y) to the south pole, sectors run around
// the Y axis starting at +X. Every ring repeats its first vertex at the end so
// the seam gets both u=0 and u=1. The pole rows emit a single triangle per
// sector; the other rows emit two.
func GenerateSphere(radius float32, sectors, stacks int) (*Mesh, error) {
	if !(radius > 0) || math32.IsInf(radius, 1) {
		return nil, fmt.Errorf("%w: radius %v must be positive and finite", ErrInvalidSphere, radius)
	}
	if sectors < MinSectors {
		return nil, fmt.Errorf("%w: %d sectors, need at least %d", ErrInvalidSphere, sectors, MinSectors)
	}
	if stacks < MinStacks {
		return nil, fmt.Errorf("%w: %d stacks, need at least %d", ErrInvalidSphere, stacks, MinStacks)
	}

	m := &Mesh{
		Vertices: make([]Vertex, 0, (stacks+1)*(sectors+1)),
		Indices:  make([]uint32, 0, 6*sectors*(stacks-1)),
		Radius:   radius,
		Sectors:  sectors,
		Stacks:   stacks,
	}

	stackStep := math32.Pi / float32(stacks)
	sectorStep := 2 * math32.Pi / float32(sectors)

	for i := 0; i <= stacks; i++ {
		stackAngle := math32.Pi/2 - float32(i)*stackStep
		ring := radius * math32.Cos(stackAngle)
		y := radius * math32.Sin(stackAngle)

		for j := 0; j <= sectors; j++ {
			sectorAngle := float32(j) * sectorStep
			x := ring * math32.Cos(sectorAngle)
			z := ring * math32.Sin(sectorAngle)

			m.Vertices = append(m.Vertices, Vertex{
				Position: [3]float32{x, y, z},
				Normal:   [3]float32{x / radius, y / radius, z / radius},
				TexCoord: [2]float32{float32(j) / float32(sectors), float32(i) / float32(stacks)},
			})
		}
	}

	for i := 0; i < stacks; i++ {
		k1 := uint32(i * (sectors + 1))
		k2 := k1 + uint32(sectors) + 1

		for j := 0; j < sectors; j, k1, k2 = j+1, k1+1, k2+1 {
			if i != 0 {
				m.Indices = append(m.Indices, k1, k2, k1+1)
			}
			if i != stacks-1 {
				m.Indices = append(m.Indices, k1+1, k2, k2+1)
			}
		}
	}

	return m, nil
}
