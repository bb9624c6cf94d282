package particles

import "math"

// Field constants, in logical pixels and pixels per frame.
const (
	PixelsPerParticle = 22
	MinParticles      = 48
	MaxParticles      = 120

	MaxSpeed  = 0.225
	MinRadius = 1.2
	MaxRadius = 3.3
)

// Particle represents a single moving point
type Particle struct {
	X, Y   float64 // Position, logical pixels
	VX, VY float64 // Velocity, pixels per frame
	Radius float64
}

// RandomSource yields uniformly distributed values in [0, 1).
// *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// ParticleCount returns how many particles a viewport of the given width gets:
// one per PixelsPerParticle, clamped to [MinParticles, MaxParticles].
func ParticleCount(viewportWidth float64) int {
	if !(viewportWidth > 0) {
		return MinParticles
	}
	n := math.Floor(viewportWidth / PixelsPerParticle)
	switch {
	case n < MinParticles:
		return MinParticles
	case n > MaxParticles:
		return MaxParticles
	}
	return int(n)
}

// NewField creates the particle set for a width x height viewport.
func NewField(width, height float64, rng RandomSource) []Particle {
	field := make([]Particle, ParticleCount(width))
	for i := range field {
		field[i] = Particle{
			X:      rng.Float64() * width,
			Y:      rng.Float64() * height,
			VX:     (rng.Float64() - 0.5) * 2 * MaxSpeed,
			VY:     (rng.Float64() - 0.5) * 2 * MaxSpeed,
			Radius: MinRadius + rng.Float64()*(MaxRadius-MinRadius),
		}
	}
	return field
}

// Step advances every particle by one frame. A particle whose new position is
// on or past an edge has that axis' velocity reflected; the position itself is
// left where it landed.
func Step(field []Particle, width, height float64) {
	for i := range field {
		p := &field[i]
		p.X += p.VX
		p.Y += p.VY

		if p.X <= 0 || p.X >= width {
			p.VX = -p.VX
		}
		if p.Y <= 0 || p.Y >= height {
			p.VY = -p.VY
		}
	}
}
