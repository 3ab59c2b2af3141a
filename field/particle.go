package field

import (
	"github.com/lixenwraith/lumos/parameter"
	"github.com/lixenwraith/lumos/physics"
)

// Rand is the random source particle factories draw from
// *math/rand.Rand satisfies it; tests inject a seeded one
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Kind separates persistent drifting glyphs from short-lived burst glyphs
type Kind uint8

const (
	Ambient   Kind = iota // drifts forever, glows near the pointer
	Explosion             // spawned by a burst, fades out and is removed
)

func (k Kind) String() string {
	switch k {
	case Ambient:
		return "ambient"
	case Explosion:
		return "explosion"
	default:
		return "unknown"
	}
}

// Particle is a single glyph in the field
type Particle struct {
	physics.Kinetic

	Angle float64
	Spin  float64
	Glyph string
	Size  float64

	// Ambient only: current and resting opacity
	Opacity     float64
	BaseOpacity float64

	// Explosion only: remaining life in (0, 1]
	Life float64

	Kind Kind
}

// Alive reports whether the particle stays in the field
func (p *Particle) Alive() bool {
	return p.Kind != Explosion || p.Life > 0
}

// Alpha is the draw alpha: life for explosions, opacity for ambient glyphs
func (p *Particle) Alpha() float64 {
	if p.Kind == Explosion {
		return p.Life
	}
	return p.Opacity
}

// span returns a uniform value in [-width/2, width/2)
func span(rng Rand, width float64) float64 {
	return (rng.Float64() - 0.5) * width
}

func randomGlyph(rng Rand) string {
	return glyphs[rng.Intn(len(glyphs))]
}

// NewAmbient creates a drifting particle uniformly placed in [0,width) x [0,height)
func NewAmbient(rng Rand, width, height float64) Particle {
	opacity := rng.Float64()*parameter.AmbientOpacitySpan + parameter.AmbientOpacityMin
	return Particle{
		Kinetic: physics.Kinetic{
			X:    rng.Float64() * width,
			Y:    rng.Float64() * height,
			VelX: span(rng, parameter.AmbientSpeedSpan),
			VelY: span(rng, parameter.AmbientSpeedSpan),
		},
		Angle:       rng.Float64() * parameter.ParticleAngleSpan,
		Spin:        span(rng, parameter.ParticleSpinSpan),
		Glyph:       randomGlyph(rng),
		Size:        rng.Float64()*parameter.AmbientSizeSpan + parameter.AmbientSizeMin,
		Opacity:     opacity,
		BaseOpacity: opacity,
		Kind:        Ambient,
	}
}

// NewExplosion creates a fast burst particle at (x, y) with full life
func NewExplosion(rng Rand, x, y float64) Particle {
	p := Particle{
		Kinetic: physics.Kinetic{
			X:    x,
			Y:    y,
			VelX: span(rng, parameter.ExplosionSpeedSpan),
			VelY: span(rng, parameter.ExplosionSpeedSpan),
		},
		Angle: rng.Float64() * parameter.ParticleAngleSpan,
		Spin:  span(rng, parameter.ParticleSpinSpan),
		Glyph: randomGlyph(rng),
		Size:  rng.Float64()*parameter.ExplosionSizeSpan + parameter.ExplosionSizeMin,
		Life:  1,
		Kind:  Explosion,
	}
	// Resting opacity is unused by explosions but kept in range
	p.Opacity = 1
	p.BaseOpacity = 1
	return p
}
