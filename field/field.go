package field

import (
	"log"
	"math"
	"math/rand"
	"sync/atomic"

	"github.com/lixenwraith/lumos/parameter"
	"github.com/lixenwraith/lumos/physics"
	"github.com/lixenwraith/lumos/render"
	"github.com/lixenwraith/lumos/status"
)

// SoundCue is notified once per burst; playback failures are reported, never fatal
type SoundCue interface {
	PlaySpell() error
}

// Field owns every particle and advances them one frame at a time
// Not safe for concurrent use: a single frame loop must own it
type Field struct {
	width, height float64
	lightRadius   float64

	pointerX, pointerY float64

	particles []Particle

	rng   Rand
	shade Rand // explosion shadow picks, kept apart from rng
	cue   SoundCue

	// Cached metric pointers
	statAmbient   *atomic.Int64
	statExplosion *atomic.Int64
	statBursts    *atomic.Int64
	statCueFails  *atomic.Int64
	statRadius    *status.AtomicFloat
}

// shadeSeed seeds the default shadow colour source
const shadeSeed = 1

// New creates an empty field; cue may be nil, reg may be nil for a private registry
// rng drives every particle factory and nothing else, so a seeded rng yields the same particles
// however many frames are rendered; shadow colours come from a separate source, see SetShadeRand
// Initialize must be called before the first tick
func New(rng Rand, cue SoundCue, reg *status.Registry) *Field {
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Field{
		pointerX:      parameter.PointerRestX,
		pointerY:      parameter.PointerRestY,
		rng:           rng,
		shade:         rand.New(rand.NewSource(shadeSeed)),
		cue:           cue,
		statAmbient:   reg.Ints.Get(status.FieldAmbient),
		statExplosion: reg.Ints.Get(status.FieldExplosion),
		statBursts:    reg.Ints.Get(status.FieldBursts),
		statCueFails:  reg.Ints.Get(status.AudioFailures),
		statRadius:    reg.Floats.Get(status.FieldRadius),
	}
}

// SetShadeRand replaces the source used to pick explosion shadow colours
func (f *Field) SetShadeRand(r Rand) {
	f.shade = r
}

// DensityDivisor returns the viewport area per ambient particle for a viewport width
func DensityDivisor(width float64) float64 {
	switch {
	case width < parameter.PhoneMaxWidth:
		return parameter.DensityDivisorPhone
	case width < parameter.TabletMaxWidth:
		return parameter.DensityDivisorTablet
	default:
		return parameter.DensityDivisorDesktop
	}
}

// LightRadiusFor returns the pointer glow radius for a viewport width
func LightRadiusFor(width float64) float64 {
	switch {
	case width < parameter.PhoneMaxWidth:
		return parameter.LightRadiusPhone
	case width < parameter.TabletMaxWidth:
		return parameter.LightRadiusTablet
	default:
		return parameter.LightRadiusDesktop
	}
}

// ParticleCount returns the ambient population for a viewport
func ParticleCount(width, height float64) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	return int(math.Floor(width * height / DensityDivisor(width)))
}

// Initialize discards every particle and repopulates the viewport with ambient particles
// Called at startup and on every viewport change
func (f *Field) Initialize(width, height float64) {
	f.width = width
	f.height = height
	f.lightRadius = LightRadiusFor(width)

	n := ParticleCount(width, height)
	f.particles = make([]Particle, 0, n+parameter.BurstSize)
	for i := 0; i < n; i++ {
		f.particles = append(f.particles, NewAmbient(f.rng, width, height))
	}

	f.statRadius.Set(f.lightRadius)
	f.publish()
}

// Resize re-initializes only when the viewport actually changed, returns true if it did
func (f *Field) Resize(width, height float64) bool {
	if width == f.width && height == f.height && f.particles != nil {
		return false
	}
	f.Initialize(width, height)
	return true
}

// OnPointerMove records the pointer for the next tick; off-canvas coordinates are valid
func (f *Field) OnPointerMove(x, y float64) {
	f.pointerX = x
	f.pointerY = y
}

// SpawnBurst appends a batch of explosion particles at (x, y) and triggers the sound cue
func (f *Field) SpawnBurst(x, y float64) {
	for i := 0; i < parameter.BurstSize; i++ {
		f.particles = append(f.particles, NewExplosion(f.rng, x, y))
	}
	f.statBursts.Add(1)
	f.publish()

	if f.cue == nil {
		return
	}
	if err := f.cue.PlaySpell(); err != nil {
		f.statCueFails.Add(1)
		log.Printf("field: spell sound not played: %v", err)
	}
}

// Tick advances every particle by one frame and drops expired explosions
func (f *Field) Tick() {
	live := f.particles[:0]
	for i := range f.particles {
		p := f.particles[i]
		f.update(&p)
		if p.Alive() {
			live = append(live, p)
		}
	}
	// Release glyph references held past the new length
	clear(f.particles[len(live):])
	f.particles = live
	f.publish()
}

func (f *Field) update(p *Particle) {
	physics.Integrate(&p.Kinetic)
	p.Angle += p.Spin
	physics.ReflectBounds(&p.Kinetic, f.width, f.height)

	if p.Kind == Explosion {
		p.Life -= parameter.ExplosionLifeDecay
		physics.Damp(&p.Kinetic, parameter.ExplosionDamping)
		return
	}

	dist := math.Hypot(f.pointerX-p.X, f.pointerY-p.Y)
	if dist < f.lightRadius {
		intensity := 1 - dist/f.lightRadius
		p.Opacity = math.Min(1, p.BaseOpacity+intensity)
		return
	}
	if p.Opacity > p.BaseOpacity {
		p.Opacity = math.Max(p.BaseOpacity, p.Opacity-parameter.AmbientOpacityDecay)
	}
}

// Render clears the surface and draws every live particle in collection order
func (f *Field) Render(s render.Surface) {
	s.Clear()
	for i := range f.particles {
		p := &f.particles[i]
		if !p.Alive() {
			continue
		}

		g := render.Glyph{
			Text:  p.Glyph,
			X:     p.X,
			Y:     p.Y,
			Angle: p.Angle,
			Size:  p.Size,
			Alpha: p.Alpha(),
			Fill:  render.White,
			Blur:  parameter.ShadowBlur,
		}
		if p.Kind == Explosion {
			g.Shadow = glowPalette[f.shade.Intn(len(glowPalette))]
			g.ShadowAlpha = parameter.ExplosionShadowAlpha
		} else {
			g.Shadow = render.White
			g.ShadowAlpha = parameter.AmbientShadowAlpha
		}
		s.DrawGlyph(g)
	}
}

func (f *Field) publish() {
	var explosions int64
	for i := range f.particles {
		if f.particles[i].Kind == Explosion {
			explosions++
		}
	}
	f.statExplosion.Store(explosions)
	f.statAmbient.Store(int64(len(f.particles)) - explosions)
}

// Len returns the number of particles in the collection
func (f *Field) Len() int {
	return len(f.particles)
}

// Count returns the number of particles of kind k
func (f *Field) Count(k Kind) int {
	n := 0
	for i := range f.particles {
		if f.particles[i].Kind == k {
			n++
		}
	}
	return n
}

// Particles returns a snapshot copy of the collection
func (f *Field) Particles() []Particle {
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}

// LightRadius returns the glow radius chosen at the last Initialize
func (f *Field) LightRadius() float64 {
	return f.lightRadius
}

// Size returns the viewport the field was last initialized with
func (f *Field) Size() (width, height float64) {
	return f.width, f.height
}

// Pointer returns the last recorded pointer position
func (f *Field) Pointer() (x, y float64) {
	return f.pointerX, f.pointerY
}
