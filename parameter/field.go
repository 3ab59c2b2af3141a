package parameter

// Viewport breakpoints (pixels) shared by density and light radius selection
const (
	// PhoneMaxWidth is the exclusive upper bound of the phone tier
	PhoneMaxWidth = 600
	// TabletMaxWidth is the exclusive upper bound of the tablet tier
	TabletMaxWidth = 1024
)

// Density divisors: viewport area per ambient particle, larger means fewer particles
const (
	DensityDivisorPhone   = 12000
	DensityDivisorTablet  = 10000
	DensityDivisorDesktop = 8000
)

// Light radius in pixels, pointer-proximity threshold for the glow bonus
const (
	LightRadiusPhone   = 180.0
	LightRadiusTablet  = 250.0
	LightRadiusDesktop = 350.0
)

// Pointer starts far off-canvas so nothing glows before the first move
const (
	PointerRestX = -1000.0
	PointerRestY = -1000.0
)

// Ambient particle creation ranges, [min, min+span)
const (
	AmbientSizeMin      = 15.0
	AmbientSizeSpan     = 20.0
	AmbientSpeedSpan    = 1.0 // velocity per axis in [-span/2, span/2)
	AmbientOpacityMin   = 0.1
	AmbientOpacitySpan  = 0.5
	AmbientOpacityDecay = 0.02 // opacity lost per tick while outside the light radius
	ParticleAngleSpan   = 360.0
	ParticleSpinSpan    = 0.05 // spin per tick in [-span/2, span/2)
)

// Explosion particle creation and lifecycle
const (
	// BurstSize is the number of explosion particles per spawn request
	BurstSize = 20

	ExplosionSizeMin   = 10.0
	ExplosionSizeSpan  = 30.0
	ExplosionSpeedSpan = 15.0 // velocity per axis in [-7.5, 7.5)

	// ExplosionLifeDecay is life lost per tick, ~50 ticks (~0.83s at 60Hz)
	ExplosionLifeDecay = 0.02
	// ExplosionDamping multiplies both velocity components every tick
	ExplosionDamping = 0.95
)

// Glyph drawing
const (
	ShadowBlur           = 15.0
	AmbientShadowAlpha   = 0.5
	ExplosionShadowAlpha = 1.0
)
