package physics

// Kinetic is float position and velocity in pixel units, velocity is per tick
type Kinetic struct {
	X, Y float64
	VelX float64
	VelY float64
}

// Integrate performs one tick of velocity integration: p = p + v
func Integrate(k *Kinetic) {
	k.X += k.VelX
	k.Y += k.VelY
}

// ReflectX inverts horizontal velocity when X is outside [minX, maxX], returns true if reflection occurred
// Position is not clamped, a particle may overshoot the bound for a tick
func ReflectX(k *Kinetic, minX, maxX float64) bool {
	if k.X < minX || k.X > maxX {
		k.VelX = -k.VelX
		return true
	}
	return false
}

// ReflectY inverts vertical velocity when Y is outside [minY, maxY], returns true if reflection occurred
func ReflectY(k *Kinetic, minY, maxY float64) bool {
	if k.Y < minY || k.Y > maxY {
		k.VelY = -k.VelY
		return true
	}
	return false
}

// ReflectBounds handles both axes independently against [0, width] x [0, height]
func ReflectBounds(k *Kinetic, width, height float64) (rx, ry bool) {
	rx = ReflectX(k, 0, width)
	ry = ReflectY(k, 0, height)
	return rx, ry
}

// Damp scales both velocity components by factor (isotropic exponential decay)
func Damp(k *Kinetic, factor float64) {
	k.VelX *= factor
	k.VelY *= factor
}
