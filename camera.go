package yuletree

import "math"

const (
	minPolar = 0.01
	maxPolar = math.Pi - 0.01
)

// Camera is a perspective camera orbiting a target point. Its position is
// kept in spherical coordinates around Target so auto-rotation and pointer
// drags compose.
type Camera struct {
	// Target is the world-space point the camera looks at.
	Target Vec3
	// FOV is the vertical field of view in degrees.
	FOV float64
	// Near and Far bound the visible depth range.
	Near, Far float64

	// AutoRotate spins the camera around Target. AutoRotateSpeed of 2.0
	// completes one orbit every 30 seconds.
	AutoRotate      bool
	AutoRotateSpeed float64
	// RotateSpeed scales pointer-drag orbiting.
	RotateSpeed float64
	// EnableRotate allows pointer-drag orbiting.
	EnableRotate bool
	// EnableZoom and EnablePan are kept for parity with orbit controls.
	// The greeting disables both and nothing in this package zooms or pans.
	EnableZoom bool
	EnablePan  bool

	radius  float64
	azimuth float64 // theta, measured from +Z toward +X
	polar   float64 // phi, measured from +Y
}

// NewCamera creates a camera at position looking at the origin.
func NewCamera(position Vec3, fov, near, far float64) *Camera {
	c := &Camera{
		FOV:             fov,
		Near:            near,
		Far:             far,
		AutoRotateSpeed: 2,
		RotateSpeed:     1,
		EnableRotate:    true,
		EnableZoom:      true,
		EnablePan:       true,
	}
	c.SetPosition(position)
	return c
}

// SetPosition moves the camera, keeping Target.
func (c *Camera) SetPosition(p Vec3) {
	d := p.Sub(c.Target)
	c.radius = d.Norm()
	if c.radius == 0 {
		c.azimuth, c.polar = 0, math.Pi/2
		return
	}
	c.azimuth = math.Atan2(d.X, d.Z)
	c.polar = clampPolar(math.Acos(math.Max(-1, math.Min(1, d.Y/c.radius))))
}

// Position returns the camera's world-space position.
func (c *Camera) Position() Vec3 {
	sp, cp := math.Sincos(c.polar)
	st, ct := math.Sincos(c.azimuth)
	return c.Target.Add(Vec3{c.radius * sp * st, c.radius * cp, c.radius * sp * ct})
}

// Azimuth returns the orbit angle around the vertical axis in radians.
func (c *Camera) Azimuth() float64 { return c.azimuth }

// Polar returns the angle from the vertical axis in radians.
func (c *Camera) Polar() float64 { return c.polar }

// autoRotateRate is the orbit speed in radians per second.
func (c *Camera) autoRotateRate() float64 {
	return 2 * math.Pi / 60 * c.AutoRotateSpeed
}

// update advances auto-rotation by dt seconds.
func (c *Camera) update(dt float64) {
	if c.AutoRotate {
		c.azimuth -= c.autoRotateRate() * dt
	}
}

// Drag orbits the camera in response to a pointer drag of (dx, dy) pixels
// on a viewport of the given height. No-op when EnableRotate is false.
func (c *Camera) Drag(dx, dy, viewportHeight float64) {
	if !c.EnableRotate || viewportHeight <= 0 {
		return
	}
	c.azimuth -= 2 * math.Pi * dx / viewportHeight * c.RotateSpeed
	c.polar = clampPolar(c.polar - 2*math.Pi*dy/viewportHeight*c.RotateSpeed)
}

func clampPolar(p float64) float64 {
	return math.Max(minPolar, math.Min(maxPolar, p))
}

// basis returns the camera's right, up, and forward unit vectors.
func (c *Camera) basis() (right, up, forward Vec3) {
	forward = c.Target.Sub(c.Position()).Normalize()
	right = forward.Cross(Vec3{0, 1, 0}).Normalize()
	up = right.Cross(forward)
	return right, up, forward
}

// view holds a camera snapshot for projecting many points in one frame.
type view struct {
	pos                   Vec3
	right, up, fwd        Vec3
	focal                 float64
	aspect                float64
	near, far             float64
	width, height         float64
	halfWidth, halfHeight float64
}

func (c *Camera) view(width, height float64) view {
	r, u, f := c.basis()
	aspect := 1.0
	if height > 0 {
		aspect = width / height
	}
	return view{
		pos:        c.Position(),
		right:      r,
		up:         u,
		fwd:        f,
		focal:      1 / math.Tan(c.FOV*math.Pi/360),
		aspect:     aspect,
		near:       c.Near,
		far:        c.Far,
		width:      width,
		height:     height,
		halfWidth:  width / 2,
		halfHeight: height / 2,
	}
}

// toCamera returns p in camera space; Z is the distance along the view axis.
func (v *view) toCamera(p Vec3) Vec3 {
	d := p.Sub(v.pos)
	return Vec3{d.Dot(v.right), d.Dot(v.up), d.Dot(v.fwd)}
}

// project maps a camera-space point to screen pixels. ok is false behind
// the near plane.
func (v *view) project(cp Vec3) (Vec2, bool) {
	if cp.Z < v.near {
		return Vec2{}, false
	}
	nx := cp.X * v.focal / v.aspect / cp.Z
	ny := cp.Y * v.focal / cp.Z
	return Vec2{(nx + 1) * v.halfWidth, (1 - ny) * v.halfHeight}, true
}

// Project maps a world-space point to screen pixels for a viewport of the
// given size. ok is false when the point falls outside [Near, Far].
func (c *Camera) Project(p Vec3, width, height float64) (screen Vec2, depth float64, ok bool) {
	v := c.view(width, height)
	cp := v.toCamera(p)
	if cp.Z > v.far {
		return Vec2{}, cp.Z, false
	}
	s, ok := v.project(cp)
	return s, cp.Z, ok
}
