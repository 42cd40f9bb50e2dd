package yuletree

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// maxBatchFaces caps the faces submitted in one DrawTriangles32 call.
const maxBatchFaces = 16384

const (
	defaultLineWidth = 1.2
	fieldStarScale   = 10.0
)

// Face is a screen-space triangle ready for submission. Lines and points
// are expanded into faces too, so one depth sort orders everything.
type Face struct {
	P     [3]Vec2
	Depth float64
	Color Color
	Blend BlendMode
	order int
}

// meshData caches a geometry's tessellation.
type meshData struct {
	tris  []Triangle
	edges []Edge
}

type pointLight struct {
	pos       Vec3
	color     Color
	intensity float64
}

type lighting struct {
	ambient Color
	points  []pointLight
}

// Renderer paints a SceneDescription with a software perspective projector:
// transform, Lambert shade, depth sort back to front, and submit batched
// triangles.
type Renderer struct {
	// LineWidth is the wireframe stroke width in pixels.
	LineWidth float64

	cache   map[Geometry]*meshData
	faces   []Face
	sortBuf []Face
	verts   []ebiten.Vertex
	inds    []uint32
	light   lighting
	stats   frameStats
}

// NewRenderer creates a renderer with an empty tessellation cache.
func NewRenderer() *Renderer {
	return &Renderer{
		LineWidth: defaultLineWidth,
		cache:     make(map[Geometry]*meshData),
	}
}

func (r *Renderer) mesh(g Geometry) *meshData {
	if md, ok := r.cache[g]; ok {
		return md
	}
	md := &meshData{tris: g.Tessellate(), edges: g.Edges()}
	r.cache[g] = md
	return md
}

// Compose projects the scene for a viewport of width x height pixels and
// returns faces sorted back to front. The returned slice is reused by the
// next call.
func (r *Renderer) Compose(s *SceneDescription, width, height float64) []Face {
	r.faces = r.faces[:0]
	if s == nil || s.Root == nil || s.Camera == nil || width <= 0 || height <= 0 {
		return r.faces
	}
	v := s.Camera.view(width, height)

	r.collectLights(s.Root, identityAffine)
	r.appendStarField(&v, s.StarField, s.elapsed)
	r.traverse(&v, s.Root, identityAffine)

	for i := range r.faces {
		r.faces[i].order = i
	}
	r.sortFaces()
	return r.faces
}

func (r *Renderer) collectLights(root *Node, parent affine3) {
	r.light.ambient = Color{}
	r.light.points = r.light.points[:0]
	var walk func(n *Node, parent affine3)
	walk = func(n *Node, parent affine3) {
		world := parent.mul(localAffine(n.Position, n.Rotation, n.Scale))
		switch n.Type {
		case NodeTypeAmbientLight:
			r.light.ambient = r.light.ambient.Add(n.LightColor.Scale(n.Intensity))
		case NodeTypePointLight:
			r.light.points = append(r.light.points, pointLight{
				pos:       world.apply(Vec3{}),
				color:     n.LightColor,
				intensity: n.Intensity,
			})
		}
		for _, c := range n.children {
			walk(c, world)
		}
	}
	walk(root, parent)
}

// appendStarField draws the distant field as small additive squares. The
// field is a sky dome, so it ignores the far plane.
func (r *Renderer) appendStarField(v *view, field []FieldStar, t float64) {
	for i := range field {
		f := &field[i]
		cp := v.toCamera(f.Position)
		sp, ok := v.project(cp)
		if !ok {
			continue
		}
		twinkle := (3 + math.Sin(t+float64(i))) / 3
		half := f.Size * fieldStarScale / cp.Z * twinkle / 2
		if half < 0.5 {
			half = 0.5
		}
		c := f.Color
		c.A = 0.8
		r.appendQuad(
			Vec2{sp.X - half, sp.Y - half}, Vec2{sp.X + half, sp.Y - half},
			Vec2{sp.X + half, sp.Y + half}, Vec2{sp.X - half, sp.Y + half},
			cp.Z, c, BlendAdd,
		)
	}
}

func (r *Renderer) traverse(v *view, n *Node, parent affine3) {
	if !n.Visible {
		return
	}
	world := parent.mul(localAffine(n.Position, n.Rotation, n.Scale))
	if n.Type == NodeTypeMesh {
		if n.Material.Wireframe {
			r.appendWireframe(v, n, world)
		} else {
			r.appendSolid(v, n, world)
		}
	}
	for _, c := range n.children {
		r.traverse(v, c, world)
	}
}

func (r *Renderer) appendSolid(v *view, n *Node, world affine3) {
	md := r.mesh(n.Geometry)
	for _, t := range md.tris {
		a, b, c := world.apply(t[0]), world.apply(t[1]), world.apply(t[2])
		ca, cb, cc := v.toCamera(a), v.toCamera(b), v.toCamera(c)
		depth := (ca.Z + cb.Z + cc.Z) / 3
		if depth > v.far {
			continue
		}
		pa, okA := v.project(ca)
		pb, okB := v.project(cb)
		pc, okC := v.project(cc)
		if !okA || !okB || !okC {
			continue
		}
		centroid := a.Add(b).Add(c).Mul(1.0 / 3)
		normal := b.Sub(a).Cross(c.Sub(a)).Normalize()
		if normal.Dot(v.pos.Sub(centroid)) < 0 {
			normal = normal.Mul(-1)
		}
		r.faces = append(r.faces, Face{
			P:     [3]Vec2{pa, pb, pc},
			Depth: depth,
			Color: shade(n.Material, normal, centroid, &r.light),
			Blend: BlendNormal,
		})
	}
}

func (r *Renderer) appendWireframe(v *view, n *Node, world affine3) {
	md := r.mesh(n.Geometry)
	c := n.Material.Color
	c.A = n.Material.alpha()
	for _, e := range md.edges {
		ca, cb := v.toCamera(world.apply(e[0])), v.toCamera(world.apply(e[1]))
		depth := (ca.Z + cb.Z) / 2
		if depth > v.far {
			continue
		}
		pa, okA := v.project(ca)
		pb, okB := v.project(cb)
		if !okA || !okB {
			continue
		}
		r.appendLine(pa, pb, depth, c)
	}
}

// appendLine expands a segment into a quad of LineWidth pixels.
func (r *Renderer) appendLine(a, b Vec2, depth float64, c Color) {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	w := r.LineWidth / 2
	nx, ny := -dy/l*w, dx/l*w
	r.appendQuad(
		Vec2{a.X + nx, a.Y + ny}, Vec2{b.X + nx, b.Y + ny},
		Vec2{b.X - nx, b.Y - ny}, Vec2{a.X - nx, a.Y - ny},
		depth, c, BlendNormal,
	)
}

func (r *Renderer) appendQuad(p0, p1, p2, p3 Vec2, depth float64, c Color, blend BlendMode) {
	r.faces = append(r.faces,
		Face{P: [3]Vec2{p0, p1, p2}, Depth: depth, Color: c, Blend: blend},
		Face{P: [3]Vec2{p0, p2, p3}, Depth: depth, Color: c, Blend: blend},
	)
}

// shade computes the face color. Unlit materials keep their flat color; lit
// ones get ambient plus Lambert point light terms and their emissive glow.
func shade(m Material, normal, p Vec3, l *lighting) Color {
	c := m.Color
	if m.Lit {
		irr := l.ambient
		for _, pl := range l.points {
			d := normal.Dot(pl.pos.Sub(p).Normalize())
			if d > 0 {
				irr = irr.Add(pl.color.Scale(pl.intensity * d))
			}
		}
		c = c.Mul(irr).Add(m.Emissive.Scale(m.EmissiveIntensity))
	}
	c.A = m.alpha()
	return c.Clamp()
}

// faceLessOrEqual orders far faces first. Ties keep emission order.
func faceLessOrEqual(a, b *Face) bool {
	if a.Depth != b.Depth {
		return a.Depth > b.Depth
	}
	return a.order <= b.order
}

// sortFaces sorts r.faces in place with r.sortBuf as scratch space.
// Bottom-up merge sort: zero allocations after the buffer reaches its
// high-water mark.
func (r *Renderer) sortFaces() {
	n := len(r.faces)
	if n <= 1 {
		return
	}
	if cap(r.sortBuf) < n {
		r.sortBuf = make([]Face, n)
	}
	r.sortBuf = r.sortBuf[:n]

	a, b := r.faces, r.sortBuf
	swapped := false
	for width := 1; width < n; width *= 2 {
		for i := 0; i < n; i += 2 * width {
			mid := min(i+width, n)
			hi := min(i+2*width, n)
			mergeRun(a, b, i, mid, hi)
		}
		a, b = b, a
		swapped = !swapped
	}
	if swapped {
		copy(r.faces, r.sortBuf)
	}
}

// mergeRun merges two sorted runs [lo, mid) and [mid, hi) from src into dst.
func mergeRun(src, dst []Face, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if faceLessOrEqual(&src[i], &src[j]) {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	k += copy(dst[k:], src[i:mid])
	copy(dst[k:], src[j:hi])
}

// Draw clears target to the scene background and paints the scene. A nil
// target or scene is a no-op.
func (r *Renderer) Draw(target *ebiten.Image, s *SceneDescription) {
	if target == nil || s == nil {
		return
	}
	b := target.Bounds()
	target.Fill(s.Background.toRGBA())

	t0 := time.Now()
	faces := r.Compose(s, float64(b.Dx()), float64(b.Dy()))
	r.stats.composeTime = time.Since(t0)

	t0 = time.Now()
	r.stats.drawCalls = r.submit(target, faces)
	r.stats.submitTime = time.Since(t0)
	r.stats.faceCount = len(faces)
}

// submit batches consecutive faces that share a blend mode. Returns the
// number of draw calls issued.
func (r *Renderer) submit(target *ebiten.Image, faces []Face) int {
	calls := 0
	src := whiteSubImage()
	ox := float64(target.Bounds().Min.X)
	oy := float64(target.Bounds().Min.Y)
	blend := BlendNormal
	flush := func() {
		if len(r.inds) == 0 {
			return
		}
		var op ebiten.DrawTrianglesOptions
		op.Blend = blend.EbitenBlend()
		op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
		op.AntiAlias = true
		target.DrawTriangles32(r.verts, r.inds, src, &op)
		r.verts = r.verts[:0]
		r.inds = r.inds[:0]
		calls++
	}
	for i := range faces {
		f := &faces[i]
		if f.Blend != blend || len(r.inds) >= maxBatchFaces*3 {
			flush()
			blend = f.Blend
		}
		base := uint32(len(r.verts))
		cr := float32(f.Color.R * f.Color.A)
		cg := float32(f.Color.G * f.Color.A)
		cb := float32(f.Color.B * f.Color.A)
		ca := float32(f.Color.A)
		for _, p := range f.P {
			r.verts = append(r.verts, ebiten.Vertex{
				DstX:   float32(p.X + ox),
				DstY:   float32(p.Y + oy),
				SrcX:   1.5,
				SrcY:   1.5,
				ColorR: cr,
				ColorG: cg,
				ColorB: cb,
				ColorA: ca,
			})
		}
		r.inds = append(r.inds, base, base+1, base+2)
	}
	flush()
	return calls
}
