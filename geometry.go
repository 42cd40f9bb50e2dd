package yuletree

import "math"

// GeometryKind selects a primitive shape.
type GeometryKind uint8

const (
	GeometrySphere GeometryKind = iota
	GeometryCone
	GeometryCylinder
	GeometryOctahedron
	GeometryBox
	GeometryTorus
	GeometryDodecahedron
)

var geometryNames = [...]string{"sphere", "cone", "cylinder", "octahedron", "box", "torus", "dodecahedron"}

// String returns the lowercase shape name.
func (k GeometryKind) String() string {
	if int(k) < len(geometryNames) {
		return geometryNames[k]
	}
	return "unknown"
}

// Geometry is a primitive shape plus its parameters. It is comparable so
// tessellations can be cached by value.
type Geometry struct {
	Kind GeometryKind
	Args [4]float64
}

// Sphere returns a UV sphere with the given segment counts.
func Sphere(radius float64, widthSegments, heightSegments int) Geometry {
	return Geometry{Kind: GeometrySphere, Args: [4]float64{radius, float64(widthSegments), float64(heightSegments)}}
}

// Cone returns a closed cone standing on its base, centered at the origin.
func Cone(radius, height float64, radialSegments int) Geometry {
	return Geometry{Kind: GeometryCone, Args: [4]float64{radius, height, float64(radialSegments)}}
}

// Cylinder returns a closed, possibly tapered cylinder with 32 radial segments.
func Cylinder(radiusTop, radiusBottom, height float64) Geometry {
	return Geometry{Kind: GeometryCylinder, Args: [4]float64{radiusTop, radiusBottom, height, 32}}
}

// Octahedron returns a regular octahedron with vertices at distance radius.
func Octahedron(radius float64) Geometry {
	return Geometry{Kind: GeometryOctahedron, Args: [4]float64{radius}}
}

// Box returns an axis-aligned box centered at the origin.
func Box(width, height, depth float64) Geometry {
	return Geometry{Kind: GeometryBox, Args: [4]float64{width, height, depth}}
}

// Torus returns a torus lying in the XY plane.
func Torus(radius, tube float64, radialSegments, tubularSegments int) Geometry {
	return Geometry{Kind: GeometryTorus, Args: [4]float64{radius, tube, float64(radialSegments), float64(tubularSegments)}}
}

// Dodecahedron returns a regular dodecahedron with vertices at distance radius.
func Dodecahedron(radius float64) Geometry {
	return Geometry{Kind: GeometryDodecahedron, Args: [4]float64{radius}}
}

// Triangle is three local-space corners.
type Triangle [3]Vec3

// Edge is a line segment between two local-space points.
type Edge [2]Vec3

// Tessellate returns the triangles of g in local space.
func (g Geometry) Tessellate() []Triangle {
	a := g.Args
	switch g.Kind {
	case GeometrySphere:
		return sphereTriangles(a[0], max(int(a[1]), 3), max(int(a[2]), 2))
	case GeometryCone:
		return cylinderTriangles(0, a[0], a[1], max(int(a[2]), 3))
	case GeometryCylinder:
		return cylinderTriangles(a[0], a[1], a[2], max(int(a[3]), 3))
	case GeometryOctahedron:
		return polyTriangles(octahedronVerts[:], octahedronIndices[:], a[0])
	case GeometryBox:
		return boxTriangles(a[0], a[1], a[2])
	case GeometryTorus:
		return torusTriangles(a[0], a[1], max(int(a[2]), 3), max(int(a[3]), 3))
	case GeometryDodecahedron:
		return polyTriangles(dodecahedronVerts(), dodecahedronIndices[:], a[0])
	}
	return nil
}

// Edges returns the unique triangle edges of g, which is what a wireframe
// material draws.
func (g Geometry) Edges() []Edge {
	tris := g.Tessellate()
	type key [6]int64
	q := func(v Vec3) [3]int64 {
		return [3]int64{int64(math.Round(v.X * 1e6)), int64(math.Round(v.Y * 1e6)), int64(math.Round(v.Z * 1e6))}
	}
	seen := make(map[key]struct{}, len(tris)*3/2)
	edges := make([]Edge, 0, len(tris)*3/2)
	for _, t := range tris {
		for i := 0; i < 3; i++ {
			p, n := t[i], t[(i+1)%3]
			qp, qn := q(p), q(n)
			if qn[0] < qp[0] || (qn[0] == qp[0] && (qn[1] < qp[1] || (qn[1] == qp[1] && qn[2] < qp[2]))) {
				qp, qn = qn, qp
			}
			k := key{qp[0], qp[1], qp[2], qn[0], qn[1], qn[2]}
			if _, ok := seen[k]; ok {
				continue
			}
			if qp == qn {
				continue // degenerate edge at a pole
			}
			seen[k] = struct{}{}
			edges = append(edges, Edge{p, n})
		}
	}
	return edges
}

func sphereTriangles(radius float64, ws, hs int) []Triangle {
	grid := make([][]Vec3, hs+1)
	for iy := 0; iy <= hs; iy++ {
		v := float64(iy) / float64(hs)
		row := make([]Vec3, ws+1)
		for ix := 0; ix <= ws; ix++ {
			u := float64(ix) / float64(ws)
			row[ix] = Vec3{
				X: -radius * math.Cos(u*2*math.Pi) * math.Sin(v*math.Pi),
				Y: radius * math.Cos(v*math.Pi),
				Z: radius * math.Sin(u*2*math.Pi) * math.Sin(v*math.Pi),
			}
		}
		grid[iy] = row
	}
	tris := make([]Triangle, 0, ws*hs*2)
	for iy := 0; iy < hs; iy++ {
		for ix := 0; ix < ws; ix++ {
			a := grid[iy][ix+1]
			b := grid[iy][ix]
			c := grid[iy+1][ix]
			d := grid[iy+1][ix+1]
			if iy != 0 {
				tris = append(tris, Triangle{a, b, d})
			}
			if iy != hs-1 {
				tris = append(tris, Triangle{b, c, d})
			}
		}
	}
	return tris
}

// cylinderTriangles builds a closed frustum. A zero top radius gives a cone
// and drops the top cap.
func cylinderTriangles(rTop, rBottom, height float64, segs int) []Triangle {
	half := height / 2
	ring := func(r, y float64) []Vec3 {
		pts := make([]Vec3, segs+1)
		for x := 0; x <= segs; x++ {
			theta := float64(x) / float64(segs) * 2 * math.Pi
			pts[x] = Vec3{r * math.Sin(theta), y, r * math.Cos(theta)}
		}
		return pts
	}
	top := ring(rTop, half)
	bottom := ring(rBottom, -half)
	tris := make([]Triangle, 0, segs*4)
	for x := 0; x < segs; x++ {
		a, b, c, d := top[x], bottom[x], bottom[x+1], top[x+1]
		if rTop > 0 {
			tris = append(tris, Triangle{a, b, d})
		}
		tris = append(tris, Triangle{b, c, d})
	}
	if rTop > 0 {
		center := Vec3{0, half, 0}
		for x := 0; x < segs; x++ {
			tris = append(tris, Triangle{center, top[x], top[x+1]})
		}
	}
	if rBottom > 0 {
		center := Vec3{0, -half, 0}
		for x := 0; x < segs; x++ {
			tris = append(tris, Triangle{center, bottom[x+1], bottom[x]})
		}
	}
	return tris
}

func boxTriangles(w, h, d float64) []Triangle {
	x, y, z := w/2, h/2, d/2
	c := [8]Vec3{
		{-x, -y, -z}, {x, -y, -z}, {x, y, -z}, {-x, y, -z},
		{-x, -y, z}, {x, -y, z}, {x, y, z}, {-x, y, z},
	}
	faces := [6][4]int{
		{4, 5, 6, 7}, // +z
		{1, 0, 3, 2}, // -z
		{5, 1, 2, 6}, // +x
		{0, 4, 7, 3}, // -x
		{7, 6, 2, 3}, // +y
		{0, 1, 5, 4}, // -y
	}
	tris := make([]Triangle, 0, 12)
	for _, f := range faces {
		tris = append(tris,
			Triangle{c[f[0]], c[f[1]], c[f[2]]},
			Triangle{c[f[0]], c[f[2]], c[f[3]]},
		)
	}
	return tris
}

func torusTriangles(radius, tube float64, radial, tubular int) []Triangle {
	stride := tubular + 1
	pts := make([]Vec3, (radial+1)*stride)
	for j := 0; j <= radial; j++ {
		v := float64(j) / float64(radial) * 2 * math.Pi
		for i := 0; i <= tubular; i++ {
			u := float64(i) / float64(tubular) * 2 * math.Pi
			pts[j*stride+i] = Vec3{
				X: (radius + tube*math.Cos(v)) * math.Cos(u),
				Y: (radius + tube*math.Cos(v)) * math.Sin(u),
				Z: tube * math.Sin(v),
			}
		}
	}
	tris := make([]Triangle, 0, radial*tubular*2)
	for j := 1; j <= radial; j++ {
		for i := 1; i <= tubular; i++ {
			a := pts[stride*j+i-1]
			b := pts[stride*(j-1)+i-1]
			c := pts[stride*(j-1)+i]
			d := pts[stride*j+i]
			tris = append(tris, Triangle{a, b, d}, Triangle{b, c, d})
		}
	}
	return tris
}

// polyTriangles scales unit-direction polyhedron vertices onto a sphere of
// the given radius and expands the index list.
func polyTriangles(verts []Vec3, indices []int, radius float64) []Triangle {
	tris := make([]Triangle, 0, len(indices)/3)
	for i := 0; i+2 < len(indices); i += 3 {
		tris = append(tris, Triangle{
			verts[indices[i]].Normalize().Mul(radius),
			verts[indices[i+1]].Normalize().Mul(radius),
			verts[indices[i+2]].Normalize().Mul(radius),
		})
	}
	return tris
}

var octahedronVerts = [6]Vec3{
	{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1},
}

var octahedronIndices = [24]int{
	0, 2, 4, 0, 4, 3, 0, 3, 5, 0, 5, 2,
	1, 2, 5, 1, 5, 3, 1, 3, 4, 1, 4, 2,
}

func dodecahedronVerts() []Vec3 {
	t := (1 + math.Sqrt(5)) / 2
	r := 1 / t
	return []Vec3{
		{-1, -1, -1}, {-1, -1, 1}, {-1, 1, -1}, {-1, 1, 1},
		{1, -1, -1}, {1, -1, 1}, {1, 1, -1}, {1, 1, 1},
		{0, -r, -t}, {0, -r, t}, {0, r, -t}, {0, r, t},
		{-r, -t, 0}, {-r, t, 0}, {r, -t, 0}, {r, t, 0},
		{-t, 0, -r}, {t, 0, -r}, {-t, 0, r}, {t, 0, r},
	}
}

// Twelve pentagons, each fanned into three triangles.
var dodecahedronIndices = [108]int{
	3, 11, 7, 3, 7, 15, 3, 15, 13,
	7, 19, 17, 7, 17, 6, 7, 6, 15,
	17, 4, 8, 17, 8, 10, 17, 10, 6,
	8, 0, 16, 8, 16, 2, 8, 2, 10,
	0, 12, 1, 0, 1, 18, 0, 18, 16,
	6, 10, 2, 6, 2, 13, 6, 13, 15,
	2, 16, 18, 2, 18, 3, 2, 3, 13,
	18, 1, 9, 18, 9, 11, 18, 11, 3,
	4, 14, 12, 4, 12, 0, 4, 0, 8,
	11, 9, 5, 11, 5, 19, 11, 19, 7,
	19, 5, 14, 19, 14, 4, 19, 4, 17,
	1, 12, 14, 1, 14, 5, 1, 5, 9,
}
