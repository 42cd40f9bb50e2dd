package yuletree

import "math"

// affine3 is a 3D affine transform: a row-major 3x3 linear part plus a
// translation.
//
//	| m0 m1 m2 tx |
//	| m3 m4 m5 ty |
//	| m6 m7 m8 tz |
type affine3 struct {
	m [9]float64
	t Vec3
}

// identityAffine is the identity transform.
var identityAffine = affine3{m: [9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1}}

// localAffine computes Translate(pos) * Rotate(rot) * Scale(scale). The
// rotation applies Euler angles as Rx * Ry * Rz.
func localAffine(pos, rot, scale Vec3) affine3 {
	sx, cx := math.Sincos(rot.X)
	sy, cy := math.Sincos(rot.Y)
	sz, cz := math.Sincos(rot.Z)

	// Rx * Ry * Rz expanded.
	r := [9]float64{
		cy * cz, -cy * sz, sy,
		cx*sz + sx*sy*cz, cx*cz - sx*sy*sz, -sx * cy,
		sx*sz - cx*sy*cz, sx*cz + cx*sy*sz, cx * cy,
	}
	// Post-multiply by the scale matrix: scale columns.
	r[0] *= scale.X
	r[3] *= scale.X
	r[6] *= scale.X
	r[1] *= scale.Y
	r[4] *= scale.Y
	r[7] *= scale.Y
	r[2] *= scale.Z
	r[5] *= scale.Z
	r[8] *= scale.Z
	return affine3{m: r, t: pos}
}

// mul returns a * b (b applied first).
func (a affine3) mul(b affine3) affine3 {
	var out affine3
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			out.m[row*3+col] = a.m[row*3]*b.m[col] +
				a.m[row*3+1]*b.m[3+col] +
				a.m[row*3+2]*b.m[6+col]
		}
	}
	out.t = a.apply(b.t)
	return out
}

// apply transforms a point.
func (a affine3) apply(v Vec3) Vec3 {
	return Vec3{
		a.m[0]*v.X + a.m[1]*v.Y + a.m[2]*v.Z + a.t.X,
		a.m[3]*v.X + a.m[4]*v.Y + a.m[5]*v.Z + a.t.Y,
		a.m[6]*v.X + a.m[7]*v.Y + a.m[8]*v.Z + a.t.Z,
	}
}

// WorldPosition returns the node's origin in world space.
func (n *Node) WorldPosition() Vec3 {
	return n.worldAffine().apply(Vec3{})
}

// worldAffine composes local transforms from the root down to n.
func (n *Node) worldAffine() affine3 {
	w := localAffine(n.Position, n.Rotation, n.Scale)
	for p := n.Parent; p != nil; p = p.Parent {
		w = localAffine(p.Position, p.Rotation, p.Scale).mul(w)
	}
	return w
}
