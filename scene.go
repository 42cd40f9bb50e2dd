package yuletree

import (
	"fmt"
	"math"
)

// Scene palette and camera constants.
const (
	trunkColor      = "#8B4513"
	treeStarColor   = "#FFD700"
	wireframeColor  = "#C5A059"
	keyLightColor   = "#C5A059"
	fillLightColor  = "#10B981"
	wireframeAlpha  = 0.6
	ornamentRadius  = 0.1
	lightBulbRadius = 0.05

	cameraFOV       = 60
	cameraNear      = 0.1
	cameraFar       = 100
	autoRotateSpeed = 0.5
)

// WireframeShapes are the decorations floating around the tree.
var WireframeShapes = []GeometryKind{GeometryBox, GeometrySphere, GeometryTorus}

// SceneDescription is the retained scene graph for one theme, plus the
// camera and background field it is viewed with. Build a new one whenever
// AppState changes.
type SceneDescription struct {
	Root      *Node
	Tree      *Node
	Camera    *Camera
	StarField []FieldStar
	// Background is the clear color behind everything.
	Background Color

	elapsed float64
}

// BuildScene assembles the scene for a theme from already generated
// ornaments and backdrop stars. It performs no random draws.
func BuildScene(theme ThemeVariant, ornaments []OrnamentPlacement, stars []BackdropStar) *SceneDescription {
	root := NewGroup("scene")

	root.AddChild(NewAmbientLight("ambient", ColorWhite, 0.4))
	root.AddChild(NewPointLight("point-key", Vec3{10, 10, 10}, MustHex(keyLightColor), 0.8))
	root.AddChild(NewPointLight("point-fill", Vec3{-10, -10, -10}, MustHex(fillLightColor), 0.3))

	tree := buildTree(theme, ornaments)
	root.AddChild(tree)

	for _, kind := range WireframeShapes {
		root.AddChild(newWireframe(kind))
	}
	for i, s := range stars {
		root.AddChild(newBackdropStar(i, s))
	}

	cam := NewCamera(Vec3{0, 0, 8}, cameraFOV, cameraNear, cameraFar)
	cam.AutoRotate = true
	cam.AutoRotateSpeed = autoRotateSpeed
	cam.EnableZoom = false
	cam.EnablePan = false

	return &SceneDescription{
		Root:       root,
		Tree:       tree,
		Camera:     cam,
		Background: Color{R: 0.02, G: 0.03, B: 0.08, A: 1},
	}
}

// buildTree creates the tree group: trunk, cone layers with their ornaments
// and string lights, and the star on top.
func buildTree(theme ThemeVariant, ornaments []OrnamentPlacement) *Node {
	tree := NewGroup("tree")
	tree.Scale = Vec3{1.5, 2, 1.5}
	tree.OnUpdate = func(n *Node, t float64) {
		n.Rotation.Y = math.Sin(t*0.5) * 0.1
	}

	trunk := NewMeshNode("trunk", Cylinder(0.2, 0.3, 1), StandardMaterial(trunkColor))
	trunk.Position = Vec3{0, -2.5, 0}
	tree.AddChild(trunk)

	lights := GenerateStringLights(theme)
	for layer := 0; layer < LayerCount; layer++ {
		mat := StandardMaterial(theme.MainColor)
		mat.Roughness = 0.3
		mat.Metalness = 0.1
		cone := NewMeshNode(fmt.Sprintf("layer-%d", layer), Cone(1.2-float64(layer)*0.2, 0.8, 8), mat)
		cone.Position = Vec3{0, layerHeight(layer), 0}
		tree.AddChild(cone)

		k := 0
		for _, o := range ornaments {
			if o.Layer != layer {
				continue
			}
			om := StandardMaterial(o.Color)
			om.Emissive = MustHex(o.Emissive)
			om.EmissiveIntensity = 0.2
			orn := NewMeshNode(fmt.Sprintf("ornament-%d-%d", layer, k), Sphere(ornamentRadius, 8, 8), om)
			orn.Position = o.Position
			orn.Scale = Uniform3(o.Scale)
			tree.AddChild(orn)
			k++
		}

		i := 0
		for _, l := range lights {
			if l.Layer != layer {
				continue
			}
			bulb := NewMeshNode(fmt.Sprintf("light-%d-%d", layer, i), Sphere(lightBulbRadius, 6, 6), BasicMaterial(l.Color))
			bulb.Position = l.Position
			tree.AddChild(bulb)
			i++
		}
	}

	star := NewMeshNode("star", Octahedron(0.2), BasicMaterial(treeStarColor))
	star.Position = Vec3{0, 1.5, 0}
	tree.AddChild(star)
	return tree
}

// wireframeGeometry maps a decoration kind to its shape. Unknown kinds get
// a dodecahedron.
func wireframeGeometry(kind GeometryKind) Geometry {
	switch kind {
	case GeometryBox:
		return Box(1, 1, 1)
	case GeometrySphere:
		return Sphere(1, 16, 16)
	case GeometryTorus:
		return Torus(1, 0.4, 16, 100)
	case GeometryOctahedron:
		return Octahedron(1)
	default:
		return Dodecahedron(1)
	}
}

func newWireframe(kind GeometryKind) *Node {
	mat := BasicMaterial(wireframeColor)
	mat.Wireframe = true
	mat.Opacity = wireframeAlpha
	n := NewMeshNode("wire-"+kind.String(), wireframeGeometry(kind), mat)
	n.OnUpdate = func(n *Node, t float64) {
		n.Rotation.Y = t * 0.2
	}
	return n
}

func newBackdropStar(i int, s BackdropStar) *Node {
	mat := BasicMaterial(s.Color)
	mat.Emissive = mat.Color
	mat.EmissiveIntensity = 0.3
	n := NewMeshNode(fmt.Sprintf("backdrop-star-%d", i), Sphere(0.1, 8, 8), mat)
	n.Position = s.Position
	n.Scale = Uniform3(s.Scale)
	base := s.Scale
	n.OnUpdate = func(n *Node, t float64) {
		n.Rotation.Z = t * 0.5
		n.Scale = Uniform3(base + math.Sin(t*2)*0.1)
	}
	return n
}

// Elapsed returns the animation clock in seconds.
func (s *SceneDescription) Elapsed() float64 {
	return s.elapsed
}

// Advance moves the animation clock forward by dt seconds, runs every
// node's OnUpdate, and advances the camera orbit.
func (s *SceneDescription) Advance(dt float64) {
	s.elapsed += dt
	s.Camera.update(dt)
	s.Tick(s.elapsed)
}

// Tick applies per-node animation for an absolute elapsed time without
// touching the camera.
func (s *SceneDescription) Tick(elapsed float64) {
	s.Root.Walk(func(n *Node) bool {
		if n.OnUpdate != nil {
			n.OnUpdate(n, elapsed)
		}
		return true
	})
}

// Find returns the node with the given name anywhere in the scene, or nil.
func (s *SceneDescription) Find(name string) *Node {
	if s.Root.Name == name {
		return s.Root
	}
	return s.Root.FindChild(name)
}

// CountMeshes returns the number of mesh nodes, optionally filtered by kind.
func (s *SceneDescription) CountMeshes(match func(*Node) bool) int {
	count := 0
	s.Root.Walk(func(n *Node) bool {
		if n.Type == NodeTypeMesh && (match == nil || match(n)) {
			count++
		}
		return true
	})
	return count
}
