package yuletree

// NodeType distinguishes rendering behavior for a Node.
type NodeType uint8

const (
	NodeTypeGroup        NodeType = iota // transform-only node with no visual output
	NodeTypeMesh                         // renders a tessellated Geometry
	NodeTypeAmbientLight                 // uniform light applied to every lit face
	NodeTypePointLight                   // positional light with Lambert falloff
)

// Material describes how a mesh is shaded.
type Material struct {
	Color             Color
	Emissive          Color
	EmissiveIntensity float64
	// Opacity multiplies the final alpha. Zero means fully opaque.
	Opacity float64
	// Wireframe draws triangle edges instead of filled faces.
	Wireframe bool
	// Lit applies scene lights. Unlit materials render their flat Color.
	Lit       bool
	Roughness float64
	Metalness float64
}

// BasicMaterial is an unlit flat-color material.
func BasicMaterial(hex string) Material {
	return Material{Color: MustHex(hex), Opacity: 1}
}

// StandardMaterial is a lit material.
func StandardMaterial(hex string) Material {
	return Material{Color: MustHex(hex), Opacity: 1, Lit: true, Roughness: 1}
}

// alpha returns the effective opacity.
func (m Material) alpha() float64 {
	if m.Opacity <= 0 {
		return 1
	}
	return m.Opacity * m.Color.A
}

// nodeIDCounter is a plain counter. Scenes are built on the game goroutine.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is the scene description element. A single flat struct is used for
// all node types.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local). Rotation holds Euler angles in radians applied in
	// X, Y, Z order.
	Position Vec3
	Rotation Vec3
	Scale    Vec3

	Visible bool

	// Mesh fields (NodeTypeMesh)
	Geometry Geometry
	Material Material

	// Light fields (NodeTypeAmbientLight, NodeTypePointLight)
	LightColor Color
	Intensity  float64

	// OnUpdate, when set, runs from SceneDescription.Tick with the elapsed
	// time in seconds since the scene was built.
	OnUpdate func(n *Node, elapsed float64)
}

func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.Scale = Vec3{1, 1, 1}
	n.Visible = true
}

// NewGroup creates a group node with no visual representation.
func NewGroup(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeGroup}
	nodeDefaults(n)
	return n
}

// NewMeshNode creates a mesh node for the given geometry and material.
func NewMeshNode(name string, geo Geometry, mat Material) *Node {
	n := &Node{Name: name, Type: NodeTypeMesh, Geometry: geo, Material: mat}
	nodeDefaults(n)
	return n
}

// NewAmbientLight creates an ambient light.
func NewAmbientLight(name string, c Color, intensity float64) *Node {
	n := &Node{Name: name, Type: NodeTypeAmbientLight, LightColor: c, Intensity: intensity}
	nodeDefaults(n)
	return n
}

// NewPointLight creates a point light at pos.
func NewPointLight(name string, pos Vec3, c Color, intensity float64) *Node {
	n := &Node{Name: name, Type: NodeTypePointLight, Position: pos, LightColor: c, Intensity: intensity}
	nodeDefaults(n)
	return n
}

// AddChild appends child to this node's children, detaching it from any
// previous parent first.
func (n *Node) AddChild(child *Node) {
	if child == nil || child == n {
		return
	}
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches child from this node. Returns false if child was not
// a direct child.
func (n *Node) RemoveChild(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			child.Parent = nil
			return true
		}
	}
	return false
}

// RemoveChildren detaches every child.
func (n *Node) RemoveChildren() {
	for _, c := range n.children {
		c.Parent = nil
	}
	n.children = n.children[:0]
}

// Children returns the child list. The returned slice MUST NOT be mutated.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of direct children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// Walk visits n and its descendants depth-first. Returning false from fn
// skips the subtree below the visited node.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// FindChild returns the first descendant with the given name, or nil.
func (n *Node) FindChild(name string) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if found != nil {
			return false
		}
		if c != n && c.Name == name {
			found = c
			return false
		}
		return true
	})
	return found
}
