package livecharts

import "github.com/hajimehoshi/ebiten/v2"

// nodeIDCounter is a plain counter; the node tree is owned by the UI
// thread, so no atomic is needed.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is a rectangular sub-surface in the chart view's visual subtree. The
// view uses nodes for visual containment only: the draw area, the tooltip
// popup, and widget anchors are nodes. A node's hit region is its full
// Width x Height rectangle regardless of fill, so a transparent surface
// still captures pointer input across its whole extent.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local)
	X, Y           float64
	ScaleX, ScaleY float64
	Rotation       float64
	PivotX, PivotY float64

	// Extent in local units
	Width, Height float64

	// Visibility
	Alpha   float64
	Visible bool
	Fill    Color // transparent fill draws nothing but still hit-tests

	// Computed (updated during traversal)
	worldTransform [6]float64
	worldAlpha     float64
	transformDirty bool

	disposed bool
}

// NewNode creates a container node with identity transform and no extent.
func NewNode(name string) *Node {
	return &Node{
		ID:             nextNodeID(),
		Name:           name,
		ScaleX:         1,
		ScaleY:         1,
		Alpha:          1,
		Visible:        true,
		Fill:           ColorTransparent,
		worldTransform: identityTransform,
		worldAlpha:     1,
		transformDirty: true,
	}
}

// NewSurface creates a node with the given extent. The fill defaults to
// transparent.
func NewSurface(name string, width, height float64) *Node {
	n := NewNode(name)
	n.Width = width
	n.Height = height
	return n
}

// --- Tree manipulation ---

// AddChild appends child to this node's children, reparenting it if needed.
func (n *Node) AddChild(child *Node) {
	if child == nil || child == n || child.disposed {
		return
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	child.transformDirty = true
}

// RemoveChild detaches child from this node. A child not present is ignored.
func (n *Node) RemoveChild(child *Node) {
	if child == nil || child.Parent != n {
		return
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this node from its parent, if any.
func (n *Node) RemoveFromParent() {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// Children returns the node's children. The returned slice is the node's
// own storage; do not mutate it.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of direct children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// --- Geometry ---

// Bounds returns the node's local placement as a Rect.
func (n *Node) Bounds() Rect {
	return Rect{Left: n.X, Top: n.Y, Width: n.Width, Height: n.Height}
}

// SetBounds repositions and resizes the node to exactly r.
func (n *Node) SetBounds(r Rect) {
	n.X = r.Left
	n.Y = r.Top
	n.Width = r.Width
	n.Height = r.Height
	n.transformDirty = true
}

// SetPosition sets the node's local X and Y and marks it dirty.
func (n *Node) SetPosition(x, y float64) {
	n.X = x
	n.Y = y
	n.transformDirty = true
}

// Contains reports whether the local point lies inside the node's extent.
func (n *Node) Contains(lx, ly float64) bool {
	return lx >= 0 && lx <= n.Width && ly >= 0 && ly <= n.Height
}

// MarkDirty marks the node's transform as dirty, forcing recomputation on
// the next frame. Useful after bulk-setting fields directly.
func (n *Node) MarkDirty() {
	n.transformDirty = true
}

// --- Disposal ---

// Dispose detaches the node from its parent and releases its subtree.
func (n *Node) Dispose() {
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	for _, c := range n.children {
		c.Parent = nil
		c.dispose()
	}
	n.children = nil
	n.disposed = true
}

// IsDisposed reports whether Dispose has been called on this node.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Drawing ---

// draw fills the node's extent with its fill color and recurses into
// children. Fully transparent fills are skipped; the extent still counts for
// hit testing.
func (n *Node) draw(dst *ebiten.Image) {
	if !n.Visible || n.disposed {
		return
	}
	if n.Fill.A > 0 && n.Width > 0 && n.Height > 0 {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(n.Width, n.Height)
		wt := n.worldTransform
		var world ebiten.GeoM
		world.SetElement(0, 0, wt[0])
		world.SetElement(0, 1, wt[2])
		world.SetElement(0, 2, wt[4])
		world.SetElement(1, 0, wt[1])
		world.SetElement(1, 1, wt[3])
		world.SetElement(1, 2, wt[5])
		op.GeoM.Concat(world)
		op.ColorScale.ScaleWithColor(n.Fill.toRGBA())
		op.ColorScale.ScaleAlpha(float32(n.worldAlpha))
		dst.DrawImage(WhitePixel, op)
	}
	for _, c := range n.children {
		c.draw(dst)
	}
}
