package tree

/*
Node is a node of a fitted tree. It is either a leaf carrying the class
label predicted for every sample routed to it, or an internal node
carrying a split rule: a feature index, a numeric threshold and exactly
two children. Samples whose value for the feature is less than or equal
to the threshold are routed to the left child, the rest to the right
child. The routing rule is fixed at creation.
*/
type Node struct {
	// Leaf reports which variant the node is.
	Leaf bool
	// The class label predicted for samples routed to the node.
	// Only meaningful on leaves.
	Label string
	// The index of the feature column the node splits on. Only
	// meaningful on internal nodes.
	Feature int
	// The threshold the split compares feature values against.
	// Only meaningful on internal nodes.
	Threshold float64
	// The children of an internal node. Both are always non-nil on
	// internal nodes and always nil on leaves.
	Left, Right *Node
}

/*
NewLeaf takes a class label and returns a leaf node predicting it.
*/
func NewLeaf(label string) *Node {
	return &Node{Leaf: true, Label: label}
}

/*
NewInternal takes a feature index, a threshold and two child nodes and
returns an internal node splitting on them.
*/
func NewInternal(feature int, threshold float64, left, right *Node) *Node {
	return &Node{Feature: feature, Threshold: threshold, Left: left, Right: right}
}
