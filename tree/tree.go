/*
Package tree defines the fitted decision tree produced by training a
classifier: an immutable structure of leaf and internal nodes that can
be walked to classify samples, traversed, rendered and serialized.
*/
package tree

import (
	"fmt"
	"strings"
)

// TreeError represents an error related with fitted trees.
type TreeError string

func (te TreeError) Error() string {
	return string(te)
}

/*
ErrNoRoot is the error returned by the Predict method of a tree that has
no root node to walk.
*/
const ErrNoRoot = TreeError("tree has no root node")

/*
Tree represents a fitted decision tree. It is composed of the root node
of the structure and the number of feature columns of the matrix it was
trained on, which every queried sample must match. A Tree is built once
and read-only thereafter: concurrent Predict calls against the same tree
require no synchronization.
*/
type Tree struct {
	Root        *Node
	NumFeatures int
}

/*
New takes a root node and the number of feature columns of the training
matrix and returns a tree composed of them.
*/
func New(root *Node, numFeatures int) *Tree {
	return &Tree{root, numFeatures}
}

/*
Predict takes a feature row and returns the class label the tree
assigns to it, walking from the root: at an internal node the row's
value at the node's feature index routes left if it is less than or
equal to the node's threshold and right otherwise; at a leaf the leaf's
label is returned. An error is returned if the tree has no root or the
row does not have the tree's number of feature columns.
*/
func (t *Tree) Predict(row []float64) (string, error) {
	if t == nil || t.Root == nil {
		return "", ErrNoRoot
	}
	if len(row) != t.NumFeatures {
		return "", fmt.Errorf("predicting sample: row has %d values, tree was trained on %d feature columns", len(row), t.NumFeatures)
	}
	n := t.Root
	for !n.Leaf {
		if row[n.Feature] <= n.Threshold {
			n = n.Left
		} else {
			n = n.Right
		}
	}
	return n.Label, nil
}

/*
Traverse takes an error-returning function on a node and its depth and
goes through the tree in preorder, running the function with every
traversed node. If a call to the function returns an error, the
traversing is aborted and the error is returned. Otherwise, when the
traversing is over, nil is returned.
*/
func (t *Tree) Traverse(f func(n *Node, depth int) error) error {
	if t == nil || t.Root == nil {
		return ErrNoRoot
	}
	return traverse(t.Root, 0, f)
}

func traverse(n *Node, depth int, f func(n *Node, depth int) error) error {
	err := f(n, depth)
	if err != nil {
		return err
	}
	if n.Leaf {
		return nil
	}
	err = traverse(n.Left, depth+1, f)
	if err != nil {
		return err
	}
	return traverse(n.Right, depth+1, f)
}

/*
Depth returns the number of split levels on the tree's longest root to
leaf path. A tree whose root is a leaf has depth 0.
*/
func (t *Tree) Depth() int {
	var depth int
	t.Traverse(func(_ *Node, d int) error {
		if d > depth {
			depth = d
		}
		return nil
	})
	return depth
}

func (t *Tree) String() string {
	if t == nil || t.Root == nil {
		return "[empty tree]\n"
	}
	return subtreeString(t.Root)
}

func subtreeString(n *Node) string {
	var result string
	if n.Leaf {
		result = fmt.Sprintf("{ %s }\n", n.Label)
	} else {
		result = fmt.Sprintf("{ feature %d <= %g }\n|\n", n.Feature, n.Threshold)
	}
	if n.Leaf {
		return result
	}
	for i, child := range []*Node{n.Left, n.Right} {
		for j, line := range strings.Split(subtreeString(child), "\n") {
			if len(line) > 0 {
				if j == 0 {
					result = fmt.Sprintf("%s|__%s\n", result, line)
				} else {
					if i == 1 {
						result = fmt.Sprintf("%s   %s\n", result, line)
					} else {
						result = fmt.Sprintf("%s|  %s\n", result, line)
					}
				}
			}
		}
	}
	return result
}
