/*
Package json provides serialization of fitted trees as JSON documents.
A tree is serialized as an object with the following fields:
  - "numFeatures": the number of feature columns of the training matrix
  - "root": the root node, serialized recursively

A leaf node is an object with a "label" field; an internal node is an
object with "f" (feature index), "t" (threshold), "l" (left child) and
"r" (right child) fields.
*/
package json

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/arborlab/arbor/tree"
)

type jsonTree struct {
	NumFeatures int       `json:"numFeatures"`
	Root        *jsonNode `json:"root"`
}

type jsonNode struct {
	Label     string    `json:"label,omitempty"`
	Feature   *int      `json:"f,omitempty"`
	Threshold *float64  `json:"t,omitempty"`
	Left      *jsonNode `json:"l,omitempty"`
	Right     *jsonNode `json:"r,omitempty"`
}

/*
Marshal takes a pointer to a tree.Tree and returns a slice of bytes
with the tree encoded as JSON or an error if the encoding could not be
performed.
*/
func Marshal(t *tree.Tree) ([]byte, error) {
	if t == nil || t.Root == nil {
		return nil, tree.ErrNoRoot
	}
	return json.Marshal(&jsonTree{t.NumFeatures, encodeNode(t.Root)})
}

/*
Unmarshal takes a slice of bytes and returns a pointer to a tree.Tree
decoded from it or an error if the decoding could not be performed or
the document does not describe a well-formed tree.
*/
func Unmarshal(data []byte) (*tree.Tree, error) {
	jt := &jsonTree{}
	err := json.Unmarshal(data, jt)
	if err != nil {
		return nil, fmt.Errorf("unmarshalling tree: %v", err)
	}
	if jt.Root == nil {
		return nil, fmt.Errorf("unmarshalling tree: no root node available")
	}
	if jt.NumFeatures < 1 {
		return nil, fmt.Errorf("unmarshalling tree: invalid number of feature columns %d", jt.NumFeatures)
	}
	root, err := decodeNode(jt.Root, jt.NumFeatures)
	if err != nil {
		return nil, fmt.Errorf("unmarshalling tree: %v", err)
	}
	return tree.New(root, jt.NumFeatures), nil
}

/*
WriteTree takes a pointer to a tree.Tree and an io.Writer and serializes
the given tree as JSON onto the io.Writer. An error is returned if the
tree cannot be serialized or written.
*/
func WriteTree(w io.Writer, t *tree.Tree) error {
	data, err := Marshal(t)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

/*
ReadTree takes an io.Reader and returns a pointer to a tree.Tree
unmarshalled from its contents or an error if the contents cannot be
read or decoded.
*/
func ReadTree(r io.Reader) (*tree.Tree, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading tree: %v", err)
	}
	return Unmarshal(data)
}

func encodeNode(n *tree.Node) *jsonNode {
	if n.Leaf {
		return &jsonNode{Label: n.Label}
	}
	feature := n.Feature
	threshold := n.Threshold
	return &jsonNode{
		Feature:   &feature,
		Threshold: &threshold,
		Left:      encodeNode(n.Left),
		Right:     encodeNode(n.Right),
	}
}

func decodeNode(jn *jsonNode, numFeatures int) (*tree.Node, error) {
	if jn.Left == nil && jn.Right == nil {
		return tree.NewLeaf(jn.Label), nil
	}
	if jn.Left == nil || jn.Right == nil {
		return nil, fmt.Errorf("internal node has a single child")
	}
	if jn.Feature == nil || jn.Threshold == nil {
		return nil, fmt.Errorf("internal node has no split rule")
	}
	if *jn.Feature < 0 || *jn.Feature >= numFeatures {
		return nil, fmt.Errorf("internal node splits on invalid feature index %d", *jn.Feature)
	}
	left, err := decodeNode(jn.Left, numFeatures)
	if err != nil {
		return nil, err
	}
	right, err := decodeNode(jn.Right, numFeatures)
	if err != nil {
		return nil, err
	}
	return tree.NewInternal(*jn.Feature, *jn.Threshold, left, right), nil
}
