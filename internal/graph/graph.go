// Package graph builds the prefix-sharing transform tree from a set of
// parsed feature chains and resolves buffer formats across its edges.
package graph

import (
	"sort"

	"github.com/sfxlab/sfxgraph/internal/format"
	"github.com/sfxlab/sfxgraph/internal/parser"
	"github.com/sfxlab/sfxgraph/internal/registry"
	"github.com/sfxlab/sfxgraph/internal/sferrors"
)

// Node is one vertex of the compiled transform tree: a single transform
// instance with its bound input/output formats, produced by merging one or
// more parsed feature chains that share this prefix.
type Node struct {
	ID int

	TransformName string
	Params        map[string]string
	Transform     registry.Transform

	InputFormat  format.BufferFormat
	OutputFormat format.BufferFormat
	Multiplier   int

	Parent   *Node
	Children []*Node

	// Features holds the names of every feature whose chain ends at this
	// node. Non-empty only at leaves (a node may be shared by several
	// features with an identical effective chain).
	Features []string

	// IsConverter marks a node synthesized by format resolution rather
	// than requested in any feature expression.
	IsConverter bool
}

// Graph is the compiled prefix-sharing tree plus its depth-first execution
// order.
type Graph struct {
	Root           *Node
	Nodes          []*Node
	ExecutionOrder []*Node

	reg    *registry.Registry
	nextID int
}

// Build merges the given parsed features into one prefix-sharing tree,
// rooted at a synthetic identity node bound to the raw PCM format. It does
// not resolve formats; call ResolveFormats for that.
func Build(reg *registry.Registry, features []parser.ParsedFeature) (*Graph, error) {
	g := &Graph{reg: reg}

	root, err := g.newNode("identity", nil)
	if err != nil {
		return nil, err
	}
	g.Root = root

	for _, feature := range features {
		current := root
		for _, step := range feature.Chain {
			normalized, err := reg.NormalizeParams(step.Name, step.Params)
			if err != nil {
				return nil, err
			}

			var match *Node
			for _, child := range current.Children {
				if child.TransformName == step.Name && paramsEqual(child.Params, normalized) {
					match = child
					break
				}
			}
			if match == nil {
				child, err := g.newNode(step.Name, step.Params)
				if err != nil {
					return nil, err
				}
				child.Parent = current
				current.Children = append(current.Children, child)
				match = child
			}
			current = match
		}
		current.Features = append(current.Features, feature.Name)
	}

	return g, nil
}

func (g *Graph) newNode(name string, params map[string]string) (*Node, error) {
	tr, err := g.reg.Instantiate(name, params)
	if err != nil {
		return nil, err
	}
	normalized, err := g.reg.NormalizeParams(name, params)
	if err != nil {
		return nil, err
	}
	n := &Node{ID: g.nextID, TransformName: name, Params: normalized, Transform: tr}
	g.nextID++
	g.Nodes = append(g.Nodes, n)
	return n, nil
}

func paramsEqual(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if bv, ok := b[k]; !ok || bv != v {
			return false
		}
	}
	return true
}

// ResolveFormats propagates buffer formats depth-first from the root,
// inserting automatic converters where element kinds mismatch, and records
// the execution order (pre-order, ties broken by child insertion order).
func (g *Graph) ResolveFormats(rootFormat format.BufferFormat) error {
	g.Root.InputFormat = rootFormat
	out, mult, err := g.Root.Transform.SetInputFormat(rootFormat)
	if err != nil {
		return err
	}
	g.Root.OutputFormat = out
	g.Root.Multiplier = mult
	if err := g.Root.Transform.Initialize(); err != nil {
		return err
	}

	g.ExecutionOrder = []*Node{g.Root}
	return g.resolveNode(g.Root)
}

// resolveNode binds the formats of node's children (inserting converters as
// needed), appending each to the execution order and descending into it
// immediately — depth-first pre-order, ties broken by child insertion order.
func (g *Graph) resolveNode(node *Node) error {
	for i, child := range node.Children {
		descriptor, err := g.reg.Lookup(child.TransformName)
		if err != nil {
			return err
		}

		producer := node
		if !descriptor.AnyInputKind && descriptor.RequiredInputKind != node.OutputFormat.Kind {
			convNode, err := g.insertConverter(node, descriptor.RequiredInputKind)
			if err != nil {
				return err
			}
			node.Children[i] = convNode
			convNode.Children = []*Node{child}
			child.Parent = convNode
			producer = convNode
			g.ExecutionOrder = append(g.ExecutionOrder, convNode)
		}

		child.InputFormat = producer.OutputFormat
		out, mult, err := child.Transform.SetInputFormat(child.InputFormat)
		if err != nil {
			return err
		}
		child.OutputFormat = out
		child.Multiplier = mult
		if err := child.Transform.Initialize(); err != nil {
			return err
		}

		g.ExecutionOrder = append(g.ExecutionOrder, child)
		if err := g.resolveNode(child); err != nil {
			return err
		}
	}
	return nil
}

func (g *Graph) insertConverter(parent *Node, toKind format.ElementKind) (*Node, error) {
	descriptor, ok := g.reg.FindConverter(parent.OutputFormat.Kind, toKind)
	if !ok {
		return nil, sferrors.NewIncompatibleFormatsError(
			parent.TransformName, "(converter)", parent.OutputFormat.String(), toKind.String())
	}
	conv, err := g.reg.Instantiate(descriptor.Name, nil)
	if err != nil {
		return nil, err
	}
	convNode := &Node{
		ID:            g.nextID,
		TransformName: descriptor.Name,
		Transform:     conv,
		Parent:        parent,
		IsConverter:   true,
	}
	g.nextID++
	g.Nodes = append(g.Nodes, convNode)

	convNode.InputFormat = parent.OutputFormat
	out, mult, err := conv.SetInputFormat(parent.OutputFormat)
	if err != nil {
		return nil, err
	}
	convNode.OutputFormat = out
	convNode.Multiplier = mult
	if err := conv.Initialize(); err != nil {
		return nil, err
	}
	return convNode, nil
}

// AllNodes returns every node in the tree in a stable order (by ID).
func (g *Graph) AllNodes() []*Node {
	nodes := make([]*Node, len(g.Nodes))
	copy(nodes, g.Nodes)
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })
	return nodes
}
