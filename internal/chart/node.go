package chart

import (
	"encoding/xml"
	"math"
	"slices"
	"strconv"
	"strings"
)

type Attr struct {
	Name  string
	Value string
}

// Node is one element of a drawing. Attributes keep insertion order so output is stable.
type Node struct {
	Name     string
	Attrs    []Attr
	Text     string
	Children []*Node

	// key identifies the datum bound to the node by a data join.
	key    string
	parent *Node
}

func NewNode(name string) *Node {
	return &Node{Name: name}
}

// Set adds or replaces an attribute and returns n for chaining.
func (n *Node) Set(name, value string) *Node {
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			n.Attrs[i].Value = value
			return n
		}
	}
	n.Attrs = append(n.Attrs, Attr{Name: name, Value: value})
	return n
}

func (n *Node) SetNum(name string, value float64) *Node {
	return n.Set(name, num(value))
}

func (n *Node) Get(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Num returns a numeric attribute, or NaN when it is absent or not a number.
func (n *Node) Num(name string) float64 {
	v, ok := n.Get(name)
	if !ok {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

func (n *Node) SetText(text string) *Node {
	n.Text = text
	return n
}

// Append adds a new child element and returns it.
func (n *Node) Append(name string) *Node {
	child := NewNode(name)
	n.AppendNode(child)
	return child
}

func (n *Node) AppendNode(child *Node) {
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = n
	n.Children = append(n.Children, child)
}

func (n *Node) RemoveChild(child *Node) bool {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// Remove detaches n from its parent.
func (n *Node) Remove() {
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
}

func (n *Node) Parent() *Node {
	return n.parent
}

func (n *Node) Key() string {
	return n.key
}

func (n *Node) HasClass(class string) bool {
	v, _ := n.Get("class")
	return slices.Contains(strings.Fields(v), class)
}

// FindAll walks the subtree depth first and returns every node matching keep, n included.
func (n *Node) FindAll(keep func(*Node) bool) []*Node {
	var found []*Node
	var walk func(*Node)
	walk = func(node *Node) {
		if keep(node) {
			found = append(found, node)
		}
		for _, c := range node.Children {
			walk(c)
		}
	}
	walk(n)
	return found
}

// ChildrenNamed returns the direct children with the given element name.
func (n *Node) ChildrenNamed(name string) []*Node {
	var found []*Node
	for _, c := range n.Children {
		if c.Name == name {
			found = append(found, c)
		}
	}
	return found
}

func ByName(name string) func(*Node) bool {
	return func(n *Node) bool { return n.Name == name }
}

func ByClass(class string) func(*Node) bool {
	return func(n *Node) bool { return n.HasClass(class) }
}

func (n *Node) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	start := xml.StartElement{Name: xml.Name{Local: n.Name}}
	for _, a := range n.Attrs {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: a.Name}, Value: a.Value})
	}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if n.Text != "" {
		if err := e.EncodeToken(xml.CharData(n.Text)); err != nil {
			return err
		}
	}
	for _, c := range n.Children {
		if err := e.Encode(c); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

// num formats coordinates with at most three decimals.
func num(v float64) string {
	r := math.Round(v*1000) / 1000
	if r == 0 {
		r = 0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
