package rawxml

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Node is one element of a parsed document. Children are kept both in
// document order and indexed by tag so callers can walk sequentially or
// jump to a named group.
type Node struct {
	Tag   string
	Char  string
	Attr  map[string]string
	kids  []*Node
	byTag map[string][]*Node
}

// Parse reads an XML document and returns its root element. Character data
// made of whitespace only is dropped; everything else accumulates into the
// owning element's Char field.
func Parse(r io.Reader) (*Node, error) {
	dec := xml.NewDecoder(r)

	var root *Node
	var stack []*Node
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse XML: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{
				Tag:   t.Name.Local,
				byTag: make(map[string][]*Node),
			}
			if len(t.Attr) > 0 {
				n.Attr = make(map[string]string, len(t.Attr))
				for _, a := range t.Attr {
					n.Attr[a.Name.Local] = a.Value
				}
			}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.kids = append(parent.kids, n)
				parent.byTag[n.Tag] = append(parent.byTag[n.Tag], n)
			} else if root == nil {
				root = n
			}
			stack = append(stack, n)
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			s := string(t)
			if strings.TrimSpace(s) == "" {
				continue
			}
			stack[len(stack)-1].Char += s
		}
	}

	if root == nil {
		return nil, fmt.Errorf("failed to parse XML: no root element")
	}
	return root, nil
}

// First returns the first child element with the given tag.
func (n *Node) First(tag string) (*Node, bool) {
	kids := n.byTag[tag]
	if len(kids) == 0 {
		return nil, false
	}
	return kids[0], true
}

// All returns the child elements with the given tag, in document order.
func (n *Node) All(tag string) []*Node {
	return n.byTag[tag]
}

// Has reports whether a child element with the given tag exists.
func (n *Node) Has(tag string) bool {
	return len(n.byTag[tag]) > 0
}

// Text returns the character content of the first child with the given tag,
// or "" when no such child exists.
func (n *Node) Text(tag string) string {
	if k, ok := n.First(tag); ok {
		return k.Char
	}
	return ""
}

// Children returns all child elements in document order.
func (n *Node) Children() []*Node {
	return n.kids
}

// HTMLString returns the character content of the index-th occurrence
// (1-based, whole-document order) of the named element under n. Rich-text
// bodies are serialized flatly by kind, so the occurrence order is the only
// thing tying a block back to the field that owns it. Returns false when the
// document holds fewer occurrences.
func HTMLString(n *Node, tag string, index int) (string, bool) {
	if index < 1 {
		return "", false
	}
	seen := 0
	var walk func(cur *Node) (string, bool)
	walk = func(cur *Node) (string, bool) {
		if cur.Tag == tag {
			seen++
			if seen == index {
				return cur.Char, true
			}
		}
		for _, k := range cur.kids {
			if s, ok := walk(k); ok {
				return s, ok
			}
		}
		return "", false
	}
	return walk(n)
}
