package filing

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/text/encoding/htmlindex"
)

// Node is one element of a parsed structured filing. Namespaces are dropped
// during parsing; lookups use local element names only.
type Node struct {
	Name     string
	Text     string
	Children []*Node
}

// ParseTree parses an XML document into a Node tree.
func ParseTree(r io.Reader) (*Node, error) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		enc, err := htmlindex.Get(charset)
		if err != nil {
			return nil, eris.Wrapf(err, "filing: unsupported charset %q", charset)
		}
		return enc.NewDecoder().Reader(input), nil
	}

	var root *Node
	var stack []*Node

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrap(err, "filing: read token")
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{Name: t.Name.Local}
			if len(stack) == 0 {
				if root != nil {
					return nil, eris.New("filing: multiple document roots")
				}
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			}
			stack = append(stack, n)
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, eris.New("filing: unbalanced end element")
			}
			top := stack[len(stack)-1]
			top.Text = strings.TrimSpace(top.Text)
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].Text += string(t)
			}
		}
	}

	if root == nil {
		return nil, eris.New("filing: no root element")
	}
	if len(stack) != 0 {
		return nil, eris.New("filing: truncated document")
	}
	return root, nil
}

// Find returns the first node matching a slash-separated path of element
// names, searching descendants at each step. The first complete path match in
// document order wins; nil when no match exists.
func (n *Node) Find(path string) *Node {
	if n == nil || path == "" {
		return nil
	}
	return n.findPath(strings.Split(path, "/"))
}

func (n *Node) findPath(segments []string) *Node {
	if len(segments) == 0 {
		return n
	}
	for _, c := range n.descendants(segments[0]) {
		if found := c.findPath(segments[1:]); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every descendant with the given element name, in document
// order.
func (n *Node) FindAll(name string) []*Node {
	if n == nil {
		return nil
	}
	return n.descendants(name)
}

func (n *Node) descendants(name string) []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(cur *Node) {
		for _, c := range cur.Children {
			if c.Name == name {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(n)
	return out
}

// FindText returns the trimmed text of the first node matching path, or ""
// when absent or empty.
func (n *Node) FindText(path string) string {
	if found := n.Find(path); found != nil {
		return found.Text
	}
	return ""
}
