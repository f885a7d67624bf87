package render

import (
	"io"
	"strings"

	"github.com/npillmayer/arbor"
	"github.com/npillmayer/arbor/payload"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTML writes an arena as nested unordered lists:
//
//	<ul><li>root<ul><li>child1</li><li>child2</li></ul></li></ul>
//
// Items for payloads carrying a kind get a CSS class "kind-<kind>", display
// names are written to a title attribute.
func HTML[V comparable](a *arbor.Arena[V], w io.Writer) error {
	if a == nil || w == nil {
		return ErrNilArgument
	}
	list := element(atom.Ul)
	if root, ok := a.Root(); ok {
		list.AppendChild(listItem(a, root))
	}
	return html.Render(w, list)
}

func listItem[V comparable](a *arbor.Arena[V], node arbor.Node[V]) *html.Node {
	li := element(atom.Li)
	if k, ok := any(node.Value()).(kinded); ok {
		li.Attr = append(li.Attr, html.Attribute{Key: "class", Val: "kind-" + k.ObjectKind().String()})
	}
	if d, ok := any(node.Value()).(displayed); ok && d.HasDisplayName() {
		li.Attr = append(li.Attr, html.Attribute{Key: "title", Val: d.Display()})
	}
	li.AppendChild(&html.Node{Type: html.TextNode, Data: node.String()})
	if node.IsLeaf() {
		return li
	}
	list := element(atom.Ul)
	for _, child := range a.Children(node.Index()) {
		list.AppendChild(listItem(a, child))
	}
	li.AppendChild(list)
	return li
}

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

// FromHTML creates an arena from nested HTML lists (<ul> or <ol>). The text
// directly contained in an <li> element becomes the label of a node, nested
// lists within the item become its children.
//
// The first top-level list item becomes the root; every further top-level
// item is merged as a child of the root. Input without any list results in an
// empty arena.
func FromHTML(input io.Reader) (*arbor.Arena[payload.Label], error) {
	body := &html.Node{Type: html.ElementNode, DataAtom: atom.Body, Data: "body"}
	nodes, err := html.ParseFragment(input, body)
	if err != nil {
		return nil, err
	}
	a := arbor.New[payload.Label]()
	var items []*html.Node
	for _, n := range nodes {
		items = append(items, topLevelItems(n)...)
	}
	for _, li := range items {
		sub := arbor.New[payload.Label]()
		if _, err := sub.AddRootNode(itemLabel(li)); err != nil {
			return nil, err
		}
		if err := addItems(sub, 0, li); err != nil {
			return nil, err
		}
		if a.IsEmpty() {
			a = sub
			continue
		}
		if err := a.Merge(sub, 0); err != nil {
			return nil, err
		}
	}
	tracer().Debugf("render: read %d nodes from HTML", a.Len())
	return a, nil
}

func isList(n *html.Node) bool {
	return n.Type == html.ElementNode && (n.DataAtom == atom.Ul || n.DataAtom == atom.Ol)
}

func isItem(n *html.Node) bool {
	return n.Type == html.ElementNode && n.DataAtom == atom.Li
}

// topLevelItems finds the outermost lists in n and returns their items.
func topLevelItems(n *html.Node) []*html.Node {
	if isList(n) {
		var items []*html.Node
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if isItem(c) {
				items = append(items, c)
			}
		}
		return items
	}
	var items []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		items = append(items, topLevelItems(c)...)
	}
	return items
}

func addItems(a *arbor.Arena[payload.Label], parent int, li *html.Node) error {
	for c := li.FirstChild; c != nil; c = c.NextSibling {
		if !isList(c) {
			continue
		}
		for item := c.FirstChild; item != nil; item = item.NextSibling {
			if !isItem(item) {
				continue
			}
			index, err := a.AddChildNodeTo(parent, itemLabel(item))
			if err != nil {
				return err
			}
			if err := addItems(a, index, item); err != nil {
				return err
			}
		}
	}
	return nil
}

// itemLabel collects the text directly contained in an item, with white space
// collapsed.
func itemLabel(li *html.Node) payload.Label {
	var sb strings.Builder
	for c := li.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
			sb.WriteByte(' ')
		}
	}
	return payload.Label(strings.Join(strings.Fields(sb.String()), " "))
}
