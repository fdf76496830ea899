package entities

import "sort"

// Kind tells which shape a Node has. It is decided once when the bundle is parsed.
type Kind uint8

const (
	KindLeaf Kind = iota + 1
	KindPlural
	KindBranch
)

func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindPlural:
		return "plural"
	case KindBranch:
		return "branch"
	default:
		return "unknown"
	}
}

// Node is one element of a translation tree: a template string (Leaf),
// a set of plural forms keyed by category (Plural) or a nested mapping (Branch).
// A nil *Node means "undefined".
type Node struct {
	children map[string]*Node
	forms    map[string]string
	text     string
	kind     Kind
}

// Leaf returns a node holding a single template.
func Leaf(text string) *Node {
	return &Node{kind: KindLeaf, text: text}
}

// Plural returns a node holding templates keyed by plural category.
func Plural(forms map[string]string) *Node {
	cp := make(map[string]string, len(forms))
	for k, v := range forms {
		cp[k] = v
	}
	return &Node{kind: KindPlural, forms: cp}
}

// Branch returns a node holding nested nodes.
func Branch(children map[string]*Node) *Node {
	cp := make(map[string]*Node, len(children))
	for k, v := range children {
		if v != nil {
			cp[k] = v
		}
	}
	return &Node{kind: KindBranch, children: cp}
}

func (n *Node) Kind() Kind {
	if n == nil {
		return 0
	}
	return n.kind
}

// Text returns the template of a leaf, "" for other kinds.
func (n *Node) Text() string {
	if n == nil || n.kind != KindLeaf {
		return ""
	}
	return n.text
}

// Form returns the template stored under a plural category.
func (n *Node) Form(category string) (string, bool) {
	if n == nil || n.kind != KindPlural {
		return "", false
	}
	s, ok := n.forms[category]
	return s, ok
}

// Forms returns the plural categories present, sorted.
func (n *Node) Forms() []string {
	if n == nil || n.kind != KindPlural {
		return nil
	}
	return sortedKeys(n.forms)
}

// Child returns the direct child named key, or nil. The forms of a plural
// node are children too, returned as leaves.
func (n *Node) Child(key string) *Node {
	if n == nil {
		return nil
	}
	switch n.kind {
	case KindBranch:
		return n.children[key]
	case KindPlural:
		if s, ok := n.forms[key]; ok {
			return Leaf(s)
		}
	}
	return nil
}

// Keys returns the names of the direct children, sorted.
func (n *Node) Keys() []string {
	if n == nil || n.kind != KindBranch {
		return nil
	}
	return sortedKeys(n.children)
}

// Walk follows path one segment at a time and returns nil as soon as a
// segment cannot be resolved.
func (n *Node) Walk(path []string) *Node {
	cur := n
	for _, seg := range path {
		if cur == nil {
			return nil
		}
		cur = cur.Child(seg)
	}
	return cur
}

// set stores value at path, creating intermediate branches. A leaf or plural
// node sitting on the way is replaced by a branch.
func (n *Node) set(path []string, value *Node) {
	cur := n
	for i, seg := range path {
		if i == len(path)-1 {
			cur.children[seg] = value
			return
		}
		next := cur.children[seg]
		if next == nil || next.kind != KindBranch {
			next = &Node{kind: KindBranch, children: map[string]*Node{}}
			cur.children[seg] = next
		}
		cur = next
	}
}

// Merge returns a branch holding the children of n overlaid with the
// children of other; nested branches are merged recursively.
func (n *Node) Merge(other *Node) *Node {
	if other == nil {
		return n
	}
	if n == nil || n.kind != KindBranch || other.kind != KindBranch {
		return other
	}
	out := &Node{kind: KindBranch, children: make(map[string]*Node, len(n.children))}
	for k, v := range n.children {
		out.children[k] = v
	}
	for k, v := range other.children {
		out.children[k] = out.children[k].Merge(v)
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
