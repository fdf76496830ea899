package entities

import "sort"

// Tree maps a locale code to the root branch of its translations.
// It is built once and only read afterwards.
type Tree map[string]*Node

// Locale returns the root of a locale, or nil.
func (t Tree) Locale(code string) *Node {
	if t == nil {
		return nil
	}
	return t[code]
}

// Locales returns the locale codes present, sorted.
func (t Tree) Locales() []string {
	out := make([]string, 0, len(t))
	for code := range t {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// Insert stores value under locale at path. Use only while building a tree.
func (t Tree) Insert(locale string, path []string, value *Node) {
	if len(path) == 0 || value == nil {
		return
	}
	root := t[locale]
	if root == nil || root.kind != KindBranch {
		root = &Node{kind: KindBranch, children: map[string]*Node{}}
		t[locale] = root
	}
	root.set(path, value)
}

// Merge overlays other on top of t and returns the result. Neither input is modified.
func (t Tree) Merge(other Tree) Tree {
	out := make(Tree, len(t)+len(other))
	for code, root := range t {
		out[code] = root
	}
	for code, root := range other {
		out[code] = out[code].Merge(root)
	}
	return out
}
