package entities

import (
	"strings"
	"time"
)

// Extra is a site-specific string kept outside the bundle. Extras form the
// overlay searched when the bundle has no value for a key.
type Extra struct {
	ID        uint
	Locale    string
	Key       string // dotted path, without the "js" root
	Value     string
	UpdatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Path splits the key into tree segments.
func (e Extra) Path() []string {
	if e.Key == "" {
		return nil
	}
	return strings.Split(e.Key, ".")
}

// ExtrasToTree builds an overlay tree. Later entries win.
func ExtrasToTree(extras []Extra) Tree {
	t := Tree{}
	for _, e := range extras {
		t.Insert(e.Locale, e.Path(), Leaf(e.Value))
	}
	return t
}
