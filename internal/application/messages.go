package application

import (
	"errors"
	"fmt"
	"strings"

	"localebot/internal/domain"
	"localebot/internal/domain/entities"
	"localebot/pkg/messageformat"
)

// MessageSuffix marks bundle keys holding message format sources.
const MessageSuffix = "_MF"

// Catalog holds compiled messages by locale, then by dotted key without the root.
type Catalog map[string]map[string]*messageformat.Message

// CompileMessages parses every leaf whose key ends in MessageSuffix. Keys that
// fail to parse are skipped and reported in the returned error.
func CompileMessages(tree entities.Tree) (Catalog, error) {
	c := make(Catalog)
	var errs []error
	for _, locale := range tree.Locales() {
		root := tree.Locale(locale).Child(Root)
		compileNode(root, nil, func(key, src string) {
			m, err := messageformat.Parse(src)
			if err != nil {
				errs = append(errs, fmt.Errorf("%w: %s.%s: %w", domain.ErrMalformedTemplate, locale, key, err))
				return
			}
			if c[locale] == nil {
				c[locale] = make(map[string]*messageformat.Message)
			}
			c[locale][key] = m
		})
	}
	return c, errors.Join(errs...)
}

func compileNode(n *entities.Node, path []string, add func(key, src string)) {
	for _, k := range n.Keys() {
		child := n.Child(k)
		p := append(path[:len(path):len(path)], k)
		switch child.Kind() {
		case entities.KindBranch:
			compileNode(child, p, add)
		case entities.KindLeaf:
			if strings.HasSuffix(k, MessageSuffix) {
				add(Key(p...), child.Text())
			}
		}
	}
}

// Len returns the number of compiled messages across locales.
func (c Catalog) Len() int {
	n := 0
	for _, msgs := range c {
		n += len(msgs)
	}
	return n
}

// MessageFormat renders a compiled message for the current locale, trying the
// fallback and default locales when the key is absent. It returns
// "Missing Key: <key>" when nothing is found and the error text when
// rendering fails.
func (t *Translator) MessageFormat(key string, params map[string]any) string {
	for _, locale := range t.messageLocales() {
		m, ok := t.b.messages[locale][key]
		if !ok {
			continue
		}
		rule := t.ruleFor(locale)
		out, err := m.Format(params, messageformat.CategoryFunc(rule))
		if err != nil {
			return err.Error()
		}
		return out
	}
	return "Missing Key: " + key
}

func (t *Translator) messageLocales() []string {
	candidates := []string{t.CurrentLocale()}
	if !t.cfg.NoFallbacks {
		candidates = append(candidates, t.cfg.FallbackLocale, t.cfg.DefaultLocale, UltimateLocale)
	}
	out := candidates[:0]
	seen := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
