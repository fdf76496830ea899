package i18n

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"localebot/internal/domain"
	"localebot/internal/domain/entities"
	"localebot/pkg/plural"
)

// root is the segment go-i18n message ids are mounted under.
const root = "js"

// messageFilePrefix marks go-i18n message files, e.g. active.fi.toml.
const messageFilePrefix = "active."

type unmarshalFunc func(data []byte, v any) error

var treeFormats = map[string]unmarshalFunc{
	".yml":  yaml.Unmarshal,
	".yaml": yaml.Unmarshal,
	".json": json.Unmarshal,
	".toml": toml.Unmarshal,
}

var messageFormats = map[string]i18n.UnmarshalFunc{
	"toml": toml.Unmarshal,
	"json": json.Unmarshal,
	"yaml": yaml.Unmarshal,
	"yml":  yaml.Unmarshal,
}

// LoadDir reads every bundle file below the root of fsys and merges them into
// one tree, in lexical path order.
//
// Tree files (client.fi.yml, server.en.json, ...) hold locale codes as their
// top-level keys. go-i18n message files (active.fi.toml) hold flat message ids
// with optional plural forms; their ids are mounted under "js".
func LoadDir(fsys fs.FS) (entities.Tree, error) {
	var files []string
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := treeFormats[strings.ToLower(path.Ext(p))]; ok {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk bundle: %w", err)
	}
	sort.Strings(files)

	tree := entities.Tree{}
	for _, p := range files {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read %q: %w", p, err)
		}
		var part entities.Tree
		if strings.HasPrefix(path.Base(p), messageFilePrefix) {
			part, err = parseMessageFile(p, data)
		} else {
			part, err = ParseTree(data, treeFormats[strings.ToLower(path.Ext(p))])
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %s", domain.ErrInvalidBundleFile, p, err)
		}
		tree = tree.Merge(part)
	}
	return tree, nil
}

// ParseTree decodes a locale-keyed document into a tree.
func ParseTree(data []byte, unmarshal unmarshalFunc) (entities.Tree, error) {
	var doc map[string]any
	if err := unmarshal(data, &doc); err != nil {
		return nil, err
	}
	tree := entities.Tree{}
	for code, v := range doc {
		if err := validLocale(code); err != nil {
			return nil, err
		}
		n, err := toNode(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", code, err)
		}
		if n.Kind() != entities.KindBranch {
			return nil, fmt.Errorf("%s: locale root must be a mapping", code)
		}
		tree[code] = n
	}
	return tree, nil
}

func parseMessageFile(p string, data []byte) (entities.Tree, error) {
	mf, err := i18n.ParseMessageFileBytes(data, p, messageFormats)
	if err != nil {
		return nil, err
	}
	if mf.Tag == language.Und {
		return nil, fmt.Errorf("no language tag in file name")
	}
	code := LocaleCode(mf.Tag)
	tree := entities.Tree{}
	for _, m := range mf.Messages {
		segments := append([]string{root}, strings.Split(m.ID, ".")...)
		tree.Insert(code, segments, messageNode(m))
	}
	return tree, nil
}

func messageNode(m *i18n.Message) *entities.Node {
	forms := map[string]string{}
	for cat, s := range map[string]string{
		plural.Zero: m.Zero,
		plural.One:  m.One,
		plural.Two:  m.Two,
		plural.Few:  m.Few,
		plural.Many: m.Many,
	} {
		if s != "" {
			forms[cat] = s
		}
	}
	if len(forms) == 0 {
		return entities.Leaf(m.Other)
	}
	if m.Other != "" {
		forms[plural.Other] = m.Other
	}
	return entities.Plural(forms)
}

// LocaleCode renders a tag the way bundle files name locales: "fi", "pt_BR".
func LocaleCode(tag language.Tag) string {
	return strings.ReplaceAll(tag.String(), "-", "_")
}

func validLocale(code string) error {
	if strings.TrimSpace(code) == "" {
		return domain.ErrEmptyLocale
	}
	if _, err := language.Parse(strings.ReplaceAll(code, "_", "-")); err != nil {
		return fmt.Errorf("%w: %q", domain.ErrUnknownLocale, code)
	}
	return nil
}

// toNode decides the node kind once: strings and scalars are leaves, mappings
// keyed only by plural categories are plural nodes, other mappings are branches.
func toNode(v any) (*entities.Node, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case string:
		return entities.Leaf(x), nil
	case bool:
		return entities.Leaf(strconv.FormatBool(x)), nil
	case float64:
		return entities.Leaf(strconv.FormatFloat(x, 'f', -1, 64)), nil
	case int, int64, uint64:
		return entities.Leaf(fmt.Sprint(x)), nil
	case []any:
		children := make(map[string]*entities.Node, len(x))
		for i, item := range x {
			n, err := toNode(item)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			children[strconv.Itoa(i)] = n
		}
		return entities.Branch(children), nil
	case map[string]any:
		return mapNode(x)
	case map[any]any:
		m := make(map[string]any, len(x))
		for k, val := range x {
			m[fmt.Sprint(k)] = val
		}
		return mapNode(m)
	default:
		return entities.Leaf(fmt.Sprint(x)), nil
	}
}

func mapNode(m map[string]any) (*entities.Node, error) {
	if forms, ok := pluralForms(m); ok {
		return entities.Plural(forms), nil
	}
	children := make(map[string]*entities.Node, len(m))
	for k, v := range m {
		n, err := toNode(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", k, err)
		}
		children[k] = n
	}
	return entities.Branch(children), nil
}

func pluralForms(m map[string]any) (map[string]string, bool) {
	if len(m) == 0 {
		return nil, false
	}
	forms := make(map[string]string, len(m))
	for k, v := range m {
		if !plural.IsCategory(k) {
			return nil, false
		}
		n, err := toNode(v)
		if err != nil || n.Kind() != entities.KindLeaf {
			return nil, false
		}
		forms[k] = n.Text()
	}
	return forms, true
}
