package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localebot/internal/domain/entities"
)

func TestNodeKinds(t *testing.T) {
	t.Parallel()

	leaf := entities.Leaf("hello")
	require.Equal(t, entities.KindLeaf, leaf.Kind())
	require.Equal(t, "hello", leaf.Text())
	require.Nil(t, leaf.Child("x"))
	require.Nil(t, leaf.Keys())

	forms := map[string]string{"one": "a", "other": "b"}
	pl := entities.Plural(forms)
	forms["one"] = "changed"
	s, ok := pl.Form("one")
	require.True(t, ok)
	require.Equal(t, "a", s, "plural copies its forms")
	require.Equal(t, []string{"one", "other"}, pl.Forms())
	require.Empty(t, pl.Text())
	require.Equal(t, entities.Leaf("b"), pl.Child("other"), "plural forms are walkable")
	require.Nil(t, pl.Child("few"))
	require.Nil(t, pl.Walk([]string{"one", "deeper"}))

	br := entities.Branch(map[string]*entities.Node{"b": leaf, "a": pl, "skip": nil})
	require.Equal(t, []string{"a", "b"}, br.Keys())
	require.Same(t, leaf, br.Child("b"))

	var missing *entities.Node
	require.Equal(t, entities.Kind(0), missing.Kind())
	require.Empty(t, missing.Text())
	require.Nil(t, missing.Walk([]string{"a"}))

	assert.Equal(t, "leaf", entities.KindLeaf.String())
	assert.Equal(t, "plural", entities.KindPlural.String())
	assert.Equal(t, "branch", entities.KindBranch.String())
	assert.Equal(t, "unknown", entities.Kind(0).String())
}

func TestTreeInsertAndWalk(t *testing.T) {
	t.Parallel()

	tree := entities.Tree{}
	tree.Insert("fi", []string{"js", "topic", "create"}, entities.Leaf("Uusi ketju"))
	tree.Insert("fi", []string{"js", "topic", "title"}, entities.Leaf("Ketju"))
	tree.Insert("fi", nil, entities.Leaf("ignored"))
	tree.Insert("fi", []string{"js", "x"}, nil)

	root := tree.Locale("fi")
	require.Equal(t, "Uusi ketju", root.Walk([]string{"js", "topic", "create"}).Text())
	require.Equal(t, []string{"create", "title"}, root.Walk([]string{"js", "topic"}).Keys())
	require.Nil(t, root.Walk([]string{"js", "topic", "create", "deeper"}))
	require.Nil(t, tree.Locale("en"))
	require.Nil(t, entities.Tree(nil).Locale("fi"))

	tree.Insert("fi", []string{"js", "topic", "create", "deeper"}, entities.Leaf("replaces the leaf"))
	require.Equal(t, "replaces the leaf", root.Walk([]string{"js", "topic", "create", "deeper"}).Text())
}

func TestTreeMerge(t *testing.T) {
	t.Parallel()

	base := entities.Tree{}
	base.Insert("en", []string{"js", "a"}, entities.Leaf("A"))
	base.Insert("en", []string{"js", "b", "c"}, entities.Leaf("C"))

	overlay := entities.Tree{}
	overlay.Insert("en", []string{"js", "b", "d"}, entities.Leaf("D"))
	overlay.Insert("en", []string{"js", "a"}, entities.Leaf("A2"))
	overlay.Insert("fi", []string{"js", "a"}, entities.Leaf("Aa"))

	merged := base.Merge(overlay)
	require.Equal(t, []string{"en", "fi"}, merged.Locales())

	en := merged.Locale("en")
	require.Equal(t, "A2", en.Walk([]string{"js", "a"}).Text())
	require.Equal(t, "C", en.Walk([]string{"js", "b", "c"}).Text())
	require.Equal(t, "D", en.Walk([]string{"js", "b", "d"}).Text())

	require.Equal(t, "A", base.Locale("en").Walk([]string{"js", "a"}).Text(), "inputs are not modified")
	require.Nil(t, base.Locale("en").Walk([]string{"js", "b", "d"}))
}

func TestExtrasToTree(t *testing.T) {
	t.Parallel()

	tree := entities.ExtrasToTree([]entities.Extra{
		{Locale: "fi", Key: "custom.banner", Value: "eka"},
		{Locale: "fi", Key: "custom.banner", Value: "toka"},
		{Locale: "en", Key: "custom.footer", Value: "Footer"},
		{Locale: "en", Key: "", Value: "ignored"},
	})

	require.Equal(t, "toka", tree.Locale("fi").Walk([]string{"custom", "banner"}).Text())
	require.Equal(t, "Footer", tree.Locale("en").Walk([]string{"custom", "footer"}).Text())
	require.Equal(t, []string{"custom", "banner"}, entities.Extra{Key: "custom.banner"}.Path())
}

func TestMergeOptions(t *testing.T) {
	t.Parallel()

	def := "default"
	merged := entities.MergeOptions(
		entities.Options{Locale: "fi", Params: map[string]any{"a": 1, "b": nil}},
		entities.WithCount(2),
		entities.Options{Locale: "en", Scope: "topic", DefaultValue: &def, Params: map[string]any{"a": 9, "b": 2}},
		entities.WithCount(5),
	)

	require.Equal(t, "fi", merged.Locale)
	require.Equal(t, "topic", merged.Scope)
	require.Equal(t, &def, merged.DefaultValue)
	require.Equal(t, 2.0, *merged.Count)
	require.Equal(t, map[string]any{"a": 1, "b": 2}, merged.Params)

	v, ok := merged.Value("count")
	require.True(t, ok)
	require.Equal(t, 2.0, v)

	_, ok = entities.Options{}.Value("count")
	require.False(t, ok)

	withParam := entities.Options{Params: map[string]any{"count": "many"}, Count: merged.Count}
	v, _ = withParam.Value("count")
	require.Equal(t, "many", v, "explicit params win over count")
}
