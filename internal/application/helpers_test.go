package application_test

import (
	"strings"

	"localebot/internal/application"
	"localebot/internal/domain/entities"
)

func put(tree entities.Tree, locale, key string, n *entities.Node) {
	tree.Insert(locale, strings.Split(application.Key(application.Root, key), "."), n)
}

// fixture builds a small two-locale bundle.
func fixture() entities.Tree {
	tree := entities.Tree{}

	put(tree, "en", "topic.create", entities.Leaf("New Topic"))
	put(tree, "en", "topic.suggest", entities.Leaf("Why not create a topic?"))
	put(tree, "en", "greeting", entities.Leaf("Hello {{name}}"))
	put(tree, "en", "empty", entities.Leaf("English value"))
	put(tree, "en", "replies", entities.Plural(map[string]string{
		"one":   "{{count}} reply",
		"other": "{{count}} replies",
	}))
	put(tree, "en", "items", entities.Plural(map[string]string{
		"0":     "no items",
		"one":   "one item",
		"other": "{{count}} items",
	}))
	put(tree, "en", "number.format.separator", entities.Leaf("."))
	put(tree, "en", "number.format.delimiter", entities.Leaf(","))
	put(tree, "en", "number.human.storage_units.format", entities.Leaf("%n %u"))
	put(tree, "en", "number.human.storage_units.units.byte", entities.Plural(map[string]string{
		"one":   "Byte",
		"other": "Bytes",
	}))
	for unit, text := range map[string]string{"kb": "KB", "mb": "MB", "gb": "GB", "tb": "TB"} {
		put(tree, "en", "number.human.storage_units.units."+unit, entities.Leaf(text))
	}
	put(tree, "en", "only_en_MF", entities.Leaf("English only"))

	put(tree, "fi", "topic.create", entities.Leaf("Uusi ketju"))
	put(tree, "fi", "greeting", entities.Leaf("Hei %{name}"))
	put(tree, "fi", "empty", entities.Leaf(""))
	put(tree, "fi", "broken", entities.Leaf("Hei {{name"))
	put(tree, "fi", "replies", entities.Plural(map[string]string{
		"zero":  "ei vastauksia",
		"one":   "{{count}} vastaus",
		"other": "{{count}} vastausta",
	}))
	put(tree, "fi", "only_one", entities.Plural(map[string]string{"one": "yksi"}))
	put(tree, "fi", "items", entities.Plural(map[string]string{
		"0":     "ei mitään",
		"=1":    "tasan yksi",
		"other": "{{count}} kpl",
	}))
	put(tree, "fi", "number.format.separator", entities.Leaf(","))
	put(tree, "fi", "number.format.delimiter", entities.Leaf(" "))
	put(tree, "fi", "number.human.storage_units.format", entities.Leaf("%n %u"))
	put(tree, "fi", "number.human.storage_units.units.byte", entities.Plural(map[string]string{
		"one":   "tavu",
		"other": "tavua",
	}))
	for unit, text := range map[string]string{"kb": "kt", "mb": "Mt", "gb": "Gt", "tb": "Tt"} {
		put(tree, "fi", "number.human.storage_units.units."+unit, entities.Leaf(text))
	}
	put(tree, "fi", "topic.unread_MF", entities.Leaf(
		"{count, plural, =0 {ei lukemattomia} one {# lukematon} other {# lukematonta}}"))
	put(tree, "fi", "topic.greet_MF", entities.Leaf("Hei {name}"))

	return tree
}

func ptr[T any](v T) *T { return &v }
