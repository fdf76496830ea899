// Package plural maps a count to the ordered list of plural category keys a
// translation may use for it. Category data comes from the CLDR tables in
// github.com/go-playground/locales.
package plural

import (
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/ar"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/fi"
	"github.com/go-playground/locales/fr"
	"github.com/go-playground/locales/ja"
	"github.com/go-playground/locales/pl"
	"github.com/go-playground/locales/ru"
	"github.com/go-playground/locales/sv"
	"golang.org/x/text/language"
)

// Category keys. None is not a CLDR category; bundles use it for "no items".
const (
	Zero  = "zero"
	One   = "one"
	Two   = "two"
	Few   = "few"
	Many  = "many"
	Other = "other"
	None  = "none"
)

// Rule returns candidate category keys for a non-negative count, most
// specific first.
type Rule func(count float64) []string

// English is the rule used when a locale has nothing better.
var English Rule = func(n float64) []string {
	switch n {
	case 0:
		return []string{Zero, None, Other}
	case 1:
		return []string{One}
	default:
		return []string{Other}
	}
}

var translators = map[string]locales.Translator{
	"ar": ar.New(),
	"de": de.New(),
	"en": en.New(),
	"fi": fi.New(),
	"fr": fr.New(),
	"ja": ja.New(),
	"pl": pl.New(),
	"ru": ru.New(),
	"sv": sv.New(),
}

// ForLocale returns the rule for a locale code such as "fi" or "pt_BR".
// English and unknown locales get English.
func ForLocale(code string) Rule {
	base := Base(code)
	if base == "en" {
		return English
	}
	tr, ok := translators[base]
	if !ok {
		return English
	}
	return FromTranslator(tr)
}

// FromTranslator builds a rule from a CLDR cardinal plural table. Zero is
// tried first for 0 and Other always closes the list.
func FromTranslator(tr locales.Translator) Rule {
	return func(n float64) []string {
		n = math.Abs(n)
		out := make([]string, 0, 3)
		if n == 0 {
			out = append(out, Zero)
		}
		cat := Name(tr.CardinalPluralRule(n, visibleDigits(n)))
		if cat != Zero || n != 0 {
			out = append(out, cat)
		}
		if cat != Other {
			out = append(out, Other)
		}
		return out
	}
}

// Categories returns the cardinal categories a locale distinguishes.
func Categories(code string) []string {
	tr, ok := translators[Base(code)]
	if !ok {
		return []string{One, Other}
	}
	rules := tr.PluralsCardinal()
	out := make([]string, 0, len(rules))
	for _, r := range rules {
		out = append(out, Name(r))
	}
	return out
}

// IsCategory reports whether key can name a plural form: a CLDR category,
// "none", or an exact count such as "0" or "=2".
func IsCategory(key string) bool {
	switch key {
	case Zero, One, Two, Few, Many, Other, None:
		return true
	}
	key = strings.TrimPrefix(key, "=")
	_, err := strconv.ParseFloat(key, 64)
	return err == nil
}

// Name converts a CLDR rule to its category key.
func Name(r locales.PluralRule) string {
	switch r {
	case locales.PluralRuleZero:
		return Zero
	case locales.PluralRuleOne:
		return One
	case locales.PluralRuleTwo:
		return Two
	case locales.PluralRuleFew:
		return Few
	case locales.PluralRuleMany:
		return Many
	default:
		return Other
	}
}

// Base returns the lower-case base language of a locale code.
func Base(code string) string {
	code = strings.ReplaceAll(strings.TrimSpace(code), "_", "-")
	if tag, err := language.Parse(code); err == nil {
		if b, conf := tag.Base(); conf != language.No {
			return b.String()
		}
	}
	if i := strings.IndexByte(code, '-'); i > 0 {
		code = code[:i]
	}
	return strings.ToLower(code)
}

func visibleDigits(n float64) uint64 {
	s := strconv.FormatFloat(n, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return uint64(len(s) - i - 1)
	}
	return 0
}
