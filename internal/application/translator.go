package application

import (
	"log/slog"
	"math"
	"strings"
	"sync/atomic"

	"golang.org/x/text/language"

	"localebot/internal/domain"
	"localebot/internal/domain/entities"
	"localebot/internal/logger"
	"localebot/internal/ports/input"
	"localebot/internal/ports/output"
	"localebot/pkg/plural"
)

const (
	// Root is the segment every bundle key lives under.
	Root = "js"
	// Separator joins scope segments.
	Separator = "."
	// UltimateLocale is tried last when fallbacks are enabled.
	UltimateLocale = "en"
)

var (
	_ input.TranslationUseCase = (*Translator)(nil)
	_ output.ExtrasStore       = (*Translator)(nil)
)

// Config selects the locales a Translator resolves against.
type Config struct {
	Locale         string
	FallbackLocale string
	DefaultLocale  string
	NoFallbacks    bool
}

// bundle is the data shared by every Translator derived from the same New call.
type bundle struct {
	tree     entities.Tree
	extras   atomic.Pointer[entities.Tree]
	messages Catalog
	rules    map[string]plural.Rule
	matcher  language.Matcher
	locales  []string
	logger   *slog.Logger
}

// Translator resolves keys against a locale tree. It never panics or returns
// errors to its callers: failures render as bracketed diagnostics.
type Translator struct {
	b   *bundle
	cfg Config
}

// Option configures a Translator during construction.
type Option func(*bundle)

// WithPluralRule registers a rule for a locale, replacing the CLDR one.
func WithPluralRule(locale string, rule plural.Rule) Option {
	return func(b *bundle) {
		if locale != "" && rule != nil {
			b.rules[locale] = rule
		}
	}
}

// WithExtras sets the initial extras overlay.
func WithExtras(extras entities.Tree) Option {
	return func(b *bundle) {
		if extras != nil {
			b.extras.Store(&extras)
		}
	}
}

// WithMessages sets the compiled message format catalog.
func WithMessages(c Catalog) Option {
	return func(b *bundle) {
		b.messages = c
	}
}

// WithLogger sets the logger. nil discards.
func WithLogger(l *slog.Logger) Option {
	return func(b *bundle) {
		if l != nil {
			b.logger = l
		}
	}
}

// New builds a Translator over tree. Empty DefaultLocale becomes "en".
func New(tree entities.Tree, cfg Config, opts ...Option) (*Translator, error) {
	if cfg.DefaultLocale == "" {
		cfg.DefaultLocale = UltimateLocale
	}
	if strings.TrimSpace(cfg.DefaultLocale) == "" {
		return nil, domain.ErrEmptyLocale
	}
	if tree == nil {
		tree = entities.Tree{}
	}

	b := &bundle{
		tree:   tree,
		rules:  make(map[string]plural.Rule),
		logger: logger.NewNope(),
	}
	for _, opt := range opts {
		opt(b)
	}

	b.locales = tree.Locales()
	tags := make([]language.Tag, 0, len(b.locales))
	for _, code := range b.locales {
		tags = append(tags, language.Make(strings.ReplaceAll(code, "_", "-")))
	}
	b.matcher = language.NewMatcher(tags)

	return &Translator{b: b, cfg: cfg}, nil
}

// CurrentLocale returns the configured locale, or the default one.
func (t *Translator) CurrentLocale() string {
	if t.cfg.Locale != "" {
		return t.cfg.Locale
	}
	return t.cfg.DefaultLocale
}

// Config returns the translator configuration.
func (t *Translator) Config() Config { return t.cfg }

// Locales returns the locales present in the bundle, sorted.
func (t *Translator) Locales() []string { return t.b.locales }

// ForLocale returns a translator sharing the same data with another current locale.
func (t *Translator) ForLocale(locale string) input.TranslationUseCase {
	return t.withLocale(locale)
}

func (t *Translator) withLocale(locale string) *Translator {
	cfg := t.cfg
	cfg.Locale = locale
	return &Translator{b: t.b, cfg: cfg}
}

// MatchLocale maps a code such as "fi-FI" or "en-US" to a bundle locale.
// Unmatched codes map to the current locale.
func (t *Translator) MatchLocale(code string) string {
	if len(t.b.locales) == 0 || strings.TrimSpace(code) == "" {
		return t.CurrentLocale()
	}
	tag, err := language.Parse(strings.ReplaceAll(code, "_", "-"))
	if err != nil {
		return t.CurrentLocale()
	}
	_, idx, conf := t.b.matcher.Match(tag)
	if conf == language.No {
		return t.CurrentLocale()
	}
	return t.b.locales[idx]
}

// SetExtras atomically replaces the extras overlay.
func (t *Translator) SetExtras(extras entities.Tree) {
	t.b.extras.Store(&extras)
}

func (t *Translator) extras() entities.Tree {
	if p := t.b.extras.Load(); p != nil {
		return *p
	}
	return nil
}

// Key joins segments into a dotted scope.
func Key(segments ...string) string {
	return strings.Join(segments, Separator)
}

// Lookup resolves scope in the locale tree, then in the extras overlay with the
// path as given (without the root segment). scope is a dotted path; join a
// segment list with Key first. It returns DefaultValue as a leaf
// when both miss, or nil.
func (t *Translator) Lookup(scope string, opts ...entities.Options) *entities.Node {
	o := entities.MergeOptions(opts...)
	locale := o.Locale
	if locale == "" {
		locale = t.CurrentLocale()
	}

	if o.Scope != "" {
		scope = o.Scope + Separator + scope
	}
	original := strings.Split(scope, Separator)

	path := original
	if len(path) > 0 && path[0] != Root {
		path = append([]string{Root}, path...)
	}

	node := t.b.tree.Locale(locale).Walk(path)
	if node == nil {
		if root := t.extras().Locale(locale); root != nil {
			node = root.Walk(original)
		}
	}
	if node == nil && o.DefaultValue != nil {
		node = entities.Leaf(*o.DefaultValue)
	}
	return node
}

// FindTranslation looks scope up and applies pluralization when requested.
func (t *Translator) FindTranslation(scope string, opts ...entities.Options) *entities.Node {
	o := entities.MergeOptions(opts...)
	node := t.Lookup(scope, o)
	if found(node) && o.NeedsPluralization {
		node = t.Pluralize(node, scope, o)
	}
	return node
}

// Pluralize picks the first form of node named by the locale's plural rule
// for opts.Count. Numeric keys such as "0" or "=1" are not candidates.
// Leaves are returned unchanged. When no candidate form exists it returns a missing marker, or
// nil if IgnoreMissing is set.
func (t *Translator) Pluralize(node *entities.Node, scope string, opts ...entities.Options) *entities.Node {
	if node == nil || node.Kind() == entities.KindLeaf {
		return node
	}
	o := entities.MergeOptions(opts...)

	var count float64
	if o.Count != nil {
		count = math.Abs(*o.Count)
	}
	locale := o.Locale
	if locale == "" {
		locale = t.CurrentLocale()
	}
	keys := t.ruleFor(locale)(count)

	for _, key := range keys {
		if s, ok := pluralForm(node, key); ok {
			return entities.Leaf(s)
		}
	}

	if o.IgnoreMissing {
		return nil
	}
	primary := ""
	if len(keys) > 0 {
		primary = keys[0]
	}
	return entities.Leaf(t.MissingTranslation(scope, primary))
}

func pluralForm(node *entities.Node, key string) (string, bool) {
	if child := node.Child(key); child.Kind() == entities.KindLeaf {
		return child.Text(), true
	}
	return "", false
}

func (t *Translator) ruleFor(locale string) plural.Rule {
	if r, ok := t.b.rules[locale]; ok {
		return r
	}
	return plural.ForLocale(locale)
}

// Translate resolves scope and interpolates the result. Missing keys go through
// the fallback locale, the default locale and finally "en" unless fallbacks are
// disabled. Anything that cannot be rendered becomes MissingTranslation(scope).
func (t *Translator) Translate(scope string, opts ...entities.Options) (out string) {
	defer func() {
		if r := recover(); r != nil {
			t.b.logger.Error("i18n: translate panicked", slog.String("scope", scope), slog.Any("panic", r))
			out = t.MissingTranslation(scope, "")
		}
	}()

	o := entities.MergeOptions(opts...)
	o.NeedsPluralization = o.Count != nil
	o.IgnoreMissing = !t.cfg.NoFallbacks

	node := t.FindTranslation(scope, o)

	if !t.cfg.NoFallbacks {
		if !found(node) && t.cfg.FallbackLocale != "" {
			o.Locale = t.cfg.FallbackLocale
			node = t.FindTranslation(scope, o)
		}
		o.IgnoreMissing = false
		if !found(node) && t.CurrentLocale() != t.cfg.DefaultLocale {
			o.Locale = t.cfg.DefaultLocale
			node = t.FindTranslation(scope, o)
		}
		if !found(node) && t.CurrentLocale() != UltimateLocale {
			o.Locale = UltimateLocale
			node = t.FindTranslation(scope, o)
		}
	}

	if node.Kind() != entities.KindLeaf {
		if node != nil {
			t.b.logger.Debug("i18n: key resolves to a non-string node",
				slog.String("scope", scope), slog.String("kind", node.Kind().String()))
		}
		return t.MissingTranslation(scope, "")
	}
	return Interpolate(node.Text(), o)
}

// MissingTranslation renders the diagnostic shown in place of a missing string.
func (t *Translator) MissingTranslation(scope, key string) string {
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(t.CurrentLocale())
	b.WriteString(Separator)
	b.WriteString(scope)
	if key != "" {
		b.WriteString(Separator)
		b.WriteString(key)
	}
	b.WriteByte(']')
	return b.String()
}

// found mirrors the truthiness test of the fallback chain: nil and empty
// strings count as not found.
func found(n *entities.Node) bool {
	if n == nil {
		return false
	}
	return n.Kind() != entities.KindLeaf || n.Text() != ""
}
