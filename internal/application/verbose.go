package application

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"sync"

	"localebot/internal/domain/entities"
	"localebot/internal/ports/input"
)

var _ input.TranslationUseCase = (*VerboseTranslator)(nil)

// keyRegistry numbers scopes in the order they are first translated.
type keyRegistry struct {
	mu   sync.Mutex
	seen map[string]int
}

func (r *keyRegistry) number(scope string) (n int, first bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n, ok := r.seen[scope]; ok {
		return n, false
	}
	n = len(r.seen) + 1
	r.seen[scope] = n
	return n, true
}

// VerboseTranslator wraps a Translator for translators reviewing the UI: every
// string is suffixed with " (#N)" and the first use of each key is logged
// with its number and parameters. Fallbacks are disabled so untranslated keys
// stand out.
type VerboseTranslator struct {
	*Translator
	keys   *keyRegistry
	logger *slog.Logger
}

// NewVerbose decorates base. A nil logger uses the translator's logger.
func NewVerbose(base *Translator, logger *slog.Logger) *VerboseTranslator {
	cfg := base.cfg
	cfg.NoFallbacks = true
	if logger == nil {
		logger = base.b.logger
	}
	return &VerboseTranslator{
		Translator: &Translator{b: base.b, cfg: cfg},
		keys:       &keyRegistry{seen: make(map[string]int)},
		logger:     logger,
	}
}

// Translate renders scope and appends its key number.
func (v *VerboseTranslator) Translate(scope string, opts ...entities.Options) string {
	n, first := v.keys.number(scope)
	if first {
		attrs := []slog.Attr{slog.Int("number", n), slog.String("scope", scope)}
		o := entities.MergeOptions(opts...)
		if params := describe(o); params != "" {
			attrs = append(attrs, slog.String("parameters", params))
		}
		v.logger.LogAttrs(context.Background(), slog.LevelInfo, "Translation #"+strconv.Itoa(n)+": "+scope, attrs...)
	}
	return v.Translator.Translate(scope, opts...) + " (#" + strconv.Itoa(n) + ")"
}

// ToHumanSize renders unit names through the decorated Translate.
func (v *VerboseTranslator) ToHumanSize(n float64) string {
	return v.ToHumanSizeWith(n)
}

func (v *VerboseTranslator) ToHumanSizeWith(n float64, opts ...NumberOption) string {
	return v.Translator.humanSize(v.Translate, n, opts...)
}

// ForLocale keeps the decoration and the key numbering.
func (v *VerboseTranslator) ForLocale(locale string) input.TranslationUseCase {
	return &VerboseTranslator{
		Translator: v.Translator.withLocale(locale),
		keys:       v.keys,
		logger:     v.logger,
	}
}

func describe(o entities.Options) string {
	values := make(map[string]any, len(o.Params)+3)
	for k, val := range o.Params {
		values[k] = val
	}
	if o.Count != nil {
		values["count"] = *o.Count
	}
	if o.Locale != "" {
		values["locale"] = o.Locale
	}
	if o.Scope != "" {
		values["scope"] = o.Scope
	}
	if len(values) == 0 {
		return ""
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return ""
	}
	return string(raw)
}
